package texture

import (
	"fmt"
	"strings"
)

// ContainerFormat is the file format wrapping the compressed payload.
type ContainerFormat int

const (
	ContainerUnknown ContainerFormat = iota
	ContainerBasis
	ContainerKtx2
)

func (c ContainerFormat) String() string {
	switch c {
	case ContainerBasis:
		return "basis"
	case ContainerKtx2:
		return "ktx2"
	default:
		return "unknown"
	}
}

// Extension is the canonical file extension, without the dot.
func (c ContainerFormat) Extension() string {
	return c.String()
}

// MimeType is the registered MIME type for the container. Basis files have
// none, so the result is empty.
func (c ContainerFormat) MimeType() string {
	if c == ContainerKtx2 {
		return "image/ktx2"
	}
	return ""
}

// ParseContainerFormat accepts "basis" or "ktx2", case-insensitively.
func ParseContainerFormat(s string) (ContainerFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "basis":
		return ContainerBasis, nil
	case "ktx2":
		return ContainerKtx2, nil
	default:
		return ContainerUnknown, fmt.Errorf("%w: %q", ErrUnknownContainer, s)
	}
}
