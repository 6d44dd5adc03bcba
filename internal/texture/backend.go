package texture

import (
	"fmt"
	"strings"
)

// Backend identifies the external tool that performs compression.
type Backend int

const (
	BackendUnknown Backend = iota
	BackendBasisu
	BackendKram
	BackendToktx
)

// AllBackends returns every backend in declaration order.
func AllBackends() []Backend {
	return []Backend{BackendBasisu, BackendKram, BackendToktx}
}

func (b Backend) String() string {
	switch b {
	case BackendBasisu:
		return "basisu"
	case BackendKram:
		return "kram"
	case BackendToktx:
		return "toktx"
	default:
		return "unknown"
	}
}

// Tool is the executable name looked up on PATH.
func (b Backend) Tool() string {
	return b.String()
}

// DefaultFormat is used when the user picks a backend but no codec.
func (b Backend) DefaultFormat() CompressionFormat {
	switch b {
	case BackendBasisu:
		return FormatEtc1s
	case BackendKram:
		return FormatBc7
	case BackendToktx:
		return FormatUastc
	default:
		return FormatUnknown
	}
}

// Supports reports whether b's tool can write format in container.
func (b Backend) Supports(format CompressionFormat, container ContainerFormat) bool {
	switch b {
	case BackendBasisu:
		if format != FormatEtc1s && format != FormatUastc {
			return false
		}
		return container == ContainerBasis || container == ContainerKtx2
	case BackendKram:
		owner, ok := format.OwningBackend()
		return ok && owner == BackendKram && container == ContainerKtx2
	case BackendToktx:
		switch format {
		case FormatAstc, FormatEtc1s, FormatUastc:
			return container == ContainerKtx2
		}
	}
	return false
}

// DefaultContainer picks the container for format when the user names none.
// It is format's own default unless b cannot write that but can write KTX2.
func (b Backend) DefaultContainer(format CompressionFormat) ContainerFormat {
	c := format.DefaultContainer()
	if !b.Supports(format, c) && b.Supports(format, ContainerKtx2) {
		return ContainerKtx2
	}
	return c
}

// ParseBackend accepts a backend name, case-insensitively. "ktx" and
// "basis" are accepted as aliases.
func ParseBackend(s string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "basisu", "basis":
		return BackendBasisu, nil
	case "kram":
		return BackendKram, nil
	case "toktx", "ktx":
		return BackendToktx, nil
	default:
		return BackendUnknown, fmt.Errorf("%w: %q", ErrUnknownBackend, s)
	}
}
