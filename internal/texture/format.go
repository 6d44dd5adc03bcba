// Package texture holds the static capability table: which compression
// formats exist, which backend owns each one, and which container each is
// wrapped in by default.
package texture

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownFormat    = errors.New("unknown compression format")
	ErrUnknownContainer = errors.New("unknown container format")
	ErrUnknownBackend   = errors.New("unknown backend")
)

// CompressionFormat identifies a GPU texture encoding.
type CompressionFormat int

const (
	FormatUnknown CompressionFormat = iota
	FormatAstc
	FormatAstc4x4
	FormatAstc5x5
	FormatAstc6x6
	FormatAstc8x8
	FormatBc1
	FormatBc3
	FormatBc4
	FormatBc5
	FormatBc6h
	FormatBc7
	FormatEtc1s
	FormatEtc2r
	FormatEtc2rg
	FormatEtc2rgb
	FormatEtc2rgba
	FormatUastc
)

var formatNames = map[CompressionFormat]string{
	FormatAstc:     "astc",
	FormatAstc4x4:  "astc4x4",
	FormatAstc5x5:  "astc5x5",
	FormatAstc6x6:  "astc6x6",
	FormatAstc8x8:  "astc8x8",
	FormatBc1:      "bc1",
	FormatBc3:      "bc3",
	FormatBc4:      "bc4",
	FormatBc5:      "bc5",
	FormatBc6h:     "bc6h",
	FormatBc7:      "bc7",
	FormatEtc1s:    "etc1s",
	FormatEtc2r:    "etc2r",
	FormatEtc2rg:   "etc2rg",
	FormatEtc2rgb:  "etc2rgb",
	FormatEtc2rgba: "etc2rgba",
	FormatUastc:    "uastc",
}

// AllFormats returns every known format in declaration order.
func AllFormats() []CompressionFormat {
	out := make([]CompressionFormat, 0, int(FormatUastc))
	for f := FormatAstc; f <= FormatUastc; f++ {
		out = append(out, f)
	}
	return out
}

func (f CompressionFormat) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return "unknown"
}

// OwningBackend reports the backend that encodes f when compressing to every
// format. The second return value is false for formats no wrapped tool
// handles.
func (f CompressionFormat) OwningBackend() (Backend, bool) {
	switch f {
	case FormatAstc, FormatUastc:
		return BackendToktx, true
	case FormatAstc4x4, FormatAstc5x5, FormatAstc6x6, FormatAstc8x8,
		FormatBc1, FormatBc3, FormatBc4, FormatBc5, FormatBc7,
		FormatEtc2r, FormatEtc2rg, FormatEtc2rgb, FormatEtc2rgba:
		return BackendKram, true
	case FormatEtc1s:
		return BackendBasisu, true
	default:
		return BackendUnknown, false
	}
}

// DefaultContainer is the container f is natively wrapped in.
func (f CompressionFormat) DefaultContainer() ContainerFormat {
	if f == FormatEtc1s {
		return ContainerBasis
	}
	return ContainerKtx2
}

// IsAstcBlock reports whether f is one of the fixed-footprint ASTC formats.
func (f CompressionFormat) IsAstcBlock() bool {
	switch f {
	case FormatAstc4x4, FormatAstc5x5, FormatAstc6x6, FormatAstc8x8:
		return true
	}
	return false
}

// ParseCompressionFormat accepts a format name, case-insensitively.
func ParseCompressionFormat(s string) (CompressionFormat, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for f, name := range formatNames {
		if name == want {
			return f, nil
		}
	}
	return FormatUnknown, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// FormatNames lists format names in declaration order, for help text.
func FormatNames() []string {
	formats := AllFormats()
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = f.String()
	}
	return names
}
