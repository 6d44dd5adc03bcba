package imgutil

import (
	"errors"
	"io"
	"os"
	"path"
	"strings"
)

// Kind identifies a supported source image type.
type Kind int

const (
	KindUnknown Kind = iota
	KindJPEG
	KindPNG
)

func (k Kind) String() string {
	switch k {
	case KindJPEG:
		return "jpeg"
	case KindPNG:
		return "png"
	default:
		return "unknown"
	}
}

var (
	pngSig  = []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a}
	jpegSig = []byte{0xff, 0xd8, 0xff}
)

// FromMimeType maps a MIME type, case-insensitively.
func FromMimeType(mimeType string) Kind {
	switch strings.ToLower(strings.TrimSpace(mimeType)) {
	case "image/jpeg":
		return KindJPEG
	case "image/png":
		return KindPNG
	default:
		return KindUnknown
	}
}

// FromExtension maps the extension of a URI or file name.
func FromExtension(uri string) Kind {
	ext := strings.TrimPrefix(path.Ext(uri), ".")
	switch strings.ToLower(ext) {
	case "jpeg", "jpg":
		return KindJPEG
	case "png":
		return KindPNG
	default:
		return KindUnknown
	}
}

// FromMimeOrExtension prefers the MIME type and falls back to the URI's
// extension when the MIME type is absent or unrecognised.
func FromMimeOrExtension(mimeType, uri string) Kind {
	if kind := FromMimeType(mimeType); kind != KindUnknown {
		return kind
	}
	return FromExtension(uri)
}

// DetectHeader inspects the first 8 bytes of a file for known signatures.
func DetectHeader(header []byte) (Kind, error) {
	if len(header) < 8 {
		return KindUnknown, errors.New("header too short")
	}

	if hasPrefix(header, jpegSig) {
		return KindJPEG, nil
	}
	if hasPrefix(header, pngSig) {
		return KindPNG, nil
	}

	return KindUnknown, nil
}

// SniffFile reads the first 8 bytes of a file to determine its type.
func SniffFile(path string) (Kind, error) {
	f, err := os.Open(path)
	if err != nil {
		return KindUnknown, err
	}
	defer f.Close()

	return SniffReader(f)
}

// SniffReader reads the first 8 bytes from r and determines its type.
func SniffReader(r io.Reader) (Kind, error) {
	header := make([]byte, 8)
	if _, err := io.ReadFull(r, header); err != nil {
		return KindUnknown, err
	}

	return DetectHeader(header)
}

func hasPrefix(buf, prefix []byte) bool {
	if len(buf) < len(prefix) {
		return false
	}
	for i := range prefix {
		if buf[i] != prefix[i] {
			return false
		}
	}
	return true
}
