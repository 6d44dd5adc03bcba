package imgutil

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

func TestFromMimeOrExtension(t *testing.T) {
	tests := []struct {
		name string
		mime string
		uri  string
		want Kind
	}{
		{"png mime", "image/png", "texture", KindPNG},
		{"jpeg mime uppercase", "IMAGE/JPEG", "texture.bin", KindJPEG},
		{"mime wins over extension", "image/png", "photo.jpg", KindPNG},
		{"unknown mime falls back", "image/webp", "photo.jpg", KindJPEG},
		{"jpeg extension", "", "textures/wood.jpeg", KindJPEG},
		{"uppercase extension", "", "WOOD.PNG", KindPNG},
		{"unsupported extension", "", "wood.webp", KindUnknown},
		{"no extension", "", "wood", KindUnknown},
		{"dot in directory only", "", "tex.d/wood", KindUnknown},
		{"ktx2 mime", "image/ktx2", "wood.ktx2", KindUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromMimeOrExtension(tt.mime, tt.uri); got != tt.want {
				t.Errorf("FromMimeOrExtension(%q, %q) = %v, want %v", tt.mime, tt.uri, got, tt.want)
			}
		})
	}
}

func TestDetectHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  []byte
		want    Kind
		wantErr bool
	}{
		{"png", []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a}, KindPNG, false},
		{"jpeg", []byte{0xff, 0xd8, 0xff, 0xe0, 0, 0, 0, 0}, KindJPEG, false},
		{"other", []byte("KTX 20\xbb\r"), KindUnknown, false},
		{"short", []byte{0xff, 0xd8}, KindUnknown, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectHeader(tt.header)
			if (err != nil) != tt.wantErr || got != tt.want {
				t.Errorf("DetectHeader() = %v, %v", got, err)
			}
		})
	}
}

func TestOrientation(t *testing.T) {
	dir := t.TempDir()

	rotated := filepath.Join(dir, "rotated.jpg")
	if err := os.WriteFile(rotated, buildJPEGWithOrientation(6), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := Orientation(rotated)
	if err != nil {
		t.Fatalf("Orientation: %v", err)
	}
	if got != 6 {
		t.Errorf("Orientation() = %d, want 6", got)
	}

	plain := filepath.Join(dir, "plain.jpg")
	if err := os.WriteFile(plain, []byte{0xff, 0xd8, 0xff, 0xd9}, 0o644); err != nil {
		t.Fatal(err)
	}
	got, err = Orientation(plain)
	if err != nil {
		t.Fatalf("Orientation without EXIF: %v", err)
	}
	if got != OrientationNormal {
		t.Errorf("Orientation() = %d, want %d", got, OrientationNormal)
	}
}

func buildJPEGWithOrientation(orientation uint16) []byte {
	var tiff bytes.Buffer
	tiff.Write([]byte{0x49, 0x49, 0x2a, 0x00})
	_ = binary.Write(&tiff, binary.LittleEndian, uint32(8))
	_ = binary.Write(&tiff, binary.LittleEndian, uint16(1))
	_ = binary.Write(&tiff, binary.LittleEndian, uint16(0x0112))
	_ = binary.Write(&tiff, binary.LittleEndian, uint16(3))
	_ = binary.Write(&tiff, binary.LittleEndian, uint32(1))
	_ = binary.Write(&tiff, binary.LittleEndian, orientation)
	_ = binary.Write(&tiff, binary.LittleEndian, uint16(0))
	_ = binary.Write(&tiff, binary.LittleEndian, uint32(0))

	exifData := append([]byte("Exif\x00\x00"), tiff.Bytes()...)

	var buf bytes.Buffer
	buf.Write([]byte{0xff, 0xd8})
	buf.Write([]byte{0xff, 0xe1})
	_ = binary.Write(&buf, binary.BigEndian, uint16(len(exifData)+2))
	buf.Write(exifData)
	buf.Write([]byte{0xff, 0xd9})
	return buf.Bytes()
}
