package texture

import (
	"errors"
	"testing"
)

func TestFormatCapabilities(t *testing.T) {
	tests := []struct {
		format    CompressionFormat
		backend   Backend
		owned     bool
		container ContainerFormat
	}{
		{FormatAstc, BackendToktx, true, ContainerKtx2},
		{FormatAstc6x6, BackendKram, true, ContainerKtx2},
		{FormatBc7, BackendKram, true, ContainerKtx2},
		{FormatBc6h, BackendUnknown, false, ContainerKtx2},
		{FormatEtc1s, BackendBasisu, true, ContainerBasis},
		{FormatEtc2rgba, BackendKram, true, ContainerKtx2},
		{FormatUastc, BackendToktx, true, ContainerKtx2},
	}
	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			backend, ok := tt.format.OwningBackend()
			if ok != tt.owned || backend != tt.backend {
				t.Errorf("OwningBackend() = (%v, %v), want (%v, %v)", backend, ok, tt.backend, tt.owned)
			}
			if got := tt.format.DefaultContainer(); got != tt.container {
				t.Errorf("DefaultContainer() = %v, want %v", got, tt.container)
			}
		})
	}
}

func TestAllFormats_DeclarationOrder(t *testing.T) {
	formats := AllFormats()
	if len(formats) != len(formatNames) {
		t.Fatalf("got %d formats, want %d", len(formats), len(formatNames))
	}
	if formats[0] != FormatAstc || formats[len(formats)-1] != FormatUastc {
		t.Errorf("unexpected order: first %v, last %v", formats[0], formats[len(formats)-1])
	}
	for i := 1; i < len(formats); i++ {
		if formats[i] <= formats[i-1] {
			t.Errorf("formats out of order at %d: %v after %v", i, formats[i], formats[i-1])
		}
	}
}

func TestParseCompressionFormat(t *testing.T) {
	for _, f := range AllFormats() {
		got, err := ParseCompressionFormat(f.String())
		if err != nil || got != f {
			t.Errorf("ParseCompressionFormat(%q) = %v, %v", f.String(), got, err)
		}
	}
	if got, err := ParseCompressionFormat(" ETC1S "); err != nil || got != FormatEtc1s {
		t.Errorf("case-insensitive parse = %v, %v", got, err)
	}
	if _, err := ParseCompressionFormat("pvrtc"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}
}

func TestContainerFormat(t *testing.T) {
	if ContainerKtx2.MimeType() != "image/ktx2" {
		t.Errorf("ktx2 mime = %q", ContainerKtx2.MimeType())
	}
	if ContainerBasis.MimeType() != "" {
		t.Errorf("basis mime = %q, want empty", ContainerBasis.MimeType())
	}
	if ContainerBasis.Extension() != "basis" || ContainerKtx2.Extension() != "ktx2" {
		t.Errorf("unexpected extensions %q %q", ContainerBasis.Extension(), ContainerKtx2.Extension())
	}
	if _, err := ParseContainerFormat("dds"); !errors.Is(err, ErrUnknownContainer) {
		t.Errorf("expected ErrUnknownContainer, got %v", err)
	}
	if c, err := ParseContainerFormat("KTX2"); err != nil || c != ContainerKtx2 {
		t.Errorf("ParseContainerFormat(KTX2) = %v, %v", c, err)
	}
}

func TestParseBackend(t *testing.T) {
	tests := []struct {
		in      string
		want    Backend
		wantErr bool
	}{
		{"basisu", BackendBasisu, false},
		{"kram", BackendKram, false},
		{"toktx", BackendToktx, false},
		{"ToKtx", BackendToktx, false},
		{"nvtt", BackendUnknown, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseBackend(tt.in)
			if (err != nil) != tt.wantErr || got != tt.want {
				t.Errorf("ParseBackend(%q) = %v, %v", tt.in, got, err)
			}
		})
	}
}

func TestBackendDefaultFormatIsOwned(t *testing.T) {
	for _, b := range AllBackends() {
		owner, ok := b.DefaultFormat().OwningBackend()
		if !ok || owner != b {
			t.Errorf("%v default format %v is owned by %v", b, b.DefaultFormat(), owner)
		}
	}
}

func TestBackendSupports(t *testing.T) {
	tests := []struct {
		backend   Backend
		format    CompressionFormat
		container ContainerFormat
		want      bool
	}{
		{BackendBasisu, FormatEtc1s, ContainerBasis, true},
		{BackendBasisu, FormatUastc, ContainerKtx2, true},
		{BackendBasisu, FormatBc7, ContainerKtx2, false},
		{BackendKram, FormatBc7, ContainerKtx2, true},
		{BackendKram, FormatBc7, ContainerBasis, false},
		{BackendKram, FormatBc6h, ContainerKtx2, false},
		{BackendKram, FormatAstc, ContainerKtx2, false},
		{BackendToktx, FormatEtc1s, ContainerKtx2, true},
		{BackendToktx, FormatEtc1s, ContainerBasis, false},
		{BackendUnknown, FormatUastc, ContainerKtx2, false},
	}
	for _, tt := range tests {
		if got := tt.backend.Supports(tt.format, tt.container); got != tt.want {
			t.Errorf("%v.Supports(%v, %v) = %v, want %v", tt.backend, tt.format, tt.container, got, tt.want)
		}
	}
}

func TestBackendDefaultContainer(t *testing.T) {
	tests := []struct {
		backend Backend
		format  CompressionFormat
		want    ContainerFormat
	}{
		{BackendBasisu, FormatEtc1s, ContainerBasis},
		{BackendToktx, FormatEtc1s, ContainerKtx2},
		{BackendToktx, FormatUastc, ContainerKtx2},
		{BackendKram, FormatEtc1s, ContainerBasis},
		{BackendKram, FormatBc7, ContainerKtx2},
	}
	for _, tt := range tests {
		if got := tt.backend.DefaultContainer(tt.format); got != tt.want {
			t.Errorf("%v.DefaultContainer(%v) = %v, want %v", tt.backend, tt.format, got, tt.want)
		}
	}
}
