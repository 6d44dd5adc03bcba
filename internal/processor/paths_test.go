package processor

import (
	"path/filepath"
	"testing"

	"klafsa/internal/texture"
)

func TestDestinationPath(t *testing.T) {
	tests := []struct {
		uri       string
		format    texture.CompressionFormat
		container texture.ContainerFormat
		want      string
	}{
		{"foo.png", texture.FormatEtc1s, texture.ContainerBasis, "etc1s_basis/foo_etc1s.basis"},
		{"textures/wood.jpg", texture.FormatBc7, texture.ContainerKtx2, "textures/bc7_ktx2/wood_bc7.ktx2"},
		{"a/b/normal.map.png", texture.FormatAstc6x6, texture.ContainerKtx2, "a/b/astc6x6_ktx2/normal.map_astc6x6.ktx2"},
		{"../shared/rock.jpeg", texture.FormatUastc, texture.ContainerKtx2, "../shared/uastc_ktx2/rock_uastc.ktx2"},
		{"noext", texture.FormatEtc1s, texture.ContainerKtx2, "etc1s_ktx2/noext_etc1s.ktx2"},
		{"my%20tex.png", texture.FormatBc1, texture.ContainerKtx2, "bc1_ktx2/my%20tex_bc1.ktx2"},
	}
	for _, tt := range tests {
		t.Run(tt.uri, func(t *testing.T) {
			got := DestinationPath(tt.uri, tt.format, tt.container)
			if got != tt.want {
				t.Errorf("DestinationPath() = %q, want %q", got, tt.want)
			}
			if again := DestinationPath(tt.uri, tt.format, tt.container); again != got {
				t.Errorf("DestinationPath not deterministic: %q then %q", got, again)
			}
		})
	}
}

func TestOutputDocumentPath(t *testing.T) {
	tests := []struct {
		doc       string
		format    texture.CompressionFormat
		container texture.ContainerFormat
		want      string
	}{
		{"scene.gltf", texture.FormatEtc1s, texture.ContainerBasis, "scene_etc1s_basis.gltf"},
		{filepath.Join("assets", "car.gltf"), texture.FormatBc7, texture.ContainerKtx2, filepath.Join("assets", "car_bc7_ktx2.gltf")},
		{"model.v2.gltf", texture.FormatUastc, texture.ContainerKtx2, "model.v2_uastc_ktx2.gltf"},
	}
	for _, tt := range tests {
		t.Run(tt.doc, func(t *testing.T) {
			got := OutputDocumentPath(tt.doc, tt.format, tt.container)
			if got != tt.want {
				t.Errorf("OutputDocumentPath() = %q, want %q", got, tt.want)
			}
			if again := OutputDocumentPath(tt.doc, tt.format, tt.container); again != got {
				t.Errorf("OutputDocumentPath not deterministic: %q then %q", got, again)
			}
		})
	}
}

func TestURIToFile(t *testing.T) {
	if got := uriToFile("tex/my%20wood.png"); got != filepath.Join("tex", "my wood.png") {
		t.Errorf("uriToFile() = %q", got)
	}
	if got := uriToFile("bad%zz.png"); got != "bad%zz.png" {
		t.Errorf("invalid escapes should pass through, got %q", got)
	}
}
