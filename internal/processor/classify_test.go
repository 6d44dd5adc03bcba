package processor

import (
	"reflect"
	"testing"

	"klafsa/internal/document"
	"klafsa/internal/texture"
)

func mustParse(t *testing.T, src string) *document.Document {
	t.Helper()
	doc, err := document.Parse([]byte(src))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return doc
}

func TestClassify_NormalAndOcclusionOnSameTexture(t *testing.T) {
	doc := mustParse(t, `{
		"asset": {"version": "2.0"},
		"materials": [{"normalTexture": {"index": 0}, "occlusionTexture": {"index": 0}}],
		"textures": [{"source": 0}],
		"images": [{"uri": "a.png"}]
	}`)
	got := Classify(doc)
	want := map[int]texture.UsageClass{0: texture.UsageLinear}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Classify() = %v, want %v", got, want)
	}
}

func TestClassify_Precedence(t *testing.T) {
	doc := mustParse(t, `{
		"asset": {"version": "2.0"},
		"materials": [
			{"normalTexture": {"index": 0}, "pbrMetallicRoughness": {"baseColorTexture": {"index": 3}}},
			{"pbrMetallicRoughness": {"metallicRoughnessTexture": {"index": 0}}},
			{"normalTexture": {"index": 1}},
			{"occlusionTexture": {"index": 2}, "normalTexture": {"index": 1}}
		],
		"textures": [{"source": 0}, {"source": 1}, {"source": 2}, {"source": 3}, {"source": 4}],
		"images": [{"uri": "a.png"}, {"uri": "b.png"}, {"uri": "c.png"}, {"uri": "d.png"}, {"uri": "e.png"}]
	}`)
	got := Classify(doc)
	want := map[int]texture.UsageClass{
		0: texture.UsageLinear,    // normal in one material, metallic-roughness in another
		1: texture.UsageNormalMap, // normal only
		2: texture.UsageLinear,    // occlusion only
		3: texture.UsageSrgb,      // base color
		4: texture.UsageSrgb,      // unreferenced
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Classify() = %v, want %v", got, want)
	}
}

func TestClassify_NoMaterials(t *testing.T) {
	doc := mustParse(t, `{"asset": {"version": "2.0"}, "textures": [{"source": 0}, {"source": 0}], "images": [{"uri": "a.png"}]}`)
	got := Classify(doc)
	if len(got) != 2 {
		t.Fatalf("expected every texture classified, got %v", got)
	}
	for i, c := range got {
		if c != texture.UsageSrgb {
			t.Errorf("texture %d = %v, want srgb", i, c)
		}
	}
}
