package document

import (
	"encoding/json"
	"strings"
)

// TextureRef is a texture reference inside a material slot.
type TextureRef struct {
	Index int `json:"index"`
}

// PBRMetallicRoughness holds the metallic-roughness model's texture slots.
type PBRMetallicRoughness struct {
	BaseColorTexture         *TextureRef `json:"baseColorTexture,omitempty"`
	MetallicRoughnessTexture *TextureRef `json:"metallicRoughnessTexture,omitempty"`
}

// Material is the read-only view of a material's texture slots.
type Material struct {
	Name                 string                `json:"name,omitempty"`
	PBRMetallicRoughness *PBRMetallicRoughness `json:"pbrMetallicRoughness,omitempty"`
	NormalTexture        *TextureRef           `json:"normalTexture,omitempty"`
	OcclusionTexture     *TextureRef           `json:"occlusionTexture,omitempty"`
	EmissiveTexture      *TextureRef           `json:"emissiveTexture,omitempty"`
}

// MetallicRoughness returns the metallic-roughness texture reference, if any.
func (m Material) MetallicRoughness() *TextureRef {
	if m.PBRMetallicRoughness == nil {
		return nil
	}
	return m.PBRMetallicRoughness.MetallicRoughnessTexture
}

// Texture references the image it samples.
type Texture struct {
	Name   string `json:"name,omitempty"`
	Source *int   `json:"source,omitempty"`
}

// Image is an image entry. URI and MimeType are the only fields the pipeline
// rewrites; everything else survives a round trip untouched.
type Image struct {
	URI        string
	MimeType   string
	BufferView *int

	extra map[string]json.RawMessage
}

// IsExternal reports whether the image refers to a file by URI, as opposed to
// a buffer view or an inline data URI.
func (img Image) IsExternal() bool {
	return img.URI != "" && !strings.HasPrefix(img.URI, "data:")
}

// UnmarshalJSON implements json.Unmarshaler.
func (img *Image) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	*img = Image{}
	if raw, ok := fields["uri"]; ok {
		if err := json.Unmarshal(raw, &img.URI); err != nil {
			return err
		}
		delete(fields, "uri")
	}
	if raw, ok := fields["mimeType"]; ok {
		if err := json.Unmarshal(raw, &img.MimeType); err != nil {
			return err
		}
		delete(fields, "mimeType")
	}
	if raw, ok := fields["bufferView"]; ok {
		var view int
		if err := json.Unmarshal(raw, &view); err != nil {
			return err
		}
		img.BufferView = &view
		delete(fields, "bufferView")
	}
	if len(fields) > 0 {
		img.extra = fields
	}
	return nil
}

// MarshalJSON implements json.Marshaler. An empty MimeType is omitted.
func (img Image) MarshalJSON() ([]byte, error) {
	fields := make(map[string]any, len(img.extra)+3)
	for k, v := range img.extra {
		fields[k] = v
	}
	if img.URI != "" {
		fields["uri"] = img.URI
	}
	if img.MimeType != "" {
		fields["mimeType"] = img.MimeType
	}
	if img.BufferView != nil {
		fields["bufferView"] = *img.BufferView
	}
	return json.Marshal(fields)
}
