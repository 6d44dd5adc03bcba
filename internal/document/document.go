package document

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrInvalidDocument is returned for JSON that is not a glTF document.
var ErrInvalidDocument = errors.New("invalid glTF document")

// Document is a parsed glTF JSON document.
type Document struct {
	Materials []Material
	Textures  []Texture
	Images    []Image

	members map[string]json.RawMessage
}

// Parse decodes a glTF JSON document.
func Parse(data []byte) (*Document, error) {
	var members map[string]json.RawMessage
	if err := json.Unmarshal(data, &members); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if _, ok := members["asset"]; !ok {
		return nil, fmt.Errorf("%w: missing asset", ErrInvalidDocument)
	}

	doc := &Document{members: members}
	if err := decodeMember(members, "materials", &doc.Materials); err != nil {
		return nil, err
	}
	if err := decodeMember(members, "textures", &doc.Textures); err != nil {
		return nil, err
	}
	if err := decodeMember(members, "images", &doc.Images); err != nil {
		return nil, err
	}
	return doc, nil
}

func decodeMember(members map[string]json.RawMessage, name string, v any) error {
	raw, ok := members[name]
	if !ok {
		return nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidDocument, name, err)
	}
	return nil
}

// Load reads and parses the document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// ImageForTexture returns the image index texture i samples.
func (d *Document) ImageForTexture(i int) (int, bool) {
	if i < 0 || i >= len(d.Textures) {
		return 0, false
	}
	src := d.Textures[i].Source
	if src == nil || *src < 0 || *src >= len(d.Images) {
		return 0, false
	}
	return *src, true
}

// SetImageSource points image i at uri. An empty mimeType removes the
// member.
func (d *Document) SetImageSource(i int, uri, mimeType string) {
	d.Images[i].URI = uri
	d.Images[i].MimeType = mimeType
}

// Encode serialises the document as indented JSON.
func (d *Document) Encode() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(d.members))
	for k, v := range d.members {
		out[k] = v
	}
	if d.Images != nil {
		images, err := json.Marshal(d.Images)
		if err != nil {
			return nil, err
		}
		out["images"] = images
	}
	return json.MarshalIndent(out, "", "  ")
}

// Clone returns an independent deep copy.
func (d *Document) Clone() (*Document, error) {
	data, err := d.Encode()
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Save writes the document to path, replacing any existing file.
func (d *Document) Save(path string) error {
	data, err := d.Encode()
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
