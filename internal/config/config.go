// Package config holds runtime configuration: defaults, flag-facing string
// fields, and validation into typed values.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"klafsa/internal/planner"
	"klafsa/internal/texture"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. String fields are set from flags;
// Validate derives the typed fields from them.
type Config struct {
	// Input (set from positional args).
	DocumentPath string

	// Compression selection, as given on the command line.
	BackendName   string // Default: "toktx".
	CodecName     string // Optional. Defaults to the backend's format.
	ContainerName string // Optional. Defaults to the codec's container.
	CompressToAll bool   // Compress to every format with a backend.

	// Derived by Validate.
	Backend   texture.Backend
	Format    texture.CompressionFormat
	Container texture.ContainerFormat

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
	Plain     bool      // Disable the interactive progress view.
}

// DefaultConfig returns a Config with all defaults applied.
func DefaultConfig() Config {
	return Config{
		BackendName: texture.BackendToktx.String(),
		ColorMode:   ColorAuto,
	}
}

// Validate parses the selection flags and checks enum fields. Codec and
// container default from the backend when omitted.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	backend, err := texture.ParseBackend(c.BackendName)
	if err != nil {
		return err
	}
	c.Backend = backend

	c.Format = backend.DefaultFormat()
	if c.CodecName != "" {
		if c.Format, err = texture.ParseCompressionFormat(c.CodecName); err != nil {
			return err
		}
	}

	c.Container = backend.DefaultContainer(c.Format)
	if c.ContainerName != "" {
		if c.Container, err = texture.ParseContainerFormat(c.ContainerName); err != nil {
			return err
		}
	}
	return nil
}

// ValidateDocumentPath requires a JSON glTF document path. Binary .glb
// files are rejected.
func (c *Config) ValidateDocumentPath() error {
	if c.DocumentPath == "" {
		return errors.New("need a glTF file path")
	}
	if !strings.EqualFold(filepath.Ext(c.DocumentPath), ".gltf") {
		return fmt.Errorf("%s: file must be a JSON-format glTF file with a .gltf extension", c.DocumentPath)
	}
	return nil
}

// PlanRequest converts the validated selection into a planner request.
func (c *Config) PlanRequest() planner.PlanRequest {
	return planner.PlanRequest{
		CompressToAll: c.CompressToAll,
		Format:        c.Format,
		Container:     c.Container,
		Backend:       c.Backend,
	}
}
