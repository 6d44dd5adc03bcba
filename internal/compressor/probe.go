package compressor

import (
	"os/exec"

	"klafsa/internal/texture"
)

// ToolStatus reports whether a backend's tool is installed.
type ToolStatus struct {
	Backend texture.Backend
	Path    string
	Err     error
}

// Available reports whether the tool was found.
func (s ToolStatus) Available() bool { return s.Err == nil }

// Probe looks up every backend's tool without running it.
func Probe(look LookPath) []ToolStatus {
	if look == nil {
		look = exec.LookPath
	}
	backends := texture.AllBackends()
	out := make([]ToolStatus, 0, len(backends))
	for _, b := range backends {
		path, err := locate(b, look)
		out = append(out, ToolStatus{Backend: b, Path: path, Err: err})
	}
	return out
}
