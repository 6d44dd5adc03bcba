package compressor

import (
	"context"
	"os/exec"

	"klafsa/internal/texture"
)

// Job describes one texture/target compression. Paths are relative to
// WorkingDir unless absolute.
type Job struct {
	WorkingDir string
	Source     string
	Dest       string
	Usage      texture.UsageClass
	Format     texture.CompressionFormat
	Container  texture.ContainerFormat
}

// Compressor is implemented once per backend.
type Compressor interface {
	Backend() texture.Backend
	Supports(format texture.CompressionFormat, container texture.ContainerFormat) bool
	Compress(ctx context.Context, job Job) error
}

// LookPath resolves a tool name to an executable path.
type LookPath func(file string) (string, error)

// New constructs the compressor for backend, locating its tool with look.
// A nil look uses exec.LookPath.
func New(backend texture.Backend, look LookPath) (Compressor, error) {
	if look == nil {
		look = exec.LookPath
	}
	switch backend {
	case texture.BackendBasisu:
		return NewBasisu(look)
	case texture.BackendKram:
		return NewKram(look)
	case texture.BackendToktx:
		return NewToktx(look)
	default:
		return nil, &UnavailableError{Backend: backend, Err: texture.ErrUnknownBackend}
	}
}

func locate(backend texture.Backend, look LookPath) (string, error) {
	path, err := look(backend.Tool())
	if err != nil {
		return "", &UnavailableError{Backend: backend, Err: err}
	}
	return path, nil
}

func checkSupport(c Compressor, job Job) error {
	if c.Supports(job.Format, job.Container) {
		return nil
	}
	return &UnsupportedCombinationError{
		Backend:   c.Backend(),
		Format:    job.Format,
		Container: job.Container,
	}
}
