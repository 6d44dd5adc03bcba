package compressor

import (
	"errors"
	"fmt"
	"strings"

	"klafsa/internal/texture"
)

var (
	ErrBackendUnavailable     = errors.New("backend unavailable")
	ErrUnsupportedCombination = errors.New("unsupported format/container combination")
	ErrExecutionFailed        = errors.New("compressor execution failed")
)

// UnavailableError reports that a backend's tool could not be located.
type UnavailableError struct {
	Backend texture.Backend
	Err     error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("failed to find the %s CLI tool, make sure it is in your PATH: %v", e.Backend.Tool(), e.Err)
}

func (e *UnavailableError) Unwrap() error { return e.Err }

func (e *UnavailableError) Is(target error) bool { return target == ErrBackendUnavailable }

// UnsupportedCombinationError is returned before spawning anything when a
// backend cannot produce the requested pair.
type UnsupportedCombinationError struct {
	Backend   texture.Backend
	Format    texture.CompressionFormat
	Container texture.ContainerFormat
}

func (e *UnsupportedCombinationError) Error() string {
	return fmt.Sprintf("%s does not support %s in %s", e.Backend, e.Format, e.Container)
}

func (e *UnsupportedCombinationError) Is(target error) bool {
	return target == ErrUnsupportedCombination
}

// ExecutionError carries the tool invocation and its diagnostic output.
type ExecutionError struct {
	Tool   string
	Args   []string
	Stderr string
	Err    error
}

func (e *ExecutionError) Error() string {
	msg := fmt.Sprintf("failed to execute %s %s: %v", e.Tool, strings.Join(e.Args, " "), e.Err)
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += "\n" + stderr
	}
	return msg
}

func (e *ExecutionError) Unwrap() error { return e.Err }

func (e *ExecutionError) Is(target error) bool { return target == ErrExecutionFailed }
