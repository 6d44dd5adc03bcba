package planner

import (
	"errors"

	"klafsa/internal/texture"
)

// ErrEmptyRequest is returned for a single-format request missing its
// format, container or backend.
var ErrEmptyRequest = errors.New("plan request needs a format, container and backend")

// Resolve builds the FormatPlan for req.
func Resolve(req PlanRequest) (FormatPlan, error) {
	if !req.CompressToAll {
		if req.Format == texture.FormatUnknown ||
			req.Container == texture.ContainerUnknown ||
			req.Backend == texture.BackendUnknown {
			return nil, ErrEmptyRequest
		}
		return FormatPlan{{
			Format:            req.Format,
			Container:         req.Container,
			Backend:           req.Backend,
			ContainerExplicit: true,
		}}, nil
	}

	var plan FormatPlan
	for _, f := range texture.AllFormats() {
		backend, ok := f.OwningBackend()
		if !ok {
			continue
		}
		plan = append(plan, OutputTarget{
			Format:    f,
			Container: f.DefaultContainer(),
			Backend:   backend,
		})
	}
	return plan, nil
}
