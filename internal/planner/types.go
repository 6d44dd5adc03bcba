package planner

import (
	"strings"

	"klafsa/internal/texture"
)

// PlanRequest is the user's selection as it arrives from configuration.
type PlanRequest struct {
	CompressToAll bool
	Format        texture.CompressionFormat
	Container     texture.ContainerFormat
	Backend       texture.Backend
}

// OutputTarget is one (format, container) pair and the backend that
// produces it. ContainerExplicit is true when the container came from the
// request rather than the format's default.
type OutputTarget struct {
	Format            texture.CompressionFormat
	Container         texture.ContainerFormat
	Backend           texture.Backend
	ContainerExplicit bool
}

// String renders the target as "format_container", the suffix used for
// output directories and documents.
func (t OutputTarget) String() string {
	return t.Format.String() + "_" + t.Container.String()
}

// FormatPlan is an ordered, non-empty list of targets. Order decides the
// order documents are written and reported in.
type FormatPlan []OutputTarget

// Backends returns the distinct backends referenced by the plan, in order
// of first use.
func (p FormatPlan) Backends() []texture.Backend {
	seen := make(map[texture.Backend]bool, len(p))
	var out []texture.Backend
	for _, t := range p {
		if seen[t.Backend] {
			continue
		}
		seen[t.Backend] = true
		out = append(out, t.Backend)
	}
	return out
}

func (p FormatPlan) String() string {
	names := make([]string, len(p))
	for i, t := range p {
		names[i] = t.String()
	}
	return strings.Join(names, ", ")
}
