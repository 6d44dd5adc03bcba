// Package planner expands a compression request into the ordered list of
// output targets a run produces.
//
// A single-format request always yields exactly one target, even when the
// selected backend cannot encode it; the backend reports that per texture.
// A compress-to-all request yields one target per format that has an owning
// backend, each wrapped in that format's native container.
package planner
