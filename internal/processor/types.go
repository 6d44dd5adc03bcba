package processor

import (
	"klafsa/internal/compressor"
	"klafsa/internal/planner"
	"klafsa/internal/texture"
)

// Outcome is the terminal state of one texture/target pair.
type Outcome int

const (
	OutcomeCompressed Outcome = iota
	OutcomeSkippedView
	OutcomeSkippedUnsupported
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCompressed:
		return "compressed"
	case OutcomeSkippedView:
		return "skipped (view source)"
	case OutcomeSkippedUnsupported:
		return "skipped (unsupported image type)"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Logger is the logging surface the pipeline needs.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(string, ...interface{})
}

// Progress is reported once per texture/target pair.
type Progress struct {
	Completed int
	Total     int
	Label     string
	Target    planner.OutputTarget
	Outcome   Outcome
}

// ProgressFunc observes progress. It is called synchronously from Run.
type ProgressFunc func(Progress)

// Options configures a run.
type Options struct {
	// DocumentPath is the source .gltf file.
	DocumentPath string
	Request      planner.PlanRequest

	// Registry supplies compressors. Nil builds real backends from PATH.
	Registry *compressor.Registry
	Logger   Logger
	Progress ProgressFunc
}

// Result records what happened to one texture/target pair.
type Result struct {
	Texture int
	Target  planner.OutputTarget
	Usage   texture.UsageClass
	Source  string
	Dest    string
	Outcome Outcome
	Err     error
}

// Summary aggregates a run.
type Summary struct {
	Total              int
	Completed          int
	Compressed         int
	SkippedView        int
	SkippedUnsupported int
	Failed             int
	Plan               planner.FormatPlan
	Documents          []string
	Results            []Result
}

func (s *Summary) record(r Result) {
	s.Results = append(s.Results, r)
	s.Completed++
	switch r.Outcome {
	case OutcomeCompressed:
		s.Compressed++
	case OutcomeSkippedView:
		s.SkippedView++
	case OutcomeSkippedUnsupported:
		s.SkippedUnsupported++
	case OutcomeFailed:
		s.Failed++
	}
}
