// Package compressor wraps the external texture tools (basisu, kram, toktx)
// behind a single Compressor contract and builds only the ones a run needs.
//
// Each backend checks the requested format/container pair before any
// process is spawned, translates the usage class into tool flags, and runs
// the tool synchronously in the document's working directory.
package compressor
