// Package document reads and writes glTF JSON documents for texture
// rewriting.
//
// Only the parts the pipeline inspects are decoded into Go types:
// materials, textures and images. Every other member, including extensions
// and extras, is carried through as raw JSON so a rewritten document differs
// from its source only in the image entries that were changed.
package document
