// Package svg post-processes SVG documents produced by the Graphviz layout
// engine.
//
// # Overview
//
// Rendered decision trees arrive as SVG in which every per-node chart is a
// raster placeholder: an <image> element referencing a .png file. The real
// chart exists as a vector .svg next to that raster file. This package
// replaces each placeholder with the parsed content of its vector
// counterpart, producing a single self-contained document.
//
// # Usage
//
// Run the substitution over a document string:
//
//	out, err := svg.Inline(doc)
//
// Inspect a document without mutating it:
//
//	refs, err := svg.Placeholders(doc)
//
// [VectorPath] exposes the reference-to-file rule both of these apply, for
// tooling that needs to locate a chart file from a raster reference.
//
// The package also carries the two small helpers the rendering pipeline
// needs around the substitution: [ReadShape] extracts width/height from a
// vector file's header line, and [WriteBlankPNG] emits the canned raster
// file the layout engine measures before inlining happens.
//
// # Failure Model
//
// All operations are fail-fast. A malformed input document surfaces
// [errors.ErrCodeParse] before any file is touched; a referenced file that
// cannot be read or loaded surfaces [errors.ErrCodeFileAccess] and aborts
// the whole transformation. There is no partial output: an error means
// nothing was substituted.
package svg
