// Package layout infers document structure from positioned text fragments.
//
// The package implements the whole classification engine as a pipeline of
// small, independently testable stages:
//
//   - [LineMerger] - groups decoder fragments into reading-order lines
//   - [StyleProfiler] - computes document-wide font statistics
//   - [Classifier] - labels each line (Title, H1, H2, H3 or Body)
//   - [RepetitionFilter] - identifies running headers and footers
//   - [Assembler] - selects the title and builds the final outline
//
// # Classification
//
// The [Classifier] is a pure function of a line and the document profile.
// It applies an ordered rule pipeline: a textual pattern match (numbering
// scheme, bullet glyph, chapter keyword) pins a minimum heading level;
// relative font size, boldness and page position refine the level at or
// above that pin; a word-count cap demotes long unpatterned lines to body
// text. Ties resolve toward the shallower level. Because no state is
// carried between lines, classification may run per line in parallel
// without changing results.
//
// # Configuration
//
// Each stage can be configured independently:
//
//	config := layout.DefaultClassifierConfig()
//	config.MaxHeadingWords = 20
//	classifier := layout.NewClassifierWithConfig(config)
//
// The threshold values are heuristic calibration, not contracts; only their
// ordering is fixed (larger, bolder, more specifically patterned text maps
// to shallower levels).
package layout
