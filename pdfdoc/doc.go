// Package pdfdoc adapts a concrete PDF text decoder to the fragment
// contract consumed by the layout engine.
//
// The decoder itself is deliberately replaceable: the layout engine only
// sees [model.Document] values. This package produces them from
// github.com/ledongthuc/pdf, which reports positioned glyph runs with font
// name and size. On top of the raw runs it does three things the engine
// relies on:
//
//   - assembles character-level runs into word runs, so decoders that emit
//     one run per glyph (Google Docs exports, Quartz output) do not turn
//     every word into w o r d s
//   - derives the synthetic bold/italic flags from font name tokens,
//     the only weight signal most PDFs carry
//   - normalizes run text (NFKC, so ligatures like ﬁ become fi) and strips
//     control characters
//
// [PageCount] reads the page count without decoding content streams, so
// page-limit enforcement stays cheap.
package pdfdoc
