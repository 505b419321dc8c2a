package model

import "strings"

// TextFragment represents a single positioned run of text as emitted by the
// decoder. Bold and Italic are synthetic flags derived from font name tokens
// because PDFs rarely carry explicit weight metadata.
type TextFragment struct {
	// Page is the 1-based page index the fragment appears on
	Page int

	// Text is the run's content
	Text string

	// BBox is the fragment's bounding box in page coordinates
	// (origin bottom-left, Y increasing upward)
	BBox BBox

	// FontName is the decoder-reported font name (may be subset-prefixed)
	FontName string

	// FontSize is the nominal font size in points
	FontSize float64

	// Bold and Italic are derived from font name tokens
	Bold   bool
	Italic bool
}

// IsEmpty returns true if the fragment has no visible text
func (f TextFragment) IsEmpty() bool {
	return strings.TrimSpace(f.Text) == ""
}

// PageFragments holds the decoded fragments of a single page together with
// the page dimensions needed to normalize vertical positions.
type PageFragments struct {
	// Index is the 1-based page number
	Index int

	// Width and Height are the page dimensions in points
	Width  float64
	Height float64

	// Fragments are the decoded runs, in decoder emission order
	// (not guaranteed to be reading order)
	Fragments []TextFragment
}

// Document is the decoder's output for one PDF: everything the layout
// engine needs, and nothing that ties it to a particular decoder.
type Document struct {
	// PageCount is the total number of pages in the source document
	PageCount int

	// HasText reports whether the decoder found any extractable text
	HasText bool

	// Pages holds the per-page fragments in ascending page order
	Pages []PageFragments
}

// FragmentCount returns the total number of fragments across all pages
func (d *Document) FragmentCount() int {
	if d == nil {
		return 0
	}
	n := 0
	for _, p := range d.Pages {
		n += len(p.Fragments)
	}
	return n
}
