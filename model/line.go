package model

import "strings"

// Line is one or more fragments merged because they occupy the same visual
// row. Lines are the unit of classification; their ordering (page ascending,
// top to bottom, left to right) is the canonical reading order used by every
// downstream stage.
type Line struct {
	// Page is the 1-based page index
	Page int

	// Text is the assembled text content of the line
	Text string

	// BBox is the union of the constituent fragment boxes
	BBox BBox

	// FontSize is the representative size (max of constituent fragments)
	FontSize float64

	// Bold and Italic are true if any constituent fragment is styled
	Bold   bool
	Italic bool

	// TopFraction is the vertical position as a fraction of page height,
	// 0 at the top of the page and 1 at the bottom
	TopFraction float64

	// X is the horizontal start position in page coordinates
	X float64
}

// WordCount returns the number of whitespace-separated words in the line
func (l Line) WordCount() int {
	return len(strings.Fields(l.Text))
}

// IsEmpty returns true if the line has no text content
func (l Line) IsEmpty() bool {
	return strings.TrimSpace(l.Text) == ""
}

// Label classifies a line's structural role.
type Label int

const (
	LabelBody Label = iota
	LabelTitle
	LabelH1
	LabelH2
	LabelH3
)

// String returns the external name of the label
func (l Label) String() string {
	switch l {
	case LabelTitle:
		return "Title"
	case LabelH1:
		return "H1"
	case LabelH2:
		return "H2"
	case LabelH3:
		return "H3"
	default:
		return "Body"
	}
}

// IsHeading returns true for H1, H2 and H3
func (l Label) IsHeading() bool {
	return l == LabelH1 || l == LabelH2 || l == LabelH3
}

// Depth returns 1 for H1, 2 for H2, 3 for H3 and 0 otherwise.
// Smaller is shallower.
func (l Label) Depth() int {
	switch l {
	case LabelH1:
		return 1
	case LabelH2:
		return 2
	case LabelH3:
		return 3
	default:
		return 0
	}
}

// ClassifiedLine is a Line plus its assigned label. Confidence is used only
// for tie-breaking inside the engine and is never exposed externally.
type ClassifiedLine struct {
	Line
	Label      Label
	Confidence float64
}
