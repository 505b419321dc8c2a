package model

// DocumentProfile holds document-wide font statistics. It is computed once
// per document and shared read-only by the classifier, which is what makes
// per-line classification a pure function.
type DocumentProfile struct {
	// MaxFontSize is the maximum representative font size over all lines
	MaxFontSize float64

	// BodyFontSize is the most common size among paragraph-like lines,
	// used to separate heading-sized text from body text when the
	// document maximum is dominated by cover-page art text
	BodyFontSize float64

	// SizeCounts maps rounded font sizes to the number of lines using them
	SizeCounts map[int]int

	// PageCount is the total number of pages in the document
	PageCount int
}

// RelativeSize returns size divided by the document maximum, or 0 for a
// degenerate profile.
func (p DocumentProfile) RelativeSize(size float64) float64 {
	if p.MaxFontSize <= 0 {
		return 0
	}
	return size / p.MaxFontSize
}
