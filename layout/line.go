package layout

import (
	"math"
	"sort"
	"strings"

	"github.com/tsawler/outliner/model"
)

// MergeConfig holds configuration for grouping fragments into lines
type MergeConfig struct {
	// OverlapFraction is the minimum vertical overlap, as a fraction of the
	// smaller fragment height, for two fragments to share a line
	// Default: 0.5
	OverlapFraction float64

	// MaxDuplicateShift is the maximum positional difference, in points,
	// for two identical fragments to be collapsed as a stroke/fill
	// duplicate (a common decoder artifact)
	// Default: 1.0
	MaxDuplicateShift float64
}

// DefaultMergeConfig returns sensible default configuration
func DefaultMergeConfig() MergeConfig {
	return MergeConfig{
		OverlapFraction:   0.5,
		MaxDuplicateShift: 1.0,
	}
}

// LineMerger groups decoder fragments into logical text lines. The output
// is a single sequence in reading order: pages ascending, top to bottom,
// left to right.
type LineMerger struct {
	config MergeConfig
}

// NewLineMerger creates a line merger with default configuration
func NewLineMerger() *LineMerger {
	return &LineMerger{config: DefaultMergeConfig()}
}

// NewLineMergerWithConfig creates a line merger with custom configuration
func NewLineMergerWithConfig(config MergeConfig) *LineMerger {
	return &LineMerger{config: config}
}

// Merge normalizes all pages into one reading-order line sequence
func (m *LineMerger) Merge(pages []model.PageFragments) []model.Line {
	var lines []model.Line
	for _, page := range pages {
		lines = append(lines, m.mergePage(page)...)
	}
	return lines
}

// mergePage groups one page's fragments into lines
func (m *LineMerger) mergePage(page model.PageFragments) []model.Line {
	usable := make([]model.TextFragment, 0, len(page.Fragments))
	for _, frag := range page.Fragments {
		// Zero-area boxes carry no layout information
		if frag.BBox.IsEmpty() || frag.IsEmpty() {
			continue
		}
		usable = append(usable, frag)
	}
	if len(usable) == 0 {
		return nil
	}

	// Sort by top edge (descending in PDF coordinates), then left to right.
	sort.SliceStable(usable, func(i, j int) bool {
		if usable[i].BBox.Top() != usable[j].BBox.Top() {
			return usable[i].BBox.Top() > usable[j].BBox.Top()
		}
		return usable[i].BBox.X < usable[j].BBox.X
	})

	var groups [][]model.TextFragment
	var current []model.TextFragment

	for _, frag := range usable {
		if len(current) == 0 {
			current = []model.TextFragment{frag}
			continue
		}
		if m.sameRow(current, frag) {
			current = append(current, frag)
		} else {
			groups = append(groups, current)
			current = []model.TextFragment{frag}
		}
	}
	if len(current) > 0 {
		groups = append(groups, current)
	}

	lines := make([]model.Line, 0, len(groups))
	for _, group := range groups {
		if line, ok := m.buildLine(group, page); ok {
			lines = append(lines, line)
		}
	}
	return lines
}

// sameRow reports whether a fragment belongs to the current line group:
// its vertical range must overlap the group's by more than the configured
// fraction of the smaller height.
func (m *LineMerger) sameRow(group []model.TextFragment, frag model.TextFragment) bool {
	groupBox := group[0].BBox
	for _, f := range group[1:] {
		groupBox = groupBox.Union(f.BBox)
	}

	overlap := groupBox.VerticalOverlap(frag.BBox)
	smaller := math.Min(groupBox.Height, frag.BBox.Height)
	if smaller <= 0 {
		return false
	}
	return overlap > smaller*m.config.OverlapFraction
}

// buildLine assembles a fragment group into a Line, collapsing duplicated
// stroke/fill runs and internal whitespace.
func (m *LineMerger) buildLine(group []model.TextFragment, page model.PageFragments) (model.Line, bool) {
	sort.SliceStable(group, func(i, j int) bool {
		return group[i].BBox.X < group[j].BBox.X
	})

	line := model.Line{Page: page.Index}
	var parts []string
	first := true

	for i, frag := range group {
		if i > 0 && m.isDuplicate(group[i-1], frag) {
			continue
		}
		parts = append(parts, frag.Text)
		if first {
			line.BBox = frag.BBox
			first = false
		} else {
			line.BBox = line.BBox.Union(frag.BBox)
		}
		if frag.FontSize > line.FontSize {
			line.FontSize = frag.FontSize
		}
		line.Bold = line.Bold || frag.Bold
		line.Italic = line.Italic || frag.Italic
	}

	// Single spaces between fragments, internal whitespace collapsed
	line.Text = strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
	if line.Text == "" {
		return model.Line{}, false
	}

	line.X = line.BBox.X
	line.TopFraction = topFraction(line.BBox, page.Height)
	return line, true
}

// isDuplicate reports whether two adjacent fragments are the same run
// painted twice (stroke then fill).
func (m *LineMerger) isDuplicate(prev, frag model.TextFragment) bool {
	if prev.Text != frag.Text {
		return false
	}
	return math.Abs(prev.BBox.X-frag.BBox.X) <= m.config.MaxDuplicateShift &&
		math.Abs(prev.BBox.Y-frag.BBox.Y) <= m.config.MaxDuplicateShift
}

// topFraction converts a box's top edge to a fraction of page height,
// 0 at the top of the page. Pages without a usable height report the
// middle of the page so position rules stay neutral.
func topFraction(bbox model.BBox, pageHeight float64) float64 {
	if pageHeight <= 0 {
		return 0.5
	}
	frac := (pageHeight - bbox.Top()) / pageHeight
	if frac < 0 {
		return 0
	}
	if frac > 1 {
		return 1
	}
	return frac
}
