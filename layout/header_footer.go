package layout

import (
	"regexp"

	"github.com/tsawler/outliner/model"
)

// RepetitionConfig holds configuration for running header/footer detection
type RepetitionConfig struct {
	// MinOccurrenceRatio is the fraction of pages a text must exceed to be
	// treated as a running header or footer
	// Default: 0.5 (more than half of the pages)
	MinOccurrenceRatio float64

	// MinPages is the minimum document length for repetition filtering;
	// below it every text trivially repeats
	// Default: 2
	MinPages int
}

// DefaultRepetitionConfig returns sensible default configuration
func DefaultRepetitionConfig() RepetitionConfig {
	return RepetitionConfig{
		MinOccurrenceRatio: 0.5,
		MinPages:           2,
	}
}

// RepetitionFilter finds text that repeats across pages. Such lines are
// layout artifacts (running headers, footers, page numbers), not document
// structure, and are excluded from the outline regardless of label.
type RepetitionFilter struct {
	config RepetitionConfig
}

// NewRepetitionFilter creates a filter with default configuration
func NewRepetitionFilter() *RepetitionFilter {
	return &RepetitionFilter{config: DefaultRepetitionConfig()}
}

// NewRepetitionFilterWithConfig creates a filter with custom configuration
func NewRepetitionFilterWithConfig(config RepetitionConfig) *RepetitionFilter {
	return &RepetitionFilter{config: config}
}

// RepeatedTexts returns the normalized texts that appear on more than the
// configured fraction of pages. Comparison replaces digit runs with a
// placeholder so "Page 3" and "Page 4" count as the same running text.
func (f *RepetitionFilter) RepeatedTexts(lines []model.ClassifiedLine, pageCount int) map[string]bool {
	if pageCount < f.config.MinPages {
		return nil
	}

	pagesByText := make(map[string]map[int]bool)
	for _, line := range lines {
		key := normalizeRepetition(line.Text)
		if key == "" {
			continue
		}
		if pagesByText[key] == nil {
			pagesByText[key] = make(map[int]bool)
		}
		pagesByText[key][line.Page] = true
	}

	threshold := float64(pageCount) * f.config.MinOccurrenceRatio
	repeated := make(map[string]bool)
	for key, pages := range pagesByText {
		if float64(len(pages)) > threshold {
			repeated[key] = true
		}
	}
	if len(repeated) == 0 {
		return nil
	}
	return repeated
}

var digitRuns = regexp.MustCompile(`\d+`)

// normalizeRepetition canonicalizes a line for cross-page comparison
func normalizeRepetition(text string) string {
	return digitRuns.ReplaceAllString(text, "#")
}
