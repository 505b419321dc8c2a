package layout

import (
	"math"

	"github.com/tsawler/outliner/model"
)

// ProfilerConfig holds configuration for document-wide style statistics
type ProfilerConfig struct {
	// MinBodyWords is the minimum word count for a line to be considered
	// paragraph-like when estimating the body font size
	// Default: 4
	MinBodyWords int
}

// DefaultProfilerConfig returns sensible default configuration
func DefaultProfilerConfig() ProfilerConfig {
	return ProfilerConfig{
		MinBodyWords: 4,
	}
}

// StyleProfiler computes the immutable DocumentProfile the classifier
// normalizes against.
type StyleProfiler struct {
	config ProfilerConfig
}

// NewStyleProfiler creates a profiler with default configuration
func NewStyleProfiler() *StyleProfiler {
	return &StyleProfiler{config: DefaultProfilerConfig()}
}

// NewStyleProfilerWithConfig creates a profiler with custom configuration
func NewStyleProfilerWithConfig(config ProfilerConfig) *StyleProfiler {
	return &StyleProfiler{config: config}
}

// Profile computes document-wide font statistics over the full
// reading-order line sequence.
func (p *StyleProfiler) Profile(lines []model.Line, pageCount int) model.DocumentProfile {
	profile := model.DocumentProfile{
		SizeCounts: make(map[int]int),
		PageCount:  pageCount,
	}

	for _, line := range lines {
		if line.FontSize > profile.MaxFontSize {
			profile.MaxFontSize = line.FontSize
		}
		profile.SizeCounts[roundSize(line.FontSize)]++
	}

	profile.BodyFontSize = p.bodyFontSize(lines)
	if profile.BodyFontSize == 0 || len(lines) < 2 {
		// Degenerate documents: avoid divide-by-zero ratios downstream
		profile.BodyFontSize = profile.MaxFontSize
	}

	return profile
}

// bodyFontSize returns the most common rounded size among paragraph-like
// lines. Restricting to longer lines keeps cover-page art text from
// dominating the estimate.
func (p *StyleProfiler) bodyFontSize(lines []model.Line) float64 {
	counts := make(map[int]int)
	for _, line := range lines {
		if line.WordCount() < p.config.MinBodyWords {
			continue
		}
		counts[roundSize(line.FontSize)]++
	}

	best, bestCount := 0, 0
	for size, count := range counts {
		// Prefer the smaller size on equal counts so headings sharing a
		// bucket with body text do not inflate the estimate
		if count > bestCount || (count == bestCount && size < best) {
			best = size
			bestCount = count
		}
	}
	return float64(best)
}

// roundSize buckets a font size to the nearest whole point
func roundSize(size float64) int {
	return int(math.Round(size))
}
