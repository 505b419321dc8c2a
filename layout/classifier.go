package layout

import (
	"context"
	"regexp"
	"strings"
	"sync"

	"github.com/tsawler/outliner/model"
)

// ClassifierConfig holds the tunable thresholds of the rule pipeline.
// The values are heuristic calibration; only their ordering is fixed.
type ClassifierConfig struct {
	// H1SizeRatio, H2SizeRatio, H3SizeRatio are the relative-size
	// thresholds (line size / document max size) for the three tiers
	// Defaults: 0.80, 0.50, 0.30
	H1SizeRatio float64
	H2SizeRatio float64
	H3SizeRatio float64

	// H1BoostRatio lets a bold, top-of-page line reach H1 below the raw
	// H1 threshold
	// Default: 0.60
	H1BoostRatio float64

	// TopFraction is the vertical fraction below which a line counts as
	// top-of-page
	// Default: 0.15
	TopFraction float64

	// MaxHeadingWords demotes longer unpatterned lines to body text
	// Default: 15
	MaxHeadingWords int

	// NumberPattern matches leading numbering schemes ("2.", "3.1 ", ...)
	NumberPattern *regexp.Regexp

	// KeywordPattern matches chapter-style lead words that pin H1
	KeywordPattern *regexp.Regexp

	// BulletPrefixes are glyphs that pin a line to H3
	BulletPrefixes []string
}

// DefaultClassifierConfig returns sensible default configuration
func DefaultClassifierConfig() ClassifierConfig {
	return ClassifierConfig{
		H1SizeRatio:     0.80,
		H2SizeRatio:     0.50,
		H3SizeRatio:     0.30,
		H1BoostRatio:    0.60,
		TopFraction:     0.15,
		MaxHeadingWords: 15,
		NumberPattern:   regexp.MustCompile(`^(\d+(?:\.\d+)*)\.?\s+`),
		KeywordPattern:  regexp.MustCompile(`^(?i)(chapter|section|part|appendix|introduction|conclusion)\b`),
		BulletPrefixes:  []string{"• ", "● ", "- ", "○ "},
	}
}

// Classifier assigns a label to each line. Classification is a pure
// function of the line and the document profile; no state is carried
// between lines.
type Classifier struct {
	config ClassifierConfig
}

// NewClassifier creates a classifier with default configuration
func NewClassifier() *Classifier {
	return &Classifier{config: DefaultClassifierConfig()}
}

// NewClassifierWithConfig creates a classifier with custom configuration
func NewClassifierWithConfig(config ClassifierConfig) *Classifier {
	return &Classifier{config: config}
}

// Classify labels a single line. The rules run in a fixed order: pattern
// pin, size tier, style/position refinement, length demotion. A pattern
// pin is a floor; later rules may move the level shallower, never deeper.
func (c *Classifier) Classify(line model.Line, profile model.DocumentProfile) model.ClassifiedLine {
	ratio := profile.RelativeSize(line.FontSize)
	topOfPage := line.TopFraction < c.config.TopFraction
	pin := c.patternDepth(line.Text)

	// Title candidate: dominant size at the very top of page 1
	if line.Page == 1 && topOfPage && ratio > c.config.H1SizeRatio && pin == 0 {
		return model.ClassifiedLine{Line: line, Label: model.LabelTitle, Confidence: 1}
	}

	depth := c.sizeDepth(ratio)

	if pin > 0 {
		// Size may refine above the pin, never below it
		if depth == 0 || depth > pin {
			depth = pin
		}
	} else {
		// Style and position refinement
		if depth == 2 && line.Bold && topOfPage && ratio > c.config.H1BoostRatio {
			depth = 1
		}
		if depth == 0 && line.Bold && topOfPage {
			depth = 3
		}
		// Length cap demotes only unpatterned lines
		if depth != 0 && line.WordCount() > c.config.MaxHeadingWords {
			depth = 0
		}
	}

	return model.ClassifiedLine{
		Line:       line,
		Label:      depthLabel(depth),
		Confidence: c.confidence(line, depth, pin, topOfPage),
	}
}

// ClassifyAll labels every line in order
func (c *Classifier) ClassifyAll(lines []model.Line, profile model.DocumentProfile) []model.ClassifiedLine {
	classified := make([]model.ClassifiedLine, len(lines))
	for i, line := range lines {
		classified[i] = c.Classify(line, profile)
	}
	return classified
}

// ClassifyAllParallel labels lines using a bounded number of workers.
// Results are identical to ClassifyAll; each worker writes disjoint
// indices, so no locking is required. A cancelled context returns nil.
func (c *Classifier) ClassifyAllParallel(ctx context.Context, lines []model.Line, profile model.DocumentProfile, workers int) []model.ClassifiedLine {
	if workers <= 1 || len(lines) < 2*workers {
		return c.ClassifyAll(lines, profile)
	}

	classified := make([]model.ClassifiedLine, len(lines))
	chunk := (len(lines) + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < len(lines); start += chunk {
		end := start + chunk
		if end > len(lines) {
			end = len(lines)
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				if ctx.Err() != nil {
					return
				}
				classified[i] = c.Classify(lines[i], profile)
			}
		}(start, end)
	}
	wg.Wait()

	if ctx.Err() != nil {
		return nil
	}
	return classified
}

// patternDepth returns the heading depth pinned by a textual pattern,
// or 0 when no pattern matches.
func (c *Classifier) patternDepth(text string) int {
	text = strings.TrimSpace(text)

	if c.config.KeywordPattern != nil && c.config.KeywordPattern.MatchString(text) {
		return 1
	}

	if c.config.NumberPattern != nil {
		if m := c.config.NumberPattern.FindStringSubmatch(text); m != nil {
			groups := strings.Count(m[1], ".") + 1
			if groups > 3 {
				groups = 3
			}
			return groups
		}
	}

	for _, prefix := range c.config.BulletPrefixes {
		if strings.HasPrefix(text, prefix) {
			return 3
		}
	}

	return 0
}

// sizeDepth maps a relative size to a heading depth (0 = body)
func (c *Classifier) sizeDepth(ratio float64) int {
	switch {
	case ratio > c.config.H1SizeRatio:
		return 1
	case ratio > c.config.H2SizeRatio:
		return 2
	case ratio > c.config.H3SizeRatio:
		return 3
	default:
		return 0
	}
}

// confidence computes the tie-breaking score. It is never exposed
// externally.
func (c *Classifier) confidence(line model.Line, depth, pin int, topOfPage bool) float64 {
	conf := 0.0
	switch depth {
	case 1:
		conf += 0.5
	case 2:
		conf += 0.35
	case 3:
		conf += 0.2
	}
	if pin > 0 {
		conf += 0.2
	}
	if line.Bold {
		conf += 0.2
	}
	if topOfPage {
		conf += 0.15
	}
	if line.WordCount() <= 10 {
		conf += 0.1
	}
	if conf > 1.0 {
		conf = 1.0
	}
	return conf
}

// depthLabel converts a numeric depth to a label
func depthLabel(depth int) model.Label {
	switch depth {
	case 1:
		return model.LabelH1
	case 2:
		return model.LabelH2
	case 3:
		return model.LabelH3
	default:
		return model.LabelBody
	}
}
