package layout

import (
	"testing"

	"github.com/tsawler/outliner/model"
)

// makeLine creates a line for profiler and classifier tests
func makeLine(text string, page int, fontSize float64, bold bool, topFraction float64) model.Line {
	return model.Line{
		Page:        page,
		Text:        text,
		FontSize:    fontSize,
		Bold:        bold,
		TopFraction: topFraction,
	}
}

func TestProfileMaxFontSize(t *testing.T) {
	lines := []model.Line{
		makeLine("Cover Art Text", 1, 36, true, 0.1),
		makeLine("some body text on the page here", 1, 11, false, 0.5),
		makeLine("more body text keeps on going along", 1, 11, false, 0.6),
	}

	profile := NewStyleProfiler().Profile(lines, 3)
	if profile.MaxFontSize != 36 {
		t.Errorf("MaxFontSize = %f, want 36", profile.MaxFontSize)
	}
	if profile.PageCount != 3 {
		t.Errorf("PageCount = %d, want 3", profile.PageCount)
	}
}

func TestProfileBodyFontSizeIsMode(t *testing.T) {
	lines := []model.Line{
		makeLine("Huge Decorative Cover Title", 1, 48, true, 0.05),
		makeLine("paragraph text number one goes here", 1, 11, false, 0.4),
		makeLine("paragraph text number two goes here", 1, 11, false, 0.5),
		makeLine("paragraph text number three goes here", 2, 11, false, 0.3),
		makeLine("a single large quote spanning many words", 2, 18, false, 0.5),
	}

	profile := NewStyleProfiler().Profile(lines, 2)
	if profile.BodyFontSize != 11 {
		t.Errorf("BodyFontSize = %f, want 11", profile.BodyFontSize)
	}
}

func TestProfileShortLinesExcludedFromBodyEstimate(t *testing.T) {
	// Short heading-like lines outnumber paragraphs but must not set the
	// body size
	lines := []model.Line{
		makeLine("One", 1, 20, true, 0.1),
		makeLine("Two", 1, 20, true, 0.3),
		makeLine("Three", 1, 20, true, 0.5),
		makeLine("the only real paragraph in this document", 1, 10, false, 0.7),
	}

	profile := NewStyleProfiler().Profile(lines, 1)
	if profile.BodyFontSize != 10 {
		t.Errorf("BodyFontSize = %f, want 10", profile.BodyFontSize)
	}
}

func TestProfileDegenerateFallsBackToMax(t *testing.T) {
	tests := []struct {
		name  string
		lines []model.Line
	}{
		{"no lines", nil},
		{"single line", []model.Line{makeLine("Lonely", 1, 14, false, 0.2)}},
		{"no paragraph-like lines", []model.Line{
			makeLine("A", 1, 14, false, 0.2),
			makeLine("B", 1, 12, false, 0.4),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := NewStyleProfiler().Profile(tt.lines, 1)
			if profile.BodyFontSize != profile.MaxFontSize {
				t.Errorf("BodyFontSize = %f, want MaxFontSize %f",
					profile.BodyFontSize, profile.MaxFontSize)
			}
		})
	}
}

func TestProfileSizeCounts(t *testing.T) {
	lines := []model.Line{
		makeLine("a", 1, 11.3, false, 0.5),
		makeLine("b", 1, 10.8, false, 0.5),
		makeLine("c", 1, 14, false, 0.5),
	}

	profile := NewStyleProfiler().Profile(lines, 1)
	if profile.SizeCounts[11] != 2 {
		t.Errorf("SizeCounts[11] = %d, want 2 (11.3 and 10.8 share a bucket)", profile.SizeCounts[11])
	}
	if profile.SizeCounts[14] != 1 {
		t.Errorf("SizeCounts[14] = %d, want 1", profile.SizeCounts[14])
	}
}
