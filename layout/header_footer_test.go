package layout

import (
	"testing"

	"github.com/tsawler/outliner/model"
)

// classify wraps a line with a label for filter and assembler tests
func classify(line model.Line, label model.Label) model.ClassifiedLine {
	return model.ClassifiedLine{Line: line, Label: label}
}

func TestRepeatedTextsAcrossPages(t *testing.T) {
	// "Confidential Draft" appears identically on 6 of 10 pages
	var lines []model.ClassifiedLine
	for page := 1; page <= 6; page++ {
		lines = append(lines, classify(makeLine("Confidential Draft", page, 9, false, 0.02), model.LabelH3))
	}
	lines = append(lines, classify(makeLine("Actual Heading", 2, 16, true, 0.1), model.LabelH1))

	repeated := NewRepetitionFilter().RepeatedTexts(lines, 10)
	if !repeated[normalizeRepetition("Confidential Draft")] {
		t.Error("text on 6 of 10 pages must be treated as a running header")
	}
	if repeated[normalizeRepetition("Actual Heading")] {
		t.Error("text on a single page must not be filtered")
	}
}

func TestRepeatedTextsExactlyHalfIsKept(t *testing.T) {
	var lines []model.ClassifiedLine
	for page := 1; page <= 5; page++ {
		lines = append(lines, classify(makeLine("Half Header", page, 9, false, 0.02), model.LabelH3))
	}

	repeated := NewRepetitionFilter().RepeatedTexts(lines, 10)
	if repeated[normalizeRepetition("Half Header")] {
		t.Error("exactly half of the pages does not exceed the threshold")
	}
}

func TestRepeatedTextsDigitNormalization(t *testing.T) {
	// Page numbers differ per page but normalize to the same key
	var lines []model.ClassifiedLine
	for page := 1; page <= 4; page++ {
		lines = append(lines, classify(makeLine("Page 1 of 4", page, 8, false, 0.98), model.LabelBody))
	}
	lines[1].Text = "Page 2 of 4"
	lines[2].Text = "Page 3 of 4"
	lines[3].Text = "Page 4 of 4"

	repeated := NewRepetitionFilter().RepeatedTexts(lines, 4)
	if !repeated[normalizeRepetition("Page 2 of 4")] {
		t.Error("numbered footers must normalize to a shared key")
	}
}

func TestRepeatedTextsSinglePageDocument(t *testing.T) {
	lines := []model.ClassifiedLine{
		classify(makeLine("Everything repeats trivially", 1, 12, false, 0.5), model.LabelH2),
	}

	if repeated := NewRepetitionFilter().RepeatedTexts(lines, 1); repeated != nil {
		t.Errorf("single-page documents must not be filtered, got %v", repeated)
	}
}

func TestNormalizeRepetition(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"Page 12", "Page #"},
		{"3.1 Methods", "#.# Methods"},
		{"no digits", "no digits"},
	}

	for _, tt := range tests {
		if got := normalizeRepetition(tt.in); got != tt.expected {
			t.Errorf("normalizeRepetition(%q) = %q, want %q", tt.in, got, tt.expected)
		}
	}
}
