package layout

import (
	"testing"

	"github.com/tsawler/outliner/model"
)

func TestAssembleTitleSelection(t *testing.T) {
	classified := []model.ClassifiedLine{
		classify(makeLine("Understanding AI", 1, 18, true, 0.05), model.LabelTitle),
		classify(makeLine("1. History", 2, 11, true, 0.2), model.LabelH1),
	}
	profile := model.DocumentProfile{PageCount: 2}

	outline := NewAssembler().Assemble(classified, profile)
	if outline.Title != "Understanding AI" {
		t.Errorf("Title = %q, want %q", outline.Title, "Understanding AI")
	}
	if len(outline.Entries) != 1 || outline.Entries[0].Text != "1. History" {
		t.Errorf("Entries = %+v, want single H1 entry", outline.Entries)
	}
}

func TestAssembleTitleFallsBackToFirstH1OnPageOne(t *testing.T) {
	classified := []model.ClassifiedLine{
		classify(makeLine("body text", 1, 10, false, 0.3), model.LabelBody),
		classify(makeLine("Main Heading", 1, 16, true, 0.2), model.LabelH1),
		classify(makeLine("Later Heading", 2, 16, true, 0.2), model.LabelH1),
	}
	profile := model.DocumentProfile{PageCount: 2}

	outline := NewAssembler().Assemble(classified, profile)
	if outline.Title != "Main Heading" {
		t.Errorf("Title = %q, want fallback to first page-1 H1", outline.Title)
	}
	// The title line never duplicates as an outline entry
	if len(outline.Entries) != 1 || outline.Entries[0].Text != "Later Heading" {
		t.Errorf("Entries = %+v, want only %q", outline.Entries, "Later Heading")
	}
}

func TestAssembleTitleNeverFabricated(t *testing.T) {
	classified := []model.ClassifiedLine{
		classify(makeLine("some body", 1, 10, false, 0.4), model.LabelBody),
		classify(makeLine("2.1 Section", 2, 12, false, 0.3), model.LabelH2),
	}
	profile := model.DocumentProfile{PageCount: 2}

	outline := NewAssembler().Assemble(classified, profile)
	if outline.Title != "" {
		t.Errorf("Title = %q, want empty string (no Title, no page-1 H1)", outline.Title)
	}
}

func TestAssembleSuppressesRunningHeaders(t *testing.T) {
	var classified []model.ClassifiedLine
	for page := 1; page <= 6; page++ {
		classified = append(classified, classify(makeLine("Confidential Draft", page, 12, true, 0.02), model.LabelH2))
	}
	for page := 1; page <= 10; page++ {
		classified = append(classified, classify(makeLine("filler", page, 10, false, 0.5), model.LabelBody))
	}
	classified = append(classified, classify(makeLine("Real Heading", 3, 16, true, 0.2), model.LabelH1))
	profile := model.DocumentProfile{PageCount: 10}

	outline := NewAssembler().Assemble(classified, profile)
	for _, e := range outline.Entries {
		if e.Text == "Confidential Draft" {
			t.Fatal("running header must not appear in the outline")
		}
	}
	if len(outline.Entries) != 1 || outline.Entries[0].Text != "Real Heading" {
		t.Errorf("Entries = %+v, want only %q", outline.Entries, "Real Heading")
	}
}

func TestAssembleLevelSoundness(t *testing.T) {
	classified := []model.ClassifiedLine{
		classify(makeLine("Title Line", 1, 20, true, 0.05), model.LabelTitle),
		classify(makeLine("H1 Line", 1, 18, true, 0.2), model.LabelH1),
		classify(makeLine("H2 Line", 1, 12, false, 0.3), model.LabelH2),
		classify(makeLine("H3 Line", 1, 8, false, 0.4), model.LabelH3),
		classify(makeLine("Body Line", 1, 6, false, 0.5), model.LabelBody),
	}
	profile := model.DocumentProfile{PageCount: 1}

	outline := NewAssembler().Assemble(classified, profile)
	if len(outline.Entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(outline.Entries))
	}
	for _, e := range outline.Entries {
		if !e.Level.IsHeading() {
			t.Errorf("entry %q has non-heading level %v", e.Text, e.Level)
		}
		if e.Page < 1 || e.Page > profile.PageCount {
			t.Errorf("entry %q has out-of-range page %d", e.Text, e.Page)
		}
	}
}

func TestAssemblePreservesReadingOrder(t *testing.T) {
	classified := []model.ClassifiedLine{
		classify(makeLine("First", 1, 16, true, 0.2), model.LabelH2),
		classify(makeLine("Second", 2, 16, true, 0.2), model.LabelH1),
		classify(makeLine("Third", 3, 16, true, 0.2), model.LabelH3),
	}
	profile := model.DocumentProfile{PageCount: 3}

	outline := NewAssembler().Assemble(classified, profile)
	order := []string{"First", "Second", "Third"}
	if len(outline.Entries) != len(order) {
		t.Fatalf("expected %d entries, got %d", len(order), len(outline.Entries))
	}
	for i, want := range order {
		if outline.Entries[i].Text != want {
			t.Errorf("Entries[%d].Text = %q, want %q (reading order violated)", i, outline.Entries[i].Text, want)
		}
	}
}

func TestAssembleEmptyInput(t *testing.T) {
	outline := NewAssembler().Assemble(nil, model.DocumentProfile{})
	if outline.Title != "" {
		t.Errorf("Title = %q, want empty", outline.Title)
	}
	if outline.Entries == nil {
		t.Error("Entries must be an empty slice, never nil")
	}
	if len(outline.Entries) != 0 {
		t.Errorf("Entries = %+v, want none", outline.Entries)
	}
}
