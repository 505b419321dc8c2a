package layout

import (
	"github.com/tsawler/outliner/model"
)

// Assembler walks classified lines in reading order and builds the final
// outline: title selection, running header/footer suppression, and
// projection of heading lines to outline entries.
type Assembler struct {
	repetition *RepetitionFilter
}

// NewAssembler creates an assembler with default configuration
func NewAssembler() *Assembler {
	return &Assembler{repetition: NewRepetitionFilter()}
}

// NewAssemblerWithConfig creates an assembler with custom repetition
// filtering configuration
func NewAssemblerWithConfig(config RepetitionConfig) *Assembler {
	return &Assembler{repetition: NewRepetitionFilterWithConfig(config)}
}

// Assemble builds the outline from the full classified sequence. The input
// must already be in reading order; the output preserves it. Level jumps
// are allowed: source documents are not assumed well-formed, so no
// hierarchy validation is imposed beyond label fidelity.
func (a *Assembler) Assemble(classified []model.ClassifiedLine, profile model.DocumentProfile) model.Outline {
	outline := model.Outline{Entries: make([]model.OutlineEntry, 0, len(classified)/8)}

	titleIdx := a.selectTitle(classified)
	if titleIdx >= 0 {
		outline.Title = classified[titleIdx].Text
	}

	repeated := a.repetition.RepeatedTexts(classified, profile.PageCount)

	for i, line := range classified {
		if !line.Label.IsHeading() {
			continue
		}
		// The title never duplicates as an outline entry
		if i == titleIdx {
			continue
		}
		if line.Text == "" {
			continue
		}
		if repeated[normalizeRepetition(line.Text)] {
			continue
		}
		// Page numbers must stay within the document
		if profile.PageCount > 0 && (line.Page < 1 || line.Page > profile.PageCount) {
			continue
		}

		outline.Entries = append(outline.Entries, model.OutlineEntry{
			Level: line.Label,
			Text:  line.Text,
			Page:  line.Page,
		})
	}

	return outline
}

// selectTitle returns the index of the title line: the first line labeled
// Title, or the first H1 on page 1, or -1. A missing title is reported as
// the empty string, never fabricated.
func (a *Assembler) selectTitle(classified []model.ClassifiedLine) int {
	for i, line := range classified {
		if line.Label == model.LabelTitle && line.Text != "" {
			return i
		}
	}
	for i, line := range classified {
		if line.Label == model.LabelH1 && line.Page == 1 && line.Text != "" {
			return i
		}
	}
	return -1
}
