package model

import (
	"encoding/json"
	"fmt"
)

// OutlineEntry is one heading in the final outline. Level is restricted to
// H1, H2 and H3; Body and Title lines never become entries.
type OutlineEntry struct {
	Level Label  `json:"level"`
	Text  string `json:"text"`
	Page  int    `json:"page"`
}

// MarshalJSON serializes a label using its external name ("H1", "H2", "H3").
func (l Label) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// UnmarshalJSON parses a label from its external name.
func (l *Label) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "Title":
		*l = LabelTitle
	case "H1":
		*l = LabelH1
	case "H2":
		*l = LabelH2
	case "H3":
		*l = LabelH3
	case "Body":
		*l = LabelBody
	default:
		return fmt.Errorf("unknown label %q", s)
	}
	return nil
}

// Outline is the final structure produced for one document: a title
// (possibly empty, never fabricated) and the ordered heading entries.
// Field order is part of the external contract.
type Outline struct {
	Title   string         `json:"title"`
	Entries []OutlineEntry `json:"outline"`
}

// MarshalJSON guarantees that "outline" is emitted as [] rather than null
// when no headings were found.
func (o Outline) MarshalJSON() ([]byte, error) {
	entries := o.Entries
	if entries == nil {
		entries = []OutlineEntry{}
	}
	type wire struct {
		Title   string         `json:"title"`
		Entries []OutlineEntry `json:"outline"`
	}
	return json.Marshal(wire{Title: o.Title, Entries: entries})
}

// EntryCount returns the number of outline entries
func (o Outline) EntryCount() int {
	return len(o.Entries)
}

// MaxPage returns the largest page number referenced by the outline,
// or 0 for an empty outline.
func (o Outline) MaxPage() int {
	max := 0
	for _, e := range o.Entries {
		if e.Page > max {
			max = e.Page
		}
	}
	return max
}
