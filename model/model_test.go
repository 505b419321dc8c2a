package model

import (
	"encoding/json"
	"testing"
)

func TestBBoxUnion(t *testing.T) {
	a := NewBBox(0, 0, 10, 10)
	b := NewBBox(5, 5, 10, 10)

	u := a.Union(b)
	if u.X != 0 || u.Y != 0 || u.Width != 15 || u.Height != 15 {
		t.Errorf("Union = %+v, want {0 0 15 15}", u)
	}
}

func TestBBoxVerticalOverlap(t *testing.T) {
	tests := []struct {
		name     string
		a, b     BBox
		expected float64
	}{
		{"full overlap", NewBBox(0, 0, 10, 10), NewBBox(20, 0, 10, 10), 10},
		{"partial overlap", NewBBox(0, 0, 10, 10), NewBBox(0, 5, 10, 10), 5},
		{"no overlap", NewBBox(0, 0, 10, 10), NewBBox(0, 20, 10, 10), 0},
		{"touching edges", NewBBox(0, 0, 10, 10), NewBBox(0, 10, 10, 10), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.VerticalOverlap(tt.b); got != tt.expected {
				t.Errorf("VerticalOverlap = %f, want %f", got, tt.expected)
			}
		})
	}
}

func TestLabelString(t *testing.T) {
	tests := []struct {
		label    Label
		expected string
	}{
		{LabelBody, "Body"},
		{LabelTitle, "Title"},
		{LabelH1, "H1"},
		{LabelH2, "H2"},
		{LabelH3, "H3"},
	}

	for _, tt := range tests {
		if got := tt.label.String(); got != tt.expected {
			t.Errorf("Label(%d).String() = %q, want %q", tt.label, got, tt.expected)
		}
	}
}

func TestLabelDepth(t *testing.T) {
	if LabelH1.Depth() != 1 || LabelH2.Depth() != 2 || LabelH3.Depth() != 3 {
		t.Error("heading depths must be 1, 2, 3")
	}
	if LabelBody.Depth() != 0 || LabelTitle.Depth() != 0 {
		t.Error("non-heading labels must have depth 0")
	}
}

func TestOutlineJSONContract(t *testing.T) {
	o := Outline{
		Title: "Understanding AI",
		Entries: []OutlineEntry{
			{Level: LabelH1, Text: "1. History", Page: 2},
			{Level: LabelH3, Text: "Early Work", Page: 2},
		},
	}

	data, err := json.Marshal(o)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	expected := `{"title":"Understanding AI","outline":[{"level":"H1","text":"1. History","page":2},{"level":"H3","text":"Early Work","page":2}]}`
	if string(data) != expected {
		t.Errorf("JSON = %s, want %s", data, expected)
	}
}

func TestOutlineJSONEmptyNeverNull(t *testing.T) {
	data, err := json.Marshal(Outline{})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	expected := `{"title":"","outline":[]}`
	if string(data) != expected {
		t.Errorf("JSON = %s, want %s", data, expected)
	}
}

func TestLabelRoundTrip(t *testing.T) {
	for _, label := range []Label{LabelBody, LabelTitle, LabelH1, LabelH2, LabelH3} {
		data, err := json.Marshal(label)
		if err != nil {
			t.Fatalf("Marshal(%v) failed: %v", label, err)
		}
		var got Label
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatalf("Unmarshal(%s) failed: %v", data, err)
		}
		if got != label {
			t.Errorf("round trip %v -> %s -> %v", label, data, got)
		}
	}
}

func TestDocumentFragmentCount(t *testing.T) {
	doc := &Document{
		PageCount: 2,
		Pages: []PageFragments{
			{Index: 1, Fragments: []TextFragment{{Text: "a"}, {Text: "b"}}},
			{Index: 2, Fragments: []TextFragment{{Text: "c"}}},
		},
	}
	if got := doc.FragmentCount(); got != 3 {
		t.Errorf("FragmentCount = %d, want 3", got)
	}

	var nilDoc *Document
	if nilDoc.FragmentCount() != 0 {
		t.Error("nil document must report zero fragments")
	}
}

func TestProfileRelativeSize(t *testing.T) {
	p := DocumentProfile{MaxFontSize: 20}
	if got := p.RelativeSize(10); got != 0.5 {
		t.Errorf("RelativeSize = %f, want 0.5", got)
	}

	degenerate := DocumentProfile{}
	if degenerate.RelativeSize(10) != 0 {
		t.Error("degenerate profile must return 0")
	}
}
