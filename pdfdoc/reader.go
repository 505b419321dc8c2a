package pdfdoc

import (
	"context"
	"fmt"
	"math"

	pdflib "github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/tsawler/outliner/model"
)

// US Letter, used when a page carries no usable MediaBox
const (
	defaultPageWidth  = 612.0
	defaultPageHeight = 792.0
)

// wordGapFraction is the inter-run gap, as a fraction of font size, above
// which two glyph runs belong to separate words
const wordGapFraction = 0.3

// PageCount returns the document's page count without decoding content
// streams. Guards can reject oversized documents before any heavy work.
func PageCount(path string) (int, error) {
	n, err := api.PageCountFile(path)
	if err != nil {
		return 0, fmt.Errorf("page count of %s: %w", path, err)
	}
	return n, nil
}

// Read decodes a PDF into the fragment contract. The context is checked
// between pages so a budget expiry abandons the decode promptly.
//
// Malformed files make the underlying library panic; those are recovered
// and reported as ordinary decode errors.
func Read(ctx context.Context, path string) (doc *model.Document, err error) {
	defer func() {
		if r := recover(); r != nil {
			doc = nil
			err = fmt.Errorf("decode %s: %v", path, r)
		}
	}()

	f, reader, err := pdflib.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	doc = &model.Document{PageCount: reader.NumPage()}

	for i := 1; i <= doc.PageCount; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page := model.PageFragments{
			Index:  i,
			Width:  defaultPageWidth,
			Height: defaultPageHeight,
		}

		p := reader.Page(i)
		if !p.V.IsNull() {
			if w, h, ok := mediaBoxSize(p.V); ok {
				page.Width, page.Height = w, h
			}
			page.Fragments = assembleRuns(p.Content().Text, i)
		}

		if len(page.Fragments) > 0 {
			doc.HasText = true
		}
		doc.Pages = append(doc.Pages, page)
	}

	return doc, nil
}

// assembleRuns groups per-glyph decoder output into word-level fragments.
// A new fragment starts on a baseline shift, a font change, or a
// horizontal gap wide enough to be a word boundary.
func assembleRuns(texts []pdflib.Text, pageIndex int) []model.TextFragment {
	var fragments []model.TextFragment

	var (
		run      []pdflib.Text
		runText  string
		runEndX  float64
		runStart pdflib.Text
	)

	flush := func() {
		if len(run) == 0 {
			return
		}
		text := CleanText(runText)
		if text != "" {
			height := runStart.FontSize
			if height <= 0 {
				height = 1
			}
			fragments = append(fragments, model.TextFragment{
				Page:     pageIndex,
				Text:     text,
				BBox:     model.NewBBox(runStart.X, runStart.Y, runEndX-runStart.X, height),
				FontName: runStart.Font,
				FontSize: runStart.FontSize,
				Bold:     IsBoldFont(runStart.Font),
				Italic:   IsItalicFont(runStart.Font),
			})
		}
		run = nil
		runText = ""
	}

	for _, t := range texts {
		if t.S == "" {
			continue
		}

		width := t.W
		if width <= 0 {
			width = t.FontSize * 0.5 * float64(len([]rune(t.S)))
		}

		if len(run) > 0 {
			prev := run[len(run)-1]
			sameBaseline := math.Abs(t.Y-prev.Y) <= math.Max(prev.FontSize, 1)*0.2
			sameFont := t.Font == prev.Font && t.FontSize == prev.FontSize
			gap := t.X - runEndX
			if !sameBaseline || !sameFont || gap > math.Max(t.FontSize, 1)*wordGapFraction || gap < -1 {
				flush()
			}
		}

		if len(run) == 0 {
			runStart = t
		}
		run = append(run, t)
		runText += t.S
		runEndX = t.X + width
	}
	flush()

	return fragments
}

// mediaBoxSize resolves a page's dimensions, walking up the page tree for
// inherited MediaBox entries. The walk is depth-bounded against cyclic
// Parent references in damaged files.
func mediaBoxSize(v pdflib.Value) (width, height float64, ok bool) {
	for depth := 0; depth < 32 && !v.IsNull(); depth++ {
		mb := v.Key("MediaBox")
		if !mb.IsNull() && mb.Len() == 4 {
			w := mb.Index(2).Float64() - mb.Index(0).Float64()
			h := mb.Index(3).Float64() - mb.Index(1).Float64()
			if w > 0 && h > 0 {
				return w, h, true
			}
		}
		v = v.Key("Parent")
	}
	return 0, 0, false
}
