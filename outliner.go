// Package outliner derives a structured outline (title plus H1/H2/H3
// headings with page numbers) from PDF documents using layout signals:
// font size relative to the document maximum, numbering and keyword
// patterns, boldness, and position on the page.
//
// Basic usage:
//
//	outline, err := outliner.Open("document.pdf").Outline(ctx)
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(outline.Title)
//
// With options:
//
//	outline, err := outliner.Open("report.pdf").
//	    MaxPages(100).
//	    Budget(30 * time.Second).
//	    Outline(ctx)
//
// For advanced use cases, the lower-level layout and pdfdoc packages are
// also available.
package outliner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tsawler/outliner/layout"
	"github.com/tsawler/outliner/model"
	"github.com/tsawler/outliner/pdfdoc"
)

// Open prepares a PDF file for outline derivation and returns an Engine
// for fluent configuration. No I/O happens until a terminal operation
// like Outline() is called.
//
// Example:
//
//	outline, err := outliner.Open("document.pdf").Outline(ctx)
func Open(filename string) *Engine {
	return &Engine{
		filename: filename,
		options:  defaultEngineOptions(),
	}
}

// FromDocument creates an Engine from an already-decoded document. This
// is useful when fragments come from a different decoder or are built in
// tests.
//
// Example:
//
//	outline, err := outliner.FromDocument(doc).Outline(ctx)
func FromDocument(doc *model.Document) *Engine {
	return &Engine{
		doc:     doc,
		options: defaultEngineOptions(),
	}
}

// Engine provides a fluent interface for deriving outlines. Each
// configuration method returns a new Engine instance, making it safe for
// concurrent use and allowing method chaining.
type Engine struct {
	// Source (exactly one is set)
	filename string
	doc      *model.Document

	// Configuration
	options engineOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Engine with a deep copy of options.
// This ensures immutability - each chain method returns a new instance.
func (e *Engine) clone() *Engine {
	return &Engine{
		filename: e.filename,
		doc:      e.doc,
		options:  e.options.clone(),
		err:      e.err,
	}
}

// MaxPages sets the page-count limit. Documents with more pages are
// rejected with a PageLimitError before any content is decoded.
// A limit of 0 disables the check.
func (e *Engine) MaxPages(n int) *Engine {
	newEng := e.clone()
	if n < 0 {
		newEng.err = fmt.Errorf("max pages must be >= 0, got %d", n)
		return newEng
	}
	newEng.options.maxPages = n
	return newEng
}

// Budget sets the processing time budget. Derivation that runs past it
// fails with a TimeoutError; no partial outline is returned.
// A budget of 0 disables the check.
func (e *Engine) Budget(d time.Duration) *Engine {
	newEng := e.clone()
	if d < 0 {
		newEng.err = fmt.Errorf("budget must be >= 0, got %s", d)
		return newEng
	}
	newEng.options.budget = d
	return newEng
}

// Workers sets the number of goroutines classifying lines. Values of 1
// or less run sequentially. The result is identical either way.
func (e *Engine) Workers(n int) *Engine {
	newEng := e.clone()
	if n < 1 {
		n = 1
	}
	newEng.options.workers = n
	return newEng
}

// MergeConfig replaces the line merging configuration.
func (e *Engine) MergeConfig(config layout.MergeConfig) *Engine {
	newEng := e.clone()
	newEng.options.merge = config
	return newEng
}

// ClassifierConfig replaces the classification thresholds and patterns.
func (e *Engine) ClassifierConfig(config layout.ClassifierConfig) *Engine {
	newEng := e.clone()
	newEng.options.classifier = config
	return newEng
}

// RepetitionConfig replaces the running header/footer suppression
// configuration.
func (e *Engine) RepetitionConfig(config layout.RepetitionConfig) *Engine {
	newEng := e.clone()
	newEng.options.repetition = config
	return newEng
}

// PageCount returns the document's page count without decoding content.
func (e *Engine) PageCount() (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	if e.doc != nil {
		return e.doc.PageCount, nil
	}
	n, err := pdfdoc.PageCount(e.filename)
	if err != nil {
		return 0, &DecodeError{Path: e.filename, Err: err}
	}
	return n, nil
}

// Outline is the terminal operation: it decodes the source if needed,
// runs the derivation pipeline, and returns the outline. The same input
// and configuration always produce the same outline.
//
// A document with no extractable text yields an empty outline and no
// error. Guard violations yield PageLimitError or TimeoutError.
func (e *Engine) Outline(ctx context.Context) (model.Outline, error) {
	empty := model.Outline{Entries: []model.OutlineEntry{}}

	if e.err != nil {
		return empty, e.err
	}

	if e.options.budget > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.options.budget)
		defer cancel()
	}

	doc := e.doc
	if doc == nil {
		// Page count comes from the cross-reference table alone, so
		// oversized documents are rejected without touching content
		// streams.
		n, err := pdfdoc.PageCount(e.filename)
		if err != nil {
			return empty, &DecodeError{Path: e.filename, Err: err}
		}
		if e.options.maxPages > 0 && n > e.options.maxPages {
			return empty, &PageLimitError{Pages: n, Limit: e.options.maxPages}
		}

		doc, err = pdfdoc.Read(ctx, e.filename)
		if err != nil {
			if budgetErr := e.budgetError(err); budgetErr != nil {
				return empty, budgetErr
			}
			return empty, &DecodeError{Path: e.filename, Err: err}
		}
	} else if e.options.maxPages > 0 && doc.PageCount > e.options.maxPages {
		return empty, &PageLimitError{Pages: doc.PageCount, Limit: e.options.maxPages}
	}

	if doc == nil || !doc.HasText {
		return empty, nil
	}

	merger := layout.NewLineMergerWithConfig(e.options.merge)
	lines := merger.Merge(doc.Pages)
	if len(lines) == 0 {
		return empty, nil
	}

	profiler := layout.NewStyleProfilerWithConfig(e.options.profiler)
	profile := profiler.Profile(lines, doc.PageCount)

	classifier := layout.NewClassifierWithConfig(e.options.classifier)
	classified := classifier.ClassifyAllParallel(ctx, lines, profile, e.options.workers)
	if classified == nil {
		if budgetErr := e.budgetError(ctx.Err()); budgetErr != nil {
			return empty, budgetErr
		}
		return empty, ctx.Err()
	}

	assembler := layout.NewAssemblerWithConfig(e.options.repetition)
	return assembler.Assemble(classified, profile), nil
}

// budgetError converts a deadline expiry into a TimeoutError carrying
// the configured budget. Other errors return nil.
func (e *Engine) budgetError(err error) error {
	if e.options.budget > 0 && errors.Is(err, context.DeadlineExceeded) {
		return &TimeoutError{Budget: e.options.budget}
	}
	return nil
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	outline := outliner.Must(outliner.Open("document.pdf").Outline(ctx))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
