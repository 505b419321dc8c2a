package batch

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/tsawler/outliner"
	"github.com/tsawler/outliner/model"
)

// FileResult records the outcome for one input file.
type FileResult struct {
	Input    string
	Output   string
	Entries  int
	Attempts int
	Err      error
}

// Report summarizes a batch run. Results are ordered by input filename.
type Report struct {
	Results   []FileResult
	Processed int
	Failed    int
	Elapsed   time.Duration
}

// Runner processes every PDF in the input directory.
type Runner struct {
	cfg Config
	log *slog.Logger
}

// NewRunner creates a runner. A nil logger falls back to slog.Default.
func NewRunner(cfg Config, log *slog.Logger) *Runner {
	if log == nil {
		log = slog.Default()
	}
	return &Runner{cfg: cfg, log: log}
}

// failurePayload keeps the outline contract shape for failed documents,
// so consumers can parse every output file the same way.
type failurePayload struct {
	Title   string               `json:"title"`
	Outline []model.OutlineEntry `json:"outline"`
	Error   string               `json:"error"`
}

// Run processes all inputs with bounded concurrency and writes one JSON
// file per input. Per-file failures are recorded in the report and in
// the file's output slot; only setup problems return an error.
func (r *Runner) Run(ctx context.Context) (Report, error) {
	start := time.Now()

	if err := r.cfg.Validate(); err != nil {
		return Report{}, err
	}

	inputs, err := listPDFs(r.cfg.InputDir)
	if err != nil {
		return Report{}, err
	}
	if err := os.MkdirAll(r.cfg.OutputDir, 0o755); err != nil {
		return Report{}, fmt.Errorf("create output dir: %w", err)
	}

	r.log.Info("batch start", "files", len(inputs), "workers", r.cfg.Workers)

	// Workers write disjoint indices, so results need no locking.
	results := make([]FileResult, len(inputs))
	sem := make(chan struct{}, r.cfg.Workers)
	done := make(chan struct{}, len(inputs))

	for i, input := range inputs {
		sem <- struct{}{}
		go func(i int, input string) {
			defer func() { <-sem }()
			results[i] = r.processFile(ctx, input)
			done <- struct{}{}
		}(i, input)
	}
	for range inputs {
		<-done
	}

	report := Report{Results: results, Elapsed: time.Since(start)}
	for _, res := range results {
		if res.Err != nil {
			report.Failed++
		} else {
			report.Processed++
		}
	}

	r.log.Info("batch done",
		"processed", report.Processed,
		"failed", report.Failed,
		"elapsed", report.Elapsed)
	return report, nil
}

// processFile derives one document's outline and writes its output slot.
// A failed document gets an error payload in the same contract shape.
func (r *Runner) processFile(ctx context.Context, input string) FileResult {
	log := r.log.With("file", filepath.Base(input))
	res := FileResult{
		Input:  input,
		Output: filepath.Join(r.cfg.OutputDir, outputName(input)),
	}

	outline, attempts, err := r.deriveWithRetry(ctx, input, log)
	res.Attempts = attempts

	var payload any
	if err != nil {
		log.Error("processing failed", "attempts", attempts, "error", err)
		res.Err = err
		payload = failurePayload{
			Outline: []model.OutlineEntry{},
			Error:   err.Error(),
		}
	} else {
		res.Entries = outline.EntryCount()
		payload = outline
		log.Info("processed", "title", outline.Title, "entries", res.Entries)
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		res.Err = fmt.Errorf("marshal %s: %w", input, err)
		return res
	}
	data = append(data, '\n')

	if err := os.WriteFile(res.Output, data, 0o644); err != nil {
		res.Err = fmt.Errorf("write %s: %w", res.Output, err)
	}
	return res
}

// deriveWithRetry runs the engine with backoff on transient failures.
func (r *Runner) deriveWithRetry(ctx context.Context, input string, log *slog.Logger) (model.Outline, int, error) {
	var outline model.Outline
	var lastErr error

	for attempt := 0; attempt < r.cfg.MaxRetries; attempt++ {
		outline, lastErr = outliner.Open(input).
			MaxPages(r.cfg.MaxPages).
			Budget(r.cfg.Budget).
			Outline(ctx)
		if lastErr == nil || !IsTransient(lastErr) {
			return outline, attempt + 1, lastErr
		}

		log.Warn("transient failure", "attempt", attempt, "error", lastErr)
		select {
		case <-time.After(Backoff(attempt)):
		case <-ctx.Done():
			return outline, attempt + 1, ctx.Err()
		}
	}
	return outline, r.cfg.MaxRetries, lastErr
}

// listPDFs returns the sorted .pdf entries of dir (non-recursive).
func listPDFs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read input dir: %w", err)
	}

	var inputs []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			inputs = append(inputs, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(inputs)
	return inputs, nil
}

// outputName maps an input path to its JSON output filename.
func outputName(input string) string {
	name := filepath.Base(input)
	return strings.TrimSuffix(name, filepath.Ext(name)) + ".json"
}
