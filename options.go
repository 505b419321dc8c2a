package outliner

import (
	"runtime"
	"time"

	"github.com/tsawler/outliner/layout"
)

// Default guard limits. Documents past either bound are rejected rather
// than processed partially.
const (
	DefaultMaxPages = 50
	DefaultBudget   = 10 * time.Second
)

// engineOptions holds configuration for outline derivation.
type engineOptions struct {
	// Guards
	maxPages int           // 0 disables the page limit
	budget   time.Duration // 0 disables the time budget

	// Classification parallelism (workers <= 1 runs sequentially)
	workers int

	// Stage configuration
	merge      layout.MergeConfig
	profiler   layout.ProfilerConfig
	classifier layout.ClassifierConfig
	repetition layout.RepetitionConfig
}

// defaultEngineOptions returns the default derivation options.
func defaultEngineOptions() engineOptions {
	return engineOptions{
		maxPages:   DefaultMaxPages,
		budget:     DefaultBudget,
		workers:    runtime.NumCPU(),
		merge:      layout.DefaultMergeConfig(),
		profiler:   layout.DefaultProfilerConfig(),
		classifier: layout.DefaultClassifierConfig(),
		repetition: layout.DefaultRepetitionConfig(),
	}
}

// clone creates a deep copy of engineOptions.
func (o engineOptions) clone() engineOptions {
	newOpts := o

	// Deep copy the only mutable slice; the compiled patterns are shared
	// and never mutated.
	if o.classifier.BulletPrefixes != nil {
		newOpts.classifier.BulletPrefixes = make([]string, len(o.classifier.BulletPrefixes))
		copy(newOpts.classifier.BulletPrefixes, o.classifier.BulletPrefixes)
	}

	return newOpts
}
