package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/assortment/greedy"
	"github.com/katalvlaran/assortment/partition"
)

// Defaults (single source of truth).
const (
	// DefaultK is the number of products selected per stage.
	DefaultK = 5

	// DefaultSampleRatio is the share of each partition side kept by the sampling stage.
	DefaultSampleRatio = 0.2

	// prefilterFactor scales k for the sampling stage's seed set.
	prefilterFactor = 2
)

var (
	// ErrInvalidConfig indicates a Config field outside its domain.
	ErrInvalidConfig = errors.New("pipeline: invalid config")

	// ErrDuplicateStage indicates two stages registered under one name.
	ErrDuplicateStage = errors.New("pipeline: duplicate stage name")

	// ErrStageFailed wraps the error of a stage that ended the run.
	ErrStageFailed = errors.New("pipeline: stage failed")
)

// Fallback decides what a failing refinement stage does to the run.
type Fallback int

const (
	// FallbackPrevious records the failure and keeps the last valid partition.
	FallbackPrevious Fallback = iota

	// FallbackAbort stops the run and returns the stage error.
	FallbackAbort
)

// String returns "previous" or "abort".
func (f Fallback) String() string {
	switch f {
	case FallbackPrevious:
		return "previous"
	case FallbackAbort:
		return "abort"
	default:
		return fmt.Sprintf("fallback(%d)", int(f))
	}
}

// ParseFallback maps "previous" and "abort" to a Fallback.
func ParseFallback(s string) (Fallback, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "previous", "":
		return FallbackPrevious, nil
	case "abort":
		return FallbackAbort, nil
	default:
		return 0, fmt.Errorf("fallback %q: %w", s, ErrInvalidConfig)
	}
}

// Config parameterises a run.
type Config struct {
	// K is the selection size of the baseline and refinement stages.
	K int

	// ExistingPercent is the share of product ids the baseline split treats as existing.
	ExistingPercent int

	// SampleRatio is the fraction of each side kept by the sampling stage, in (0, 1].
	SampleRatio float64

	// Seed drives the sampling stage; 0 selects a fixed default.
	Seed int64

	// Workers is the goroutine count for candidate scans.
	Workers int

	// Lazy enables lazy re-evaluation in Incremental Greedy.
	Lazy bool

	// Fallback is the policy applied when a refinement stage fails.
	Fallback Fallback

	// ChainRefiners hands each refiner the previous refinement's partition
	// instead of the baseline.
	ChainRefiners bool

	// Final names the selector whose output Report.Final returns.
	Final greedy.Algorithm
}

// DefaultConfig returns k=5, a 30/70 split, a 20% sample, sequential scans
// and the Single-Product Greedy selection as the final answer.
func DefaultConfig() Config {
	return Config{
		K:               DefaultK,
		ExistingPercent: partition.DefaultExistingPercent,
		SampleRatio:     DefaultSampleRatio,
		Workers:         1,
		Fallback:        FallbackPrevious,
		Final:           greedy.SingleProductGreedy,
	}
}

// Validate reports the first field outside its domain.
func (c Config) Validate() error {
	switch {
	case c.K < 1:
		return fmt.Errorf("k=%d: %w", c.K, ErrInvalidConfig)
	case c.ExistingPercent < 0 || c.ExistingPercent > 100:
		return fmt.Errorf("existing percent %d: %w", c.ExistingPercent, ErrInvalidConfig)
	case !(c.SampleRatio > 0 && c.SampleRatio <= 1):
		return fmt.Errorf("sample ratio %g: %w", c.SampleRatio, ErrInvalidConfig)
	case c.Workers < 1:
		return fmt.Errorf("workers=%d: %w", c.Workers, ErrInvalidConfig)
	case c.Fallback != FallbackPrevious && c.Fallback != FallbackAbort:
		return fmt.Errorf("%s: %w", c.Fallback, ErrInvalidConfig)
	case c.Final != greedy.IncrementalGreedy && c.Final != greedy.SingleProductGreedy:
		return fmt.Errorf("final %s: %w", c.Final, ErrInvalidConfig)
	}

	return nil
}
