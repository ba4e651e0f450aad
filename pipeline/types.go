package pipeline

import (
	"time"

	"github.com/katalvlaran/assortment/greedy"
	"github.com/katalvlaran/assortment/partition"
)

// Reserved stage names.
const (
	StageBaseline = "baseline"
	StageSampling = "sampling"
)

// StageResult is the outcome of one stage.
type StageResult struct {
	// Name identifies the stage (StageBaseline, StageSampling or a refiner name).
	Name string

	// Partition is the partition the selectors ran on. For a failed stage it
	// is the partition the run continues with.
	Partition partition.Partition

	// IG and SPG are nil when the selector did not run.
	IG  *greedy.Result
	SPG *greedy.Result

	IGDuration     time.Duration
	SPGDuration    time.Duration
	RefineDuration time.Duration

	// Err is the stage failure, if any.
	Err error

	// FellBack reports that Err was absorbed and the previous partition kept.
	FellBack bool
}

// OK reports whether the stage completed without error.
func (s StageResult) OK() bool { return s.Err == nil }

// Report collects every stage of a run in execution order.
type Report struct {
	Stages []StageResult

	// Seed is the sampling stage's pre-filtered candidate set handed to refiners.
	Seed []int

	// FinalAlgorithm selects which result Final reads; Run copies Config.Final.
	FinalAlgorithm greedy.Algorithm
}

// Final returns the FinalAlgorithm selection of the last successful baseline
// or refinement stage, or nil when none succeeded.
func (r Report) Final() []int {
	var res *greedy.Result
	for i := len(r.Stages) - 1; i >= 0; i-- {
		s := r.Stages[i]
		if s.Name == StageSampling || s.Err != nil {
			continue
		}
		if res = s.SPG; r.FinalAlgorithm == greedy.IncrementalGreedy {
			res = s.IG
		}
		if res != nil {
			return append([]int(nil), res.Selected...)
		}
	}

	return nil
}

// Stage returns the first stage named name.
func (r Report) Stage(name string) (StageResult, bool) {
	for _, s := range r.Stages {
		if s.Name == name {
			return s, true
		}
	}

	return StageResult{}, false
}

// Failed lists the stages that recorded an error.
func (r Report) Failed() []StageResult {
	var out []StageResult
	for _, s := range r.Stages {
		if s.Err != nil {
			out = append(out, s)
		}
	}

	return out
}
