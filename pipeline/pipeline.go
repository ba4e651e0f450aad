package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/assortment/coverage"
	"github.com/katalvlaran/assortment/greedy"
	"github.com/katalvlaran/assortment/partition"
)

type namedRefiner struct {
	name string
	r    partition.Refiner
}

// Pipeline runs the stage sequence over one score matrix.
type Pipeline struct {
	scores    *coverage.Scores
	customers []int
	cfg       Config
	refiners  []namedRefiner
	log       zerolog.Logger
	metrics   *Metrics
	now       func() time.Time
}

// New validates cfg and the refiner registrations.
//
// Errors: coverage.ErrNilScores, ErrInvalidConfig, ErrDuplicateStage (also
// for a refiner named after a reserved stage or a nil refiner).
func New(scores *coverage.Scores, cfg Config, opts ...Option) (*Pipeline, error) {
	if scores == nil {
		return nil, coverage.ErrNilScores
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	p := &Pipeline{
		scores:    scores,
		customers: scores.AllCustomers(),
		cfg:       cfg,
		log:       zerolog.Nop(),
		now:       time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}

	seen := map[string]bool{StageBaseline: true, StageSampling: true}
	for _, nr := range p.refiners {
		if nr.r == nil {
			return nil, fmt.Errorf("refiner %q is nil: %w", nr.name, ErrInvalidConfig)
		}
		if seen[nr.name] {
			return nil, fmt.Errorf("%q: %w", nr.name, ErrDuplicateStage)
		}
		seen[nr.name] = true
	}

	return p, nil
}

// Run executes every stage and returns the report.
//
// Each refiner starts from the baseline partition and the sampling seed.
// With cfg.ChainRefiners it starts from the last successful refinement.
//
// The baseline stage has no partition to fall back to, so its failure is
// always returned. Sampling and refinement failures follow cfg.Fallback.
// ctx is checked between stages and handed to refiners; on cancellation the
// report gathered so far is returned with ctx.Err().
func (p *Pipeline) Run(ctx context.Context) (Report, error) {
	rep := Report{FinalAlgorithm: p.cfg.Final}
	if err := ctx.Err(); err != nil {
		return rep, err
	}

	// Stage 1: baseline ratio split.
	base, err := partition.RatioSplit(p.scores.Products(), p.cfg.ExistingPercent)
	if err != nil {
		err = p.abort(&rep, StageResult{Name: StageBaseline, Err: err})
		return rep, err
	}
	st := p.selectStage(StageBaseline, base)
	if st.Err != nil {
		err = p.abort(&rep, st)
		return rep, err
	}
	rep.Stages = append(rep.Stages, st)
	input := base

	// Stage 2: sampled pre-filter.
	if err = ctx.Err(); err != nil {
		return rep, err
	}
	st = p.samplingStage(base)
	if st.Err != nil {
		if p.cfg.Fallback == FallbackAbort {
			err = p.abort(&rep, st)
			return rep, err
		}
		p.fallBack(&rep, st, base)
	} else {
		rep.Stages = append(rep.Stages, st)
		rep.Seed = append([]int(nil), st.SPG.Selected...)
	}

	// Stage 3: refinements.
	for _, nr := range p.refiners {
		if err = ctx.Err(); err != nil {
			return rep, err
		}
		st = p.refineStage(ctx, nr, input, rep.Seed)
		if st.Err != nil {
			if p.cfg.Fallback == FallbackAbort || errors.Is(st.Err, context.Canceled) || errors.Is(st.Err, context.DeadlineExceeded) {
				err = p.abort(&rep, st)
				return rep, err
			}
			p.fallBack(&rep, st, input)
			continue
		}
		rep.Stages = append(rep.Stages, st)
		if p.cfg.ChainRefiners {
			input = st.Partition
		}
	}

	p.log.Info().
		Int("stages", len(rep.Stages)).
		Int("failed", len(rep.Failed())).
		Ints("final", rep.Final()).
		Msg("assortment run complete")

	return rep, nil
}

// selectStage runs IG then SPG on part.
func (p *Pipeline) selectStage(name string, part partition.Partition) StageResult {
	st := StageResult{Name: name, Partition: part.Clone()}

	ig, d, err := p.timed(greedy.IncrementalGreedy, p.cfg.K, part)
	st.IGDuration = d
	if err != nil {
		st.Err = fmt.Errorf("%s: %w", greedy.IncrementalGreedy, err)
		return st
	}
	st.IG = &ig
	p.metrics.observeSelection(greedy.IncrementalGreedy.String(), name, d, ig.Coverage)

	spg, d, err := p.timed(greedy.SingleProductGreedy, p.cfg.K, part)
	st.SPGDuration = d
	if err != nil {
		st.Err = fmt.Errorf("%s: %w", greedy.SingleProductGreedy, err)
		return st
	}
	st.SPG = &spg
	p.metrics.observeSelection(greedy.SingleProductGreedy.String(), name, d, spg.Coverage)

	p.log.Info().
		Str("stage", name).
		Int("existing", len(part.Existing)).
		Int("candidates", len(part.Candidates)).
		Ints("ig", ig.Selected).
		Float64("ig_coverage", ig.Coverage).
		Int64("ig_ms", st.IGDuration.Milliseconds()).
		Ints("spg", spg.Selected).
		Float64("spg_coverage", spg.Coverage).
		Int64("spg_ms", st.SPGDuration.Milliseconds()).
		Msg("stage complete")

	return st
}

// samplingStage ranks a subsample of base with SPG for 2k products, clamped
// to the sampled candidate count.
func (p *Pipeline) samplingStage(base partition.Partition) StageResult {
	st := StageResult{Name: StageSampling, Partition: base.Clone()}

	sampled, err := partition.Sample(base, p.cfg.SampleRatio, p.cfg.Seed)
	if err != nil {
		st.Err = err
		return st
	}
	st.Partition = sampled

	k := min(prefilterFactor*p.cfg.K, len(sampled.Candidates))
	spg, d, err := p.timed(greedy.SingleProductGreedy, k, sampled)
	st.SPGDuration = d
	if err != nil {
		st.Err = fmt.Errorf("%s: %w", greedy.SingleProductGreedy, err)
		return st
	}
	st.SPG = &spg
	p.metrics.observeSelection(greedy.SingleProductGreedy.String(), StageSampling, d, spg.Coverage)

	p.log.Debug().
		Int("existing", len(sampled.Existing)).
		Int("candidates", len(sampled.Candidates)).
		Ints("seed", spg.Selected).
		Int64("spg_ms", d.Milliseconds()).
		Msg("sampled pre-filter complete")

	return st
}

// refineStage asks nr for a new partition, validates it and scores it.
func (p *Pipeline) refineStage(ctx context.Context, nr namedRefiner, current partition.Partition, seed []int) StageResult {
	start := p.now()
	next, err := nr.r.Refine(ctx, p.scores, current.Clone(), append([]int(nil), seed...))
	refineDur := p.now().Sub(start)
	if err == nil {
		err = next.Validate(p.scores.Products())
	}
	if err != nil {
		return StageResult{Name: nr.name, Partition: current.Clone(), RefineDuration: refineDur, Err: err}
	}

	p.log.Debug().
		Str("stage", nr.name).
		Int64("refine_ms", refineDur.Milliseconds()).
		Msg("partition refined")

	st := p.selectStage(nr.name, next)
	st.RefineDuration = refineDur
	if st.Err != nil {
		st.Partition = current.Clone()
	}

	return st
}

// timed runs one selector and measures it with the pipeline clock.
func (p *Pipeline) timed(algo greedy.Algorithm, k int, part partition.Partition) (greedy.Result, time.Duration, error) {
	start := p.now()
	res, err := greedy.Select(algo, k, p.customers, p.scores, part.Existing, part.Candidates,
		greedy.WithWorkers(p.cfg.Workers), greedy.WithLazy(p.cfg.Lazy))

	return res, p.now().Sub(start), err
}

// fallBack records st as absorbed and keeps prev as the working partition.
func (p *Pipeline) fallBack(rep *Report, st StageResult, prev partition.Partition) {
	st.FellBack = true
	st.Partition = prev.Clone()
	rep.Stages = append(rep.Stages, st)
	p.metrics.stageFailed(st.Name)

	p.log.Warn().
		Err(st.Err).
		Str("stage", st.Name).
		Msg("stage failed, keeping previous partition")
}

// abort records st and returns its error wrapped with the stage name.
func (p *Pipeline) abort(rep *Report, st StageResult) error {
	rep.Stages = append(rep.Stages, st)
	p.metrics.stageFailed(st.Name)

	p.log.Error().
		Err(st.Err).
		Str("stage", st.Name).
		Msg("stage failed, aborting run")

	return fmt.Errorf("%w %q: %w", ErrStageFailed, st.Name, st.Err)
}
