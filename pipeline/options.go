package pipeline

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/assortment/partition"
)

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger routes stage logs to l. The default discards them.
func WithLogger(l zerolog.Logger) Option {
	return func(p *Pipeline) { p.log = l }
}

// WithMetrics exports stage durations, coverage and failures to m.
func WithMetrics(m *Metrics) Option {
	return func(p *Pipeline) { p.metrics = m }
}

// WithRefiner appends a refinement stage. Stages run in registration order.
func WithRefiner(name string, r partition.Refiner) Option {
	return func(p *Pipeline) {
		p.refiners = append(p.refiners, namedRefiner{name: name, r: r})
	}
}

// WithClock replaces time.Now for duration measurement.
func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) {
		if now != nil {
			p.now = now
		}
	}
}
