package greedy

// Defaults (single source of truth).
const (
	// DefaultWorkers scans candidates on the calling goroutine.
	DefaultWorkers = 1

	// parallelThreshold is the smallest candidate count worth fanning out.
	parallelThreshold = 64
)

// Option configures a selector call.
type Option func(*options)

type options struct {
	workers int  // goroutines used for a gain scan
	lazy    bool // lazy re-evaluation in Incremental
}

// WithWorkers scans candidates on n goroutines. n < 1 is treated as 1.
// Scans below an internal size threshold always run sequentially.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = 1
		}
		o.workers = n
	}
}

// WithLazy toggles lazy (priority-queue) re-evaluation in Incremental.
// The selected sequence and scores are identical to the eager scan.
// SingleProduct ignores it.
func WithLazy(on bool) Option {
	return func(o *options) { o.lazy = on }
}

func gatherOptions(opts ...Option) options {
	o := options{workers: DefaultWorkers}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
