package pushrank

import "github.com/hupe1980/pushrank/sparse"

// Options represents the options for a batch PPR computation.
type Options struct {
	// Alpha is the restart probability of the random walk, in (0, 1).
	Alpha float64

	// Epsilon is the approximation tolerance. Smaller values touch more of
	// the graph; total push work is bounded by alpha/epsilon operations.
	Epsilon float64

	// TopK caps the number of entries kept per row. Values <= 0 keep the
	// full support.
	TopK int

	// Normalization selects the degree rescaling applied to the assembled
	// matrix.
	Normalization sparse.Normalization

	// Parallelism bounds the number of rows computed concurrently.
	// Values <= 0 use GOMAXPROCS.
	Parallelism int
}

// DefaultOptions are sensible defaults for graph-learning workloads.
var DefaultOptions = Options{
	Alpha:         0.15,
	Epsilon:       1e-4,
	TopK:          32,
	Normalization: sparse.NormalizationRow,
	Parallelism:   0,
}

// Validate reports the first configuration error, before any computation
// starts.
func (o Options) Validate() error {
	if o.Alpha <= 0 || o.Alpha >= 1 {
		return &ErrInvalidAlpha{Alpha: o.Alpha}
	}

	if o.Epsilon <= 0 {
		return &ErrInvalidEpsilon{Epsilon: o.Epsilon}
	}

	switch o.Normalization {
	case sparse.NormalizationSym, sparse.NormalizationCol, sparse.NormalizationRow:
	default:
		return &sparse.ErrInvalidNormalization{Mode: string(o.Normalization)}
	}

	return nil
}

// WithAlpha sets the restart probability.
func WithAlpha(alpha float64) func(o *Options) {
	return func(o *Options) {
		o.Alpha = alpha
	}
}

// WithEpsilon sets the approximation tolerance.
func WithEpsilon(epsilon float64) func(o *Options) {
	return func(o *Options) {
		o.Epsilon = epsilon
	}
}

// WithTopK sets the per-row truncation. k <= 0 keeps full rows.
func WithTopK(k int) func(o *Options) {
	return func(o *Options) {
		o.TopK = k
	}
}

// WithNormalization sets the degree rescaling mode.
func WithNormalization(mode sparse.Normalization) func(o *Options) {
	return func(o *Options) {
		o.Normalization = mode
	}
}

// WithParallelism bounds concurrent row computations.
func WithParallelism(n int) func(o *Options) {
	return func(o *Options) {
		o.Parallelism = n
	}
}
