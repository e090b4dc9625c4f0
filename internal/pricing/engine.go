package pricing

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

const (
	defaultThreshold = 1 << 14
	defaultChunkSize = 1 << 13
)

// Engine prices spot vectors across a bounded set of goroutines.
//
// Vectors shorter than the parallel threshold are priced inline. Larger ones
// are cut into contiguous chunks, each written by one goroutine into its own
// window of the output slice, so no synchronization beyond the errgroup is
// needed. An Engine holds only configuration and is safe for concurrent use.
type Engine struct {
	workers   int
	threshold int
	chunkSize int
}

// Option configures an Engine.
type Option func(*Engine)

// WithWorkers caps concurrent chunks; n <= 0 means runtime.NumCPU().
func WithWorkers(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.workers = n
		}
	}
}

// WithParallelThreshold sets the minimum vector length priced in parallel.
func WithParallelThreshold(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.threshold = n
		}
	}
}

// WithChunkSize sets how many spots each goroutine prices.
func WithChunkSize(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.chunkSize = n
		}
	}
}

// NewEngine returns an Engine with defaults overridden by opts.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		workers:   runtime.NumCPU(),
		threshold: defaultThreshold,
		chunkSize: defaultChunkSize,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Workers reports the configured concurrency limit.
func (e *Engine) Workers() int { return e.workers }

// Price validates and prices spots for the given kind.
//
// Behavior:
//   - Validation errors are returned before any goroutine is started.
//   - Once ctx is done no further chunks are dispatched and ctx.Err() is returned.
//   - Output is identical to the single-threaded Price function.
func (e *Engine) Price(ctx context.Context, kind Kind, spots []float64, p Parameters) ([]float64, error) {
	if err := validate(spots, p); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]float64, len(spots))
	f := newTerms(p).value(kind)

	if len(spots) < e.threshold || e.workers == 1 {
		fill(out, spots, f)
		return out, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)

	for lo := 0; lo < len(spots); lo += e.chunkSize {
		hi := min(lo+e.chunkSize, len(spots))
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fill(out[lo:hi], spots[lo:hi], f)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	// errgroup.Wait only reports goroutine errors; a cancel that stopped
	// dispatch before any failure still has to surface.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// PricePut is shorthand for Price(ctx, Put, spots, p).
func (e *Engine) PricePut(ctx context.Context, spots []float64, p Parameters) ([]float64, error) {
	return e.Price(ctx, Put, spots, p)
}
