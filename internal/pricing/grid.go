package pricing

import (
	"fmt"
	"math"
)

// maxGridPoints bounds SpotGrid allocations (0..100 by 0.00001 fits).
const maxGridPoints = 10_000_001

// GridSize validates a grid and returns its point count without allocating.
// It fails exactly when SpotGrid would.
func GridSize(start, stop, step float64) (int, error) {
	switch {
	case !isFinite(start) || !isFinite(stop) || !isFinite(step):
		return 0, fmt.Errorf("%w: grid bounds must be finite", ErrInvalidInput)
	case start < 0:
		return 0, fmt.Errorf("%w: grid start must be >= 0, got %v", ErrInvalidInput, start)
	case stop < start:
		return 0, fmt.Errorf("%w: grid stop %v is below start %v", ErrInvalidInput, stop, start)
	case step <= 0:
		return 0, fmt.Errorf("%w: grid step must be > 0, got %v", ErrInvalidInput, step)
	}

	span := (stop - start) / step
	if math.Floor(span+1e-9)+1 > maxGridPoints {
		return 0, fmt.Errorf("%w: grid of %.0f points exceeds limit %d", ErrInvalidInput, span+1, maxGridPoints)
	}
	return int(math.Floor(span+1e-9)) + 1, nil
}

// SpotGrid returns the inclusive grid start, start+step, ..., stop.
//
// Points are computed as start + i*step rather than by accumulation so the
// grid does not drift. stop is appended as the last point when it lies within
// step*1e-9 of the next grid value, which absorbs binary rounding of steps
// like 0.001.
//
// Errors wrap ErrInvalidInput when:
//   - any bound is non-finite, start < 0, or stop < start
//   - step <= 0
//   - the grid would exceed maxGridPoints
func SpotGrid(start, stop, step float64) ([]float64, error) {
	size, err := GridSize(start, stop, step)
	if err != nil {
		return nil, err
	}

	out := make([]float64, size)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	if n := size - 1; math.Abs(out[n]-stop) <= step*1e-9 {
		out[n] = stop
	}
	return out, nil
}
