// Package pricing implements closed-form Black-Scholes-Merton pricing of
// European options with a continuous dividend yield, over vectors of spot
// prices.
//
// The per-spot formula is a pure scalar function; PricePut and PriceCall map
// it over a spot slice on the calling goroutine, and Engine spreads the same
// map over a bounded worker group for large inputs. Both paths produce
// bit-identical results.
package pricing

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Kind selects the option payoff.
type Kind string

const (
	Put  Kind = "put"
	Call Kind = "call"
)

// ParseKind accepts "put" or "call"; an empty string means Put.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case "", Put:
		return Put, nil
	case Call:
		return Call, nil
	default:
		return "", fmt.Errorf("%w: unknown option kind %q", ErrInvalidParameter, s)
	}
}

// terms caches the spot-independent pieces of the formula.
type terms struct {
	strike   float64
	drift    float64 // (r - y + sigma^2/2) * t
	volSqrtT float64 // sigma * sqrt(t)
	discK    float64 // k * exp(-r*t)
	carry    float64 // exp(-y*t)
}

func newTerms(p Parameters) terms {
	return terms{
		strike:   p.Strike,
		drift:    (p.Rate - p.Yield + 0.5*p.Volatility*p.Volatility) * p.Maturity,
		volSqrtT: p.Volatility * math.Sqrt(p.Maturity),
		discK:    p.DiscountedStrike(),
		carry:    math.Exp(-p.Yield * p.Maturity),
	}
}

func (c terms) d1d2(s float64) (float64, float64) {
	d1 := (math.Log(s/c.strike) + c.drift) / c.volSqrtT
	return d1, d1 - c.volSqrtT
}

func (c terms) put(s float64) float64 {
	// ln(0) is -Inf; the limit is the discounted strike.
	if s == 0 {
		return c.discK
	}
	d1, d2 := c.d1d2(s)
	v := normCDF(-d2) * c.discK
	// s*carry may overflow; a zero weight must not turn Inf into NaN.
	if w := normCDF(-d1); w > 0 {
		v -= s * c.carry * w
	}
	return clamp(v, 0, c.discK)
}

func (c terms) call(s float64) float64 {
	if s == 0 {
		return 0
	}
	d1, d2 := c.d1d2(s)
	fwd := s * c.carry
	var v float64
	if w := normCDF(d1); w > 0 {
		v = fwd * w
	}
	if w := normCDF(d2); w > 0 {
		v -= c.discK * w
	}
	return clamp(v, 0, fwd)
}

func (c terms) value(k Kind) func(float64) float64 {
	if k == Call {
		return c.call
	}
	return c.put
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

func normCDF(x float64) float64 {
	return distuv.UnitNormal.CDF(x)
}

// PutValue returns the put value for a single spot. It does not validate its
// arguments; use PricePut for checked evaluation.
func PutValue(s float64, p Parameters) float64 {
	return newTerms(p).put(s)
}

// CallValue returns the call value for a single spot, unchecked.
func CallValue(s float64, p Parameters) float64 {
	return newTerms(p).call(s)
}

// PricePut prices a European put for every spot in spots.
//
// Parameters are validated first, then spots; the first violation is returned
// as a *ParameterError or *InputError and no values are produced. The input
// slice is never modified. An empty input yields an empty, non-nil result.
func PricePut(spots []float64, p Parameters) ([]float64, error) {
	return price(Put, spots, p)
}

// PriceCall is the call counterpart of PricePut.
func PriceCall(spots []float64, p Parameters) ([]float64, error) {
	return price(Call, spots, p)
}

// Price dispatches to PricePut or PriceCall.
func Price(kind Kind, spots []float64, p Parameters) ([]float64, error) {
	return price(kind, spots, p)
}

func price(kind Kind, spots []float64, p Parameters) ([]float64, error) {
	if err := validate(spots, p); err != nil {
		return nil, err
	}
	out := make([]float64, len(spots))
	fill(out, spots, newTerms(p).value(kind))
	return out, nil
}

func validate(spots []float64, p Parameters) error {
	if err := p.Validate(); err != nil {
		return err
	}
	return ValidateSpots(spots)
}

func fill(dst, spots []float64, f func(float64) float64) {
	for i, s := range spots {
		dst[i] = f(s)
	}
}
