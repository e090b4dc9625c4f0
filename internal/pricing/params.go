package pricing

import "math"

// Parameters holds the contract and market scalars shared by every spot in a
// pricing call.
//
// Fields:
//   - Strike: exercise price k (> 0).
//   - Rate: continuously-compounded risk-free rate r.
//   - Yield: continuous dividend / carry yield y.
//   - Maturity: time to expiry t in years (> 0).
//   - Volatility: annualized sigma (> 0).
type Parameters struct {
	Strike     float64
	Rate       float64
	Yield      float64
	Maturity   float64
	Volatility float64
}

// Validate checks every scalar and returns the first violation as a
// *ParameterError, in the order strike, rate, yield, maturity, volatility.
// Combinations whose discount factor, carry factor or variance leave the
// float64 range are rejected too, so valid parameters always give finite puts.
func (p Parameters) Validate() error {
	if err := p.validateScalars(); err != nil {
		return err
	}
	return p.validateRange()
}

func (p Parameters) validateScalars() error {
	if err := positive(ParamStrike, p.Strike); err != nil {
		return err
	}
	if err := finite(ParamRate, p.Rate); err != nil {
		return err
	}
	if err := finite(ParamYield, p.Yield); err != nil {
		return err
	}
	if err := positive(ParamMaturity, p.Maturity); err != nil {
		return err
	}
	return positive(ParamVolatility, p.Volatility)
}

// validateRange checks the spot-independent terms of the formula. Underflow
// to zero is fine; overflow is not.
func (p Parameters) validateRange() error {
	if !isFinite(p.DiscountedStrike()) {
		return &ParameterError{Name: ParamRate, Value: p.Rate, Reason: "gives a non-finite discounted strike for this maturity"}
	}
	if !isFinite(math.Exp(-p.Yield * p.Maturity)) {
		return &ParameterError{Name: ParamYield, Value: p.Yield, Reason: "gives a non-finite carry factor for this maturity"}
	}
	volSqrtT := p.Volatility * math.Sqrt(p.Maturity)
	if !isFinite(p.Volatility*p.Volatility*p.Maturity) || volSqrtT == 0 {
		return &ParameterError{Name: ParamVolatility, Value: p.Volatility, Reason: "gives a variance outside float64 range for this maturity"}
	}
	if !isFinite((p.Rate - p.Yield + 0.5*p.Volatility*p.Volatility) * p.Maturity) {
		return &ParameterError{Name: ParamRate, Value: p.Rate, Reason: "minus dividend_yield gives a non-finite drift for this maturity"}
	}
	return nil
}

// DiscountedStrike returns k*exp(-r*t), the upper bound of any put value.
func (p Parameters) DiscountedStrike() float64 {
	return p.Strike * math.Exp(-p.Rate*p.Maturity)
}

func positive(name string, v float64) error {
	if !isFinite(v) || v <= 0 {
		return &ParameterError{Name: name, Value: v, Reason: "must be finite and > 0"}
	}
	return nil
}

func finite(name string, v float64) error {
	if !isFinite(v) {
		return &ParameterError{Name: name, Value: v, Reason: "must be finite"}
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ValidateSpots returns an *InputError for the first negative or non-finite spot.
func ValidateSpots(spots []float64) error {
	for i, s := range spots {
		if !isFinite(s) || s < 0 {
			return &InputError{Index: i, Value: s}
		}
	}
	return nil
}
