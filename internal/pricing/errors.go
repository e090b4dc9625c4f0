package pricing

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter is matched by every *ParameterError.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrInvalidInput is matched by every *InputError and by grid construction failures.
	ErrInvalidInput = errors.New("invalid input")
)

// Parameter names reported by ParameterError. They follow the JSON field
// names used by the HTTP API so callers can surface them unchanged.
const (
	ParamStrike     = "strike"
	ParamRate       = "risk_free_rate"
	ParamYield      = "dividend_yield"
	ParamMaturity   = "time_to_maturity"
	ParamVolatility = "volatility"
)

// ParameterError reports a scalar pricing parameter outside its domain.
type ParameterError struct {
	Name   string  // one of the Param* constants
	Value  float64 // offending value
	Reason string  // e.g. "must be > 0"
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("%s: %s %s, got %v", ErrInvalidParameter, e.Name, e.Reason, e.Value)
}

func (e *ParameterError) Unwrap() error { return ErrInvalidParameter }

// InputError reports the first spot price that cannot be priced.
type InputError struct {
	Index int
	Value float64
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: spot[%d] must be finite and >= 0, got %v", ErrInvalidInput, e.Index, e.Value)
}

func (e *InputError) Unwrap() error { return ErrInvalidInput }
