package dto

import (
	"github.com/guttosm/putpricer/internal/domain/models"
	"github.com/guttosm/putpricer/internal/pricing"
)

// ContractParams carries the five pricing scalars in request bodies.
//
// Pointers distinguish "missing" from a legitimate zero (rates and yields are
// often 0). Domain checks (strike > 0 etc.) are left to the pricing package so
// the caller sees one consistent error vocabulary.
type ContractParams struct {
	Kind           string   `json:"kind" binding:"omitempty,oneof=put call" example:"put"`
	Strike         *float64 `json:"strike" binding:"required" example:"60"`
	RiskFreeRate   *float64 `json:"risk_free_rate" binding:"required" example:"0.01"`
	DividendYield  *float64 `json:"dividend_yield" binding:"required" example:"0.02"`
	TimeToMaturity *float64 `json:"time_to_maturity" binding:"required" example:"1"`
	Volatility     *float64 `json:"volatility" binding:"required" example:"0.05"`
}

// Parameters converts the request scalars for the engine. Call only after
// binding has succeeded.
func (c ContractParams) Parameters() pricing.Parameters {
	return pricing.Parameters{
		Strike:     *c.Strike,
		Rate:       *c.RiskFreeRate,
		Yield:      *c.DividendYield,
		Maturity:   *c.TimeToMaturity,
		Volatility: *c.Volatility,
	}
}

// PriceRequest is the body of POST /api/v1/options/price.
type PriceRequest struct {
	ContractParams
	Spots []float64 `json:"spots" binding:"required" example:"0,60,120"`
}

// GridRequest is the body of POST /api/v1/options/grid.
type GridRequest struct {
	ContractParams
	Start *float64 `json:"start" binding:"required" example:"0"`
	Stop  *float64 `json:"stop" binding:"required" example:"100"`
	Step  float64  `json:"step" binding:"required,gt=0" example:"0.5"`
}

// PriceResponse is returned by both pricing endpoints. Spots is echoed only
// for grid requests, where the caller did not send them.
type PriceResponse struct {
	RunID            string    `json:"run_id" example:"1f0e4a52-8d2b-4c4e-9a55-0b2f3d8c7e11"`
	Kind             string    `json:"kind" example:"put"`
	Count            int       `json:"count" example:"3"`
	DiscountedStrike float64   `json:"discounted_strike" example:"59.403"`
	ElapsedMicros    int64     `json:"elapsed_us" example:"12"`
	Spots            []float64 `json:"spots,omitempty"`
	Values           []float64 `json:"values"`
}

// NewPriceResponse maps a service result; includeSpots echoes the spot vector.
func NewPriceResponse(res *models.PricingResult, includeSpots bool) PriceResponse {
	resp := PriceResponse{
		RunID:            res.RunID.String(),
		Kind:             res.Kind,
		Count:            len(res.Values),
		DiscountedStrike: res.DiscountedStrike,
		ElapsedMicros:    res.Elapsed.Microseconds(),
		Values:           res.Values,
	}
	if includeSpots {
		resp.Spots = res.Spots
	}
	return resp
}

// RunsResponse is returned by GET /api/v1/runs.
type RunsResponse struct {
	Runs []models.PricingRun `json:"runs"`
}
