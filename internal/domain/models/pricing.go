package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/montanaflynn/stats"
)

// PricingRun is the persisted summary of one pricing call.
//
// Only scalars and aggregates are stored; the spot and value vectors are
// returned to the caller and never written to the database.
//
// This model is returned by the API when querying /api/v1/runs.
//
// swagger:model PricingRun
type PricingRun struct {
	ID             uuid.UUID `json:"id" example:"1f0e4a52-8d2b-4c4e-9a55-0b2f3d8c7e11"`
	Kind           string    `json:"kind" example:"put"`
	Strike         float64   `json:"strike" example:"60"`
	RiskFreeRate   float64   `json:"risk_free_rate" example:"0.01"`
	DividendYield  float64   `json:"dividend_yield" example:"0.02"`
	TimeToMaturity float64   `json:"time_to_maturity" example:"1"`
	Volatility     float64   `json:"volatility" example:"0.05"`
	SpotCount      int       `json:"spot_count" example:"3"`
	MinValue       float64   `json:"min_value" example:"0"`
	MaxValue       float64   `json:"max_value" example:"59.403"`
	ElapsedMicros  int64     `json:"elapsed_us" example:"42"`
	CreatedAt      time.Time `json:"created_at"`
}

// PricingResult is what the service returns for a priced vector.
type PricingResult struct {
	RunID            uuid.UUID
	Kind             string
	Spots            []float64
	Values           []float64
	DiscountedStrike float64
	Elapsed          time.Duration
}

// Summarize computes the min/max of values. Empty input yields zeros.
func Summarize(values []float64) (lo, hi float64) {
	if len(values) == 0 {
		return 0, 0
	}
	lo, _ = stats.Min(values)
	hi, _ = stats.Max(values)
	return lo, hi
}
