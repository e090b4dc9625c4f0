package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/guttosm/putpricer/internal/domain/models"
	"github.com/guttosm/putpricer/internal/logger"
	"github.com/guttosm/putpricer/internal/pricing"
	"github.com/guttosm/putpricer/internal/storage"
)

var (
	// ErrHistoryDisabled is returned by RecentRuns when no repository is wired.
	ErrHistoryDisabled = errors.New("pricing history is disabled")

	// ErrTooManySpots rejects vectors above the configured limit.
	ErrTooManySpots = errors.New("too many spots")
)

// Pricer is the engine contract the service depends on; *pricing.Engine satisfies it.
type Pricer interface {
	Price(ctx context.Context, kind pricing.Kind, spots []float64, p pricing.Parameters) ([]float64, error)
}

// PricingService wraps the engine with request limits, run identifiers and
// optional history recording.
type PricingService interface {
	Price(ctx context.Context, kind pricing.Kind, spots []float64, p pricing.Parameters) (*models.PricingResult, error)
	PriceGrid(ctx context.Context, kind pricing.Kind, start, stop, step float64, p pricing.Parameters) (*models.PricingResult, error)
	RecentRuns(ctx context.Context, limit int) ([]models.PricingRun, error)
}

type pricingService struct {
	engine   Pricer
	repo     storage.RunsRepository // nil when history is disabled
	maxSpots int
	now      func() time.Time
	newID    func() uuid.UUID
}

// NewPricingService builds the service. repo may be nil; maxSpots <= 0 disables the limit.
func NewPricingService(engine Pricer, repo storage.RunsRepository, maxSpots int) PricingService {
	return &pricingService{
		engine:   engine,
		repo:     repo,
		maxSpots: maxSpots,
		now:      time.Now,
		newID:    uuid.New,
	}
}

func (s *pricingService) Price(ctx context.Context, kind pricing.Kind, spots []float64, p pricing.Parameters) (*models.PricingResult, error) {
	if s.maxSpots > 0 && len(spots) > s.maxSpots {
		return nil, fmt.Errorf("%w: %d exceeds limit %d", ErrTooManySpots, len(spots), s.maxSpots)
	}

	start := s.now()
	values, err := s.engine.Price(ctx, kind, spots, p)
	if err != nil {
		return nil, err
	}
	elapsed := s.now().Sub(start)

	res := &models.PricingResult{
		RunID:            s.newID(),
		Kind:             string(kind),
		Spots:            spots,
		Values:           values,
		DiscountedStrike: p.DiscountedStrike(),
		Elapsed:          elapsed,
	}

	lg := logger.Component("pricing")
	lg.Debug().
		Str("run_id", res.RunID.String()).
		Str("kind", res.Kind).
		Int("spots", len(spots)).
		Dur("elapsed", elapsed).
		Msg("priced")

	s.record(ctx, res, p, start)
	return res, nil
}

func (s *pricingService) PriceGrid(ctx context.Context, kind pricing.Kind, start, stop, step float64, p pricing.Parameters) (*models.PricingResult, error) {
	// Parameters first so a bad contract is reported before a bad grid.
	if err := p.Validate(); err != nil {
		return nil, err
	}
	// Size the grid before building it so the limit applies without allocating.
	size, err := pricing.GridSize(start, stop, step)
	if err != nil {
		return nil, err
	}
	if s.maxSpots > 0 && size > s.maxSpots {
		return nil, fmt.Errorf("%w: grid of %d points exceeds limit %d", ErrTooManySpots, size, s.maxSpots)
	}
	spots, err := pricing.SpotGrid(start, stop, step)
	if err != nil {
		return nil, err
	}
	return s.Price(ctx, kind, spots, p)
}

func (s *pricingService) RecentRuns(ctx context.Context, limit int) ([]models.PricingRun, error) {
	if s.repo == nil {
		return nil, ErrHistoryDisabled
	}
	return s.repo.ListRecentRuns(ctx, limit)
}

// record stores the run summary. Failures are logged, never returned: the
// caller already has a valid result.
func (s *pricingService) record(ctx context.Context, res *models.PricingResult, p pricing.Parameters, at time.Time) {
	if s.repo == nil {
		return
	}
	lo, hi := models.Summarize(res.Values)
	run := models.PricingRun{
		ID:             res.RunID,
		Kind:           res.Kind,
		Strike:         p.Strike,
		RiskFreeRate:   p.Rate,
		DividendYield:  p.Yield,
		TimeToMaturity: p.Maturity,
		Volatility:     p.Volatility,
		SpotCount:      len(res.Values),
		MinValue:       lo,
		MaxValue:       hi,
		ElapsedMicros:  res.Elapsed.Microseconds(),
		CreatedAt:      at.UTC(),
	}
	if err := s.repo.InsertRun(ctx, run); err != nil {
		lg := logger.Component("pricing")
		lg.Warn().Err(err).Str("run_id", run.ID.String()).Msg("record run failed")
	}
}
