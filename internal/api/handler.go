package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/putpricer/internal/domain/dto"
	"github.com/guttosm/putpricer/internal/domain/models"
	"github.com/guttosm/putpricer/internal/middleware"
	"github.com/guttosm/putpricer/internal/pricing"
	"github.com/guttosm/putpricer/internal/service"
)

const (
	defaultRunsLimit = 20
	maxRunsLimit     = 500
)

// Handler provides HTTP handlers for option pricing endpoints.
//
// Responsibilities:
//   - Bind and shape-check JSON bodies (presence of fields)
//   - Delegate domain validation and pricing to the service layer
//   - Map pricing errors to 400 and everything unexpected to 500
type Handler struct {
	svc service.PricingService
}

// NewHandler constructs a new Handler instance.
func NewHandler(svc service.PricingService) *Handler {
	return &Handler{svc: svc}
}

// PriceOptions handles POST /api/v1/options/price.
//
// PriceOptions godoc
// @Summary      Price European options for a vector of spots
// @Description  Black-Scholes-Merton with continuous dividend yield. Values are returned in the same order as spots.
// @Tags         pricing
// @Accept       json
// @Produce      json
// @Param        request  body      dto.PriceRequest    true  "Spots and contract parameters"
// @Success      200      {object}  dto.PriceResponse   "Success"
// @Failure      400      {object}  dto.ErrorResponse   "Invalid parameter or input"
// @Failure      500      {object}  dto.ErrorResponse   "Internal Error"
// @Router       /api/v1/options/price [post]
func (h *Handler) PriceOptions(c *gin.Context) {
	var req dto.PriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request body", err))
		return
	}
	kind, err := pricing.ParseKind(req.Kind)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid pricing request", err))
		return
	}

	res, err := h.svc.Price(c.Request.Context(), kind, req.Spots, req.Parameters())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPriceResponse(res, false))
}

// PriceGrid handles POST /api/v1/options/grid.
//
// PriceGrid godoc
// @Summary      Price European options over an inclusive spot grid
// @Description  Builds start, start+step, ..., stop and prices every point.
// @Tags         pricing
// @Accept       json
// @Produce      json
// @Param        request  body      dto.GridRequest     true  "Grid bounds and contract parameters"
// @Success      200      {object}  dto.PriceResponse   "Success"
// @Failure      400      {object}  dto.ErrorResponse   "Invalid parameter or grid"
// @Failure      500      {object}  dto.ErrorResponse   "Internal Error"
// @Router       /api/v1/options/grid [post]
func (h *Handler) PriceGrid(c *gin.Context) {
	var req dto.GridRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request body", err))
		return
	}
	kind, err := pricing.ParseKind(req.Kind)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid pricing request", err))
		return
	}

	res, err := h.svc.PriceGrid(c.Request.Context(), kind, *req.Start, *req.Stop, req.Step, req.Parameters())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPriceResponse(res, true))
}

// ListRuns handles GET /api/v1/runs.
//
// ListRuns godoc
// @Summary      List recent pricing runs
// @Description  Newest first. Only available when history is enabled.
// @Tags         history
// @Produce      json
// @Param        limit  query     int  false  "Max runs (1-500)" default(20)
// @Success      200    {object}  dto.RunsResponse   "Success"
// @Failure      400    {object}  dto.ErrorResponse  "Bad limit"
// @Failure      404    {object}  dto.ErrorResponse  "History disabled"
// @Failure      500    {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/v1/runs [get]
func (h *Handler) ListRuns(c *gin.Context) {
	limit := defaultRunsLimit
	if s := c.Query("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 || n > maxRunsLimit {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("limit must be an integer between 1 and 500", err))
			return
		}
		limit = n
	}

	runs, err := h.svc.RecentRuns(c.Request.Context(), limit)
	switch {
	case errors.Is(err, service.ErrHistoryDisabled):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("pricing history is disabled", nil))
		return
	case err != nil:
		middleware.AbortWithError(c, http.StatusInternalServerError, "failed to fetch runs", err)
		return
	}
	if runs == nil {
		runs = []models.PricingRun{}
	}
	c.JSON(http.StatusOK, dto.RunsResponse{Runs: runs})
}

func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, pricing.ErrInvalidParameter),
		errors.Is(err, pricing.ErrInvalidInput),
		errors.Is(err, service.ErrTooManySpots):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid pricing request", err))
	default:
		middleware.AbortWithError(c, http.StatusInternalServerError, "pricing failed", err)
	}
}
