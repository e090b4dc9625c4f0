package main

//
//  @title           putpricer API
//  @version         1.0
//  @description     Vectorized Black-Scholes-Merton pricing of European options with a continuous dividend yield.
//  @termsOfService  https://github.com/guttosm/putpricer
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/putpricer
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        options
//  @tag.description Pricing endpoints for spot vectors and grids
//
//  @tag.name        runs
//  @tag.description Recorded pricing run history
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/guttosm/putpricer/config"
	_ "github.com/guttosm/putpricer/docs" // swagger docs
	"github.com/guttosm/putpricer/internal/app"
	"github.com/guttosm/putpricer/internal/batch"
	"github.com/guttosm/putpricer/internal/domain/models"
	"github.com/guttosm/putpricer/internal/logger"
	"github.com/guttosm/putpricer/internal/pricing"
	"github.com/guttosm/putpricer/internal/report"
	"github.com/guttosm/putpricer/internal/service"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - port (string): The port where the server will listen for incoming requests.
//
// Returns:
//   - *http.Server: The initialized HTTP server instance.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown gracefully terminates the HTTP server and cleans up resources
// when an OS interrupt signal (SIGINT, SIGTERM) is received.
//
// Parameters:
//   - ctx (context.Context): A context with timeout for graceful shutdown.
//   - server (*http.Server): The HTTP server instance to shut down.
//   - cleanup (func()): Cleanup callback to release resources (e.g., DB connections).
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// priceOptions carries the flags of price mode.
type priceOptions struct {
	kind      string
	spots     string
	gridStart float64
	gridStop  float64
	gridStep  float64
	params    pricing.Parameters
}

// parseSpots parses a comma separated spot list such as "0,60,120".
// Empty items are ignored.
func parseSpots(s string) ([]float64, error) {
	var spots []float64
	for i, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		v, err := strconv.ParseFloat(item, 64)
		if err != nil {
			return nil, fmt.Errorf("spots item %d: invalid number %q", i+1, item)
		}
		spots = append(spots, v)
	}
	return spots, nil
}

// runPrice prices the spots given on the command line and prints them as a table.
//
// Either opts.spots or a grid (opts.gridStep > 0) must be given, not both.
func runPrice(ctx context.Context, w io.Writer, svc service.PricingService, opts priceOptions) error {
	kind, err := pricing.ParseKind(opts.kind)
	if err != nil {
		return err
	}

	useGrid := opts.gridStep > 0
	if useGrid == (opts.spots != "") {
		return errors.New("price mode needs exactly one of --spots or --grid-step")
	}

	var res *models.PricingResult
	if useGrid {
		res, err = svc.PriceGrid(ctx, kind, opts.gridStart, opts.gridStop, opts.gridStep, opts.params)
	} else {
		var spots []float64
		if spots, err = parseSpots(opts.spots); err != nil {
			return err
		}
		res, err = svc.Price(ctx, kind, spots, opts.params)
	}
	if err != nil {
		return err
	}

	report.Summary(w, [][2]string{
		{"kind", res.Kind},
		{"spots", strconv.Itoa(len(res.Values))},
		{"discounted_strike", strconv.FormatFloat(res.DiscountedStrike, 'f', 6, 64)},
		{"elapsed", res.Elapsed.String()},
	})
	return report.Table(w, res.Spots, res.Values)
}

// main is the entry point of the putpricer application.
//
// Modes (selected via --mode flag):
//   - price: Prices --spots or a --grid-* range and prints a table.
//   - batch: Prices the "spot" column of --in and writes spot,value rows to --out.
//   - api:   Starts the REST API.
//
// Contract flags (price and batch): --kind, --strike, --rate, --yield, --maturity, --vol.
// Engine tuning and limits come from config (PRICER_*).
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Init()

	mode := flag.String("mode", "price", "Mode: price, batch or api")
	kind := flag.String("kind", "put", "Option kind: put or call")
	spots := flag.String("spots", "", "Comma separated spots, e.g. 0,60,120")
	gridStart := flag.Float64("grid-start", 0, "First grid spot")
	gridStop := flag.Float64("grid-stop", 100, "Last grid spot")
	gridStep := flag.Float64("grid-step", 0, "Grid step (enables grid pricing when > 0)")
	strike := flag.Float64("strike", 0, "Strike price")
	rate := flag.Float64("rate", 0, "Continuous risk-free rate")
	yield := flag.Float64("yield", 0, "Continuous dividend yield")
	maturity := flag.Float64("maturity", 0, "Time to maturity in years")
	vol := flag.Float64("vol", 0, "Annualized volatility")
	in := flag.String("in", "", "Batch input CSV with a 'spot' column")
	out := flag.String("out", "", "Batch output CSV")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	flag.Parse()

	params := pricing.Parameters{
		Strike:     *strike,
		Rate:       *rate,
		Yield:      *yield,
		Maturity:   *maturity,
		Volatility: *vol,
	}
	engine := app.NewEngine(config.AppConfig.Pricer)

	switch *mode {
	case "price":
		svc := service.NewPricingService(engine, nil, config.AppConfig.Pricer.MaxSpots)
		err := runPrice(ctx, os.Stdout, svc, priceOptions{
			kind:      *kind,
			spots:     *spots,
			gridStart: *gridStart,
			gridStop:  *gridStop,
			gridStep:  *gridStep,
			params:    params,
		})
		if err != nil {
			logger.L().Fatal().Err(err).Msg("pricing failed")
		}

	case "batch":
		if *in == "" || *out == "" {
			logger.L().Fatal().Msg("batch mode requires --in and --out")
		}
		k, err := pricing.ParseKind(*kind)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("invalid kind")
		}
		n, err := batch.ProcessFile(ctx, *in, *out, k, params, engine, config.AppConfig.Pricer.MaxSpots)
		if err != nil {
			logger.L().Fatal().Err(err).Str("in", *in).Msg("batch failed")
		}
		logger.L().Info().Int("rows", n).Str("out", *out).Msg("batch completed successfully")

	case "api":
		// API mode: start the HTTP server
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cleanup)

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
