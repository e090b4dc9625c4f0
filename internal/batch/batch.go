// Package batch prices a column of spots read from a CSV file and writes the
// priced rows to another CSV file.
package batch

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gocarina/gocsv"

	"github.com/guttosm/putpricer/internal/logger"
	"github.com/guttosm/putpricer/internal/pricing"
)

// spotHeader is the only column accepted in input files.
const spotHeader = "spot"

// ErrTooManySpots is returned when the input exceeds the configured limit.
var ErrTooManySpots = errors.New("too many spots in input")

// Pricer prices a spot vector; *pricing.Engine satisfies it.
type Pricer interface {
	Price(ctx context.Context, kind pricing.Kind, spots []float64, p pricing.Parameters) ([]float64, error)
}

type pricedRow struct {
	Spot  float64 `csv:"spot"`
	Value float64 `csv:"value"`
}

// ProcessFile reads spots from in, prices them and writes spot,value rows to out.
//
// Behavior:
//   - The separator is ';' when the header line contains one, ',' otherwise.
//     With ';' a decimal comma is accepted ("60,5").
//   - The header must be exactly "spot". Blank rows are skipped.
//   - Parse errors and invalid spots report the 1-based line in the input file.
//   - maxSpots <= 0 disables the size limit.
//
// Returns the number of priced rows.
func ProcessFile(ctx context.Context, in, out string, kind pricing.Kind, p pricing.Parameters, engine Pricer, maxSpots int) (int, error) {
	log := logger.Component("batch")
	started := time.Now()

	spots, lines, err := readSpots(ctx, in, maxSpots)
	if err != nil {
		return 0, err
	}

	values, err := engine.Price(ctx, kind, spots, p)
	if err != nil {
		var inErr *pricing.InputError
		if errors.As(err, &inErr) && inErr.Index < len(lines) {
			return 0, fmt.Errorf("line %d: %w", lines[inErr.Index], err)
		}
		return 0, err
	}

	rows := make([]pricedRow, len(spots))
	for i := range spots {
		rows[i] = pricedRow{Spot: spots[i], Value: values[i]}
	}
	if err := writeRows(out, rows); err != nil {
		return 0, err
	}

	log.Info().
		Str("in", in).
		Str("out", out).
		Str("kind", string(kind)).
		Int("rows", len(rows)).
		Dur("elapsed", time.Since(started)).
		Msg("batch priced")
	return len(rows), nil
}

// readSpots parses the input file and returns the spots with the input line
// each one came from.
func readSpots(ctx context.Context, path string, maxSpots int) ([]float64, []int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open: %w", err)
	}
	defer func() { _ = f.Close() }()

	br := bufio.NewReader(f)
	sep, err := detectSeparator(br)
	if err != nil {
		return nil, nil, err
	}

	r := csv.NewReader(br)
	r.Comma = sep
	r.FieldsPerRecord = -1 // checked per row
	r.TrimLeadingSpace = true

	header, err := r.Read()
	header = dropTrailingEmpty(header)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, errors.New("read header: empty file")
		}
		return nil, nil, fmt.Errorf("read header: %w", err)
	}
	if len(header) != 1 || strings.TrimSpace(strings.TrimPrefix(header[0], "\ufeff")) != spotHeader {
		return nil, nil, fmt.Errorf("invalid header: expected %q, got %q", spotHeader, strings.Join(header, string(sep)))
	}

	var (
		spots []float64
		lines []int
	)
	for {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, nil, fmt.Errorf("read: %w", err)
		}
		line, _ := r.FieldPos(0)
		rec = dropTrailingEmpty(rec)

		if len(rec) == 0 {
			continue
		}
		if len(rec) != 1 {
			return nil, nil, fmt.Errorf("line %d: expected 1 column, got %d", line, len(rec))
		}

		s := strings.TrimSpace(rec[0])
		if sep == ';' {
			s = strings.ReplaceAll(s, ",", ".")
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: invalid spot %q", line, rec[0])
		}

		if maxSpots > 0 && len(spots) == maxSpots {
			return nil, nil, fmt.Errorf("%w: limit %d", ErrTooManySpots, maxSpots)
		}
		spots = append(spots, v)
		lines = append(lines, line)
	}
	return spots, lines, nil
}

// dropTrailingEmpty removes empty cells left by a trailing separator.
func dropTrailingEmpty(rec []string) []string {
	for len(rec) > 0 && strings.TrimSpace(rec[len(rec)-1]) == "" {
		rec = rec[:len(rec)-1]
	}
	return rec
}

// detectSeparator inspects the first line without consuming it.
func detectSeparator(br *bufio.Reader) (rune, error) {
	for n := 64; ; n *= 2 {
		peek, err := br.Peek(n)
		if i := strings.IndexByte(string(peek), '\n'); i >= 0 {
			peek = peek[:i]
		} else if err == nil {
			continue
		}
		if strings.ContainsRune(string(peek), ';') {
			return ';', nil
		}
		if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
			return 0, fmt.Errorf("read header: %w", err)
		}
		return ',', nil
	}
}

func writeRows(path string, rows []pricedRow) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := gocsv.MarshalFile(&rows, f); err != nil {
		_ = f.Close()
		return fmt.Errorf("write output: %w", err)
	}
	return f.Close()
}
