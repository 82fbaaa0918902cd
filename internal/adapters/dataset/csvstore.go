package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	model "github.com/gullylabs/gully/internal/domain/model"
	"github.com/gullylabs/gully/pkg/logger"
	"github.com/gullylabs/gully/pkg/metrics"
)

// Default dataset locations, relative to the working directory.
const (
	DefaultMatchesPath    = "data/matches.csv"
	DefaultDeliveriesPath = "data/deliveries.csv"
)

// Column names each file must carry. Headers are matched by name, so column
// order in the file does not matter.
const (
	colMatchID       = "id"
	colWinner        = "winner"
	colBatsman       = "batsman"
	colBatsmanRuns   = "batsman_runs"
	colBowler        = "bowler"
	colDismissalKind = "dismissal_kind"
)

// CSVStore implements Store over two CSV files on disk.
type CSVStore struct {
	matchesPath    string
	deliveriesPath string
	log            logger.Logger

	once       sync.Once
	mu         sync.RWMutex
	matches    []model.Match
	deliveries []model.Delivery
	loadErr    error
	loadedAt   time.Time
	loadDur    time.Duration
}

// New creates a CSVStore with configuration options.
func New(opts ...Option) *CSVStore {
	s := &CSVStore{
		matchesPath:    DefaultMatchesPath,
		deliveriesPath: DefaultDeliveriesPath,
		log:            logger.Get().Named("dataset"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load parses both files. The first call does the work and memoizes the
// outcome; every later call returns that same outcome.
func (s *CSVStore) Load(ctx context.Context) error {
	s.once.Do(func() { s.load(ctx) })
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadErr
}

// Matches returns the match records, loading on first access.
// The returned slice is shared; callers must treat it as read-only.
func (s *CSVStore) Matches(ctx context.Context) ([]model.Match, error) {
	if err := s.Load(ctx); err != nil {
		return nil, err
	}
	return s.matches, nil
}

// Deliveries returns the delivery records, loading on first access.
// The returned slice is shared; callers must treat it as read-only.
func (s *CSVStore) Deliveries(ctx context.Context) ([]model.Delivery, error) {
	if err := s.Load(ctx); err != nil {
		return nil, err
	}
	return s.deliveries, nil
}

// Stats reports the memoized load state without triggering a load.
func (s *CSVStore) Stats(_ context.Context) Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Stats{
		Loaded:         !s.loadedAt.IsZero() && s.loadErr == nil,
		MatchCount:     len(s.matches),
		DeliveryCount:  len(s.deliveries),
		LoadedAt:       s.loadedAt,
		LoadDuration:   s.loadDur,
		MatchesPath:    s.matchesPath,
		DeliveriesPath: s.deliveriesPath,
	}
}

func (s *CSVStore) load(ctx context.Context) {
	start := time.Now()

	matches, err := s.loadMatches(ctx)
	if err == nil {
		var deliveries []model.Delivery
		deliveries, err = s.loadDeliveries(ctx)
		if err == nil {
			s.mu.Lock()
			s.matches = matches
			s.deliveries = deliveries
			s.loadedAt = time.Now()
			s.loadDur = time.Since(start)
			s.mu.Unlock()

			metrics.RecordDatasetLoad(len(matches), len(deliveries), s.loadDur)
			s.log.Info(ctx, "dataset loaded",
				logger.Int("matches", len(matches)),
				logger.Int("deliveries", len(deliveries)),
				logger.Duration("took", s.loadDur),
			)
			return
		}
	}

	s.mu.Lock()
	s.loadErr = err
	s.mu.Unlock()

	metrics.RecordDatasetLoadError()
	s.log.Error(ctx, "dataset load failed", logger.Error(err))
}

func (s *CSVStore) loadMatches(ctx context.Context) ([]model.Match, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("load cancelled: %w", err)
	}
	t, err := openTable(s.matchesPath, colMatchID, colWinner)
	if err != nil {
		return nil, err
	}
	defer t.close()

	var matches []model.Match
	for {
		rec, ok, err := t.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return matches, nil
		}
		matches = append(matches, model.Match{
			ID:     strings.TrimSpace(t.cell(rec, colMatchID)),
			Winner: t.cell(rec, colWinner),
		})
	}
}

func (s *CSVStore) loadDeliveries(ctx context.Context) ([]model.Delivery, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("load cancelled: %w", err)
	}
	t, err := openTable(s.deliveriesPath, colBatsman, colBatsmanRuns, colBowler, colDismissalKind)
	if err != nil {
		return nil, err
	}
	defer t.close()

	var deliveries []model.Delivery
	for {
		rec, ok, err := t.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return deliveries, nil
		}
		runs, err := t.intCell(rec, colBatsmanRuns)
		if err != nil {
			return nil, err
		}
		deliveries = append(deliveries, model.Delivery{
			Batsman:       t.cell(rec, colBatsman),
			BatsmanRuns:   runs,
			Bowler:        t.cell(rec, colBowler),
			DismissalKind: t.cell(rec, colDismissalKind),
		})
	}
}

// table is a CSV file with a header-resolved column index and a running
// 1-based data row position for error reporting.
type table struct {
	path string
	f    *os.File
	r    *csv.Reader
	cols map[string]int
	row  int
}

func openTable(path string, required ...string) (*table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFileUnreadable, path, err)
	}
	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		_ = f.Close()
		if err == io.EOF {
			return nil, fmt.Errorf("%w: %s: missing header row", ErrMalformedRow, path)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedRow, path, err)
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		// Exported files sometimes lead with a BOM.
		cols[strings.TrimSpace(strings.TrimPrefix(name, "\uFEFF"))] = i
	}
	for _, name := range required {
		if _, ok := cols[name]; !ok {
			_ = f.Close()
			return nil, fmt.Errorf("%w: %s: %q", ErrMissingColumn, path, name)
		}
	}
	return &table{path: path, f: f, r: r, cols: cols}, nil
}

// next returns the following data record, or ok=false at a clean end of file.
func (t *table) next() (rec []string, ok bool, err error) {
	rec, err = t.r.Read()
	if err == io.EOF {
		return nil, false, nil
	}
	t.row++
	if err != nil {
		return nil, false, fmt.Errorf("%w: %s row %d: %v", ErrMalformedRow, t.path, t.row, err)
	}
	return rec, true, nil
}

func (t *table) cell(rec []string, col string) string {
	return rec[t.cols[col]]
}

// intCell parses a non-negative integer cell.
func (t *table) intCell(rec []string, col string) (int, error) {
	raw := strings.TrimSpace(t.cell(rec, col))
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%w: %s row %d, column %s: %q", ErrBadCell, t.path, t.row, col, raw)
	}
	return v, nil
}

func (t *table) close() {
	_ = t.f.Close()
}
