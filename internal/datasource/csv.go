package datasource

import (
	"os"
	"sort"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/moznion/go-optional"
	"go.uber.org/zap"

	"github.com/rxtech-lab/argo-indicators/internal/logger"
	"github.com/rxtech-lab/argo-indicators/internal/types"
	"github.com/rxtech-lab/argo-indicators/pkg/errors"
)

// CSVDataSource reads bars from a CSV file with a header row. The whole file
// is loaded into memory on Initialize and sorted by time.
type CSVDataSource struct {
	logger *logger.Logger
	cache  []types.Bar
}

func NewCSVDataSource(log *logger.Logger) *CSVDataSource {
	return &CSVDataSource{
		logger: log,
		cache:  nil,
	}
}

// Initialize implements DataSource.
func (c *CSVDataSource) Initialize(path string) error {
	csvFile, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(errors.ErrCodeDataSourceUnavailable, err, "failed to open CSV file %s", path)
	}
	defer csvFile.Close()

	var bars []types.Bar
	if err := gocsv.UnmarshalFile(csvFile, &bars); err != nil {
		return errors.Wrapf(errors.ErrCodeDataParseFailed, err, "failed to unmarshal CSV file %s", path)
	}

	sort.Slice(bars, func(i, j int) bool {
		return bars[i].Time.Before(bars[j].Time)
	})

	c.cache = bars
	c.logger.Debug("Loaded bars from CSV", zap.String("path", path), zap.Int("count", len(bars)))

	return nil
}

// Load implements DataSource.
func (c *CSVDataSource) Load(start optional.Option[time.Time], end optional.Option[time.Time]) ([]types.Bar, error) {
	result := make([]types.Bar, 0, len(c.cache))

	for _, bar := range c.cache {
		if start.IsSome() && bar.Time.Before(start.Unwrap()) {
			continue
		}

		if end.IsSome() && bar.Time.After(end.Unwrap()) {
			continue
		}

		result = append(result, bar)
	}

	return result, nil
}

// Count implements DataSource.
func (c *CSVDataSource) Count(start optional.Option[time.Time], end optional.Option[time.Time]) (int, error) {
	bars, err := c.Load(start, end)
	if err != nil {
		return 0, err
	}

	return len(bars), nil
}

// Close implements DataSource.
func (c *CSVDataSource) Close() error {
	c.cache = nil

	return nil
}
