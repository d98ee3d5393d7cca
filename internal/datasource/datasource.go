// Package datasource loads OHLCV bars from local files. CSV files are read
// directly, parquet files through an embedded DuckDB instance.
package datasource

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/moznion/go-optional"

	"github.com/rxtech-lab/argo-indicators/internal/logger"
	"github.com/rxtech-lab/argo-indicators/internal/types"
	"github.com/rxtech-lab/argo-indicators/pkg/errors"
)

type DataSource interface {
	// Initialize loads or attaches the bar file at the given path
	Initialize(path string) error
	// Load returns bars within the optional time bounds, ordered by time ascending
	Load(start optional.Option[time.Time], end optional.Option[time.Time]) ([]types.Bar, error)
	// Count returns the number of bars within the optional time bounds
	Count(start optional.Option[time.Time], end optional.Option[time.Time]) (int, error)
	// Close closes the data source and releases any resources
	Close() error
}

// NewFromPath creates and initializes a data source for the given file,
// picking the implementation from the file extension.
func NewFromPath(path string, log *logger.Logger) (DataSource, error) {
	var (
		source DataSource
		err    error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		source = NewCSVDataSource(log)
	case ".parquet":
		source, err = NewDuckDBDataSource(":memory:", log)
		if err != nil {
			return nil, err
		}
	default:
		return nil, errors.Newf(errors.ErrCodeInvalidParameter, "unsupported data file extension: %s", filepath.Ext(path))
	}

	if err := source.Initialize(path); err != nil {
		source.Close()

		return nil, err
	}

	return source, nil
}
