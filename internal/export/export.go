// Package export writes enriched bars to CSV, Parquet, or JSON files. CSV
// and Parquet go through an embedded DuckDB instance so missing indicator
// values come out as proper nulls; JSON uses the EnrichedBar marshaling
// where missing values become JSON null.
package export

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	_ "github.com/marcboeker/go-duckdb"
	"github.com/moznion/go-optional"
	"go.uber.org/zap"

	"github.com/rxtech-lab/argo-indicators/internal/logger"
	"github.com/rxtech-lab/argo-indicators/internal/types"
	"github.com/rxtech-lab/argo-indicators/pkg/errors"
)

// Format is the output file format.
type Format string

const (
	FormatCSV     Format = "csv"
	FormatParquet Format = "parquet"
	FormatJSON    Format = "json"
)

// ParseFormat validates a format string.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatCSV:
		return FormatCSV, nil
	case FormatParquet:
		return FormatParquet, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", errors.Newf(errors.ErrCodeInvalidParameter, "unsupported export format: %s", s)
	}
}

// FormatForPath picks the format from a file extension.
func FormatForPath(path string) (Format, error) {
	idx := strings.LastIndex(path, ".")
	if idx < 0 {
		return "", errors.Newf(errors.ErrCodeInvalidParameter, "cannot infer export format from path: %s", path)
	}

	return ParseFormat(path[idx+1:])
}

// Exporter writes enriched bars to a single output file.
type Exporter struct {
	outputPath string
	format     Format
	fields     []types.FieldName
	logger     *logger.Logger
}

// NewExporter creates an exporter for the given output path and format.
// fields selects the indicator columns for CSV and Parquet output; an empty
// list exports every indicator column. JSON output always carries all fields.
func NewExporter(outputPath string, format Format, fields []types.FieldName, log *logger.Logger) *Exporter {
	if len(fields) == 0 {
		fields = types.AllFields()
	}

	return &Exporter{
		outputPath: outputPath,
		format:     format,
		fields:     fields,
		logger:     log,
	}
}

// Export writes the enriched bars and returns the output path.
func (e *Exporter) Export(bars []types.EnrichedBar) (string, error) {
	e.logger.Debug("Exporting enriched bars",
		zap.String("path", e.outputPath),
		zap.String("format", string(e.format)),
		zap.Int("bars", len(bars)))

	switch e.format {
	case FormatJSON:
		return e.outputPath, e.exportJSON(bars)
	case FormatCSV, FormatParquet:
		return e.outputPath, e.exportViaDuckDB(bars)
	default:
		return "", errors.Newf(errors.ErrCodeInvalidParameter, "unsupported export format: %s", e.format)
	}
}

func (e *Exporter) exportJSON(bars []types.EnrichedBar) error {
	file, err := os.Create(e.outputPath)
	if err != nil {
		return errors.Wrapf(errors.ErrCodeExportFailed, err, "failed to create %s", e.outputPath)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(bars); err != nil {
		return errors.Wrap(errors.ErrCodeExportFailed, "failed to encode enriched bars", err)
	}

	return nil
}

func (e *Exporter) exportViaDuckDB(bars []types.EnrichedBar) (err error) {
	db, err := sql.Open("duckdb", ":memory:")
	if err != nil {
		return errors.Wrap(errors.ErrCodeExportFailed, "failed to open DuckDB", err)
	}
	defer db.Close()

	if err := e.createTable(db); err != nil {
		return err
	}

	if err := e.insertBars(db, bars); err != nil {
		return err
	}

	copyOptions := "FORMAT PARQUET"
	if e.format == FormatCSV {
		copyOptions = "FORMAT CSV, HEADER"
	}

	_, err = db.Exec(fmt.Sprintf(`COPY (SELECT * FROM enriched_bars ORDER BY time ASC) TO '%s' (%s)`, e.outputPath, copyOptions))
	if err != nil {
		return errors.Wrapf(errors.ErrCodeExportFailed, err, "failed to copy enriched bars to %s", e.outputPath)
	}

	return nil
}

func (e *Exporter) createTable(db *sql.DB) error {
	columns := []string{
		"time TIMESTAMP",
		"open DOUBLE",
		"high DOUBLE",
		"low DOUBLE",
		"close DOUBLE",
		"volume DOUBLE",
	}

	for _, field := range e.fields {
		columns = append(columns, fmt.Sprintf("%s DOUBLE", field))
	}

	query := fmt.Sprintf("CREATE TABLE enriched_bars (%s)", strings.Join(columns, ", "))

	if _, err := db.Exec(query); err != nil {
		return errors.Wrap(errors.ErrCodeExportFailed, "failed to create export table", err)
	}

	return nil
}

func (e *Exporter) insertBars(db *sql.DB, bars []types.EnrichedBar) error {
	tx, err := db.Begin()
	if err != nil {
		return errors.Wrap(errors.ErrCodeExportFailed, "failed to begin transaction", err)
	}

	placeholders := make([]string, 0, 6+len(e.fields))
	for i := 0; i < 6+len(e.fields); i++ {
		placeholders = append(placeholders, "?")
	}

	stmt, err := tx.Prepare(fmt.Sprintf("INSERT INTO enriched_bars VALUES (%s)", strings.Join(placeholders, ", ")))
	if err != nil {
		tx.Rollback()

		return errors.Wrap(errors.ErrCodeExportFailed, "failed to prepare insert", err)
	}
	defer stmt.Close()

	for i := range bars {
		bar := &bars[i]
		args := make([]any, 0, 6+len(e.fields))
		args = append(args, bar.Time, bar.Open, bar.High, bar.Low, bar.Close, bar.Volume)

		for _, field := range e.fields {
			args = append(args, optionToNullable(bar.Field(field)))
		}

		if _, err := stmt.Exec(args...); err != nil {
			tx.Rollback()

			return errors.Wrap(errors.ErrCodeExportFailed, "failed to insert enriched bar", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(errors.ErrCodeExportFailed, "failed to commit transaction", err)
	}

	return nil
}

// optionToNullable converts a missing value to a SQL NULL.
func optionToNullable(o optional.Option[float64]) any {
	if o.IsNone() {
		return nil
	}

	return o.Unwrap()
}
