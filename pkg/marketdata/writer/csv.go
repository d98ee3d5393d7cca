package writer

import (
	"fmt"
	"os"
	"sort"

	"github.com/gocarina/gocsv"

	"github.com/rxtech-lab/argo-indicators/internal/types"
)

// CSVWriter buffers bars in memory and writes them out as a single CSV file
// with a header row on Finalize.
type CSVWriter struct {
	bars       []types.Bar
	outputPath string
}

// NewCSVWriter creates a new CSVWriter writing to the given file path.
func NewCSVWriter(outputPath string) BarWriter {
	return &CSVWriter{
		bars:       nil,
		outputPath: outputPath,
	}
}

// Initialize implements BarWriter.
func (w *CSVWriter) Initialize() error {
	w.bars = make([]types.Bar, 0, 1000)

	return nil
}

// Write implements BarWriter.
func (w *CSVWriter) Write(bar types.Bar) error {
	if w.bars == nil {
		return fmt.Errorf("writer not initialized")
	}

	w.bars = append(w.bars, bar)

	return nil
}

// Finalize sorts the buffered bars by time and writes the CSV file.
func (w *CSVWriter) Finalize() (string, error) {
	if w.bars == nil {
		return "", fmt.Errorf("writer not initialized")
	}

	sort.Slice(w.bars, func(i, j int) bool {
		return w.bars[i].Time.Before(w.bars[j].Time)
	})

	file, err := os.Create(w.outputPath)
	if err != nil {
		return "", fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	if err := gocsv.MarshalFile(&w.bars, file); err != nil {
		return "", fmt.Errorf("failed to marshal bars to CSV: %w", err)
	}

	return w.outputPath, nil
}

// Close implements BarWriter.
func (w *CSVWriter) Close() error {
	w.bars = nil

	return nil
}

// GetOutputPath returns the configured output file path.
func (w *CSVWriter) GetOutputPath() string {
	return w.outputPath
}
