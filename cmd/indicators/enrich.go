package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/rxtech-lab/argo-indicators/internal/config"
	"github.com/rxtech-lab/argo-indicators/internal/datasource"
	"github.com/rxtech-lab/argo-indicators/internal/export"
	"github.com/rxtech-lab/argo-indicators/internal/indicator"
	"github.com/rxtech-lab/argo-indicators/pkg/errors"
)

func enrichCommand() *cli.Command {
	return &cli.Command{
		Name:  "enrich",
		Usage: "Compute indicator columns for a bar file and export the result",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a YAML enrichment config. Other flags are ignored when set.",
			},
			&cli.StringFlag{
				Name:    "data",
				Aliases: []string{"d"},
				Usage:   "Path to the input bar file (.csv or .parquet)",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Path of the enriched output file (.csv, .parquet or .json)",
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "Output format override (csv, parquet, json). Defaults to the output extension.",
			},
			&cli.StringSliceFlag{
				Name:    "indicators",
				Aliases: []string{"i"},
				Usage:   "Indicator ids to export (repeatable). Defaults to all.",
			},
			&cli.StringFlag{
				Name:  "start",
				Usage: "Inclusive lower time bound in RFC3339 format",
			},
			&cli.StringFlag{
				Name:  "end",
				Usage: "Inclusive upper time bound in RFC3339 format",
			},
		},
		Action: enrichAction,
	}
}

// enrichAction loads bars, runs the indicator engine over them, and exports
// the enriched series.
func enrichAction(ctx context.Context, cmd *cli.Command) error {
	log, err := newLogger(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()

	cfg, err := resolveEnrichConfig(cmd)
	if err != nil {
		return err
	}

	source, err := datasource.NewFromPath(cfg.Data, log)
	if err != nil {
		return fmt.Errorf("failed to open data source: %w", err)
	}
	defer source.Close()

	bars, err := source.Load(cfg.StartTime(), cfg.EndTime())
	if err != nil {
		return fmt.Errorf("failed to load bars: %w", err)
	}

	if len(bars) == 0 {
		return errors.Newf(errors.ErrCodeNoDataFound, "no bars found in %s", cfg.Data)
	}

	if len(bars) < indicator.MinBars() {
		short := errors.NewInsufficientDataErrorf(indicator.MinBars(), len(bars), cfg.Data,
			"series has %d bars but the slowest indicator needs %d", len(bars), indicator.MinBars())
		log.Warn("Some indicator columns will stay empty", zap.Error(short))
	}

	enriched := indicator.Compute(bars)

	format := export.Format(cfg.Format)
	if format == "" {
		format, err = export.FormatForPath(cfg.Output)
		if err != nil {
			return err
		}
	}

	fields := indicator.FieldsFor(cfg.IndicatorTypes())
	exporter := export.NewExporter(cfg.Output, format, fields, log)

	outputPath, err := exporter.Export(enriched)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	log.Info("Enrichment complete",
		zap.String("output", outputPath),
		zap.Int("bars", len(bars)),
		zap.Int("columns", len(fields)))

	return nil
}

// resolveEnrichConfig builds the run config from the config file flag or, if
// absent, from the individual flags.
func resolveEnrichConfig(cmd *cli.Command) (*config.EnrichConfig, error) {
	if path := cmd.String("config"); path != "" {
		return config.Load(path)
	}

	cfg := &config.EnrichConfig{
		Version:    "main",
		Data:       cmd.String("data"),
		Output:     cmd.String("output"),
		Format:     cmd.String("format"),
		Indicators: cmd.StringSlice("indicators"),
		Start:      cmd.String("start"),
		End:        cmd.String("end"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
