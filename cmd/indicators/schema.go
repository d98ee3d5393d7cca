package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/rxtech-lab/argo-indicators/internal/config"
	"github.com/rxtech-lab/argo-indicators/internal/version"
	"github.com/rxtech-lab/argo-indicators/pkg/errors"
	"github.com/rxtech-lab/argo-indicators/pkg/marketdata"
	"github.com/rxtech-lab/argo-indicators/pkg/utils"
)

func schemaCommand() *cli.Command {
	return &cli.Command{
		Name:  "schema",
		Usage: "Print the JSON schema for a config type",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "type",
				Aliases: []string{"t"},
				Usage:   "Config type: enrich, polygon or binance",
				Value:   "enrich",
			},
		},
		Action: schemaAction,
	}
}

func schemaAction(ctx context.Context, cmd *cli.Command) error {
	configType := cmd.String("type")

	var (
		schema string
		err    error
	)

	switch configType {
	case "enrich":
		//nolint:exhaustruct // Empty struct is intentional for schema generation
		schema, err = utils.GetInlineSchemaFromConfig(config.EnrichConfig{})
	case "polygon", "binance":
		schema, err = marketdata.GetDownloadConfigSchema(configType)
	default:
		return errors.Newf(errors.ErrCodeInvalidParameter, "unknown config type: %s", configType)
	}

	if err != nil {
		return err
	}

	fmt.Println(schema)

	return nil
}

func versionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Print the engine version",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			fmt.Println(version.GetVersion())

			return nil
		},
	}
}
