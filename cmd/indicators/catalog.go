package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/rxtech-lab/argo-indicators/internal/indicator"
)

func catalogCommand() *cli.Command {
	return &cli.Command{
		Name:  "catalog",
		Usage: "List the available indicators",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Print the catalog as JSON",
			},
		},
		Action: catalogAction,
	}
}

func catalogAction(ctx context.Context, cmd *cli.Command) error {
	catalog := indicator.Catalog()

	if cmd.Bool("json") {
		out, err := json.MarshalIndent(catalog, "", "  ")
		if err != nil {
			return err
		}

		fmt.Println(string(out))

		return nil
	}

	fmt.Printf("%-12s %-28s %-16s %-10s %s\n", "ID", "NAME", "CATEGORY", "KIND", "FIELDS")

	for _, def := range catalog {
		fields := ""
		for i, field := range def.Fields {
			if i > 0 {
				fields += ", "
			}

			fields += string(field)
		}

		fmt.Printf("%-12s %-28s %-16s %-10s %s\n", def.ID, def.Label, def.Category, def.Kind, fields)
	}

	return nil
}
