package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/tsp-registry/cmd/app/commands"
	"github.com/allisson/tsp-registry/internal/app"
	"github.com/allisson/tsp-registry/internal/config"
)

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   "text",
		Usage:   "Output format: 'text' or 'json'",
	}
}

func getApprovedTspCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "create-tsp",
			Usage: "Register an approved timestamping service provider",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "cert-file",
					Aliases:  []string{"c"},
					Required: true,
					Usage:    "Path to the TSP certificate (DER or PEM)",
				},
				&cli.StringFlag{
					Name:     "url",
					Aliases:  []string{"u"},
					Required: true,
					Usage:    "Timestamping service URL",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				useCase, err := container.ApprovedTspUseCase()
				if err != nil {
					return err
				}

				return commands.RunCreateTsp(
					ctx,
					useCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("cert-file"),
					cmd.String("url"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "list-tsps",
			Usage: "List approved timestamping service providers",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "search",
					Aliases: []string{"s"},
					Usage:   "Match against name, valid from and valid to",
				},
				&cli.StringFlag{
					Name:  "sort-column",
					Value: "name",
					Usage: "One of name, valid_from, valid_to, url, created_at",
				},
				&cli.StringFlag{
					Name:  "sort-direction",
					Value: "ASC",
					Usage: "ASC or DESC",
				},
				&cli.IntFlag{
					Name:    "limit",
					Aliases: []string{"l"},
					Value:   50,
					Usage:   "Page size (0 lists every record)",
				},
				&cli.IntFlag{
					Name:    "offset",
					Aliases: []string{"o"},
					Value:   0,
					Usage:   "Number of records to skip",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				useCase, err := container.ApprovedTspUseCase()
				if err != nil {
					return err
				}

				return commands.RunListTsps(
					ctx,
					useCase,
					commands.DefaultIO().Writer,
					cmd.String("search"),
					cmd.String("sort-column"),
					cmd.String("sort-direction"),
					int(cmd.Int("limit")),
					int(cmd.Int("offset")),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "update-tsp",
			Usage: "Change the URL of an approved timestamping service provider",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "id",
					Aliases:  []string{"i"},
					Required: true,
					Usage:    "Approved TSP ID (UUID)",
				},
				&cli.StringFlag{
					Name:     "url",
					Aliases:  []string{"u"},
					Required: true,
					Usage:    "New timestamping service URL",
				},
				&cli.StringFlag{
					Name:    "cert-file",
					Aliases: []string{"c"},
					Usage:   "Stored certificate, resubmitted for confirmation (optional)",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				useCase, err := container.ApprovedTspUseCase()
				if err != nil {
					return err
				}

				return commands.RunUpdateTsp(
					ctx,
					useCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("id"),
					cmd.String("url"),
					cmd.String("cert-file"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "delete-tsp",
			Usage: "Remove an approved timestamping service provider",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "id",
					Aliases:  []string{"i"},
					Required: true,
					Usage:    "Approved TSP ID (UUID)",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				useCase, err := container.ApprovedTspUseCase()
				if err != nil {
					return err
				}

				return commands.RunDeleteTsp(
					ctx,
					useCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("id"),
				)
			},
		},
	}
}
