package api

import (
	"github.com/rs/zerolog/log"
	"github.com/travigo/shuttle-planner/pkg/config"
	"github.com/travigo/shuttle-planner/pkg/planner"
	"github.com/travigo/shuttle-planner/pkg/session"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "web-api",
		Usage: "Provides the interactive shuttle planning web API",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run web api server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Value: ":8080",
						Usage: "listen target for the web server",
					},
				},
				Action: func(c *cli.Context) error {
					cfg, err := config.Load()
					if err != nil {
						return err
					}

					tripPlanner, err := planner.NewPlanner(cfg.Capacity)
					if err != nil {
						return err
					}

					store := session.NewStore(tripPlanner, cfg.MaxSessions, cfg.SessionTTL, session.Options{
						MemoSize:   cfg.MemoSize,
						MonthOrder: cfg.MonthOrder,
					})

					log.Info().
						Str("listen", c.String("listen")).
						Int("capacity", tripPlanner.Capacity()).
						Str("session-ttl", cfg.SessionTTL.String()).
						Str("month-order", string(cfg.MonthOrder)).
						Msg("Starting web api")

					return SetupServer(c.String("listen"), store, cfg.MaxUploadBytes)
				},
			},
		},
	}
}
