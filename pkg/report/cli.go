package report

import (
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/travigo/shuttle-planner/pkg/config"
	"github.com/travigo/shuttle-planner/pkg/planner"
	"github.com/travigo/shuttle-planner/pkg/session"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "report",
		Usage: "Print the shuttle plan for a trip file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "file",
				Usage:    "CSV or XLSX trip file to plan from",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "month",
				Usage: "month to plan for, defaults to the first month in the file",
			},
			&cli.StringFlag{
				Name:  "traffic",
				Value: string(planner.TrafficLevelAverage),
				Usage: "traffic level (Average, Moderate or High)",
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

			data, err := os.ReadFile(c.String("file"))
			if err != nil {
				return err
			}

			reportSession := session.New(uuid.NewString(), tripPlanner, session.Options{
				MemoSize:   cfg.MemoSize,
				MonthOrder: cfg.MonthOrder,
			})

			months, err := reportSession.Upload(c.String("file"), data)
			if err != nil {
				return err
			}

			month := c.String("month")
			if month == "" && len(months) > 0 {
				month = months[0]
			}

			log.Info().
				Str("file", c.String("file")).
				Strs("months", months).
				Str("month", month).
				Str("traffic", c.String("traffic")).
				Msg("Building report")

			plan, err := reportSession.Plan(month, c.String("traffic"))
			if err != nil {
				return err
			}

			return Render(os.Stdout, plan)
		},
	}
}
