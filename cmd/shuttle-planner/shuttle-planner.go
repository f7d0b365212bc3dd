package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/travigo/shuttle-planner/pkg/api"
	"github.com/travigo/shuttle-planner/pkg/report"
	"github.com/urfave/cli/v2"

	_ "time/tzdata"
)

func main() {
	// Logs go to stderr so report output on stdout stays clean
	if os.Getenv("SHUTTLE_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	if os.Getenv("SHUTTLE_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	app := &cli.App{
		Name:        "shuttle-planner",
		Description: "Works out how many shuttles each time block needs from historical trip files",

		Commands: []*cli.Command{
			api.RegisterCLI(),
			report.RegisterCLI(),
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}
