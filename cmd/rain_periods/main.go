// rain_periods reports rainfall volumes per hour, day, month or year for a
// gage in a SWMM rainfall file.
package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func main() {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	app := newApp()
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "rain_periods"
	app.Usage = "sum rain gage readings into consecutive periods"
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:  "config",
			Usage: "path to the TOML config, created with defaults when missing",
		},
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "enable debug logging",
		},
	}
	app.Before = setup
	app.Commands = []*cli.Command{
		newPeriodsCommand(),
		newGagesCommand(),
	}
	return app
}
