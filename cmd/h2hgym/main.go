package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "h2hgym",
		Usage: "H2H Gym marketing site",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "env-prefix",
				Aliases: []string{"p"},
				Usage:   "Environment variable prefix",
			},
			&cli.StringFlag{
				Name:  "env-file",
				Usage: "Optional .env file loaded before reading the environment",
				Value: ".env",
			},
		},
		Before: func(c *cli.Context) error {
			if err := godotenv.Load(c.String("env-file")); err != nil && !os.IsNotExist(err) {
				logrus.WithError(err).Warn("failed to load env file")
			}
			return nil
		},
		Commands: []*cli.Command{
			serveCommand,
			trialCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("application failed")
	}
}
