package main

import (
	"context"
	"fmt"

	"h2hgym/internal/trial"
	"h2hgym/pkg/types"

	"github.com/k0kubun/pp/v3"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var trialCommand = &cli.Command{
	Name:  "trial",
	Usage: "Send one free trial request to the configured backend",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "name", Usage: "Full name", Required: true},
		&cli.StringFlag{Name: "phone", Usage: "Phone / WhatsApp", Required: true},
		&cli.StringFlag{Name: "email", Usage: "Email (optional)"},
		&cli.StringFlag{Name: "goal", Usage: "Training goal (optional)"},
	},
	Action: func(c *cli.Context) error {
		config, err := loadConfig(c.String("env-prefix"))
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		form := trial.NewForm(trial.NewClient(config.BackendURL, nil), logrus.StandardLogger())

		status, err := form.Submit(context.Background(), types.TrialRequest{
			Name:  c.String("name"),
			Email: c.String("email"),
			Phone: c.String("phone"),
			Goal:  c.String("goal"),
		})
		if err != nil {
			return err
		}

		pp.Println(status)

		if !status.OK() {
			return cli.Exit(status.Message, 1)
		}

		return nil
	},
}
