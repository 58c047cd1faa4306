package main

import (
	"fmt"
	"os"

	"turfly/pkg/config"
	"turfly/pkg/logger"
	"turfly/pkg/model"
	"turfly/pkg/sealer"

	"github.com/urfave/cli/v2"
)

func main() {
	log := logger.New(logger.Config{Level: logger.INFO, Format: logger.TEXT, Output: os.Stderr, Service: "tokens"})
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal("tokens command failed", "error", err)
	}
}

func newApp() *cli.App {
	secretFlag := &cli.StringFlag{
		Name:     "secret",
		Usage:    "base64 AES key shared with the bookings service",
		EnvVars:  []string{config.EnvTokenSecret},
		Required: true,
	}

	return &cli.App{
		Name:  "tokens",
		Usage: "issue and inspect bearer tokens for the bookings API",
		Commands: []*cli.Command{
			{
				Name:  "issue",
				Usage: "seal a role and subject into a token",
				Flags: []cli.Flag{
					secretFlag,
					&cli.StringFlag{Name: "role", Aliases: []string{"r"}, Usage: "customer, manager or admin", Required: true},
					&cli.StringFlag{Name: "subject", Aliases: []string{"s"}, Usage: "user id or manager id", Required: true},
				},
				Action: issue,
			},
			{
				Name:      "inspect",
				Usage:     "open a token and print its claims",
				ArgsUsage: "<token>",
				Flags:     []cli.Flag{secretFlag},
				Action:    inspect,
			},
		},
	}
}

func issue(c *cli.Context) error {
	s, err := sealer.New(c.String("secret"))
	if err != nil {
		return err
	}

	token, err := s.CreateOpaqueToken(model.Claims{
		Role:    model.Role(c.String("role")),
		Subject: c.String("subject"),
	})
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(c.App.Writer, token)
	return err
}

func inspect(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one token, got %d arguments", c.NArg())
	}

	s, err := sealer.New(c.String("secret"))
	if err != nil {
		return err
	}

	claims, err := s.ParseOpaqueToken(c.Args().First())
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(c.App.Writer, "role=%s subject=%s\n", claims.Role, claims.Subject)
	return err
}
