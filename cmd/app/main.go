// Package main provides the entry point for the application with CLI commands.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/ameerarsath/publicdocsafe-sub005/cmd/app/commands"
)

func main() {
	cmd := &cli.Command{
		Name:    "docsafe",
		Usage:   "Client-side document encryption tooling",
		Version: "1.0.0",
		Commands: []*cli.Command{
			{
				Name:  "encrypt-file",
				Usage: "Encrypt a file into a portable password-protected container",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "in",
						Aliases:  []string{"i"},
						Required: true,
						Usage:    "Path of the file to encrypt",
					},
					&cli.StringFlag{
						Name:    "out",
						Aliases: []string{"o"},
						Usage:   "Output path (defaults to <in>.enc)",
					},
					&cli.StringFlag{
						Name:    "mime",
						Aliases: []string{"m"},
						Usage:   "MIME type to record (defaults to a guess from the extension)",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunEncryptFile(
						cmd.String("in"),
						cmd.String("out"),
						cmd.String("mime"),
						commands.DefaultIO(),
					)
				},
			},
			{
				Name:  "decrypt-file",
				Usage: "Decrypt an encrypted container back to the original file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "in",
						Aliases:  []string{"i"},
						Required: true,
						Usage:    "Path of the container to decrypt",
					},
					&cli.StringFlag{
						Name:    "out",
						Aliases: []string{"o"},
						Usage:   "Output path (defaults to the original filename from the header)",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunDecryptFile(
						cmd.String("in"),
						cmd.String("out"),
						commands.DefaultIO(),
					)
				},
			},
			{
				Name:  "inspect",
				Usage: "Show an encrypted container's metadata header without decrypting",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "in",
						Aliases:  []string{"i"},
						Required: true,
						Usage:    "Path of the container to inspect",
					},
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Value:   "text",
						Usage:   "Output format: 'text' or 'json'",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunInspect(
						cmd.String("in"),
						cmd.String("format"),
						commands.DefaultIO(),
					)
				},
			},
			{
				Name:  "detect",
				Usage: "Classify a file as encrypted or plaintext",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "in",
						Aliases:  []string{"i"},
						Required: true,
						Usage:    "Path of the file to classify",
					},
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Value:   "text",
						Usage:   "Output format: 'text' or 'json'",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunDetect(
						cmd.String("in"),
						cmd.String("format"),
						commands.DefaultIO(),
					)
				},
			},
			{
				Name:  "self-test",
				Usage: "Run an encrypt/decrypt round trip to verify the crypto stack",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunSelfTest(commands.DefaultIO())
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.Any("error", err))
		os.Exit(1)
	}
}
