package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/ezBadminton/goversus/entry"
	"github.com/ezBadminton/goversus/internal"
)

func newDraftCommand() *cli.Command {
	return &cli.Command{
		Name:  "draft",
		Usage: "create a draft file from pasted lines, one item per line",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "title", Usage: "tournament title"},
			&cli.StringFlag{Name: "input", Aliases: []string{"i"}, Usage: "file with one item per line (default: stdin)"},
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "draft file to write (default: stdout)"},
		},
		Action: func(c *cli.Context) error {
			in := c.App.Reader
			if path := c.String("input"); path != "" {
				f, err := os.Open(path)
				if err != nil {
					return fmt.Errorf("failed to open input: %w", err)
				}
				defer f.Close()
				in = f
			}

			text, err := io.ReadAll(in)
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}

			draft := &entry.Draft{
				Title: c.String("title"),
				Items: entry.ParseBulk(string(text), internal.UUIDGenerator{}),
			}

			out := c.App.Writer
			if path := c.String("output"); path != "" {
				f, err := os.Create(path)
				if err != nil {
					return fmt.Errorf("failed to create output: %w", err)
				}
				defer f.Close()
				out = f
			}

			return entry.Export(out, draft)
		},
	}
}
