package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
	"golang.org/x/time/rate"

	"github.com/ezBadminton/goversus/config"
	"github.com/ezBadminton/goversus/core"
	"github.com/ezBadminton/goversus/entry"
	"github.com/ezBadminton/goversus/internal"
)

var errInputEnded = errors.New("input ended before the tournament was completed")

func newPlayCommand() *cli.Command {
	return &cli.Command{
		Name:      "play",
		Usage:     "run a tournament from a draft file",
		ArgsUsage: "DRAFT",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Value: "versus.yaml", Usage: "path to the configuration file"},
			&cli.Int64Flag{Name: "seed", Usage: "seed for the bracket shuffle (overrides the config)"},
			&cli.BoolFlag{Name: "json", Usage: "print the final tournament as JSON"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.Exit("play expects exactly one draft file", 2)
			}

			cfg, err := config.LoadConfig(c.String("config"))
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if c.IsSet("seed") {
				cfg.Seed = c.Int64("seed")
			}

			logger, err := newLogger(cfg, c.App.ErrWriter)
			if err != nil {
				return err
			}

			f, err := os.Open(c.Args().First())
			if err != nil {
				return fmt.Errorf("failed to open draft: %w", err)
			}
			defer f.Close()

			draft, err := entry.Import(f, internal.UUIDGenerator{})
			if err != nil {
				return err
			}
			if draft.Title == "" {
				draft.Title = cfg.DefaultTitle
			}

			p := &player{
				organizer: newOrganizer(cfg, logger),
				titles:    newTitler(cfg, logger),
				in:        bufio.NewScanner(c.App.Reader),
				out:       c.App.Writer,
				logger:    logger,
			}

			tournament, err := p.play(c.Context, draft)
			if err != nil {
				return err
			}

			p.printRankings(tournament)

			if c.Bool("json") {
				encoder := json.NewEncoder(c.App.Writer)
				encoder.SetIndent("", "  ")
				return encoder.Encode(tournament)
			}
			return nil
		},
	}
}

func newLogger(cfg *config.Config, w io.Writer) (*slog.Logger, error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler), nil
}

func newOrganizer(cfg *config.Config, logger *slog.Logger) *core.Organizer {
	options := []core.Option{core.WithLogger(logger)}
	if cfg.Seed != 0 {
		options = append(options, core.WithSeed(cfg.Seed))
	}
	return core.NewOrganizer(options...)
}

// A titler returns the display title of an item
type titler interface {
	Title(ctx context.Context, item *core.Item) string
}

type nameTitler struct{}

func (nameTitler) Title(_ context.Context, item *core.Item) string {
	return item.DisplayName()
}

func newTitler(cfg *config.Config, logger *slog.Logger) titler {
	if !cfg.Titles.Enabled {
		return nameTitler{}
	}
	return entry.NewTitleFetcher(entry.TitleFetcherOptions{
		Endpoint:  cfg.Titles.Endpoint,
		RateLimit: rate.Limit(cfg.Titles.RatePerSecond),
		Timeout:   cfg.Titles.Timeout,
		Logger:    logger,
	})
}

type player struct {
	organizer *core.Organizer
	titles    titler
	in        *bufio.Scanner
	out       io.Writer
	logger    *slog.Logger
}

// Plays the draft until a winner is decided. Every match is
// shown on out and decided by a line read from in.
func (p *player) play(ctx context.Context, draft *entry.Draft) (*core.Tournament, error) {
	tournament, err := draft.Start(p.organizer)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(p.out, "%s (%d items)\n", tournament.Title, len(tournament.Items))

	for match := core.NextMatch(tournament); match != nil; match = core.NextMatch(tournament) {
		progress := core.GetProgress(tournament)
		fmt.Fprintf(p.out, "\nRound %d, match %d of %d\n",
			tournament.CurrentRoundIndex+1, progress.Completed+1, progress.Total)
		fmt.Fprintf(p.out, "  [1] %s\n", entry.DisplayText(p.titles.Title(ctx, match.P1)))
		fmt.Fprintf(p.out, "  [2] %s\n", entry.DisplayText(p.titles.Title(ctx, match.P2)))

		winner, err := p.choose(match)
		if err != nil {
			return nil, err
		}

		tournament, err = p.organizer.Resolve(tournament, match.ID, winner)
		if err != nil {
			return nil, err
		}
	}

	return tournament, nil
}

// Reads lines until one picks a side of the match
func (p *player) choose(match *core.Match) (*core.Item, error) {
	for {
		fmt.Fprint(p.out, "Pick 1 or 2 (q to quit): ")
		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return nil, fmt.Errorf("failed to read choice: %w", err)
			}
			return nil, errInputEnded
		}

		switch strings.TrimSpace(p.in.Text()) {
		case "1":
			return match.P1, nil
		case "2":
			return match.P2, nil
		case "q", "Q":
			return nil, cli.Exit("tournament abandoned", 1)
		default:
			p.logger.Debug("invalid choice", slog.String("input", p.in.Text()))
			fmt.Fprintln(p.out, "Invalid choice")
		}
	}
}

func (p *player) printRankings(tournament *core.Tournament) {
	fmt.Fprintf(p.out, "\nFinal rankings of %s\n", tournament.Title)
	for _, placement := range core.Rankings(tournament) {
		fmt.Fprintf(p.out, "%3d. %s\n", placement.Rank, entry.DisplayText(placement.Item.DisplayName()))
	}
}
