package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/ajwerner/multiset"
	"github.com/ajwerner/multiset/orderstat"
)

func configLogger(cctx *cli.Context, writer io.Writer) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cctx.String("log-level")) {
	case "error":
		level = slog.LevelError
	case "warn":
		level = slog.LevelWarn
	case "info":
		level = slog.LevelInfo
	case "debug":
		level = slog.LevelDebug
	default:
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(writer, &slog.HandlerOptions{
		Level: level,
	}))
}

// newMultiset builds an empty multiset configured from the global flags.
func newMultiset(cctx *cli.Context) (*orderstat.Multiset[string], *slog.Logger, error) {
	b, err := multiset.ParseBalancing(cctx.String("balancer"))
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --balancer: %w", err)
	}
	logger := configLogger(cctx, cctx.App.ErrWriter)
	m := orderstat.Make[string](
		multiset.WithBalancing(b),
		multiset.WithLogger(logger),
	)
	return m, logger, nil
}

// loadMultiset reads the tokens named by the command's arguments into a new
// multiset.
func loadMultiset(cctx *cli.Context) (*orderstat.Multiset[string], error) {
	m, logger, err := newMultiset(cctx)
	if err != nil {
		return nil, err
	}
	opts := loadOptions{
		fold: cctx.Bool("fold"),
		jobs: cctx.Int("jobs"),
	}
	if opts.jobs < 1 {
		return nil, fmt.Errorf("--jobs must be positive, got %d", opts.jobs)
	}
	l := loader{
		stdin:  cctx.App.Reader,
		opts:   opts,
		logger: logger,
	}
	if err := l.load(cctx.Context, cctx.Args().Slice(), m); err != nil {
		return nil, err
	}
	logger.Info("input loaded", "total", m.Len(), "distinct", m.Distinct(), "height", m.Height())
	return m, nil
}

var loadFlags = []cli.Flag{
	&cli.BoolFlag{
		Name:  "fold",
		Usage: "fold case and strip diacritics before counting",
	},
	&cli.IntFlag{
		Name:    "jobs",
		Aliases: []string{"j"},
		Usage:   "number of files to read in parallel",
		Value:   4,
	},
}
