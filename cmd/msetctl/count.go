package main

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/urfave/cli/v2"
)

var cmdCount = &cli.Command{
	Name:      "count",
	Usage:     "print each distinct token with its number of occurrences",
	ArgsUsage: `[<file>...]`,
	Flags: append([]cli.Flag{
		&cli.IntFlag{
			Name:  "top",
			Usage: "only print the N most frequent tokens",
		},
	}, loadFlags...),
	Action: runCount,
}

type tokenCount struct {
	token string
	count int
}

func runCount(cctx *cli.Context) error {
	top := cctx.Int("top")
	if top < 0 {
		return fmt.Errorf("--top must not be negative, got %d", top)
	}
	m, err := loadMultiset(cctx)
	if err != nil {
		return err
	}
	counts := make([]tokenCount, 0, m.Distinct())
	for tok, c := range m.All() {
		counts = append(counts, tokenCount{token: tok, count: c})
	}
	if top > 0 {
		// Ties keep their ascending token order.
		slices.SortStableFunc(counts, func(a, b tokenCount) int {
			return cmp.Compare(b.count, a.count)
		})
		counts = counts[:min(top, len(counts))]
	}
	w := cctx.App.Writer
	for _, tc := range counts {
		fmt.Fprintf(w, "%s\t%d\n", tc.token, tc.count)
	}
	return nil
}
