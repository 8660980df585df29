package main

import (
	"fmt"
	"strconv"

	"github.com/urfave/cli/v2"
)

var cmdStats = &cli.Command{
	Name:      "stats",
	Usage:     "print summary and order statistics of the tokens",
	ArgsUsage: `[<file>...]`,
	Flags: append([]cli.Flag{
		&cli.Float64SliceFlag{
			Name:  "quantile",
			Usage: "additional quantile in [0, 1] to report, may be repeated",
		},
	}, loadFlags...),
	Action: runStats,
}

func runStats(cctx *cli.Context) error {
	qs := cctx.Float64Slice("quantile")
	for _, q := range qs {
		if q < 0 || q > 1 {
			return fmt.Errorf("quantile %v out of range [0, 1]", q)
		}
	}
	m, err := loadMultiset(cctx)
	if err != nil {
		return err
	}
	w := cctx.App.Writer
	fmt.Fprintf(w, "total\t%d\n", m.Len())
	fmt.Fprintf(w, "distinct\t%d\n", m.Distinct())
	if m.Len() == 0 {
		return nil
	}
	lo, _ := m.Min()
	hi, _ := m.Max()
	med, _ := m.Median()
	fmt.Fprintf(w, "min\t%s\n", lo)
	fmt.Fprintf(w, "max\t%s\n", hi)
	fmt.Fprintf(w, "median\t%s\n", med)
	for _, q := range qs {
		v, _ := m.Quantile(q)
		fmt.Fprintf(w, "p%s\t%s\n", strconv.FormatFloat(q, 'g', -1, 64), v)
	}
	return nil
}
