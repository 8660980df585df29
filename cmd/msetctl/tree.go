package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

var cmdTree = &cli.Command{
	Name:      "tree",
	Usage:     "print the shape of the tree holding the tokens",
	ArgsUsage: `[<file>...]`,
	Flags:     loadFlags,
	Action: func(cctx *cli.Context) error {
		m, err := loadMultiset(cctx)
		if err != nil {
			return err
		}
		if err := m.Verify(); err != nil {
			return err
		}
		fmt.Fprint(cctx.App.Writer, m.Dump())
		return nil
	},
}
