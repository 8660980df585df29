// msetctl counts the whitespace separated tokens of its input in a multiset
// and reports frequencies, order statistics or the shape of the tree.
package main

import (
	"fmt"
	"io"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/carlmjohnson/versioninfo"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(-1)
	}
}

func run(args []string) error {
	return newApp(os.Stdin, os.Stdout, os.Stderr).Run(args)
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *cli.App {
	app := &cli.App{
		Name:      "msetctl",
		Usage:     "count tokens in an ordered multiset",
		Version:   versioninfo.Short(),
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: stderr,
	}
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "balancer",
			Usage:   "tree balancing strategy (avl, none)",
			Value:   "avl",
			EnvVars: []string{"MSETCTL_BALANCER"},
		},
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "log verbosity level (error, warn, info, debug)",
			Value:   "warn",
			EnvVars: []string{"MSETCTL_LOG_LEVEL"},
		},
	}
	app.Commands = []*cli.Command{
		cmdCount,
		cmdStats,
		cmdTree,
	}
	return app
}
