/*
 * Copyright (C) 2026 Cloudius Systems, Ltd.
 *
 * This work is open source software, licensed under the terms of the
 * BSD license as described in the LICENSE file in the top-level directory.
 */

package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/cloudius-systems/ginfo/cmd"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const usage = "usage: ginfo [-b|--base64] [--] [file] (flags go before the file)"

// newApp builds the command without the library's help and version
// surface: "help" is a file name like any other and -h/-v are usage errors.
func newApp(stdin io.Reader, stdout, stderr io.Writer) *cli.App {
	app := &cli.App{
		Name:        "ginfo",
		Usage:       "display information about a gzip header",
		ArgsUsage:   "[file]",
		HideHelp:    true,
		HideVersion: true,
		Writer:      stdout,
		ErrWriter:   stderr,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "base64",
				Aliases: []string{"b"},
				Usage:   "read the input as base64 encoded",
			},
		},
		Action: func(c *cli.Context) error {
			if c.Args().Len() > 1 {
				return errors.Errorf("expected at most one file, got %d\n%s", c.Args().Len(), usage)
			}
			return cmd.Info(c.App.Writer, stdin, c.Args().First(), c.Bool("base64"))
		},
		OnUsageError: func(c *cli.Context, err error, isSubcommand bool) error {
			if err == flag.ErrHelp {
				return errors.New(usage)
			}
			return errors.Errorf("%s\n%s", err, usage)
		},
	}
	return app
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	app := newApp(stdin, stdout, stderr)
	if err := app.Run(args); err != nil {
		fmt.Fprintf(stderr, "%s: %s\n", app.Name, err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}
