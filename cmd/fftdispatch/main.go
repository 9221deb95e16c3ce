// Command fftdispatch demonstrates and inspects construction-time
// backend dispatch. The demo subcommand reproduces the classic custom
// evaluator walkthrough: a user backend valid only for length-1024
// transforms supersedes the library default at 1024 and falls back to it
// at other lengths.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/urfave/cli/v3"
	"k8s.io/klog/v2"
)

func main() {
	app := &cli.Command{
		Name:  "fftdispatch",
		Usage: "Backend-dispatch demo and registry inspection",
		Action: func(_ context.Context, cmd *cli.Command) error {
			return cli.ShowAppHelp(cmd)
		},
		Commands: []*cli.Command{
			demoCmd(),
			registryCmd(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// initLogging wires klog verbosity. The ALGODISPATCH_VERBOSE environment
// variable overrides the configured level.
func initLogging(verbosity int64) {
	if env := os.Getenv("ALGODISPATCH_VERBOSE"); env != "" {
		if v, err := strconv.ParseInt(env, 10, 64); err == nil {
			verbosity = v
		}
	}

	fs := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(fs)
	_ = fs.Set("v", strconv.FormatInt(verbosity, 10))
}
