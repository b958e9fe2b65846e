package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(runMain(os.Args[1:], DefaultEnv()))
}

// runMain parses args, renders, and returns the process exit code.
func runMain(args []string, env *Environment) int {
	flags, positional, err := parseFlags(args, env)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		fmt.Fprintln(env.Stderr, "Run 'mdpage --help' for usage.")
		return ExitUsage
	}

	if flags.version {
		fmt.Fprintf(env.Stdout, "mdpage %s\n", Version)
		return ExitSuccess
	}

	// maxprocs.Set only fails if GOMAXPROCS is invalid; runtime defaults apply then.
	if env.SetMaxProcs != nil {
		logf := func(string, ...interface{}) {}
		if flags.common.verbose {
			logf = func(format string, args ...interface{}) {
				fmt.Fprintf(env.Stderr, format+"\n", args...)
			}
		}
		undo := env.SetMaxProcs(logf)
		defer undo()
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	if err := runRender(ctx, positional, flags, env); err != nil {
		fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err))
		return exitCodeFor(err)
	}
	return ExitSuccess
}
