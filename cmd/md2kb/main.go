package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/alnah/go-md2kb/internal/hints"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain dispatches the command line and returns the process exit code.
// A first argument that is not a command is taken as the convert input.
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		fmt.Fprintf(env.Stderr, "error: %v%s\n\n", ErrNoInput, hints.ForNoInput())
		printUsage(env.Stderr)
		return ExitUsage
	}

	if !isCommand(args[1]) {
		return runConvertCmd(args[1:], env)
	}

	switch cmd, rest := args[1], args[2:]; cmd {
	case "version":
		fmt.Fprintf(env.Stdout, "md2kb %s\n", Version)
		return ExitSuccess
	case "help":
		return runHelp(rest, env)
	default:
		return runConvertCmd(rest, env)
	}
}

// commands lists the subcommand names. Matching is case-sensitive so a
// file named "Convert" is still an input.
var commands = []string{"convert", "version", "help"}

// isCommand reports whether arg names a subcommand.
func isCommand(arg string) bool {
	return slices.Contains(commands, arg)
}

// runConvertCmd parses convert flags, runs the conversion under a
// signal-aware context and maps the outcome to an exit code.
func runConvertCmd(args []string, env *Environment) int {
	flags, positional, err := parseConvertFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printConvertUsage(env.Stdout)
			return ExitSuccess
		}
		fmt.Fprintf(env.Stderr, "error: %v\n\n", err)
		printConvertUsage(env.Stderr)
		return ExitUsage
	}

	setMaxProcs(flags.common.verbose, env)

	ctx, stop := notifyContext(context.Background())
	defer stop()

	if err := runConvert(ctx, positional, flags, env); err != nil {
		var be *batchError
		if !errors.As(err, &be) {
			// Per-file failures were already reported with their hints.
			fmt.Fprintf(env.Stderr, "error: %v\n", err)
		}
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// setMaxProcs configures GOMAXPROCS for the container CPU quota.
// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
// in which case Go runtime defaults apply and the program continues safely.
func setMaxProcs(verbose bool, env *Environment) {
	logger := func(string, ...interface{}) {}
	if verbose {
		logger = func(format string, args ...interface{}) {
			fmt.Fprintf(env.Stderr, format+"\n", args...)
		}
	}
	_, _ = maxprocs.Set(maxprocs.Logger(logger))
}
