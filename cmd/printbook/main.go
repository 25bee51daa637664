package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

// commands lists the subcommands; build runs when none is given.
var commands = []string{"build", "verify", "config", "profiles", "version", "help"}

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain dispatches args (including the program name) and returns the exit code.
func runMain(args []string, env *Environment) int {
	cmd, rest := "build", args[1:]
	if len(rest) > 0 && !strings.HasPrefix(rest[0], "-") {
		if !isCommand(rest[0]) {
			fmt.Fprintf(env.Stderr, "unknown command: %s\n\n", rest[0])
			printUsage(env.Stderr)
			return ExitUsage
		}
		cmd, rest = rest[0], rest[1:]
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	var err error
	switch cmd {
	case "build":
		err = runBuild(ctx, rest, env)
	case "verify":
		err = runVerify(rest, env)
	case "config":
		err = runConfig(rest, env)
	case "profiles":
		err = runProfiles(rest, env)
	case "version":
		fmt.Fprintf(env.Stdout, "go-printbook %s\n", Version)
	case "help":
		return runHelp(rest, env)
	}

	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

func isCommand(s string) bool {
	for _, c := range commands {
		if s == c {
			return true
		}
	}
	return false
}
