package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2adf/internal/fileutil"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(runMain(os.Args, DefaultEnv()))
}

// commands lists the subcommand names accepted as the first argument.
var commands = []string{"convert", "config", "version", "help", "completion"}

// runMain dispatches the command line and returns the process exit code.
// A Markdown path (or "-") as first argument is shorthand for convert.
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	cmd, rest := args[1], args[2:]
	var err error

	switch {
	case cmd == "convert":
		err = runConvertCmd(ctx, rest, env)
	case cmd == "config":
		err = runConfigCmd(rest, env)
	case cmd == "version" || cmd == "--version":
		fmt.Fprintf(env.Stdout, "go-md2adf %s\n", Version)
	case cmd == "help" || cmd == "-h" || cmd == "--help":
		runHelp(rest, env)
	case cmd == "completion":
		err = runCompletion(rest, env)
	case cmd == stdioPath || looksLikeMarkdown(cmd):
		err = runConvertCmd(ctx, args[1:], env)
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", cmd)
		printUsage(env.Stderr)
		return ExitUsage
	}

	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// isCommand reports whether name is a known subcommand.
func isCommand(name string) bool {
	for _, c := range commands {
		if c == name {
			return true
		}
	}
	return false
}

// looksLikeMarkdown reports whether arg names a Markdown file or an
// existing directory, so "md2adf README.md" works without "convert".
func looksLikeMarkdown(arg string) bool {
	if isCommand(arg) || strings.HasPrefix(arg, "-") {
		return false
	}
	if fileutil.IsMarkdown(arg) {
		return true
	}
	info, err := os.Stat(filepath.Clean(arg))
	return err == nil && info.IsDir()
}
