package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2adf <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert      Convert markdown files to ADF JSON")
	fmt.Fprintln(w, "  config       Print the effective configuration")
	fmt.Fprintln(w, "  version      Show version information")
	fmt.Fprintln(w, "  help         Show help for a command")
	fmt.Fprintln(w, "  completion   Generate shell completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'md2adf help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2adf convert <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert markdown files to Atlassian Document Format (ADF) JSON.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Markdown file, directory, or - for stdin")
	fmt.Fprintln(w, "           (optional if config has input.defaultDir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>           Output file or directory (- = stdout)")
	fmt.Fprintln(w, "  -c, --config <name>           Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>             Parallel workers (0 = auto)")
	fmt.Fprintln(w, "      --indent                  Pretty-print JSON")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Code Blocks:")
	fmt.Fprintln(w, "      --default-language <s>    Language for fences without one (default: text)")
	fmt.Fprintln(w, "      --normalize-language      Map aliases to canonical names (js -> javascript)")
	fmt.Fprintln(w, "      --detect-language         Guess missing languages from content")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Document:")
	fmt.Fprintln(w, "      --layout <s>              Image layout: center, wide, full-width,")
	fmt.Fprintln(w, "                                wrap-left, wrap-right, align-start, align-end")
	fmt.Fprintln(w, "      --base-url <url>          Resolve relative image and link targets")
	fmt.Fprintln(w, "      --strip-front-matter      Remove YAML/TOML front matter")
	fmt.Fprintln(w, "      --sequential-ids          Number task ids (reproducible output)")
	fmt.Fprintln(w, "      --id-prefix <s>           Prefix for sequential task ids")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet                   Only show errors")
	fmt.Fprintln(w, "  -v, --verbose                 Show detailed timing")
	fmt.Fprintln(w, "      --dump-tokens             Print the token tree to stderr")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MD2ADF_CONFIG, MD2ADF_INPUT_DIR, MD2ADF_OUTPUT_DIR,")
	fmt.Fprintln(w, "  MD2ADF_MEDIA_LAYOUT, MD2ADF_BASE_URL, MD2ADF_WORKERS")
}

// printConfigUsage prints usage for the config command.
func printConfigUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2adf config [-c <name>]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the effective configuration as YAML: defaults, then the config")
	fmt.Fprintln(w, "file, then MD2ADF_* environment variables.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  -c, --config <name>    Config file name or path")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "convert":
		printConvertUsage(env.Stdout)
	case "config":
		printConfigUsage(env.Stdout)
	case "completion":
		printCompletionUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: md2adf version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: md2adf help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
