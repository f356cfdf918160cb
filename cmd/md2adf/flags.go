package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// outputFlags holds output destination and format flags.
type outputFlags struct {
	path       string
	indent     bool
	dumpTokens bool
}

// codeFlags holds code block language flags.
type codeFlags struct {
	defaultLanguage string
	normalize       bool
	detect          bool
}

// documentFlags holds flags shaping the produced document.
type documentFlags struct {
	layout           string
	baseURL          string
	stripFrontMatter bool
	sequentialIDs    bool
	idPrefix         string
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common   commonFlags
	output   outputFlags
	workers  int
	code     codeFlags
	document documentFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addOutputFlags adds output flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.StringVarP(&f.path, "output", "o", "", "output file or directory (- = stdout)")
	fs.BoolVar(&f.indent, "indent", false, "pretty-print JSON")
	fs.BoolVar(&f.dumpTokens, "dump-tokens", false, "print the token tree to stderr")
}

// addCodeFlags adds code block flags to a FlagSet.
func addCodeFlags(fs *flag.FlagSet, f *codeFlags) {
	fs.StringVar(&f.defaultLanguage, "default-language", "", "language for fences without one (default: text)")
	fs.BoolVar(&f.normalize, "normalize-language", false, "map language aliases to canonical names")
	fs.BoolVar(&f.detect, "detect-language", false, "guess missing languages from content")
}

// addDocumentFlags adds document shaping flags to a FlagSet.
func addDocumentFlags(fs *flag.FlagSet, f *documentFlags) {
	fs.StringVar(&f.layout, "layout", "", "image layout (center, wide, full-width, ...)")
	fs.StringVar(&f.baseURL, "base-url", "", "resolve relative image and link targets against this URL")
	fs.BoolVar(&f.stripFrontMatter, "strip-front-matter", false, "remove YAML/TOML front matter")
	fs.BoolVar(&f.sequentialIDs, "sequential-ids", false, "number task ids instead of using UUIDs")
	fs.StringVar(&f.idPrefix, "id-prefix", "", "prefix for sequential task ids")
}

// newConvertFlagSet registers every convert flag into f.
// Shared by parsing and shell completion.
func newConvertFlagSet(f *convertFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)

	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")

	addCommonFlags(fs, &f.common)
	addOutputFlags(fs, &f.output)
	addCodeFlags(fs, &f.code)
	addDocumentFlags(fs, &f.document)

	return fs
}

// parseConvertFlags parses convert command flags and returns positional args.
// Usage is printed to w on parse errors and -h.
func parseConvertFlags(args []string, w io.Writer) (*convertFlags, []string, error) {
	f := &convertFlags{}
	fs := newConvertFlagSet(f)
	fs.SetOutput(w)
	fs.Usage = func() { printConvertUsage(w) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
