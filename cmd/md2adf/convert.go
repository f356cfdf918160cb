package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"

	md2adf "github.com/alnah/go-md2adf"
	"github.com/alnah/go-md2adf/adf"
	"github.com/alnah/go-md2adf/internal/config"
	"github.com/alnah/go-md2adf/internal/hints"
	"github.com/alnah/go-md2adf/internal/logging"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput          = errors.New("no input specified")
	ErrInvalidFlag      = errors.New("invalid flag")
	ErrStdoutMultiple   = errors.New("stdout output requires a single input file")
	ErrConversionFailed = errors.New("conversion failed")
)

// stdioPath selects stdin as input or stdout as output.
const stdioPath = "-"

// Converter is the interface for the conversion service.
type Converter interface {
	Convert(ctx context.Context, input md2adf.Input) (*md2adf.ConvertResult, error)
}

// Compile-time interface implementation check.
var _ Converter = (*md2adf.Converter)(nil)

// conversionParams groups parameters shared across batch/file conversion.
type conversionParams struct {
	indent       bool
	maxInputSize int
	dump         *tokenDumper // nil unless --dump-tokens
	logger       *slog.Logger
}

// runConvertCmd parses convert flags, sets up the runtime and converts.
func runConvertCmd(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseConvertFlags(args, env.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFlag, err)
	}

	logger := newLogger(env.Stderr, flags.common.verbose)

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	undo, _ := maxprocs.Set(maxprocs.Logger(func(format string, args ...any) {
		logger.Debug(fmt.Sprintf(format, args...))
	}))
	defer undo()

	envCfg := loadEnvConfig()
	if !flags.common.quiet {
		warnUnknownEnvVars(env.Stderr)
	}

	return runConvert(ctx, positional, flags, envCfg, env, logger)
}

// newLogger returns a debug logger on w when verbose, a no-op otherwise.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return logging.NewNop()
	}
	return logging.New(w, slog.LevelDebug)
}

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, positionalArgs []string, flags *convertFlags, envCfg *envConfig, env *Environment, logger *slog.Logger) error {
	workers := flags.workers
	if workers == 0 {
		workers = envCfg.Workers
	}
	if err := validateWorkers(workers); err != nil {
		return err
	}

	// Load configuration: defaults < file < environment < flags
	cfg, err := loadEffectiveConfig(flags.common.config, envCfg)
	if err != nil {
		return err
	}
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	conv, err := md2adf.NewConverter(converterOptions(cfg)...)
	if err != nil {
		if errors.Is(err, md2adf.ErrInvalidMediaLayout) {
			return fmt.Errorf("%w%s", err, hints.ForMediaLayout(adf.Layouts))
		}
		return err
	}

	inputPath, err := resolveInputPath(positionalArgs, cfg)
	if err != nil {
		return err
	}
	outputPath := resolveOutputDir(flags.output.path, cfg)

	files, err := resolveFiles(inputPath, outputPath)
	if err != nil {
		return err
	}

	params := &conversionParams{
		indent:       cfg.Output.Indent,
		maxInputSize: md2adf.DefaultMaxInputSize,
		logger:       logger,
	}
	if flags.output.dumpTokens {
		params.dump = newTokenDumper(env.Stderr, cfg.StripFrontMatter())
	}

	poolSize := md2adf.ResolvePoolSize(workers)
	logger.Debug("starting conversion", "files", len(files), "workers", poolSize)

	results := convertBatch(ctx, conv, poolSize, files, params, env)

	failedCount := printResultsWithWriter(results, flags.common.quiet, flags.common.verbose, env)
	if failedCount > 0 {
		return fmt.Errorf("%w: %d of %d file(s)", ErrConversionFailed, failedCount, len(results))
	}
	return nil
}

// resolveFiles turns the input and output arguments into conversion jobs.
func resolveFiles(inputPath, outputPath string) ([]FileToConvert, error) {
	if inputPath == stdioPath {
		if outputPath == "" {
			outputPath = stdioPath
		}
		return []FileToConvert{{InputPath: stdioPath, OutputPath: outputPath}}, nil
	}

	files, err := discoverFiles(inputPath, outputPath)
	if err != nil {
		return nil, fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoMarkdownFiles, inputPath)
	}
	if outputPath == stdioPath && len(files) > 1 {
		return nil, fmt.Errorf("%w: found %d%s", ErrStdoutMultiple, len(files), hints.ForStdoutOutput())
	}
	return files, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	if flags.output.indent {
		cfg.Output.Indent = true
	}

	if flags.code.defaultLanguage != "" {
		cfg.Code.DefaultLanguage = flags.code.defaultLanguage
	}
	if flags.code.normalize {
		cfg.Code.Normalize = true
	}
	if flags.code.detect {
		cfg.Code.Detect = true
	}

	if flags.document.layout != "" {
		cfg.Media.Layout = flags.document.layout
	}
	if flags.document.baseURL != "" {
		cfg.Media.BaseURL = flags.document.baseURL
	}
	if flags.document.stripFrontMatter {
		cfg.Input.FrontMatter = config.FrontMatterStrip
	}
	if flags.document.sequentialIDs {
		cfg.IDs.Mode = config.IDModeSequence
	}
	if flags.document.idPrefix != "" {
		cfg.IDs.Prefix = flags.document.idPrefix
	}
}

// converterOptions maps config values to library options. Empty values
// keep the library defaults.
func converterOptions(cfg *config.Config) []md2adf.Option {
	opts := []md2adf.Option{
		md2adf.WithFrontMatter(cfg.StripFrontMatter()),
		md2adf.WithLanguageNormalization(cfg.Code.Normalize),
		md2adf.WithLanguageDetection(cfg.Code.Detect),
	}
	if cfg.Media.Layout != "" {
		opts = append(opts, md2adf.WithMediaLayout(cfg.Media.Layout))
	}
	if cfg.Media.BaseURL != "" {
		opts = append(opts, md2adf.WithBaseURL(cfg.Media.BaseURL))
	}
	if cfg.Code.DefaultLanguage != "" {
		opts = append(opts, md2adf.WithDefaultLanguage(cfg.Code.DefaultLanguage))
	}
	if cfg.SequentialIDs() {
		opts = append(opts, md2adf.WithIDGenerator(adf.SequenceFunc(cfg.IDs.Prefix)))
	}
	return opts
}

// resolveInputPath determines the input path from args or config.
func resolveInputPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", fmt.Errorf("%w%s", ErrNoInput, hints.ForNoInput())
}

// resolveOutputDir determines the output location from flag or config.
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.DefaultDir
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > md2adf.MaxPoolSize {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, md2adf.MaxPoolSize)
	}
	return nil
}

// readInput reads Markdown from a file, or from stdin for "-".
func readInput(path string, env *Environment) ([]byte, error) {
	var (
		content []byte
		err     error
	)
	if path == stdioPath {
		content, err = io.ReadAll(env.Stdin)
	} else {
		content, err = os.ReadFile(path) // #nosec G304 -- discovered or user-provided path
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}
	return content, nil
}
