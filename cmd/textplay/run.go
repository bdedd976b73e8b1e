package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/alnah/go-textplay"
	"github.com/alnah/go-textplay/internal/config"
	"github.com/alnah/go-textplay/internal/fileutil"
	"github.com/alnah/go-textplay/internal/hints"
	"github.com/alnah/go-textplay/internal/log"
)

// run executes one invocation and returns the process exit code.
func run(ctx context.Context, flags *cliFlags, args []string, env *Environment) int {
	switch {
	case flags.info.help:
		printUsage(env.Stdout)
		return ExitSuccess
	case flags.info.version:
		fmt.Fprintf(env.Stdout, "textplay %s\n", Version)
		return ExitSuccess
	case flags.info.listStages:
		for i, name := range textplay.StageNames() {
			fmt.Fprintf(env.Stdout, "%2d  %s\n", i+1, name)
		}
		return ExitSuccess
	}

	if err := runConvert(ctx, flags, args, env); err != nil {
		fmt.Fprintf(env.Stderr, "textplay: %v%s\n", err, hintFor(err, flags.config))
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// runConvert loads configuration, reads every input, converts and writes the result.
func runConvert(ctx context.Context, flags *cliFlags, args []string, env *Environment) error {
	cfg := config.DefaultConfig()
	if flags.config != "" {
		var err error
		cfg, err = config.LoadConfig(flags.config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	// CLI wins over the config file
	mergeFlags(flags, cfg)

	logger, closer, err := log.New(log.Options{
		Level:   cfg.Log.Level,
		Console: env.Stderr,
		File:    cfg.Log.File,
	})
	if err != nil {
		return err
	}
	defer func() { _ = closer.Close() }()

	conv, err := textplay.NewConverter(converterOptions(cfg, logger)...)
	if err != nil {
		return err
	}

	text, err := fileutil.ReadInputs(ctx, args, env.Stdin)
	if err != nil {
		return err
	}

	start := env.Now()
	result, err := conv.Convert(ctx, textplay.Input{
		Text:       text,
		Standalone: cfg.Output.Standalone,
		Title:      cfg.Output.Title,
		TaggedOnly: cfg.Output.Tagged,
	})
	if err != nil {
		return err
	}
	elapsed := env.Now().Sub(start)

	if err := writeOutput(cfg.Output.Path, result.HTML, env.Stdout); err != nil {
		return err
	}

	logger.Info("converted",
		slog.Int("inputs", max(len(args), 1)),
		slog.Int("bytes", len(result.HTML)),
		slog.Duration("took", elapsed),
	)

	if flags.info.stats {
		printStats(env.Stderr, result.Outline)
	}
	if cfg.Output.Path != "" && !flags.quiet {
		printCreated(env.Stderr, cfg.Output.Path, elapsed, flags.verbose)
	}
	return nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *cliFlags, cfg *config.Config) {
	if flags.output.path != "" {
		cfg.Output.Path = flags.output.path
	}
	if flags.output.title != "" {
		cfg.Output.Title = flags.output.title
	}

	// An output mode flag replaces the configured mode; both flags together
	// are rejected by the converter.
	if flags.output.standalone || flags.output.tagged {
		cfg.Output.Standalone = flags.output.standalone
		cfg.Output.Tagged = flags.output.tagged
	}

	if flags.style.style != "" {
		cfg.CSS.Style = flags.style.style
		cfg.CSS.None = false
	}
	if flags.style.noStyle {
		cfg.CSS.Style = ""
		cfg.CSS.None = true
	}
	if flags.style.assetPath != "" {
		cfg.Assets.BasePath = flags.style.assetPath
	}

	if flags.logFile != "" {
		cfg.Log.File = flags.logFile
	}
	switch {
	case flags.verbose:
		cfg.Log.Level = "debug"
	case flags.quiet:
		cfg.Log.Level = "error"
	}
}

// converterOptions translates the merged config into converter options.
func converterOptions(cfg *config.Config, logger *slog.Logger) []textplay.Option {
	opts := []textplay.Option{textplay.WithLogger(logger)}

	switch {
	case cfg.CSS.None:
		opts = append(opts, textplay.WithoutStyle())
	case cfg.CSS.Style != "":
		opts = append(opts, textplay.WithStyle(cfg.CSS.Style))
	}
	if cfg.Assets.BasePath != "" {
		opts = append(opts, textplay.WithAssetPath(cfg.Assets.BasePath))
	}
	return opts
}

// writeOutput writes to path, or to stdout when path is empty.
// errStdout marks write failures on standard output, where no output
// directory is involved.
var errStdout = errors.New("stdout")

func writeOutput(path string, data []byte, stdout io.Writer) error {
	if path == "" {
		if _, err := stdout.Write(data); err != nil {
			return fmt.Errorf("%w: %w: %w", fileutil.ErrWriteOutput, errStdout, err)
		}
		return nil
	}
	return fileutil.WriteFileAtomic(path, data)
}

// printStats writes the outline summary. Tagged output carries no outline.
func printStats(w io.Writer, o *textplay.Outline) {
	if o == nil {
		fmt.Fprintln(w, "stats: not available for tagged output")
		return
	}
	fmt.Fprintf(w, "scene headings: %d\n", o.SceneHeadings)
	fmt.Fprintf(w, "sluglines:      %d\n", o.Sluglines)
	fmt.Fprintf(w, "transitions:    %d\n", o.Transitions)
	fmt.Fprintf(w, "dialogue:       %d\n", o.DialogueBlocks)
	fmt.Fprintf(w, "action:         %d\n", o.ActionParagraphs)
	fmt.Fprintf(w, "page breaks:    %d\n", o.PageBreaks)
	fmt.Fprintf(w, "characters:     %s\n", strings.Join(o.Characters, ", "))
}

func printCreated(w io.Writer, path string, elapsed time.Duration, verbose bool) {
	if verbose {
		fmt.Fprintf(w, "Created %s (%v)\n", path, elapsed.Round(time.Millisecond))
		return
	}
	fmt.Fprintf(w, "Created %s\n", path)
}

// hintFor returns an actionable hint suffix for err, or "".
func hintFor(err error, configName string) string {
	switch {
	case errors.Is(err, fileutil.ErrReadInput):
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			return hints.ForInput(pathErr.Path)
		}
		return hints.ForInput("")
	case errors.Is(err, fileutil.ErrWriteOutput) && !errors.Is(err, errStdout):
		return hints.ForOutputDirectory()
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(config.CandidatePaths(configName))
	case errors.Is(err, textplay.ErrStyleNotFound):
		return hints.ForStyleNotFound(textplay.StyleNames())
	case errors.Is(err, textplay.ErrConflictingModes):
		return hints.ForConflictingModes()
	default:
		return ""
	}
}
