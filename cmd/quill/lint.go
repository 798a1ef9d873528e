package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"quill/internal/driver"
	"quill/internal/parsers"
	"quill/internal/report"
	"quill/internal/ui"
	"quill/internal/version"
)

var lintCmd = &cobra.Command{
	Use:   "lint [flags] <file|directory|->...",
	Short: "Lint prose files",
	Long: `Lint plain text, Markdown and Typst files. Directories are walked for
.txt, .md, .markdown, .mdx and .typ files. Use "-" to read from stdin.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLint,
}

func init() {
	lintCmd.Flags().String("format", "", "output format (pretty|short|json|sarif); defaults to [output] format")
	lintCmd.Flags().String("parser", "", "force a parser (plain|markdown|typst) instead of choosing by extension")
	lintCmd.Flags().String("stdin-name", "<stdin>", "file name reported for stdin input")
	lintCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	lintCmd.Flags().String("ui", "off", "show a progress view while linting (auto|on|off)")
	lintCmd.Flags().Bool("watch", false, "re-lint files when they change")
	lintCmd.Flags().Bool("no-cache", false, "disable the lint result cache")
	lintCmd.Flags().Bool("preview", false, "show how each suggestion changes the line")
	lintCmd.Flags().Bool("fullpath", false, "emit absolute file paths in output")
}

// lintRequest is the parsed form of the lint flags.
type lintRequest struct {
	env       *env
	opts      driver.Options
	format    report.Format
	preview   bool
	pathMode  report.PathMode
	stdinName string
	ui        uiMode
}

func parseLintRequest(cmd *cobra.Command, args []string) (*lintRequest, error) {
	e, err := loadEnv(cmd, args[0])
	if err != nil {
		return nil, err
	}

	formatStr, err := cmd.Flags().GetString("format")
	if err != nil {
		return nil, fmt.Errorf("failed to get format flag: %w", err)
	}
	if formatStr == "" {
		formatStr = e.cfg.Output.Format
	}
	format, err := report.ParseFormat(formatStr)
	if err != nil {
		return nil, err
	}

	parserName, err := cmd.Flags().GetString("parser")
	if err != nil {
		return nil, fmt.Errorf("failed to get parser flag: %w", err)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return nil, fmt.Errorf("failed to get jobs flag: %w", err)
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return nil, fmt.Errorf("failed to get no-cache flag: %w", err)
	}
	preview, err := cmd.Flags().GetBool("preview")
	if err != nil {
		return nil, fmt.Errorf("failed to get preview flag: %w", err)
	}
	fullPath, err := cmd.Flags().GetBool("fullpath")
	if err != nil {
		return nil, fmt.Errorf("failed to get fullpath flag: %w", err)
	}
	stdinName, err := cmd.Flags().GetString("stdin-name")
	if err != nil {
		return nil, fmt.Errorf("failed to get stdin-name flag: %w", err)
	}
	uiStr, err := cmd.Flags().GetString("ui")
	if err != nil {
		return nil, fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiStr)
	if err != nil {
		return nil, err
	}

	opts, err := e.driverOptions(jobs, !noCache)
	if err != nil {
		return nil, err
	}
	opts.Parser = parsers.Name(parserName)

	pathMode := report.PathModeRelative
	if fullPath {
		pathMode = report.PathModeAbsolute
	}
	return &lintRequest{
		env:       e,
		opts:      opts,
		format:    format,
		preview:   preview,
		pathMode:  pathMode,
		stdinName: stdinName,
		ui:        mode,
	}, nil
}

func runLint(cmd *cobra.Command, args []string) error {
	req, err := parseLintRequest(cmd, args)
	if err != nil {
		return err
	}
	watch, err := cmd.Flags().GetBool("watch")
	if err != nil {
		return fmt.Errorf("failed to get watch flag: %w", err)
	}
	if watch {
		if len(args) == 1 && args[0] == "-" {
			return fmt.Errorf("--watch cannot be used with stdin")
		}
		return runWatch(cmd.Context(), cmd.OutOrStdout(), req, args)
	}

	run, err := req.lint(cmd.Context(), cmd.InOrStdin(), args)
	if err != nil {
		return err
	}
	if err := req.render(cmd.OutOrStdout(), run, args); err != nil {
		return err
	}
	if n := report.Errors(cmd.ErrOrStderr(), run); n > 0 {
		return fmt.Errorf("%d file(s) could not be linted", n)
	}
	if run.LintCount() > 0 {
		return errLintsFound
	}
	return nil
}

// lint runs the driver over args, reading stdin for "-".
func (req *lintRequest) lint(ctx context.Context, stdin io.Reader, args []string) (*driver.Run, error) {
	if len(args) == 1 && args[0] == "-" {
		content, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return driver.LintText(ctx, req.stdinName, content, req.opts)
	}
	for _, a := range args {
		if a == "-" {
			return nil, fmt.Errorf(`"-" must be the only argument`)
		}
	}

	if !shouldUseTUI(req.ui) || req.env.quiet {
		return driver.LintPaths(ctx, args, req.opts)
	}
	files, err := driver.ListFiles(args, req.opts.Exclude)
	if err != nil {
		return nil, err
	}
	return runLintWithUI(ctx, files, args, req.opts)
}

// runLintWithUI drives the bubbletea progress view on stderr while linting.
func runLintWithUI(ctx context.Context, files, args []string, opts driver.Options) (*driver.Run, error) {
	events := make(chan driver.Event, 256)
	type outcome struct {
		run *driver.Run
		err error
	}
	outcomeCh := make(chan outcome, 1)

	go func() {
		opts.Sink = driver.ChannelSink{Ch: events}
		run, err := driver.LintPaths(ctx, args, opts)
		outcomeCh <- outcome{run: run, err: err}
		close(events)
	}()

	uiErr := ui.RunProgress("quill lint", files, events, os.Stderr)
	res := <-outcomeCh
	if uiErr != nil {
		return res.run, uiErr
	}
	return res.run, res.err
}

func (req *lintRequest) render(out io.Writer, run *driver.Run, args []string) error {
	e := req.env
	var err error
	switch req.format {
	case report.FormatPretty:
		err = report.Pretty(out, run, report.PrettyOpts{
			Color:           e.color,
			PathMode:        req.pathMode,
			Max:             e.maxLints,
			ShowSuggestions: e.cfg.Output.ShowSuggestions,
			ShowPreview:     req.preview,
			Summary:         !e.quiet,
		})
	case report.FormatShort:
		err = report.Short(out, run, req.pathMode, e.maxLints)
	case report.FormatJSON:
		err = report.JSON(out, run, report.JSONOpts{
			IncludePositions: true,
			PathMode:         req.pathMode,
			Max:              e.maxLints,
			IncludePreviews:  req.preview,
		})
	case report.FormatSarif:
		err = report.Sarif(out, run, report.SarifRunMeta{
			ToolName:       "quill",
			ToolVersion:    version.Version,
			InvocationArgs: append([]string{"lint"}, args...),
			Rules:          req.opts.Group.Descriptions(),
		})
	}
	if err != nil {
		return err
	}
	if e.timings {
		printTimings(os.Stderr, run, "lint")
	}
	return nil
}
