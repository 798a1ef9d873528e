package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"quill/internal/driver"
	"quill/internal/fix"
	"quill/internal/parsers"
)

var fixCmd = &cobra.Command{
	Use:   "fix [flags] <file|directory|->...",
	Short: "Apply suggested corrections to prose files",
	Long: `Lint the given files and apply the first suggestion of each lint.
Overlapping edits are skipped. With "-" the corrected text is written to stdout.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFix,
}

func init() {
	fixCmd.Flags().Bool("all", false, "apply every non-overlapping fix (default)")
	fixCmd.Flags().Bool("once", false, "apply only the first fix per file")
	fixCmd.Flags().String("rule", "", "apply only fixes produced by this rule")
	fixCmd.Flags().Bool("dry-run", false, "report fixes without writing files")
	fixCmd.Flags().String("parser", "", "force a parser (plain|markdown|typst)")
	fixCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
}

func runFix(cmd *cobra.Command, args []string) error {
	applyAll, err := cmd.Flags().GetBool("all")
	if err != nil {
		return err
	}
	applyOnce, err := cmd.Flags().GetBool("once")
	if err != nil {
		return err
	}
	rule, err := cmd.Flags().GetString("rule")
	if err != nil {
		return err
	}
	dryRun, err := cmd.Flags().GetBool("dry-run")
	if err != nil {
		return err
	}
	parserName, err := cmd.Flags().GetString("parser")
	if err != nil {
		return err
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}

	if rule != "" && (applyAll || applyOnce) {
		return fmt.Errorf("--rule cannot be combined with --all or --once")
	}
	if applyAll && applyOnce {
		return fmt.Errorf("--all and --once are mutually exclusive")
	}
	mode := fix.ApplyModeAll
	switch {
	case rule != "":
		mode = fix.ApplyModeRule
	case applyOnce:
		mode = fix.ApplyModeOnce
	}
	applyOpts := fix.ApplyOptions{Mode: mode, Rule: rule}

	e, err := loadEnv(cmd, args[0])
	if err != nil {
		return err
	}
	// исправления меняют файлы, кэш здесь не нужен
	opts, err := e.driverOptions(jobs, false)
	if err != nil {
		return err
	}
	opts.Parser = parsers.Name(parserName)
	if rule != "" && !opts.Group.Has(rule) {
		return fmt.Errorf("fix: unknown rule %q", rule)
	}

	if len(args) == 1 && args[0] == "-" {
		return fixStdin(cmd, opts, applyOpts)
	}

	run, err := driver.LintPaths(cmd.Context(), args, opts)
	if err != nil {
		return fmt.Errorf("fix: lint failed: %w", err)
	}
	report := func(res *fix.ApplyResult) {
		if e.quiet {
			return
		}
		printFixResult(cmd.OutOrStdout(), res, dryRun)
	}

	batches := make([]fix.Batch, 0, len(run.Results))
	for _, r := range run.Results {
		if r.Err == nil {
			batches = append(batches, fix.Batch{File: r.FileID, Lints: r.Lints})
		}
	}
	if dryRun {
		res := dryRunFixes(run, batches, applyOpts)
		report(res)
		if len(res.Applied) == 0 {
			return nil
		}
		return errLintsFound
	}

	res, applyErr := fix.Apply(run.FileSet, batches, applyOpts)
	if res != nil {
		report(res)
	}
	if errors.Is(applyErr, fix.ErrNoFixes) {
		if !e.quiet {
			fmt.Fprintln(cmd.OutOrStdout(), "no fixes to apply")
		}
		return nil
	}
	return applyErr
}

func fixStdin(cmd *cobra.Command, opts driver.Options, applyOpts fix.ApplyOptions) error {
	content, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	run, err := driver.LintText(cmd.Context(), "<stdin>", content, opts)
	if err != nil {
		return err
	}
	file := run.FileSet.Get(run.Results[0].FileID)
	res, err := fix.ApplyText(file.Text, run.Results[0].Lints, applyOpts)
	if errors.Is(err, fix.ErrNoFixes) {
		_, err = cmd.OutOrStdout().Write(file.Content)
		return err
	}
	if err != nil {
		return err
	}
	_, err = io.WriteString(cmd.OutOrStdout(), string(res.Text))
	return err
}

// dryRunFixes runs the pure text pipeline per file so nothing is written.
func dryRunFixes(run *driver.Run, batches []fix.Batch, opts fix.ApplyOptions) *fix.ApplyResult {
	out := &fix.ApplyResult{}
	for _, b := range batches {
		file := run.FileSet.Get(b.File)
		res, err := fix.ApplyText(file.Text, b.Lints, opts)
		if err != nil {
			continue
		}
		for i := range res.Applied {
			res.Applied[i].Path = file.Path
		}
		out.Applied = append(out.Applied, res.Applied...)
		out.Skipped = append(out.Skipped, res.Skipped...)
		out.FileChanges = append(out.FileChanges, fix.FileChange{Path: file.Path, EditCount: len(res.Applied)})
	}
	return out
}

func printFixResult(out io.Writer, res *fix.ApplyResult, dryRun bool) {
	verb := "applied"
	if dryRun {
		verb = "would apply"
	}
	for _, a := range res.Applied {
		fmt.Fprintf(out, "%s %s: %s (%s)\n", verb, a.Path, a.Title, a.Rule)
	}
	for _, s := range res.Skipped {
		fmt.Fprintf(out, "skipped %s at %s: %s\n", s.Rule, s.Span, s.Reason)
	}
	for _, fc := range res.FileChanges {
		if fc.EditCount > 0 {
			fmt.Fprintf(out, "%s: %s\n", fc.Path, plural(fc.EditCount, "edit"))
		}
	}
	if !dryRun {
		return
	}
	fmt.Fprintln(os.Stderr, "dry run: no files were written")
}
