package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"quill/internal/version"
)

var rootCmd = &cobra.Command{
	Use:           "quill",
	Short:         "Rule-based English prose linter",
	Long:          `quill checks prose in plain text, Markdown and Typst files for phrase, capitalization and word-choice mistakes`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Устанавливаем версию для автоматического флага --version
	rootCmd.Version = version.Version

	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(fixCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(titlecaseCmd)
	rootCmd.AddCommand(wordsCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "", "colorize output (auto|on|off); defaults to [output] color")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().Int("max-lints", -1, "maximum number of lints to show (0 = unlimited); defaults to [output] max_lints")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level (trace|debug|info|warn|error)")
	rootCmd.PersistentFlags().String("config", "", "path to a .quill.toml or .quill.yaml file")
}

// main executes the root command. Exit status is 1 when lints were
// reported and 2 on failure.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	// PersistentPostRunE не вызывается, если команда вернула ошибку
	if perr := stopProfiling(nil, nil); perr != nil && err == nil {
		err = perr
	}
	os.Exit(exitCode(err))
}

// errLintsFound signals a successful run that reported lints.
var errLintsFound = errors.New("lints found")

func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errLintsFound):
		return 1
	default:
		fmt.Fprintf(os.Stderr, "quill: %v\n", err)
		return 2
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
