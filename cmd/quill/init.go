package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"quill/internal/config"
	"quill/internal/linting/curated"
)

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a default .quill.toml",
	Long: `Write a .quill.toml listing every rule with its default setting into
[path] (the current directory when omitted). The directory is created if needed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	initCmd.Flags().Bool("yaml", false, "write .quill.yaml instead of .quill.toml")
	initCmd.Flags().Bool("force", false, "overwrite an existing config file")
}

// runInit writes the default config, refusing to overwrite an existing
// file unless --force is set.
func runInit(cmd *cobra.Command, args []string) error {
	target := "."
	if len(args) == 1 {
		target = args[0]
	}
	useYAML, err := cmd.Flags().GetBool("yaml")
	if err != nil {
		return err
	}
	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	// Ensure directory exists
	if st, err := os.Stat(target); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}
		if err = os.MkdirAll(target, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %q: %w", target, err)
		}
	} else if !st.IsDir() {
		return fmt.Errorf("%q is not a directory", target)
	}

	name := ".quill.toml"
	if useYAML {
		name = ".quill.yaml"
	}
	path := filepath.Join(target, name)
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config already exists: %s (use --force to overwrite)", path)
	}

	cfg := config.Default()
	cfg.Lint.Rules = curated.LintGroup(nil).Config()
	if err := config.Write(path, cfg); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s with %d rules\n", path, len(cfg.Lint.Rules))
	return nil
}
