package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var rulesCmd = &cobra.Command{
	Use:   "rules [flags]",
	Short: "List lint rules and whether they are enabled",
	Args:  cobra.NoArgs,
	RunE:  runRules,
}

func init() {
	rulesCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	rulesCmd.Flags().Bool("enabled", false, "list only enabled rules")
}

type ruleInfo struct {
	Name        string `json:"name"`
	Enabled     bool   `json:"enabled"`
	Description string `json:"description"`
}

func runRules(cmd *cobra.Command, _ []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	enabledOnly, err := cmd.Flags().GetBool("enabled")
	if err != nil {
		return fmt.Errorf("failed to get enabled flag: %w", err)
	}

	e, err := loadEnv(cmd, ".")
	if err != nil {
		return err
	}
	d, err := e.dictionary()
	if err != nil {
		return err
	}
	g, err := e.lintGroup(d)
	if err != nil {
		return err
	}

	descriptions := g.Descriptions()
	var rules []ruleInfo
	for _, name := range g.Names() {
		on := g.IsEnabled(name)
		if enabledOnly && !on {
			continue
		}
		rules = append(rules, ruleInfo{Name: name, Enabled: on, Description: descriptions[name]})
	}

	out := cmd.OutOrStdout()
	switch format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(rules)
	case "pretty":
		on := color.New(color.FgGreen).Sprint("on")
		off := color.New(color.Faint).Sprint("off")
		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		for _, r := range rules {
			state := off
			if r.Enabled {
				state = on
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Name, state, r.Description)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		if !e.quiet {
			fmt.Fprintf(out, "\n%d rules\n", len(rules))
		}
		return nil
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
