package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"quill/internal/parsers"
	"quill/internal/titlecase"
)

var titlecaseCmd = &cobra.Command{
	Use:   "titlecase [text...]",
	Short: "Convert text to title case",
	Long: `Title-case the arguments joined by spaces, or each line of stdin when no
arguments are given. Articles, short conjunctions and prepositions stay lowercase
except at the edges.`,
	RunE: runTitlecase,
}

func runTitlecase(cmd *cobra.Command, args []string) error {
	e, err := loadEnv(cmd, ".")
	if err != nil {
		return err
	}
	d, err := e.dictionary()
	if err != nil {
		return err
	}
	p := parsers.PlainEnglish{}
	out := cmd.OutOrStdout()

	if len(args) > 0 {
		_, err := fmt.Fprintln(out, titlecase.MakeString(strings.Join(args, " "), p, d))
		return err
	}
	sc := bufio.NewScanner(cmd.InOrStdin())
	for sc.Scan() {
		if _, err := fmt.Fprintln(out, titlecase.MakeString(sc.Text(), p, d)); err != nil {
			return err
		}
	}
	return sc.Err()
}
