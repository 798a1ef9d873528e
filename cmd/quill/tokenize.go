package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"quill/internal/driver"
	"quill/internal/parsers"
	"quill/internal/report"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] <file|->",
	Short: "Show the tokens quill sees in a file",
	Long:  `Tokenize runs a parser over a file and prints the resulting tokens with their dictionary metadata`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	tokenizeCmd.Flags().String("parser", "", "force a parser (plain|markdown|typst)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	// Получаем флаги
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	parserName, err := cmd.Flags().GetString("parser")
	if err != nil {
		return fmt.Errorf("failed to get parser flag: %w", err)
	}

	e, err := loadEnv(cmd, filePath)
	if err != nil {
		return err
	}
	d, err := e.dictionary()
	if err != nil {
		return err
	}

	var result *driver.TokenizeResult
	if filePath == "-" {
		content, readErr := io.ReadAll(cmd.InOrStdin())
		if readErr != nil {
			return fmt.Errorf("read stdin: %w", readErr)
		}
		result, err = driver.TokenizeText("<stdin>", content, parsers.Name(parserName), d)
	} else {
		result, err = driver.Tokenize(filePath, parsers.Name(parserName), d)
	}
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}
	e.log.WithField("parser", result.Parser).Debug("tokenized")

	// Выводим токены в выбранном формате
	switch format {
	case "pretty":
		return report.TokensPretty(cmd.OutOrStdout(), result.Document, result.File)
	case "json":
		return report.TokensJSON(cmd.OutOrStdout(), result.Document)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
