package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var wordsCmd = &cobra.Command{
	Use:   "words <word>...",
	Short: "Look up words in the dictionary",
	Long:  `Print the dictionary metadata quill attaches to each word, including words from configured word lists`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runWords,
}

func init() {
	wordsCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

type wordInfo struct {
	Word          string   `json:"word"`
	Known         bool     `json:"known"`
	PartsOfSpeech []string `json:"parts_of_speech,omitempty"`
	Metadata      string   `json:"metadata,omitempty"`
}

func runWords(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	e, err := loadEnv(cmd, ".")
	if err != nil {
		return err
	}
	d, err := e.dictionary()
	if err != nil {
		return err
	}

	infos := make([]wordInfo, 0, len(args))
	unknown := 0
	for _, w := range args {
		info := wordInfo{Word: w, Known: d.Contains(w)}
		if info.Known {
			meta := d.Metadata(w)
			for _, pos := range meta.PartsOfSpeech() {
				info.PartsOfSpeech = append(info.PartsOfSpeech, pos.String())
			}
			info.Metadata = meta.String()
		} else {
			unknown++
		}
		infos = append(infos, info)
	}

	out := cmd.OutOrStdout()
	switch format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(infos); err != nil {
			return err
		}
	case "pretty":
		for _, info := range infos {
			if !info.Known {
				fmt.Fprintf(out, "%s: unknown\n", info.Word)
				continue
			}
			fmt.Fprintf(out, "%s: %s\n", info.Word, info.Metadata)
		}
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	if unknown > 0 {
		return fmt.Errorf("%d unknown word(s)", unknown)
	}
	return nil
}
