package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"lexspan"
	"lexspan/internal/dump"
	"lexspan/rulelex"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file",
	Short: "Tokenize a file with a TOML grammar",
	Long:  `Tokenize splits a file (or stdin, with "-") into annotated tokens using the rules from a grammar file`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("grammar", "", "path to the grammar .toml")
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json|msgpack)")
	_ = tokenizeCmd.MarkFlagRequired("grammar")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	grammarPath, err := cmd.Flags().GetString("grammar")
	if err != nil {
		return fmt.Errorf("failed to get grammar flag: %w", err)
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	grammar, err := rulelex.LoadFile(grammarPath)
	if err != nil {
		return fmt.Errorf("failed to load grammar: %w", err)
	}

	src, err := readSource(args[0])
	if err != nil {
		return err
	}

	tokens := lexspan.NewSpanned[string, []byte](grammar, src).Collect()

	switch format {
	case "pretty":
		colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
		useColor := colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stdout))
		return dump.Pretty(os.Stdout, src, tokens, useColor)
	case "json":
		return dump.JSON(os.Stdout, src, tokens)
	case "msgpack":
		return dump.Msgpack(os.Stdout, src, tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func readSource(path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}
	// #nosec G304 -- path is provided by the caller
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}
