package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"lexspan/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "lexspan",
	Short: "Token stream inspector",
	Long:  `lexspan tokenizes input with a TOML grammar and dumps the annotated token stream`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
