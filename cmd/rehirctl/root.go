package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/regexkit/rehir/pkg/translate"
)

var (
	// Global flags
	verbose bool

	// Translator defaults, overridable from inside a tree with (set "...")
	// or (flags "..." x).
	noUnicode        bool
	allowInvalidUTF8 bool
	caseInsensitive  bool
	multiLine        bool
	dotMatchesNL     bool
	swapGreed        bool
)

var rootCmd = &cobra.Command{
	Use:   "rehirctl",
	Short: "Translate regular expression trees to their intermediate representation",
	Long: `rehirctl reads regular expression syntax trees written as s-expressions,
translates them to the canonical intermediate representation, and prints the
result. It exists to exercise and debug the translator without a pattern
parser in front of it.`,
	Version: "0.1.0",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initLogger(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&noUnicode, "no-unicode", false, "Disable Unicode mode by default")
	rootCmd.PersistentFlags().
		BoolVar(&allowInvalidUTF8, "allow-invalid-utf8", false, "Allow expressions that can match invalid UTF-8")
	rootCmd.PersistentFlags().BoolVarP(&caseInsensitive, "case-insensitive", "i", false, "Default the i flag on")
	rootCmd.PersistentFlags().BoolVarP(&multiLine, "multi-line", "m", false, "Default the m flag on")
	rootCmd.PersistentFlags().BoolVarP(&dotMatchesNL, "dot-nl", "s", false, "Default the s flag on")
	rootCmd.PersistentFlags().BoolVarP(&swapGreed, "swap-greed", "U", false, "Default the U flag on")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newTranslator builds a translator from the global flags.
func newTranslator() *translate.Translator {
	return translate.NewBuilder().
		Unicode(!noUnicode).
		AllowInvalidUTF8(allowInvalidUTF8).
		CaseInsensitive(caseInsensitive).
		MultiLine(multiLine).
		DotMatchesNewLine(dotMatchesNL).
		SwapGreed(swapGreed).
		Build()
}
