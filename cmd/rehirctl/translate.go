package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/regexkit/rehir/internal/sexpr"
	"github.com/regexkit/rehir/pkg/hir"
	"github.com/regexkit/rehir/pkg/translate"
)

var (
	translateShowAst   bool
	translateShowFacts bool
)

func init() {
	cmd := newTranslateCmd()
	cmd.Flags().BoolVar(&translateShowAst, "ast", false, "Also print the parsed tree")
	cmd.Flags().BoolVar(&translateShowFacts, "facts", false, "Also print analysis facts of the result")
	rootCmd.AddCommand(cmd)
}

func newTranslateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "translate <tree>",
		Short: "Translate one tree and print the result",
		Long: `The translate command reads a single s-expression tree, translates it and
prints the resulting expression.

Example:
  rehirctl translate '(cat "fo" (rep + 'o'))'
  rehirctl translate --facts '(cat bot "go")'
  rehirctl translate - < tree.sexpr`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := args[0]
			if src == "-" {
				data, err := io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("failed to read stdin: %w", err)
				}
				src = string(data)
			}
			return runTranslate(newTranslator(), src, os.Stdout)
		},
	}
}

func runTranslate(t *translate.Translator, src string, out io.Writer) error {
	src = strings.TrimSpace(src)
	tree, err := sexpr.Read(src)
	if err != nil {
		return fmt.Errorf("failed to parse tree: %w", err)
	}
	if translateShowAst {
		fmt.Fprintf(out, "ast:  %s\n", sexpr.Write(tree))
	}

	log.Debug("translating", "tree", src)
	expr, err := t.Translate(src, tree)
	if err != nil {
		var terr *translate.Error
		if errors.As(err, &terr) {
			fmt.Fprintln(os.Stderr, terr.Diagnostic())
		}
		return err
	}

	fmt.Fprintf(out, "%s\n", sexpr.WriteHir(expr))
	if translateShowFacts {
		printFacts(out, expr)
	}
	return nil
}

func printFacts(out io.Writer, expr *hir.Hir) {
	facts := []struct {
		name string
		set  bool
	}{
		{"always-utf8", expr.IsAlwaysUTF8()},
		{"all-assertions", expr.IsAllAssertions()},
		{"anchored-start", expr.IsAnchoredStart()},
		{"anchored-end", expr.IsAnchoredEnd()},
		{"line-anchored-start", expr.IsLineAnchoredStart()},
		{"line-anchored-end", expr.IsLineAnchoredEnd()},
		{"any-anchored-start", expr.IsAnyAnchoredStart()},
		{"any-anchored-end", expr.IsAnyAnchoredEnd()},
		{"match-empty", expr.IsMatchEmpty()},
		{"literal", expr.IsLiteral()},
		{"alternation-literal", expr.IsAlternationLiteral()},
	}
	var set []string
	for _, f := range facts {
		if f.set {
			set = append(set, f.name)
		}
	}
	fmt.Fprintf(out, "facts: %s\n", strings.Join(set, " "))
}
