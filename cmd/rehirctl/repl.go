package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/regexkit/rehir/pkg/translate"
)

func init() {
	rootCmd.AddCommand(newReplCmd())
}

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Translate trees interactively",
		Long: `The repl command reads one tree per line and prints its translation. With a
terminal on stdin it offers line editing and history; with piped input it
processes lines in order, which makes it usable from scripts.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if term.IsTerminal(int(os.Stdin.Fd())) {
				return runInteractive()
			}
			return runPiped(os.Stdin)
		},
	}
}

func runInteractive() error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	historyPath := historyFile()
	if historyPath != "" {
		if f, err := os.Open(historyPath); err == nil {
			line.ReadHistory(f)
			f.Close()
		}
	}

	t := newTranslator()
	for {
		input, err := line.Prompt("rehir> ")
		if err == liner.ErrPromptAborted {
			fmt.Fprintln(os.Stderr)
			continue
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)
		if err := runTranslate(t, input, os.Stdout); err != nil {
			// Diagnostics were already printed for translation errors.
			var terr *translate.Error
			if !errors.As(err, &terr) {
				fmt.Fprintln(os.Stderr, err)
			}
		}
	}

	if historyPath != "" {
		if f, err := os.Create(historyPath); err == nil {
			line.WriteHistory(f)
			f.Close()
		}
	}
	return nil
}

func runPiped(r io.Reader) error {
	t := newTranslator()
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		input := strings.TrimSpace(sc.Text())
		if input == "" {
			continue
		}
		if err := runTranslate(t, input, os.Stdout); err != nil {
			return err
		}
	}
	return sc.Err()
}

func historyFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".rehirctl_history")
}
