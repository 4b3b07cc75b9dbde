package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HexExecute/sparse-voxel-octree/util/log"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const (
	prompt             = "svo # "
	continuationPrompt = "... # "
	replHelp           = `Statements end with a semicolon:
  create <depth>;
  get <x> <y> <z>;
  insert <x> <y> <z> depth <d> (voxel <index> | empty | fill <height>);
  grow <depth>;
  print; stats; metrics;
Type "exit" or press ctrl-d to quit.`
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive octree shell",
	Run: func(cmd *cobra.Command, args []string) {
		checkErr(repl(sessionContext("repl")))
	},
}

func repl(ctx context.Context) error {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     filepath.Join(os.TempDir(), "svo-history.tmp"),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("failed to start readline: %w", err)
	}
	defer l.Close()
	l.CaptureExitSignal()

	e := newExecutor(l.Stdout())
	color.New(color.Bold).Fprintln(l.Stdout(), `Type "help" for help.`)

	lines := []string{}
	for {
		line, err := l.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				lines = lines[:0]
				l.SetPrompt(prompt)
				continue
			}
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		line = strings.TrimSpace(line)
		switch line {
		case "":
			continue
		case "help":
			fmt.Fprintln(l.Stdout(), replHelp)
			continue
		case "exit", "quit":
			return nil
		}
		lines = append(lines, line)
		if !strings.HasSuffix(line, ";") {
			l.SetPrompt(continuationPrompt)
			continue
		}
		script := strings.Join(lines, " ")
		lines = lines[:0]
		l.SetPrompt(prompt)
		if err := l.SaveHistory(script); err != nil {
			log.Warnf(ctx, "failed to save history: %s", err)
		}
		if err := e.Run(ctx, script); err != nil {
			printError(err.Error())
		}
	}
}

func init() {
	rootCmd.AddCommand(replCmd)
}
