package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"svw.info/truthpuzzle/internal/domain"
	"svw.info/truthpuzzle/internal/render"
)

var solveCmd = &cobra.Command{
	Use:   "solve <puzzle.json|->",
	Short: "List every assignment under which all sentences hold",
	Args:  cobra.ExactArgs(1),
	RunE:  runSolve,
}

var checkGuess string

var checkCmd = &cobra.Command{
	Use:   "check <puzzle.json|->",
	Short: "Check a guess such as TFT against a puzzle",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkGuess, "guess", "", "one T or F per sentence")
	_ = checkCmd.MarkFlagRequired("guess")
}

func readPuzzle(cmd *cobra.Command, path string) (*domain.Puzzle, error) {
	var r io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	var p domain.Puzzle
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return nil, fmt.Errorf("decode puzzle: %w", err)
	}
	return &p, nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	p, err := readPuzzle(cmd, args[0])
	if err != nil {
		return err
	}
	uc, err := newService()
	if err != nil {
		return err
	}
	sols, st, err := uc.Solve(cmd.Context(), p)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, line := range render.Lines(p) {
		fmt.Fprintln(out, line)
	}
	fmt.Fprintf(out, "%d solution(s), %d nodes\n", len(sols), st.Nodes)
	for _, g := range sols {
		fmt.Fprintln(out, g)
	}
	return nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	p, err := readPuzzle(cmd, args[0])
	if err != nil {
		return err
	}
	g, err := domain.ParseGuess(checkGuess)
	if err != nil {
		return err
	}
	uc, err := newService()
	if err != nil {
		return err
	}
	ev, err := uc.Evaluate(cmd.Context(), p, g)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for i, st := range p.Statements {
		mark := "ok"
		if !ev.Consistent[i] {
			mark = "!!"
		}
		fmt.Fprintf(out, "[%s] %s\n", mark, render.Statement(st))
	}
	if !ev.Pass {
		return fmt.Errorf("guess %s fails at %v", g, ev.Inconsistent())
	}
	fmt.Fprintf(out, "guess %s passes\n", g)
	return nil
}
