package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/truthpuzzle/internal/domain"
	"svw.info/truthpuzzle/internal/testutil"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	genSeed, genJSON, checkGuess = 0, false, ""
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := rootCmd.Execute()
	return buf.String(), err
}

func writePuzzle(t *testing.T, p *domain.Puzzle) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "puzzle.json")
	data, err := json.Marshal(p)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestGenerateCommand(t *testing.T) {
	out, err := run(t, "generate", "--seed", "9")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "seed 9\n1. "), out)

	out, err = run(t, "generate", "--seed", "9", "--json")
	require.NoError(t, err)
	var p domain.Puzzle
	require.NoError(t, json.Unmarshal([]byte(out), &p))
	assert.Equal(t, int64(9), p.Seed)
}

func TestSolveCommand(t *testing.T) {
	out, err := run(t, "solve", writePuzzle(t, testutil.UniquePuzzle()))
	require.NoError(t, err)
	assert.Contains(t, out, "1 solution(s)")
	assert.Contains(t, out, "\nFFF\n")
}

func TestCheckCommand(t *testing.T) {
	path := writePuzzle(t, testutil.UniquePuzzle())

	out, err := run(t, "check", path, "--guess", "FFF")
	require.NoError(t, err)
	assert.Contains(t, out, "guess FFF passes")

	out, err = run(t, "check", path, "--guess", "TTT")
	require.Error(t, err)
	assert.Contains(t, out, "[!!] 2. Both 1st and 3rd sentences have the opposite truth values")
}
