package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-solver/internal/config"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/store"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

func testConfig() config.Config {
	return config.Config{
		LegalFile:     "./data/legal_wotd.txt",
		GuessableFile: "./data/guessable.txt",
		InWordWeight:  2,
		DailySalt:     "test_salt",
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(testConfig())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSolvePrintsProgress(t *testing.T) {
	out, err := execute(t, "--builtin", "--seed", "7", "alone")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.GreaterOrEqual(t, len(lines), 3)

	guesses := lines[:len(lines)-2]
	seen := map[string]bool{}
	for _, l := range guesses {
		require.True(t, strings.HasPrefix(l, "guess: "), "unexpected line %q", l)
		w := strings.TrimPrefix(l, "guess: ")
		require.False(t, seen[w], "repeated guess %q", w)
		seen[w] = true
	}
	assert.Equal(t, "guess: alone", guesses[len(guesses)-1])
	assert.Equal(t, "alone is word!", lines[len(lines)-2])
	assert.Equal(t, "Took "+strconv.Itoa(len(guesses))+" guesses", lines[len(lines)-1])
}

func TestSolveVerboseShowsMarks(t *testing.T) {
	out, err := execute(t, "--builtin", "--seed", "7", "-v", "alone")
	require.NoError(t, err)
	assert.Contains(t, out, "guess: alone GGGGG\n")
}

func TestSolveFromFiles(t *testing.T) {
	dir := t.TempDir()
	legal := filepath.Join(dir, "legal.txt")
	guessable := filepath.Join(dir, "guessable.txt")
	require.NoError(t, os.WriteFile(legal, []byte("alone\ncrane\n"), 0o644))
	require.NoError(t, os.WriteFile(guessable, []byte("slate\n"), 0o644))

	out, err := execute(t, "--legal", legal, "--guessable", guessable, "--seed", "1", "crane")
	require.NoError(t, err)
	assert.Contains(t, out, "crane is word!\n")
}

func TestSolveErrors(t *testing.T) {
	_, err := execute(t, "--builtin")
	assert.ErrorIs(t, err, ErrMissingTarget)

	_, err = execute(t, "--builtin", "xylem")
	assert.ErrorIs(t, err, solver.ErrIllegalTarget)

	_, err = execute(t, "--legal", filepath.Join(t.TempDir(), "missing.txt"), "alone")
	assert.ErrorIs(t, err, words.ErrUnreadable)
}

func TestSolveMalformedLine(t *testing.T) {
	dir := t.TempDir()
	legal := filepath.Join(dir, "legal.txt")
	guessable := filepath.Join(dir, "guessable.txt")
	require.NoError(t, os.WriteFile(legal, []byte("alone\n"), 0o644))
	require.NoError(t, os.WriteFile(guessable, []byte("sl\xffte\ncrane\n"), 0o644))

	_, err := execute(t, "--legal", legal, "--guessable", guessable, "alone")
	var pe *words.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 1, pe.Line)

	out, err := execute(t, "--legal", legal, "--guessable", guessable, "--lenient", "alone")
	require.NoError(t, err)
	assert.Contains(t, out, "alone is word!\n")
}

func TestBench(t *testing.T) {
	out, err := execute(t, "bench", "--builtin", "--seed", "3", "--limit", "5", "--workers", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "sessions: 5\n")
	assert.Contains(t, out, "solved: 5\n")
	assert.Contains(t, out, "failed: 0\n")
}

func TestBenchDuplicateTargets(t *testing.T) {
	dir := t.TempDir()
	legal := filepath.Join(dir, "legal.txt")
	guessable := filepath.Join(dir, "guessable.txt")
	require.NoError(t, os.WriteFile(legal, []byte("alone\nalone\ncrane\n"), 0o644))
	require.NoError(t, os.WriteFile(guessable, []byte("slate\n"), 0o644))

	out, err := execute(t, "bench", "--legal", legal, "--guessable", guessable, "--seed", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "sessions: 2\n")
	assert.Contains(t, out, "solved: 2\n")
	assert.Contains(t, out, "failed: 0\n")
}

func TestBenchShow(t *testing.T) {
	out, err := execute(t, "bench", "--builtin", "--seed", "3", "--limit", "5", "--show", "alone")
	require.NoError(t, err)

	i := strings.Index(out, "alone: ")
	require.GreaterOrEqual(t, i, 0, "no record line in %q", out)
	line := strings.TrimSpace(strings.SplitN(out[i:], "\n", 2)[0])
	assert.True(t, strings.HasSuffix(line, " alone"), "record %q does not end with the target", line)

	_, err = execute(t, "bench", "--builtin", "--seed", "3", "--limit", "5", "--show", "zebra")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestInvalidWeightRejected(t *testing.T) {
	cfg := testConfig()
	cfg.InWordWeight = 7
	cmd := newRootCmd(cfg)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--builtin", "alone"})
	assert.Error(t, cmd.Execute())
}

func TestDaily(t *testing.T) {
	out, err := execute(t, "daily", "--builtin", "--seed", "3", "--date", "2024-01-02")
	require.NoError(t, err)
	assert.Contains(t, out, " is word!\n")

	_, err = execute(t, "daily", "--builtin", "--date", "yesterday")
	assert.Error(t, err)
}
