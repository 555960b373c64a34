package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptudirm.com/x/rps/pkg/guide"
)

// run executes the root command with the given arguments, using a config
// file inside a temporary directory so the user's own is never read.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	root := Root()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))

	conf := filepath.Join(t.TempDir(), "config.yaml")
	root.SetArgs(append([]string{"--config", conf}, args...))

	err := root.Execute()
	return out.String(), err
}

func writeGuide(t *testing.T, data string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "challenge.in")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestScore(t *testing.T) {
	path := writeGuide(t, "A Y\nB X\nC Z\n")

	out, err := run(t, "", "score", path)
	require.NoError(t, err)
	assert.Equal(t, "15 12\n", out)

	// the root command scores as well
	out, err = run(t, "", path)
	require.NoError(t, err)
	assert.Equal(t, "15 12\n", out)
}

func TestScoreYAML(t *testing.T) {
	path := writeGuide(t, "A Y\nB X\nC Z\n")

	out, err := run(t, "", "score", "--format", "yaml", path)
	require.NoError(t, err)
	assert.Equal(t, "by-move: 15\nby-outcome: 12\n", out)
}

func TestScoreStdin(t *testing.T) {
	out, err := run(t, "A Y\n", "score", "-")
	require.NoError(t, err)
	assert.Equal(t, "8 4\n", out)

	out, err = run(t, "", "score", "-")
	require.NoError(t, err)
	assert.Equal(t, "0 0\n", out)
}

func TestScoreMissingGuide(t *testing.T) {
	out, err := run(t, "", "score", filepath.Join(t.TempDir(), "missing.in"))
	assert.ErrorIs(t, err, guide.ErrUnavailable)
	assert.Empty(t, out)
}

func TestScoreMalformedGuide(t *testing.T) {
	path := writeGuide(t, "A Y\nQ\n")

	out, err := run(t, "", "score", path)
	assert.ErrorIs(t, err, guide.ErrMalformedRound)
	assert.Empty(t, out)
}

func TestScoreBadFormat(t *testing.T) {
	path := writeGuide(t, "A Y\n")

	_, err := run(t, "", "score", "--format", "xml", path)
	assert.ErrorContains(t, err, `unknown format "xml"`)
}

func TestScoreConfiguredInput(t *testing.T) {
	path := writeGuide(t, "C Z\n")

	conf := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(conf, []byte("input: "+path+"\nformat: yaml\n"), 0o644))

	root := Root()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"--config", conf, "score"})

	require.NoError(t, root.Execute())
	assert.Equal(t, "by-move: 6\nby-outcome: 7\n", out.String())
}

func TestExplain(t *testing.T) {
	path := writeGuide(t, "A Y\nB X\nC Z\n")

	out, err := run(t, "", "explain", path)
	require.NoError(t, err)
	assert.Contains(t, out, "A Y")
	assert.Contains(t, out, "C Z")
	assert.Contains(t, out, "Total")
	assert.Contains(t, out, "15")
	assert.Contains(t, out, "12")
}

func TestConfig(t *testing.T) {
	out, err := run(t, "", "config")
	require.NoError(t, err)
	assert.Contains(t, out, "input: challenge.in")
	assert.Contains(t, out, "format: text")
}

func TestCompletion(t *testing.T) {
	out, err := run(t, "", "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "rps")

	_, err = run(t, "", "completion", "tcsh")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := run(t, "", "--version")
	require.NoError(t, err)
	assert.Equal(t, "v0.1.0\n", out)
}
