package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/roster/internal/viz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const merged = "[Alice, 1], [Bob, 2], [Carl, 3], [Alice, 1], [Bob, 2], [Carl, 3]"

func run(t *testing.T, input string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(strings.NewReader(input), &out, &errOut)
	cmd.SetArgs(append([]string{"--plain", "--no-prompts"}, args...))
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRootExercise(t *testing.T) {
	out, _, err := run(t, "3\nAlice 1\nBob 2\nCarl 3\n")
	require.NoError(t, err)
	assert.Equal(t,
		"class 2 (copy of class 1): [Alice, 1], [Bob, 2], [Carl, 3]\n"+
			"class 3 (class 1 + class 2): "+merged+"\n",
		out)
}

func TestRootBadInputStillSucceeds(t *testing.T) {
	out, errOut, err := run(t, "2\nAlice x\n")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "standard must be an integer")
}

func TestRootOversizedCountStillSucceeds(t *testing.T) {
	out, errOut, err := run(t, "99999999999999 Ann 1")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "student count must be an integer")

	_, errOut, err = run(t, "99999999999999", "stats")
	require.NoError(t, err)
	assert.Contains(t, errOut, "student count must be an integer")
}

func TestUnknownThemeFallsBack(t *testing.T) {
	out, _, err := run(t, "", "preset", "single", "--theme", "neon")
	require.NoError(t, err)
	assert.Contains(t, out, "[Dana, 5]")
	assert.Equal(t, "chalkboard", viz.CurrentTheme.Name)
}

func TestThemeFlagHelpListsThemes(t *testing.T) {
	cmd := newRootCmd(strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})
	usage := cmd.PersistentFlags().Lookup("theme").Usage
	for _, name := range viz.ThemeNames() {
		assert.Contains(t, usage, name)
	}
}

func TestPreset(t *testing.T) {
	out, _, err := run(t, "", "preset", "abc", "--sep", " | ")
	require.NoError(t, err)
	assert.Contains(t, out, "class 1: [Alice, 1] | [Bob, 2] | [Carl, 3]\n")
	assert.Contains(t, out, "class 3 (class 1 + class 2): "+strings.ReplaceAll(merged, ", [", " | [")+"\n")

	_, _, err = run(t, "", "preset", "nope")
	assert.ErrorContains(t, err, "unknown preset")
}

func TestPresets(t *testing.T) {
	out, _, err := run(t, "", "presets")
	require.NoError(t, err)
	for _, name := range []string{"abc", "empty", "mixed", "single"} {
		assert.Contains(t, out, name)
	}
}

func TestStats(t *testing.T) {
	out, _, err := run(t, "3 Alice 1 Bob 2 Carl 3", "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "count 3")
	assert.Contains(t, out, "mean  2.00")
	assert.Contains(t, out, "standard by position")

	out, _, err = run(t, "0", "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "no students")
}

func TestArray(t *testing.T) {
	out, errOut, err := run(t, "", "array")
	require.NoError(t, err)
	assert.Contains(t, out, "first element of arr1: 1")
	assert.Contains(t, errOut, "index out of range")
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.yaml")
	yaml := "separator: \"; \"\nlabels:\n  copy: twin\n  merged: both\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))

	out, _, err := run(t, "2 Ann 1 Ben 2", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, "twin: [Ann, 1]; [Ben, 2]\nboth: [Ann, 1]; [Ben, 2]; [Ann, 1]; [Ben, 2]\n", out)

	_, _, err = run(t, "", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
