// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/rref/matrix"
	"github.com/katalvlaran/rref/preset"
	"github.com/katalvlaran/rref/rational"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes a fresh command tree and returns stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), err
}

func TestSolve_Text(t *testing.T) {
	out, err := run(t, "", "solve", "0 0 2", "0 3 6", "1 4 7")
	require.NoError(t, err)

	assert.Contains(t, out, "Original Matrix\n")
	assert.Contains(t, out, "Swap R1 <-> R3\n")
	assert.Contains(t, out, "FORWARD PHASE")
	assert.Contains(t, out, "BACKWARD PHASE")
	assert.Contains(t, out, "Reduced Echelon Form (RREF)\n  [ 1*  0   0  ]\n  [ 0   1*  0  ]\n  [ 0   0   1* ]\n")
	assert.Contains(t, out, "rank: 3\n")
	assert.NotContains(t, out, "system:")
}

func TestSolve_AugmentedInconsistent(t *testing.T) {
	out, err := run(t, "", "solve", "--augmented", "--no-pivots", "1, 2, 3", "2, 4, 7")
	require.NoError(t, err)
	assert.NotRegexp(t, `[0-9]\*`, out)
	assert.Contains(t, out, "system: inconsistent")
	assert.Contains(t, out, "free columns: 2\n")
}

func TestSolve_NegativeLeadingEntry(t *testing.T) {
	out, err := run(t, "", "solve", "--", "-1 2", "3 4")
	require.NoError(t, err)
	assert.Contains(t, out, "R2 = R2 - (-3) * R1\n")
	assert.Contains(t, out, "rank: 2\n")

	_, err = run(t, "", "solve", "-1 2", "3 4")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `after "--"`)

	_, err = run(t, "", "solve", "--bogus", "1 2")
	require.Error(t, err)
	assert.NotContains(t, err.Error(), `after "--"`, "hint is only for numeric rows")
}

func TestSolve_JSON(t *testing.T) {
	out, err := run(t, "", "solve", "--format", "json", "2 4 6", "1 3 5")
	require.NoError(t, err)

	var doc struct {
		Steps []struct {
			Matrix [][]string `json:"matrix"`
			Label  string     `json:"label"`
			Phase  string     `json:"phase"`
			Op     string     `json:"op"`
			Rows   []int      `json:"rows"`
			Factor string     `json:"factor"`
		} `json:"steps"`
		Summary struct {
			Rank int `json:"rank"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Steps, 6)
	assert.Equal(t, "scale", doc.Steps[4].Op)
	assert.Equal(t, "1/2", doc.Steps[4].Factor)
	assert.Equal(t, [][]string{{"1", "0", "-1"}, {"0", "1", "2"}}, doc.Steps[5].Matrix)
	assert.Equal(t, 2, doc.Summary.Rank)
}

func TestSolve_Errors(t *testing.T) {
	_, err := run(t, "", "solve")
	assert.ErrorIs(t, err, errNoInput)

	_, err = run(t, "", "solve", "1 2", "3")
	assert.ErrorIs(t, err, matrix.ErrInvalidShape)

	_, err = run(t, "", "solve", "1 2", "x 3")
	assert.ErrorIs(t, err, rational.ErrInvalidFraction)
	assert.Contains(t, err.Error(), "row 2, column 1")

	_, err = run(t, "", "solve", "--format", "xml", "1")
	assert.ErrorContains(t, err, "unknown --format")

	_, err = run(t, "", "solve", "--file", "a.yaml", "1 2")
	assert.ErrorContains(t, err, "not both")
}

func TestSolve_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "system.yaml")
	doc := "- name: mine\n  augmented: true\n  rows:\n    - [1, 2, 3]\n    - [2, 4, 7]\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	out, err := run(t, "", "solve", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "system: inconsistent")

	empty := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(empty, nil, 0o600))
	_, err = run(t, "", "solve", "--file", empty)
	assert.ErrorIs(t, err, errNoInput)
}

func TestPreset(t *testing.T) {
	out, err := run(t, "", "preset")
	require.NoError(t, err)
	for _, name := range preset.Names(preset.Builtin()) {
		assert.Contains(t, out, name)
	}

	out, err = run(t, "", "preset", "fraction-pivot")
	require.NoError(t, err)
	assert.Contains(t, out, "fraction-pivot: ")
	assert.Contains(t, out, "R1 = (1/2) * R1\n")

	_, err = run(t, "", "preset", "missing")
	assert.ErrorIs(t, err, preset.ErrUnknownPreset)
}

func TestInteractive(t *testing.T) {
	stdin := "0\n2\n3\n1 2\n1 2 x\n1 2 3\n2 4 7\n"
	out, err := run(t, stdin, "interactive", "--augmented")
	require.NoError(t, err)

	assert.Contains(t, out, "Enter a positive whole number.")
	assert.Contains(t, out, "Expected 3 values, got 2. Try again.")
	assert.Contains(t, out, `Column 3: invalid number "x". Try again.`)
	assert.Contains(t, out, "system: inconsistent")
}

func TestInteractive_InputEnds(t *testing.T) {
	_, err := run(t, "2\n2\n1 0\n", "interactive")
	assert.ErrorIs(t, err, errInputClosed)
}
