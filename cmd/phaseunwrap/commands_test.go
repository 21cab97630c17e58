package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/phasor/phase"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestGenerate_WritesWrappedField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ramp.csv")
	_, err := execute(t, "generate", "--size", "16", "--out", path)
	require.NoError(t, err)

	fh, err := os.Open(path)
	require.NoError(t, err)
	defer fh.Close()
	f, err := readField(fh)
	require.NoError(t, err)
	assert.Equal(t, []int{16, 16}, f.Shape())
	for _, v := range f.Data() {
		assert.Equal(t, phase.Wrap(v), v)
	}
}

func TestInspect_Vortex(t *testing.T) {
	out, err := execute(t, "inspect", "--source", "vortex", "--size", "8")
	require.NoError(t, err)
	assert.Contains(t, out, "shape      8x8 (64 samples)")
	assert.Contains(t, out, "residues   +0 / -1 in 1 clusters")
}

func TestUnwrap_RecordsToLedger(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.csv")
	unwrapped := filepath.Join(dir, "out.csv")
	ledger := filepath.Join(dir, "runs.db")

	_, err := execute(t, "generate", "--size", "16", "--out", in)
	require.NoError(t, err)

	for _, s := range []string{"raster", "spectral", "guided", "iterative"} {
		out, err := execute(t, "unwrap", "--in", in, "--strategy", s, "--ledger", ledger, "--out", unwrapped)
		require.NoError(t, err, s)
		assert.Contains(t, out, "strategy   "+s)
		assert.Contains(t, out, "shape      16x16 (256 samples)")
		assert.Contains(t, out, "run        ")
	}

	fh, err := os.Open(unwrapped)
	require.NoError(t, err)
	defer fh.Close()
	f, err := readField(fh)
	require.NoError(t, err)
	assert.Equal(t, []int{16, 16}, f.Shape())

	out, err := execute(t, "history", "--ledger", ledger, "--limit", "2")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "STRATEGY")
	assert.Contains(t, lines[1], "iterative")
	assert.Contains(t, lines[2], "guided")

	out, err = execute(t, "history", "--ledger", ledger, "--strategy", "raster")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 2)
}

func TestUnwrap_FlagErrors(t *testing.T) {
	t.Setenv(ledgerEnv, "")
	cases := [][]string{
		{"unwrap", "--strategy", "branch-cut"},
		{"unwrap", "--max-iter", "0"},
		{"unwrap", "--epsilon", "0"},
		{"unwrap", "--axis", "-1"},
		{"unwrap", "--strategy", "raster", "--axis", "5"},
		{"unwrap", "--strategy", "guided", "--seed", "100,100"},
		{"unwrap", "--source", "plasma"},
		{"unwrap", "--size", "4"},
		{"history"},
		{"--log-level", "loud", "inspect"},
	}
	for _, args := range cases {
		_, err := execute(t, args...)
		assert.Error(t, err, "%v", args)
	}
}
