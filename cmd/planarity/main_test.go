package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunRandomBatchPlanar(t *testing.T) {
	require.Equal(t, 0, run([]string{"-r", "-p", "5", "6"}))
}

func TestRunGenerateMaximalPlanar(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "maximal.txt")
	require.Equal(t, 0, run([]string{"-m", "8", out}))
}

func TestRunSingleFileEmbedsK4(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "k4.txt")
	writeAdjListFile(t, in, "4\n1 2 3 4 0\n2 1 3 4 0\n3 1 2 4 0\n4 1 2 3 0\n")
	out := filepath.Join(dir, "out.txt")
	require.Equal(t, 0, run([]string{"-s", "-p", in, out}))
}

func TestRunSingleFileIsolatesK5(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "k5.txt")
	writeAdjListFile(t, in, "5\n1 2 3 4 5 0\n2 1 3 4 5 0\n3 1 2 4 5 0\n4 1 2 3 5 0\n5 1 2 3 4 0\n")
	out := filepath.Join(dir, "out.txt")
	out2 := filepath.Join(dir, "obstruction.txt")
	require.Equal(t, 0, run([]string{"-s", "-p", in, out, out2}))
}

func TestRunUnknownModeFails(t *testing.T) {
	require.Equal(t, -2, run([]string{"-bogus"}))
}

func writeAdjListFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// TestRunSingleFileAcceptsMatrixInput feeds -s the adjacency-matrix form
// of K4; the reader must sniff the format without a flag.
func TestRunSingleFileAcceptsMatrixInput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "k4matrix.txt")
	writeAdjListFile(t, in, "4\n0 1 1 1\n1 0 1 1\n1 1 0 1\n1 1 1 0\n")
	out := filepath.Join(dir, "out.txt")
	require.Equal(t, 0, run([]string{"-s", "-p", in, out}))
}
