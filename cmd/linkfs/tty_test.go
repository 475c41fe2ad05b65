package main

import (
	"os"
	"path/filepath"
	"testing"
)

import (
	"github.com/stretchr/testify/require"
)

func TestRegularFileIsNotATerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "script"))
	require.NoError(t, err)
	defer f.Close()
	require.False(t, isTerminal(f.Fd()))
}

func TestPipeIsNotATerminal(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()
	require.False(t, isTerminal(r.Fd()))
}
