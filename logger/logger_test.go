package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

import (
	"github.com/stretchr/testify/require"
)

func TestNewWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, slog.LevelDebug)
	l.Debug("created", "name", "a.txt", "size", 2)

	var rec map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	require.Equal(t, "created", rec["msg"])
	require.Equal(t, "a.txt", rec["name"])
	require.Equal(t, float64(2), rec["size"])
}

func TestLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, slog.LevelInfo)
	l.Debug("hidden")
	require.Zero(t, buf.Len())
}

func TestInitToFile(t *testing.T) {
	old := L
	defer func() { L = old }()

	path := filepath.Join(t.TempDir(), "linkfs.log")
	c, err := Init(Options{Enabled: true, Path: path, Level: slog.LevelDebug})
	require.NoError(t, err)
	L.Info("hello")
	require.NoError(t, c.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `"msg":"hello"`)
}

func TestInitDisabled(t *testing.T) {
	old := L
	defer func() { L = old }()

	c, err := Init(Options{})
	require.NoError(t, err)
	require.NotNil(t, c)
	require.NoError(t, c.Close())
	require.NotSame(t, old, L)
	L.Error("discarded")
}
