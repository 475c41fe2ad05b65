package shell

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
)

import (
	"github.com/stretchr/testify/require"

	"github.com/timtadh/linkfs"
)

func run(t *testing.T, opts Options, script ...string) (*linkfs.Device, string) {
	t.Helper()
	dev, err := linkfs.New(linkfs.Config{DiskSize: 8})
	require.NoError(t, err)
	var out bytes.Buffer
	sh := New(dev, strings.NewReader(strings.Join(script, "\n")), &out, opts)
	require.NoError(t, sh.Run())
	return dev, out.String()
}

func TestCreateReadDelete(t *testing.T) {
	dev, out := run(t, Options{},
		"create a.txt hello w",
		"read a.txt",
		"delete a.txt",
		"read a.txt",
		"create big hello world",
	)
	require.Contains(t, out, "created 'a.txt' (7 blocks, 1 free)")
	require.Contains(t, out, "content of 'a.txt': hello w\n")
	require.Contains(t, out, "deleted 'a.txt' (8 free)")
	require.Contains(t, out, "error: file not found: 'a.txt'")
	require.Contains(t, out, "error: not enough free blocks: 'big' needs 11 blocks, 8 are free")
	require.Equal(t, 8, dev.FreeBlocks())
}

func TestContentKeepsSpaces(t *testing.T) {
	dev, out := run(t, Options{},
		"create a.txt a b",
		"read a.txt",
	)
	require.Contains(t, out, "content of 'a.txt': a b\n")
	content, err := dev.Read("a.txt")
	require.NoError(t, err)
	require.Equal(t, "a b", content)
}

func TestContentEdgeSpacesTrimmed(t *testing.T) {
	dev, _ := run(t, Options{},
		"create a   x  y  ",
	)
	content, err := dev.Read("a")
	require.NoError(t, err)
	require.Equal(t, "x  y", content)
}

func TestErrorsDoNotStopTheLoop(t *testing.T) {
	dev, out := run(t, Options{},
		"create a x",
		"create a y",
		"bogus",
		"create b z",
	)
	require.Contains(t, out, "error: file already exists: 'a'")
	require.Contains(t, out, "unknown command 'bogus'")
	require.Len(t, dev.List(), 2)
}

func TestExitStops(t *testing.T) {
	dev, out := run(t, Options{},
		"create a x",
		"exit",
		"create b y",
	)
	require.Contains(t, out, "bye")
	require.Len(t, dev.List(), 1)
}

func TestMenuDigits(t *testing.T) {
	dev, out := run(t, Options{},
		"1 a.txt hi",
		"2 a.txt",
		"4",
		"3 a.txt",
		"6",
		"1 never reached",
	)
	require.Contains(t, out, "content of 'a.txt': hi")
	require.Contains(t, out, "Files")
	require.Contains(t, out, "deleted 'a.txt'")
	require.Empty(t, dev.List())
}

func TestUsage(t *testing.T) {
	_, out := run(t, Options{},
		"create onlyname",
		"read",
		"read two names",
		"list extra",
	)
	require.Contains(t, out, "usage: create NAME CONTENT")
	require.Contains(t, out, "usage: read NAME")
	require.Contains(t, out, "usage: list")
}

func TestShowDisk(t *testing.T) {
	_, out := run(t, Options{ShowDisk: true}, "create a hi")
	require.Contains(t, out, "Disk")
	require.Contains(t, out, "free")

	_, out = run(t, Options{}, "create a hi")
	require.NotContains(t, out, "Disk")

	_, out = run(t, Options{ShowDisk: true}, "create a hi", "create a again", "read nope", "delete nope")
	require.Equal(t, 4, strings.Count(out, "Disk"))
	require.Contains(t, out, "error: file not found: 'nope'")

	_, out = run(t, Options{ShowDisk: true}, "read", "ls", "chain nope")
	require.NotContains(t, out, "Disk")
}

func TestLineLongerThanScannerDefault(t *testing.T) {
	dev, err := linkfs.New(linkfs.Config{DiskSize: 100000})
	require.NoError(t, err)
	content := strings.Repeat("x", 70000)
	var out bytes.Buffer
	sh := New(dev, strings.NewReader("create big "+content+"\nls\n"), &out, Options{})
	require.NoError(t, sh.Run())
	require.Contains(t, out.String(), "created 'big' (70000 blocks, 30000 free)")
	require.Contains(t, out.String(), "Files")
	got, err := dev.Read("big")
	require.NoError(t, err)
	require.Equal(t, content, got)
}

func TestLineForWidestFullDisk(t *testing.T) {
	dev, err := linkfs.New(linkfs.Config{DiskSize: 20000})
	require.NoError(t, err)
	content := strings.Repeat("🌍", 20000)
	var out bytes.Buffer
	sh := New(dev, strings.NewReader("create globe "+content+"\n"), &out, Options{})
	require.NoError(t, sh.Run())
	require.Equal(t, 0, dev.FreeBlocks())
}

func TestListAndChain(t *testing.T) {
	_, out := run(t, Options{},
		"ls",
		"create a xy",
		"create b z",
		"rm a",
		"create c pqr",
		"chain c",
		"chain nope",
	)
	require.Contains(t, out, "no files")
	require.Contains(t, out, "c: 0 -> 1 -> 3 -> nil")
	require.Contains(t, out, "error: file not found: 'nope'")
}

func TestVerifyAndHelp(t *testing.T) {
	_, out := run(t, Options{}, "create a xy", "verify", "help")
	require.Contains(t, out, "ok: 6 of 8 blocks free")
	require.Contains(t, out, "create NAME CONTENT")
	require.Contains(t, out, "chain NAME")
}

func TestFingerprint(t *testing.T) {
	dev, out := run(t, Options{}, "create a xy", "fingerprint", "create a again", "sum")
	want := fmt.Sprintf("%x\n", dev.Fingerprint())
	require.Equal(t, 2, strings.Count(out, want))
	require.Len(t, strings.TrimSpace(want), 64)

	_, out = run(t, Options{}, "fingerprint extra")
	require.Contains(t, out, "usage: fingerprint")
}

func TestPrompt(t *testing.T) {
	_, out := run(t, Options{Interactive: true, Prompt: "> "}, "ls")
	require.True(t, strings.HasPrefix(out, "> no files\n"))
	require.True(t, strings.HasSuffix(out, "> "))
}

func TestBlankLines(t *testing.T) {
	dev, out := run(t, Options{}, "", "   ", "create a x")
	require.NotContains(t, out, "unknown")
	require.Len(t, dev.List(), 1)
}
