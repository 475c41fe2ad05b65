package table

import (
	"testing"
)

import (
	"github.com/stretchr/testify/require"

	"github.com/timtadh/linkfs/errors"
)

func TestEmptyTable(t *testing.T) {
	tab := New()
	require.Equal(t, 0, tab.Len())
	require.Empty(t, tab.List())
	require.NotNil(t, tab.List())
	_, err := tab.Lookup("a")
	require.True(t, errors.Is(err, ErrNotFound))
	_, err = tab.Remove("a")
	require.True(t, errors.Is(err, ErrNotFound))
}

func TestInsertLookupRemove(t *testing.T) {
	tab := New()
	require.NoError(t, tab.Insert(Entry{Name: "a.txt", Size: 2, Start: 0}))
	e, err := tab.Lookup("a.txt")
	require.NoError(t, err)
	require.Equal(t, Entry{Name: "a.txt", Size: 2, Start: 0}, e)
	require.True(t, tab.Has("a.txt"))

	err = tab.Insert(Entry{Name: "a.txt", Size: 9, Start: 4})
	require.True(t, errors.Is(err, ErrExists))
	e, err = tab.Lookup("a.txt")
	require.NoError(t, err)
	require.Equal(t, 2, e.Size)

	removed, err := tab.Remove("a.txt")
	require.NoError(t, err)
	require.Equal(t, e, removed)
	require.False(t, tab.Has("a.txt"))
	require.Equal(t, 0, tab.Len())
}

func TestInsertEmptyName(t *testing.T) {
	tab := New()
	require.Error(t, tab.Insert(Entry{Name: "", Size: 1}))
	require.Equal(t, 0, tab.Len())
}

func TestListInsertionOrder(t *testing.T) {
	tab := New()
	for i, name := range []string{"zeta", "alpha", "mid"} {
		require.NoError(t, tab.Insert(Entry{Name: name, Size: i + 1, Start: 0}))
	}
	_, err := tab.Remove("alpha")
	require.NoError(t, err)
	require.NoError(t, tab.Insert(Entry{Name: "alpha", Size: 7, Start: 3}))

	var names []string
	for _, e := range tab.List() {
		names = append(names, e.Name)
	}
	require.Equal(t, []string{"zeta", "mid", "alpha"}, names)
}
