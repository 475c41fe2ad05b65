package chain

import (
	"testing"
)

import (
	"github.com/stretchr/testify/require"

	"github.com/timtadh/linkfs/block"
	"github.com/timtadh/linkfs/errors"
)

func TestLinkAndWalk(t *testing.T) {
	s := block.New(8)
	idxs := []block.Index{0, 2, 3, 7}
	Link(s, idxs, []rune("ab¢d"))

	require.Equal(t, block.To(2), s.Get(0).Next)
	require.Equal(t, block.To(3), s.Get(2).Next)
	require.Equal(t, block.To(7), s.Get(3).Next)
	require.Equal(t, block.End, s.Get(7).Next)
	require.True(t, s.Get(1).IsReset())

	var got []rune
	err := Walk(s, block.To(0), s.Len(), func(_ block.Index, b block.Block) error {
		r, ok := b.Data.Rune()
		require.True(t, ok)
		got = append(got, r)
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, "ab¢d", string(got))

	found, err := Indices(s, block.To(0), 4)
	require.NoError(t, err)
	require.Equal(t, idxs, found)
}

func TestLinkLengthMismatch(t *testing.T) {
	s := block.New(4)
	require.Panics(t, func() { Link(s, []block.Index{0}, []rune("ab")) })
}

func TestWalkEmpty(t *testing.T) {
	s := block.New(4)
	found, err := Indices(s, block.End, 4)
	require.NoError(t, err)
	require.Empty(t, found)
}

func TestWalkResetWhileWalking(t *testing.T) {
	s := block.New(4)
	Link(s, []block.Index{3, 1, 0}, []rune("xyz"))
	var visited []block.Index
	err := Walk(s, block.To(3), 3, func(i block.Index, _ block.Block) error {
		visited = append(visited, i)
		s.Reset(i)
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, []block.Index{3, 1, 0}, visited)
	for i := 0; i < s.Len(); i++ {
		require.True(t, s.Get(block.Index(i)).IsReset())
	}
}

func TestWalkDetectsCycle(t *testing.T) {
	s := block.New(4)
	Link(s, []block.Index{0, 1, 2}, []rune("abc"))
	s.SetNext(2, block.To(0))
	_, err := Indices(s, block.To(0), s.Len())
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrCorrupt))
}

func TestWalkDetectsOverrun(t *testing.T) {
	s := block.New(8)
	Link(s, []block.Index{0, 1, 2, 3}, []rune("abcd"))
	_, err := Indices(s, block.To(0), 3)
	require.True(t, errors.Is(err, ErrCorrupt))
}

func TestWalkStopsOnError(t *testing.T) {
	s := block.New(4)
	Link(s, []block.Index{0, 1}, []rune("ab"))
	stop := errors.New("stop")
	calls := 0
	err := Walk(s, block.To(0), 4, func(block.Index, block.Block) error {
		calls++
		return stop
	})
	require.Equal(t, stop, err)
	require.Equal(t, 1, calls)
}
