package freemap

import (
	"math/bits"
)

import (
	"github.com/timtadh/linkfs/block"
	"github.com/timtadh/linkfs/errors"
)

var ErrNoSpace = errors.New("not enough free blocks")

// Map records which blocks of a store are free. A set bit means the
// block is in use so a new Map has every block free.
type Map struct {
	words []uint64
	n     int
	used  int
}

func New(n int) *Map {
	if n <= 0 {
		panic(errors.Errorf("a free map needs at least one block, got %d", n))
	}
	return &Map{
		words: make([]uint64, (n+63)/64),
		n:     n,
	}
}

// Len is the number of tracked blocks.
func (m *Map) Len() int {
	return m.n
}

// Free is the number of free blocks.
func (m *Map) Free() int {
	return m.n - m.used
}

func (m *Map) IsFree(i block.Index) bool {
	w, b := m.locate(i)
	return m.words[w]&b == 0
}

func (m *Map) MarkUsed(i block.Index) {
	w, b := m.locate(i)
	if m.words[w]&b != 0 {
		panic(errors.Errorf("block %d is already in use (double allocation)", i))
	}
	m.words[w] |= b
	m.used++
}

func (m *Map) MarkFree(i block.Index) {
	w, b := m.locate(i)
	if m.words[w]&b == 0 {
		panic(errors.Errorf("block %d is already free (double free)", i))
	}
	m.words[w] &^= b
	m.used--
}

// FindFree returns the first k free blocks in ascending order. The
// blocks need not be contiguous. Nothing is marked; the caller decides
// whether to take them.
func (m *Map) FindFree(k int) ([]block.Index, error) {
	if k < 0 {
		return nil, errors.Errorf("cannot look for %d free blocks", k)
	}
	if k > m.Free() {
		return nil, errors.Errorf("%w: need %d, have %d", ErrNoSpace, k, m.Free())
	}
	found := make([]block.Index, 0, k)
	for w, word := range m.words {
		if len(found) == k {
			break
		}
		free := ^word
		for free != 0 && len(found) < k {
			b := bits.TrailingZeros64(free)
			i := w*64 + b
			if i >= m.n {
				break
			}
			found = append(found, block.Index(i))
			free &^= 1 << uint(b)
		}
	}
	return found, nil
}

// Count recomputes the number of used blocks from the bitmap. It should
// always agree with Len() - Free().
func (m *Map) Count() int {
	c := 0
	for _, word := range m.words {
		c += bits.OnesCount64(word)
	}
	return c
}

func (m *Map) locate(i block.Index) (int, uint64) {
	if i < 0 || int(i) >= m.n {
		panic(errors.Errorf("block index %d outside of the free map [0, %d)", i, m.n))
	}
	return int(i) / 64, 1 << (uint(i) % 64)
}
