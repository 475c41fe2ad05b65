package block

import (
	"strconv"
)

import (
	"github.com/timtadh/linkfs/errors"
)

// Index addresses one block of a Store.
type Index int

// Next is the successor reference of a block. The zero value is End,
// the terminator of a chain.
type Next struct {
	idx Index
	ok  bool
}

// End marks a block with no successor.
var End Next

// To makes a reference to the block at i.
func To(i Index) Next {
	return Next{idx: i, ok: true}
}

// Index returns the referenced block and false if n is End.
func (n Next) Index() (Index, bool) {
	return n.idx, n.ok
}

func (n Next) IsEnd() bool {
	return !n.ok
}

func (n Next) String() string {
	if !n.ok {
		return "nil"
	}
	return strconv.Itoa(int(n.idx))
}

// Unit is the data held by a block: a single character or nothing. The
// zero value is Empty.
type Unit struct {
	r  rune
	ok bool
}

var Empty Unit

func UnitOf(r rune) Unit {
	return Unit{r: r, ok: true}
}

func (u Unit) Rune() (rune, bool) {
	return u.r, u.ok
}

func (u Unit) IsEmpty() bool {
	return !u.ok
}

func (u Unit) String() string {
	if !u.ok {
		return "-"
	}
	return string(u.r)
}

type Block struct {
	Data Unit
	Next Next
}

// IsReset is true for a block holding no data and no successor, which
// is the state of every block that is not part of a chain.
func (b Block) IsReset() bool {
	return b.Data.IsEmpty() && b.Next.IsEnd()
}

// Store is a fixed length array of blocks. Every index in [0, Len())
// is always addressable. Addressing outside of it is a bug in the
// caller and panics.
type Store struct {
	blocks []Block
}

func New(n int) *Store {
	if n <= 0 {
		panic(errors.Errorf("a block store needs at least one block, got %d", n))
	}
	return &Store{blocks: make([]Block, n)}
}

func (s *Store) Len() int {
	return len(s.blocks)
}

func (s *Store) Get(i Index) Block {
	s.check(i)
	return s.blocks[i]
}

func (s *Store) Put(i Index, b Block) {
	s.check(i)
	if j, ok := b.Next.Index(); ok {
		s.check(j)
	}
	s.blocks[i] = b
}

func (s *Store) SetData(i Index, u Unit) {
	s.check(i)
	s.blocks[i].Data = u
}

func (s *Store) SetNext(i Index, n Next) {
	s.check(i)
	if j, ok := n.Index(); ok {
		s.check(j)
	}
	s.blocks[i].Next = n
}

// Reset clears the data of block i and detaches it from any chain.
func (s *Store) Reset(i Index) {
	s.check(i)
	s.blocks[i] = Block{}
}

func (s *Store) check(i Index) {
	if i < 0 || int(i) >= len(s.blocks) {
		panic(errors.Errorf("block index %d outside of the store [0, %d)", i, len(s.blocks)))
	}
}
