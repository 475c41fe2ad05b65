package chain

import (
	"github.com/timtadh/linkfs/block"
	"github.com/timtadh/linkfs/errors"
)

var ErrCorrupt = errors.New("corrupt chain")

// Link writes units[i] into block idxs[i] and points it at idxs[i+1].
// The last block is terminated with block.End. idxs and units must be
// the same length.
func Link(s *block.Store, idxs []block.Index, units []rune) {
	if len(idxs) != len(units) {
		panic(errors.Errorf("Expected %d blocks for %d units", len(units), len(idxs)))
	}
	for i, r := range units {
		next := block.End
		if i+1 < len(idxs) {
			next = block.To(idxs[i+1])
		}
		s.Put(idxs[i], block.Block{Data: block.UnitOf(r), Next: next})
	}
}

// Walk calls do for every block of the chain starting at start, in chain
// order. do receives the block as it was before do ran, so do may reset
// it without breaking the walk. A chain that revisits a block or is
// longer than limit is reported as ErrCorrupt.
func Walk(s *block.Store, start block.Next, limit int, do func(block.Index, block.Block) error) error {
	if limit > s.Len() {
		limit = s.Len()
	}
	seen := make([]uint64, (s.Len()+63)/64)
	count := 0
	for cur, ok := start.Index(); ok; {
		if cur < 0 || int(cur) >= s.Len() {
			return errors.Errorf("%w: successor %d outside of the store", ErrCorrupt, cur)
		}
		w, bit := int(cur)/64, uint64(1)<<(uint(cur)%64)
		if seen[w]&bit != 0 {
			return errors.Errorf("%w: block %d visited twice", ErrCorrupt, cur)
		}
		seen[w] |= bit
		count++
		if count > limit {
			return errors.Errorf("%w: more than %d blocks", ErrCorrupt, limit)
		}
		b := s.Get(cur)
		if err := do(cur, b); err != nil {
			return err
		}
		cur, ok = b.Next.Index()
	}
	return nil
}

// Indices lists the blocks of the chain starting at start.
func Indices(s *block.Store, start block.Next, limit int) ([]block.Index, error) {
	var idxs []block.Index
	err := Walk(s, start, limit, func(i block.Index, _ block.Block) error {
		idxs = append(idxs, i)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return idxs, nil
}
