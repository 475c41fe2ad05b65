package linkfs

import (
	"github.com/timtadh/linkfs/block"
	"github.com/timtadh/linkfs/errors"
)

// Verify checks the device against its structural invariants:
//
//   - every file's chain starts at an allocated block, visits exactly
//     Size distinct blocks and ends at block.End,
//   - no block belongs to two chains,
//   - a block is free in the free map if and only if no chain visits it,
//     and free blocks hold no data and no successor,
//   - free blocks plus the sizes of all files equal the capacity.
//
// It can be used to check for bugs in the allocation or reclamation
// code. It reports the first violation found, wrapping ErrCorrupt.
func (d *Device) Verify() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	err := d.verify()
	if err != nil {
		d.log.Error("verify failed", "err", err.Error())
	}
	return err
}

func (d *Device) verify() error {
	n := d.blocks.Len()
	if d.free.Len() != n {
		return errors.Errorf("%w: free map tracks %d blocks, store has %d", ErrCorrupt, d.free.Len(), n)
	}
	if used := d.free.Count(); used != n-d.free.Free() {
		return errors.Errorf("%w: free map counts %d used blocks, bitmap has %d", ErrCorrupt, n-d.free.Free(), used)
	}
	owner := make([]string, n)
	owned := make([]bool, n)
	total := 0
	for _, entry := range d.files.List() {
		count := 0
		err := d.walk(entry, func(i block.Index, b block.Block) error {
			if owned[i] {
				return errors.Errorf("%w: block %d is shared by '%v' and '%v'", ErrCorrupt, i, owner[i], entry.Name)
			}
			if b.Data.IsEmpty() {
				return errors.Errorf("%w: block %d of '%v' holds no data", ErrCorrupt, i, entry.Name)
			}
			owned[i] = true
			owner[i] = entry.Name
			count++
			return nil
		})
		if err != nil {
			d.log.Debug("chain failed to verify", "name", entry.Name, "start", int(entry.Start), "size", entry.Size)
			return err
		}
		if count != entry.Size {
			return errors.Errorf("%w: '%v' has %d blocks, expected %d", ErrCorrupt, entry.Name, count, entry.Size)
		}
		total += entry.Size
	}
	for i := 0; i < n; i++ {
		idx := block.Index(i)
		if owned[i] {
			continue
		}
		if !d.free.IsFree(idx) {
			return errors.Errorf("%w: block %d is in use but no file owns it", ErrCorrupt, i)
		}
		if !d.blocks.Get(idx).IsReset() {
			return errors.Errorf("%w: free block %d was not reset", ErrCorrupt, i)
		}
	}
	if d.free.Free()+total != n {
		return errors.Errorf("%w: %d free + %d in files != %d blocks", ErrCorrupt, d.free.Free(), total, n)
	}
	return nil
}
