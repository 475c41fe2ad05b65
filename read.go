package linkfs

import (
	"strings"
)

import (
	"github.com/timtadh/linkfs/block"
	"github.com/timtadh/linkfs/chain"
	"github.com/timtadh/linkfs/errors"
	"github.com/timtadh/linkfs/table"
)

// Read returns the content of the named file by walking its chain.
func (d *Device) Read(name string) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	name = lookupName(name)
	entry, err := d.files.Lookup(name)
	if err != nil {
		return "", d.reject("read", name, err)
	}
	var sb strings.Builder
	sb.Grow(entry.Size)
	count := 0
	err = d.walk(entry, func(i block.Index, b block.Block) error {
		r, ok := b.Data.Rune()
		if !ok {
			return errors.Errorf("%w: block %d of '%v' holds no data", ErrCorrupt, i, name)
		}
		sb.WriteRune(r)
		count++
		return nil
	})
	if err == nil && count != entry.Size {
		err = errors.Errorf("%w: '%v' has %d blocks, expected %d", ErrCorrupt, name, count, entry.Size)
	}
	if err != nil {
		panic(err)
	}
	d.log.Debug("read", "name", name, "size", entry.Size)
	return sb.String(), nil
}

// Stat returns the file table row of name.
func (d *Device) Stat(name string) (FileInfo, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	entry, err := d.files.Lookup(lookupName(name))
	if err != nil {
		return FileInfo{}, err
	}
	return FileInfo(entry), nil
}

// Chain lists the blocks of name in chain order.
func (d *Device) Chain(name string) ([]block.Index, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	entry, err := d.files.Lookup(lookupName(name))
	if err != nil {
		return nil, err
	}
	return chain.Indices(d.blocks, block.To(entry.Start), entry.Size)
}

// walk visits the chain of entry. Every visited block must be marked in
// use; a free block inside a live chain means the maps disagree.
func (d *Device) walk(entry table.Entry, do func(block.Index, block.Block) error) error {
	return chain.Walk(d.blocks, block.To(entry.Start), entry.Size, func(i block.Index, b block.Block) error {
		if d.free.IsFree(i) {
			return errors.Errorf("%w: block %d of '%v' is marked free", ErrCorrupt, i, entry.Name)
		}
		return do(i, b)
	})
}
