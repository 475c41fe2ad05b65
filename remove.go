package linkfs

import (
	"github.com/timtadh/linkfs/block"
	"github.com/timtadh/linkfs/errors"
)

// Delete removes name from the file table and returns every block of its
// chain to the free map.
func (d *Device) Delete(name string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	name = lookupName(name)
	entry, err := d.files.Remove(name)
	if err != nil {
		return d.reject("delete", name, err)
	}
	count := 0
	err = d.walk(entry, func(i block.Index, _ block.Block) error {
		d.blocks.Reset(i)
		d.free.MarkFree(i)
		count++
		return nil
	})
	if err == nil && count != entry.Size {
		err = errors.Errorf("%w: freed %d blocks of '%v', expected %d", ErrCorrupt, count, name, entry.Size)
	}
	if err != nil {
		panic(err)
	}
	d.log.Debug("deleted",
		"name", name, "size", entry.Size, "start", int(entry.Start), "free", d.free.Free())
	return nil
}
