package linkfs

import (
	"github.com/timtadh/linkfs/block"
)

// List returns the file table in insertion order.
func (d *Device) List() []FileInfo {
	d.mu.Lock()
	defer d.mu.Unlock()
	entries := d.files.List()
	files := make([]FileInfo, 0, len(entries))
	for _, e := range entries {
		files = append(files, FileInfo(e))
	}
	return files
}

// Snapshot reports the state of every block, in index order.
func (d *Device) Snapshot() []BlockInfo {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.snapshot()
}

func (d *Device) snapshot() []BlockInfo {
	infos := make([]BlockInfo, d.blocks.Len())
	for i := range infos {
		idx := block.Index(i)
		info := BlockInfo{Index: idx, Free: d.free.IsFree(idx)}
		if !info.Free {
			b := d.blocks.Get(idx)
			info.Data = b.Data
			info.Next = b.Next
		}
		infos[i] = info
	}
	return infos
}
