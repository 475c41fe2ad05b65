package linkfs

import (
	"unicode/utf8"
)

import (
	"github.com/timtadh/linkfs/chain"
	"github.com/timtadh/linkfs/errors"
	"github.com/timtadh/linkfs/table"
)

// Create stores content under name. Each character takes one block; the
// blocks are the lowest free ones, linked in ascending order. Either
// every block is allocated and the file is listed, or nothing changes.
func (d *Device) Create(name, content string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	n, err := validName(name)
	if err != nil {
		return d.reject("create", name, err)
	}
	name = n
	if !utf8.ValidString(content) {
		return d.reject("create", name, errors.Errorf("%w: '%v'", ErrInvalidContent, name))
	}
	units := []rune(content)
	if len(units) == 0 {
		return d.reject("create", name, errors.Errorf("%w: '%v'", ErrEmptyFile, name))
	}
	if d.files.Has(name) {
		return d.reject("create", name, errors.Errorf("%w: '%v'", ErrAlreadyExists, name))
	}
	idxs, err := d.free.FindFree(len(units))
	if errors.Is(err, ErrInsufficientSpace) {
		return d.reject("create", name, errors.Errorf(
			"%w: '%v' needs %d blocks, %d are free",
			ErrInsufficientSpace, name, len(units), d.free.Free()))
	} else if err != nil {
		return err
	}

	chain.Link(d.blocks, idxs, units)
	for _, i := range idxs {
		d.free.MarkUsed(i)
	}
	entry := table.Entry{Name: name, Size: len(units), Start: idxs[0]}
	if err := d.files.Insert(entry); err != nil {
		panic(errors.Errorf("file table refused '%v' after the name was checked: %v", name, err))
	}
	d.log.Debug("created",
		"name", name, "size", entry.Size, "start", int(entry.Start), "free", d.free.Free())
	return nil
}
