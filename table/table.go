package table

import (
	"container/list"
)

import (
	"github.com/timtadh/linkfs/block"
	"github.com/timtadh/linkfs/errors"
)

var (
	ErrNotFound = errors.New("file not found")
	ErrExists   = errors.New("file already exists")
)

// Entry describes one file: how many units it holds and where its chain
// begins.
type Entry struct {
	Name  string
	Size  int
	Start block.Index
}

// Table maps file names to entries and remembers the order in which
// the names were inserted.
type Table struct {
	index map[string]*list.Element
	order *list.List
}

func New() *Table {
	return &Table{
		index: make(map[string]*list.Element),
		order: list.New(),
	}
}

func (t *Table) Len() int {
	return len(t.index)
}

func (t *Table) Has(name string) bool {
	_, has := t.index[name]
	return has
}

func (t *Table) Lookup(name string) (Entry, error) {
	e, has := t.index[name]
	if !has {
		return Entry{}, errors.Errorf("%w: '%v'", ErrNotFound, name)
	}
	return e.Value.(Entry), nil
}

func (t *Table) Insert(entry Entry) error {
	if entry.Name == "" {
		return errors.Errorf("cannot insert a file with an empty name")
	}
	if t.Has(entry.Name) {
		return errors.Errorf("%w: '%v'", ErrExists, entry.Name)
	}
	t.index[entry.Name] = t.order.PushBack(entry)
	return nil
}

func (t *Table) Remove(name string) (Entry, error) {
	e, has := t.index[name]
	if !has {
		return Entry{}, errors.Errorf("%w: '%v'", ErrNotFound, name)
	}
	delete(t.index, name)
	return t.order.Remove(e).(Entry), nil
}

// List returns every entry in insertion order.
func (t *Table) List() []Entry {
	entries := make([]Entry, 0, t.order.Len())
	for e := t.order.Front(); e != nil; e = e.Next() {
		entries = append(entries, e.Value.(Entry))
	}
	return entries
}
