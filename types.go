package linkfs

import (
	"github.com/timtadh/linkfs/block"
	"github.com/timtadh/linkfs/consts"
)

// FileSystem is the surface the presentation layer is built on.
type FileSystem interface {
	Create(name, content string) error
	Read(name string) (string, error)
	Delete(name string) error
	List() []FileInfo
	Snapshot() []BlockInfo
	Chain(name string) ([]block.Index, error)
	Verify() error
	Fingerprint() [32]byte
	Capacity() int
	FreeBlocks() int
}

// FileInfo is one row of the file table.
type FileInfo struct {
	Name  string
	Size  int
	Start block.Index
}

// BlockInfo is the state of one block. Free blocks always report
// block.Empty and block.End.
type BlockInfo struct {
	Index block.Index
	Free  bool
	Data  block.Unit
	Next  block.Next
}

func (b BlockInfo) Status() consts.Flag {
	if b.Free {
		return consts.FREE
	}
	return consts.USED
}
