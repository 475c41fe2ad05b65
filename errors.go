package linkfs

import (
	"github.com/timtadh/linkfs/chain"
	"github.com/timtadh/linkfs/errors"
	"github.com/timtadh/linkfs/freemap"
	"github.com/timtadh/linkfs/table"
)

var (
	ErrAlreadyExists     = table.ErrExists
	ErrNotFound          = table.ErrNotFound
	ErrInsufficientSpace = freemap.ErrNoSpace
	ErrCorrupt           = chain.ErrCorrupt
	ErrEmptyFile         = errors.New("empty files are not supported")
	ErrInvalidName       = errors.New("invalid file name")
	ErrInvalidContent    = errors.New("content is not valid UTF-8")
	ErrBadConfig         = errors.New("bad configuration")
)
