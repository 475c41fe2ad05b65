package linkfs

import (
	"log/slog"
	"sync"
	"unicode"
	"unicode/utf8"
)

import (
	"golang.org/x/text/unicode/norm"

	"github.com/timtadh/linkfs/block"
	"github.com/timtadh/linkfs/errors"
	"github.com/timtadh/linkfs/freemap"
	"github.com/timtadh/linkfs/logger"
	"github.com/timtadh/linkfs/table"
)

// Device is a block device together with its free map and file table.
// The three are only ever changed together, under mu.
type Device struct {
	mu     sync.Mutex
	blocks *block.Store
	free   *freemap.Map
	files  *table.Table
	log    *slog.Logger
}

func New(cfg Config) (*Device, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log := cfg.Logger
	if log == nil {
		log = logger.L
	}
	return &Device{
		blocks: block.New(cfg.DiskSize),
		free:   freemap.New(cfg.DiskSize),
		files:  table.New(),
		log:    log.With("disk_size", cfg.DiskSize),
	}, nil
}

// NewDefault makes a device with the default number of blocks.
func NewDefault() *Device {
	d, err := New(DefaultConfig())
	if err != nil {
		panic(err)
	}
	return d
}

// Capacity is the number of blocks of the device.
func (d *Device) Capacity() int {
	return d.blocks.Len()
}

func (d *Device) FreeBlocks() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.free.Free()
}

// validName returns the NFC form of name so that canonically equivalent
// spellings refer to the same file.
func validName(name string) (string, error) {
	if !utf8.ValidString(name) {
		return "", errors.Errorf("%w: %q is not valid UTF-8", ErrInvalidName, name)
	}
	name = norm.NFC.String(name)
	if name == "" {
		return "", errors.Errorf("%w: the name is empty", ErrInvalidName)
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return "", errors.Errorf("%w: %q contains a control character", ErrInvalidName, name)
		}
	}
	return name, nil
}

// lookupName is the lenient form used by the read side: a name that
// could never have been created is simply not found.
func lookupName(name string) string {
	return norm.NFC.String(name)
}

func (d *Device) reject(op, name string, err error) error {
	d.log.Info("rejected", "op", op, "name", name, "err", err.Error())
	return err
}
