package linkfs

import (
	"log/slog"
	"os"
	"strconv"
)

import (
	"github.com/timtadh/linkfs/consts"
	"github.com/timtadh/linkfs/errors"
)

// DiskSizeEnv overrides the default number of blocks when set.
const DiskSizeEnv = "LINKFS_DISK_SIZE"

type Config struct {
	// DiskSize is the number of blocks. It is fixed for the life of the
	// device.
	DiskSize int
	// Logger receives a record for every operation. logger.L is used
	// when nil.
	Logger *slog.Logger
}

func DefaultConfig() Config {
	return Config{DiskSize: consts.DISKSIZE}
}

// FromEnv returns c with DiskSize taken from $LINKFS_DISK_SIZE when the
// variable is set.
func (c Config) FromEnv() (Config, error) {
	s, has := os.LookupEnv(DiskSizeEnv)
	if !has || s == "" {
		return c, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return c, errors.Errorf("%w: %v=%q is not an integer", ErrBadConfig, DiskSizeEnv, s)
	}
	c.DiskSize = n
	return c, nil
}

func (c Config) Validate() error {
	if c.DiskSize <= 0 {
		return errors.Errorf("%w: disk size must be positive, got %d", ErrBadConfig, c.DiskSize)
	}
	return nil
}
