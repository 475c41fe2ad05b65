package consts

type Flag uint8

// DISKSIZE is the number of blocks of a device when none is given.
const DISKSIZE = 32

// Block status flags as reported in a device snapshot.
const (
	FREE Flag = 1 << iota
	USED
)

func (f Flag) String() string {
	switch f {
	case FREE:
		return "free"
	case USED:
		return "used"
	default:
		return "unknown"
	}
}
