package linkfs

import (
	"encoding/binary"
)

import (
	"golang.org/x/crypto/sha3"
)

// Fingerprint is a SHA3-256 digest of the whole device: every block,
// the free map and the file table in listing order. Two devices with
// the same fingerprint are observably the same.
func (d *Device) Fingerprint() [32]byte {
	d.mu.Lock()
	defer d.mu.Unlock()

	buf := make([]byte, 0, d.blocks.Len()*16)
	for _, b := range d.snapshot() {
		buf = append(buf, byte(b.Status()))
		r, ok := b.Data.Rune()
		buf = appendOpt(buf, uint64(r), ok)
		next, ok := b.Next.Index()
		buf = appendOpt(buf, uint64(next), ok)
	}
	for _, e := range d.files.List() {
		buf = binary.AppendUvarint(buf, uint64(len(e.Name)))
		buf = append(buf, e.Name...)
		buf = binary.AppendUvarint(buf, uint64(e.Size))
		buf = binary.AppendUvarint(buf, uint64(e.Start))
	}
	return sha3.Sum256(buf)
}

func appendOpt(buf []byte, v uint64, ok bool) []byte {
	if !ok {
		return append(buf, 0)
	}
	buf = append(buf, 1)
	return binary.AppendUvarint(buf, v)
}
