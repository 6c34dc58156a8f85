// Package snapshot dumps and restores named byte ranges of a memory's
// backing store to a single flat file. The file has no header and no
// per-range length prefix; the ranges themselves are a side channel the
// caller must supply identically on save and load.
package snapshot

import (
	"fmt"
	"os"
)

// Range is a half-open byte interval [Lo, Hi) within a backing store.
type Range struct {
	Lo, Hi uint64
}

func (r Range) size() uint64 { return r.Hi - r.Lo }

// Reader is what Save needs from the memory it is dumping.
type Reader interface {
	ReadRange(lo, hi uint64) ([]byte, bool)
}

// Writer is what Load needs from the memory it is restoring.
type Writer interface {
	WriteRange(lo uint64, data []byte) bool
}

// Save writes, in order, the bytes [r.Lo, r.Hi) for every r in ranges to
// path, concatenated with no separator.
func Save(path string, m Reader, ranges []Range) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: create %s: %w", path, err)
	}
	defer f.Close()

	for i, r := range ranges {
		data, ok := m.ReadRange(r.Lo, r.Hi)
		if !ok {
			return fmt.Errorf("snapshot: range %d [0x%x, 0x%x) is out of bounds", i, r.Lo, r.Hi)
		}
		if _, err := f.Write(data); err != nil {
			return fmt.Errorf("snapshot: %s: writing range %d: %w", path, i, err)
		}
	}
	return nil
}

// Load reads path back into the byte ranges named by ranges, in order.
// The file's length must equal the sum of the ranges' sizes.
func Load(path string, m Writer, ranges []Range) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("snapshot: read %s: %w", path, err)
	}

	var total uint64
	for _, r := range ranges {
		total += r.size()
	}
	if uint64(len(data)) != total {
		return fmt.Errorf("snapshot: %s: file length %d does not match sum of range sizes %d", path, len(data), total)
	}

	var off uint64
	for i, r := range ranges {
		chunk := data[off : off+r.size()]
		if !m.WriteRange(r.Lo, chunk) {
			return fmt.Errorf("snapshot: range %d [0x%x, 0x%x) rejected", i, r.Lo, r.Hi)
		}
		off += r.size()
	}
	return nil
}
