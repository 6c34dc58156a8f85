package snapshot

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

type fakeStore struct {
	bytes []byte
}

func newFakeStore(size int) *fakeStore { return &fakeStore{bytes: make([]byte, size)} }

func (s *fakeStore) ReadRange(lo, hi uint64) ([]byte, bool) {
	if hi < lo || hi > uint64(len(s.bytes)) {
		return nil, false
	}
	out := make([]byte, hi-lo)
	copy(out, s.bytes[lo:hi])
	return out, true
}

func (s *fakeStore) WriteRange(lo uint64, data []byte) bool {
	if lo+uint64(len(data)) > uint64(len(s.bytes)) {
		return false
	}
	copy(s.bytes[lo:], data)
	return true
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	src := newFakeStore(0x10000)
	copy(src.bytes[0x100:], []byte{1, 2, 3, 4})
	copy(src.bytes[0x2000:], []byte{0xAA, 0xBB})

	ranges := []Range{{Lo: 0x100, Hi: 0x104}, {Lo: 0x2000, Hi: 0x2002}}
	path := filepath.Join(t.TempDir(), "snap.bin")
	if err := Save(path, src, ranges); err != nil {
		t.Fatalf("Save: %v", err)
	}

	dst := newFakeStore(0x10000)
	if err := Load(path, dst, ranges); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !bytes.Equal(dst.bytes[0x100:0x104], []byte{1, 2, 3, 4}) {
		t.Errorf("range 1 did not round-trip: %v", dst.bytes[0x100:0x104])
	}
	if !bytes.Equal(dst.bytes[0x2000:0x2002], []byte{0xAA, 0xBB}) {
		t.Errorf("range 2 did not round-trip: %v", dst.bytes[0x2000:0x2002])
	}
}

func TestSaveRejectsOutOfBoundsRange(t *testing.T) {
	src := newFakeStore(0x1000)
	path := filepath.Join(t.TempDir(), "snap.bin")
	err := Save(path, src, []Range{{Lo: 0x900, Hi: 0x2000}})
	if err == nil {
		t.Errorf("expected Save to reject an out-of-bounds range")
	}
}

func TestLoadRejectsLengthMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snap.bin")
	if err := os.WriteFile(path, []byte{1, 2, 3}, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	dst := newFakeStore(0x1000)
	err := Load(path, dst, []Range{{Lo: 0, Hi: 8}})
	if err == nil {
		t.Errorf("expected Load to reject a file length that does not match the ranges")
	}
}

func TestLoadRejectsRejectedWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snap.bin")
	if err := os.WriteFile(path, []byte{1, 2, 3, 4}, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	dst := newFakeStore(2) // too small for the range below
	err := Load(path, dst, []Range{{Lo: 0, Hi: 4}})
	if err == nil {
		t.Errorf("expected Load to surface a write rejected by the target")
	}
}
