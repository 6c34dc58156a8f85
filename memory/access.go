package memory

import (
	"encoding/binary"

	"github.com/luckidea/SweRV-ISS/pma"
)

func loadLE[T Word](b []byte) T {
	switch wordSize[T]() {
	case 1:
		return T(b[0])
	case 2:
		return T(binary.LittleEndian.Uint16(b))
	case 4:
		return T(binary.LittleEndian.Uint32(b))
	default:
		return T(binary.LittleEndian.Uint64(b))
	}
}

func storeLE[T Word](b []byte, v T) {
	switch wordSize[T]() {
	case 1:
		b[0] = byte(v)
	case 2:
		binary.LittleEndian.PutUint16(b, uint16(v))
	case 4:
		binary.LittleEndian.PutUint32(b, uint32(v))
	default:
		binary.LittleEndian.PutUint64(b, uint64(v))
	}
}

func loadLEAsU64(b []byte) uint64 {
	switch len(b) {
	case 1:
		return uint64(b[0])
	case 2:
		return uint64(binary.LittleEndian.Uint16(b))
	case 4:
		return uint64(binary.LittleEndian.Uint32(b))
	default:
		return binary.LittleEndian.Uint64(b)
	}
}

func classifyAccessError(attr pma.Attr) error {
	if !attr.Mapped() {
		return ErrUnmapped
	}
	return ErrPermission
}

// Read performs a typed data load. It fails if the access runs past the
// end of the address space, the target page is not readable, the access
// is misaligned and straddles pages of differing attribute, or the page
// is an MMR region and T is not uint32.
func Read[T Word](m *Memory, addr uint64) (T, bool) {
	var zero T
	size := uint64(wordSize[T]())
	if addr+size > m.Size() || addr+size < addr {
		m.setErr(ErrOutOfBounds)
		return zero, false
	}
	attr1 := m.attrs.Get(addr)
	if !attr1.Read {
		m.setErr(classifyAccessError(attr1))
		return zero, false
	}
	if addr%size != 0 {
		attr2 := m.attrs.Get(addr + size - 1)
		if attr1 != attr2 {
			m.setErr(ErrStraddle)
			return zero, false
		}
	}
	if attr1.MMR {
		if size != 4 || addr%4 != 0 {
			m.setErr(ErrBadMMR)
			return zero, false
		}
		word := addr &^ 3
		v := binary.LittleEndian.Uint32(m.store[word : word+4])
		m.clearErr()
		return T(v), true
	}
	m.clearErr()
	return loadLE[T](m.store[addr : addr+size]), true
}

// Write performs a typed data store on behalf of hart. On success it
// records the old and new values in hart's last-write slot and
// invalidates every other hart's overlapping reservation; it never
// invalidates hart's own reservation.
func Write[T Word](m *Memory, hart int, addr uint64, v T) bool {
	size := uint64(wordSize[T]())
	if addr+size > m.Size() || addr+size < addr {
		m.setErr(ErrOutOfBounds)
		return false
	}
	attr1 := m.attrs.Get(addr)
	if !attr1.Write {
		m.setErr(classifyAccessError(attr1))
		return false
	}
	if addr%size != 0 {
		attr2 := m.attrs.Get(addr + size - 1)
		if attr1 != attr2 {
			m.setErr(ErrStraddle)
			return false
		}
	}
	if attr1.MMR {
		if size != 4 || addr%4 != 0 {
			m.setErr(ErrBadMMR)
			return false
		}
		mask := m.attrs.MMRMask(addr)
		word := addr &^ 3
		prev := binary.LittleEndian.Uint32(m.store[word : word+4])
		masked := uint32(v) & mask
		binary.LittleEndian.PutUint32(m.store[word:word+4], masked)
		m.recordLastWrite(hart, 4, addr, uint64(masked), uint64(prev))
		m.invalidateOtherHartLR(hart, addr, 4)
		m.clearErr()
		return true
	}
	prev := loadLEAsU64(m.store[addr : addr+size])
	storeLE[T](m.store[addr:addr+size], v)
	m.recordLastWrite(hart, int(size), addr, uint64(v), prev)
	m.invalidateOtherHartLR(hart, addr, size)
	m.clearErr()
	return true
}

// CheckWrite applies the same gating as Write without committing a store,
// without touching the last-write slot, and without invalidating any
// reservation. If addr lies in an MMR region, *v is updated in place to
// the value that a real write would have committed.
func CheckWrite[T Word](m *Memory, addr uint64, v *T) bool {
	size := uint64(wordSize[T]())
	if addr+size > m.Size() || addr+size < addr {
		m.setErr(ErrOutOfBounds)
		return false
	}
	attr1 := m.attrs.Get(addr)
	if !attr1.Write {
		m.setErr(classifyAccessError(attr1))
		return false
	}
	if addr%size != 0 {
		attr2 := m.attrs.Get(addr + size - 1)
		if attr1 != attr2 {
			m.setErr(ErrStraddle)
			return false
		}
	}
	if attr1.MMR {
		if size != 4 || addr%4 != 0 {
			m.setErr(ErrBadMMR)
			return false
		}
		mask := m.attrs.MMRMask(addr)
		*v = T(uint32(*v) & mask)
	}
	m.clearErr()
	return true
}

// Poke is the out-of-band store used by loaders and debuggers. It requires
// only that the target page be mapped (not necessarily writable), still
// honours the straddle and MMR rules, does not touch the last-write slot,
// and invalidates every hart's overlapping reservation, including the
// caller's own.
func Poke[T Word](m *Memory, addr uint64, v T) bool {
	size := uint64(wordSize[T]())
	if addr+size > m.Size() || addr+size < addr {
		m.setErr(ErrOutOfBounds)
		return false
	}
	attr1 := m.attrs.Get(addr)
	if !attr1.Mapped() {
		m.setErr(ErrUnmapped)
		return false
	}
	if addr%size != 0 {
		attr2 := m.attrs.Get(addr + size - 1)
		if attr1 != attr2 {
			m.setErr(ErrStraddle)
			return false
		}
	}
	if attr1.MMR {
		if size != 4 || addr%4 != 0 {
			m.setErr(ErrBadMMR)
			return false
		}
		mask := m.attrs.MMRMask(addr)
		word := addr &^ 3
		masked := uint32(v) & mask
		binary.LittleEndian.PutUint32(m.store[word:word+4], masked)
		m.invalidateLRs(addr, 4)
		m.clearErr()
		return true
	}
	storeLE[T](m.store[addr:addr+size], v)
	m.invalidateLRs(addr, size)
	m.clearErr()
	return true
}

func readInst[T Word](m *Memory, addr uint64) (T, bool) {
	var zero T
	size := uint64(wordSize[T]())
	if addr+size > m.Size() || addr+size < addr {
		m.setErr(ErrOutOfBounds)
		return zero, false
	}
	attr1 := m.attrs.Get(addr)
	if !attr1.Exec {
		m.setErr(classifyAccessError(attr1))
		return zero, false
	}
	if addr%size != 0 {
		attr2 := m.attrs.Get(addr + size - 1)
		if attr1 != attr2 {
			m.setErr(ErrStraddle)
			return zero, false
		}
	}
	m.clearErr()
	return loadLE[T](m.store[addr : addr+size]), true
}

// ReadByte, ReadHalfWord, ReadWord, and ReadDoubleWord are the fixed-width
// convenience wrappers around Read.
func (m *Memory) ReadByte(addr uint64) (uint8, bool)        { return Read[uint8](m, addr) }
func (m *Memory) ReadHalfWord(addr uint64) (uint16, bool)   { return Read[uint16](m, addr) }
func (m *Memory) ReadWord(addr uint64) (uint32, bool)       { return Read[uint32](m, addr) }
func (m *Memory) ReadDoubleWord(addr uint64) (uint64, bool) { return Read[uint64](m, addr) }

// WriteByte, WriteHalfWord, WriteWord, and WriteDoubleWord are the
// fixed-width convenience wrappers around Write.
func (m *Memory) WriteByte(hart int, addr uint64, v uint8) bool {
	return Write[uint8](m, hart, addr, v)
}
func (m *Memory) WriteHalfWord(hart int, addr uint64, v uint16) bool {
	return Write[uint16](m, hart, addr, v)
}
func (m *Memory) WriteWord(hart int, addr uint64, v uint32) bool {
	return Write[uint32](m, hart, addr, v)
}
func (m *Memory) WriteDoubleWord(hart int, addr uint64, v uint64) bool {
	return Write[uint64](m, hart, addr, v)
}

// ReadInstHalf and ReadInstWord are the instruction-fetch paths: they gate
// on the exec attribute instead of read, and ignore MMR entirely (a valid
// configuration never marks an MMR page executable).
func (m *Memory) ReadInstHalf(addr uint64) (uint16, bool) { return readInst[uint16](m, addr) }
func (m *Memory) ReadInstWord(addr uint64) (uint32, bool) { return readInst[uint32](m, addr) }

// PokeByteNoAccessCheck stores a single byte bypassing even the mapped
// check; it exists for the image loader, which must be able to populate
// any in-bounds address regardless of configured attributes.
func (m *Memory) PokeByteNoAccessCheck(addr uint64, v uint8) bool {
	if addr >= m.Size() {
		m.setErr(ErrOutOfBounds)
		return false
	}
	m.store[addr] = v
	m.clearErr()
	return true
}

// PokeByte satisfies loader.Writer.
func (m *Memory) PokeByte(addr uint64, v uint8) bool { return m.PokeByteNoAccessCheck(addr, v) }
