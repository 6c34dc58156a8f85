package memory

// ReadRange and WriteRange satisfy snapshot.Reader and snapshot.Writer,
// giving package snapshot raw access to a byte span of the backing store
// without reaching into Memory's fields.

func (m *Memory) ReadRange(lo, hi uint64) ([]byte, bool) {
	if hi < lo || hi > m.Size() {
		m.setErr(ErrOutOfBounds)
		return nil, false
	}
	out := make([]byte, hi-lo)
	copy(out, m.store[lo:hi])
	m.clearErr()
	return out, true
}

func (m *Memory) WriteRange(lo uint64, data []byte) bool {
	if lo+uint64(len(data)) > m.Size() || lo+uint64(len(data)) < lo {
		m.setErr(ErrOutOfBounds)
		return false
	}
	copy(m.store[lo:], data)
	m.clearErr()
	return true
}
