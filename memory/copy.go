package memory

// Copy overwrites m's backing store from other's, starting at address
// zero, for min(m.Size(), other.Size()) bytes. It does not touch
// attributes, symbols, last-write slots, or reservations; it is meant for
// test fixtures that want to clone a populated backing store without
// re-running a loader.
func (m *Memory) Copy(other *Memory) {
	n := m.Size()
	if other.Size() < n {
		n = other.Size()
	}
	copy(m.store[:n], other.store[:n])
}
