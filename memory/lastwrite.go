package memory

func (m *Memory) recordLastWrite(hart, size int, addr, newValue, prevValue uint64) {
	if hart < 0 || hart >= len(m.lastWrites) {
		return
	}
	m.lastWrites[hart] = lastWrite{size: size, addr: addr, nv: newValue, pv: prevValue}
}

// LastWriteNew returns the address, width, and committed value of hart's
// most recent recorded store. size == 0 means no write is pending.
func (m *Memory) LastWriteNew(hart int) (size int, addr uint64, v uint64) {
	if hart < 0 || hart >= len(m.lastWrites) {
		return 0, 0, 0
	}
	lw := m.lastWrites[hart]
	return lw.size, lw.addr, lw.nv
}

// LastWriteOld returns the address, width, and pre-write value of hart's
// most recent recorded store.
func (m *Memory) LastWriteOld(hart int) (size int, addr uint64, v uint64) {
	if hart < 0 || hart >= len(m.lastWrites) {
		return 0, 0, 0
	}
	lw := m.lastWrites[hart]
	return lw.size, lw.addr, lw.pv
}

// ClearLastWrite resets hart's last-write slot. The executor calls this
// after draining the slot into a trace record.
func (m *Memory) ClearLastWrite(hart int) {
	if hart < 0 || hart >= len(m.lastWrites) {
		return
	}
	m.lastWrites[hart] = lastWrite{}
}
