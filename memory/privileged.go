package memory

// Privileged is the capability object that stands in for the friend-class
// access the executor needed in the source design: a small, explicit set
// of methods handed to the executor at construction instead of re-opening
// Memory's internals across a package boundary.
type Privileged struct {
	m *Memory
}

// Capability returns the Privileged view onto m.
func (m *Memory) Capability() Privileged { return Privileged{m: m} }

func (p Privileged) PokeByteNoAccessCheck(addr uint64, v uint8) bool {
	return p.m.PokeByteNoAccessCheck(addr, v)
}

func (p Privileged) LastWriteNew(hart int) (size int, addr uint64, v uint64) {
	return p.m.LastWriteNew(hart)
}

func (p Privileged) LastWriteOld(hart int) (size int, addr uint64, v uint64) {
	return p.m.LastWriteOld(hart)
}

func (p Privileged) ClearLastWrite(hart int) { p.m.ClearLastWrite(hart) }

func (p Privileged) MakeLR(hart int, addr, size uint64) { p.m.MakeLR(hart, addr, size) }

func (p Privileged) HasLR(hart int, addr uint64) bool { return p.m.HasLR(hart, addr) }

func (p Privileged) InvalidateLR(hart int) { p.m.InvalidateLR(hart) }

func (p Privileged) InvalidateOtherHartLR(hart int, addr, storeSize uint64) {
	p.m.InvalidateOtherHartLR(hart, addr, storeSize)
}

func (p Privileged) InvalidateLRs(addr, storeSize uint64) { p.m.InvalidateLRs(addr, storeSize) }

// PageSize, RegionSize, PageIndex, and RegionIndex expose the PMA manager's
// page/region arithmetic. The source declares these protected, for the
// Hart's own benefit; here they hang off Privileged instead of reopening
// Memory's internals.
func (p Privileged) PageSize() uint64 { return p.m.attrs.PageSize() }

func (p Privileged) RegionSize() uint64 { return p.m.attrs.RegionSize() }

func (p Privileged) PageIndex(addr uint64) uint64 { return p.m.attrs.PageIndex(addr) }

func (p Privileged) RegionIndex(addr uint64) uint64 { return p.m.attrs.RegionIndex(addr) }
