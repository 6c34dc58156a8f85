// Package pma models the physical-memory-attribute map: per-page access
// rights (read/write/exec), the tightly-coupled memory regions (ICCM,
// DCCM) and the memory-mapped register windows, plus their write masks.
package pma

import (
	"fmt"
	"math/bits"
)

// Attr is the set of access rights and special-region markers associated
// with a single page. The zero value is an unmapped page.
type Attr struct {
	Read  bool
	Write bool
	Exec  bool
	MMR   bool
	ICCM  bool
	DCCM  bool
}

// Mapped reports whether the page can be used for any kind of access.
func (a Attr) Mapped() bool { return a.Read || a.Write || a.Exec }

// External reports whether the page's backing storage is outside the
// core (neither DCCM nor a memory-mapped register window).
func (a Attr) External() bool { return !a.DCCM && !a.MMR }

// ConfigError reports a failure configuring a CCM or MMR region. Tag
// names which kind of region failed ("iccm", "dccm", "pic").
type ConfigError struct {
	Tag    string
	Addr   uint64
	Size   uint64
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s region at 0x%x size 0x%x: %s", e.Tag, e.Addr, e.Size, e.Reason)
}

const (
	DefaultPageSize   = 4 * 1024
	DefaultRegionSize = 256 * 1024 * 1024
)

// Manager owns the page attribute table and the MMR write-mask table for
// a single address space. It is configured before any hart begins
// executing; Get and MMRMask are safe to call concurrently once
// FinishConfig has returned, since no further mutation occurs.
type Manager struct {
	size        uint64
	pageSize    uint64
	pageShift   uint
	regionSize  uint64
	regionCount uint64

	pages map[uint64]Attr   // keyed by page index; absent == unmapped
	masks map[uint64]uint32 // keyed by word-aligned MMR address

	iccmReadWrite bool
	finished      bool

	// ccmPages tracks which page indices have been claimed by a CCM/MMR
	// area, for the overlap check in checkOverlap.
	ccmPages map[uint64]string // page index -> tag that claimed it
}

// New constructs a Manager for an address space of sizeBytes, partitioned
// by pageSize and regionSize (both must be powers of two; pageSize and
// regionSize default to pma.DefaultPageSize / pma.DefaultRegionSize when
// zero).
func New(sizeBytes, pageSize, regionSize uint64) *Manager {
	if pageSize == 0 {
		pageSize = DefaultPageSize
	}
	if regionSize == 0 {
		regionSize = DefaultRegionSize
	}
	regionCount := (sizeBytes + regionSize - 1) / regionSize
	if regionCount == 0 {
		regionCount = 1
	}
	return &Manager{
		size:        sizeBytes,
		pageSize:    pageSize,
		pageShift:   uint(bits.Len64(pageSize)) - 1,
		regionSize:  regionSize,
		regionCount: regionCount,
		pages:       make(map[uint64]Attr),
		masks:       make(map[uint64]uint32),
		ccmPages:    make(map[uint64]string),
	}
}

// PageSize returns the configured page size in bytes.
func (m *Manager) PageSize() uint64 { return m.pageSize }

// RegionSize returns the configured region size in bytes.
func (m *Manager) RegionSize() uint64 { return m.regionSize }

// PageIndex returns the page number containing addr.
func (m *Manager) PageIndex(addr uint64) uint64 { return addr >> m.pageShift }

// RegionIndex returns the region number containing addr.
func (m *Manager) RegionIndex(addr uint64) uint64 {
	regionShift := uint(bits.Len64(m.regionSize)) - 1
	return addr >> regionShift
}

// RegionCount returns the number of regions spanned by the configured
// address space.
func (m *Manager) RegionCount() uint64 { return m.regionCount }

// Get is the total PMA lookup function: addresses outside the configured
// space, or pages with no attributes defined, return the zero Attr.
func (m *Manager) Get(addr uint64) Attr {
	if addr >= m.size {
		return Attr{}
	}
	return m.pages[m.PageIndex(addr)]
}

// MMRMask returns the write mask associated with the word containing
// addr. Non-MMR addresses, and MMR addresses with no explicit mask
// defined, return all-ones; callers must gate on Attr.MMR first.
func (m *Manager) MMRMask(addr uint64) uint32 {
	word := addr &^ 3
	if mask, ok := m.masks[word]; ok {
		return mask
	}
	return 0xFFFFFFFF
}

func (m *Manager) pageAligned(addr, size uint64) bool {
	return addr%m.pageSize == 0 && size%m.pageSize == 0
}

func (m *Manager) pagesOf(addr, size uint64) []uint64 {
	first := m.PageIndex(addr)
	last := m.PageIndex(addr + size - 1)
	out := make([]uint64, 0, last-first+1)
	for p := first; p <= last; p++ {
		out = append(out, p)
	}
	return out
}

func (m *Manager) checkOverlap(tag string, addr, size uint64) error {
	if !m.pageAligned(addr, size) {
		return &ConfigError{Tag: tag, Addr: addr, Size: size, Reason: "address or size is not page-aligned"}
	}
	for _, p := range m.pagesOf(addr, size) {
		if owner, ok := m.ccmPages[p]; ok {
			return &ConfigError{Tag: tag, Addr: addr, Size: size,
				Reason: fmt.Sprintf("overlaps previously defined %s region", owner)}
		}
	}
	return nil
}

func (m *Manager) claim(tag string, addr, size uint64, set func(*Attr)) error {
	if err := m.checkOverlap(tag, addr, size); err != nil {
		return err
	}
	for _, p := range m.pagesOf(addr, size) {
		a := m.pages[p]
		set(&a)
		m.pages[p] = a
		m.ccmPages[p] = tag
	}
	return nil
}

// DefineICCM marks [addr, addr+size) as instruction closely-coupled
// memory: readable and executable, writable only if FinishConfig is
// later called with iccmReadWrite true.
func (m *Manager) DefineICCM(addr, size uint64) error {
	return m.claim("iccm", addr, size, func(a *Attr) {
		a.Read = true
		a.Exec = true
		a.ICCM = true
	})
}

// DefineDCCM marks [addr, addr+size) as data closely-coupled memory:
// readable and writable.
func (m *Manager) DefineDCCM(addr, size uint64) error {
	return m.claim("dccm", addr, size, func(a *Attr) {
		a.Read = true
		a.Write = true
		a.DCCM = true
	})
}

// DefineMMRArea marks [addr, addr+size) as a memory-mapped register
// window: readable and writable (at word granularity only, enforced by
// the memory package, not here).
func (m *Manager) DefineMMRArea(addr, size uint64) error {
	return m.claim("pic", addr, size, func(a *Attr) {
		a.Read = true
		a.Write = true
		a.MMR = true
	})
}

// DefineMMRMask sets the write mask for the word containing addr.
// Returns an error if addr does not fall within a previously-defined MMR
// area.
func (m *Manager) DefineMMRMask(addr uint64, mask uint32) error {
	attr := m.Get(addr)
	if !attr.MMR {
		return &ConfigError{Tag: "pic", Addr: addr, Reason: "address is not within a defined MMR area"}
	}
	m.masks[addr&^3] = mask
	return nil
}

// FinishConfig seals the map. iccmReadWrite controls whether ICCM pages
// are also writable; DCCM pages are always writable under this model (a
// configurable read-only DCCM policy is left to a future revision, since
// no caller in this codebase exercises it).
func (m *Manager) FinishConfig(iccmReadWrite bool) {
	m.iccmReadWrite = iccmReadWrite
	if iccmReadWrite {
		for p, a := range m.pages {
			if a.ICCM {
				a.Write = true
				m.pages[p] = a
			}
		}
	}
	m.finished = true
}

// Finished reports whether FinishConfig has been called.
func (m *Manager) Finished() bool { return m.finished }
