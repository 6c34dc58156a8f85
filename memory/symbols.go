package memory

import (
	"fmt"
	"io"
	"sort"

	"github.com/luckidea/SweRV-ISS/loader"
)

// InBounds, IsMapped, PokeBytes, and SetSymbol satisfy loader.Target,
// letting LoadElfFile populate this Memory without any reference to its
// internal layout.

func (m *Memory) InBounds(addr, size uint64) bool {
	return size <= m.Size() && addr+size <= m.Size() && addr+size >= addr
}

func (m *Memory) IsMapped(addr uint64) bool {
	return addr < m.Size() && m.attrs.Get(addr).Mapped()
}

func (m *Memory) PokeBytes(addr uint64, data []byte) bool {
	if !m.InBounds(addr, uint64(len(data))) {
		m.setErr(ErrOutOfBounds)
		return false
	}
	copy(m.store[addr:], data)
	m.clearErr()
	return true
}

func (m *Memory) SetSymbol(name string, addr, size uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.symbols[name] = loader.Symbol{Addr: addr, Size: size}
}

// FindSymbol looks up name in the symbol table populated by LoadElfFile.
func (m *Memory) FindSymbol(name string) (loader.Symbol, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.symbols[name]
	return s, ok
}

// FindFunction returns the symbol whose [addr, addr+size) interval
// contains addr, if any. Tie-break among overlapping symbols is
// unspecified.
func (m *Memory) FindFunction(addr uint64) (string, loader.Symbol, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for name, s := range m.symbols {
		if s.Size == 0 {
			continue
		}
		if addr >= s.Addr && addr < s.Addr+s.Size {
			return name, s, true
		}
	}
	return "", loader.Symbol{}, false
}

// WriteSymbols writes the symbol table populated by LoadElfFile to w, one
// "name value" pair per line, sorted by name for reproducible output.
func (m *Memory) WriteSymbols(w io.Writer) error {
	m.mu.RLock()
	names := make([]string, 0, len(m.symbols))
	for name := range m.symbols {
		names = append(names, name)
	}
	m.mu.RUnlock()
	sort.Strings(names)

	for _, name := range names {
		s, _ := m.FindSymbol(name)
		if _, err := fmt.Fprintf(w, "%s 0x%x\n", name, s.Addr); err != nil {
			return err
		}
	}
	return nil
}

// LoadHexFile populates the backing store from path's simplified hex
// format. See package loader for the exact grammar. A failure is wrapped
// in ErrLoader so callers can test for it with errors.Is without
// depending on the loader package's own error text.
func (m *Memory) LoadHexFile(path string) error {
	return m.wrapLoaderErr(loader.LoadHexFile(path, m))
}

// LoadElfFile populates the backing store and symbol table from path's
// ELF image, enforcing the configured CheckUnmappedElf policy. A failure
// is wrapped in ErrLoader, as LoadHexFile's is.
func (m *Memory) LoadElfFile(path string, registerWidth int) (entry, end uint64, err error) {
	entry, end, err = loader.LoadElfFile(path, registerWidth, m, m.checkUnmappedE)
	return entry, end, m.wrapLoaderErr(err)
}
