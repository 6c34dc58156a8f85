package loader

import (
	"debug/elf"
	"fmt"
	"io"
)

// Target is what LoadElfFile needs from the memory it is populating:
// bounds and mapping queries, a bulk byte-range store, and a place to
// deposit discovered symbols.
type Target interface {
	InBounds(addr, size uint64) bool
	IsMapped(addr uint64) bool
	PokeBytes(addr uint64, data []byte) bool
	SetSymbol(name string, addr, size uint64)
}

func registerWidthClass(width int) (elf.Class, error) {
	switch width {
	case 32:
		return elf.ELFCLASS32, nil
	case 64:
		return elf.ELFCLASS64, nil
	default:
		return 0, fmt.Errorf("loader: register width must be 32 or 64, got %d", width)
	}
}

// LoadElfFile copies every PT_LOAD program segment's bytes to its virtual
// address, in the order the program headers appear in the file, then
// merges the file's symbol table into t (last loaded wins on a name
// collision). entry is the file's declared entry point; end is the
// highest vaddr+size reached by any loaded segment.
func LoadElfFile(path string, registerWidth int, t Target, checkUnmapped bool) (entry, end uint64, err error) {
	wantClass, err := registerWidthClass(registerWidth)
	if err != nil {
		return 0, 0, err
	}

	f, err := elf.Open(path)
	if err != nil {
		if _, ok := err.(*elf.FormatError); ok {
			return 0, 0, fmt.Errorf("loader: %s: %w: not an ELF file", path, ErrNotELF)
		}
		return 0, 0, fmt.Errorf("loader: open %s: %w", path, err)
	}
	defer f.Close()

	if f.Machine != elf.EM_RISCV {
		return 0, 0, fmt.Errorf("loader: %s: %w: machine is %s, not EM_RISCV", path, ErrNotRISCV, f.Machine)
	}
	if f.Class != wantClass {
		return 0, 0, fmt.Errorf("loader: %s: %w: file class %s does not match register width %d", path, ErrClassMismatch, f.Class, registerWidth)
	}

	for _, prog := range f.Progs {
		if prog.Type != elf.PT_LOAD {
			continue
		}
		data := make([]byte, prog.Filesz)
		if _, err := io.ReadFull(prog.Open(), data); err != nil {
			return 0, 0, fmt.Errorf("loader: %s: reading segment at 0x%x: %w", path, prog.Vaddr, err)
		}
		if !t.InBounds(prog.Vaddr, uint64(len(data))) {
			return 0, 0, fmt.Errorf("loader: %s: segment at 0x%x extends out of bounds", path, prog.Vaddr)
		}
		if checkUnmapped {
			for i := uint64(0); i < uint64(len(data)); i++ {
				if !t.IsMapped(prog.Vaddr + i) {
					return 0, 0, fmt.Errorf("loader: %s: segment at 0x%x targets unmapped address 0x%x", path, prog.Vaddr, prog.Vaddr+i)
				}
			}
		}
		if !t.PokeBytes(prog.Vaddr, data) {
			return 0, 0, fmt.Errorf("loader: %s: store of segment at 0x%x rejected", path, prog.Vaddr)
		}
		if top := prog.Vaddr + prog.Memsz; top > end {
			end = top
		}
	}

	syms, err := f.Symbols()
	if err != nil && err != elf.ErrNoSymbols {
		return 0, 0, fmt.Errorf("loader: %s: reading symbols: %w", path, err)
	}
	for _, s := range syms {
		if s.Name == "" {
			continue
		}
		t.SetSymbol(s.Name, s.Value, s.Size)
	}

	return f.Entry, end, nil
}

// ElfAddressBounds reports the lowest and highest virtual addresses
// spanned by the file's PT_LOAD segments, without touching any live
// memory.
func ElfAddressBounds(path string) (min, max uint64, err error) {
	f, err := elf.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("loader: open %s: %w", path, err)
	}
	defer f.Close()

	first := true
	for _, prog := range f.Progs {
		if prog.Type != elf.PT_LOAD {
			continue
		}
		lo, hi := prog.Vaddr, prog.Vaddr+prog.Memsz
		if first || lo < min {
			min = lo
		}
		if hi > max {
			max = hi
		}
		first = false
	}
	return min, max, nil
}

// CheckElfFile reports the file's ELF class and whether its machine is
// EM_RISCV, without touching any live memory.
func CheckElfFile(path string) (is32, is64, isRISCV bool, err error) {
	f, err := elf.Open(path)
	if err != nil {
		return false, false, false, fmt.Errorf("loader: open %s: %w", path, err)
	}
	defer f.Close()
	return f.Class == elf.ELFCLASS32, f.Class == elf.ELFCLASS64, f.Machine == elf.EM_RISCV, nil
}

// IsSymbolInElf reports whether name appears in the file's symbol table.
func IsSymbolInElf(path, name string) (bool, error) {
	f, err := elf.Open(path)
	if err != nil {
		return false, fmt.Errorf("loader: open %s: %w", path, err)
	}
	defer f.Close()
	syms, err := f.Symbols()
	if err != nil {
		if err == elf.ErrNoSymbols {
			return false, nil
		}
		return false, fmt.Errorf("loader: %s: reading symbols: %w", path, err)
	}
	for _, s := range syms {
		if s.Name == name {
			return true, nil
		}
	}
	return false, nil
}
