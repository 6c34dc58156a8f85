package loader

import (
	"bytes"
	"debug/elf"
	"encoding/binary"
)

// The fixtures below hand-assemble the smallest valid ELF32/ELF64 files
// debug/elf will parse, rather than depending on an external toolchain to
// produce real RISC-V binaries for the test suite to load.

type elfSeg struct {
	vaddr  uint64
	data   []byte
	memsz  uint64 // 0 means len(data)
}

type elfSym struct {
	name  string
	value uint64
	size  uint64
}

func elfIdent(class elf.Class) [16]byte {
	var id [16]byte
	id[0] = '\x7f'
	id[1] = 'E'
	id[2] = 'L'
	id[3] = 'F'
	id[4] = byte(class)
	id[5] = byte(elf.ELFDATA2LSB)
	id[6] = byte(elf.EV_CURRENT)
	return id
}

// buildMinimalELF returns a header-only file (no program or section
// headers) of the given class and machine: enough for elf.Open to report
// Class and Machine correctly before LoadElfFile examines either.
func buildMinimalELF(class elf.Class, machine elf.Machine) []byte {
	var buf bytes.Buffer
	ident := elfIdent(class)
	buf.Write(ident[:])
	write := func(v interface{}) { binary.Write(&buf, binary.LittleEndian, v) }
	if class == elf.ELFCLASS64 {
		write(uint16(elf.ET_EXEC))
		write(uint16(machine))
		write(uint32(elf.EV_CURRENT))
		write(uint64(0)) // e_entry
		write(uint64(0)) // e_phoff
		write(uint64(0)) // e_shoff
		write(uint32(0)) // e_flags
		write(uint16(64)) // e_ehsize
		write(uint16(56)) // e_phentsize
		write(uint16(0))  // e_phnum
		write(uint16(64)) // e_shentsize
		write(uint16(0))  // e_shnum
		write(uint16(0))  // e_shstrndx
	} else {
		write(uint16(elf.ET_EXEC))
		write(uint16(machine))
		write(uint32(elf.EV_CURRENT))
		write(uint32(0)) // e_entry
		write(uint32(0)) // e_phoff
		write(uint32(0)) // e_shoff
		write(uint32(0)) // e_flags
		write(uint16(52)) // e_ehsize
		write(uint16(32)) // e_phentsize
		write(uint16(0))  // e_phnum
		write(uint16(40)) // e_shentsize
		write(uint16(0))  // e_shnum
		write(uint16(0))  // e_shstrndx
	}
	return buf.Bytes()
}

// buildELF64 assembles an ELFCLASS64/EM_RISCV file with one PT_LOAD
// program header per segment (in order) and, if syms is non-empty, a
// .symtab/.strtab/.shstrtab section triple carrying one symbol per entry,
// in order.
func buildELF64(entry uint64, segs []elfSeg, syms []elfSym) []byte {
	const ehsize = 64
	const phentsize = 56
	const shentsize = 64
	const sym64size = 24

	phoff := uint64(ehsize)
	dataOff := phoff + uint64(len(segs))*phentsize

	segOffs := make([]uint64, len(segs))
	cur := dataOff
	for i, s := range segs {
		segOffs[i] = cur
		cur += uint64(len(s.data))
	}

	shstrtab := []byte{0}
	shstrtabNameOff := uint32(len(shstrtab))
	shstrtab = append(shstrtab, []byte(".shstrtab\x00")...)
	strtabNameOff := uint32(len(shstrtab))
	shstrtab = append(shstrtab, []byte(".strtab\x00")...)
	symtabNameOff := uint32(len(shstrtab))
	shstrtab = append(shstrtab, []byte(".symtab\x00")...)

	haveSyms := len(syms) > 0
	var shstrtabOff, strtabOff, symtabOff uint64
	var strtab []byte
	var symtabBuf bytes.Buffer
	symNameOffs := make([]uint32, len(syms))

	if haveSyms {
		shstrtabOff = cur
		cur += uint64(len(shstrtab))

		strtab = []byte{0}
		for i, s := range syms {
			symNameOffs[i] = uint32(len(strtab))
			strtab = append(strtab, []byte(s.name+"\x00")...)
		}
		strtabOff = cur
		cur += uint64(len(strtab))

		writeSym64(&symtabBuf, 0, 0, 0, 0, 0, 0)
		for i, s := range syms {
			const stInfoGlobalFunc = 0x12 // STB_GLOBAL<<4 | STT_FUNC
			writeSym64(&symtabBuf, symNameOffs[i], stInfoGlobalFunc, 0, 1, s.value, s.size)
		}
		symtabOff = cur
		cur += uint64(symtabBuf.Len())
	}

	var shoff uint64
	var shnum uint16
	if haveSyms {
		shoff = cur
		shnum = 4 // NULL, .shstrtab, .strtab, .symtab
	}

	var buf bytes.Buffer
	ident := elfIdent(elf.ELFCLASS64)
	buf.Write(ident[:])
	write := func(v interface{}) { binary.Write(&buf, binary.LittleEndian, v) }
	write(uint16(elf.ET_EXEC))
	write(uint16(elf.EM_RISCV))
	write(uint32(elf.EV_CURRENT))
	write(entry)
	write(phoff)
	write(shoff)
	write(uint32(0)) // e_flags
	write(uint16(ehsize))
	write(uint16(phentsize))
	write(uint16(len(segs)))
	write(uint16(shentsize))
	write(shnum)
	if haveSyms {
		write(uint16(1)) // e_shstrndx
	} else {
		write(uint16(0))
	}

	for i, s := range segs {
		memsz := s.memsz
		if memsz == 0 {
			memsz = uint64(len(s.data))
		}
		write(uint32(elf.PT_LOAD))
		write(uint32(elf.PF_R | elf.PF_W | elf.PF_X))
		write(segOffs[i])
		write(s.vaddr)
		write(s.vaddr) // p_paddr
		write(uint64(len(s.data)))
		write(memsz)
		write(uint64(1)) // p_align
	}

	for _, s := range segs {
		buf.Write(s.data)
	}

	if haveSyms {
		buf.Write(shstrtab)
		buf.Write(strtab)
		buf.Write(symtabBuf.Bytes())

		writeShdr64(&buf, 0, uint32(elf.SHT_NULL), 0, 0, 0, 0, 0, 0, 0)
		writeShdr64(&buf, shstrtabNameOff, uint32(elf.SHT_STRTAB), 0, shstrtabOff, uint64(len(shstrtab)), 0, 0, 1, 0)
		writeShdr64(&buf, strtabNameOff, uint32(elf.SHT_STRTAB), 0, strtabOff, uint64(len(strtab)), 0, 0, 1, 0)
		writeShdr64(&buf, symtabNameOff, uint32(elf.SHT_SYMTAB), 0, symtabOff, uint64(symtabBuf.Len()), 2, 1, 8, sym64size)
	}

	return buf.Bytes()
}

func writeSym64(buf *bytes.Buffer, nameOff uint32, info, other byte, shndx uint16, value, size uint64) {
	binary.Write(buf, binary.LittleEndian, nameOff)
	binary.Write(buf, binary.LittleEndian, info)
	binary.Write(buf, binary.LittleEndian, other)
	binary.Write(buf, binary.LittleEndian, shndx)
	binary.Write(buf, binary.LittleEndian, value)
	binary.Write(buf, binary.LittleEndian, size)
}

func writeShdr64(buf *bytes.Buffer, name, typ uint32, flags, offset, size uint64, link, info uint32, addralign, entsize uint64) {
	binary.Write(buf, binary.LittleEndian, name)
	binary.Write(buf, binary.LittleEndian, typ)
	binary.Write(buf, binary.LittleEndian, flags)
	binary.Write(buf, binary.LittleEndian, uint64(0)) // sh_addr
	binary.Write(buf, binary.LittleEndian, offset)
	binary.Write(buf, binary.LittleEndian, size)
	binary.Write(buf, binary.LittleEndian, link)
	binary.Write(buf, binary.LittleEndian, info)
	binary.Write(buf, binary.LittleEndian, addralign)
	binary.Write(buf, binary.LittleEndian, entsize)
}

type fakeTarget struct {
	size    uint64
	mapAll  bool
	mapped  map[uint64]bool
	store   []byte
	symbols map[string]Symbol
}

func newFakeTarget(size uint64, mapAll bool) *fakeTarget {
	return &fakeTarget{
		size:    size,
		mapAll:  mapAll,
		mapped:  make(map[uint64]bool),
		store:   make([]byte, size),
		symbols: make(map[string]Symbol),
	}
}

func (f *fakeTarget) markMapped(lo, hi uint64) {
	for a := lo; a < hi; a++ {
		f.mapped[a] = true
	}
}

func (f *fakeTarget) InBounds(addr, size uint64) bool {
	return size <= f.size && addr+size <= f.size && addr+size >= addr
}

func (f *fakeTarget) IsMapped(addr uint64) bool {
	if f.mapAll {
		return true
	}
	return f.mapped[addr]
}

func (f *fakeTarget) PokeBytes(addr uint64, data []byte) bool {
	if !f.InBounds(addr, uint64(len(data))) {
		return false
	}
	copy(f.store[addr:], data)
	return true
}

func (f *fakeTarget) SetSymbol(name string, addr, size uint64) {
	f.symbols[name] = Symbol{Addr: addr, Size: size}
}
