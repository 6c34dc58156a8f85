// Command issmem is a small inspection tool over the memory subsystem: it
// builds a Memory from command-line region definitions, optionally loads
// a hex or ELF image into it, and either exits or drops into a raw-mode
// interactive peek/poke session on the controlling terminal.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/luckidea/SweRV-ISS/memory"
	"github.com/luckidea/SweRV-ISS/snapshot"
)

var (
	sizeFlag       = flag.String("size", "1M", "backing store size, e.g. 1M, 64K, 0x10000")
	pageSizeFlag   = flag.Uint64("page-size", 0, "page size in bytes, 0 uses the default")
	regionSizeFlag = flag.Uint64("region-size", 0, "region size in bytes, 0 uses the default")
	iccmFlag       = flag.String("iccm", "", "ICCM region as addr,size (0x-prefixed hex or decimal), e.g. 0x0,0x20000")
	dccmFlag       = flag.String("dccm", "", "DCCM region as addr,size (0x-prefixed hex or decimal)")
	mmrFlag        = flag.String("mmr", "", "MMR region as addr,size (0x-prefixed hex or decimal)")
	hexFlag        = flag.String("hex", "", "load a simplified hex image from this path")
	elfFlag        = flag.String("elf", "", "load an ELF image from this path")
	regWidthFlag   = flag.Int("reg-width", 64, "register width for ELF loading: 32 or 64")
	snapshotFlag   = flag.String("snapshot", "", "save a snapshot to this path after loading and exit")
	rangesFlag     = flag.String("ranges", "", "comma-separated lo-hi ranges (0x-prefixed hex or decimal) for -snapshot, e.g. 0x0-0x1000,0x2000-0x3000")
	interactive    = flag.Bool("i", false, "drop into a raw-mode interactive peek/poke session")
)

func parseSize(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	mult := uint64(1)
	switch {
	case strings.HasSuffix(s, "K") || strings.HasSuffix(s, "k"):
		mult = 1024
		s = s[:len(s)-1]
	case strings.HasSuffix(s, "M") || strings.HasSuffix(s, "m"):
		mult = 1024 * 1024
		s = s[:len(s)-1]
	case strings.HasSuffix(s, "G") || strings.HasSuffix(s, "g"):
		mult = 1024 * 1024 * 1024
		s = s[:len(s)-1]
	}
	base := 10
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
		base = 16
	}
	n, err := strconv.ParseUint(s, base, 64)
	if err != nil {
		return 0, err
	}
	return n * mult, nil
}

func parseAddrSize(spec string) (addr, size uint64, err error) {
	parts := strings.Split(spec, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected addr,size, got %q", spec)
	}
	addr, err = parseSize(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("bad address %q: %w", parts[0], err)
	}
	size, err = parseSize(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("bad size %q: %w", parts[1], err)
	}
	return addr, size, nil
}

func parseRanges(spec string) ([]snapshot.Range, error) {
	var ranges []snapshot.Range
	for _, tok := range strings.Split(spec, ",") {
		if tok == "" {
			continue
		}
		bounds := strings.Split(tok, "-")
		if len(bounds) != 2 {
			return nil, fmt.Errorf("expected lo-hi, got %q", tok)
		}
		lo, err := parseSize(bounds[0])
		if err != nil {
			return nil, fmt.Errorf("bad range start %q: %w", bounds[0], err)
		}
		hi, err := parseSize(bounds[1])
		if err != nil {
			return nil, fmt.Errorf("bad range end %q: %w", bounds[1], err)
		}
		ranges = append(ranges, snapshot.Range{Lo: lo, Hi: hi})
	}
	return ranges, nil
}

func main() {
	flag.Parse()

	size, err := parseSize(*sizeFlag)
	if err != nil {
		log.Fatalf("issmem: bad -size: %v", err)
	}

	m := memory.New(size, memory.WithPageSize(*pageSizeFlag), memory.WithRegionSize(*regionSizeFlag))

	if *iccmFlag != "" {
		addr, size, err := parseAddrSize(*iccmFlag)
		if err != nil {
			log.Fatalf("issmem: bad -iccm: %v", err)
		}
		if err := m.DefineICCM(addr, size); err != nil {
			log.Fatalf("issmem: DefineICCM: %v", err)
		}
	}
	if *dccmFlag != "" {
		addr, size, err := parseAddrSize(*dccmFlag)
		if err != nil {
			log.Fatalf("issmem: bad -dccm: %v", err)
		}
		if err := m.DefineDCCM(addr, size); err != nil {
			log.Fatalf("issmem: DefineDCCM: %v", err)
		}
	}
	if *mmrFlag != "" {
		addr, size, err := parseAddrSize(*mmrFlag)
		if err != nil {
			log.Fatalf("issmem: bad -mmr: %v", err)
		}
		if err := m.DefineMMRArea(addr, size); err != nil {
			log.Fatalf("issmem: DefineMMRArea: %v", err)
		}
	}
	m.FinishConfig(false)
	m.SetHartCount(1)

	if *hexFlag != "" {
		if err := m.LoadHexFile(*hexFlag); err != nil {
			log.Fatalf("issmem: LoadHexFile: %v", err)
		}
	}
	if *elfFlag != "" {
		entry, end, err := m.LoadElfFile(*elfFlag, *regWidthFlag)
		if err != nil {
			log.Fatalf("issmem: LoadElfFile: %v", err)
		}
		fmt.Printf("loaded %s: entry 0x%x, end 0x%x\n", *elfFlag, entry, end)
	}

	if *snapshotFlag != "" {
		ranges, err := parseRanges(*rangesFlag)
		if err != nil {
			log.Fatalf("issmem: bad -ranges: %v", err)
		}
		if err := snapshot.Save(*snapshotFlag, m, ranges); err != nil {
			log.Fatalf("issmem: Save: %v", err)
		}
		os.Exit(0)
	}

	if *interactive {
		if err := runInspector(m); err != nil {
			log.Fatalf("issmem: %v", err)
		}
		return
	}
}
