// Package memory implements the RISC-V physical memory subsystem: a flat
// byte-addressable backing store gated by a per-page attribute map,
// memory-mapped register write-masking, per-hart last-write capture for
// trace emission, and the LR/SC reservation table that gives atomic
// instructions their cross-hart invalidation semantics.
package memory

import (
	"fmt"
	"sync"

	"github.com/luckidea/SweRV-ISS/internal/rlog"
	"github.com/luckidea/SweRV-ISS/loader"
	"github.com/luckidea/SweRV-ISS/pma"
)

// Word is the set of integer widths the typed access API supports.
type Word interface {
	uint8 | uint16 | uint32 | uint64
}

type lastWrite struct {
	size int // 0 means no pending write
	addr uint64
	nv   uint64
	pv   uint64
}

type reservation struct {
	addr  uint64
	size  uint64
	valid bool
}

// Memory owns the backing store, the PMA map, the MMR mask table, the
// symbol table, and the per-hart last-write and reservation slots for one
// address space shared by every hart thread in the simulation.
type Memory struct {
	store []byte
	attrs *pma.Manager
	log   *rlog.Logger

	hartCount      int
	checkUnmappedE bool

	mu      sync.RWMutex // guards symbols (config-time write, read-mostly after)
	symbols map[string]loader.Symbol

	// amoMu serializes an entire AMO read-modify-write. lrMu serializes
	// reservation-table mutation. AMO may acquire lrMu from inside its
	// critical section to cascade-invalidate; lrMu never acquires amoMu.
	amoMu sync.Mutex
	lrMu  sync.Mutex

	lastWrites   []lastWrite
	reservations []reservation

	errMu   sync.Mutex // guards lastErr; every data-path method can run on any hart's thread
	lastErr error
}

// Option configures a Memory at construction.
type Option func(*config)

type config struct {
	pageSize   uint64
	regionSize uint64
	logger     *rlog.Logger
}

// WithPageSize overrides the default 4 KiB page size. Must be a power of two.
func WithPageSize(n uint64) Option { return func(c *config) { c.pageSize = n } }

// WithRegionSize overrides the default 256 MiB region size. Must be a power of two.
func WithRegionSize(n uint64) Option { return func(c *config) { c.regionSize = n } }

// WithLogger installs a logger in place of the default stderr logger.
func WithLogger(l *rlog.Logger) Option { return func(c *config) { c.logger = l } }

// New constructs a Memory over sizeBytes of backing store, rounded down to
// a multiple of 4. No hart may issue a typed access until FinishConfig has
// been called.
func New(sizeBytes uint64, opts ...Option) *Memory {
	sizeBytes &^= 3 // round down to a multiple of 4, per the data model
	c := &config{}
	for _, opt := range opts {
		opt(c)
	}
	m := &Memory{
		store:   make([]byte, sizeBytes),
		attrs:   pma.New(sizeBytes, c.pageSize, c.regionSize),
		log:     c.logger,
		symbols: make(map[string]loader.Symbol),
	}
	if m.log == nil {
		m.log = rlog.New(nil, rlog.Error|rlog.Warn)
	}
	return m
}

// Size returns the configured size of the backing store in bytes.
func (m *Memory) Size() uint64 { return uint64(len(m.store)) }

// SetHartCount allocates the per-hart last-write and reservation slots. It
// must be called before any hart issues a write, poke, or reservation
// primitive, and should not be called again once harts are running.
func (m *Memory) SetHartCount(n int) {
	m.hartCount = n
	m.lastWrites = make([]lastWrite, n)
	m.reservations = make([]reservation, n)
}

// CheckUnmappedElf controls whether LoadElfFile rejects a program segment
// that lands in unmapped memory (flag == true) or loads it anyway.
func (m *Memory) CheckUnmappedElf(flag bool) { m.checkUnmappedE = flag }

// DefineICCM, DefineDCCM, DefineMMRArea, and DefineMMRMask delegate to the
// PMA manager for the underlying placement and alignment checks; see package
// pma for their exact semantics. Failures are wrapped in ErrConfig so
// callers can test for a configuration-time failure with errors.Is without
// depending on the pma package's own error type.
func (m *Memory) DefineICCM(addr, size uint64) error {
	return m.wrapConfigErr(m.attrs.DefineICCM(addr, size))
}
func (m *Memory) DefineDCCM(addr, size uint64) error {
	return m.wrapConfigErr(m.attrs.DefineDCCM(addr, size))
}
func (m *Memory) DefineMMRArea(addr, size uint64) error {
	return m.wrapConfigErr(m.attrs.DefineMMRArea(addr, size))
}
func (m *Memory) DefineMMRMask(addr uint64, mask uint32) error {
	return m.wrapConfigErr(m.attrs.DefineMMRMask(addr, mask))
}

func (m *Memory) wrapConfigErr(err error) error {
	if err == nil {
		return nil
	}
	wrapped := fmt.Errorf("%w: %v", ErrConfig, err)
	m.log.Errorf("%v", wrapped)
	return wrapped
}

func (m *Memory) wrapLoaderErr(err error) error {
	if err == nil {
		return nil
	}
	wrapped := fmt.Errorf("%w: %v", ErrLoader, err)
	m.log.Errorf("%v", wrapped)
	return wrapped
}
func (m *Memory) FinishConfig(iccmReadWrite bool) { m.attrs.FinishConfig(iccmReadWrite) }

// GetPMA exposes the attribute record for addr, mainly for diagnostics and
// tests; the access-path methods consult it internally.
func (m *Memory) GetPMA(addr uint64) pma.Attr { return m.attrs.Get(addr) }

// LastError returns the reason the most recent failing call on this Memory
// failed. It is not reset between calls and is not attributed to any one
// hart; with multiple harts sharing this Memory, read it immediately after
// a false or error return on the same goroutine, before another hart's
// access can overwrite it.
func (m *Memory) LastError() error {
	m.errMu.Lock()
	defer m.errMu.Unlock()
	return m.lastErr
}

func (m *Memory) setErr(err error) bool {
	m.errMu.Lock()
	m.lastErr = err
	m.errMu.Unlock()
	return false
}

func (m *Memory) clearErr() {
	m.errMu.Lock()
	m.lastErr = nil
	m.errMu.Unlock()
}

func wordSize[T Word]() int {
	var z T
	switch any(z).(type) {
	case uint8:
		return 1
	case uint16:
		return 2
	case uint32:
		return 4
	default:
		return 8
	}
}
