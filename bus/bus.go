// Package bus implements the address-decoded shared bus that
// multiplexes reads and writes across the addressable regions it owns
// references to, plus the single-purpose NMI signal the PPU and CPU
// share. A full subscribe/emit event channel was considered and
// dropped in favor of one atomic flag — the hardware has exactly one
// event worth modeling, so pub/sub would be ceremony without payoff.
package bus

import (
	"sort"
	"sync/atomic"

	"github.com/mtvoid/gones/addr"
	"github.com/mtvoid/gones/internal/logx"
)

// NMILine is the NMI signal the PPU raises at the start of vertical
// blank and the CPU samples at its next instruction boundary. It is
// shared between the CPU-side and PPU-side buses of a system so that,
// conceptually, it remains "the bus event channel" even though the two
// address spaces are otherwise independent.
type NMILine struct {
	pending atomic.Bool
}

// Raise sets the line. Safe to call from the PPU's tick.
func (n *NMILine) Raise() { n.pending.Store(true) }

// Take reports whether the line was raised since the last Take, and
// clears it. The CPU calls this once per instruction fetch.
func (n *NMILine) Take() bool { return n.pending.Swap(false) }

// Bus decodes 16-bit addresses across an ordered set of regions.
type Bus struct {
	regions []addr.Region
	nmi     *NMILine
}

// Option configures a Bus at construction time.
type Option func(*Bus)

// WithNMILine shares an NMILine across buses (e.g. the CPU and PPU
// buses of the same system) instead of each allocating its own.
func WithNMILine(line *NMILine) Option {
	return func(b *Bus) { b.nmi = line }
}

// New builds a Bus over the given regions, sorted for decoding
// immediately.
func New(regions []addr.Region, opts ...Option) *Bus {
	b := &Bus{regions: append([]addr.Region(nil), regions...)}
	for _, opt := range opts {
		opt(b)
	}
	if b.nmi == nil {
		b.nmi = &NMILine{}
	}
	b.Reset()
	return b
}

// Reset re-sorts the region list by descending start address. The
// first region whose start address is <= the requested address
// services a read or write; overlapping regions resolve in favor of
// the highest base address.
func (b *Bus) Reset() {
	sort.SliceStable(b.regions, func(i, j int) bool {
		return b.regions[i].Start() > b.regions[j].Start()
	})
}

// Read returns the byte at address, or the UnmappedBusAccess sentinel
// 0x00 if no region claims it.
func (b *Bus) Read(address uint16) uint8 {
	if r := b.resolve(address); r != nil {
		return r.Read(address)
	}
	logx.Debugf("unmapped bus read at 0x%04X", address)
	return 0x00
}

// Write stores value at address, or drops it silently if no region
// claims the address.
func (b *Bus) Write(address uint16, value uint8) {
	if r := b.resolve(address); r != nil {
		r.Write(address, value)
		return
	}
	logx.Debugf("unmapped bus write at 0x%04X dropped (value 0x%02X)", address, value)
}

func (b *Bus) resolve(address uint16) addr.Region {
	for _, r := range b.regions {
		if r.Start() <= address {
			return r
		}
	}
	return nil
}

// RaiseNMI signals vertical blank start. Called by the PPU.
func (b *Bus) RaiseNMI() { b.nmi.Raise() }

// TakeNMI reports and clears a pending NMI. Called by the CPU at its
// instruction-fetch boundary.
func (b *Bus) TakeNMI() bool { return b.nmi.Take() }

// NMILineRef exposes the shared signal so a second bus (e.g. the CPU bus
// paired with this PPU bus) can be constructed with WithNMILine(b.NMILineRef()).
func (b *Bus) NMILineRef() *NMILine { return b.nmi }
