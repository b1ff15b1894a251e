package console

import (
	"github.com/mtvoid/gones/addr"
	"github.com/mtvoid/gones/cartridge"
)

const nametableVRAMSize = 2048

// nametableRegion backs the 0x2000-0x3EFF nametable window with the
// PPU's 2 KiB of onboard VRAM, folding the four logical nametables
// down to two physical ones per the cartridge's mirroring mode.
type nametableRegion struct {
	addr.Span
	ram       [nametableVRAMSize]uint8
	mirroring uint8
}

func newNametableRegion(mirroring uint8) *nametableRegion {
	return &nametableRegion{
		Span:      addr.NewSpan(0x2000, 0x2FFF, 0x3EFF),
		mirroring: mirroring,
	}
}

func (n *nametableRegion) Read(address uint16) uint8 {
	return n.ram[n.physicalOffset(address)]
}

func (n *nametableRegion) Write(address uint16, value uint8) {
	n.ram[n.physicalOffset(address)] = value
}

// physicalOffset maps a logical nametable address (relative to 0x2000,
// with any value up to 0x3EFF wrapping through the 0x3000 mirror of
// 0x2000-0x2EFF) onto one of the two physical 1 KiB nametables the NES
// actually has VRAM for.
func (n *nametableRegion) physicalOffset(address uint16) int {
	a := (address - 0x2000) % 0x1000

	switch n.mirroring {
	case cartridge.MirrorVertical:
		return int(a % 0x800)
	case cartridge.MirrorFourScreen:
		// No mapper-provided extra VRAM is modeled; fold onto the
		// two physical nametables rather than panic on a ROM that
		// declares four-screen mirroring.
		return int(a % 0x800)
	default: // MirrorHorizontal
		if a >= 0x800 {
			return 0x400 + int((a-0x800)%0x400)
		}
		return int(a % 0x400)
	}
}
