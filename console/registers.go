package console

import (
	"github.com/mtvoid/gones/addr"
	"github.com/mtvoid/gones/controller"
	"github.com/mtvoid/gones/ppu"
)

// ppuRegisterRegion adapts the PPU's own 8-register read/write pair
// (which already handles the 0x2000-0x2007 mirror internally) onto the
// CPU bus's 0x2000-0x3FFF window.
type ppuRegisterRegion struct {
	addr.Span
	ppu *ppu.PPU
}

func newPPURegisterRegion(p *ppu.PPU) *ppuRegisterRegion {
	return &ppuRegisterRegion{Span: addr.NewSpan(0x2000, 0x2007, 0x3FFF), ppu: p}
}

func (r *ppuRegisterRegion) Read(address uint16) uint8         { return r.ppu.Read(address) }
func (r *ppuRegisterRegion) Write(address uint16, value uint8) { r.ppu.Write(address, value) }

// controllerRegion adapts one Controller onto a single CPU address
// (0x4016 or 0x4017).
type controllerRegion struct {
	addr.Span
	controller *controller.Controller
}

func newControllerRegion(address uint16, c *controller.Controller) *controllerRegion {
	return &controllerRegion{Span: addr.NewSpan(address, address), controller: c}
}

func (r *controllerRegion) Read(uint16) uint8          { return r.controller.Read() }
func (r *controllerRegion) Write(_ uint16, value uint8) { r.controller.Write(value) }

// dmaSource is the CPU bus, read back by oamDMARegion to fetch the
// page being copied into OAM.
type dmaSource interface {
	Read(address uint16) uint8
}

// oamDMARegion implements the 0x4014 OAM DMA port: a single write
// copies 256 bytes starting at value<<8 from the CPU bus into PPU OAM.
// Real hardware stalls the CPU for 513-514 cycles during this; here the
// copy is instantaneous and no stall cycles are charged to the CPU.
type oamDMARegion struct {
	addr.Span
	ppu    *ppu.PPU
	source dmaSource
}

func newOAMDMARegion(p *ppu.PPU) *oamDMARegion {
	return &oamDMARegion{Span: addr.NewSpan(0x4014, 0x4015), ppu: p}
}

func (r *oamDMARegion) Read(uint16) uint8 { return 0 }

func (r *oamDMARegion) Write(address uint16, value uint8) {
	if address != 0x4014 || r.source == nil {
		return
	}
	base := uint16(value) << 8
	var page [256]uint8
	for i := range page {
		page[i] = r.source.Read(base + uint16(i))
	}
	r.ppu.WriteOAM(page)
}
