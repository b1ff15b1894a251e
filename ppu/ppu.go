// Package ppu implements the NES 2C02 picture processing unit: the
// 341x262 dot/scanline state machine, its CPU-visible register file at
// 0x2000-0x2007, and background tile/attribute/palette resolution into
// an RGBA framebuffer.
package ppu

import "github.com/mtvoid/gones/palette"

const (
	Width  = 256
	Height = 240
)

const (
	dotsPerScanline     = 341
	scanlinesPerFrame   = 262
	visibleScanlines    = 240
	vblankStartScanline = 241
	preRenderScanline   = 261
)

// Register addresses, as exposed to the CPU bus at 0x2000-0x2007.
const (
	RegPPUCTRL   uint16 = 0x2000
	RegPPUMASK   uint16 = 0x2001
	RegPPUSTATUS uint16 = 0x2002
	RegOAMADDR   uint16 = 0x2003
	RegOAMDATA   uint16 = 0x2004
	RegPPUSCROLL uint16 = 0x2005
	RegPPUADDR   uint16 = 0x2006
	RegPPUDATA   uint16 = 0x2007
)

// PPUCTRL bit flags.
const (
	CtrlNametableX   uint8 = 1 << 0
	CtrlNametableY   uint8 = 1 << 1
	CtrlIncrementAll uint8 = 1 << 2
	CtrlSpriteTable  uint8 = 1 << 3
	CtrlBGTable      uint8 = 1 << 4
	CtrlSpriteHeight uint8 = 1 << 5
	CtrlMasterSlave  uint8 = 1 << 6
	CtrlNMIEnable    uint8 = 1 << 7
)

// PPUMASK bit flags.
const (
	MaskGreyscale   uint8 = 1 << 0
	MaskShowBGLeft  uint8 = 1 << 1
	MaskShowSprLeft uint8 = 1 << 2
	MaskShowBG      uint8 = 1 << 3
	MaskShowSprites uint8 = 1 << 4
	MaskEmphasizeR  uint8 = 1 << 5
	MaskEmphasizeG  uint8 = 1 << 6
	MaskEmphasizeB  uint8 = 1 << 7
)

// PPUSTATUS bit flags.
const (
	StatusSpriteOverflow uint8 = 1 << 5
	StatusSprite0Hit     uint8 = 1 << 6
	StatusVBlank         uint8 = 1 << 7
)

const paletteBase uint16 = 0x3F00

var nametableBases = [4]uint16{0x2000, 0x2400, 0x2800, 0x2C00}

// Bus is the PPU's own address space: pattern tables (CHR), nametable
// VRAM, and palette RAM. It is distinct from the CPU bus; the only
// thing crossing between them is the NMI line.
type Bus interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
	RaiseNMI()
}

// PPU holds the dot/scanline counters, register file, OAM, and the
// presented framebuffer.
type PPU struct {
	bus Bus

	scanline int
	dot      int

	ctrl   uint8
	mask   uint8
	status uint8

	oamAddr uint8
	oam     [256]uint8

	vramAddress uint16
	addrLatchHi uint8
	addrHasHi   bool

	readBuffer uint8

	Framebuffer [Width * Height]palette.Color
	FrameReady  bool
}

// New constructs a PPU wired to its VRAM/CHR/palette bus.
func New(bus Bus) *PPU {
	p := &PPU{bus: bus}
	p.Reset()
	return p
}

// Reset restores power-on register state. The dot/scanline position
// resets to the start of the pre-render line.
func (p *PPU) Reset() {
	p.scanline = preRenderScanline
	p.dot = 0
	p.ctrl = 0
	p.mask = 0
	p.status = 0
	p.oamAddr = 0
	p.vramAddress = 0
	p.addrLatchHi = 0
	p.addrHasHi = false
	p.readBuffer = 0
	p.FrameReady = false
}

// Read services a CPU access to one of the eight mirrored registers.
func (p *PPU) Read(address uint16) uint8 {
	switch registerFor(address) {
	case RegPPUSTATUS:
		result := (p.status & 0xE0) | (p.readBuffer & 0x1F)
		p.status &^= StatusVBlank
		p.addrHasHi = false
		return result
	case RegOAMDATA:
		return p.oam[p.oamAddr]
	case RegPPUDATA:
		return p.readData()
	default:
		return 0
	}
}

// Write services a CPU access to one of the eight mirrored registers.
func (p *PPU) Write(address uint16, value uint8) {
	switch registerFor(address) {
	case RegPPUCTRL:
		p.writeCtrl(value)
	case RegPPUMASK:
		p.mask = value
	case RegOAMADDR:
		p.oamAddr = value
	case RegOAMDATA:
		p.oam[p.oamAddr] = value
		p.oamAddr++
	case RegPPUSCROLL:
		// Fine scroll is not modeled; NROM static screens never
		// depend on mid-frame scroll writes.
	case RegPPUADDR:
		p.writeAddr(value)
	case RegPPUDATA:
		p.writeData(value)
	}
}

// registerFor reduces any CPU address in 0x2000-0x3FFF to its base
// register, per the 8-byte mirror.
func registerFor(address uint16) uint16 {
	return 0x2000 + (address-0x2000)%8
}

func (p *PPU) writeCtrl(value uint8) {
	prevNametable := p.ctrl & 0x03
	wasNMIEnabled := p.ctrl&CtrlNMIEnable != 0
	p.ctrl = value

	if value&0x03 != prevNametable {
		p.vramAddress = nametableBases[value&0x03]
	}

	if !wasNMIEnabled && p.ctrl&CtrlNMIEnable != 0 && p.status&StatusVBlank != 0 {
		p.bus.RaiseNMI()
	}
}

func (p *PPU) writeAddr(value uint8) {
	if !p.addrHasHi {
		p.addrLatchHi = value & 0x3F
		p.addrHasHi = true
		return
	}
	p.vramAddress = uint16(p.addrLatchHi)<<8 | uint16(value)
	p.addrHasHi = false
}

func (p *PPU) readData() uint8 {
	address := p.vramAddress
	var result uint8
	if address >= paletteBase {
		result = p.bus.Read(address)
	} else {
		result = p.readBuffer
	}
	p.readBuffer = p.bus.Read(address)
	p.incrementAddress()
	return result
}

func (p *PPU) writeData(value uint8) {
	p.bus.Write(p.vramAddress, value)
	p.incrementAddress()
}

func (p *PPU) incrementAddress() {
	if p.ctrl&CtrlIncrementAll != 0 {
		p.vramAddress += 32
	} else {
		p.vramAddress++
	}
}

// WriteOAM is the OAM DMA entry point: the CPU bus copies a 256-byte
// page here in one shot rather than through 256 individual OAMDATA
// writes.
func (p *PPU) WriteOAM(page [256]uint8) {
	p.oam = page
}

// Tick advances the picture generator by one dot.
func (p *PPU) Tick() {
	if p.scanline < visibleScanlines && p.dot >= 1 && p.dot <= 256 {
		if p.mask&MaskShowBG != 0 {
			p.renderPixel(p.dot-1, p.scanline)
		}
	}

	if p.scanline == preRenderScanline && p.dot == 0 {
		p.status &^= StatusSprite0Hit
	}

	if p.scanline == vblankStartScanline && p.dot == 1 {
		p.status |= StatusVBlank
		p.FrameReady = true
		if p.ctrl&CtrlNMIEnable != 0 {
			p.bus.RaiseNMI()
		}
	}

	p.advance()

	if p.scanline == 0 && p.dot == 1 {
		p.status &^= StatusVBlank
	}
}

func (p *PPU) advance() {
	p.dot++
	if p.dot >= dotsPerScanline {
		p.dot = 0
		p.scanline++
		if p.scanline >= scanlinesPerFrame {
			p.scanline = 0
		}
	}
}

// Scanline and Dot expose the current position, for tests and debuggers.
func (p *PPU) Scanline() int { return p.scanline }
func (p *PPU) Dot() int      { return p.dot }
