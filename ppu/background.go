package ppu

import "github.com/mtvoid/gones/palette"

const attributeTableOffset uint16 = 0x3C0

// renderPixel derives the background color at (x, y) from the active
// nametable, pattern table 0, and the attribute-selected palette, and
// writes it into the framebuffer. Sprite compositing is not modeled.
func (p *PPU) renderPixel(x, y int) {
	base := nametableBases[p.ctrl&0x03]

	ntX := x >> 3
	ntY := y >> 3
	tileX := x % 8
	tileY := y % 8

	entry := p.bus.Read(base + uint16(ntY*32+ntX))
	patternAddr := uint16(entry) << 4

	lo := p.bus.Read(patternAddr + uint16(tileY))
	hi := p.bus.Read(patternAddr + uint16(tileY) + 8)

	shift := uint(7 - tileX)
	tidbit := ((hi>>shift)&1)<<1 | (lo>>shift)&1

	attrByte := p.bus.Read(base + attributeTableOffset + uint16((ntY>>2)*8+(ntX>>2)))
	quadShift := quadrantShift(ntX, ntY)
	paletteIndex := (attrByte >> quadShift) & 0x03

	p.Framebuffer[y*Width+x] = p.resolveColor(paletteIndex, tidbit)
}

// quadrantShift picks which 2-bit field of the attribute byte covers
// tile (ntX, ntY) within its 32x32-pixel (4x4-tile) block.
func quadrantShift(ntX, ntY int) uint {
	switch {
	case ntX%4 < 2 && ntY%4 < 2:
		return 0
	case ntX%4 >= 2 && ntY%4 < 2:
		return 2
	case ntX%4 < 2 && ntY%4 >= 2:
		return 4
	default:
		return 6
	}
}

// resolveColor looks up the system palette entry for a background
// tidbit. Tidbit 0 always maps to the universal background color at
// 0x3F00, regardless of the selected palette.
func (p *PPU) resolveColor(paletteIndex, tidbit uint8) palette.Color {
	if tidbit == 0 {
		return palette.Lookup(p.bus.Read(paletteBase))
	}
	address := paletteBase + uint16(paletteIndex)<<2 + uint16(tidbit)
	return palette.Lookup(p.bus.Read(address))
}
