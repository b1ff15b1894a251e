package ppu

import (
	"testing"

	"github.com/mtvoid/gones/palette"
)

type fakeBus struct {
	data      [0x4000]uint8
	nmiRaised int
}

func (b *fakeBus) Read(address uint16) uint8         { return b.data[address%0x4000] }
func (b *fakeBus) Write(address uint16, value uint8) { b.data[address%0x4000] = value }
func (b *fakeBus) RaiseNMI()                         { b.nmiRaised++ }

func newTestPPU() (*PPU, *fakeBus) {
	b := &fakeBus{}
	return New(b), b
}

func TestRegisterMirroring(t *testing.T) {
	p, _ := newTestPPU()
	p.Write(0x2001, 0x18)
	if got := p.mask; got != 0x18 {
		t.Fatalf("mask = %#x, want 0x18", got)
	}
	p.Write(0x3FF9, 0x00) // 0x3FF9 mirrors 0x2001
	if got := p.mask; got != 0x00 {
		t.Fatalf("mirrored write: mask = %#x, want 0x00", got)
	}
}

func TestPPUADDRDoubleWriteThenPPUDATA(t *testing.T) {
	p, b := newTestPPU()
	b.data[0x2345] = 0x42

	p.Write(RegPPUADDR, 0x23)
	p.Write(RegPPUADDR, 0x45)
	if p.vramAddress != 0x2345 {
		t.Fatalf("vramAddress = %#x, want 0x2345", p.vramAddress)
	}

	// First PPUDATA read returns the stale buffered byte, not 0x42.
	_ = p.Read(RegPPUDATA)
	got := p.Read(RegPPUDATA)
	if got != 0x42 {
		t.Fatalf("buffered PPUDATA read = %#x, want 0x42", got)
	}
}

func TestPPUADDRFirstWriteZeroIsNotIgnored(t *testing.T) {
	// Regression: a truthy check on the latch byte would treat a
	// first write of 0x00 as if no write had happened at all.
	p, _ := newTestPPU()
	p.Write(RegPPUADDR, 0x00)
	p.Write(RegPPUADDR, 0x10)
	if p.vramAddress != 0x0010 {
		t.Fatalf("vramAddress = %#x, want 0x0010", p.vramAddress)
	}
}

func TestPPUDATAIncrementMode(t *testing.T) {
	p, _ := newTestPPU()
	p.ctrl |= CtrlIncrementAll
	p.vramAddress = 0x2000
	p.Write(RegPPUDATA, 0xAB)
	if p.vramAddress != 0x2020 {
		t.Fatalf("vramAddress after +32 increment = %#x, want 0x2020", p.vramAddress)
	}
}

func TestPPUSTATUSClearsVBlankAndLatch(t *testing.T) {
	p, _ := newTestPPU()
	p.status |= StatusVBlank
	p.addrHasHi = true

	first := p.Read(RegPPUSTATUS)
	if first&StatusVBlank == 0 {
		t.Fatalf("first PPUSTATUS read should report VBlank set")
	}
	if p.addrHasHi {
		t.Fatalf("PPUSTATUS read should clear the PPUADDR write toggle")
	}

	second := p.Read(RegPPUSTATUS)
	if second&StatusVBlank != 0 {
		t.Fatalf("second PPUSTATUS read should report VBlank cleared")
	}
}

func TestCtrlNametableSelectUpdatesVramAddress(t *testing.T) {
	p, _ := newTestPPU()
	p.Write(RegPPUCTRL, 0x02)
	if p.vramAddress != 0x2800 {
		t.Fatalf("vramAddress = %#x, want 0x2800", p.vramAddress)
	}
}

func TestCtrlNMIEnableDuringVBlankRaisesImmediately(t *testing.T) {
	p, b := newTestPPU()
	p.status |= StatusVBlank
	p.Write(RegPPUCTRL, CtrlNMIEnable)
	if b.nmiRaised != 1 {
		t.Fatalf("nmiRaised = %d, want 1", b.nmiRaised)
	}
}

func TestDotScanlineWrap(t *testing.T) {
	p, _ := newTestPPU()
	p.scanline = preRenderScanline
	p.dot = dotsPerScanline - 1
	p.Tick()
	if p.scanline != 0 || p.dot != 0 {
		t.Fatalf("after wrap: scanline=%d dot=%d, want 0,0", p.scanline, p.dot)
	}
}

func TestVBlankSetAndNMIEmitted(t *testing.T) {
	p, b := newTestPPU()
	p.ctrl |= CtrlNMIEnable
	p.scanline = vblankStartScanline
	p.dot = 1
	p.Tick()
	if p.status&StatusVBlank == 0 {
		t.Fatalf("expected VBlank flag set at scanline=241 dot=1")
	}
	if b.nmiRaised != 1 {
		t.Fatalf("nmiRaised = %d, want 1", b.nmiRaised)
	}
	if !p.FrameReady {
		t.Fatalf("expected FrameReady after presenting the frame")
	}
}

func TestVBlankClearedAtPreRenderWrapBoundary(t *testing.T) {
	p, _ := newTestPPU()
	p.status |= StatusVBlank
	p.scanline = preRenderScanline
	p.dot = dotsPerScanline - 1
	p.Tick() // wraps to scanline 0, dot 0
	p.Tick() // scanline 0, dot 1: clears VBlank
	if p.status&StatusVBlank != 0 {
		t.Fatalf("expected VBlank cleared at scanline=0 dot=1")
	}
}

func TestBackgroundPixelUniversalColorOnTidbitZero(t *testing.T) {
	p, b := newTestPPU()
	b.data[0x3F00] = 0x10 // universal background color index

	p.mask |= MaskShowBG
	p.scanline = 0
	p.dot = 1 // visibleX=0, visibleY=0
	p.Tick()

	want := palette.Lookup(0x10)
	if p.Framebuffer[0] != want {
		t.Fatalf("pixel(0,0) = %+v, want %+v", p.Framebuffer[0], want)
	}
}

func TestSpriteAtDecodesAttributeByte(t *testing.T) {
	p, _ := newTestPPU()
	p.oam[0], p.oam[1], p.oam[2], p.oam[3] = 0x40, 0x07, 0xE2, 0x80

	s := p.SpriteAt(0)
	if s.Y != 0x40 || s.TileID != 0x07 || s.X != 0x80 {
		t.Fatalf("unexpected sprite decode: %+v", s)
	}
	if s.Palette != 0x02 || s.Prio != Behind || !s.FlipH || !s.FlipV {
		t.Fatalf("unexpected sprite attribute decode: %+v", s)
	}
}
