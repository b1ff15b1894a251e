package console

import (
	"bytes"
	"testing"

	"github.com/mtvoid/gones/palette"
	"github.com/mtvoid/gones/ppu"
)

// buildROM assembles a minimal one-bank iNES image: prg and chr are
// copied into the start of their respective banks, zero-padded to
// 16 KiB and 8 KiB.
func buildROM(prg, chr []byte) []byte {
	header := []byte{0x4E, 0x45, 0x53, 0x1A, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}

	prgBank := make([]byte, 16384)
	copy(prgBank, prg)

	chrBank := make([]byte, 8192)
	copy(chrBank, chr)

	image := append(append(header, prgBank...), chrBank...)
	return image
}

// nopROM returns a PRG bank filled with NOPs and a reset vector at
// 0x8000, with room to overlay a short program at the front.
func nopROM(program []byte) []byte {
	prg := bytes.Repeat([]byte{0xEA}, 16384)
	copy(prg, program)
	prg[0x3FFC] = 0x00 // reset vector low: bank offset 0x3FFC is CPU
	prg[0x3FFD] = 0x80 // address 0xFFFC via the NROM-128 upper mirror
	return prg
}

func mustLoad(t *testing.T, prg, chr []byte) *System {
	t.Helper()
	s, err := Load(bytes.NewReader(buildROM(prg, chr)))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return s
}

func TestSystemResetVectorsPC(t *testing.T) {
	s := mustLoad(t, nopROM(nil), nil)

	if s.CPU.PC != 0x8000 {
		t.Fatalf("PC = 0x%04X, want 0x8000", s.CPU.PC)
	}
	if s.CPU.SP != 0xFD {
		t.Fatalf("SP = 0x%02X, want 0xFD", s.CPU.SP)
	}
	if s.CPU.P != 0x34 {
		t.Fatalf("P = 0x%02X, want 0x34", s.CPU.P)
	}
}

func TestSystemNOPLoopAdvancesPC(t *testing.T) {
	s := mustLoad(t, nopROM(nil), nil)
	start := s.CPU.PC

	for i := 0; i < 20; i++ {
		s.CPU.Tick()
	}

	if want := start + 10; s.CPU.PC != want {
		t.Fatalf("PC = 0x%04X, want 0x%04X (10 NOPs executed)", s.CPU.PC, want)
	}
}

func TestSystemLDAThenSTARoundTrip(t *testing.T) {
	program := []byte{0xA9, 0x42, 0x8D, 0x00, 0x02, 0x00}
	s := mustLoad(t, nopROM(program), nil)

	for i := 0; i < 2+4; i++ {
		s.CPU.Tick()
	}

	if s.CPU.A != 0x42 {
		t.Fatalf("A = 0x%02X, want 0x42", s.CPU.A)
	}
	if got := s.CPUBus.Read(0x0200); got != 0x42 {
		t.Fatalf("RAM[0x0200] = 0x%02X, want 0x42", got)
	}
}

func TestSystemIndirectJMPPageWrapBug(t *testing.T) {
	program := []byte{0x6C, 0xFF, 0x02}
	s := mustLoad(t, nopROM(program), nil)
	s.CPUBus.Write(0x02FF, 0x34)
	s.CPUBus.Write(0x0200, 0x12)

	for i := 0; i < 5; i++ {
		s.CPU.Tick()
	}

	if s.CPU.PC != 0x1234 {
		t.Fatalf("PC = 0x%04X, want 0x1234", s.CPU.PC)
	}
}

func TestSystemVBlankRaisesNMIAcrossBuses(t *testing.T) {
	s := mustLoad(t, nopROM(nil), nil)
	s.CPUBus.Write(0x2000, ppu.CtrlNMIEnable)

	const maxSteps = 200000
	found := false
	for i := 0; i < maxSteps; i++ {
		s.Step()
		if s.PPU.Scanline() == 241 && s.PPU.Dot() == 2 {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("VBlank scanline never reached within %d steps", maxSteps)
	}

	if s.CPUBus.Read(0x2002)&ppu.StatusVBlank == 0 {
		t.Fatalf("PPUSTATUS VBlank bit not set after entering VBlank")
	}
	if !s.CPUBus.TakeNMI() {
		t.Fatalf("NMI line was not raised across the PPU/CPU bus boundary")
	}
}

func TestSystemBackgroundRendersTileUnderPalette(t *testing.T) {
	chr := make([]byte, 8192)
	chr[0x10] = 0x80 // tile 1, row 0 low plane: bit 7 set
	chr[0x18] = 0x00 // tile 1, row 0 high plane: clear

	s := mustLoad(t, nopROM(nil), chr)

	s.PPUBus.Write(0x2000, 1) // nametable (0,0) = tile index 1
	s.PPUBus.Write(0x3F01, 0x30)
	s.CPUBus.Write(0x2001, ppu.MaskShowBG)

	const maxSteps = 1000
	found := false
	for i := 0; i < maxSteps; i++ {
		s.Step()
		if s.PPU.Scanline() == 0 && s.PPU.Dot() == 2 {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("pixel (0,0) scanline never reached within %d steps", maxSteps)
	}

	want := palette.Lookup(0x30)
	if got := s.PPU.Framebuffer[0]; got != want {
		t.Fatalf("Framebuffer[0] = %+v, want %+v", got, want)
	}
}
