package cartridge

import (
	"bytes"
	"errors"
	"testing"
)

func buildImage(prgBlocks, chrBlocks int, fill byte) []byte {
	header := []byte{0x4E, 0x45, 0x53, 0x1A, byte(prgBlocks), byte(chrBlocks), 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	prg := bytes.Repeat([]byte{fill}, prgBlockSize*prgBlocks)
	chr := bytes.Repeat([]byte{fill + 1}, chrBlockSize*chrBlocks)
	image := append(append(header, prg...), chr...)
	return image
}

func TestLoadNROM128MirrorsIntoUpperBank(t *testing.T) {
	image := buildImage(1, 1, 0x42)
	c, err := Load(bytes.NewReader(image))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if got := c.PRG.Read(0x8000); got != 0x42 {
		t.Fatalf("PRG[0x8000] = %#x, want 0x42", got)
	}
	if got := c.PRG.Read(0xC000); got != 0x42 {
		t.Fatalf("PRG[0xC000] = %#x, want 0x42 (NROM-128 mirror)", got)
	}
}

func TestLoadNROM256FillsWholeWindow(t *testing.T) {
	image := buildImage(2, 1, 0x11)
	c, err := Load(bytes.NewReader(image))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if got := c.PRG.Read(0xFFFF); got != 0x11 {
		t.Fatalf("PRG[0xFFFF] = %#x, want 0x11", got)
	}
}

func TestLoadSkipsTrainer(t *testing.T) {
	header := []byte{0x4E, 0x45, 0x53, 0x1A, 1, 1, flag6Trainer, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	trainer := bytes.Repeat([]byte{0xFF}, trainerSize)
	prg := bytes.Repeat([]byte{0x55}, prgBlockSize)
	chr := bytes.Repeat([]byte{0x66}, chrBlockSize)
	image := append(append(append(header, trainer...), prg...), chr...)

	c, err := Load(bytes.NewReader(image))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if got := c.PRG.Read(0x8000); got != 0x55 {
		t.Fatalf("PRG[0x8000] = %#x, want 0x55 (trainer should have been skipped)", got)
	}
}

func TestLoadRejectsBadMagic(t *testing.T) {
	_, err := Load(bytes.NewReader([]byte("not an ines file at all")))
	if !errors.Is(err, ErrInvalidCartridge) {
		t.Fatalf("got err %v, want ErrInvalidCartridge", err)
	}
}
