package cartridge

import (
	"errors"
	"fmt"
	"io"

	"github.com/mtvoid/gones/addr"
	"github.com/mtvoid/gones/internal/logx"
)

// ErrInvalidCartridge is returned when the image's magic bytes don't
// match "NES\x1A". An image too short for its declared PRG/CHR sizes
// yields the underlying read error, wrapped, instead.
var ErrInvalidCartridge = errors.New("cartridge: invalid iNES image")

const (
	trainerSize  = 512
	prgBlockSize = 16384
	chrBlockSize = 8192
)

const (
	prgWindowStart uint16 = 0x8000
	prgWindowEnd   uint16 = 0xFFFF
	chrWindowStart uint16 = 0x0000
	chrWindowEnd   uint16 = 0x1FFF
)

// Cartridge is a loaded iNES image: the decoded header plus the PRG
// and CHR ROM regions ready to be wired onto the CPU and PPU buses.
type Cartridge struct {
	Header Header
	PRG    *addr.ROM
	CHR    *addr.ROM
}

// Load reads one iNES image from r. Only mapper 0 (NROM) executes
// correctly; other mapper numbers are decoded but not banked.
func Load(r io.Reader) (*Cartridge, error) {
	header := make([]byte, headerSize)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, fmt.Errorf("cartridge: reading header: %w", err)
	}

	h, err := parseHeader(header)
	if err != nil {
		return nil, err
	}
	if h.Mapper != 0 {
		logx.Warnf("mapper %d is not implemented; treating PRG/CHR as fixed NROM banks", h.Mapper)
	}

	if h.HasTrainer {
		if _, err := io.CopyN(io.Discard, r, trainerSize); err != nil {
			return nil, fmt.Errorf("cartridge: skipping trainer: %w", err)
		}
	}

	prgBytes := make([]byte, prgBlockSize*int(h.PRGBlocks))
	if _, err := io.ReadFull(r, prgBytes); err != nil {
		return nil, fmt.Errorf("cartridge: reading PRG ROM: %w", err)
	}
	if h.PRGBlocks == 1 {
		// NROM-128: the single 16 KiB bank is mirrored into the
		// upper half of the 32 KiB CPU window.
		prgBytes = append(prgBytes, prgBytes...)
	}

	chrBytes := make([]byte, chrBlockSize*int(h.CHRBlocks))
	if len(chrBytes) > 0 {
		if _, err := io.ReadFull(r, chrBytes); err != nil {
			return nil, fmt.Errorf("cartridge: reading CHR ROM: %w", err)
		}
	}

	prg := addr.NewROM(prgWindowStart, prgWindowEnd)
	prg.LoadAt(0, prgBytes)

	chr := addr.NewROM(chrWindowStart, chrWindowEnd)
	chr.LoadAt(0, chrBytes)

	return &Cartridge{Header: h, PRG: prg, CHR: chr}, nil
}
