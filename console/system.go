// Package console wires the CPU, PPU, cartridge, controllers, and the
// two address buses that connect them into one runnable NES.
package console

import (
	"context"
	"fmt"
	"io"

	"github.com/mtvoid/gones/addr"
	"github.com/mtvoid/gones/bus"
	"github.com/mtvoid/gones/cartridge"
	"github.com/mtvoid/gones/clock"
	"github.com/mtvoid/gones/controller"
	"github.com/mtvoid/gones/cpu"
	"github.com/mtvoid/gones/ppu"
)

const (
	cpuDivider = 3
	ppuDivider = 1
)

// System owns every component of one emulated console: the clock, the
// CPU and PPU and their independent buses, the loaded cartridge, and
// the two controller ports.
type System struct {
	CPU *cpu.CPU
	PPU *ppu.PPU

	CPUBus *bus.Bus
	PPUBus *bus.Bus

	Controller1 *controller.Controller
	Controller2 *controller.Controller

	cart *cartridge.Cartridge

	clock *clock.Clock
	oam   *oamDMARegion
}

// New constructs a System from an already-loaded cartridge. The CPU
// and PPU buses share one NMILine, reproducing the single bus event
// the hardware actually has.
func New(cart *cartridge.Cartridge) *System {
	s := &System{
		cart:        cart,
		Controller1: controller.New(),
		Controller2: controller.New(),
		clock:       clock.New(),
	}

	nametable := newNametableRegion(cart.Header.Mirroring)
	paletteRAM := addr.NewRAM(0x3F00, 0x3F1F, 0x3FFF)

	ppuRegions := []addr.Region{cart.CHR, nametable, paletteRAM}
	s.PPUBus = bus.New(ppuRegions)
	s.PPU = ppu.New(s.PPUBus)

	ram := addr.NewRAM(0x0000, 0x07FF, 0x1FFF)
	ppuRegs := newPPURegisterRegion(s.PPU)
	s.oam = newOAMDMARegion(s.PPU)
	ctrl1 := newControllerRegion(0x4016, s.Controller1)
	ctrl2 := newControllerRegion(0x4017, s.Controller2)
	apuStub := newStub(0x4000, 0x4013)
	ioStub := newStub(0x4018, 0x7FFF)

	cpuRegions := []addr.Region{
		ram, ppuRegs, apuStub, s.oam, ctrl1, ctrl2, ioStub, cart.PRG,
	}
	s.CPUBus = bus.New(cpuRegions, bus.WithNMILine(s.PPUBus.NMILineRef()))
	s.oam.source = s.CPUBus

	s.CPU = cpu.New(s.CPUBus)

	s.clock.Register(ppuDivider, clock.ClockOffset, s.PPU.Tick)
	s.clock.Register(cpuDivider, clock.ClockOffset, s.CPU.Tick)

	return s
}

// Load reads an iNES image from r and builds a System around it.
func Load(r io.Reader) (*System, error) {
	cart, err := cartridge.Load(r)
	if err != nil {
		return nil, fmt.Errorf("console: %w", err)
	}
	return New(cart), nil
}

// Reset re-sorts both buses and resets the CPU and PPU, as if the
// console's reset button had been pressed with a cartridge seated.
func (s *System) Reset() {
	s.CPUBus.Reset()
	s.PPUBus.Reset()
	s.CPU.Reset()
	s.PPU.Reset()
}

// Step advances the clock by one master cycle (one PPU dot, and one
// CPU cycle every third call).
func (s *System) Step() { s.clock.Step() }

// Run drives the clock continuously until ctx is canceled or Stop is
// called, yielding to the host on the clock's normal batch schedule.
func (s *System) Run(ctx context.Context) {
	s.clock.Start(ctx, clock.DefaultYieldInterval, clock.DefaultYieldDelay)
}

// Stop requests that Run return at the next batch boundary.
func (s *System) Stop() { s.clock.Stop() }

// StepFrame advances the clock until the PPU reports a freshly
// presented frame, consuming the flag in the process.
func (s *System) StepFrame(ctx context.Context) {
	for !s.PPU.FrameReady {
		select {
		case <-ctx.Done():
			return
		default:
			s.Step()
		}
	}
	s.PPU.FrameReady = false
}
