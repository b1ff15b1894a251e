// Command gones runs an iNES ROM through the console package under an
// ebiten window, with an optional interactive CPU debugger.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/mtvoid/gones/console"
	"github.com/mtvoid/gones/controller"
	"github.com/mtvoid/gones/internal/monitor"
	"github.com/mtvoid/gones/ppu"
)

var (
	romFile = flag.String("nes_rom", "", "Path to NES ROM to run.")
	debug   = flag.Bool("debug", false, "Run the interactive CPU debugger instead of the video window.")
)

func main() {
	flag.Parse()

	f, err := os.Open(*romFile)
	if err != nil {
		log.Fatalf("opening ROM: %v", err)
	}
	defer f.Close()

	sys, err := console.Load(f)
	if err != nil {
		log.Fatalf("loading ROM: %v", err)
	}

	if *debug {
		if err := monitor.Run(sys); err != nil {
			log.Fatalf("debugger: %v", err)
		}
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	go sys.Run(ctx)

	ebiten.SetWindowTitle("gones")
	ebiten.SetWindowSize(ppu.Width*3, ppu.Height*3)

	if err := ebiten.RunGame(&game{sys: sys}); err != nil {
		log.Fatal(err)
	}

	cancel()
}

// game adapts a console.System to the ebiten.Game interface: it maps
// the host keyboard onto controller 1 and blits the PPU's framebuffer
// onto the window each frame.
type game struct {
	sys    *console.System
	screen [ppu.Width * ppu.Height * 4]byte
}

var keyMap = map[ebiten.Key]controller.Button{
	ebiten.KeyZ:          controller.ButtonA,
	ebiten.KeyX:          controller.ButtonB,
	ebiten.KeyRightShift: controller.ButtonSelect,
	ebiten.KeyEnter:      controller.ButtonStart,
	ebiten.KeyArrowUp:    controller.ButtonUp,
	ebiten.KeyArrowDown:  controller.ButtonDown,
	ebiten.KeyArrowLeft:  controller.ButtonLeft,
	ebiten.KeyArrowRight: controller.ButtonRight,
}

func (g *game) Update() error {
	var mask controller.Button
	for key, button := range keyMap {
		if ebiten.IsKeyPressed(key) {
			mask |= button
		}
	}
	g.sys.Controller1.SetLiveButtons(uint8(mask))
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	for i, px := range g.sys.PPU.Framebuffer {
		g.screen[i*4+0] = px.R
		g.screen[i*4+1] = px.G
		g.screen[i*4+2] = px.B
		g.screen[i*4+3] = px.A
	}
	screen.WritePixels(g.screen[:])
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ppu.Width, ppu.Height
}
