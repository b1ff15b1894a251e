package console

import "github.com/mtvoid/gones/addr"

// stubRegion answers reads with zero and drops writes. It covers the
// APU registers and the disabled I/O / cartridge SRAM window, neither
// of which this emulator models.
type stubRegion struct {
	addr.Span
}

func newStub(start, end uint16) *stubRegion {
	return &stubRegion{Span: addr.NewSpan(start, end)}
}

func (s *stubRegion) Read(uint16) uint8      { return 0 }
func (s *stubRegion) Write(uint16, uint8) {}
