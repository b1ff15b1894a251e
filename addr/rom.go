package addr

import "github.com/mtvoid/gones/internal/logx"

// ROM is a byte-backed addressable region loaded once by the cartridge
// loader. Writes are observable side-effect-free: logged, never
// persisted, per the WriteToROM diagnostic.
type ROM struct {
	Span
	data []uint8
}

// NewROM allocates a ROM region of the span's actual size. The backing
// store starts zeroed; the cartridge loader fills it via LoadAt.
func NewROM(start, end uint16, mirrorEnd ...uint16) *ROM {
	s := NewSpan(start, end, mirrorEnd...)
	return &ROM{Span: s, data: make([]uint8, s.ActualSize())}
}

func (r *ROM) Read(address uint16) uint8 {
	return r.data[r.Offset(address)]
}

// Write drops the value and logs the attempt; real hardware ROM cannot
// be written through the address bus.
func (r *ROM) Write(address uint16, value uint8) {
	logx.Warnf("write to ROM at 0x%04X dropped (value 0x%02X)", address, value)
}

// LoadAt copies bytes into the backing store starting at offset,
// bypassing the write-drop semantics above. Used once by the cartridge
// loader at construction time.
func (r *ROM) LoadAt(offset int, bytes []uint8) {
	copy(r.data[offset:], bytes)
}

// Size reports the backing store's capacity in bytes.
func (r *ROM) Size() int {
	return len(r.data)
}
