package controller

import "testing"

func TestShiftOrder(t *testing.T) {
	c := New()
	c.SetLiveButtons(uint8(ButtonA | ButtonStart | ButtonRight))
	c.Write(0x01) // strobe high
	c.Write(0x00) // strobe low: latches and resets index

	want := []uint8{1, 0, 0, 1, 0, 0, 0, 1}
	for i, w := range want {
		if got := c.Read(); got != w {
			t.Fatalf("read %d: got %d, want %d", i, got, w)
		}
	}
}

func TestNinthReadWrapsToButtonA(t *testing.T) {
	c := New()
	c.SetLiveButtons(0xFF)
	c.Write(0x01)
	c.Write(0x00)
	for i := 0; i < 8; i++ {
		c.Read()
	}
	if got := c.Read(); got != 1 {
		t.Fatalf("9th read = %d, want 1", got)
	}
}

func TestStrobeHighAlwaysReturnsButtonA(t *testing.T) {
	c := New()
	c.SetLiveButtons(uint8(ButtonA))
	c.Write(0x01)
	if got := c.Read(); got != 1 {
		t.Fatalf("strobe-high read = %d, want 1 (button A held)", got)
	}
	if got := c.Read(); got != 1 {
		t.Fatalf("repeated strobe-high read = %d, want 1", got)
	}
}

func TestLiveButtonsChangeIgnoredUntilRestrobe(t *testing.T) {
	c := New()
	c.SetLiveButtons(uint8(ButtonA))
	c.Write(0x01)
	c.Write(0x00)
	c.SetLiveButtons(0) // release after latching
	if got := c.Read(); got != 1 {
		t.Fatalf("read after release but before restrobe = %d, want 1 (latched snapshot)", got)
	}
}
