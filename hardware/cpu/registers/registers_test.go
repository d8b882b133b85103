package registers_test

import (
	"testing"

	"github.com/birchlane-systems/w65c816/hardware/cpu/registers"
)

func TestStatusValueRoundTrip(t *testing.T) {
	want := registers.Status{N: true, V: false, M: true, Xf: false, D: true, I: false, Z: true, C: false}
	var got registers.Status
	got.FromValue(want.Value())
	if got != want {
		t.Errorf("round trip through Value/FromValue: got %+v, want %+v", got, want)
	}
}

func TestStatusValuePacking(t *testing.T) {
	s := registers.Status{N: true, C: true}
	if got, want := s.Value(), uint8(0x81); got != want {
		t.Errorf("Value() = %#02x, want %#02x", got, want)
	}
}

func TestWideLoadLowPreservesHighByte(t *testing.T) {
	r := registers.NewWide("A", 0x1234)
	r.LoadLow(0xff)
	if got, want := r.Value(), uint16(0x12ff); got != want {
		t.Errorf("LoadLow altered the high byte: got %#04x, want %#04x", got, want)
	}
}

func TestWideMaskHigh(t *testing.T) {
	r := registers.NewWide("X", 0xabcd)
	r.MaskHigh()
	if got, want := r.Value(), uint16(0x00cd); got != want {
		t.Errorf("MaskHigh() = %#04x, want %#04x", got, want)
	}
}
