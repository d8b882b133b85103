// Package memmap supplies a whole-address-space bus.Bus implementation.
//
// original_source/src/test.cpp drives the reference core against nothing
// more than a flat 64KB byte slice. Flat generalises that to the core's
// full 24-bit address space (every access is masked to 24 bits, so none is
// out of range), adds optional write protection for ROM regions, logs
// writes to protected ranges through the errors/logger packages instead of
// panicking, and rejects an image too large to load — a convenience for cmd/monitor and for
// package-level tests that want more than a bare byte-slice mock.
//
// Flat is not a memory map: it does not model mirroring, chip select, or
// memory-mapped peripherals. Those belong to a surrounding system-on-chip
// this repository has no part of.
package memmap

import (
	"github.com/birchlane-systems/w65c816/errors"
	"github.com/birchlane-systems/w65c816/logger"
)

// AddressSpace is the full 24-bit address range the core can ever present.
const AddressSpace = 1 << 24

// Flat is a byte-slice bus.Bus covering the entire 24-bit address space.
type Flat struct {
	data      []uint8
	protected []addrRange
}

type addrRange struct {
	lo, hi uint32 // inclusive
}

// NewFlat creates a zeroed Flat bus.
func NewFlat() *Flat {
	return &Flat{data: make([]uint8, AddressSpace)}
}

// LoadAt copies image into the bus starting at address, returning an error
// if it would run past the top of the address space.
func (f *Flat) LoadAt(address uint32, image []byte) error {
	if uint64(address)+uint64(len(image)) > AddressSpace {
		return errors.New(errors.ImageTooLarge, len(image), AddressSpace-int(address))
	}
	copy(f.data[address:], image)
	return nil
}

// Protect marks [lo, hi] (inclusive) read-only. Writes inside a protected
// range are logged and discarded rather than applied.
func (f *Flat) Protect(lo, hi uint32) {
	f.protected = append(f.protected, addrRange{lo: lo & 0xffffff, hi: hi & 0xffffff})
}

func (f *Flat) isProtected(address uint32) bool {
	for _, r := range f.protected {
		if address >= r.lo && address <= r.hi {
			return true
		}
	}
	return false
}

// Read implements bus.Bus.
func (f *Flat) Read(address uint32) uint8 {
	return f.data[address&0xffffff]
}

// Write implements bus.Bus.
func (f *Flat) Write(address uint32, value uint8) {
	address &= 0xffffff
	if f.isProtected(address) {
		logger.Log("memmap", errors.New(errors.ProtectedWrite, address).Error())
		return
	}
	f.data[address] = value
}

// Idle implements bus.Bus. Flat has no internal timing concerns of its own.
func (f *Flat) Idle(waiting bool) {
	if waiting {
		logger.Log("memmap", "core parked, waiting for interrupt or reset")
	}
}
