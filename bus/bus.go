// Package bus defines the collaborator the CPU core requires from its host.
//
// A Bus is the only way the core ever touches the outside world: one byte
// read, one byte write, one internal tick. The core never owns memory and
// never retains an address into it between calls.
package bus

// Bus is the memory and timing collaborator supplied to cpu.NewCPUFromBus.
// All memory areas accessible to the CPU implement this interface: a
// byte-addressed read and write over a 24-bit address space, plus an Idle
// tick the core reports once per cycle in which it does not touch memory,
// so a host can keep its own timing model in lockstep.
type Bus interface {
	// Read returns the byte at the given 24-bit address.
	Read(address uint32) uint8

	// Write stores value at the given 24-bit address.
	Write(address uint32, value uint8)

	// Idle is called once per internal cycle in which the core does not
	// touch the bus. waiting is true when the core is parked on WAI/STP
	// and the host is free to skip ahead until the next interrupt or reset.
	Idle(waiting bool)
}
