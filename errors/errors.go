// Package errors provides the small typed-error value used outside the CPU
// core: the core itself never returns an error (spec), but a Bus
// implementation or the monitor host harness needs something richer than a
// bare string when reporting an out-of-range access or a load failure.
//
// An Errno + Values pair rendered through a message table, scoped down to
// the handful of conditions this repository's own bus adapters and tooling
// can raise.
package errors

import "fmt"

// Errno identifies a specific error condition.
type Errno int

// Values carries the arguments substituted into the Errno's message.
type Values []interface{}

// Error conditions raised by the memmap and cmd/monitor packages.
const (
	UnmappedRead Errno = iota
	UnmappedWrite
	ProtectedWrite
	ImageTooLarge
)

var messages = map[Errno]string{
	UnmappedRead:   "read from unmapped address %06x",
	UnmappedWrite:  "write to unmapped address %06x",
	ProtectedWrite: "write to protected address %06x",
	ImageTooLarge:  "image of %d bytes does not fit in %d bytes of memory",
}

// Error is the error type raised by this repository's bus adapters and
// tooling.
type Error struct {
	Errno  Errno
	Values Values
}

// New creates an Error for the given Errno, with the arguments its message
// format expects.
func New(errno Errno, values ...interface{}) Error {
	return Error{Errno: errno, Values: values}
}

func (e Error) Error() string {
	return fmt.Sprintf(messages[e.Errno], e.Values...)
}

// Is reports whether err is an Error with the given Errno, so callers can
// use errors.Is(err, errors.New(UnmappedRead)) style checks without caring
// about the Values payload.
func (e Error) Is(target error) bool {
	t, ok := target.(Error)
	return ok && t.Errno == e.Errno
}
