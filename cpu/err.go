package cpu

import (
	"errors"

	"github.com/minivm/lc3/translate"
)

var f = translate.From

var (
	// Image loader errors
	ErrImageEmpty     = errors.New(f("image empty"))
	ErrImageTruncated = errors.New(f("image has a truncated word"))
	ErrImageOverflow  = errors.New(f("image overflows memory"))

	// Machine errors
	ErrOpcodeInvalid   = errors.New(f("opcode invalid"))
	ErrRegisterInvalid = errors.New(f("register invalid"))
	ErrMemoryRange     = errors.New(f("address out of range"))
)

// ErrOpcode tags an execution error with the offending instruction word.
type ErrOpcode Code

func (eo ErrOpcode) Error() string {
	return f("bad opcode 0x%04x %v", uint16(eo), Code(eo).Op().String())
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

// ErrTrap is an unrecognized trap vector.
type ErrTrap TrapVector

func (et ErrTrap) Error() string {
	return f("bad trap vector 0x%02x", int(et))
}

func (et ErrTrap) Is(err error) (ok bool) {
	_, ok = err.(ErrTrap)
	return
}
