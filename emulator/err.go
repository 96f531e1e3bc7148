package emulator

import (
	"github.com/minivm/lc3/translate"
)

var f = translate.From

// ErrRuntime locates a runtime error at the program counter that faulted.
type ErrRuntime struct {
	Pc  uint16
	Err error
}

func (err *ErrRuntime) Error() string {
	return f("pc 0x%04x %v", err.Pc, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
