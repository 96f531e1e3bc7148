package console

import (
	"io"
)

// Buffer is an in-memory console backed by an io.Reader and io.Writer,
// used by tests and scripted runs.
type Buffer struct {
	Input  io.Reader
	Output io.Writer

	pending    byte
	hasPending bool
}

var _ Console = (*Buffer)(nil)

// ReadChar returns the next input character. A character already consumed
// by Poll is delivered first.
func (bc *Buffer) ReadChar() (c byte, err error) {
	if bc.hasPending {
		bc.hasPending = false
		c = bc.pending
		return
	}

	var one [1]byte
	_, err = io.ReadFull(bc.Input, one[:])
	if err != nil {
		err = ErrConsoleClosed
		return
	}

	c = one[0]
	return
}

// Poll consumes and returns the next input character if the input has one.
// On a drained reader it reports no key, so a scripted run can poll the
// keyboard status register without blocking.
func (bc *Buffer) Poll() (c byte, ok bool) {
	if !bc.hasPending {
		var one [1]byte
		n, err := bc.Input.Read(one[:])
		if err != nil || n == 0 {
			return
		}
		bc.pending = one[0]
		bc.hasPending = true
	}

	bc.hasPending = false
	c = bc.pending
	ok = true
	return
}

// WriteChar writes one character to the output.
func (bc *Buffer) WriteChar(c byte) (err error) {
	_, err = bc.Output.Write([]byte{c})
	return
}

// WriteString writes a string to the output.
func (bc *Buffer) WriteString(s string) (err error) {
	_, err = io.WriteString(bc.Output, s)
	return
}
