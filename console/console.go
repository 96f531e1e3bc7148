// Package console provides the character devices the trap dispatcher and
// the memory-mapped keyboard registers talk to.
package console

// Console is a character input source and output sink. ReadChar blocks;
// Poll does not. The machine core depends only on this contract, not on
// the device behind it.
type Console interface {
	// ReadChar blocks until one input character is available.
	ReadChar() (c byte, err error)
	// Poll returns and consumes a pending input character, if any,
	// without blocking.
	Poll() (c byte, ok bool)
	// WriteChar writes one character to the output.
	WriteChar(c byte) error
	// WriteString writes a string to the output.
	WriteString(s string) error
}
