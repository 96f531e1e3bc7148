package console

import (
	"io"
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Terminal is the host console. Start switches a TTY input into raw mode
// (no echo, no line buffering) so single keystrokes reach the machine;
// Stop restores the saved settings. Pipes and files are left alone.
type Terminal struct {
	Input  *os.File
	Output io.Writer

	saved unix.Termios
	isTTY bool
	keys  chan byte
}

var _ Console = (*Terminal)(nil)

// NewTerminal returns a terminal console over stdin and stdout.
func NewTerminal() *Terminal {
	return &Terminal{
		Input:  os.Stdin,
		Output: os.Stdout,
	}
}

// Start configures the terminal and begins collecting keystrokes.
func (tc *Terminal) Start() (err error) {
	if term.IsTerminal(int(tc.Input.Fd())) {
		err = termios.Tcgetattr(tc.Input.Fd(), &tc.saved)
		if err != nil {
			return
		}

		raw := tc.saved
		raw.Lflag &^= unix.ICANON | unix.ECHO
		err = termios.Tcsetattr(tc.Input.Fd(), termios.TCSANOW, &raw)
		if err != nil {
			return
		}

		tc.isTTY = true
	}

	tc.keys = make(chan byte, 1)
	go tc.pump()
	return
}

// Stop restores the saved terminal settings.
func (tc *Terminal) Stop() {
	if tc.isTTY {
		termios.Tcsetattr(tc.Input.Fd(), termios.TCSANOW, &tc.saved)
		tc.isTTY = false
	}
}

// pump feeds keystrokes from the input into the key channel.
func (tc *Terminal) pump() {
	for {
		var one [1]byte
		n, err := tc.Input.Read(one[:])
		if err != nil {
			close(tc.keys)
			return
		}
		if n == 0 {
			continue
		}
		tc.keys <- one[0]
	}
}

// ReadChar blocks until a keystroke arrives.
func (tc *Terminal) ReadChar() (c byte, err error) {
	c, ok := <-tc.keys
	if !ok {
		err = ErrConsoleClosed
	}
	return
}

// Poll consumes and returns a pending keystroke without blocking.
func (tc *Terminal) Poll() (c byte, ok bool) {
	select {
	case c, ok = <-tc.keys:
	default:
	}
	return
}

// WriteChar writes one character to the output.
func (tc *Terminal) WriteChar(c byte) (err error) {
	_, err = tc.Output.Write([]byte{c})
	return
}

// WriteString writes a string to the output.
func (tc *Terminal) WriteString(s string) (err error) {
	_, err = io.WriteString(tc.Output, s)
	return
}
