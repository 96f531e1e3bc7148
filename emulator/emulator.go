// Package emulator ties the LC-3 cpu to a console device and drives the
// fetch-execute loop.
package emulator

import (
	"github.com/minivm/lc3/cpu"
)

// Emulator owns the machine for the life of a run.
type Emulator struct {
	Verbose bool // If set, enables verbose logging.
	*cpu.Cpu
}

// NewEmulator creates a machine wired to the given console.
func NewEmulator(con cpu.Console) (emu *Emulator) {
	emu = &Emulator{
		Cpu: cpu.NewCpu(con),
	}

	return
}

// LoadImage parses a program image and loads it into memory. The load is
// all-or-nothing: a bad image leaves memory untouched.
func (emu *Emulator) LoadImage(data []byte) (err error) {
	img, err := cpu.ParseImage(data)
	if err != nil {
		return
	}

	err = emu.Cpu.Mem.LoadImage(img)
	return
}

// Ticks returns the instructions executed since reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// Tick executes a single instruction. done reports that the machine has
// halted.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	pc := emu.Cpu.Reg[cpu.R_PC]
	defer func() {
		if err != nil {
			err = &ErrRuntime{Pc: pc, Err: err}
		}
	}()

	if !emu.Cpu.Running {
		done = true
		return
	}

	err = emu.Cpu.Tick()
	if err != nil {
		return
	}

	done = !emu.Cpu.Running
	return
}

// Run executes until the program halts or a cycle fails. A cycle failure
// is fatal: it reflects a malformed image, not a transient condition.
func (emu *Emulator) Run() (err error) {
	for {
		var done bool
		done, err = emu.Tick()
		if err != nil || done {
			return
		}
	}
}
