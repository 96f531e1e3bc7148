package emulator

import (
	"bytes"
	"encoding/binary"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/minivm/lc3/console"
	"github.com/minivm/lc3/cpu"
)

// makeImage serializes an origin and instruction words into the big-endian
// image format the loader expects.
func makeImage(origin uint16, codes ...cpu.Code) (data []byte) {
	data = binary.BigEndian.AppendUint16(data, origin)
	for _, code := range codes {
		data = binary.BigEndian.AppendUint16(data, uint16(code))
	}
	return
}

// newTestEmulator returns an emulator on an in-memory console.
func newTestEmulator(input string) (emu *Emulator, output *bytes.Buffer) {
	output = &bytes.Buffer{}
	emu = NewEmulator(&console.Buffer{
		Input:  strings.NewReader(input),
		Output: output,
	})
	return
}

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	emu, _ := newTestEmulator("")

	assert.False(emu.Verbose)
	assert.True(emu.Cpu.Running)
	assert.Equal(cpu.PC_START, emu.Cpu.Reg[cpu.R_PC])
}

func TestEmulatorRun(t *testing.T) {
	assert := assert.New(t)

	// ld r0, 'H'; trap out; trap halt; .fill 'H'
	emu, output := newTestEmulator("")
	err := emu.LoadImage(makeImage(cpu.PC_START,
		cpu.MakeCodeMem(cpu.OP_LD, cpu.R_R0, 2),
		cpu.MakeCodeTrap(cpu.TRAP_OUT),
		cpu.MakeCodeTrap(cpu.TRAP_HALT),
		cpu.Code('H'),
	))
	assert.NoError(err)

	err = emu.Run()
	assert.NoError(err)
	assert.False(emu.Cpu.Running)
	assert.Equal("HHALT\n", output.String())
	assert.Equal(3, emu.Ticks())
}

func TestEmulatorTickAfterHalt(t *testing.T) {
	assert := assert.New(t)

	emu, _ := newTestEmulator("")
	err := emu.LoadImage(makeImage(cpu.PC_START, cpu.MakeCodeTrap(cpu.TRAP_HALT)))
	assert.NoError(err)

	done, err := emu.Tick()
	assert.NoError(err)
	assert.True(done)

	// Further ticks report done without executing.
	done, err = emu.Tick()
	assert.NoError(err)
	assert.True(done)
	assert.Equal(1, emu.Ticks())
}

func TestEmulatorRuntimeError(t *testing.T) {
	assert := assert.New(t)

	// An unrecognized trap vector is fatal and carries the faulting pc.
	emu, _ := newTestEmulator("")
	err := emu.LoadImage(makeImage(cpu.PC_START, cpu.MakeCodeTrap(cpu.TrapVector(0x7F))))
	assert.NoError(err)

	err = emu.Run()
	assert.Error(err)
	assert.ErrorIs(err, cpu.ErrTrap(0))

	var rterr *ErrRuntime
	assert.True(errors.As(err, &rterr))
	assert.Equal(cpu.PC_START, rterr.Pc)
}

func TestEmulatorLoadBadImage(t *testing.T) {
	assert := assert.New(t)

	emu, _ := newTestEmulator("")

	err := emu.LoadImage(nil)
	assert.ErrorIs(err, cpu.ErrImageEmpty)

	err = emu.LoadImage([]byte{0x30, 0x00, 0x12})
	assert.ErrorIs(err, cpu.ErrImageTruncated)

	// An image past the end of memory loads nothing at all.
	err = emu.LoadImage(makeImage(0xFFFF, cpu.Code(0xAAAA), cpu.Code(0xBBBB)))
	assert.ErrorIs(err, cpu.ErrImageOverflow)
	for at, value := range emu.Cpu.Mem {
		if value != 0 {
			t.Fatalf("memory modified at 0x%04x", at)
		}
	}
}

func TestEmulatorEcho(t *testing.T) {
	assert := assert.New(t)

	// getc; out; trap halt — echoes one input character.
	emu, output := newTestEmulator("Z")
	err := emu.LoadImage(makeImage(cpu.PC_START,
		cpu.MakeCodeTrap(cpu.TRAP_GETC),
		cpu.MakeCodeTrap(cpu.TRAP_OUT),
		cpu.MakeCodeTrap(cpu.TRAP_HALT),
	))
	assert.NoError(err)

	err = emu.Run()
	assert.NoError(err)
	assert.Equal("ZHALT\n", output.String())
}
