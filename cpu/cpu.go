package cpu

import (
	"errors"
	"fmt"
	"log"

	"github.com/minivm/lc3/console"
)

// Console is the character I/O device the trap dispatcher and the
// memory-mapped keyboard talk to.
type Console console.Console

// PC_START is the conventional program load address.
const PC_START = uint16(0x3000)

// Cpu is the simulation context for the LC-3 machine: register file,
// memory, and console device.
type Cpu struct {
	Verbose bool // Set to enable per-instruction logging.

	Reg     Registers
	Mem     *Memory
	Console Console

	Running bool // Cleared by the HALT trap.
	Ticks   int  // Instructions executed since reset.
}

// NewCpu creates a machine with zeroed memory, attached to a console.
func NewCpu(con Console) (cpu *Cpu) {
	cpu = &Cpu{
		Mem:     &Memory{},
		Console: con,
	}
	cpu.Reset()

	return
}

// Reset clears the register file, points the PC at the conventional load
// address, and marks the machine running. Memory is left alone so that a
// loaded image survives.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	clear(cpu.Reg[:])
	cpu.Reg[R_PC] = PC_START
	cpu.Running = true
	cpu.Ticks = 0
}

// String returns the current machine state as a string.
func (cpu *Cpu) String() (text string) {
	for reg := R_R0; reg <= R_R7; reg++ {
		text += fmt.Sprintf("% 5v: %04X\n", reg, cpu.Reg[reg])
	}
	text += fmt.Sprintf("% 5v: %04X\n", R_PC, cpu.Reg[R_PC])
	text += fmt.Sprintf("% 5v: %v\n", R_COND, cpu.Reg.Cond())

	return
}

// memRead reads addr, servicing the memory-mapped keyboard registers.
// A read of KBSR polls the console; if a key is pending it is latched
// into KBDR and the ready bit set. A read of KBDR releases the latch.
func (cpu *Cpu) memRead(addr uint16) (value uint16, err error) {
	switch addr {
	case MMIO_KBSR:
		if cpu.Mem[MMIO_KBSR]&KBSR_READY == 0 {
			if c, ok := cpu.Console.Poll(); ok {
				cpu.Mem[MMIO_KBSR] = KBSR_READY
				cpu.Mem[MMIO_KBDR] = uint16(c)
			}
		}
	case MMIO_KBDR:
		cpu.Mem[MMIO_KBSR] &^= KBSR_READY
	}

	return cpu.Mem.Read(int(addr))
}

// memWrite writes addr, ignoring stores to the keyboard registers.
func (cpu *Cpu) memWrite(addr, value uint16) (err error) {
	if addr == MMIO_KBSR || addr == MMIO_KBDR {
		return
	}

	return cpu.Mem.Write(int(addr), value)
}

// setRegister writes a destination register and recomputes the condition
// flags from the written value.
func (cpu *Cpu) setRegister(reg Register, value uint16) (err error) {
	err = cpu.Reg.Write(reg, value)
	if err != nil {
		return
	}

	err = cpu.Reg.SetFlags(reg)
	return
}

// FetchCode reads the instruction word at PC and advances PC past it.
// The PC advances before execution, so relative offsets are always
// computed from the advanced PC.
func (cpu *Cpu) FetchCode() (code Code, err error) {
	word, err := cpu.memRead(cpu.Reg[R_PC])
	if err != nil {
		return
	}

	cpu.Reg[R_PC]++ // wraps at 0xffff
	code = Code(word)
	return
}

// Tick executes a single fetch, decode, execute cycle.
func (cpu *Cpu) Tick() (err error) {
	code, err := cpu.FetchCode()
	if err != nil {
		return
	}

	err = cpu.Execute(code)
	return
}

// Execute applies one instruction to the machine state.
func (cpu *Cpu) Execute(code Code) (err error) {
	defer func() {
		if err != nil {
			err = errors.Join(ErrOpcode(code), err)
		}
	}()

	if cpu.Verbose {
		log.Printf("%04x: %v", cpu.Reg[R_PC]-1, code)
	}

	switch code.Op() {
	case OP_BR:
		nzp, offset := code.BrDecode()
		if nzp&cpu.Reg.Cond() != 0 {
			cpu.Reg[R_PC] += offset
		}
	case OP_ADD, OP_AND:
		dr, sr1, imm, sr2, imm5 := code.AluDecode()
		var a, b uint16
		a, err = cpu.Reg.Read(sr1)
		if err != nil {
			return
		}
		if imm {
			b = imm5
		} else {
			b, err = cpu.Reg.Read(sr2)
			if err != nil {
				return
			}
		}
		value := a + b
		if code.Op() == OP_AND {
			value = a & b
		}
		err = cpu.setRegister(dr, value)
	case OP_NOT:
		dr, sr := code.NotDecode()
		var value uint16
		value, err = cpu.Reg.Read(sr)
		if err != nil {
			return
		}
		err = cpu.setRegister(dr, ^value)
	case OP_LD:
		dr, offset := code.MemDecode()
		var value uint16
		value, err = cpu.memRead(cpu.Reg[R_PC] + offset)
		if err != nil {
			return
		}
		err = cpu.setRegister(dr, value)
	case OP_LDI:
		dr, offset := code.MemDecode()
		var ptr, value uint16
		ptr, err = cpu.memRead(cpu.Reg[R_PC] + offset)
		if err != nil {
			return
		}
		value, err = cpu.memRead(ptr)
		if err != nil {
			return
		}
		err = cpu.setRegister(dr, value)
	case OP_LDR:
		dr, base, offset := code.BaseDecode()
		var at, value uint16
		at, err = cpu.Reg.Read(base)
		if err != nil {
			return
		}
		value, err = cpu.memRead(at + offset)
		if err != nil {
			return
		}
		err = cpu.setRegister(dr, value)
	case OP_LEA:
		dr, offset := code.MemDecode()
		err = cpu.setRegister(dr, cpu.Reg[R_PC]+offset)
	case OP_ST:
		sr, offset := code.MemDecode()
		var value uint16
		value, err = cpu.Reg.Read(sr)
		if err != nil {
			return
		}
		err = cpu.memWrite(cpu.Reg[R_PC]+offset, value)
	case OP_STI:
		sr, offset := code.MemDecode()
		var ptr, value uint16
		ptr, err = cpu.memRead(cpu.Reg[R_PC] + offset)
		if err != nil {
			return
		}
		value, err = cpu.Reg.Read(sr)
		if err != nil {
			return
		}
		err = cpu.memWrite(ptr, value)
	case OP_STR:
		sr, base, offset := code.BaseDecode()
		var at, value uint16
		at, err = cpu.Reg.Read(base)
		if err != nil {
			return
		}
		value, err = cpu.Reg.Read(sr)
		if err != nil {
			return
		}
		err = cpu.memWrite(at+offset, value)
	case OP_JMP:
		_, base, _ := code.BaseDecode()
		cpu.Reg[R_PC], err = cpu.Reg.Read(base)
	case OP_JSR:
		relative, offset, base := code.JsrDecode()
		// R7 takes the return address before the jump.
		cpu.Reg[R_R7] = cpu.Reg[R_PC]
		if relative {
			cpu.Reg[R_PC] += offset
		} else {
			cpu.Reg[R_PC], err = cpu.Reg.Read(base)
		}
	case OP_RTI, OP_RES:
		// No defined semantics on this machine.
		if cpu.Verbose {
			log.Printf("%04x: %v ignored", cpu.Reg[R_PC]-1, code.Op())
		}
	case OP_TRAP:
		err = cpu.trap(code.TrapDecode())
	default:
		err = ErrOpcodeInvalid
	}
	if err != nil {
		return
	}

	cpu.Ticks++
	return
}
