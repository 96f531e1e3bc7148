package cpu

// TrapVector identifies a console service routine invoked by the TRAP
// opcode.
type TrapVector int

//go:generate go tool stringer -linecomment -type=TrapVector
const (
	TRAP_GETC  = TrapVector(0x20) // getc
	TRAP_OUT   = TrapVector(0x21) // out
	TRAP_PUTS  = TrapVector(0x22) // puts
	TRAP_IN    = TrapVector(0x23) // in
	TRAP_PUTSP = TrapVector(0x24) // putsp
	TRAP_HALT  = TrapVector(0x25) // halt
)

// trap dispatches a trap vector to the console device.
func (cpu *Cpu) trap(vector TrapVector) (err error) {
	switch vector {
	case TRAP_GETC:
		var c byte
		c, err = cpu.Console.ReadChar()
		if err != nil {
			return
		}
		cpu.Reg[R_R0] = uint16(c)
		err = cpu.Reg.SetFlags(R_R0)
	case TRAP_OUT:
		err = cpu.Console.WriteChar(byte(cpu.Reg[R_R0]))
	case TRAP_PUTS:
		// One character per word, NUL terminated.
		at := cpu.Reg[R_R0]
		for {
			var word uint16
			word, err = cpu.memRead(at)
			if err != nil || word == 0 {
				return
			}
			err = cpu.Console.WriteChar(byte(word))
			if err != nil {
				return
			}
			at++
		}
	case TRAP_IN:
		err = cpu.Console.WriteString("Enter a character: ")
		if err != nil {
			return
		}
		var c byte
		c, err = cpu.Console.ReadChar()
		if err != nil {
			return
		}
		err = cpu.Console.WriteChar(c)
		if err != nil {
			return
		}
		cpu.Reg[R_R0] = uint16(c)
		err = cpu.Reg.SetFlags(R_R0)
	case TRAP_PUTSP:
		// Two packed characters per word, low byte first, NUL terminated.
		at := cpu.Reg[R_R0]
		for {
			var word uint16
			word, err = cpu.memRead(at)
			if err != nil || word == 0 {
				return
			}
			err = cpu.Console.WriteChar(byte(word))
			if err != nil {
				return
			}
			if word>>8 != 0 {
				err = cpu.Console.WriteChar(byte(word >> 8))
				if err != nil {
					return
				}
			}
			at++
		}
	case TRAP_HALT:
		err = cpu.Console.WriteString("HALT\n")
		cpu.Running = false
	default:
		err = ErrTrap(vector)
	}

	return
}
