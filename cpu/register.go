package cpu

// Register indexes the machine register file.
type Register int

//go:generate go tool stringer -linecomment -type=Register
const (
	R_R0   = Register(0) // r0
	R_R1   = Register(1) // r1
	R_R2   = Register(2) // r2
	R_R3   = Register(3) // r3
	R_R4   = Register(4) // r4
	R_R5   = Register(5) // r5
	R_R6   = Register(6) // r6
	R_R7   = Register(7) // r7
	R_PC   = Register(8) // pc
	R_COND = Register(9) // cond
)

// R_COUNT is the number of addressable registers.
const R_COUNT = 10

// Flag is a condition flag value. The machine keeps exactly one flag set;
// a branch instruction carries a mask of one or more.
type Flag uint16

const (
	FLAG_POS = Flag(1 << 0)
	FLAG_ZRO = Flag(1 << 1)
	FLAG_NEG = Flag(1 << 2)
)

// String renders the flag mask as its n/z/p letters.
func (fl Flag) String() (out string) {
	if fl&FLAG_NEG != 0 {
		out += "n"
	}
	if fl&FLAG_ZRO != 0 {
		out += "z"
	}
	if fl&FLAG_POS != 0 {
		out += "p"
	}
	if out == "" {
		out = "-"
	}
	return
}

// Registers is the register file: eight general registers, the program
// counter, and the condition flags.
type Registers [R_COUNT]uint16

// Read returns the value of reg.
func (r *Registers) Read(reg Register) (value uint16, err error) {
	if reg < 0 || reg >= R_COUNT {
		err = ErrRegisterInvalid
		return
	}

	value = r[reg]
	return
}

// Write stores value into reg. Condition flags are not touched; callers
// that define a destination register follow up with SetFlags.
func (r *Registers) Write(reg Register, value uint16) (err error) {
	if reg < 0 || reg >= R_COUNT {
		err = ErrRegisterInvalid
		return
	}

	r[reg] = value
	return
}

// SetFlags recomputes the condition flags from the value held in reg.
func (r *Registers) SetFlags(reg Register) (err error) {
	value, err := r.Read(reg)
	if err != nil {
		return
	}

	switch {
	case value == 0:
		r[R_COND] = uint16(FLAG_ZRO)
	case value>>15 != 0:
		r[R_COND] = uint16(FLAG_NEG)
	default:
		r[R_COND] = uint16(FLAG_POS)
	}
	return
}

// Cond returns the current condition flag.
func (r *Registers) Cond() Flag {
	return Flag(r[R_COND])
}
