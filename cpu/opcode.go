package cpu

import (
	"fmt"
)

// Opcode is the operation class selected by the top 4 bits of an
// instruction word.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_BR   = Opcode(0)  // br
	OP_ADD  = Opcode(1)  // add
	OP_LD   = Opcode(2)  // ld
	OP_ST   = Opcode(3)  // st
	OP_JSR  = Opcode(4)  // jsr
	OP_AND  = Opcode(5)  // and
	OP_LDR  = Opcode(6)  // ldr
	OP_STR  = Opcode(7)  // str
	OP_RTI  = Opcode(8)  // rti
	OP_NOT  = Opcode(9)  // not
	OP_LDI  = Opcode(10) // ldi
	OP_STI  = Opcode(11) // sti
	OP_JMP  = Opcode(12) // jmp
	OP_RES  = Opcode(13) // res
	OP_LEA  = Opcode(14) // lea
	OP_TRAP = Opcode(15) // trap
)

// Code is a single 16-bit instruction word.
type Code uint16

// SignExtend widens the low bits of x from two's-complement to 16 bits.
func SignExtend(x uint16, bits uint) uint16 {
	if (x>>(bits-1))&1 != 0 {
		x |= 0xFFFF << bits
	}
	return x
}

// Op returns the opcode from the top nibble of the instruction word.
func (code Code) Op() Opcode {
	return Opcode(code >> 12)
}

// BrDecode returns the branch condition mask and the sign-extended 9-bit
// PC-relative offset.
func (code Code) BrDecode() (nzp Flag, offset uint16) {
	nzp = Flag((code >> 9) & 0x7)
	offset = SignExtend(uint16(code)&0x1FF, 9)
	return
}

// AluDecode decodes ADD and AND: the destination, first source, and either
// a second source register or a sign-extended 5-bit immediate, selected by
// the mode bit.
func (code Code) AluDecode() (dr, sr1 Register, imm bool, sr2 Register, imm5 uint16) {
	dr = Register((code >> 9) & 0x7)
	sr1 = Register((code >> 6) & 0x7)
	imm = (code>>5)&1 != 0
	sr2 = Register(code & 0x7)
	imm5 = SignExtend(uint16(code)&0x1F, 5)
	return
}

// NotDecode returns the destination and source registers of a NOT.
func (code Code) NotDecode() (dr, sr Register) {
	dr = Register((code >> 9) & 0x7)
	sr = Register((code >> 6) & 0x7)
	return
}

// MemDecode decodes the PC-relative class (LD, LDI, LEA, ST, STI): the
// data register and the sign-extended 9-bit offset.
func (code Code) MemDecode() (reg Register, offset uint16) {
	reg = Register((code >> 9) & 0x7)
	offset = SignExtend(uint16(code)&0x1FF, 9)
	return
}

// BaseDecode decodes the base+offset class (LDR, STR, JMP): the data
// register, the base register, and the sign-extended 6-bit offset.
func (code Code) BaseDecode() (reg, base Register, offset uint16) {
	reg = Register((code >> 9) & 0x7)
	base = Register((code >> 6) & 0x7)
	offset = SignExtend(uint16(code)&0x3F, 6)
	return
}

// JsrDecode decodes JSR: in relative mode the sign-extended 11-bit offset
// applies, otherwise the base register holds the target.
func (code Code) JsrDecode() (relative bool, offset uint16, base Register) {
	relative = (code>>11)&1 != 0
	offset = SignExtend(uint16(code)&0x7FF, 11)
	base = Register((code >> 6) & 0x7)
	return
}

// TrapDecode returns the 8-bit trap vector.
func (code Code) TrapDecode() TrapVector {
	return TrapVector(code & 0xFF)
}

// MakeCodeBr creates a branch on the nzp condition mask.
func MakeCodeBr(nzp Flag, offset uint16) Code {
	return Code(uint16(OP_BR)<<12 | uint16(nzp&0x7)<<9 | offset&0x1FF)
}

// MakeCodeAdd creates a register-mode ADD.
func MakeCodeAdd(dr, sr1, sr2 Register) Code {
	return Code(uint16(OP_ADD)<<12 | uint16(dr&0x7)<<9 | uint16(sr1&0x7)<<6 | uint16(sr2&0x7))
}

// MakeCodeAddImm creates an immediate-mode ADD.
func MakeCodeAddImm(dr, sr1 Register, imm5 uint16) Code {
	return Code(uint16(OP_ADD)<<12 | uint16(dr&0x7)<<9 | uint16(sr1&0x7)<<6 | 1<<5 | imm5&0x1F)
}

// MakeCodeAnd creates a register-mode AND.
func MakeCodeAnd(dr, sr1, sr2 Register) Code {
	return Code(uint16(OP_AND)<<12 | uint16(dr&0x7)<<9 | uint16(sr1&0x7)<<6 | uint16(sr2&0x7))
}

// MakeCodeAndImm creates an immediate-mode AND.
func MakeCodeAndImm(dr, sr1 Register, imm5 uint16) Code {
	return Code(uint16(OP_AND)<<12 | uint16(dr&0x7)<<9 | uint16(sr1&0x7)<<6 | 1<<5 | imm5&0x1F)
}

// MakeCodeNot creates a NOT.
func MakeCodeNot(dr, sr Register) Code {
	return Code(uint16(OP_NOT)<<12 | uint16(dr&0x7)<<9 | uint16(sr&0x7)<<6 | 0x3F)
}

// MakeCodeMem creates a PC-relative instruction (LD, LDI, LEA, ST, STI).
func MakeCodeMem(op Opcode, reg Register, offset uint16) Code {
	return Code(uint16(op)<<12 | uint16(reg&0x7)<<9 | offset&0x1FF)
}

// MakeCodeBase creates a base+offset instruction (LDR, STR).
func MakeCodeBase(op Opcode, reg, base Register, offset uint16) Code {
	return Code(uint16(op)<<12 | uint16(reg&0x7)<<9 | uint16(base&0x7)<<6 | offset&0x3F)
}

// MakeCodeJmp creates an unconditional jump through a base register.
func MakeCodeJmp(base Register) Code {
	return Code(uint16(OP_JMP)<<12 | uint16(base&0x7)<<6)
}

// MakeCodeJsr creates a PC-relative subroutine call.
func MakeCodeJsr(offset uint16) Code {
	return Code(uint16(OP_JSR)<<12 | 1<<11 | offset&0x7FF)
}

// MakeCodeJsrr creates a subroutine call through a base register.
func MakeCodeJsrr(base Register) Code {
	return Code(uint16(OP_JSR)<<12 | uint16(base&0x7)<<6)
}

// MakeCodeTrap creates a trap call.
func MakeCodeTrap(vector TrapVector) Code {
	return Code(uint16(OP_TRAP)<<12 | uint16(vector)&0xFF)
}

// String returns an assembly-style rendering of the instruction word.
func (code Code) String() (out string) {
	op := code.Op()

	switch op {
	case OP_BR:
		nzp, offset := code.BrDecode()
		out = fmt.Sprintf("%v%v %+d", op, nzp, int16(offset))
	case OP_ADD, OP_AND:
		dr, sr1, imm, sr2, imm5 := code.AluDecode()
		if imm {
			out = fmt.Sprintf("%v %v, %v, #%d", op, dr, sr1, int16(imm5))
		} else {
			out = fmt.Sprintf("%v %v, %v, %v", op, dr, sr1, sr2)
		}
	case OP_NOT:
		dr, sr := code.NotDecode()
		out = fmt.Sprintf("%v %v, %v", op, dr, sr)
	case OP_LD, OP_LDI, OP_LEA, OP_ST, OP_STI:
		reg, offset := code.MemDecode()
		out = fmt.Sprintf("%v %v, %+d", op, reg, int16(offset))
	case OP_LDR, OP_STR:
		reg, base, offset := code.BaseDecode()
		out = fmt.Sprintf("%v %v, %v, %+d", op, reg, base, int16(offset))
	case OP_JMP:
		_, base, _ := code.BaseDecode()
		out = fmt.Sprintf("%v %v", op, base)
	case OP_JSR:
		relative, offset, base := code.JsrDecode()
		if relative {
			out = fmt.Sprintf("%v %+d", op, int16(offset))
		} else {
			out = fmt.Sprintf("%vr %v", op, base)
		}
	case OP_RTI, OP_RES:
		out = op.String()
	case OP_TRAP:
		out = fmt.Sprintf("%v %v", op, code.TrapDecode())
	}

	return
}
