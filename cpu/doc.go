// Package cpu implements the LC-3 teaching machine.
//
// The machine consists of eight 16-bit general-purpose registers (r0-r7),
// a program counter, a condition flag register, and a flat 65536-word
// memory. Instructions are single 16-bit words; the top nibble selects one
// of sixteen opcodes. The TRAP opcode calls out to a console device for
// character input and output.
//
// All word arithmetic wraps modulo 2^16, including program counter
// increments and effective address computation.
package cpu
