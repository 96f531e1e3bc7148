package cpu

// MEMORY_SIZE is the number of addressable 16-bit words.
const MEMORY_SIZE = 1 << 16

// Memory-mapped keyboard registers.
const (
	MMIO_KBSR = uint16(0xFE00) // keyboard status
	MMIO_KBDR = uint16(0xFE02) // keyboard data
)

// KBSR_READY is set in the keyboard status register while a key is latched.
const KBSR_READY = uint16(1 << 15)

// Memory is the machine's flat word-addressed storage.
type Memory [MEMORY_SIZE]uint16

// Read returns the word at addr.
func (mem *Memory) Read(addr int) (value uint16, err error) {
	if addr < 0 || addr >= MEMORY_SIZE {
		err = ErrMemoryRange
		return
	}

	value = mem[addr]
	return
}

// Write stores value at addr.
func (mem *Memory) Write(addr int, value uint16) (err error) {
	if addr < 0 || addr >= MEMORY_SIZE {
		err = ErrMemoryRange
		return
	}

	mem[addr] = value
	return
}
