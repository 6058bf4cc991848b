package vm

// execMemRef dispatches and executes a memory-reference instruction
// (opcodes 0x10-0xF0, §4.5). PCR has already been advanced past the
// instruction word by fetch.
func (e *Executor) execMemRef() error {
	c := e.CPU
	op := c.INR & 0xF0

	switch op {
	case OpJMP:
		c.PCR = e.wordAddr()
	case OpJSX:
		addr := e.wordAddr()
		c.IXR = int16(c.PCR)
		c.PCR = addr
		c.SetGlobal(true)
	case OpSTB:
		addr, left := e.byteAddr()
		e.Memory.WriteByte(addr, left, byte(c.ACR))
	case OpCMB:
		addr, left := e.byteAddr()
		operand := int8(e.Memory.ReadByte(addr, left))
		acc := int8(c.ACR)
		c.SetGlobal(false)
		c.SetCompareFlags(acc < operand, acc == operand)
	case OpLDB:
		addr, left := e.byteAddr()
		c.ACR = int16(e.Memory.ReadByte(addr, left))
	case OpSTX:
		addr := e.wordAddr()
		e.Memory.WriteWord(addr, uint16(c.IXR))
	case OpSTW:
		addr := e.wordAddr()
		e.Memory.WriteWord(addr, uint16(c.ACR))
	case OpLDW:
		addr := e.wordAddr()
		c.ACR = e.Memory.ReadWord(addr)
	case OpLDX:
		addr := e.wordAddr()
		c.IXR = e.Memory.ReadWord(addr)
	case OpADD:
		addr := e.wordAddr()
		e.add(e.Memory.ReadWord(addr))
	case OpSUB:
		addr := e.wordAddr()
		e.sub(e.Memory.ReadWord(addr))
	case OpORI:
		addr := e.wordAddr()
		c.ACR |= e.Memory.ReadWord(addr)
	case OpORE:
		addr := e.wordAddr()
		c.ACR ^= e.Memory.ReadWord(addr)
	case OpAND:
		addr := e.wordAddr()
		c.ACR &= e.Memory.ReadWord(addr)
	case OpCMW:
		addr := e.wordAddr()
		operand := e.Memory.ReadWord(addr)
		c.SetCompareFlags(c.ACR < operand, c.ACR == operand)
	default:
		return &IllegalInstructionError{INR: c.INR, MBR: c.MBR}
	}
	return nil
}

func (e *Executor) wordAddr() uint16 {
	c := e.CPU
	return ComputeWordAddress(c.MBR, c.STATUS, c.IXR)
}

func (e *Executor) byteAddr() (addr uint16, left bool) {
	c := e.CPU
	return ComputeByteAddress(c.MBR, c.STATUS, c.IXR)
}

// add implements ACR <- ACR + operand with two's-complement overflow
// detection (§4.5, §8): on overflow the low 16 bits of the unsigned
// sum are written and OVF is set; otherwise OVF is cleared.
func (e *Executor) add(operand int16) {
	c := e.CPU
	sum := int32(c.ACR) + int32(operand)
	overflow := sum > 0x7FFF || sum < -0x8000
	c.SetOverflow(overflow)
	c.ACR = int16(uint16(c.ACR) + uint16(operand))
}

// sub implements ACR <- ACR - operand with the equivalent underflow
// detection, via direct two's-complement subtraction of the unsigned
// bit patterns (§6 of SPEC_FULL.md: the "fake it with addition" path
// in the original source is not reproduced).
func (e *Executor) sub(operand int16) {
	c := e.CPU
	diff := int32(c.ACR) - int32(operand)
	overflow := diff > 0x7FFF || diff < -0x8000
	c.SetOverflow(overflow)
	c.ACR = int16(uint16(c.ACR) - uint16(operand))
}
