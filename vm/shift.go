package vm

import "math/bits"

// combine32 packs ACR (high 16) and IXR (low 16) into one 32-bit
// intermediate for the double-word shift variants, per the design
// note: combine, don't interlock two 16-bit shifts, so -0 edge cases
// match.
func combine32(c *CPU) uint32 {
	return uint32(uint16(c.ACR))<<16 | uint32(uint16(c.IXR))
}

// split32 writes a 32-bit double-word shift result back to ACR:IXR.
func split32(c *CPU, v uint32) {
	c.ACR = int16(uint16(v >> 16))
	c.IXR = int16(uint16(v))
}

func topBitsDiffer16(v uint16) bool {
	return (v>>15)&1 != (v>>14)&1
}

func topBitsDiffer32(v uint32) bool {
	return (v>>31)&1 != (v>>30)&1
}

// execShiftArith implements the shift-arithmetic group (INR=0x09):
// sra, sla, srad, slad, src, slc, srcd, slcd.
func (e *Executor) execShiftArith() error {
	c := e.CPU
	count := int(c.MBR & 0x000F)
	sub := c.MBR & 0x00F0

	switch sub {
	case ShiftSRA:
		c.SetOverflow(false)
		v := uint16(c.ACR)
		for i := 0; i < count; i++ {
			if topBitsDiffer16(v) {
				c.SetOverflow(true)
			}
			sign := v & 0x8000
			v = (v >> 1) | sign
		}
		c.ACR = int16(v)

	case ShiftSLA:
		c.SetOverflow(false)
		v := uint16(c.ACR)
		for i := 0; i < count; i++ {
			if topBitsDiffer16(v) {
				c.SetOverflow(true)
			}
			v <<= 1
		}
		c.ACR = int16(v)

	case ShiftSRAD:
		c.SetOverflow(false)
		v := combine32(c)
		for i := 0; i < count; i++ {
			if topBitsDiffer32(v) {
				c.SetOverflow(true)
			}
			sign := v & 0x80000000
			v = (v >> 1) | sign
		}
		split32(c, v)

	case ShiftSLAD:
		c.SetOverflow(false)
		v := combine32(c)
		for i := 0; i < count; i++ {
			if topBitsDiffer32(v) {
				c.SetOverflow(true)
			}
			v <<= 1
		}
		split32(c, v)

	case ShiftSRC:
		c.ACR = int16(bits.RotateLeft16(uint16(c.ACR), -count))

	case ShiftSLC:
		c.ACR = int16(bits.RotateLeft16(uint16(c.ACR), count))

	case ShiftSRCD:
		split32(c, bits.RotateLeft32(combine32(c), -count))

	case ShiftSLCD:
		split32(c, bits.RotateLeft32(combine32(c), count))

	default:
		return &IllegalInstructionError{INR: c.INR, MBR: c.MBR}
	}
	return nil
}

// execShiftLogic implements the shift-logical group (INR=0x0A): srl,
// sll, srld, slld, and the circular/logical byte sub-field variants.
func (e *Executor) execShiftLogic() error {
	c := e.CPU
	count := uint(c.MBR & 0x000F)
	sub := c.MBR & 0x00F0

	switch sub {
	case ShiftSRL:
		c.ACR = int16(uint16(c.ACR) >> count)
	case ShiftSLL:
		c.ACR = int16(uint16(c.ACR) << count)
	case ShiftSRLD:
		split32(c, combine32(c)>>count)
	case ShiftSLLD:
		split32(c, combine32(c)<<count)

	case ShiftSRCL:
		e.shiftByte(true, func(b uint8) uint8 { return bits.RotateLeft8(b, -int(count)) })
	case ShiftSLCL:
		e.shiftByte(true, func(b uint8) uint8 { return bits.RotateLeft8(b, int(count)) })
	case ShiftSRCR:
		e.shiftByte(false, func(b uint8) uint8 { return bits.RotateLeft8(b, -int(count)) })
	case ShiftSLCR:
		e.shiftByte(false, func(b uint8) uint8 { return bits.RotateLeft8(b, int(count)) })

	case ShiftSRLL:
		e.shiftByte(true, func(b uint8) uint8 { return b >> count })
	case ShiftSLLL:
		e.shiftByte(true, func(b uint8) uint8 { return b << count })
	case ShiftSRLR:
		e.shiftByte(false, func(b uint8) uint8 { return b >> count })
	case ShiftSLLR:
		e.shiftByte(false, func(b uint8) uint8 { return b << count })

	default:
		return &IllegalInstructionError{INR: c.INR, MBR: c.MBR}
	}
	return nil
}

// shiftByte applies f to the left (high) or right (low) byte of ACR,
// leaving the other byte untouched.
func (e *Executor) shiftByte(left bool, f func(uint8) uint8) {
	c := e.CPU
	v := uint16(c.ACR)
	if left {
		hi := f(uint8(v >> 8))
		c.ACR = int16(uint16(hi)<<8 | (v & 0x00FF))
	} else {
		lo := f(uint8(v))
		c.ACR = int16((v & 0xFF00) | uint16(lo))
	}
}
