package vm

import "fmt"

// CPU represents the Raytheon 703 processor state: a single
// accumulator, a single index register, and the status/interrupt
// bookkeeping registers described in §3 of the specification.
type CPU struct {
	ACR int16  // accumulator
	IXR int16  // index register; low half of the ACR:IXR double word
	PCR uint16 // program counter (low 15 bits address memory)
	MBR uint16 // memory buffer register
	MAR uint16 // effective memory address (15 bits significant)
	INR uint8  // instruction register (opcode byte)

	STATUS uint16 // composite status word, see constants.go

	IntReq    uint16 // interrupt request bitmap, bit 15 = level 15 (highest)
	IntAct    uint16 // interrupt active bitmap
	IntEnb    uint16 // interrupt enable bitmap
	IntMasked bool   // global interrupt mask flip-flop

	Mode Mode
}

// NewCPU creates and initializes a new CPU instance, halted.
func NewCPU() *CPU {
	return &CPU{Mode: ModeHalt}
}

// Reset returns the CPU to its power-on state.
func (c *CPU) Reset() {
	*c = CPU{Mode: ModeHalt}
}

// Global reports whether the addressing mode flag (GBL) is set.
func (c *CPU) Global() bool {
	return c.STATUS&AdfGbl != 0
}

// SetGlobal sets or clears the GBL flag.
func (c *CPU) SetGlobal(v bool) {
	if v {
		c.STATUS |= AdfGbl
	} else {
		c.STATUS &^= AdfGbl
	}
}

// SetCompareFlags sets NEG/EQL per a three-way comparison result,
// clearing both first (the shared idiom of CMB, CMW and CLB).
func (c *CPU) SetCompareFlags(lt, eq bool) {
	c.STATUS &^= AdfNeg | AdfEql
	switch {
	case lt:
		c.STATUS |= AdfNeg
	case eq:
		c.STATUS |= AdfEql
	}
}

// SetOverflow sets or clears the sticky OVF flag.
func (c *CPU) SetOverflow(v bool) {
	if v {
		c.STATUS |= AdfOvf
	} else {
		c.STATUS &^= AdfOvf
	}
}

// Overflow reports the sticky OVF flag.
func (c *CPU) Overflow() bool {
	return c.STATUS&AdfOvf != 0
}

// Negative reports the NEG flag.
func (c *CPU) Negative() bool {
	return c.STATUS&AdfNeg != 0
}

// Equal reports the EQL flag.
func (c *CPU) Equal() bool {
	return c.STATUS&AdfEql != 0
}

// DumpState renders a diagnostic register snapshot, used on HALT and
// on illegal-instruction termination.
func (c *CPU) DumpState() string {
	return fmt.Sprintf(
		"MODE=%s ACR=0x%04X IXR=0x%04X PCR=0x%04X MBR=0x%04X MAR=0x%04X INR=0x%02X STATUS=0x%04X INT_REQ=0x%04X INT_ACT=0x%04X INT_ENB=0x%04X MASKED=%v",
		c.Mode, uint16(c.ACR), uint16(c.IXR), c.PCR, c.MBR, c.MAR, c.INR, c.STATUS,
		c.IntReq, c.IntAct, c.IntEnb, c.IntMasked,
	)
}
