package vm

// execGeneric implements the generic group (INR=0x00). The second
// hex digit of MBR (MBR&0x00F0) selects the instruction within it.
func (e *Executor) execGeneric() error {
	c := e.CPU
	sub := c.MBR & 0x00F0

	switch sub {
	case GenHALT:
		c.Mode = ModeHalt
		// Undo fetch's PCR advance: HALT does not move PCR past
		// itself, so re-entering RUN/STEP re-executes the HALT word.
		c.PCR = (c.PCR - 1) & AddressMask
	case GenINRET:
		InterruptReturn(c, e.Memory, int(c.MBR&0x000F))
	case GenENB:
		Enable(c, int(c.MBR&0x000F), true)
	case GenDSB:
		Enable(c, int(c.MBR&0x000F), false)
	case GenSLM:
		c.SetGlobal(false)
	case GenSGM:
		c.SetGlobal(true)
	case GenCEX:
		// Copy EXR (STATUS high bits) into IXR's top 5 bits.
		c.IXR = int16((uint16(c.IXR) &^ ExrByteMask) | (c.STATUS & ExrByteMask))
	case GenCXE:
		// Copy IXR's top 5 bits into EXR.
		c.STATUS = (c.STATUS &^ ExrByteMask) | (uint16(c.IXR) & ExrByteMask)
	case GenSML:
		c.STATUS = (c.STATUS &^ ExrWordMask) | (uint16(c.MBR&0x000F) << 12)
	case GenSMU:
		c.STATUS = (c.STATUS &^ ExrWordMask) | (uint16(c.MBR&0x000F) << 12) | 0x8000
	case GenMSK:
		c.IntMasked = true
	case GenUNM:
		c.IntMasked = false
	default:
		return &IllegalInstructionError{INR: c.INR, MBR: c.MBR}
	}
	return nil
}

// execRegister implements the register group (INR=0x01).
func (e *Executor) execRegister() error {
	c := e.CPU
	switch c.MBR & 0x00F0 {
	case RegCLR:
		c.ACR = 0
	case RegCMP:
		c.ACR = -c.ACR
	case RegINV:
		c.ACR = ^c.ACR
	case RegCAX:
		c.IXR = c.ACR
	case RegCXA:
		c.ACR = c.IXR
	default:
		return &IllegalInstructionError{INR: c.INR, MBR: c.MBR}
	}
	return nil
}

// execDirectInput implements DIN (INR=0x02): ACR <- collaborator
// input on the channel named by the low byte of MBR.
func (e *Executor) execDirectInput() error {
	c := e.CPU
	c.ACR = int16(e.IO.DirectInput(uint8(c.MBR)))
	return nil
}

// execDirectOutput implements DOT (INR=0x03): the collaborator
// receives ACR on the channel named by the low byte of MBR.
func (e *Executor) execDirectOutput() error {
	c := e.CPU
	e.IO.DirectOutput(uint8(c.MBR), uint16(c.ACR))
	return nil
}
