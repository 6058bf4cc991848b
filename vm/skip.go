package vm

// execSkip implements the skip group (INR=0x08): each skip advances
// PCR by one extra word when its predicate holds.
func (e *Executor) execSkip() error {
	c := e.CPU
	sub := c.MBR & 0x00F0

	var skip bool
	switch sub {
	case SkipSAZ:
		skip = c.ACR == 0
	case SkipSAP:
		skip = c.ACR >= 0
	case SkipSAM:
		skip = c.ACR < 0
	case SkipSAO:
		skip = c.ACR&1 != 0
	case SkipSLS:
		skip = c.Negative()
	case SkipSXE:
		skip = c.IXR&1 == 0
	case SkipSEQ:
		// Inverted polarity relative to the mnemonic: skips when EQL
		// is clear (§4.5, §9 open question — taken literally).
		skip = !c.Equal()
	case SkipSNE:
		skip = c.Equal()
	case SkipSGR:
		skip = !c.Negative() && !c.Equal()
	case SkipSLE:
		skip = c.Negative() || c.Equal()
	case SkipSNO:
		skip = !c.Overflow()
	case SkipSSE:
		skip = e.IO.SenseSwitch(0xFF) // SSE: the "any switch set" sense
	case SkipSS0:
		skip = e.IO.SenseSwitch(0)
	case SkipSS1:
		skip = e.IO.SenseSwitch(1)
	case SkipSS2:
		skip = e.IO.SenseSwitch(2)
	case SkipSS3:
		skip = e.IO.SenseSwitch(3)
	default:
		return &IllegalInstructionError{INR: c.INR, MBR: c.MBR}
	}

	if skip {
		c.PCR = (c.PCR + 1) & AddressMask
	}
	return nil
}
