package vm

// execIXS implements IXS (INR=0x04): IXR <- IXR + MBR[7:0], the
// operand widened as an unsigned byte (0-255) despite the mnemonic
// suggesting a signed literal — §8's worked example (IXR=-200, operand
// 0xFF=+255, result 55) only holds under unsigned widening, which is
// the reading this module takes per the §9 open question.
func (e *Executor) execIXS() error {
	c := e.CPU
	c.IXR += int16(uint8(c.MBR))
	if c.IXR >= 0 {
		c.PCR = (c.PCR + 1) & AddressMask
	}
	return nil
}

// execDXS implements DXS (INR=0x05): IXR <- IXR - MBR[7:0], the same
// unsigned-byte widening as IXS.
func (e *Executor) execDXS() error {
	c := e.CPU
	c.IXR -= int16(uint8(c.MBR))
	if c.IXR < 0 {
		c.PCR = (c.PCR + 1) & AddressMask
	}
	return nil
}

// execLLB implements LLB (INR=0x06): ACR <- ACR | MBR[7:0] (OR-merge,
// does not pre-clear — §9 open question resolved in favor of the
// literal table wording in spec.md).
func (e *Executor) execLLB() error {
	c := e.CPU
	c.ACR |= int16(uint8(c.MBR))
	return nil
}

// execCLB implements CLB (INR=0x07): compare the low byte of ACR
// against the signed 8-bit MBR[7:0], clearing NEG/EQL first.
func (e *Executor) execCLB() error {
	c := e.CPU
	operand := int8(c.MBR)
	acc := int8(c.ACR)
	c.SetCompareFlags(acc < operand, acc == operand)
	return nil
}
