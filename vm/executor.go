package vm

// Executor drives the fetch-decode-execute-interrupt loop over an
// owned CPU, Memory and I/O collaborator. The CPU and Memory form a
// single owned unit for the duration of each call (§5): there is no
// shared mutable state outside this triple.
type Executor struct {
	CPU    *CPU
	Memory *Memory
	IO     IOPort

	// MaxBurst bounds instruction retirement per Run() call in RUN
	// mode. Defaults to MaxBurst (the MAX_INST constant); a console
	// collaborator may lower or raise it from configuration.
	MaxBurst int
}

// NewExecutor wires a fresh CPU and Memory together. Pass nil for io
// to get a NullIOPort.
func NewExecutor(io IOPort) *Executor {
	if io == nil {
		io = NullIOPort{}
	}
	return &Executor{CPU: NewCPU(), Memory: NewMemory(), IO: io, MaxBurst: MaxBurst}
}

// fetch loads MBR/INR from the word at PCR and advances PCR.
func (e *Executor) fetch() {
	c := e.CPU
	c.MAR = c.PCR & AddressMask
	c.MBR = e.Memory.ReadWordUnsigned(c.MAR)
	c.INR = uint8(c.MBR >> 8)
	c.PCR = (c.PCR + 1) & AddressMask
}

// step retires exactly one instruction: fetch, decode, execute,
// interrupt check.
func (e *Executor) step() error {
	c := e.CPU
	e.fetch()

	isMemRef := c.INR&0xF0 != 0
	var err error
	if isMemRef {
		err = e.execMemRef()
	} else {
		err = e.execGroup(c.INR)
	}

	if isMemRef && err == nil {
		// Automatic page tracking: mirror the high bits of PCR into
		// the EXR field of STATUS after every memory-reference
		// instruction (§4.3).
		c.STATUS = (uint16(c.PCR)<<1)&ExrByteMask | (c.STATUS &^ ExrByteMask)
	}

	if err != nil {
		// Illegal opcode and "not implemented" both halt the machine
		// (§4.7/§7): leave it parked in a state a diagnostic dump can
		// describe accurately, rather than still claiming RUN/STEP.
		c.Mode = ModeHalt
		return err
	}

	CheckInterrupts(c, e.Memory)
	return nil
}

// execGroup dispatches the non-memory-reference instruction groups
// (INR in 0x00..0x0A), per §4.3.
func (e *Executor) execGroup(inr uint8) error {
	switch inr {
	case GroupGeneric:
		return e.execGeneric()
	case GroupRegister:
		return e.execRegister()
	case GroupDirectInput:
		return e.execDirectInput()
	case GroupDirectOutput:
		return e.execDirectOutput()
	case GroupIXS:
		return e.execIXS()
	case GroupDXS:
		return e.execDXS()
	case GroupLLB:
		return e.execLLB()
	case GroupCLB:
		return e.execCLB()
	case GroupSkip:
		return e.execSkip()
	case GroupShiftArith:
		return e.execShiftArith()
	case GroupShiftLogic:
		return e.execShiftLogic()
	default:
		return &IllegalInstructionError{INR: inr, MBR: e.CPU.MBR}
	}
}

// Step retires a single instruction regardless of MODE, used by STEP
// mode and by tests.
func (e *Executor) Step() error {
	return e.step()
}

// Run executes instructions according to MODE. HALT returns
// immediately. STEP retires one instruction. RUN retires instructions
// until MODE becomes HALT or MaxBurst instructions have retired,
// whichever comes first, then returns control to the caller (the
// console collaborator) for input polling — a cooperative yield, not
// a suspension (§5).
func (e *Executor) Run() error {
	switch e.CPU.Mode {
	case ModeHalt:
		return nil
	case ModeStep:
		return e.step()
	case ModeRun:
		for n := 0; n < e.MaxBurst; n++ {
			if e.CPU.Mode != ModeRun {
				return nil
			}
			if err := e.step(); err != nil {
				return err
			}
		}
		return nil
	default:
		return nil
	}
}
