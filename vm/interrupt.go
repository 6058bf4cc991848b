package vm

// InterruptController implements the 16-level priority pre-emption
// state machine of §4.6. It is sampled once at every instruction
// boundary by the Executor; nothing about it is concurrent, it is
// simulated pre-emption inside a single thread (§5).

// highestEligible returns the highest interrupt level eligible to be
// taken, or -1 if none is. Level L is eligible iff it is requested,
// enabled, the mask flip-flop is clear, and no level above it is
// active (§3 priority invariant).
func highestEligible(c *CPU) int {
	if c.IntMasked || c.IntEnb == 0 || c.IntReq == 0 {
		return -1
	}
	blockedByHigher := false
	for level := 15; level >= 0; level-- {
		bit := uint16(1) << uint(level)
		if !blockedByHigher && c.IntReq&bit != 0 && c.IntEnb&bit != 0 {
			return level
		}
		if c.IntAct&bit != 0 {
			blockedByHigher = true
		}
	}
	return -1
}

// CheckInterrupts runs the post-instruction interrupt check. It
// mutates CPU and Memory only when a level is actually taken.
func CheckInterrupts(c *CPU, m *Memory) {
	level := highestEligible(c)
	if level < 0 {
		return
	}

	bit := uint16(1) << uint(level)
	c.IntAct |= bit
	c.IntReq &^= bit

	pcrSlot, linkSlot, statusSlot, _ := VectorSlots(level)
	m.WriteWord(pcrSlot, c.PCR)
	m.WriteWord(statusSlot, c.STATUS)

	c.SetGlobal(true)
	c.PCR = m.ReadWordUnsigned(linkSlot)
}

// InterruptReturn implements INRET L: reverses the vectored save
// performed when level L was taken.
func InterruptReturn(c *CPU, m *Memory, level int) {
	bit := uint16(1) << uint(level)
	c.IntAct &^= bit

	pcrSlot, _, statusSlot, _ := VectorSlots(level)
	c.STATUS = m.ReadWordUnsigned(statusSlot)
	c.PCR = m.ReadWordUnsigned(pcrSlot)
}

// Raise latches an interrupt request for level, as an external
// collaborator (timer, device) would between instructions.
func Raise(c *CPU, level int) {
	c.IntReq |= uint16(1) << uint(level)
}

// Enable sets or clears the enable bit for level.
func Enable(c *CPU, level int, enabled bool) {
	bit := uint16(1) << uint(level)
	if enabled {
		c.IntEnb |= bit
	} else {
		c.IntEnb &^= bit
	}
}
