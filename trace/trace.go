// Package trace records a diagnostic execution trace, scaled down from
// the teacher's ExecutionTrace to this machine's much smaller register
// set: one entry per retired instruction, written on Flush.
package trace

import (
	"fmt"
	"io"

	"github.com/dgeiselbrecht/rtn703/vm"
)

// Entry is a single retired instruction's diagnostic snapshot.
type Entry struct {
	Sequence uint64
	PCR      uint16
	INR      uint8
	MBR      uint16
	ACR      int16
	IXR      int16
	STATUS   uint16
}

// Trace accumulates Entry values and writes them to Writer on Flush.
type Trace struct {
	Enabled    bool
	Writer     io.Writer
	MaxEntries int

	sequence uint64
	entries  []Entry
}

// New creates a Trace writing to w. Pass w=nil to accumulate entries
// without ever writing them (used by tests that inspect Entries()
// directly).
func New(w io.Writer) *Trace {
	return &Trace{
		Enabled:    true,
		Writer:     w,
		MaxEntries: 100000,
	}
}

// Record appends a snapshot of c's post-execution state, identified by
// the instruction word it just retired.
func (t *Trace) Record(c *vm.CPU, retiredAt uint16, mbr uint16) {
	if !t.Enabled {
		return
	}
	if t.MaxEntries > 0 && len(t.entries) >= t.MaxEntries {
		return
	}

	t.entries = append(t.entries, Entry{
		Sequence: t.sequence,
		PCR:      retiredAt,
		INR:      uint8(mbr >> 8),
		MBR:      mbr,
		ACR:      c.ACR,
		IXR:      c.IXR,
		STATUS:   c.STATUS,
	})
	t.sequence++
}

// Entries returns all recorded entries.
func (t *Trace) Entries() []Entry {
	return t.entries
}

// Clear discards all recorded entries without resetting the sequence
// counter.
func (t *Trace) Clear() {
	t.entries = t.entries[:0]
}

// Flush writes every recorded entry to Writer, one line each.
func (t *Trace) Flush() error {
	if t.Writer == nil {
		return nil
	}
	for _, e := range t.entries {
		line := fmt.Sprintf("[%06d] PCR=0x%04X INR=0x%02X MBR=0x%04X ACR=0x%04X IXR=0x%04X STATUS=0x%04X\n",
			e.Sequence, e.PCR, e.INR, e.MBR, uint16(e.ACR), uint16(e.IXR), e.STATUS)
		if _, err := t.Writer.Write([]byte(line)); err != nil {
			return fmt.Errorf("failed to write trace entry: %w", err)
		}
	}
	return nil
}
