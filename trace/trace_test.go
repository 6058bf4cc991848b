package trace_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dgeiselbrecht/rtn703/trace"
	"github.com/dgeiselbrecht/rtn703/vm"
)

func TestTrace_DisabledRecordsNothing(t *testing.T) {
	tr := trace.New(nil)
	tr.Enabled = false
	tr.Record(vm.NewCPU(), 0, 0x0000)
	if len(tr.Entries()) != 0 {
		t.Fatalf("disabled trace recorded %d entries, want 0", len(tr.Entries()))
	}
}

func TestTrace_RecordsSequentially(t *testing.T) {
	tr := trace.New(nil)
	c := vm.NewCPU()
	c.ACR = 5
	tr.Record(c, 0, 0xA001)
	c.ACR = 9
	tr.Record(c, 1, 0xA002)

	entries := tr.Entries()
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Sequence != 0 || entries[1].Sequence != 1 {
		t.Fatalf("sequence numbers = %d,%d, want 0,1", entries[0].Sequence, entries[1].Sequence)
	}
	if entries[1].ACR != 9 {
		t.Fatalf("second entry ACR = %d, want 9", entries[1].ACR)
	}
}

func TestTrace_MaxEntriesCaps(t *testing.T) {
	tr := trace.New(nil)
	tr.MaxEntries = 2
	c := vm.NewCPU()
	for i := 0; i < 5; i++ {
		tr.Record(c, uint16(i), 0)
	}
	if len(tr.Entries()) != 2 {
		t.Fatalf("got %d entries, want 2 (capped)", len(tr.Entries()))
	}
}

func TestTrace_FlushWritesOneLinePerEntry(t *testing.T) {
	var buf bytes.Buffer
	tr := trace.New(&buf)
	c := vm.NewCPU()
	tr.Record(c, 0x10, 0xA001)
	tr.Record(c, 0x11, 0xB001)

	if err := tr.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("Flush wrote %d lines, want 2:\n%s", len(lines), buf.String())
	}
}
