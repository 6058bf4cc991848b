package vm_test

import (
	"testing"

	"github.com/dgeiselbrecht/rtn703/vm"
)

func step(t *testing.T, e *vm.Executor) {
	t.Helper()
	e.CPU.Mode = vm.ModeStep
	if err := e.Run(); err != nil {
		t.Fatalf("Run() = %v", err)
	}
}

// word reinterprets a 16-bit pattern as a signed register value.
func word(v uint16) int16 {
	return int16(v)
}

func TestShift_SRAPreservesSign(t *testing.T) {
	e := vm.NewExecutor(nil)
	e.CPU.ACR = -8 // 0xFFF8
	e.Memory.WriteWord(0, 0x0901) // INR=0x09 (shift-arith), SRA count 1
	step(t, e)
	if e.CPU.ACR != -4 {
		t.Fatalf("SRA(-8,1) = %d, want -4", e.CPU.ACR)
	}
}

func TestShift_SLADetectsOverflow(t *testing.T) {
	e := vm.NewExecutor(nil)
	e.CPU.ACR = 0x4000 // top two bits differ after one shift
	e.Memory.WriteWord(0, 0x0911) // SLA count 1
	step(t, e)
	if !e.CPU.Overflow() {
		t.Fatal("SLA did not set OVF when a significant bit was shifted out")
	}
}

func TestShift_SRCRotatesCircularly(t *testing.T) {
	e := vm.NewExecutor(nil)
	e.CPU.ACR = int16(uint16(0x0001))
	e.Memory.WriteWord(0, 0x0941) // SRC count 1
	step(t, e)
	if uint16(e.CPU.ACR) != 0x8000 {
		t.Fatalf("SRC(0x0001,1) = 0x%04X, want 0x8000", uint16(e.CPU.ACR))
	}
}

func TestShift_DoubleWordCombinesACRAndIXR(t *testing.T) {
	e := vm.NewExecutor(nil)
	e.CPU.ACR = int16(uint16(0x0001))
	e.CPU.IXR = 0
	e.Memory.WriteWord(0, 0x0931) // SLAD count 1
	step(t, e)
	if uint16(e.CPU.ACR) != 0x0002 || e.CPU.IXR != 0 {
		t.Fatalf("SLAD = ACR:IXR 0x%04X:0x%04X, want 0x0002:0x0000", uint16(e.CPU.ACR), uint16(e.CPU.IXR))
	}
}

func TestShift_LogicalRightIsUnsigned(t *testing.T) {
	e := vm.NewExecutor(nil)
	e.CPU.ACR = -1 // 0xFFFF
	e.Memory.WriteWord(0, 0x0A01) // INR=0x0A (shift-logical), SRL count 1
	step(t, e)
	if uint16(e.CPU.ACR) != 0x7FFF {
		t.Fatalf("SRL(0xFFFF,1) = 0x%04X, want 0x7FFF", uint16(e.CPU.ACR))
	}
}

func TestShift_ByteCircularAffectsOnlySelectedByte(t *testing.T) {
	e := vm.NewExecutor(nil)
	e.CPU.ACR = int16(uint16(0x0102))
	e.Memory.WriteWord(0, 0x0A41) // SRCL count 1 (left byte circular right)
	step(t, e)
	if uint16(e.CPU.ACR) != 0x8002 {
		t.Fatalf("SRCL touched the wrong byte: got 0x%04X, want 0x8002", uint16(e.CPU.ACR))
	}
}
