package vm

import "fmt"

// IllegalInstructionError is returned when the decoder encounters an
// opcode encoding with no defined meaning.
type IllegalInstructionError struct {
	INR uint8
	MBR uint16
}

func (e *IllegalInstructionError) Error() string {
	return fmt.Sprintf("illegal instruction: INR=0x%02X MBR=0x%04X", e.INR, e.MBR)
}

// NotImplementedError reports a decoded-but-unhandled encoding. No
// instruction in this package returns it: an Executor built without an
// I/O collaborator uses NullIOPort, so DIN/DOT/SSE/SS0-SS3 still run.
type NotImplementedError struct {
	What string
}

func (e *NotImplementedError) Error() string {
	return fmt.Sprintf("not implemented: %s", e.What)
}
