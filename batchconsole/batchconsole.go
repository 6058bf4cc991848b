// Package batchconsole is the reference console collaborator a batch
// CLI needs to drive the Execution Unit at all: no breakpoints, no
// register display, no interactive stepping. It is not the TUI/GUI
// front panel; it is the minimal glue between Executor.Run and a
// process exit code.
package batchconsole

import (
	"errors"

	"github.com/dgeiselbrecht/rtn703/trace"
	"github.com/dgeiselbrecht/rtn703/vm"
)

// Console drives an Executor to completion, one burst of Run() at a
// time, optionally recording a trace of every retired instruction.
type Console struct {
	Executor *vm.Executor
	Trace    *trace.Trace // nil disables tracing
}

// New wires a Console around an already-constructed Executor.
func New(e *vm.Executor) *Console {
	return &Console{Executor: e}
}

// Drive runs the CPU to completion. With no Trace attached it sets
// MODE to RUN and calls Executor.Run in a loop, retiring up to
// Executor.MaxBurst instructions per call, the cooperative-yield batch
// execution the core is built around. With a Trace attached it steps
// one instruction at a time instead, so every retired instruction gets
// a diagnostic entry.
func (c *Console) Drive() error {
	if c.Trace == nil {
		c.Executor.CPU.Mode = vm.ModeRun
		for c.Executor.CPU.Mode != vm.ModeHalt {
			if err := c.Executor.Run(); err != nil {
				return err
			}
		}
		return nil
	}

	c.Executor.CPU.Mode = vm.ModeStep
	for c.Executor.CPU.Mode != vm.ModeHalt {
		pcr := c.Executor.CPU.PCR
		mbr := c.Executor.Memory.ReadWordUnsigned(pcr & vm.AddressMask)
		if err := c.Executor.Step(); err != nil {
			return err
		}
		c.Trace.Record(c.Executor.CPU, pcr, mbr)
	}
	return nil
}

// ExitCode maps a Drive() result to a process exit code: haltCode on
// a clean halt, illegalCode on an illegal instruction, 1 for anything
// else unexpected.
func ExitCode(err error, haltCode, illegalCode int) int {
	if err == nil {
		return haltCode
	}
	var illegal *vm.IllegalInstructionError
	if errors.As(err, &illegal) {
		return illegalCode
	}
	return 1
}
