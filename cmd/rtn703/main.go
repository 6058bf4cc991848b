// Command rtn703 loads a flat Raytheon 703 memory image and runs it
// to completion.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/dgeiselbrecht/rtn703/batchconsole"
	"github.com/dgeiselbrecht/rtn703/config"
	"github.com/dgeiselbrecht/rtn703/ioport"
	"github.com/dgeiselbrecht/rtn703/loader"
	"github.com/dgeiselbrecht/rtn703/trace"
	"github.com/dgeiselbrecht/rtn703/vm"
)

// Version is overridden at build time with -ldflags "-X main.Version=v1.2.3".
var Version = "dev"

func main() {
	var (
		configPath string
		maxBurst   int
		traceOn    bool
		traceFile  string
		exitCode   int
	)

	rootCmd := &cobra.Command{
		Use:     "rtn703 <memory-image>",
		Short:   "Raytheon 703 core emulator",
		Version: Version,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := run(args[0], configPath, maxBurst, traceOn, traceFile)
			exitCode = code
			return err
		},
	}

	rootCmd.Flags().StringVar(&configPath, "config", "", "config file path (default: platform config directory)")
	rootCmd.Flags().IntVar(&maxBurst, "max-burst", 0, "override MAX_INST burst size from config (0: use config)")
	rootCmd.Flags().BoolVar(&traceOn, "trace", false, "enable the per-instruction execution trace")
	rootCmd.Flags().StringVar(&traceFile, "trace-file", "", "trace output file (default: from config)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	os.Exit(exitCode)
}

// run loads the image, drives it to completion, and returns the
// process exit code alongside any error cobra should report.
func run(imagePath, configPath string, maxBurstOverride int, traceOn bool, traceFile string) (int, error) {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return 1, err
	}
	if traceOn {
		cfg.Trace.Enabled = true
	}
	if traceFile != "" {
		cfg.Trace.OutputFile = traceFile
	}

	e := vm.NewExecutor(ioport.New())
	if maxBurstOverride > 0 {
		e.MaxBurst = maxBurstOverride
	} else {
		e.MaxBurst = cfg.Execution.MaxBurst
	}
	if err := loader.LoadFile(imagePath, e.Memory); err != nil {
		return 1, err
	}

	console := batchconsole.New(e)
	if cfg.Trace.Enabled {
		traceOutput, err := os.Create(cfg.Trace.OutputFile) // #nosec G304 -- operator-supplied config path
		if err != nil {
			return 1, fmt.Errorf("failed to create trace file: %w", err)
		}
		defer traceOutput.Close()
		console.Trace = trace.New(traceOutput)
	}

	runErr := console.Drive()

	if console.Trace != nil {
		if flushErr := console.Trace.Flush(); flushErr != nil {
			log.Printf("failed to flush trace: %v", flushErr)
		}
	}

	log.Print(e.CPU.DumpState())

	if runErr != nil {
		log.Printf("halted on error: %v", runErr)
	}
	return batchconsole.ExitCode(runErr, cfg.Execution.HaltExitCode, cfg.Execution.IllegalExitCode), nil
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFrom(path)
}
