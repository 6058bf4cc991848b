// Package loader reads a flat Raytheon 703 memory image from disk into
// a vm.Memory.
package loader

import (
	"fmt"
	"os"

	"github.com/dgeiselbrecht/rtn703/vm"
)

// LoadFile reads a 65,536-byte big-endian memory image from path and
// loads it into m.
func LoadFile(path string, m *vm.Memory) error {
	data, err := os.ReadFile(path) // #nosec G304 -- operator-supplied memory image path
	if err != nil {
		return fmt.Errorf("failed to read memory image %q: %w", path, err)
	}
	if err := m.LoadImage(data); err != nil {
		return fmt.Errorf("failed to load memory image %q: %w", path, err)
	}
	return nil
}

// SaveFile writes the full contents of m to path as a 65,536-byte
// big-endian image, the inverse of LoadFile.
func SaveFile(path string, m *vm.Memory) error {
	if err := os.WriteFile(path, m.Dump(), 0644); err != nil {
		return fmt.Errorf("failed to write memory image %q: %w", path, err)
	}
	return nil
}
