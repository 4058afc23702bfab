//go:build linux

package main

import (
	"os"

	"golang.org/x/sys/unix"
)

// redirectStdIO points the stdout and stderr descriptors at path so panic
// traces from a scripted build end up in the file.
func redirectStdIO(path string) error {
	if path == "" {
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	// Dup3 exists on every linux arch; Dup2 is missing on arm64.
	if err := unix.Dup3(int(f.Fd()), int(os.Stdout.Fd()), 0); err != nil {
		return err
	}
	return unix.Dup3(int(f.Fd()), int(os.Stderr.Fd()), 0)
}
