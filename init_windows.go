// +build windows

package main

import (
	"fmt"
	"os"

	"golang.org/x/sys/windows"
)

// Error entries and the log prefix are ANSI colored, so the console has to
// interpret escape sequences.
func init() {
	for name, handle := range map[string]windows.Handle{
		"stdout": windows.Stdout,
		"stderr": windows.Stderr,
	} {
		if err := enableVirtualTerminal(handle); err != nil {
			fmt.Fprintf(os.Stderr, "adb-file-manager: %s: %v\n", name, err)
		}
	}
}

func enableVirtualTerminal(handle windows.Handle) error {
	var mode uint32
	if err := windows.GetConsoleMode(handle, &mode); err != nil {
		return fmt.Errorf("get console mode: %w", err)
	}
	if mode&windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING != 0 {
		return nil
	}
	if err := windows.SetConsoleMode(handle, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING); err != nil {
		return fmt.Errorf("set console mode: %w", err)
	}
	return nil
}
