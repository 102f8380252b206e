// Package clipboard provides cross-platform clipboard support.
package clipboard

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// command returns the platform's clipboard-write command, or nil when none
// is available.
func command() *exec.Cmd {
	switch runtime.GOOS {
	case "darwin":
		if _, err := exec.LookPath("pbcopy"); err == nil {
			return exec.Command("pbcopy")
		}
	case "windows":
		return exec.Command("cmd", "/c", "clip")
	default:
		if _, err := exec.LookPath("xclip"); err == nil {
			return exec.Command("xclip", "-selection", "clipboard")
		}
		if _, err := exec.LookPath("xsel"); err == nil {
			return exec.Command("xsel", "--clipboard", "--input")
		}
	}
	return nil
}

// Available reports whether a clipboard-write command exists on this system.
func Available() bool {
	return command() != nil
}

// Write copies text to the system clipboard.
func Write(text string) error {
	cmd := command()
	if cmd == nil {
		return fmt.Errorf("no clipboard command available")
	}
	cmd.Stdin = strings.NewReader(text)
	return cmd.Run()
}
