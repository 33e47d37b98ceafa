package clipboard

import (
	"fmt"
	"os/exec"
	"runtime"
)

// For testing - allows us to mock these functions
var (
	execCommand  = exec.Command
	execLookPath = exec.LookPath
	runtimeGOOS  = runtime.GOOS
)

// Copy copies text to the clipboard and returns an error if unsuccessful
func Copy(text string) error {
	switch runtimeGOOS {
	case "darwin":
		return pipeTo(text, "pbcopy")
	case "linux":
		return copyLinux(text)
	default:
		return fmt.Errorf("unsupported platform: %s", runtimeGOOS)
	}
}

// copyLinux copies text to the clipboard on Linux, preferring the
// Wayland tool and falling back to xclip
func copyLinux(text string) error {
	if _, err := execLookPath("wl-copy"); err == nil {
		return pipeTo(text, "wl-copy")
	}
	if _, err := execLookPath("xclip"); err == nil {
		return pipeTo(text, "xclip", "-selection", "clipboard")
	}
	return fmt.Errorf("no clipboard tool found (tried wl-copy, xclip)")
}

// pipeTo runs a clipboard tool and writes text to its stdin
func pipeTo(text, name string, args ...string) error {
	cmd := execCommand(name, args...)
	pipe, err := cmd.StdinPipe()
	if err != nil {
		return err
	}

	if err := cmd.Start(); err != nil {
		return err
	}

	if _, err := pipe.Write([]byte(text)); err != nil {
		return err
	}

	if err := pipe.Close(); err != nil {
		return err
	}

	return cmd.Wait()
}
