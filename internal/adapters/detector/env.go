// Package detector chooses how progress output is rendered.
package detector

import (
	"os"

	"github.com/muesli/termenv"
	"go.trai.ch/emorec/internal/ui/output"
	"golang.org/x/term"
)

// OutputMode is the rendering mode for progress output.
type OutputMode int

const (
	// ModeAuto defers to DetectEnvironment.
	ModeAuto OutputMode = iota
	// ModeInteractive renders for a terminal with full colour detection.
	ModeInteractive
	// ModeLinear renders plain CI logs with basic ANSI colours.
	ModeLinear
)

// DetectEnvironment returns ModeInteractive when stderr is a terminal and
// no CI variable is set, ModeLinear otherwise.
func DetectEnvironment() OutputMode {
	isTTY := term.IsTerminal(int(os.Stderr.Fd()))

	ci := os.Getenv("CI")
	isCI := ci == "true" || ci == "1"

	if !isTTY || isCI {
		return ModeLinear
	}
	return ModeInteractive
}

// ResolveMode applies the --output-mode flag on top of the detected mode.
func ResolveMode(autoDetected OutputMode, flag string) OutputMode {
	switch flag {
	case "interactive", "tty":
		return ModeInteractive
	case "linear", "ci":
		return ModeLinear
	default:
		return autoDetected
	}
}

// Profile returns the colour profile for mode.
func Profile(mode OutputMode) termenv.Profile {
	if mode == ModeInteractive {
		return output.ColorProfile()
	}
	return output.ColorProfileANSI()
}
