package tokenizer

import (
	"strings"

	"github.com/hiraoka/sudago/internal/analyzer"
)

// Mode selects the segmentation granularity.
type Mode int

const (
	// ModeShort splits into the shortest units, the UniDic short unit
	// equivalent (mode A).
	ModeShort Mode = iota
	// ModeMiddle produces word-like units (mode B).
	ModeMiddle
	// ModeLong keeps compounds and named entities together (mode C).
	ModeLong
)

// String returns the conventional single-letter name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeShort:
		return "A"
	case ModeMiddle:
		return "B"
	case ModeLong:
		return "C"
	default:
		return "unknown"
	}
}

// ParseMode accepts the single-letter names A/B/C as well as the spelled-out
// short/middle/long, case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "a", "short":
		return ModeShort, nil
	case "b", "middle":
		return ModeMiddle, nil
	case "c", "long":
		return ModeLong, nil
	default:
		return 0, errorf(ErrInvalidArgument, "unknown segmentation mode %q", s)
	}
}

func (m Mode) analyzerMode() analyzer.Mode {
	switch m {
	case ModeShort:
		return analyzer.ModeA
	case ModeMiddle:
		return analyzer.ModeB
	default:
		return analyzer.ModeC
	}
}

func modeFromAnalyzer(m analyzer.Mode) Mode {
	switch m {
	case analyzer.ModeA:
		return ModeShort
	case analyzer.ModeB:
		return ModeMiddle
	default:
		return ModeLong
	}
}
