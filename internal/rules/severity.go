package rules

import (
	"encoding"
	"fmt"
)

// Severity ranks how serious a rule's findings are.
type Severity int

const (
	severityInvalid Severity = iota

	// SeverityInfo marks stylistic observations.
	SeverityInfo

	// SeverityWarning marks likely defects worth a look.
	SeverityWarning

	// SeverityError marks defects that should not ship.
	SeverityError

	// SeverityFault is reserved for findings the scanner produces on its
	// own behalf, unparsable files and failed detectors. It ranks above
	// SeverityError and regular rules must not use it.
	SeverityFault
)

var (
	_ fmt.Stringer             = SeverityInfo
	_ encoding.TextMarshaler   = SeverityInfo
	_ encoding.TextUnmarshaler = new(Severity)
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityFault:
		return "fault"
	default:
		return fmt.Sprintf("unsupported severity %d", int(s))
	}
}

// MarshalText to implement encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	switch s {
	case SeverityInfo, SeverityWarning, SeverityError, SeverityFault:
		return []byte(s.String()), nil
	default:
		return nil, fmt.Errorf("unsupported severity %d", int(s))
	}
}

// UnmarshalText to implement encoding.TextUnmarshaler.
func (s *Severity) UnmarshalText(text []byte) error {
	switch string(text) {
	case "info":
		*s = SeverityInfo
	case "warning":
		*s = SeverityWarning
	case "error":
		*s = SeverityError
	case "fault":
		*s = SeverityFault
	default:
		return fmt.Errorf("unknown severity %q, expected one of info, warning, error", string(text))
	}

	return nil
}
