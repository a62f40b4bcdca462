package schema

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Verbosity controls how much the library logs about a run
type Verbosity uint

// TraceLevel controls how much of the remote reasoning is reported
type TraceLevel uint

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	VerbosityQuiet Verbosity = iota
	VerbosityNormal
	VerbosityVerbose
	VerbosityDebug
)

const (
	TraceNone TraceLevel = iota
	TraceMinimal
	TraceStandard
	TraceDetailed
	TraceRaw
)

// LevelTrace is the log level for request and response payloads
const LevelTrace = slog.LevelDebug - 4

var (
	verbosityNames = []string{"quiet", "normal", "verbose", "debug"}
	traceNames     = []string{"none", "minimal", "standard", "detailed", "raw"}
)

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// ParseVerbosity returns the verbosity for a case-insensitive name
func ParseVerbosity(s string) (Verbosity, error) {
	for i, name := range verbosityNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return Verbosity(i), nil
		}
	}
	return VerbosityNormal, fmt.Errorf("invalid verbosity: %q", s)
}

// ParseTraceLevel returns the trace level for a case-insensitive name
func ParseTraceLevel(s string) (TraceLevel, error) {
	for i, name := range traceNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return TraceLevel(i), nil
		}
	}
	return TraceNone, fmt.Errorf("invalid trace level: %q", s)
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (v Verbosity) String() string {
	if int(v) < len(verbosityNames) {
		return verbosityNames[v]
	}
	return fmt.Sprintf("verbosity(%d)", uint(v))
}

func (l TraceLevel) String() string {
	if int(l) < len(traceNames) {
		return traceNames[l]
	}
	return fmt.Sprintf("trace(%d)", uint(l))
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Level returns the minimum log level for the verbosity, and false when
// nothing should be logged
func (v Verbosity) Level() (slog.Level, bool) {
	switch v {
	case VerbosityQuiet:
		return 0, false
	case VerbosityVerbose:
		return slog.LevelDebug, true
	case VerbosityDebug:
		return LevelTrace, true
	default:
		return slog.LevelInfo, true
	}
}

////////////////////////////////////////////////////////////////////////////////
// JSON MARSHAL

func (v Verbosity) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.String())
}

func (v *Verbosity) UnmarshalJSON(data []byte) (err error) {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*v, err = ParseVerbosity(s)
	return err
}

func (l TraceLevel) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

func (l *TraceLevel) UnmarshalJSON(data []byte) (err error) {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*l, err = ParseTraceLevel(s)
	return err
}
