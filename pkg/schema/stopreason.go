package schema

import (
	"encoding/json"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// The reason the remote agent stopped generating. Values which are not
// recognised decode as StopUnknown rather than failing.
type StopReason uint

////////////////////////////////////////////////////////////////////////////////
// CONSTANTS

const (
	StopNone          StopReason = iota // Not set on the wire
	StopComplete                        // Final answer
	StopReturnControl                   // Local function call requested
	StopError                           // Remote failure
	StopUnknown                         // Not recognised
)

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (r StopReason) String() string {
	switch r {
	case StopNone:
		return ""
	case StopComplete:
		return "COMPLETE"
	case StopReturnControl:
		return "RETURN_CONTROL"
	case StopError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

////////////////////////////////////////////////////////////////////////////////
// JSON MARSHAL

func (r StopReason) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

func (r *StopReason) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "":
		*r = StopNone
	case "COMPLETE":
		*r = StopComplete
	case "RETURN_CONTROL":
		*r = StopReturnControl
	case "ERROR":
		*r = StopError
	default:
		*r = StopUnknown
	}
	return nil
}
