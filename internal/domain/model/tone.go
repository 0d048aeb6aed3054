package model

import "fmt"

// Tone selects the wording style of composed feedback. It indexes into the
// fixed phrase catalogs, so the zero value must stay ToneEmotive (the
// orchestrator's default).
type Tone int

const (
	ToneEmotive Tone = iota
	TonePlain
	ToneCute
	ToneFun
)

// String returns the lowercase tone name used in config and logs.
func (t Tone) String() string {
	switch t {
	case ToneEmotive:
		return "emotive"
	case TonePlain:
		return "plain"
	case ToneCute:
		return "cute"
	case ToneFun:
		return "fun"
	default:
		return "unknown"
	}
}

// ParseTone parses a tone name as used in config files.
func ParseTone(s string) (Tone, error) {
	switch s {
	case "", "emotive":
		return ToneEmotive, nil
	case "plain":
		return TonePlain, nil
	case "cute":
		return ToneCute, nil
	case "fun":
		return ToneFun, nil
	default:
		return ToneEmotive, fmt.Errorf("unknown tone: %s", s)
	}
}
