package classify

// Decision is the classification outcome for one path.
type Decision int

const (
	NotInteresting Decision = iota
	Blocked
	Forced
	TypeMatchBinary
	TypeMatchScript
)

var decisionNames = map[Decision]string{
	NotInteresting:  "not-interesting",
	Blocked:         "blocked",
	Forced:          "forced",
	TypeMatchBinary: "type-match-binary",
	TypeMatchScript: "type-match-script",
}

func (d Decision) String() string {
	if name, ok := decisionNames[d]; ok {
		return name
	}
	return "unknown"
}

func (d Decision) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// ShouldUpload reports whether files with this decision are sent to intake.
func (d Decision) ShouldUpload() bool {
	switch d {
	case Forced, TypeMatchBinary, TypeMatchScript:
		return true
	default:
		return false
	}
}

// Decisions lists every decision in a stable order.
func Decisions() []Decision {
	return []Decision{Blocked, Forced, TypeMatchBinary, TypeMatchScript, NotInteresting}
}
