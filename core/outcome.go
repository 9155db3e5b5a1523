package core

// Outcome is the terminal state of a match
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeDefeat
	OutcomeQuit
)

func (o Outcome) String() string {
	switch o {
	case OutcomeDefeat:
		return "defeat"
	case OutcomeQuit:
		return "quit"
	default:
		return "none"
	}
}
