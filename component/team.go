package component

import "fmt"

// TeamID is write-once per unit; None never engages by team rule
type TeamID uint8

const (
	TeamNone TeamID = iota
	TeamOne
	TeamTwo
)

func (t TeamID) String() string {
	switch t {
	case TeamOne:
		return "one"
	case TeamTwo:
		return "two"
	default:
		return "none"
	}
}

// ParseTeam maps a config value to a team id
func ParseTeam(s string) (TeamID, error) {
	switch s {
	case "one", "1":
		return TeamOne, nil
	case "two", "2":
		return TeamTwo, nil
	case "none", "0", "":
		return TeamNone, nil
	}
	return TeamNone, fmt.Errorf("unknown team %q", s)
}
