package model

import (
	"strings"
	"time"
)

// Division is one of the fixed league tiers. The A division seeds 16
// standings slots, the two B groups seed 13 each.
type Division string

const (
	DivisionUnknown Division = ""
	DivisionA       Division = "A"
	DivisionBA      Division = "B-A"
	DivisionBB      Division = "B-B"
)

func ParseDivision(d string) Division {
	switch strings.ToUpper(strings.TrimSpace(d)) {
	case "A":
		return DivisionA
	case "B-A":
		return DivisionBA
	case "B-B":
		return DivisionBB
	default:
		return DivisionUnknown
	}
}

// RowCount is the fixed number of standings slots for the division.
// Standings tables are always padded to this length.
func (d Division) RowCount() int {
	if d == DivisionA {
		return 16
	}
	return 13
}

func (d Division) Valid() bool {
	return d == DivisionA || d == DivisionBA || d == DivisionBB
}

type Team struct {
	ID             string
	Name           string
	Division       Division
	Icon           string
	TeamPhoto      string
	HeadCoach      string
	AssistantCoach string
	TeamManager    string
	Achievements   []string
	Created        time.Time
}
