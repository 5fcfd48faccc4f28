package model

import (
	"strings"
)

type Position string

const (
	POS_UNKNOWN Position = "UNK"
	POS_PG      Position = "PG"
	POS_SG      Position = "SG"
	POS_SF      Position = "SF"
	POS_PF      Position = "PF"
	POS_C       Position = "C"
)

// ParsePosition accepts single positions like "PG" as well as combo
// listings like "SG/SF". Combos are kept verbatim, uppercased, so that
// Matches() can do per-part checks against them.
func ParsePosition(pos string) Position {
	pos = strings.ToUpper(strings.TrimSpace(pos))
	switch pos {
	case "PG":
		return POS_PG
	case "SG":
		return POS_SG
	case "SF":
		return POS_SF
	case "PF":
		return POS_PF
	case "C":
		return POS_C
	case "":
		return POS_UNKNOWN
	}

	if strings.Contains(pos, "/") {
		for _, p := range strings.Split(pos, "/") {
			if ParsePosition(p) == POS_UNKNOWN {
				return POS_UNKNOWN
			}
		}
		return Position(pos)
	}

	return POS_UNKNOWN
}

// Matches reports whether the position satisfies a leaderboard filter.
// A combo position like "SG/SF" matches both the "SG" and "SF" filters.
// An empty filter matches everything.
func (p Position) Matches(filter string) bool {
	filter = strings.ToUpper(strings.TrimSpace(filter))
	if filter == "" || filter == "ALL" {
		return true
	}
	for _, part := range strings.Split(string(p), "/") {
		if part == filter {
			return true
		}
	}
	return false
}
