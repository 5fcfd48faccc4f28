package model

import (
	"fmt"
	"math"
)

type GameSide string

const (
	SideHome GameSide = "home"
	SideAway GameSide = "away"
)

// BoxScoreEntry is one player's line for one side of one game.
// PlayerKey is the stable roster key when the data-entry tool recorded
// one; older documents only carry the free-text Name and are joined by
// normalized-name match.
type BoxScoreEntry struct {
	GameID     string
	Side       GameSide
	Name       string
	PlayerKey  string
	IsStarter  bool
	IsCaptain  bool
	SecsPlayed int
	TwoPM      int
	TwoPA      int
	ThreePM    int
	ThreePA    int
	FTM        int
	FTA        int
	OffReb     int
	DefReb     int
	Assists    int
	Steals     int
	Blocks     int
	Turnovers  int
	Fouls      int
	PlusMinus  int
	Points     int
	Efficiency int
}

// Field goals are not stored; they are always the sum of the two- and
// three-point splits.
func (e *BoxScoreEntry) FieldGoalsMade() int {
	return e.TwoPM + e.ThreePM
}

func (e *BoxScoreEntry) FieldGoalsAttempted() int {
	return e.TwoPA + e.ThreePA
}

func (e *BoxScoreEntry) TotalRebounds() int {
	return e.OffReb + e.DefReb
}

// RosterKey is the key used to join the entry against the roster:
// the stable player key when present, otherwise the normalized name.
func (e *BoxScoreEntry) RosterKey() string {
	if e.PlayerKey != "" {
		return e.PlayerKey
	}
	return NormalizeName(e.Name)
}

// Percentage renders made/attempted as a whole-number percent string,
// or a dash when there were no attempts. It never divides by zero.
func Percentage(made, attempted int) string {
	if attempted <= 0 {
		return "-"
	}
	return fmt.Sprintf("%d%%", int(math.Round(float64(made)/float64(attempted)*100)))
}

// BoxScoreRow is a display-ready line: the raw entry joined with roster
// metadata plus the derived shooting numbers.
type BoxScoreRow struct {
	BoxScoreEntry
	ShirtNumber int  // 0 when the roster join failed
	HasShirt    bool // distinguishes shirt number 0 from "not found"
	Position    Position

	FG       int
	FGA      int
	FGPct    string
	TwoPct   string
	ThreePct string
	FTPct    string
	Rebounds int
	Minutes  string
}

// GameBoxScore is one game's full box score for both sides, with the
// rendered team headers and the bench divider indexes.
type GameBoxScore struct {
	Game     Game
	HomeName string
	AwayName string
	Home     []BoxScoreRow
	Away     []BoxScoreRow

	// Index of the first bench row in each slice, or -1 when no divider
	// should be drawn (all starters, or the list opens with bench players).
	HomeDivider int
	AwayDivider int
}
