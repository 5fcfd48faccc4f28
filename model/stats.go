package model

import (
	"strings"
)

// PlayerTotals is the accumulator for one player across all games:
// raw counting totals plus display metadata carried from the roster.
type PlayerTotals struct {
	TeamID    string
	PlayerKey string
	FirstName string
	LastName  string
	TeamName  string
	Position  Position
	PhotoURL  string

	GamesPlayed int
	Points      int
	OffReb      int
	DefReb      int
	Assists     int
	Steals      int
	Blocks      int
	Turnovers   int
	Fouls       int
	PlusMinus   int
	Efficiency  int
	Seconds     int
	TwoPM       int
	TwoPA       int
	ThreePM     int
	ThreePA     int
	FTM         int
	FTA         int
}

// Add folds one box-score line into the totals.
func (t *PlayerTotals) Add(e *BoxScoreEntry) {
	t.GamesPlayed++
	t.Points += e.Points
	t.OffReb += e.OffReb
	t.DefReb += e.DefReb
	t.Assists += e.Assists
	t.Steals += e.Steals
	t.Blocks += e.Blocks
	t.Turnovers += e.Turnovers
	t.Fouls += e.Fouls
	t.PlusMinus += e.PlusMinus
	t.Efficiency += e.Efficiency
	t.Seconds += e.SecsPlayed
	t.TwoPM += e.TwoPM
	t.TwoPA += e.TwoPA
	t.ThreePM += e.ThreePM
	t.ThreePA += e.ThreePA
	t.FTM += e.FTM
	t.FTA += e.FTA
}

// Averages derives the per-game numbers. A player with zero recorded
// games yields the zero value rather than a division error.
func (t *PlayerTotals) SeasonAverages() SeasonAverages {
	a := SeasonAverages{GamesPlayed: t.GamesPlayed}
	if t.GamesPlayed == 0 {
		return a
	}
	gp := float64(t.GamesPlayed)
	a.Points = float64(t.Points) / gp
	a.Rebounds = float64(t.OffReb+t.DefReb) / gp
	a.Assists = float64(t.Assists) / gp
	a.Steals = float64(t.Steals) / gp
	a.Blocks = float64(t.Blocks) / gp
	a.Efficiency = float64(t.Efficiency) / gp
	a.AvgSeconds = t.Seconds / t.GamesPlayed
	a.FieldGoal = pct(t.TwoPM+t.ThreePM, t.TwoPA+t.ThreePA)
	a.TwoPoint = pct(t.TwoPM, t.TwoPA)
	a.ThreePoint = pct(t.ThreePM, t.ThreePA)
	a.FreeThrow = pct(t.FTM, t.FTA)
	return a
}

func pct(made, attempted int) float64 {
	if attempted == 0 {
		return 0
	}
	return float64(made) / float64(attempted) * 100
}

// StatCategory selects the leaderboard sort column. Counting categories
// compare per-game averages, percentage categories compare shooting
// splits, EFF compares average efficiency.
type StatCategory string

const (
	StatUnknown  StatCategory = ""
	StatPoints   StatCategory = "PTS"
	StatRebounds StatCategory = "REB"
	StatAssists  StatCategory = "AST"
	StatSteals   StatCategory = "STL"
	StatBlocks   StatCategory = "BLK"
	StatFGPct    StatCategory = "FG%"
	StatTwoPct   StatCategory = "2PT%"
	StatThreePct StatCategory = "3PT%"
	StatFTPct    StatCategory = "FT%"
	StatEff      StatCategory = "EFF"
)

func ParseStatCategory(s string) StatCategory {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "PTS", "POINTS":
		return StatPoints
	case "REB", "REBOUNDS":
		return StatRebounds
	case "AST", "ASSISTS":
		return StatAssists
	case "STL", "STEALS":
		return StatSteals
	case "BLK", "BLOCKS":
		return StatBlocks
	case "FG%":
		return StatFGPct
	case "2PT%":
		return StatTwoPct
	case "3PT%":
		return StatThreePct
	case "FT%":
		return StatFTPct
	case "EFF":
		return StatEff
	default:
		return StatUnknown
	}
}

func (c StatCategory) IsPercentage() bool {
	return strings.HasSuffix(string(c), "%")
}

// Value extracts the sort value for this category from the totals.
func (c StatCategory) Value(t *PlayerTotals) float64 {
	a := t.SeasonAverages()
	switch c {
	case StatPoints:
		return a.Points
	case StatRebounds:
		return a.Rebounds
	case StatAssists:
		return a.Assists
	case StatSteals:
		return a.Steals
	case StatBlocks:
		return a.Blocks
	case StatFGPct:
		return a.FieldGoal
	case StatTwoPct:
		return a.TwoPoint
	case StatThreePct:
		return a.ThreePoint
	case StatFTPct:
		return a.FreeThrow
	case StatEff:
		return a.Efficiency
	default:
		return 0
	}
}

// LeaderboardEntry is one ranked row. Tied is set when the entry's sort
// value equals the previous entry's, so the UI can show a tied-rank label.
type LeaderboardEntry struct {
	Rank   int
	Tied   bool
	Value  float64
	Player PlayerTotals
}
