package model

// StandingsRow is one slot in a division table. Slots are numbered 1..N
// where N is the division's fixed row count; slots without a real team
// have Team == nil and render as placeholders.
type StandingsRow struct {
	Place int
	Team  *TeamStanding
}

// TeamStanding is a team annotated with the counters derived from the
// completed games. These fields live in memory only; the store is not
// updated when standings are recomputed.
type TeamStanding struct {
	TeamID         string
	Name           string
	Icon           string
	Division       Division
	GamesPlayed    int
	Wins           int
	Losses         int
	PointsFor      int
	PointsAgainst  int
	PointsDiff     int
	StandingPoints int
}

// Standing points awarded per game result.
const (
	WinPoints  = 2
	LossPoints = 1
)
