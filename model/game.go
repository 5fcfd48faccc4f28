package model

import (
	"strconv"
	"time"
)

// Game is one fixture. Final scores are nil until the game has been
// played; a game with both scores present is "completed" and counts
// toward standings and statistics.
type Game struct {
	ID         string
	HomeTeam   string
	AwayTeam   string
	Division   Division
	PointsHome *int
	PointsAway *int

	// Winner/Loser are the team IDs recorded at data-entry time. They are
	// advisory only: Result() always derives the outcome from the final
	// scores and logs callers can compare against these fields.
	Winner string
	Loser  string
}

func (g *Game) Completed() bool {
	return g.PointsHome != nil && g.PointsAway != nil
}

// GameResult is the outcome of a completed game as derived from the
// final scores. Draws do not exist in this league, so equal final scores
// are a data-entry error and yield no result.
type GameResult struct {
	WinnerID string
	LoserID  string
}

// Result derives the outcome from the final scores. The stored
// Winner/Loser fields are deliberately not consulted: a strictly higher
// score is the single source of truth for who won. Returns false for
// games that have not been played and for equal scores.
func (g *Game) Result() (GameResult, bool) {
	if !g.Completed() {
		return GameResult{}, false
	}
	if *g.PointsHome == *g.PointsAway {
		return GameResult{}, false
	}
	if *g.PointsHome > *g.PointsAway {
		return GameResult{WinnerID: g.HomeTeam, LoserID: g.AwayTeam}, true
	}
	return GameResult{WinnerID: g.AwayTeam, LoserID: g.HomeTeam}, true
}

// ScheduledGame is a future fixture. It is not yet a Game and never has
// box scores.
type ScheduledGame struct {
	ID       int32
	HomeTeam string
	AwayTeam string
	Division Division
	Arena    string
	Tipoff   time.Time
}

// ParseGameTime normalizes the two date encodings that appear in
// scheduled-game documents: an RFC 3339 string or epoch milliseconds.
func ParseGameTime(v string) (time.Time, error) {
	if ms, err := strconv.ParseInt(v, 10, 64); err == nil {
		return time.UnixMilli(ms).UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
