package model

// PlayerGameLine is one row of a player's game-by-game log: the line
// they posted plus the context of the game it came from.
type PlayerGameLine struct {
	GameID       string
	OpponentID   string
	OpponentName string
	Home         bool
	PointsHome   int
	PointsAway   int
	Win          bool
	Points       int
	Rebounds     int
	Assists      int
	Steals       int
	Blocks       int
	Minutes      string
}

// PlayerProfile is the full player screen payload: bio, live-computed
// overall averages and the per-game log.
type PlayerProfile struct {
	Player   Player
	TeamName string
	Overall  SeasonAverages
	Games    []PlayerGameLine
}
