package controller

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/Eitve/RKL/cache"
	"github.com/Eitve/RKL/db"
	"github.com/Eitve/RKL/model"
	"github.com/itbasis/go-clock"
)

var ErrTeamExists = errors.New("team already exists")

// C encapsulates business logic without worrying about any web layers
type C interface {
	// Standings for one division, always padded to the division's fixed
	// row count. Ranked by standing points, then point differential, then
	// team name.
	GetStandings(ctx context.Context, division model.Division) ([]model.StandingsRow, error)

	// Leaderboard of per-game averages filtered by position and sorted by
	// the selected category.
	GetLeaderboard(ctx context.Context, posFilter string, stat model.StatCategory) ([]model.LeaderboardEntry, error)

	// Full box score for one game, both sides, display-ready.
	GetGameBoxScore(ctx context.Context, gameID string) (*model.GameBoxScore, error)

	ListGames(ctx context.Context, division model.Division, completed bool) ([]model.Game, error)
	GetGame(ctx context.Context, id string) (*model.Game, error)
	ListScheduledGames(ctx context.Context, division model.Division) ([]model.ScheduledGame, error)

	ListTeams(ctx context.Context) ([]model.Team, error)
	GetTeam(ctx context.Context, id string) (*model.Team, error)
	ListTeamPlayers(ctx context.Context, teamID string) ([]model.Player, error)
	// Player bio plus live-computed overall averages and game log.
	GetPlayerProfile(ctx context.Context, teamID, playerKey string) (*model.PlayerProfile, error)

	ListNews(ctx context.Context) ([]model.NewsItem, error)
	GetNews(ctx context.Context, id int32) (*model.NewsItem, error)

	// Parses a team-with-roster JSON document and creates the team and its
	// players. Refuses to overwrite an existing team.
	ImportTeam(ctx context.Context, r io.Reader) (*model.Team, error)
	// Parses a schedule JSON document and saves its fixtures. Dates accept
	// RFC 3339 strings and epoch milliseconds.
	ImportSchedule(ctx context.Context, r io.Reader) (int, error)
	// Parses one side's box score JSON document, with time on court in the
	// "M:SS" display form, and replaces that side's entries for the game.
	ImportBoxScore(ctx context.Context, gameID string, side model.GameSide, r io.Reader) error

	// Recomputes every player's season averages from the box scores and
	// persists them as the cached averages block. Per-player failures are
	// logged and do not stop the refresh.
	RefreshPlayerAverages(ctx context.Context) error
	RunPeriodicStatsRefresh(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup)
}

type controller struct {
	clock clock.Clock
	db    db.DB
	// snapshots may be nil; every use degrades to compute-on-read.
	snapshots *cache.Snapshots
}

func New(clock clock.Clock, db db.DB, snapshots *cache.Snapshots) (C, error) {
	c := &controller{
		clock:     clock,
		db:        db,
		snapshots: snapshots,
	}
	return c, nil
}

func (c *controller) ListTeams(ctx context.Context) ([]model.Team, error) {
	return c.db.ListTeams(ctx)
}

func (c *controller) GetTeam(ctx context.Context, id string) (*model.Team, error) {
	return c.db.GetTeam(ctx, id)
}

func (c *controller) ListTeamPlayers(ctx context.Context, teamID string) ([]model.Player, error) {
	return c.db.ListPlayers(ctx, teamID)
}

func (c *controller) GetGame(ctx context.Context, id string) (*model.Game, error) {
	return c.db.GetGame(ctx, id)
}

func (c *controller) ListNews(ctx context.Context) ([]model.NewsItem, error) {
	return c.db.ListNews(ctx)
}

func (c *controller) GetNews(ctx context.Context, id int32) (*model.NewsItem, error) {
	return c.db.GetNews(ctx, id)
}
