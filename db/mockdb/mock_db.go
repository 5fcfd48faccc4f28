package mockdb

import (
	"context"

	"github.com/Eitve/RKL/model"
	"github.com/stretchr/testify/mock"
)

type DB struct {
	mock.Mock
}

func (db *DB) ListTeams(ctx context.Context) ([]model.Team, error) {
	args := db.Called(ctx)

	var r []model.Team
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Team)
	}
	return r, args.Error(1)
}

func (db *DB) GetTeam(ctx context.Context, id string) (*model.Team, error) {
	args := db.Called(ctx, id)

	var t *model.Team
	if args.Get(0) != nil {
		t = args.Get(0).(*model.Team)
	}
	return t, args.Error(1)
}

func (db *DB) SaveTeam(ctx context.Context, t *model.Team) error {
	args := db.Called(ctx, t)
	return args.Error(0)
}

func (db *DB) ListPlayers(ctx context.Context, teamID string) ([]model.Player, error) {
	args := db.Called(ctx, teamID)

	var r []model.Player
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Player)
	}
	return r, args.Error(1)
}

func (db *DB) GetPlayer(ctx context.Context, teamID, playerKey string) (*model.Player, error) {
	args := db.Called(ctx, teamID, playerKey)

	var p *model.Player
	if args.Get(0) != nil {
		p = args.Get(0).(*model.Player)
	}
	return p, args.Error(1)
}

func (db *DB) SavePlayer(ctx context.Context, p *model.Player) error {
	args := db.Called(ctx, p)
	return args.Error(0)
}

func (db *DB) UpdatePlayerAverages(ctx context.Context, teamID, playerKey string, avg *model.SeasonAverages) error {
	args := db.Called(ctx, teamID, playerKey, avg)
	return args.Error(0)
}

func (db *DB) ListGames(ctx context.Context) ([]model.Game, error) {
	args := db.Called(ctx)

	var r []model.Game
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Game)
	}
	return r, args.Error(1)
}

func (db *DB) GetGame(ctx context.Context, id string) (*model.Game, error) {
	args := db.Called(ctx, id)

	var g *model.Game
	if args.Get(0) != nil {
		g = args.Get(0).(*model.Game)
	}
	return g, args.Error(1)
}

func (db *DB) SaveGame(ctx context.Context, g *model.Game) error {
	args := db.Called(ctx, g)
	return args.Error(0)
}

func (db *DB) GetBoxScore(ctx context.Context, gameID string, side model.GameSide) ([]model.BoxScoreEntry, error) {
	args := db.Called(ctx, gameID, side)

	var r []model.BoxScoreEntry
	if args.Get(0) != nil {
		r = args.Get(0).([]model.BoxScoreEntry)
	}
	return r, args.Error(1)
}

func (db *DB) SaveBoxScore(ctx context.Context, gameID string, side model.GameSide, entries []model.BoxScoreEntry) error {
	args := db.Called(ctx, gameID, side, entries)
	return args.Error(0)
}

func (db *DB) ListScheduledGames(ctx context.Context) ([]model.ScheduledGame, error) {
	args := db.Called(ctx)

	var r []model.ScheduledGame
	if args.Get(0) != nil {
		r = args.Get(0).([]model.ScheduledGame)
	}
	return r, args.Error(1)
}

func (db *DB) SaveScheduledGame(ctx context.Context, g *model.ScheduledGame) error {
	args := db.Called(ctx, g)
	return args.Error(0)
}

func (db *DB) ListNews(ctx context.Context) ([]model.NewsItem, error) {
	args := db.Called(ctx)

	var r []model.NewsItem
	if args.Get(0) != nil {
		r = args.Get(0).([]model.NewsItem)
	}
	return r, args.Error(1)
}

func (db *DB) GetNews(ctx context.Context, id int32) (*model.NewsItem, error) {
	args := db.Called(ctx, id)

	var n *model.NewsItem
	if args.Get(0) != nil {
		n = args.Get(0).(*model.NewsItem)
	}
	return n, args.Error(1)
}

func (db *DB) SaveNews(ctx context.Context, n *model.NewsItem) error {
	args := db.Called(ctx, n)
	return args.Error(0)
}
