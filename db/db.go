package db

import (
	"context"

	"github.com/Eitve/RKL/model"
)

type DB interface {
	ListTeams(ctx context.Context) ([]model.Team, error)
	GetTeam(ctx context.Context, id string) (*model.Team, error)
	SaveTeam(ctx context.Context, t *model.Team) error

	// Players are a sub-collection of their team and are addressed by the
	// (teamID, playerKey) pair used everywhere in the aggregators.
	ListPlayers(ctx context.Context, teamID string) ([]model.Player, error)
	GetPlayer(ctx context.Context, teamID, playerKey string) (*model.Player, error)
	SavePlayer(ctx context.Context, p *model.Player) error
	// UpdatePlayerAverages refreshes only the cached season-averages block.
	UpdatePlayerAverages(ctx context.Context, teamID, playerKey string, avg *model.SeasonAverages) error

	ListGames(ctx context.Context) ([]model.Game, error)
	GetGame(ctx context.Context, id string) (*model.Game, error)
	SaveGame(ctx context.Context, g *model.Game) error

	GetBoxScore(ctx context.Context, gameID string, side model.GameSide) ([]model.BoxScoreEntry, error)
	// SaveBoxScore replaces one side's entries for a game in a single
	// transaction. Entry order is preserved on read via the insert order.
	SaveBoxScore(ctx context.Context, gameID string, side model.GameSide, entries []model.BoxScoreEntry) error

	ListScheduledGames(ctx context.Context) ([]model.ScheduledGame, error)
	SaveScheduledGame(ctx context.Context, g *model.ScheduledGame) error

	ListNews(ctx context.Context) ([]model.NewsItem, error)
	GetNews(ctx context.Context, id int32) (*model.NewsItem, error)
	SaveNews(ctx context.Context, n *model.NewsItem) error
}
