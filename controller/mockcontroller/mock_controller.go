package mockcontroller

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/Eitve/RKL/model"
	"github.com/stretchr/testify/mock"
)

// MockC is a testify mock of controller.C for web handler tests.
type MockC struct {
	mock.Mock
}

func (m *MockC) GetStandings(ctx context.Context, division model.Division) ([]model.StandingsRow, error) {
	args := m.Called(ctx, division)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.StandingsRow), args.Error(1)
}

func (m *MockC) GetLeaderboard(ctx context.Context, posFilter string, stat model.StatCategory) ([]model.LeaderboardEntry, error) {
	args := m.Called(ctx, posFilter, stat)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.LeaderboardEntry), args.Error(1)
}

func (m *MockC) GetGameBoxScore(ctx context.Context, gameID string) (*model.GameBoxScore, error) {
	args := m.Called(ctx, gameID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.GameBoxScore), args.Error(1)
}

func (m *MockC) ListGames(ctx context.Context, division model.Division, completed bool) ([]model.Game, error) {
	args := m.Called(ctx, division, completed)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Game), args.Error(1)
}

func (m *MockC) GetGame(ctx context.Context, id string) (*model.Game, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Game), args.Error(1)
}

func (m *MockC) ListScheduledGames(ctx context.Context, division model.Division) ([]model.ScheduledGame, error) {
	args := m.Called(ctx, division)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ScheduledGame), args.Error(1)
}

func (m *MockC) ListTeams(ctx context.Context) ([]model.Team, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Team), args.Error(1)
}

func (m *MockC) GetTeam(ctx context.Context, id string) (*model.Team, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Team), args.Error(1)
}

func (m *MockC) ListTeamPlayers(ctx context.Context, teamID string) ([]model.Player, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Player), args.Error(1)
}

func (m *MockC) GetPlayerProfile(ctx context.Context, teamID, playerKey string) (*model.PlayerProfile, error) {
	args := m.Called(ctx, teamID, playerKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PlayerProfile), args.Error(1)
}

func (m *MockC) ListNews(ctx context.Context) ([]model.NewsItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.NewsItem), args.Error(1)
}

func (m *MockC) GetNews(ctx context.Context, id int32) (*model.NewsItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.NewsItem), args.Error(1)
}

func (m *MockC) ImportTeam(ctx context.Context, r io.Reader) (*model.Team, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Team), args.Error(1)
}

func (m *MockC) ImportSchedule(ctx context.Context, r io.Reader) (int, error) {
	args := m.Called(ctx, r)
	return args.Int(0), args.Error(1)
}

func (m *MockC) ImportBoxScore(ctx context.Context, gameID string, side model.GameSide, r io.Reader) error {
	args := m.Called(ctx, gameID, side, r)
	return args.Error(0)
}

func (m *MockC) RefreshPlayerAverages(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockC) RunPeriodicStatsRefresh(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	m.Called(frequency, shutdown, wg)
}
