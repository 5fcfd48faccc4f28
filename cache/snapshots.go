// Package cache keeps short-lived JSON snapshots of computed standings
// and leaderboards in Redis so that repeated reads between data entry
// sessions do not re-aggregate every game. The controller treats every
// cache failure as a miss and recomputes; nothing here is load-bearing.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Eitve/RKL/model"
	"github.com/redis/go-redis/v9"
)

// TTL constants
const (
	StandingsTTL   = 10 * time.Minute
	LeaderboardTTL = 10 * time.Minute
)

var ErrMiss = errors.New("cache miss")

type Snapshots struct {
	client *redis.Client
}

func New(ctx context.Context, addr string) (*Snapshots, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("error connecting to redis at %s: %w", addr, err)
	}
	return &Snapshots{client: client}, nil
}

func (s *Snapshots) WriteStandings(ctx context.Context, division model.Division, rows []model.StandingsRow) error {
	key := standingsKey(division)

	data, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("marshaling standings: %w", err)
	}

	return s.client.Set(ctx, key, data, StandingsTTL).Err()
}

func (s *Snapshots) ReadStandings(ctx context.Context, division model.Division) ([]model.StandingsRow, error) {
	data, err := s.client.Get(ctx, standingsKey(division)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrMiss
		}
		return nil, err
	}

	var rows []model.StandingsRow
	if err := json.Unmarshal([]byte(data), &rows); err != nil {
		return nil, fmt.Errorf("unmarshaling standings: %w", err)
	}
	return rows, nil
}

func (s *Snapshots) WriteLeaderboard(ctx context.Context, pos string, stat model.StatCategory, entries []model.LeaderboardEntry) error {
	key := leaderboardKey(pos, stat)

	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshaling leaderboard: %w", err)
	}

	return s.client.Set(ctx, key, data, LeaderboardTTL).Err()
}

func (s *Snapshots) ReadLeaderboard(ctx context.Context, pos string, stat model.StatCategory) ([]model.LeaderboardEntry, error) {
	data, err := s.client.Get(ctx, leaderboardKey(pos, stat)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrMiss
		}
		return nil, err
	}

	var entries []model.LeaderboardEntry
	if err := json.Unmarshal([]byte(data), &entries); err != nil {
		return nil, fmt.Errorf("unmarshaling leaderboard: %w", err)
	}
	return entries, nil
}

// Invalidate drops every snapshot. Called after box scores or rosters
// change so the next read recomputes.
func (s *Snapshots) Invalidate(ctx context.Context) error {
	iter := s.client.Scan(ctx, 0, "standings:*", 0).Iterator()
	keys := make([]string, 0, 8)
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}

	iter = s.client.Scan(ctx, 0, "leaders:*", 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}

	if len(keys) == 0 {
		return nil
	}
	return s.client.Del(ctx, keys...).Err()
}

func standingsKey(division model.Division) string {
	return fmt.Sprintf("standings:%s", division)
}

func leaderboardKey(pos string, stat model.StatCategory) string {
	if pos == "" {
		pos = "all"
	}
	return fmt.Sprintf("leaders:%s:%s", pos, stat)
}
