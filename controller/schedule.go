package controller

import (
	"context"
	"fmt"

	"github.com/Eitve/RKL/model"
)

// ListGames returns the division's fixtures, split by completion state.
// A game belongs to exactly one bucket: completed when both final scores
// exist, upcoming otherwise.
func (c *controller) ListGames(ctx context.Context, division model.Division, completed bool) ([]model.Game, error) {
	if !division.Valid() {
		return nil, fmt.Errorf("error not a valid division: '%s'", division)
	}

	games, err := c.db.ListGames(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading games: %w", err)
	}

	filtered := make([]model.Game, 0, len(games))
	for _, g := range games {
		if g.Division != division {
			continue
		}
		if g.Completed() != completed {
			continue
		}
		filtered = append(filtered, g)
	}
	return filtered, nil
}

func (c *controller) ListScheduledGames(ctx context.Context, division model.Division) ([]model.ScheduledGame, error) {
	if !division.Valid() {
		return nil, fmt.Errorf("error not a valid division: '%s'", division)
	}

	games, err := c.db.ListScheduledGames(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading scheduled games: %w", err)
	}

	filtered := make([]model.ScheduledGame, 0, len(games))
	for _, g := range games {
		if g.Division == division {
			filtered = append(filtered, g)
		}
	}
	return filtered, nil
}
