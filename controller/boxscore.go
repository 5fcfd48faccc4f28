package controller

import (
	"context"
	"fmt"
	"log"
	"slices"

	"github.com/Eitve/RKL/model"
)

// shirtSortDefault pushes players whose roster join failed behind every
// real shirt number.
const shirtSortDefault = 9999

func (c *controller) GetGameBoxScore(ctx context.Context, gameID string) (*model.GameBoxScore, error) {
	game, err := c.db.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	box := &model.GameBoxScore{Game: *game}

	box.HomeName, box.Home, box.HomeDivider, err = c.buildSide(ctx, game, model.SideHome, game.HomeTeam)
	if err != nil {
		return nil, err
	}
	box.AwayName, box.Away, box.AwayDivider, err = c.buildSide(ctx, game, model.SideAway, game.AwayTeam)
	if err != nil {
		return nil, err
	}

	return box, nil
}

func (c *controller) buildSide(ctx context.Context, game *model.Game, side model.GameSide, teamID string) (string, []model.BoxScoreRow, int, error) {
	teamName := teamID
	if team, err := c.db.GetTeam(ctx, teamID); err == nil {
		teamName = team.Name
	} else {
		log.Printf("error loading team %s for game %s, using id as name: %v", teamID, game.ID, err)
	}

	players, err := c.db.ListPlayers(ctx, teamID)
	if err != nil {
		return "", nil, -1, fmt.Errorf("error loading roster for team %s: %w", teamID, err)
	}
	roster := make(map[string]*model.Player, len(players))
	for i := range players {
		roster[players[i].Key] = &players[i]
	}

	entries, err := c.db.GetBoxScore(ctx, game.ID, side)
	if err != nil {
		return "", nil, -1, fmt.Errorf("error loading box score for game %s (%s): %w", game.ID, side, err)
	}

	rows := buildRows(entries, roster)
	sortRows(rows)
	return teamName, rows, dividerIndex(rows), nil
}

// buildRows joins each raw entry with the roster and derives the display
// columns. A failed join still yields a row; only the roster metadata is
// missing from it.
func buildRows(entries []model.BoxScoreEntry, roster map[string]*model.Player) []model.BoxScoreRow {
	rows := make([]model.BoxScoreRow, 0, len(entries))
	for _, e := range entries {
		row := model.BoxScoreRow{
			BoxScoreEntry: e,
			FG:            e.FieldGoalsMade(),
			FGA:           e.FieldGoalsAttempted(),
			FGPct:         model.Percentage(e.FieldGoalsMade(), e.FieldGoalsAttempted()),
			TwoPct:        model.Percentage(e.TwoPM, e.TwoPA),
			ThreePct:      model.Percentage(e.ThreePM, e.ThreePA),
			FTPct:         model.Percentage(e.FTM, e.FTA),
			Rebounds:      e.TotalRebounds(),
			Minutes:       model.FormatSeconds(e.SecsPlayed),
		}
		if p, ok := roster[e.RosterKey()]; ok {
			row.ShirtNumber = p.ShirtNumber
			row.HasShirt = true
			row.Position = p.Position
		} else {
			log.Printf("box score entry '%s' in game %s has no roster match", e.Name, e.GameID)
		}
		rows = append(rows, row)
	}
	return rows
}

// sortRows orders starters before bench, then by shirt number ascending.
// Rows without a shirt number sort behind every numbered row.
func sortRows(rows []model.BoxScoreRow) {
	slices.SortStableFunc(rows, func(a, b model.BoxScoreRow) int {
		if a.IsStarter != b.IsStarter {
			if a.IsStarter {
				return -1
			}
			return 1
		}
		return shirtSortValue(a) - shirtSortValue(b)
	})
}

func shirtSortValue(r model.BoxScoreRow) int {
	if !r.HasShirt {
		return shirtSortDefault
	}
	return r.ShirtNumber
}

// dividerIndex returns the index of the first bench row, or -1 when the
// list needs no divider: either everyone started, or the list opens with
// bench players so there is nothing to divide from.
func dividerIndex(rows []model.BoxScoreRow) int {
	idx := slices.IndexFunc(rows, func(r model.BoxScoreRow) bool {
		return !r.IsStarter
	})
	if idx <= 0 {
		return -1
	}
	return idx
}
