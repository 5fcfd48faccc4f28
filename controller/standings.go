package controller

import (
	"context"
	"errors"
	"fmt"
	"log"
	"slices"
	"strings"

	"github.com/Eitve/RKL/cache"
	"github.com/Eitve/RKL/model"
)

func (c *controller) GetStandings(ctx context.Context, division model.Division) ([]model.StandingsRow, error) {
	if !division.Valid() {
		return nil, fmt.Errorf("error not a valid division: '%s'", division)
	}

	if c.snapshots != nil {
		rows, err := c.snapshots.ReadStandings(ctx, division)
		if err == nil {
			return rows, nil
		}
		if !errors.Is(err, cache.ErrMiss) {
			log.Printf("error reading standings snapshot, recomputing: %v", err)
		}
	}

	teams, err := c.db.ListTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading teams for standings: %w", err)
	}
	games, err := c.db.ListGames(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading games for standings: %w", err)
	}

	standings := computeStandings(teams, games)
	rows := rankAndPad(standings, division)

	if c.snapshots != nil {
		if err := c.snapshots.WriteStandings(ctx, division, rows); err != nil {
			log.Printf("error writing standings snapshot: %v", err)
		}
	}

	return rows, nil
}

// computeStandings runs the single accumulation pass over the completed
// games. Games referencing a team that is not registered are skipped
// with a warning; one bad document never aborts the table.
func computeStandings(teams []model.Team, games []model.Game) map[string]*model.TeamStanding {
	table := make(map[string]*model.TeamStanding, len(teams))
	for _, t := range teams {
		table[t.ID] = &model.TeamStanding{
			TeamID:   t.ID,
			Name:     t.Name,
			Icon:     t.Icon,
			Division: t.Division,
		}
	}

	for _, g := range games {
		result, ok := g.Result()
		if !ok {
			if g.Completed() {
				log.Printf("game %s has equal final scores (%d-%d), skipping", g.ID, *g.PointsHome, *g.PointsAway)
			}
			continue
		}

		home, homeOK := table[g.HomeTeam]
		away, awayOK := table[g.AwayTeam]
		if !homeOK || !awayOK {
			log.Printf("game %s references unknown team (home=%s, away=%s), skipping", g.ID, g.HomeTeam, g.AwayTeam)
			continue
		}

		home.PointsFor += *g.PointsHome
		home.PointsAgainst += *g.PointsAway
		away.PointsFor += *g.PointsAway
		away.PointsAgainst += *g.PointsHome

		// Scores are authoritative. A disagreeing stored winner field is a
		// data-entry problem worth surfacing, not a different outcome.
		if g.Winner != "" && g.Winner != result.WinnerID {
			log.Printf("game %s stored winner %s disagrees with final score, using score", g.ID, g.Winner)
		}

		winner := table[result.WinnerID]
		loser := table[result.LoserID]
		winner.Wins++
		winner.StandingPoints += model.WinPoints
		loser.Losses++
		loser.StandingPoints += model.LossPoints
	}

	for _, t := range table {
		t.GamesPlayed = t.Wins + t.Losses
		t.PointsDiff = t.PointsFor - t.PointsAgainst
	}

	return table
}

// rankAndPad filters to the division, applies the sort order and pads
// the table to the division's fixed row count with placeholder slots.
func rankAndPad(table map[string]*model.TeamStanding, division model.Division) []model.StandingsRow {
	ranked := make([]*model.TeamStanding, 0, division.RowCount())
	for _, t := range table {
		if t.Division == division {
			ranked = append(ranked, t)
		}
	}

	slices.SortFunc(ranked, func(a, b *model.TeamStanding) int {
		if a.StandingPoints != b.StandingPoints {
			return b.StandingPoints - a.StandingPoints
		}
		if a.PointsDiff != b.PointsDiff {
			return b.PointsDiff - a.PointsDiff
		}
		return strings.Compare(a.Name, b.Name)
	})

	rows := make([]model.StandingsRow, division.RowCount())
	for i := range rows {
		rows[i].Place = i + 1
		if i < len(ranked) {
			rows[i].Team = ranked[i]
		}
	}
	return rows
}
