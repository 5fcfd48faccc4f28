package controller

import (
	"context"
	"errors"
	"fmt"
	"log"
	"slices"
	"sync"
	"time"

	"github.com/Eitve/RKL/cache"
	"github.com/Eitve/RKL/model"
)

// statsKey addresses one accumulator: players are owned by exactly one
// team, so the pair is unique league-wide.
type statsKey struct {
	teamID    string
	playerKey string
}

// aggregateTotals accumulates every box-score line in the league into
// per-player career totals. Entries are matched against the roster of
// the side they were recorded for: by stable player key when the
// document carries one, otherwise by normalized-name match. Entries that
// match nothing are logged and dropped; they never abort the pass.
func (c *controller) aggregateTotals(ctx context.Context) (map[statsKey]*model.PlayerTotals, error) {
	teams, err := c.db.ListTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading teams for stats: %w", err)
	}

	totals := make(map[statsKey]*model.PlayerTotals)
	// rosterIndex maps (teamID, normalized key) to the accumulator so box
	// score entries can be joined per side.
	rosterIndex := make(map[statsKey]*model.PlayerTotals)

	for _, t := range teams {
		players, err := c.db.ListPlayers(ctx, t.ID)
		if err != nil {
			log.Printf("error loading players for team %s, skipping roster: %v", t.ID, err)
			continue
		}
		for _, p := range players {
			key := statsKey{teamID: t.ID, playerKey: p.Key}
			acc := &model.PlayerTotals{
				TeamID:    t.ID,
				PlayerKey: p.Key,
				FirstName: p.FirstName,
				LastName:  p.LastName,
				TeamName:  t.Name,
				Position:  p.Position,
				PhotoURL:  p.PhotoURL,
			}
			totals[key] = acc
			rosterIndex[key] = acc
		}
	}

	games, err := c.db.ListGames(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading games for stats: %w", err)
	}

	unmatched := 0
	for _, g := range games {
		if !g.Completed() {
			continue
		}
		for _, side := range []struct {
			side   model.GameSide
			teamID string
		}{
			{side: model.SideHome, teamID: g.HomeTeam},
			{side: model.SideAway, teamID: g.AwayTeam},
		} {
			entries, err := c.db.GetBoxScore(ctx, g.ID, side.side)
			if err != nil {
				log.Printf("error loading box score for game %s (%s), skipping: %v", g.ID, side.side, err)
				continue
			}
			for i := range entries {
				e := &entries[i]
				acc, found := rosterIndex[statsKey{teamID: side.teamID, playerKey: e.RosterKey()}]
				if !found {
					unmatched++
					log.Printf("box score entry '%s' in game %s does not match any %s player, dropping", e.Name, g.ID, side.teamID)
					continue
				}
				acc.Add(e)
			}
		}
	}
	if unmatched > 0 {
		log.Printf("stats aggregation dropped %d unmatched box score entries", unmatched)
	}

	return totals, nil
}

func (c *controller) GetLeaderboard(ctx context.Context, posFilter string, stat model.StatCategory) ([]model.LeaderboardEntry, error) {
	if stat == model.StatUnknown {
		return nil, fmt.Errorf("error not a valid stat category")
	}

	if c.snapshots != nil {
		entries, err := c.snapshots.ReadLeaderboard(ctx, posFilter, stat)
		if err == nil {
			return entries, nil
		}
		if !errors.Is(err, cache.ErrMiss) {
			log.Printf("error reading leaderboard snapshot, recomputing: %v", err)
		}
	}

	totals, err := c.aggregateTotals(ctx)
	if err != nil {
		return nil, err
	}

	entries := buildLeaderboard(totals, posFilter, stat)

	if c.snapshots != nil {
		if err := c.snapshots.WriteLeaderboard(ctx, posFilter, stat, entries); err != nil {
			log.Printf("error writing leaderboard snapshot: %v", err)
		}
	}

	return entries, nil
}

func buildLeaderboard(totals map[statsKey]*model.PlayerTotals, posFilter string, stat model.StatCategory) []model.LeaderboardEntry {
	players := make([]*model.PlayerTotals, 0, len(totals))
	for _, t := range totals {
		if t.GamesPlayed == 0 {
			continue
		}
		if !t.Position.Matches(posFilter) {
			continue
		}
		players = append(players, t)
	}

	// Sort by the stat value descending. Name is the final tie break so
	// that repeated computation on the same input yields the same order.
	slices.SortStableFunc(players, func(a, b *model.PlayerTotals) int {
		av, bv := stat.Value(a), stat.Value(b)
		if av != bv {
			if bv > av {
				return 1
			}
			return -1
		}
		if cmp := compareNames(a, b); cmp != 0 {
			return cmp
		}
		return 0
	})

	entries := make([]model.LeaderboardEntry, 0, len(players))
	for i, p := range players {
		e := model.LeaderboardEntry{
			Rank:   i + 1,
			Value:  stat.Value(p),
			Player: *p,
		}
		if i > 0 && entries[i-1].Value == e.Value {
			e.Tied = true
			entries[i-1].Tied = true
		}
		entries = append(entries, e)
	}
	return entries
}

func compareNames(a, b *model.PlayerTotals) int {
	if a.LastName != b.LastName {
		if a.LastName < b.LastName {
			return -1
		}
		return 1
	}
	if a.FirstName != b.FirstName {
		if a.FirstName < b.FirstName {
			return -1
		}
		return 1
	}
	return 0
}

// RefreshPlayerAverages recomputes every player's season averages and
// writes them back to the player documents. The cached block exists only
// to cheapen roster screens; the live aggregation remains the system of
// record. Failures are per-player and never roll back the others.
func (c *controller) RefreshPlayerAverages(ctx context.Context) error {
	start := c.clock.Now()
	log.Printf("stats refresh starting at %v", start.Format(time.DateTime))

	totals, err := c.aggregateTotals(ctx)
	if err != nil {
		return err
	}

	failures := 0
	for key, t := range totals {
		avg := t.SeasonAverages()
		if err := c.db.UpdatePlayerAverages(ctx, key.teamID, key.playerKey, &avg); err != nil {
			failures++
			log.Printf("error persisting averages for %s %s: %v", t.FirstName, t.LastName, err)
		}
	}

	if c.snapshots != nil {
		if err := c.snapshots.Invalidate(ctx); err != nil {
			log.Printf("error invalidating snapshots after refresh: %v", err)
		}
	}

	log.Printf("stats refresh finished, took %v, %d players, %d failures", time.Since(start), len(totals), failures)
	return nil
}

func (c *controller) RunPeriodicStatsRefresh(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	ticker := time.NewTicker(frequency)
	defer wg.Done()

	for {
		select {
		case <-shutdown:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if err := c.RefreshPlayerAverages(ctx); err != nil {
				log.Printf("%v", err)
			}
		}
	}
}

// GetPlayerProfile builds the player screen payload: bio plus the game
// log and overall averages computed live from the box scores of the
// player's team's games.
func (c *controller) GetPlayerProfile(ctx context.Context, teamID, playerKey string) (*model.PlayerProfile, error) {
	player, err := c.db.GetPlayer(ctx, teamID, playerKey)
	if err != nil {
		return nil, err
	}

	teams, err := c.db.ListTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading teams for player profile: %w", err)
	}
	teamNames := make(map[string]string, len(teams))
	for _, t := range teams {
		teamNames[t.ID] = t.Name
	}

	games, err := c.db.ListGames(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading games for player profile: %w", err)
	}

	profile := &model.PlayerProfile{
		Player:   *player,
		TeamName: teamNames[teamID],
	}

	var totals model.PlayerTotals
	for _, g := range games {
		if !g.Completed() {
			continue
		}

		var side model.GameSide
		switch teamID {
		case g.HomeTeam:
			side = model.SideHome
		case g.AwayTeam:
			side = model.SideAway
		default:
			continue
		}

		entries, err := c.db.GetBoxScore(ctx, g.ID, side)
		if err != nil {
			log.Printf("error loading box score for game %s, skipping: %v", g.ID, err)
			continue
		}

		for i := range entries {
			e := &entries[i]
			if e.RosterKey() != playerKey {
				continue
			}
			totals.Add(e)

			isHome := side == model.SideHome
			opponentID := g.AwayTeam
			if !isHome {
				opponentID = g.HomeTeam
			}
			opponentName := teamNames[opponentID]
			if opponentName == "" {
				opponentName = opponentID
			}

			win := false
			if result, ok := g.Result(); ok {
				win = result.WinnerID == teamID
			}

			profile.Games = append(profile.Games, model.PlayerGameLine{
				GameID:       g.ID,
				OpponentID:   opponentID,
				OpponentName: opponentName,
				Home:         isHome,
				PointsHome:   *g.PointsHome,
				PointsAway:   *g.PointsAway,
				Win:          win,
				Points:       e.Points,
				Rebounds:     e.TotalRebounds(),
				Assists:      e.Assists,
				Steals:       e.Steals,
				Blocks:       e.Blocks,
				Minutes:      model.FormatSeconds(e.SecsPlayed),
			})
		}
	}

	profile.Overall = totals.SeasonAverages()
	return profile, nil
}
