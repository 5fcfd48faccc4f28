package controller

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/Eitve/RKL/db"
	"github.com/Eitve/RKL/model"
)

// teamDocument is the seed file shape: one team plus its full roster.
type teamDocument struct {
	TeamID         string   `json:"teamID"`
	TeamName       string   `json:"teamName"`
	Division       string   `json:"division"`
	Icon           string   `json:"icon"`
	TeamPhoto      string   `json:"teamPhoto"`
	HeadCoach      string   `json:"headCoach"`
	AssistantCoach string   `json:"assistantCoach"`
	TeamManager    string   `json:"teamManager"`
	Achievements   []string `json:"achievements"`

	Players []playerDocument `json:"players"`
}

type playerDocument struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	BirthDate   string `json:"dateOfBirth"`
	Nationality string `json:"nationality"`
	Height      int    `json:"height"`
	Weight      int    `json:"weight"`
	ShirtNumber int    `json:"shirtNumber"`
	Position    string `json:"position"`
	PhotoURL    string `json:"photo"`
}

// ImportTeam parses a team-with-roster document and creates the team and
// every player on it. Import refuses to touch a team that already
// exists; re-seeding is an explicit delete-then-import operation, never
// a silent overwrite.
func (c *controller) ImportTeam(ctx context.Context, r io.Reader) (*model.Team, error) {
	var doc teamDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("error parsing team document: %w", err)
	}

	if doc.TeamID == "" {
		return nil, fmt.Errorf("error team document missing teamID")
	}
	if doc.TeamName == "" {
		return nil, fmt.Errorf("error team document missing teamName")
	}
	division := model.ParseDivision(doc.Division)
	if !division.Valid() {
		return nil, fmt.Errorf("error not a valid division: '%s'", doc.Division)
	}

	_, err := c.db.GetTeam(ctx, doc.TeamID)
	if err == nil {
		return nil, fmt.Errorf("%w: %s", ErrTeamExists, doc.TeamID)
	}
	if !errors.Is(err, db.ErrTeamNotFound) {
		return nil, fmt.Errorf("error checking for existing team: %w", err)
	}

	team := &model.Team{
		ID:             doc.TeamID,
		Name:           doc.TeamName,
		Division:       division,
		Icon:           doc.Icon,
		TeamPhoto:      doc.TeamPhoto,
		HeadCoach:      doc.HeadCoach,
		AssistantCoach: doc.AssistantCoach,
		TeamManager:    doc.TeamManager,
		Achievements:   doc.Achievements,
		Created:        c.clock.Now(),
	}
	if err := c.db.SaveTeam(ctx, team); err != nil {
		return nil, fmt.Errorf("error saving team %s: %w", team.ID, err)
	}

	for _, pd := range doc.Players {
		p := model.Player{
			TeamID:      team.ID,
			Key:         model.PlayerKey(pd.FirstName, pd.LastName),
			FirstName:   pd.FirstName,
			LastName:    pd.LastName,
			Nationality: pd.Nationality,
			Height:      pd.Height,
			Weight:      pd.Weight,
			ShirtNumber: pd.ShirtNumber,
			Position:    model.ParsePosition(pd.Position),
			PhotoURL:    pd.PhotoURL,
		}
		if pd.BirthDate != "" {
			bd, err := time.Parse(time.DateOnly, pd.BirthDate)
			if err != nil {
				log.Printf("player %s %s has unparseable birth date '%s', leaving empty", pd.FirstName, pd.LastName, pd.BirthDate)
			} else {
				p.BirthDate = bd
			}
		}
		if err := c.db.SavePlayer(ctx, &p); err != nil {
			return nil, fmt.Errorf("error saving player %s: %w", p.Key, err)
		}
	}

	log.Printf("imported team %s with %d players", team.ID, len(doc.Players))
	return team, nil
}

type scheduleDocument struct {
	Games []scheduledGameDocument `json:"games"`
}

type scheduledGameDocument struct {
	HomeTeam string `json:"homeTeam"`
	AwayTeam string `json:"awayTeam"`
	Division string `json:"division"`
	Arena    string `json:"arena"`
	Date     string `json:"date"`
}

// ImportSchedule parses a schedule document and saves its fixtures.
// The date field accepts both encodings that appear in scheduled-game
// documents, RFC 3339 strings and epoch milliseconds. Returns the
// number of fixtures saved.
func (c *controller) ImportSchedule(ctx context.Context, r io.Reader) (int, error) {
	var doc scheduleDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return 0, fmt.Errorf("error parsing schedule document: %w", err)
	}

	for i, gd := range doc.Games {
		if gd.HomeTeam == "" || gd.AwayTeam == "" {
			return 0, fmt.Errorf("error schedule entry %d missing a team", i)
		}
		division := model.ParseDivision(gd.Division)
		if !division.Valid() {
			return 0, fmt.Errorf("error not a valid division: '%s'", gd.Division)
		}
		tipoff, err := model.ParseGameTime(gd.Date)
		if err != nil {
			return 0, fmt.Errorf("error parsing date '%s' for schedule entry %d: %w", gd.Date, i, err)
		}

		g := &model.ScheduledGame{
			HomeTeam: gd.HomeTeam,
			AwayTeam: gd.AwayTeam,
			Division: division,
			Arena:    gd.Arena,
			Tipoff:   tipoff,
		}
		if err := c.db.SaveScheduledGame(ctx, g); err != nil {
			return 0, fmt.Errorf("error saving schedule entry %d: %w", i, err)
		}
	}

	log.Printf("imported %d scheduled games", len(doc.Games))
	return len(doc.Games), nil
}

type boxScoreDocument struct {
	Entries []boxScoreEntryDocument `json:"entries"`
}

// boxScoreEntryDocument is one player's line as entered at the scorer's
// table. Time on court is the display form, "M:SS".
type boxScoreEntryDocument struct {
	Name      string `json:"name"`
	PlayerKey string `json:"playerKey"`
	IsStarter bool   `json:"isStarter"`
	IsCaptain bool   `json:"isCaptain"`
	Minutes   string `json:"minutes"`
	TwoPM     int    `json:"twoPM"`
	TwoPA     int    `json:"twoPA"`
	ThreePM   int    `json:"threePM"`
	ThreePA   int    `json:"threePA"`
	FTM       int    `json:"ftm"`
	FTA       int    `json:"fta"`
	OffReb    int    `json:"offReb"`
	DefReb    int    `json:"defReb"`
	Assists   int    `json:"assists"`
	Steals    int    `json:"steals"`
	Blocks    int    `json:"blocks"`
	Turnovers int    `json:"turnovers"`
	Fouls     int    `json:"fouls"`
	PlusMinus int    `json:"plusMinus"`
	Points    int    `json:"points"`
	Eff       int    `json:"eff"`
}

// ImportBoxScore parses one side's box score document and replaces that
// side's entries for the game. The game must already exist.
func (c *controller) ImportBoxScore(ctx context.Context, gameID string, side model.GameSide, r io.Reader) error {
	if _, err := c.db.GetGame(ctx, gameID); err != nil {
		return err
	}

	var doc boxScoreDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return fmt.Errorf("error parsing box score document: %w", err)
	}
	if len(doc.Entries) == 0 {
		return fmt.Errorf("error box score document has no entries")
	}

	entries := make([]model.BoxScoreEntry, 0, len(doc.Entries))
	for _, ed := range doc.Entries {
		if ed.Name == "" {
			return fmt.Errorf("error box score entry missing a player name")
		}
		entries = append(entries, model.BoxScoreEntry{
			GameID:     gameID,
			Side:       side,
			Name:       ed.Name,
			PlayerKey:  ed.PlayerKey,
			IsStarter:  ed.IsStarter,
			IsCaptain:  ed.IsCaptain,
			SecsPlayed: model.ParseMinutes(ed.Minutes),
			TwoPM:      ed.TwoPM,
			TwoPA:      ed.TwoPA,
			ThreePM:    ed.ThreePM,
			ThreePA:    ed.ThreePA,
			FTM:        ed.FTM,
			FTA:        ed.FTA,
			OffReb:     ed.OffReb,
			DefReb:     ed.DefReb,
			Assists:    ed.Assists,
			Steals:     ed.Steals,
			Blocks:     ed.Blocks,
			Turnovers:  ed.Turnovers,
			Fouls:      ed.Fouls,
			PlusMinus:  ed.PlusMinus,
			Points:     ed.Points,
			Efficiency: ed.Eff,
		})
	}

	if err := c.db.SaveBoxScore(ctx, gameID, side, entries); err != nil {
		return fmt.Errorf("error saving box score for game %s (%s): %w", gameID, side, err)
	}

	if c.snapshots != nil {
		if err := c.snapshots.Invalidate(ctx); err != nil {
			log.Printf("error invalidating snapshots after box score import: %v", err)
		}
	}

	log.Printf("imported %d box score entries for game %s (%s)", len(entries), gameID, side)
	return nil
}
