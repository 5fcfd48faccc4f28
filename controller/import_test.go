package controller

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Eitve/RKL/db"
	"github.com/Eitve/RKL/db/mockdb"
	"github.com/Eitve/RKL/model"
	"github.com/itbasis/go-clock"
	"github.com/stretchr/testify/mock"
)

const teamDoc = `{
	"teamID": "palanga",
	"teamName": "BC Palanga",
	"division": "A",
	"headCoach": "Tomas Jankauskas",
	"achievements": ["2024 playoffs"],
	"players": [
		{
			"firstName": "Šarūnas",
			"lastName": "Čepukas",
			"dateOfBirth": "1999-03-12",
			"nationality": "Lithuanian",
			"height": 198,
			"weight": 92,
			"shirtNumber": 7,
			"position": "SG"
		},
		{
			"firstName": "Mantas",
			"lastName": "Žukauskas",
			"shirtNumber": 15,
			"position": "C"
		}
	]
}`

func TestImportTeam(t *testing.T) {
	mockDB := &mockdb.DB{}
	mockDB.On("GetTeam", mock.Anything, "palanga").Return(nil, db.ErrTeamNotFound)
	mockDB.On("SaveTeam", mock.Anything, mock.Anything).Return(nil)
	mockDB.On("SavePlayer", mock.Anything, mock.MatchedBy(func(p *model.Player) bool {
		return p.Key == "sarunascepukas" && p.ShirtNumber == 7 && p.Position == model.POS_SG
	})).Return(nil)
	mockDB.On("SavePlayer", mock.Anything, mock.MatchedBy(func(p *model.Player) bool {
		return p.Key == "mantaszukauskas" && p.BirthDate.IsZero()
	})).Return(nil)

	ctrl, err := New(clock.New(), mockDB, nil)
	if err != nil {
		t.Fatalf("error creating controller: %v", err)
	}

	team, err := ctrl.ImportTeam(context.Background(), strings.NewReader(teamDoc))
	if err != nil {
		t.Fatalf("error importing team: %v", err)
	}

	if team.ID != "palanga" || team.Name != "BC Palanga" || team.Division != model.DivisionA {
		t.Errorf("imported team incorrect: %+v", team)
	}
	if len(team.Achievements) != 1 {
		t.Errorf("achievements incorrect: %v", team.Achievements)
	}

	mockDB.AssertNumberOfCalls(t, "SavePlayer", 2)
}

func TestImportTeamAlreadyExists(t *testing.T) {
	mockDB := &mockdb.DB{}
	mockDB.On("GetTeam", mock.Anything, "palanga").Return(&model.Team{ID: "palanga"}, nil)

	ctrl, err := New(clock.New(), mockDB, nil)
	if err != nil {
		t.Fatalf("error creating controller: %v", err)
	}

	_, err = ctrl.ImportTeam(context.Background(), strings.NewReader(teamDoc))
	if !errors.Is(err, ErrTeamExists) {
		t.Fatalf("expected ErrTeamExists, got: %v", err)
	}

	mockDB.AssertNotCalled(t, "SaveTeam", mock.Anything, mock.Anything)
}

func TestImportSchedule(t *testing.T) {
	doc := `{
		"games": [
			{"homeTeam": "palanga", "awayTeam": "mazeikiai", "division": "A", "arena": "Palangos Arena", "date": "2026-03-14T18:30:00Z"},
			{"homeTeam": "sakalai", "awayTeam": "neris", "division": "B-A", "date": "1773772200000"}
		]
	}`

	mockDB := &mockdb.DB{}
	mockDB.On("SaveScheduledGame", mock.Anything, mock.MatchedBy(func(g *model.ScheduledGame) bool {
		return g.HomeTeam == "palanga" && g.Arena == "Palangos Arena" &&
			g.Tipoff.Equal(time.Date(2026, 3, 14, 18, 30, 0, 0, time.UTC))
	})).Return(nil)
	mockDB.On("SaveScheduledGame", mock.Anything, mock.MatchedBy(func(g *model.ScheduledGame) bool {
		// Epoch milliseconds normalize to the same UTC instant.
		return g.HomeTeam == "sakalai" && g.Division == model.DivisionBA &&
			g.Tipoff.Equal(time.Date(2026, 3, 17, 18, 30, 0, 0, time.UTC))
	})).Return(nil)

	ctrl, err := New(clock.New(), mockDB, nil)
	if err != nil {
		t.Fatalf("error creating controller: %v", err)
	}

	count, err := ctrl.ImportSchedule(context.Background(), strings.NewReader(doc))
	if err != nil {
		t.Fatalf("error importing schedule: %v", err)
	}
	if count != 2 {
		t.Errorf("imported count incorrect: %d", count)
	}
	mockDB.AssertNumberOfCalls(t, "SaveScheduledGame", 2)
}

func TestImportScheduleValidation(t *testing.T) {
	tests := map[string]string{
		"not json":         `{invalid`,
		"missing team":     `{"games": [{"homeTeam": "palanga", "division": "A", "date": "2026-03-14T18:30:00Z"}]}`,
		"unknown division": `{"games": [{"homeTeam": "a", "awayTeam": "b", "division": "X", "date": "2026-03-14T18:30:00Z"}]}`,
		"bad date":         `{"games": [{"homeTeam": "a", "awayTeam": "b", "division": "A", "date": "next tuesday"}]}`,
	}

	ctrl, err := New(clock.New(), &mockdb.DB{}, nil)
	if err != nil {
		t.Fatalf("error creating controller: %v", err)
	}

	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := ctrl.ImportSchedule(context.Background(), strings.NewReader(doc)); err == nil {
				t.Fatal("expected an import error")
			}
		})
	}
}

func TestImportBoxScore(t *testing.T) {
	doc := `{
		"entries": [
			{"name": "Šarūnas Čepukas", "playerKey": "sarunascepukas", "isStarter": true,
			 "minutes": "32:05", "twoPM": 5, "twoPA": 8, "threePM": 2, "threePA": 5,
			 "ftm": 3, "fta": 4, "offReb": 2, "defReb": 4, "points": 27, "eff": 29},
			{"name": "Mantas Žukauskas", "minutes": "15:00", "points": 6}
		]
	}`

	mockDB := &mockdb.DB{}
	mockDB.On("GetGame", mock.Anything, "g1").Return(&model.Game{ID: "g1"}, nil)
	mockDB.On("SaveBoxScore", mock.Anything, "g1", model.SideHome, mock.MatchedBy(func(entries []model.BoxScoreEntry) bool {
		if len(entries) != 2 {
			return false
		}
		// "M:SS" display time parses back into whole seconds.
		return entries[0].SecsPlayed == 1925 && entries[0].PlayerKey == "sarunascepukas" &&
			entries[1].SecsPlayed == 900 && entries[1].PlayerKey == ""
	})).Return(nil)

	ctrl, err := New(clock.New(), mockDB, nil)
	if err != nil {
		t.Fatalf("error creating controller: %v", err)
	}

	if err := ctrl.ImportBoxScore(context.Background(), "g1", model.SideHome, strings.NewReader(doc)); err != nil {
		t.Fatalf("error importing box score: %v", err)
	}
}

func TestImportBoxScoreGameNotFound(t *testing.T) {
	mockDB := &mockdb.DB{}
	mockDB.On("GetGame", mock.Anything, "missing").Return(nil, db.ErrGameNotFound)

	ctrl, err := New(clock.New(), mockDB, nil)
	if err != nil {
		t.Fatalf("error creating controller: %v", err)
	}

	err = ctrl.ImportBoxScore(context.Background(), "missing", model.SideHome, strings.NewReader(`{"entries":[{"name":"A"}]}`))
	if !errors.Is(err, db.ErrGameNotFound) {
		t.Fatalf("expected ErrGameNotFound, got: %v", err)
	}
	mockDB.AssertNotCalled(t, "SaveBoxScore", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestImportTeamValidation(t *testing.T) {
	tests := map[string]string{
		"not json":         `{invalid`,
		"missing id":       `{"teamName": "BC Palanga", "division": "A"}`,
		"missing name":     `{"teamID": "palanga", "division": "A"}`,
		"unknown division": `{"teamID": "palanga", "teamName": "BC Palanga", "division": "X"}`,
	}

	ctrl, err := New(clock.New(), &mockdb.DB{}, nil)
	if err != nil {
		t.Fatalf("error creating controller: %v", err)
	}

	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := ctrl.ImportTeam(context.Background(), strings.NewReader(doc)); err == nil {
				t.Fatal("expected an import error")
			}
		})
	}
}
