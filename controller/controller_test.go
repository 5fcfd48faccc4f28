package controller

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/Eitve/RKL/model"
	"github.com/Eitve/RKL/testutils"
)

// A global testDB instance to use for all of the tests instead of setting up a new one each time.
var testDB *testutils.TestDB

// TestMain controls the main for the tests and allows for setup and shutdown of the tests
func TestMain(m *testing.M) {
	defer func() {
		// Catch all panics to make sure the shutdown is successfully run
		if r := recover(); r != nil {
			if testDB != nil {
				testDB.Shutdown()
			}
			fmt.Printf("panic - %v\n", r)
		}
	}()

	// Setup the global testDB variable
	testDB = testutils.NewTestDB()
	defer testDB.Shutdown()
	code := m.Run()
	os.Exit(code)
}

// End to end through the real database: import a team, record a game
// with its box scores, then read the standings and leaderboard back.
func TestSeasonFlow(t *testing.T) {
	ctx := context.Background()

	ctrl, err := New(testDB.Clock, testDB.DB, nil)
	if err != nil {
		t.Fatalf("error creating controller: %v", err)
	}

	doc := `{
		"teamID": "aukstaitija",
		"teamName": "BC Aukstaitija",
		"division": "B-B",
		"players": [
			{"firstName": "Ignas", "lastName": "Vaitkus", "shirtNumber": 11, "position": "SF"},
			{"firstName": "Rokas", "lastName": "Šimkus", "shirtNumber": 23, "position": "PF/C"}
		]
	}`
	team, err := ctrl.ImportTeam(ctx, strings.NewReader(doc))
	if err != nil {
		t.Fatalf("error importing team: %v", err)
	}
	if team.Division != model.DivisionBB {
		t.Fatalf("imported division incorrect: %s", team.Division)
	}

	if _, err := ctrl.ImportTeam(ctx, strings.NewReader(doc)); err == nil {
		t.Fatal("second import of the same team should fail")
	}

	players, err := ctrl.ListTeamPlayers(ctx, "aukstaitija")
	if err != nil {
		t.Fatalf("error listing players: %v", err)
	}
	if len(players) != 2 {
		t.Fatalf("player count incorrect: %d", len(players))
	}

	opponent := &model.Team{ID: "dzukija", Name: "BC Dzukija", Division: model.DivisionBB}
	if err := testDB.DB.SaveTeam(ctx, opponent); err != nil {
		t.Fatalf("error saving opponent: %v", err)
	}

	home, away := 71, 64
	game := &model.Game{
		ID: "bb-001", HomeTeam: "aukstaitija", AwayTeam: "dzukija", Division: model.DivisionBB,
		PointsHome: &home, PointsAway: &away,
	}
	if err := testDB.DB.SaveGame(ctx, game); err != nil {
		t.Fatalf("error saving game: %v", err)
	}

	entries := []model.BoxScoreEntry{
		{Name: "Ignas Vaitkus", IsStarter: true, Points: 25, TwoPM: 8, TwoPA: 12, ThreePM: 3, ThreePA: 7, SecsPlayed: 2100},
		{Name: "Rokas Šimkus", IsStarter: true, Points: 14, OffReb: 5, DefReb: 7, SecsPlayed: 1800},
	}
	if err := testDB.DB.SaveBoxScore(ctx, "bb-001", model.SideHome, entries); err != nil {
		t.Fatalf("error saving box score: %v", err)
	}

	rows, err := ctrl.GetStandings(ctx, model.DivisionBB)
	if err != nil {
		t.Fatalf("error getting standings: %v", err)
	}
	if len(rows) != 13 {
		t.Fatalf("B division table must have 13 rows, got: %d", len(rows))
	}
	if rows[0].Team == nil || rows[0].Team.TeamID != "aukstaitija" {
		t.Fatalf("first place incorrect: %+v", rows[0].Team)
	}
	if rows[0].Team.StandingPoints != 2 || rows[1].Team.StandingPoints != 1 {
		t.Errorf("standing points incorrect: %d vs %d", rows[0].Team.StandingPoints, rows[1].Team.StandingPoints)
	}

	leaders, err := ctrl.GetLeaderboard(ctx, "", model.StatPoints)
	if err != nil {
		t.Fatalf("error getting leaderboard: %v", err)
	}
	if len(leaders) < 2 {
		t.Fatalf("leaderboard too short: %d", len(leaders))
	}
	if leaders[0].Player.PlayerKey != "ignasvaitkus" || leaders[0].Value != 25 {
		t.Errorf("points leader incorrect: %+v", leaders[0])
	}

	// The diacritic in the document name still matches the roster key.
	rebLeaders, err := ctrl.GetLeaderboard(ctx, "C", model.StatRebounds)
	if err != nil {
		t.Fatalf("error getting rebounds leaderboard: %v", err)
	}
	if len(rebLeaders) != 1 || rebLeaders[0].Player.PlayerKey != "rokassimkus" {
		t.Fatalf("combo position filter incorrect: %+v", rebLeaders)
	}
	if rebLeaders[0].Value != 12 {
		t.Errorf("rebound average incorrect: %f", rebLeaders[0].Value)
	}

	if err := ctrl.RefreshPlayerAverages(ctx); err != nil {
		t.Fatalf("error refreshing averages: %v", err)
	}
	p, err := testDB.DB.GetPlayer(ctx, "aukstaitija", "ignasvaitkus")
	if err != nil {
		t.Fatalf("error getting player after refresh: %v", err)
	}
	if p.Averages == nil || p.Averages.GamesPlayed != 1 || p.Averages.Points != 25 {
		t.Errorf("cached averages incorrect: %+v", p.Averages)
	}

	box, err := ctrl.GetGameBoxScore(ctx, "bb-001")
	if err != nil {
		t.Fatalf("error getting box score: %v", err)
	}
	if box.HomeName != "BC Aukstaitija" {
		t.Errorf("home name incorrect: '%s'", box.HomeName)
	}
	if len(box.Home) != 2 || box.HomeDivider != -1 {
		t.Errorf("home rows incorrect: %d rows, divider %d", len(box.Home), box.HomeDivider)
	}
	if box.Home[0].Name != "Ignas Vaitkus" || box.Home[0].ShirtNumber != 11 {
		t.Errorf("first home row incorrect: %+v", box.Home[0])
	}
}
