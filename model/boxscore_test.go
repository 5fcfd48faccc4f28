package model

import "testing"

func TestPercentage(t *testing.T) {
	tests := map[string]struct {
		made, attempted int
		want            string
	}{
		"no attempts":   {made: 0, attempted: 0, want: "-"},
		"perfect":       {made: 4, attempted: 4, want: "100%"},
		"rounds up":     {made: 5, attempted: 8, want: "63%"},
		"rounds down":   {made: 7, attempted: 13, want: "54%"},
		"zero made":     {made: 0, attempted: 6, want: "0%"},
		"negative att":  {made: 1, attempted: -1, want: "-"},
		"two of five":   {made: 2, attempted: 5, want: "40%"},
		"three of four": {made: 3, attempted: 4, want: "75%"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := Percentage(tc.made, tc.attempted); got != tc.want {
				t.Errorf("percentage incorrect, wanted: '%s', got: '%s'", tc.want, got)
			}
		})
	}
}

func TestDerivedShootingNumbers(t *testing.T) {
	e := &BoxScoreEntry{
		TwoPM: 5, TwoPA: 8,
		ThreePM: 2, ThreePA: 5,
		OffReb: 3, DefReb: 6,
	}
	if e.FieldGoalsMade() != 7 {
		t.Errorf("field goals made incorrect: %d", e.FieldGoalsMade())
	}
	if e.FieldGoalsAttempted() != 13 {
		t.Errorf("field goals attempted incorrect: %d", e.FieldGoalsAttempted())
	}
	if e.TotalRebounds() != 9 {
		t.Errorf("total rebounds incorrect: %d", e.TotalRebounds())
	}
}

func TestRosterKey(t *testing.T) {
	withKey := &BoxScoreEntry{Name: "Šarūnas Čepukas", PlayerKey: "sarunascepukas"}
	if withKey.RosterKey() != "sarunascepukas" {
		t.Errorf("roster key should use the stable key: '%s'", withKey.RosterKey())
	}

	nameOnly := &BoxScoreEntry{Name: "Šarūnas Čepukas"}
	if nameOnly.RosterKey() != "sarunascepukas" {
		t.Errorf("roster key should fall back to the normalized name: '%s'", nameOnly.RosterKey())
	}
}
