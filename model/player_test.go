package model

import (
	"testing"
	"time"
)

func TestNormalizeName(t *testing.T) {
	tests := map[string]struct {
		input string
		want  string
	}{
		"plain ascii":      {input: "Jonas Petraitis", want: "jonaspetraitis"},
		"diacritics":       {input: "Šarūnas Čepukas", want: "sarunascepukas"},
		"all folds":        {input: "ąčęėįšųūž", want: "aceeisuuz"},
		"mixed case":       {input: "MANTAS Žukauskas", want: "mantaszukauskas"},
		"extra whitespace": {input: "  Jonas   Petraitis ", want: "jonaspetraitis"},
		"tabs and newline": {input: "Jonas\tPetraitis\n", want: "jonaspetraitis"},
		"empty":            {input: "", want: ""},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := NormalizeName(tc.input); got != tc.want {
				t.Errorf("normalized name incorrect, wanted: '%s', got: '%s'", tc.want, got)
			}
		})
	}
}

func TestPlayerKey(t *testing.T) {
	if got := PlayerKey("Šarūnas", "Čepukas"); got != "sarunascepukas" {
		t.Errorf("player key incorrect: '%s'", got)
	}
	if PlayerKey("Jonas", "Petraitis") != PlayerKey(" jonas", "PETRAITIS ") {
		t.Error("player key is not stable across case and whitespace")
	}
}

func TestFormatSeconds(t *testing.T) {
	tests := map[string]struct {
		secs int
		want string
	}{
		"zero":            {secs: 0, want: "0:00"},
		"padded seconds":  {secs: 65, want: "1:05"},
		"full minutes":    {secs: 600, want: "10:00"},
		"over 40 minutes": {secs: 40*60 + 9, want: "40:09"},
		"negative":        {secs: -5, want: "0:00"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := FormatSeconds(tc.secs); got != tc.want {
				t.Errorf("formatted time incorrect, wanted: '%s', got: '%s'", tc.want, got)
			}
		})
	}
}

func TestParseMinutes(t *testing.T) {
	tests := map[string]struct {
		input string
		want  int
	}{
		"simple":        {input: "12:30", want: 750},
		"zero":          {input: "0:00", want: 0},
		"no colon":      {input: "12", want: 0},
		"garbage":       {input: "ab:cd", want: 0},
		"negative part": {input: "-1:30", want: 0},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := ParseMinutes(tc.input); got != tc.want {
				t.Errorf("parsed seconds incorrect, wanted: %d, got: %d", tc.want, got)
			}
		})
	}
}

func TestPlayerDateFunctions(t *testing.T) {
	noBirthDate := &Player{}
	if noBirthDate.FormattedBirthDate() != "unknown" {
		t.Error("birthdate is not unknown")
	}
	if noBirthDate.Age(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)) != 0 {
		t.Error("age for unknown birthdate is not 0")
	}

	p := &Player{BirthDate: time.Date(1999, 3, 12, 0, 0, 0, 0, time.UTC)}
	if p.FormattedBirthDate() != "1999-03-12" {
		t.Errorf("birthdate was not expected value: '%s'", p.FormattedBirthDate())
	}
	if got := p.Age(time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)); got != 26 {
		t.Errorf("age before birthday incorrect, wanted: 26, got: %d", got)
	}
	if got := p.Age(time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)); got != 27 {
		t.Errorf("age on birthday incorrect, wanted: 27, got: %d", got)
	}
}

func TestFullName(t *testing.T) {
	p := &Player{FirstName: "Šarūnas", LastName: "Čepukas"}
	if p.FullName() != "Šarūnas Čepukas" {
		t.Errorf("full name incorrect: '%s'", p.FullName())
	}
}
