package model

import (
	"fmt"
	"strings"
	"time"
)

type Player struct {
	TeamID      string
	Key         string // normalized "firstnamelastname", the document key
	FirstName   string
	LastName    string
	BirthDate   time.Time
	Nationality string
	Height      int // cm
	Weight      int // kg
	ShirtNumber int // 0 means not assigned
	Position    Position
	PhotoURL    string

	// Averages is the cached season-averages block written by the stats
	// refresh job. It may be nil when the player has never been through a
	// refresh. Live displays recompute from box scores; this is only a cache.
	Averages *SeasonAverages
}

func (p *Player) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

func (p *Player) FormattedBirthDate() string {
	if p.BirthDate.IsZero() {
		return "unknown"
	}
	return p.BirthDate.Format(time.DateOnly)
}

// Age in whole years as of now.
func (p *Player) Age(now time.Time) int {
	if p.BirthDate.IsZero() {
		return 0
	}
	years := now.Year() - p.BirthDate.Year()
	if now.YearDay() < p.BirthDate.YearDay() {
		years--
	}
	return years
}

// Roster documents and box-score joins are keyed by the normalized full
// name. The normalization lowercases, folds Lithuanian diacritics to their
// base Latin letter and strips all whitespace, so "Šarūnas Čepukas"
// becomes "sarunascepukas".
var diacriticFolds = strings.NewReplacer(
	"ą", "a",
	"č", "c",
	"ę", "e",
	"ė", "e",
	"į", "i",
	"š", "s",
	"ų", "u",
	"ū", "u",
	"ž", "z",
)

func NormalizeName(name string) string {
	s := strings.ToLower(name)
	s = diacriticFolds.Replace(s)
	return strings.Join(strings.Fields(s), "")
}

// PlayerKey builds the document key for a first/last name pair.
func PlayerKey(firstName, lastName string) string {
	return NormalizeName(firstName + lastName)
}

// SeasonAverages are the per-game derived numbers for one player.
// Percentages are 0-100. AvgSeconds is the average time on court per game
// in whole seconds; Minutes() renders it for display.
type SeasonAverages struct {
	GamesPlayed int
	Points      float64
	Rebounds    float64
	Assists     float64
	Steals      float64
	Blocks      float64
	Efficiency  float64
	FieldGoal   float64
	TwoPoint    float64
	ThreePoint  float64
	FreeThrow   float64
	AvgSeconds  int
	Updated     time.Time
}

// Minutes renders the average time on court as M:SS, seconds zero-padded.
func (a *SeasonAverages) Minutes() string {
	return FormatSeconds(a.AvgSeconds)
}

func FormatSeconds(secs int) string {
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// ParseMinutes converts a "M:SS" display value back into whole seconds.
// Malformed values count as zero time on court.
func ParseMinutes(mmss string) int {
	parts := strings.SplitN(mmss, ":", 2)
	if len(parts) != 2 {
		return 0
	}
	var m, s int
	if _, err := fmt.Sscanf(parts[0], "%d", &m); err != nil {
		return 0
	}
	if _, err := fmt.Sscanf(parts[1], "%d", &s); err != nil {
		return 0
	}
	if m < 0 || s < 0 {
		return 0
	}
	return m*60 + s
}
