package model

import "testing"

func TestParsePosition(t *testing.T) {
	tests := map[string]struct {
		input string
		want  Position
	}{
		"point guard":   {input: "PG", want: POS_PG},
		"lower case":    {input: "c", want: POS_C},
		"whitespace":    {input: " SF ", want: POS_SF},
		"combo":         {input: "SG/SF", want: Position("SG/SF")},
		"combo lower":   {input: "pf/c", want: Position("PF/C")},
		"bad combo":     {input: "SG/XX", want: POS_UNKNOWN},
		"empty":         {input: "", want: POS_UNKNOWN},
		"unknown value": {input: "GK", want: POS_UNKNOWN},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := ParsePosition(tc.input); got != tc.want {
				t.Errorf("position incorrect, wanted: '%s', got: '%s'", tc.want, got)
			}
		})
	}
}

func TestPositionMatches(t *testing.T) {
	tests := map[string]struct {
		pos    Position
		filter string
		want   bool
	}{
		"exact":            {pos: POS_PG, filter: "PG", want: true},
		"empty filter":     {pos: POS_PG, filter: "", want: true},
		"all filter":       {pos: POS_C, filter: "ALL", want: true},
		"lower filter":     {pos: POS_SG, filter: "sg", want: true},
		"combo first":      {pos: Position("SG/SF"), filter: "SG", want: true},
		"combo second":     {pos: Position("SG/SF"), filter: "SF", want: true},
		"combo miss":       {pos: Position("SG/SF"), filter: "C", want: false},
		"plain miss":       {pos: POS_PF, filter: "PG", want: false},
		"unknown position": {pos: POS_UNKNOWN, filter: "PG", want: false},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tc.pos.Matches(tc.filter); got != tc.want {
				t.Errorf("match incorrect for %s filter %s, wanted: %v, got: %v", tc.pos, tc.filter, tc.want, got)
			}
		})
	}
}
