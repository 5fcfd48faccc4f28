package model

import "testing"

func TestParseDivision(t *testing.T) {
	tests := map[string]struct {
		input string
		want  Division
	}{
		"a division": {input: "A", want: DivisionA},
		"lower case": {input: "b-a", want: DivisionBA},
		"whitespace": {input: " B-B ", want: DivisionBB},
		"unknown":    {input: "C", want: DivisionUnknown},
		"empty":      {input: "", want: DivisionUnknown},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := ParseDivision(tc.input); got != tc.want {
				t.Errorf("division incorrect, wanted: '%s', got: '%s'", tc.want, got)
			}
		})
	}
}

func TestDivisionRowCount(t *testing.T) {
	if DivisionA.RowCount() != 16 {
		t.Errorf("A division row count incorrect: %d", DivisionA.RowCount())
	}
	if DivisionBA.RowCount() != 13 {
		t.Errorf("B-A division row count incorrect: %d", DivisionBA.RowCount())
	}
	if DivisionBB.RowCount() != 13 {
		t.Errorf("B-B division row count incorrect: %d", DivisionBB.RowCount())
	}
}

func TestDivisionValid(t *testing.T) {
	if !DivisionA.Valid() || !DivisionBA.Valid() || !DivisionBB.Valid() {
		t.Error("known divisions should be valid")
	}
	if DivisionUnknown.Valid() {
		t.Error("unknown division should not be valid")
	}
	if Division("C").Valid() {
		t.Error("made-up division should not be valid")
	}
}
