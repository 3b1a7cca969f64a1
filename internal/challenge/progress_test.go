package challenge

import (
	"errors"
	"testing"
)

func TestPercentageAndDaysRemaining(t *testing.T) {
	cases := []struct {
		streak    int
		length    Length
		pct       float64
		remaining int
	}{
		{0, Length21, 0, 21},
		{21, Length21, 100, 0},
		{30, Length21, 100, 0},
		{50, Length100, 50, 50},
		{7, Length21, 100.0 / 3, 14},
	}
	for _, tc := range cases {
		if got := Percentage(tc.streak, tc.length); got != tc.pct {
			t.Fatalf("Percentage(%d, %d) = %v, want %v", tc.streak, tc.length, got, tc.pct)
		}
		if got := DaysRemaining(tc.streak, tc.length); got != tc.remaining {
			t.Fatalf("DaysRemaining(%d, %d) = %d, want %d", tc.streak, tc.length, got, tc.remaining)
		}
	}
}

func TestMilestones(t *testing.T) {
	short := Milestones(8, Length21)
	if len(short) != 2 {
		t.Fatalf("expected 2 milestones for a 21-day challenge, got %d", len(short))
	}
	if !short[0].Reached || short[1].Reached {
		t.Fatalf("unexpected reached flags: %+v", short)
	}

	long := Milestones(100, Length100)
	if len(long) != 3 || long[2].Title != "Champion" || !long[2].Reached {
		t.Fatalf("unexpected milestones: %+v", long)
	}
}

func TestParseLength(t *testing.T) {
	for _, in := range []string{"21", " 100 "} {
		if _, err := ParseLength(in); err != nil {
			t.Fatalf("ParseLength(%q): %v", in, err)
		}
	}
	for _, in := range []string{"", "7", "abc", "21.0"} {
		if _, err := ParseLength(in); !errors.Is(err, ErrInvalidLength) {
			t.Fatalf("ParseLength(%q): expected ErrInvalidLength, got %v", in, err)
		}
	}
	if Length21.Other() != Length100 || Length100.Other() != Length21 {
		t.Fatalf("Other must toggle between the supported lengths")
	}
}
