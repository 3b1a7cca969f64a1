package motivation

import (
	"strings"
	"testing"
)

func TestMessage(t *testing.T) {
	cases := []struct {
		day  int
		want string
	}{
		{1, "Day 1 complete"},
		{21, "21 DAYS COMPLETE"},
		{0, "Day 0 complete"},
		{22, "Day 22 achieved"},
		{60, "60 days of excellence"},
		{75, "75 days conquered"},
		{150, "Day 150 mastery"},
	}
	for _, tc := range cases {
		if got := Message(tc.day); !strings.Contains(got, tc.want) {
			t.Fatalf("Message(%d) = %q, want substring %q", tc.day, got, tc.want)
		}
	}
}
