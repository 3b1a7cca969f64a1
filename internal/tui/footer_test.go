package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/verte-zerg/sugarcut/internal/challenge"
	"github.com/verte-zerg/sugarcut/internal/store"
)

func TestRenderFooterShowsSaveError(t *testing.T) {
	kv := store.NewMemory()
	clock := clockwork.NewFakeClockAt(time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC))
	engine := challenge.New(kv, challenge.WithClock(clock), challenge.WithLocation(time.UTC))
	if err := engine.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	m := NewModel(engine, "test")
	kv.FailSaves(errors.New("disk full"))

	press(m, "c")
	out := m.renderFooter()
	if !containsAll(out, []string{"save checkInHistory", "disk full"}) {
		t.Fatalf("footer missing error: %s", out)
	}
	if !engine.IsCheckedInToday() {
		t.Fatalf("expected in-memory check-in to survive the failed save")
	}
}

func TestRenderFooterClearsErrorAfterSuccess(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.errMsg = "save startDate: boom"

	press(m, "c")
	if strings.Contains(m.renderFooter(), "boom") {
		t.Fatalf("expected stale error to be cleared")
	}
}

func containsAll(haystack string, needles []string) bool {
	for _, needle := range needles {
		if !strings.Contains(haystack, needle) {
			return false
		}
	}
	return true
}
