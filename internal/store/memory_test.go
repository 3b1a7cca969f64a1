package store

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryFailureInjection(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	if err := m.Save(ctx, "k", "v"); err != nil {
		t.Fatalf("save: %v", err)
	}

	boom := errors.New("disk full")
	m.FailSaves(boom)
	if err := m.Save(ctx, "k", "w"); !errors.Is(err, boom) {
		t.Fatalf("expected injected save error, got %v", err)
	}
	if v, _ := m.Get("k"); v != "v" {
		t.Fatalf("failed save must not change value, got %q", v)
	}
	if m.Saves() != 1 {
		t.Fatalf("expected 1 successful save, got %d", m.Saves())
	}

	m.FailLoads(boom)
	if _, _, err := m.Load(ctx, "k"); !errors.Is(err, boom) {
		t.Fatalf("expected injected load error, got %v", err)
	}
	m.FailLoads(nil)
	v, ok, err := m.Load(ctx, "k")
	if err != nil || !ok || v != "v" {
		t.Fatalf("unexpected load result: %q %v %v", v, ok, err)
	}
}
