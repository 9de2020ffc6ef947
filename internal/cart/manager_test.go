package cart

import (
	"testing"
	"time"
)

func TestGetOrCreateIssuesNewSession(t *testing.T) {
	m := NewManager(time.Hour)

	id, store := m.GetOrCreate("")
	if id == "" || store == nil {
		t.Fatal("expected new session id and store")
	}

	again, same := m.GetOrCreate(id)
	if again != id {
		t.Errorf("expected same session id %q, got %q", id, again)
	}
	if same != store {
		t.Error("expected same store instance for existing session")
	}
}

func TestGetOrCreateUnknownIDStartsFresh(t *testing.T) {
	m := NewManager(time.Hour)

	id, _ := m.GetOrCreate("does-not-exist")
	if id == "does-not-exist" {
		t.Error("expected a newly issued id for an unknown session")
	}
	if m.ActiveSessions() != 1 {
		t.Errorf("expected 1 active session, got %d", m.ActiveSessions())
	}
}

func TestEvictIdle(t *testing.T) {
	m := NewManager(10 * time.Millisecond)

	staleID, _ := m.GetOrCreate("")
	time.Sleep(20 * time.Millisecond)
	freshID, _ := m.GetOrCreate("")

	m.EvictIdle()

	if _, ok := m.Get(staleID); ok {
		t.Error("expected stale session to be evicted")
	}
	if _, ok := m.Get(freshID); !ok {
		t.Error("expected fresh session to survive eviction")
	}
}

func TestGetRefreshesIdleTimer(t *testing.T) {
	m := NewManager(30 * time.Millisecond)

	id, _ := m.GetOrCreate("")
	time.Sleep(20 * time.Millisecond)
	if _, ok := m.Get(id); !ok {
		t.Fatal("session unexpectedly gone")
	}
	time.Sleep(20 * time.Millisecond)

	m.EvictIdle()
	if _, ok := m.Get(id); !ok {
		t.Error("expected touched session to survive eviction")
	}
}
