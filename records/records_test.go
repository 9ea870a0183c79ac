package records

import (
	"errors"
	"testing"
	"time"
)

type memStore struct {
	items   map[string][]byte
	saveErr error
}

func newMemStore() *memStore { return &memStore{items: map[string][]byte{}} }

func (m *memStore) LoadItem(key string) ([]byte, error) { return m.items[key], nil }

func (m *memStore) SaveItem(key string, data []byte) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.items[key] = append([]byte(nil), data...)
	return nil
}

func TestMaskName(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Anna Berg", "Anna B."},
		{"  Anna   Maria Berg ", "Anna B."},
		{"Cher", "Cher"},
		{"", "Anonymous"},
		{"Åse Øberg", "Åse Ø."},
	}
	for _, tt := range tests {
		if got := MaskName(tt.in); got != tt.want {
			t.Errorf("MaskName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLeaderboardOrdering(t *testing.T) {
	loc := time.UTC
	day := time.Date(2026, 5, 4, 12, 0, 0, 0, loc)
	plays := []Play{
		{Player: "Bo Lund", Score: 80, StartedAt: day.Add(-2 * time.Hour)},
		{Player: "Ida Holm", Score: 120, StartedAt: day.Add(-time.Hour)},
		{Player: "Eva Dahl", Score: 80, StartedAt: day.Add(-3 * time.Hour)},
		{Player: "Old Timer", Score: 999, StartedAt: day.Add(-24 * time.Hour)},
		{Player: "Vic Venue", Score: 500, Venue: "other", StartedAt: day},
	}

	got := Leaderboard(plays, day, loc, "", 3, nil)
	want := []Entry{
		{Rank: 1, Name: "Vic V.", Score: 500},
		{Rank: 2, Name: "Ida H.", Score: 120},
		{Rank: 3, Name: "Eva D.", Score: 80},
	}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Rank != want[i].Rank || got[i].Name != want[i].Name || got[i].Score != want[i].Score {
			t.Errorf("entry %d = %+v, want %+v", i, got[i], want[i])
		}
	}

	venue := Leaderboard(plays, day, loc, "other", 10, nil)
	if len(venue) != 1 || venue[0].Score != 500 {
		t.Errorf("venue leaderboard = %+v", venue)
	}
}

func TestSameDayUsesLocation(t *testing.T) {
	cph := Location("Europe/Copenhagen")
	// 23:30 UTC is already the next day in Copenhagen.
	a := time.Date(2026, 1, 10, 23, 30, 0, 0, time.UTC)
	b := time.Date(2026, 1, 11, 9, 0, 0, 0, time.UTC)
	if !SameDay(a, b, cph) {
		t.Error("SameDay in Copenhagen = false, want true")
	}
	if SameDay(a, b, time.UTC) {
		t.Error("SameDay in UTC = true, want false")
	}
}

func TestBookRecord(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	store := newMemStore()
	b := NewBook(store, func() time.Time { return now }, time.UTC)

	rank, err := b.Record(Play{Player: "Anna Berg", Score: 40})
	if err != nil || rank != 1 {
		t.Fatalf("Record() = %d, %v; want 1, nil", rank, err)
	}
	rank, _ = b.Record(Play{Player: "Bo Lund", Score: 60})
	if rank != 1 {
		t.Errorf("higher score rank = %d, want 1", rank)
	}
	rank, _ = b.Record(Play{Player: "Anna Berg", Score: -30})
	if rank != 3 {
		t.Errorf("floored score rank = %d, want 3", rank)
	}

	h := b.History()
	if !h[0].FirstOfDay || !h[1].FirstOfDay || h[2].FirstOfDay {
		t.Errorf("FirstOfDay = %v %v %v, want true true false", h[0].FirstOfDay, h[1].FirstOfDay, h[2].FirstOfDay)
	}
	if h[2].Score != 0 {
		t.Errorf("negative score saved as %d, want 0", h[2].Score)
	}

	// A fresh book over the same store sees the saved history.
	reopened := NewBook(store, func() time.Time { return now }, time.UTC)
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load() = %v", err)
	}
	top := reopened.Today(2)
	if len(top) != 2 || top[0].Name != "Bo L." || top[1].Name != "Anna B." {
		t.Errorf("Today(2) = %+v", top)
	}

	now = now.Add(24 * time.Hour)
	if got := reopened.Today(10); len(got) != 0 {
		t.Errorf("Today() on the next day = %+v, want empty", got)
	}
}

func TestBookKeepsPlayWhenSaveFails(t *testing.T) {
	store := newMemStore()
	store.saveErr = errors.New("disk full")
	b := NewBook(store, nil, time.UTC)

	if _, err := b.Record(Play{Score: 20}); err == nil {
		t.Fatal("Record() error = nil, want save error")
	}
	if b.Len() != 1 {
		t.Errorf("Len() = %d, want 1", b.Len())
	}
}

func TestBookLoadCorrupt(t *testing.T) {
	store := newMemStore()
	store.items[playsKey] = []byte("{not json")
	b := NewBook(store, nil, time.UTC)
	if err := b.Load(); err == nil {
		t.Error("Load() of corrupt data = nil, want error")
	}
	if b.Len() != 0 {
		t.Errorf("Len() = %d after failed load, want 0", b.Len())
	}
}

func TestBookTrimsHistory(t *testing.T) {
	b := NewBook(newMemStore(), nil, time.UTC)
	for i := 0; i < MaxPlays+25; i++ {
		b.Record(Play{Score: i})
	}
	if b.Len() != MaxPlays {
		t.Errorf("Len() = %d, want %d", b.Len(), MaxPlays)
	}
	if first := b.History()[0].Score; first != 25 {
		t.Errorf("oldest kept score = %d, want 25", first)
	}
}
