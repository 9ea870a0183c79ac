package records

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/quasilyte/gdata"
)

// Store is the key/value save data a Book persists to. *gdata.Manager
// satisfies it.
type Store interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

const (
	playsKey = "plays"

	// MaxPlays bounds the saved history; the oldest plays are dropped first.
	MaxPlays = 1000
)

// Book is the kiosk's local play history.
type Book struct {
	store Store
	now   func() time.Time
	loc   *time.Location

	mu    sync.Mutex
	plays []Play
	seq   int
}

// Open opens the save data of appName and loads its history.
func Open(appName string, loc *time.Location) (*Book, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("open save data: %w", err)
	}
	b := NewBook(m, time.Now, loc)
	if err := b.Load(); err != nil {
		return b, err
	}
	return b, nil
}

// NewBook creates an empty book over store. A nil now uses time.Now and a nil
// loc uses DefaultZone.
func NewBook(store Store, now func() time.Time, loc *time.Location) *Book {
	if now == nil {
		now = time.Now
	}
	if loc == nil {
		loc = Location(DefaultZone)
	}
	return &Book{store: store, now: now, loc: loc}
}

// Load replaces the in-memory history with the saved one. Missing data is an
// empty history; unreadable data leaves the book empty and is returned.
func (b *Book) Load() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.plays = nil

	data, err := b.store.LoadItem(playsKey)
	if err != nil {
		return fmt.Errorf("load plays: %w", err)
	}
	if len(data) == 0 {
		return nil
	}
	var plays []Play
	if err := json.Unmarshal(data, &plays); err != nil {
		return fmt.Errorf("parse plays: %w", err)
	}
	b.plays = plays
	return nil
}

// Record adds a finished play, saves the history and returns the play's rank
// on today's leaderboard. The play is kept in memory even if saving fails.
func (b *Book) Record(p Play) (rank int, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if p.StartedAt.IsZero() {
		p.StartedAt = b.now()
	}
	p.Score = max(0, p.Score)
	if p.ID == "" {
		b.seq++
		p.ID = fmt.Sprintf("local-%d-%d", p.StartedAt.UnixNano(), b.seq)
	}
	p.FirstOfDay = p.Player != "" && !b.playedOn(p.Player, p.StartedAt)

	b.plays = append(b.plays, p)
	if len(b.plays) > MaxPlays {
		b.plays = append(b.plays[:0], b.plays[len(b.plays)-MaxPlays:]...)
	}

	for i, r := range Ranked(b.plays, p.StartedAt, b.loc, "") {
		if r.ID == p.ID {
			rank = i + 1
			break
		}
	}
	return rank, b.save()
}

func (b *Book) playedOn(player string, day time.Time) bool {
	for _, q := range b.plays {
		if q.Player == player && SameDay(q.StartedAt, day, b.loc) {
			return true
		}
	}
	return false
}

func (b *Book) save() error {
	data, err := json.Marshal(b.plays)
	if err != nil {
		return fmt.Errorf("encode plays: %w", err)
	}
	if err := b.store.SaveItem(playsKey, data); err != nil {
		return fmt.Errorf("save plays: %w", err)
	}
	return nil
}

// Today returns today's top n with masked names.
func (b *Book) Today(n int) []Entry {
	b.mu.Lock()
	defer b.mu.Unlock()
	return Leaderboard(b.plays, b.now(), b.loc, "", n, nil)
}

// Len reports how many plays are kept.
func (b *Book) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.plays)
}

// History returns a copy of the kept plays, oldest first.
func (b *Book) History() []Play {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Play(nil), b.plays...)
}
