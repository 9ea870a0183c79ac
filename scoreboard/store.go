// Package scoreboard is the kiosk backend: player registration, play
// sessions and the daily leaderboard, served as JSON over HTTP from an
// in-memory store.
package scoreboard

import (
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/automoto/recycle-catch/records"
)

var (
	ErrUnknownUser    = errors.New("unknown user")
	ErrUnknownSession = errors.New("unknown play session")
	ErrSessionEnded   = errors.New("play session already ended")
)

// User is a registered player.
type User struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	UserType         string    `json:"user_type"`
	ConsentMarketing bool      `json:"consent_marketing"`
	Locale           string    `json:"locale"`
	CreatedAt        time.Time `json:"created_at"`
}

type session struct {
	ID        string
	UserID    string
	Venue     string
	Device    string
	StartedAt time.Time
}

// Result is what ending a play reports back.
type Result struct {
	FinalScore    int  `json:"final_score"`
	IsFirstPlay   bool `json:"is_first_play"`
	RaffleEntered bool `json:"raffle_entered"`
}

// Store holds users, open sessions and finished plays. Open sessions that
// never end expire after the store's TTL.
type Store struct {
	mu       sync.RWMutex
	users    map[string]*User
	byEmail  map[string]string
	sessions map[string]*session
	plays    []records.Play
	raffle   map[string]bool // keyed by "YYYY-MM-DD/userID"

	ttl    time.Duration
	loc    *time.Location
	now    func() time.Time
	stopCh chan struct{}
}

// NewStore creates an empty store and starts expiring sessions older than ttl.
// A zero ttl disables expiry.
func NewStore(ttl time.Duration, loc *time.Location) *Store {
	if loc == nil {
		loc = records.Location(records.DefaultZone)
	}
	s := &Store{
		users:    make(map[string]*User),
		byEmail:  make(map[string]string),
		sessions: make(map[string]*session),
		raffle:   make(map[string]bool),
		ttl:      ttl,
		loc:      loc,
		now:      time.Now,
		stopCh:   make(chan struct{}),
	}
	if ttl > 0 {
		go s.cleanupLoop()
	}
	return s
}

// Stop ends the expiry loop.
func (s *Store) Stop() {
	select {
	case <-s.stopCh:
	default:
		close(s.stopCh)
	}
}

func newID() string {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	return fmt.Sprintf("%x", b)
}

// UpsertUser registers a player, or updates the one with the same email,
// and returns its ID.
func (s *Store) UpsertUser(u User) string {
	email := strings.ToLower(strings.TrimSpace(u.Email))

	s.mu.Lock()
	defer s.mu.Unlock()

	if id, ok := s.byEmail[email]; ok {
		existing := s.users[id]
		existing.Name = u.Name
		existing.UserType = u.UserType
		existing.ConsentMarketing = u.ConsentMarketing
		existing.Locale = u.Locale
		return id
	}

	u.ID = newID()
	u.Email = email
	u.CreatedAt = s.now()
	s.users[u.ID] = &u
	s.byEmail[email] = u.ID
	return u.ID
}

// User returns a registered player.
func (s *Store) User(id string) (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return User{}, false
	}
	return *u, true
}

// StartPlay opens a play session for a registered player.
func (s *Store) StartPlay(userID, venue, device string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[userID]; !ok {
		return "", ErrUnknownUser
	}
	id := newID()
	s.sessions[id] = &session{
		ID:        id,
		UserID:    userID,
		Venue:     venue,
		Device:    device,
		StartedAt: s.now(),
	}
	return id, nil
}

// EndPlay closes a session with its final result. The score is floored at
// zero, and the player's first finished play of the day enters the raffle.
func (s *Store) EndPlay(sessionID string, score int, stats Stats, durationMS int64) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		for _, p := range s.plays {
			if p.ID == sessionID {
				return Result{}, ErrSessionEnded
			}
		}
		return Result{}, ErrUnknownSession
	}
	delete(s.sessions, sessionID)

	score = max(0, score)
	dayKey := sess.StartedAt.In(s.loc).Format(time.DateOnly) + "/" + sess.UserID
	first := !s.raffle[dayKey]
	s.raffle[dayKey] = true

	s.plays = append(s.plays, records.Play{
		ID:             sess.ID,
		Player:         sess.UserID,
		Venue:          sess.Venue,
		Score:          score,
		ItemsCaught:    stats.ItemsCaught,
		CorrectCatches: stats.CorrectCatches,
		WrongCatches:   stats.WrongCatches,
		DurationMS:     durationMS,
		StartedAt:      sess.StartedAt,
		FirstOfDay:     first,
	})
	return Result{FinalScore: score, IsFirstPlay: first, RaffleEntered: first}, nil
}

// Leaderboard returns today's top n, optionally for one venue.
func (s *Store) Leaderboard(venue string, n int) []records.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return records.Leaderboard(s.plays, s.now(), s.loc, venue, n, func(id string) string {
		if u, ok := s.users[id]; ok {
			return u.Name
		}
		return ""
	})
}

// OpenSessions reports how many plays were started and not yet ended.
func (s *Store) OpenSessions() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// expire drops open sessions older than the TTL and returns how many.
func (s *Store) expire() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	n := 0
	for id, sess := range s.sessions {
		if now.Sub(sess.StartedAt) >= s.ttl {
			log.Printf("[scoreboard] expired play session %s (user=%s, started %s ago)",
				id, sess.UserID, now.Sub(sess.StartedAt).Round(time.Second))
			delete(s.sessions, id)
			n++
		}
	}
	return n
}

func (s *Store) cleanupLoop() {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopCh:
			return
		case <-ticker.C:
			s.expire()
		}
	}
}
