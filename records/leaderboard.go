// Package records keeps finished plays and ranks them into a daily
// leaderboard. The same ranking serves the kiosk's local save data and the
// scoreboard service.
package records

import (
	"log"
	"sort"
	"strings"
	"time"
	_ "time/tzdata"
)

// Play is one finished run.
type Play struct {
	ID             string    `json:"id,omitempty"`
	Player         string    `json:"player,omitempty"`
	Venue          string    `json:"venue,omitempty"`
	Score          int       `json:"score"`
	ItemsCaught    int       `json:"itemsCaught"`
	CorrectCatches int       `json:"correctCatches"`
	WrongCatches   int       `json:"wrongCatches"`
	DurationMS     int64     `json:"durationMs"`
	StartedAt      time.Time `json:"startedAt"`
	FirstOfDay     bool      `json:"firstOfDay"`
}

// Entry is one leaderboard row.
type Entry struct {
	Rank      int       `json:"rank"`
	Name      string    `json:"name_masked"`
	Score     int       `json:"score_dkk"`
	Timestamp time.Time `json:"timestamp"`
}

// DefaultZone is the time zone days are counted in.
const DefaultZone = "Europe/Copenhagen"

// Location loads a time zone by name, falling back to UTC.
func Location(name string) *time.Location {
	if name == "" {
		name = DefaultZone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("Warning: unknown time zone %q, using UTC: %v", name, err)
		return time.UTC
	}
	return loc
}

// MaskName shortens a full name to its first name and last initial,
// "Anna Maria Berg" becomes "Anna B.".
func MaskName(name string) string {
	parts := strings.Fields(name)
	switch len(parts) {
	case 0:
		return "Anonymous"
	case 1:
		return parts[0]
	}
	last := []rune(parts[len(parts)-1])
	return parts[0] + " " + string(last[0]) + "."
}

// SameDay reports whether a and b fall on the same calendar day in loc.
func SameDay(a, b time.Time, loc *time.Location) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}

// Ranked returns the plays of now's day, best score first and earlier start
// first among equal scores. An empty venue matches every venue.
func Ranked(plays []Play, now time.Time, loc *time.Location, venue string) []Play {
	var today []Play
	for _, p := range plays {
		if venue != "" && p.Venue != venue {
			continue
		}
		if SameDay(p.StartedAt, now, loc) {
			today = append(today, p)
		}
	}
	sort.SliceStable(today, func(i, j int) bool {
		if today[i].Score != today[j].Score {
			return today[i].Score > today[j].Score
		}
		return today[i].StartedAt.Before(today[j].StartedAt)
	})
	return today
}

// Leaderboard returns the top n of now's day with masked names.
// names resolves a play's player to a display name; nil uses Player as is.
func Leaderboard(plays []Play, now time.Time, loc *time.Location, venue string, n int, names func(player string) string) []Entry {
	ranked := Ranked(plays, now, loc, venue)
	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	entries := make([]Entry, 0, len(ranked))
	for i, p := range ranked {
		name := p.Player
		if names != nil {
			name = names(p.Player)
		}
		entries = append(entries, Entry{
			Rank:      i + 1,
			Name:      MaskName(name),
			Score:     p.Score,
			Timestamp: p.StartedAt,
		})
	}
	return entries
}
