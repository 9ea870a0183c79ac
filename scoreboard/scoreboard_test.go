package scoreboard

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/automoto/recycle-catch/config"
	"github.com/automoto/recycle-catch/records"
)

func newTestStore(t *testing.T, now time.Time) *Store {
	t.Helper()
	st := NewStore(0, time.UTC)
	st.now = func() time.Time { return now }
	return st
}

func TestUpsertUserByEmail(t *testing.T) {
	st := newTestStore(t, time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC))

	a := st.UpsertUser(User{Name: "Anna Berg", Email: "Anna@Example.com"})
	b := st.UpsertUser(User{Name: "Anna B. Berg", Email: " anna@example.com "})
	if a != b {
		t.Fatalf("same email should keep the id: %s vs %s", a, b)
	}
	u, ok := st.User(a)
	if !ok || u.Name != "Anna B. Berg" {
		t.Fatalf("user = %+v, %v; want the updated name", u, ok)
	}
	if c := st.UpsertUser(User{Name: "Bo", Email: "bo@example.com"}); c == a {
		t.Fatal("different email must get a new id")
	}
}

func TestEndPlayFloorsAndMarksFirstOfDay(t *testing.T) {
	st := newTestStore(t, time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC))
	uid := st.UpsertUser(User{Name: "Anna Berg", Email: "anna@example.com"})

	s1, err := st.StartPlay(uid, "v1", "kiosk")
	if err != nil {
		t.Fatal(err)
	}
	res, err := st.EndPlay(s1, -40, Stats{ItemsCaught: 2, WrongCatches: 2}, 30000)
	if err != nil {
		t.Fatal(err)
	}
	if res.FinalScore != 0 || !res.IsFirstPlay || !res.RaffleEntered {
		t.Fatalf("first result = %+v", res)
	}

	s2, _ := st.StartPlay(uid, "v1", "kiosk")
	res, err = st.EndPlay(s2, 60, Stats{}, 30000)
	if err != nil {
		t.Fatal(err)
	}
	if res.FinalScore != 60 || res.IsFirstPlay {
		t.Fatalf("second result = %+v", res)
	}

	if _, err := st.EndPlay(s2, 60, Stats{}, 30000); !errors.Is(err, ErrSessionEnded) {
		t.Fatalf("ending twice: err = %v, want ErrSessionEnded", err)
	}
	if _, err := st.EndPlay("nope", 0, Stats{}, 0); !errors.Is(err, ErrUnknownSession) {
		t.Fatalf("unknown session: err = %v", err)
	}
}

func TestStartPlayUnknownUser(t *testing.T) {
	st := newTestStore(t, time.Now())
	if _, err := st.StartPlay("ghost", "", ""); !errors.Is(err, ErrUnknownUser) {
		t.Fatalf("err = %v, want ErrUnknownUser", err)
	}
}

func TestExpireOpenSessions(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	st := newTestStore(t, now)
	st.ttl = time.Minute
	uid := st.UpsertUser(User{Name: "Anna", Email: "anna@example.com"})
	if _, err := st.StartPlay(uid, "", ""); err != nil {
		t.Fatal(err)
	}

	st.now = func() time.Time { return now.Add(30 * time.Second) }
	if n := st.expire(); n != 0 {
		t.Fatalf("expired %d sessions before the ttl", n)
	}
	st.now = func() time.Time { return now.Add(2 * time.Minute) }
	if n := st.expire(); n != 1 {
		t.Fatalf("expired %d sessions, want 1", n)
	}
	if st.OpenSessions() != 0 {
		t.Fatal("session still open after expiry")
	}
}

func TestLeaderboardMasksAndFiltersVenue(t *testing.T) {
	st := newTestStore(t, time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC))
	anna := st.UpsertUser(User{Name: "Anna Berg", Email: "anna@example.com"})
	bo := st.UpsertUser(User{Name: "Bo Holm", Email: "bo@example.com"})

	for _, p := range []struct {
		user, venue string
		score       int
	}{
		{anna, "v1", 40},
		{bo, "v1", 80},
		{bo, "v2", 200},
	} {
		id, _ := st.StartPlay(p.user, p.venue, "")
		if _, err := st.EndPlay(id, p.score, Stats{}, 30000); err != nil {
			t.Fatal(err)
		}
	}

	all := st.Leaderboard("", LeaderboardSize)
	if len(all) != 3 || all[0].Score != 200 || all[0].Name != "Bo H." {
		t.Fatalf("all = %+v", all)
	}
	v1 := st.Leaderboard("v1", LeaderboardSize)
	if len(v1) != 2 || v1[0].Score != 80 || v1[1].Name != "Anna B." {
		t.Fatalf("v1 = %+v", v1)
	}
}

func TestHandlersRejectBadInput(t *testing.T) {
	st := newTestStore(t, time.Now())
	srv := httptest.NewServer(NewMux(st, SettingsFrom(config.Game)))
	defer srv.Close()

	tests := []struct {
		name, path, body string
		want             int
	}{
		{"invalid json", "/users", "{", http.StatusBadRequest},
		{"missing email", "/users", `{"name":"Anna"}`, http.StatusBadRequest},
		{"bad email", "/users", `{"name":"Anna","email":"nope"}`, http.StatusBadRequest},
		{"missing user", "/plays/start", `{}`, http.StatusBadRequest},
		{"unknown user", "/plays/start", `{"user_id":"ghost"}`, http.StatusNotFound},
		{"unknown session", "/plays/end", `{"play_session_id":"x"}`, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Post(srv.URL+tt.path, "application/json", strings.NewReader(tt.body))
			if err != nil {
				t.Fatal(err)
			}
			resp.Body.Close()
			if resp.StatusCode != tt.want {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.want)
			}
		})
	}
}

func TestHandlersSetCORS(t *testing.T) {
	srv := httptest.NewServer(NewMux(newTestStore(t, time.Now()), GameSettings{}))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/leaderboard")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("CORS header = %q", got)
	}

	req, _ := http.NewRequest(http.MethodOptions, srv.URL+"/plays/end", nil)
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("preflight status = %d", resp.StatusCode)
	}
}

func TestClientRoundTrip(t *testing.T) {
	st := NewStore(0, records.Location(records.DefaultZone))
	settings := SettingsFrom(config.Game)
	srv := httptest.NewServer(NewMux(st, settings))
	defer srv.Close()

	c := NewClient(srv.URL+"/", time.Second)
	ctx := context.Background()

	uid, err := c.UpsertUser(ctx, "Anna Berg", "anna@example.com")
	if err != nil {
		t.Fatal(err)
	}
	start, err := c.StartPlay(ctx, uid, "v1", "kiosk-1")
	if err != nil {
		t.Fatal(err)
	}
	if start.SessionID == "" || start.Config != settings {
		t.Fatalf("start = %+v", start)
	}
	if start.Config.DurationMS != config.Game.Duration.Milliseconds() {
		t.Fatalf("duration = %d", start.Config.DurationMS)
	}

	res, err := c.EndPlay(ctx, start.SessionID, 120, Stats{ItemsCaught: 6, CorrectCatches: 6}, 30000)
	if err != nil {
		t.Fatal(err)
	}
	if res.FinalScore != 120 || !res.IsFirstPlay {
		t.Fatalf("end = %+v", res)
	}

	if _, err := c.EndPlay(ctx, start.SessionID, 120, Stats{}, 30000); err == nil {
		t.Fatal("ending twice should fail")
	}

	res, err = c.Submit(ctx, Submission{Name: "Anna Berg", Email: "anna@example.com", VenueID: "v1", Score: -10})
	if err != nil {
		t.Fatal(err)
	}
	if res.FinalScore != 0 || res.IsFirstPlay {
		t.Fatalf("submit = %+v", res)
	}

	board, err := c.Leaderboard(ctx, "v1")
	if err != nil {
		t.Fatal(err)
	}
	if len(board) != 2 || board[0].Name != "Anna B." || board[0].Score != 120 {
		t.Fatalf("board = %+v", board)
	}
}

func TestClientUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	c := NewClient(srv.URL, 200*time.Millisecond)
	if _, err := c.Submit(context.Background(), Submission{Name: "A", Email: "a@example.com"}); err == nil {
		t.Fatal("expected an error from a closed server")
	}
}
