package scoreboard

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"github.com/automoto/recycle-catch/config"
)

// LeaderboardSize is how many entries GET /leaderboard returns.
const LeaderboardSize = 10

const maxRequestBody = 1 << 16 // 64 KB

// Stats are the catch counters a finished play reports.
type Stats struct {
	ItemsCaught    int `json:"items_caught"`
	CorrectCatches int `json:"correct_catches"`
	WrongCatches   int `json:"wrong_catches"`
}

// GameSettings is the round configuration handed to a device when a play
// starts.
type GameSettings struct {
	DurationMS    int64 `json:"duration_ms"`
	ScorePerGood  int   `json:"score_per_good"`
	PenaltyPerBad int   `json:"penalty_per_bad"`
	Floor         int   `json:"floor"`
}

// SettingsFrom derives the device settings from a game configuration.
func SettingsFrom(g config.GameConfig) GameSettings {
	return GameSettings{
		DurationMS:    g.Duration.Milliseconds(),
		ScorePerGood:  g.ScorePerCorrect,
		PenaltyPerBad: g.PenaltyPerWrong,
		Floor:         g.ScoreFloor,
	}
}

type userRequest struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	UserType         string `json:"user_type"`
	ConsentMarketing bool   `json:"consent_marketing"`
	Locale           string `json:"locale"`
}

type userResponse struct {
	ID string `json:"id"`
}

type startRequest struct {
	UserID   string `json:"user_id"`
	VenueID  string `json:"venue_id"`
	DeviceID string `json:"device_id"`
}

// StartResponse is the reply to POST /plays/start.
type StartResponse struct {
	SessionID string       `json:"play_session_id"`
	Config    GameSettings `json:"config"`
}

type endRequest struct {
	SessionID  string `json:"play_session_id"`
	FinalScore int    `json:"final_score"`
	DurationMS int64  `json:"duration_ms"`
	Stats      Stats  `json:"stats"`
}

func writeHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

// Preflight answers CORS preflight requests from the browser kiosk.
func Preflight() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		w.WriteHeader(http.StatusNoContent)
	}
}

func UpsertUser(st *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeHeaders(w)

		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
		var req userRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid json"}`, http.StatusBadRequest)
			return
		}
		req.Name = strings.TrimSpace(req.Name)
		if req.Name == "" || req.Email == "" {
			http.Error(w, `{"error":"name and email required"}`, http.StatusBadRequest)
			return
		}
		if _, err := mail.ParseAddress(req.Email); err != nil {
			http.Error(w, `{"error":"invalid email"}`, http.StatusBadRequest)
			return
		}

		id := st.UpsertUser(User{
			Name:             req.Name,
			Email:            req.Email,
			UserType:         req.UserType,
			ConsentMarketing: req.ConsentMarketing,
			Locale:           req.Locale,
		})

		log.Printf("[scoreboard] upserted user %q (id=%s)", req.Name, id)

		_ = json.NewEncoder(w).Encode(userResponse{ID: id})
	}
}

func StartPlay(st *Store, settings GameSettings) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeHeaders(w)

		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
		var req startRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid json"}`, http.StatusBadRequest)
			return
		}
		if req.UserID == "" {
			http.Error(w, `{"error":"user_id required"}`, http.StatusBadRequest)
			return
		}

		id, err := st.StartPlay(req.UserID, req.VenueID, req.DeviceID)
		if errors.Is(err, ErrUnknownUser) {
			http.Error(w, `{"error":"unknown user"}`, http.StatusNotFound)
			return
		}

		log.Printf("[scoreboard] play %s started (user=%s, venue=%q)", id, req.UserID, req.VenueID)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(StartResponse{SessionID: id, Config: settings})
	}
}

func EndPlay(st *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeHeaders(w)

		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
		var req endRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid json"}`, http.StatusBadRequest)
			return
		}

		res, err := st.EndPlay(req.SessionID, req.FinalScore, req.Stats, req.DurationMS)
		switch {
		case errors.Is(err, ErrSessionEnded):
			http.Error(w, `{"error":"play already ended"}`, http.StatusConflict)
			return
		case err != nil:
			http.Error(w, `{"error":"unknown play session"}`, http.StatusNotFound)
			return
		}

		log.Printf("[scoreboard] play %s ended with %d (first=%t, %s)",
			req.SessionID, res.FinalScore, res.IsFirstPlay, time.Duration(req.DurationMS)*time.Millisecond)

		_ = json.NewEncoder(w).Encode(res)
	}
}

func Leaderboard(st *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeHeaders(w)

		entries := st.Leaderboard(r.URL.Query().Get("venue_id"), LeaderboardSize)
		if err := json.NewEncoder(w).Encode(entries); err != nil {
			log.Printf("[scoreboard] leaderboard encode error: %v", err)
		}
	}
}

func Health() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}
}

// NewMux routes every endpoint of the backend.
func NewMux(st *Store, settings GameSettings) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /users", UpsertUser(st))
	mux.HandleFunc("POST /plays/start", StartPlay(st, settings))
	mux.HandleFunc("POST /plays/end", EndPlay(st))
	mux.HandleFunc("GET /leaderboard", Leaderboard(st))
	mux.HandleFunc("GET /health", Health())
	mux.HandleFunc("OPTIONS /", Preflight())
	return mux
}
