package scoreboard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/automoto/recycle-catch/records"
)

// Client talks to a scoreboard server. Every call is bounded by Timeout in
// addition to the caller's context.
type Client struct {
	BaseURL string
	Timeout time.Duration
	HTTP    *http.Client
}

// NewClient creates a client for the server at baseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Timeout: timeout,
		HTTP:    &http.Client{},
	}
}

// Submission is one finished play as the kiosk reports it.
type Submission struct {
	Name       string
	Email      string
	VenueID    string
	DeviceID   string
	Score      int
	Stats      Stats
	DurationMS int64
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s: %w", path, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("build %s: %w", path, err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s %s: %s: %s", method, path, resp.Status, strings.TrimSpace(string(msg)))
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// UpsertUser registers a player and returns its ID.
func (c *Client) UpsertUser(ctx context.Context, name, email string) (string, error) {
	var resp userResponse
	err := c.do(ctx, http.MethodPost, "/users", userRequest{Name: name, Email: email}, &resp)
	return resp.ID, err
}

// StartPlay opens a play session.
func (c *Client) StartPlay(ctx context.Context, userID, venueID, deviceID string) (StartResponse, error) {
	var resp StartResponse
	err := c.do(ctx, http.MethodPost, "/plays/start", startRequest{
		UserID:   userID,
		VenueID:  venueID,
		DeviceID: deviceID,
	}, &resp)
	return resp, err
}

// EndPlay closes a play session with its result.
func (c *Client) EndPlay(ctx context.Context, sessionID string, score int, stats Stats, durationMS int64) (Result, error) {
	var resp Result
	err := c.do(ctx, http.MethodPost, "/plays/end", endRequest{
		SessionID:  sessionID,
		FinalScore: score,
		DurationMS: durationMS,
		Stats:      stats,
	}, &resp)
	return resp, err
}

// Leaderboard fetches today's top entries, optionally for one venue.
func (c *Client) Leaderboard(ctx context.Context, venueID string) ([]records.Entry, error) {
	path := "/leaderboard"
	if venueID != "" {
		path += "?venue_id=" + url.QueryEscape(venueID)
	}
	var entries []records.Entry
	err := c.do(ctx, http.MethodGet, path, nil, &entries)
	return entries, err
}

// Submit reports a finished play: it registers the player, opens a session
// and immediately ends it with the result.
func (c *Client) Submit(ctx context.Context, s Submission) (Result, error) {
	userID, err := c.UpsertUser(ctx, s.Name, s.Email)
	if err != nil {
		return Result{}, err
	}
	start, err := c.StartPlay(ctx, userID, s.VenueID, s.DeviceID)
	if err != nil {
		return Result{}, err
	}
	return c.EndPlay(ctx, start.SessionID, s.Score, s.Stats, s.DurationMS)
}
