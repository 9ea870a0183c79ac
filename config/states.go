package config

// SessionStateID is the host-side phase of one play session.
type SessionStateID int

const (
	SessionCountdown SessionStateID = iota
	SessionPlaying
	SessionFinished
)

func (s SessionStateID) String() string {
	switch s {
	case SessionCountdown:
		return "countdown"
	case SessionPlaying:
		return "playing"
	case SessionFinished:
		return "finished"
	}
	return "unknown"
}
