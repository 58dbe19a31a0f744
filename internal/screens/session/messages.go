package session

import (
	"github.com/lernbox/lernbox/internal/badges"
	sess "github.com/lernbox/lernbox/internal/session"
)

// sessionInitMsg is sent when session setup (exercise picking) is complete.
type sessionInitMsg struct {
	State *sess.State
	Err   error
}

// resultPersistedMsg confirms a finished exercise was appended.
type resultPersistedMsg struct {
	Err error
}

// sessionEndMsg is sent to trigger the session end flow.
type sessionEndMsg struct {
	Abandoned bool
}

// sessionFinishedMsg carries the persisted summary and fresh badge awards.
type sessionFinishedMsg struct {
	Summary *sess.Summary
	Badges  []badges.Award
	Err     error
}
