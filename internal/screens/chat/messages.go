package chat

import (
	"time"

	"github.com/jaemin/readcoach/internal/chat"
	"github.com/jaemin/readcoach/internal/store"
)

// problemsLoadedMsg is sent when the problem bank listing finishes.
type problemsLoadedMsg struct {
	Problems []*store.Problem
	Err      error
}

// problemGeneratedMsg is sent when on-demand problem generation finishes.
type problemGeneratedMsg struct {
	Problem *store.Problem
	Err     error
}

// sessionStartedMsg is sent when the tutoring session has been opened.
type sessionStartedMsg struct {
	Sess *chat.Session
	Err  error
}

// turnDoneMsg is sent when a diagnosis turn completes or fails.
type turnDoneMsg struct {
	Turn *chat.Turn
	Err  error
}

// spinnerTickMsg is sent at short intervals to animate the thinking spinner.
type spinnerTickMsg time.Time
