package chat

import (
	"context"
	"errors"

	tea "charm.land/bubbletea/v2"

	"github.com/jaemin/readcoach/internal/chat"
	"github.com/jaemin/readcoach/internal/router"
	"github.com/jaemin/readcoach/internal/screen"
	"github.com/jaemin/readcoach/internal/store"
	"github.com/jaemin/readcoach/internal/ui/components"
	"github.com/jaemin/readcoach/internal/ui/layout"
)

// ChatScreen is the live tutoring conversation over one problem.
type ChatScreen struct {
	svc     *chat.Service
	problem *store.Problem
	sess    *chat.Session

	input        components.TextInput
	waiting      bool
	pending      string
	spinnerFrame int
	showPassage  bool
	confirmQuit  bool
	lastErr      string
}

var _ screen.Screen = (*ChatScreen)(nil)
var _ screen.KeyHintProvider = (*ChatScreen)(nil)
var _ screen.EscHandler = (*ChatScreen)(nil)

// New creates a chat screen for the given problem.
func New(svc *chat.Service, problem *store.Problem) *ChatScreen {
	return &ChatScreen{
		svc:         svc,
		problem:     problem,
		input:       components.NewTextInput("Type your answer...", 500),
		showPassage: true,
	}
}

func (c *ChatScreen) Init() tea.Cmd {
	return tea.Batch(
		func() tea.Msg {
			sess, err := c.svc.Start(context.Background(), c.problem)
			return sessionStartedMsg{Sess: sess, Err: err}
		},
		c.input.Init(),
	)
}

func (c *ChatScreen) Title() string {
	return c.problem.Title
}

// HandlesEsc tells the app not to pop this screen on Esc; we confirm
// before ending a live session.
func (c *ChatScreen) HandlesEsc() bool {
	return true
}

func (c *ChatScreen) KeyHints() []layout.KeyHint {
	if c.confirmQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "Ctrl+P", Description: "Passage"},
		{Key: "Ctrl+R", Description: "Start over"},
		{Key: "Esc", Description: "End"},
	}
	return hints
}

func (c *ChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionStartedMsg:
		if msg.Err != nil {
			c.lastErr = msg.Err.Error()
			return c, nil
		}
		c.sess = msg.Sess
		return c, nil

	case turnDoneMsg:
		if msg.Err != nil {
			// A superseded turn was cancelled in favor of a newer one;
			// the newer turn's result is still on its way.
			if errors.Is(msg.Err, context.Canceled) {
				return c, nil
			}
			c.waiting = false
			c.pending = ""
			c.lastErr = msg.Err.Error()
			return c, nil
		}
		c.waiting = false
		c.pending = ""
		c.lastErr = ""
		return c, nil

	case spinnerTickMsg:
		if !c.waiting {
			return c, nil
		}
		c.spinnerFrame++
		return c, spinnerTick()

	case tea.KeyMsg:
		return c.handleKey(msg)
	}

	if !c.confirmQuit {
		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		return c, cmd
	}
	return c, nil
}

func (c *ChatScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if c.confirmQuit {
		switch key {
		case "y", "Y":
			c.confirmQuit = false
			return c, c.endSession()
		case "n", "N", "esc":
			c.confirmQuit = false
			return c, nil
		}
		return c, nil
	}

	switch key {
	case "esc":
		c.confirmQuit = true
		return c, nil
	case "enter":
		return c.submit()
	case "ctrl+p":
		c.showPassage = !c.showPassage
		return c, nil
	case "ctrl+r":
		if c.sess != nil && c.sess.Len() > 0 {
			_ = c.svc.Clear(context.Background(), c.sess)
			c.waiting = false
			c.pending = ""
			c.lastErr = ""
			c.input.Reset()
		}
		return c, nil
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

// submit sends the typed answer off for diagnosis. Submitting while a
// turn is still in flight replaces it; the older turn is cancelled.
func (c *ChatScreen) submit() (screen.Screen, tea.Cmd) {
	if c.sess == nil || c.input.Empty() {
		return c, nil
	}

	text := c.input.Value()
	c.input.Reset()
	c.pending = text
	c.lastErr = ""

	wasWaiting := c.waiting
	c.waiting = true

	sess := c.sess
	runCmd := func() tea.Msg {
		turn, err := c.svc.RunTurn(context.Background(), sess, text)
		return turnDoneMsg{Turn: turn, Err: err}
	}

	if wasWaiting {
		// Spinner loop is already running.
		return c, runCmd
	}
	return c, tea.Batch(runCmd, spinnerTick())
}

// endSession records the end event and leaves the screen.
func (c *ChatScreen) endSession() tea.Cmd {
	sess := c.sess
	svc := c.svc
	return func() tea.Msg {
		if sess != nil {
			_ = svc.End(context.Background(), sess)
		}
		return router.PopScreenMsg{}
	}
}
