package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/jaemin/readcoach/internal/router"
	"github.com/jaemin/readcoach/internal/screen"
	"github.com/jaemin/readcoach/internal/store"
	"github.com/jaemin/readcoach/internal/ui/layout"
	"github.com/jaemin/readcoach/internal/ui/theme"
)

type historyLoadedMsg struct {
	Sessions []*store.SessionRecord
	Err      error
}

type turnsLoadedMsg struct {
	SessionID string
	Turns     []*store.TurnRecord
	Err       error
}

// HistoryScreen displays past tutoring sessions and their turns.
type HistoryScreen struct {
	eventRepo store.EventRepo
	sessions  []*store.SessionRecord
	turns     map[string][]*store.TurnRecord // sessionID → turns
	selected  int
	expanded  map[int]bool
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		eventRepo: eventRepo,
		turns:     make(map[string][]*store.TurnRecord),
		expanded:  make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		all, err := s.eventRepo.ListSessions(ctx, store.QueryOpts{Limit: 200})
		if err != nil {
			return historyLoadedMsg{Err: err}
		}

		// Only finished sessions carry totals worth showing.
		var ended []*store.SessionRecord
		for _, rec := range all {
			if rec.Action == "end" {
				ended = append(ended, rec)
			}
		}
		if len(ended) > 50 {
			ended = ended[:50]
		}

		return historyLoadedMsg{Sessions: ended}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.sessions = msg.Sessions
		}
		s.loaded = true
		return s, nil

	case turnsLoadedMsg:
		if msg.Err == nil {
			s.turns[msg.SessionID] = msg.Turns
		}
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.sessions)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			if s.expanded[s.selected] && s.selected < len(s.sessions) {
				sessionID := s.sessions[s.selected].SessionID
				if _, ok := s.turns[sessionID]; !ok {
					return s, func() tea.Msg {
						turns, err := s.eventRepo.ListTurns(context.Background(), sessionID)
						return turnsLoadedMsg{SessionID: sessionID, Turns: turns, Err: err}
					}
				}
			}
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.sessions) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No sessions yet. Start reading!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, sess := range s.sessions {
		dateStr := sess.Timestamp.Format("Jan 02, 2006")
		mins := sess.DurationSecs / 60
		secs := sess.DurationSecs % 60
		durationStr := fmt.Sprintf("%d:%02d", mins, secs)

		doneStr := ""
		if sess.Completed {
			doneStr = "  ✓ goal reached"
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %s  %d turns%s",
			prefix, dateStr, durationStr, sess.TurnsTaken, doneStr)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			b.WriteString(s.renderSessionDetail(sess, width))
		}
	}

	return b.String()
}

// renderSessionDetail renders the expanded stage breakdown and turns.
func (s *HistoryScreen) renderSessionDetail(sess *store.SessionRecord, width int) string {
	var b strings.Builder

	if len(sess.StageCounts) > 0 {
		var parts []string
		for _, stage := range []string{"survey", "question", "read", "recite", "review"} {
			if n := sess.StageCounts[stage]; n > 0 {
				parts = append(parts, fmt.Sprintf("%s %d", stage, n))
			}
		}
		if len(parts) > 0 {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.Accent).
					Render("    stages: "+strings.Join(parts, "  "))))
			b.WriteString("\n")
		}
	}

	turns, ok := s.turns[sess.SessionID]
	if !ok {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
				Render("    Loading turns...")))
		b.WriteString("\n")
		return b.String()
	}
	if len(turns) == 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
				Render("    No turns this session")))
		b.WriteString("\n")
		return b.String()
	}

	for _, turn := range turns {
		text := turn.StudentText
		if len(text) > 60 {
			text = text[:57] + "..."
		}
		line := fmt.Sprintf("    [%s] %s", turn.RecommendedStage, text)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}
