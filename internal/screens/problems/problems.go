package problems

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jaemin/readcoach/internal/problembank"
	"github.com/jaemin/readcoach/internal/router"
	"github.com/jaemin/readcoach/internal/screen"
	"github.com/jaemin/readcoach/internal/store"
	"github.com/jaemin/readcoach/internal/ui/layout"
	"github.com/jaemin/readcoach/internal/ui/theme"
)

type problemsLoadedMsg struct {
	Problems []*store.Problem
	Err      error
}

type problemDeletedMsg struct {
	Err error
}

// ProblemsScreen browses the problem bank.
type ProblemsScreen struct {
	bank *problembank.Service

	problems      []*store.Problem
	selected      int
	expanded      map[int]bool
	confirmDelete bool
	loaded        bool
	errMsg        string
}

var _ screen.Screen = (*ProblemsScreen)(nil)
var _ screen.KeyHintProvider = (*ProblemsScreen)(nil)

// New creates the problem bank browser.
func New(bank *problembank.Service) *ProblemsScreen {
	return &ProblemsScreen{
		bank:     bank,
		expanded: make(map[int]bool),
	}
}

func (s *ProblemsScreen) Init() tea.Cmd {
	return s.load()
}

func (s *ProblemsScreen) load() tea.Cmd {
	return func() tea.Msg {
		problems, err := s.bank.List(context.Background())
		return problemsLoadedMsg{Problems: problems, Err: err}
	}
}

func (s *ProblemsScreen) Title() string {
	return "Problem Bank"
}

func (s *ProblemsScreen) KeyHints() []layout.KeyHint {
	if s.confirmDelete {
		return []layout.KeyHint{
			{Key: "Y", Description: "Delete"},
			{Key: "N", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Expand"},
		{Key: "D", Description: "Delete"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ProblemsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case problemsLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.problems = msg.Problems
			if s.selected >= len(s.problems) {
				s.selected = len(s.problems) - 1
			}
			if s.selected < 0 {
				s.selected = 0
			}
		}
		s.loaded = true
		return s, nil

	case problemDeletedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.expanded = make(map[int]bool)
		return s, s.load()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *ProblemsScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.confirmDelete {
		switch key {
		case "y", "Y":
			s.confirmDelete = false
			if s.selected >= 0 && s.selected < len(s.problems) {
				id := s.problems[s.selected].ID
				return s, func() tea.Msg {
					err := s.bank.Delete(context.Background(), id)
					return problemDeletedMsg{Err: err}
				}
			}
		case "n", "N", "esc":
			s.confirmDelete = false
		}
		return s, nil
	}

	switch key {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(s.problems)-1 {
			s.selected++
		}
	case "enter":
		s.expanded[s.selected] = !s.expanded[s.selected]
	case "d", "D":
		if len(s.problems) > 0 {
			s.confirmDelete = true
		}
	}
	return s, nil
}

func (s *ProblemsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading problems...")
	}
	if len(s.problems) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  The bank is empty. Add problems with `readcoach problem add` or `import`.")
	}

	var b strings.Builder
	b.WriteString("\n")

	if s.confirmDelete && s.selected >= 0 && s.selected < len(s.problems) {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).Bold(true).
			Render(fmt.Sprintf("Delete \"%s\"? [Y/N]", s.problems[s.selected].Title)))
		b.WriteString("\n\n")
	}

	for i, prob := range s.problems {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		grade := ""
		if prob.GradeLevel > 0 {
			grade = fmt.Sprintf("  grade %d", prob.GradeLevel)
		}
		line := fmt.Sprintf("%s%s%s  [%s]  %s",
			prefix, prob.Title, grade, prob.Source, prob.CreatedAt.Format("Jan 02"))

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString("  " + style.Render(line))
		b.WriteString("\n")

		if s.expanded[i] {
			cardWidth := min(width-10, 72)
			if cardWidth < 20 {
				cardWidth = 20
			}
			detail := lipgloss.NewStyle().Foreground(theme.Text).Render(prob.Passage) +
				"\n\n" +
				lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("Q: ") +
				lipgloss.NewStyle().Foreground(theme.Text).Render(prob.Question)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				theme.Card.Width(cardWidth).Render(detail)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
