package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jaemin/readcoach/internal/chat"
	"github.com/jaemin/readcoach/internal/problembank"
	"github.com/jaemin/readcoach/internal/problemgen"
	"github.com/jaemin/readcoach/internal/router"
	"github.com/jaemin/readcoach/internal/screen"
	chatscreen "github.com/jaemin/readcoach/internal/screens/chat"
	"github.com/jaemin/readcoach/internal/screens/history"
	"github.com/jaemin/readcoach/internal/screens/placeholder"
	"github.com/jaemin/readcoach/internal/screens/problems"
	"github.com/jaemin/readcoach/internal/store"
	"github.com/jaemin/readcoach/internal/ui/components"
	"github.com/jaemin/readcoach/internal/ui/theme"
)

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	menu         components.Menu
	problemCount int
	sessionCount int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(bank *problembank.Service, chatSvc *chat.Service, generator problemgen.Generator, eventRepo store.EventRepo) *HomeScreen {
	ctx := context.Background()

	var problemCount int
	if bank != nil {
		problemCount, _ = bank.Count(ctx)
	}

	var sessionCount int
	if eventRepo != nil {
		if sessions, err := eventRepo.ListSessions(ctx, store.QueryOpts{}); err == nil {
			for _, rec := range sessions {
				if rec.Action == "end" {
					sessionCount++
				}
			}
		}
	}

	items := []components.MenuItem{
		{Label: "START SESSION", Action: func() tea.Cmd {
			if chatSvc == nil || generator == nil {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: placeholder.New("Start Session",
						"No LLM provider configured.\n\nSet ANTHROPIC_API_KEY (or OPENAI_API_KEY,\nGEMINI_API_KEY, OPENROUTER_API_KEY) and restart.")}
				}
			}
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: chatscreen.NewPicker(bank, chatSvc, generator),
				}
			}
		}},
		{Label: "PROBLEM BANK", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: problems.New(bank)}
			}
		}},
		{Label: "HISTORY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(eventRepo)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:         components.NewMenu(items),
		problemCount: problemCount,
		sessionCount: sessionCount,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	title := theme.Title.Width(width).Render("ReadCoach")
	subtitle := theme.Subtitle.Width(width).Render("Read. Question. Recite. Review.")
	sections = append(sections, title+"\n"+subtitle)

	stats := fmt.Sprintf("%d passages in the bank   %d sessions finished",
		h.problemCount, h.sessionCount)
	sections = append(sections, lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(stats))

	menu := lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View())
	sections = append(sections, menu)

	content := strings.Join(sections, "\n\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Left, lipgloss.Center).
		Render(content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
