package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jaemin/readcoach/internal/chat"
	"github.com/jaemin/readcoach/internal/diagnosis"
	"github.com/jaemin/readcoach/internal/llm"
	"github.com/jaemin/readcoach/internal/problembank"
	"github.com/jaemin/readcoach/internal/problemgen"
	"github.com/jaemin/readcoach/internal/router"
	"github.com/jaemin/readcoach/internal/screen"
	"github.com/jaemin/readcoach/internal/screens/home"
	"github.com/jaemin/readcoach/internal/store"
	"github.com/jaemin/readcoach/internal/ui/layout"
)

// Options carries the dependencies the TUI needs.
type Options struct {
	Store    *store.Store
	Provider llm.Provider // nil when no API key is configured
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// diagnoserAdapter bridges the diagnosis service into the chat runner's
// narrower interface.
type diagnoserAdapter struct {
	d *diagnosis.Diagnoser
}

func (a diagnoserAdapter) Diagnose(ctx context.Context, tc diagnosis.TurnContext) (*diagnosis.DiagnosticRecord, error) {
	return a.d.Diagnose(ctx, &tc)
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	bank := problembank.NewService(opts.Store.ProblemRepo())
	events := opts.Store.EventRepo()

	var chatSvc *chat.Service
	var generator problemgen.Generator
	if opts.Provider != nil {
		diagnoser := diagnosis.NewDiagnoser(opts.Provider, diagnosis.DefaultDiagnoserConfig())
		runner := chat.NewTurnRunner(diagnoserAdapter{d: diagnoser})
		chatSvc = chat.NewService(runner, events)
		generator = problemgen.New(opts.Provider, problemgen.DefaultConfig())
	}

	homeScreen := home.New(bank, chatSvc, generator, events)
	return AppModel{
		router: router.New(homeScreen),
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			// Screens that confirm before leaving get Esc forwarded.
			if h, ok := m.router.Active().(screen.EscHandler); ok && h.HandlesEsc() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, "", m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}
	if footerHints == nil {
		if m.router.Depth() > 1 {
			footerHints = []layout.KeyHint{
				{Key: "Esc", Description: "Back"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		} else {
			footerHints = []layout.KeyHint{
				{Key: "↑↓", Description: "Navigate"},
				{Key: "Enter", Description: "Select"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
