package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jaemin/readcoach/internal/chat"
	"github.com/jaemin/readcoach/internal/problembank"
	"github.com/jaemin/readcoach/internal/problemgen"
	"github.com/jaemin/readcoach/internal/router"
	"github.com/jaemin/readcoach/internal/screen"
	"github.com/jaemin/readcoach/internal/store"
	"github.com/jaemin/readcoach/internal/ui/layout"
	"github.com/jaemin/readcoach/internal/ui/theme"
)

// PickerScreen lets the student choose a problem from the bank (or
// generate a fresh one) before the tutoring session starts.
type PickerScreen struct {
	bank      *problembank.Service
	chatSvc   *chat.Service
	generator problemgen.Generator

	problems     []*store.Problem
	selected     int
	loaded       bool
	generating   bool
	spinnerFrame int
	errMsg       string
}

var _ screen.Screen = (*PickerScreen)(nil)
var _ screen.KeyHintProvider = (*PickerScreen)(nil)

// NewPicker creates the problem picker.
func NewPicker(bank *problembank.Service, chatSvc *chat.Service, generator problemgen.Generator) *PickerScreen {
	return &PickerScreen{
		bank:      bank,
		chatSvc:   chatSvc,
		generator: generator,
	}
}

func (p *PickerScreen) Init() tea.Cmd {
	return func() tea.Msg {
		problems, err := p.bank.List(context.Background())
		return problemsLoadedMsg{Problems: problems, Err: err}
	}
}

func (p *PickerScreen) Title() string {
	return "Pick a Passage"
}

func (p *PickerScreen) KeyHints() []layout.KeyHint {
	if p.generating {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Start"},
		{Key: "G", Description: "Generate new"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (p *PickerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case problemsLoadedMsg:
		if msg.Err != nil {
			p.errMsg = msg.Err.Error()
		} else {
			p.problems = msg.Problems
		}
		p.loaded = true
		return p, nil

	case problemGeneratedMsg:
		p.generating = false
		if msg.Err != nil {
			p.errMsg = fmt.Sprintf("generation failed: %s", msg.Err)
			return p, nil
		}
		return p, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: New(p.chatSvc, msg.Problem)}
		}

	case spinnerTickMsg:
		if !p.generating {
			return p, nil
		}
		p.spinnerFrame++
		return p, spinnerTick()

	case tea.KeyMsg:
		if p.generating {
			return p, nil
		}
		switch msg.String() {
		case "up", "k":
			if p.selected > 0 {
				p.selected--
			}
		case "down", "j":
			if p.selected < len(p.problems)-1 {
				p.selected++
			}
		case "enter":
			if p.selected >= 0 && p.selected < len(p.problems) {
				chosen := p.problems[p.selected]
				return p, func() tea.Msg {
					return router.ReplaceScreenMsg{Screen: New(p.chatSvc, chosen)}
				}
			}
		case "g", "G":
			p.generating = true
			p.errMsg = ""
			return p, tea.Batch(p.generateProblem(), spinnerTick())
		}
	}
	return p, nil
}

// generateProblem produces a fresh problem, saves it to the bank, and
// hands it back for immediate use.
func (p *PickerScreen) generateProblem() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		titles, err := p.bank.Titles(ctx)
		if err != nil {
			return problemGeneratedMsg{Err: err}
		}

		input := problemgen.GenerateInput{PriorTitles: titles}

		var gen *problemgen.Problem
		for attempt := 0; attempt < 3; attempt++ {
			gen, err = p.generator.Generate(ctx, input)
			if err == nil {
				break
			}
			var valErr *problemgen.ValidationError
			if errors.As(err, &valErr) && !valErr.Retryable {
				break
			}
		}
		if err != nil {
			return problemGeneratedMsg{Err: err}
		}

		prob := &store.Problem{
			Title:      gen.Title,
			Passage:    gen.Passage,
			Question:   gen.Question,
			GradeLevel: gen.GradeLevel,
			Source:     "generated",
		}
		if err := p.bank.Add(ctx, prob); err != nil {
			return problemGeneratedMsg{Err: err}
		}
		return problemGeneratedMsg{Problem: prob}
	}
}

func (p *PickerScreen) View(width, height int) string {
	if p.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", p.errMsg))
	}
	if !p.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading problems...")
	}
	if p.generating {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render(fmt.Sprintf("\n\n  %s Writing a new passage...", spinnerGlyph(p.spinnerFrame)))
	}
	if len(p.problems) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  The problem bank is empty.\n  Press G to generate a passage, or import one from the CLI.")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, prob := range p.problems {
		prefix := "  "
		if i == p.selected {
			prefix = "> "
		}

		grade := ""
		if prob.GradeLevel > 0 {
			grade = fmt.Sprintf("  grade %d", prob.GradeLevel)
		}
		line := fmt.Sprintf("%s%s%s  [%s]", prefix, prob.Title, grade, prob.Source)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == p.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}

var spinnerGlyphs = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

func spinnerGlyph(frame int) string {
	return spinnerGlyphs[frame%len(spinnerGlyphs)]
}

// spinnerTick returns a short animation tick command.
func spinnerTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}
