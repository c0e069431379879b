package chat

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/jaemin/readcoach/internal/ui/theme"
)

func (c *ChatScreen) View(width, height int) string {
	if c.confirmQuit {
		return renderQuitConfirm(width)
	}
	if c.sess == nil && c.lastErr == "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Opening session...")
	}

	var b strings.Builder

	if c.showPassage {
		b.WriteString(c.renderPassage(width))
		b.WriteString("\n")
	}

	b.WriteString(c.renderTranscript(width))

	if c.lastErr != "" {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Error).
			Render("  ! " + c.lastErr + "  (press Enter to retry)"))
		b.WriteString("\n")
	}

	if c.sess != nil && c.sess.Completed() {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Success).
			Bold(true).
			Render("  ✓ Goal reached — well done! Keep chatting, or press Esc to finish."))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString("  " + c.input.View())

	return b.String()
}

// renderPassage renders the passage card with the tutor's opening question.
func (c *ChatScreen) renderPassage(width int) string {
	cardWidth := min(width-6, 76)
	if cardWidth < 20 {
		cardWidth = 20
	}

	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(c.problem.Title)

	body := lipgloss.NewStyle().
		Foreground(theme.Text).
		Render(c.problem.Passage)

	card := theme.Card.Width(cardWidth).Render(title + "\n\n" + body)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, card) + "\n"
}

// renderTranscript renders the conversation so far.
func (c *ChatScreen) renderTranscript(width int) string {
	var b strings.Builder

	tutorStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	studentStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	textStyle := lipgloss.NewStyle().Foreground(theme.Text)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true)

	wrap := lipgloss.NewStyle().Width(width - 12)

	// The tutor opens with the problem's question.
	b.WriteString("  " + tutorStyle.Render("Tutor: ") + textStyle.Render(c.problem.Question))
	b.WriteString("\n\n")

	if c.sess != nil {
		for _, turn := range c.sess.Turns() {
			b.WriteString("  " + studentStyle.Render("You:   ") + textStyle.Render(turn.StudentText))
			b.WriteString("\n")

			rec := turn.Record
			badge := theme.StageBadge.Render(fmt.Sprintf("[%s]", rec.RecommendedStage))
			b.WriteString("  " + tutorStyle.Render("Tutor: ") + badge + " " +
				textStyle.Render(wrap.Render(rec.NextQuestion)))
			b.WriteString("\n")
			if rec.StageReason != "" {
				b.WriteString("         " + dimStyle.Render(wrap.Render(rec.StageReason)))
				b.WriteString("\n")
			}
			b.WriteString("\n")
		}
	}

	if c.waiting {
		if c.pending != "" {
			b.WriteString("  " + studentStyle.Render("You:   ") + textStyle.Render(c.pending))
			b.WriteString("\n")
		}
		b.WriteString("  " + dimStyle.Render(fmt.Sprintf("%s Thinking...", spinnerGlyph(c.spinnerFrame))))
		b.WriteString("\n\n")
	}

	return b.String()
}

// renderQuitConfirm renders the end-session confirmation dialog.
func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Text).Bold(true).
		Render("End this session?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
		Render("The conversation is saved either way."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Success).
		Render("[Y] Yes, end session"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
