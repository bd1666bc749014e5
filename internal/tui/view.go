package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ksolberg/habitkit/internal/utils"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.err != nil && m.tracker == nil {
		return errStyle.Render(fmt.Sprintf("Error: %v", m.err))
	}

	header := titleStyle.Render("habitkit · " + utils.Today().String())

	p := m.tracker.TodayProgress()
	footer := progressStyle.Render(fmt.Sprintf("Completed today: %d/%d", p.Completed, p.Total))

	var banner string
	if len(m.unlocked) > 0 {
		banner = unlockStyle.Render("🏆 Unlocked: " + strings.Join(m.unlocked, ", "))
	}
	if m.err != nil {
		banner = errStyle.Render(fmt.Sprintf("Save failed: %v", m.err))
	}

	return docStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		m.list.View(),
		footer,
		banner,
	))
}
