package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"hippo/internal/pet"
)

// StatsModel is a simple Bubble Tea model for displaying stats
type StatsModel struct {
	Pet pet.Pet
}

// Init implements tea.Model
func (m StatsModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m StatsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, tea.Quit
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress {
			return m, tea.Quit
		}
	}
	return m, nil
}

// View implements tea.Model
func (m StatsModel) View() string {
	var s strings.Builder
	s.WriteString(RenderStats(m.Pet))
	s.WriteString("\nPress ESC, click, or any key to close...")
	return s.String()
}

// RenderStats draws the stats card for p.
func RenderStats(p pet.Pet) string {
	score := pet.CareScore(p.Stats)
	row := func(label string, value float64) string {
		return fmt.Sprintf("║  %-12s [%s] %3.0f%%      ║\n", label+":", makeBar(value), value)
	}

	var s strings.Builder
	s.WriteString("╔════════════════════════════════════╗\n")
	s.WriteString(fmt.Sprintf("║  🦛 %-31s║\n", p.Name))
	s.WriteString("╠════════════════════════════════════╣\n")
	s.WriteString(fmt.Sprintf("║  Gender:  %-25s║\n", p.Gender))
	s.WriteString(fmt.Sprintf("║  Age:     %-25s║\n", p.Age))
	s.WriteString(fmt.Sprintf("║  Status:  %-24s║\n", pet.GetStatusWithLabel(p)))
	s.WriteString(fmt.Sprintf("║  Care:    %-24s║\n", fmt.Sprintf("%d %s", score, pet.GetTier(score).Label())))
	s.WriteString(fmt.Sprintf("║  Coins:   %-25d║\n", p.Coins))
	s.WriteString("║                                    ║\n")
	s.WriteString(row("Health", p.Stats.Health))
	s.WriteString(row("Satiety", p.Stats.Satiety))
	s.WriteString(row("Water", p.Stats.Thirst))
	s.WriteString(row("Happiness", p.Stats.Happiness))
	s.WriteString(row("Cleanliness", p.Stats.Cleanliness))
	s.WriteString(row("Energy", p.Stats.Energy))
	s.WriteString("║                                    ║\n")
	c := p.Counters
	s.WriteString(fmt.Sprintf("║  Fed %d • Cleaned %d • Played %d%s║\n", c.Feed, c.Clean, c.Play, pad(c.Feed, c.Clean, c.Play)))
	s.WriteString(fmt.Sprintf("║  Slept %d • Watered %d • Games %d%s║\n", c.Sleep, c.Water, c.Games, pad(c.Sleep, c.Water, c.Games)))
	s.WriteString("╚════════════════════════════════════╝\n")

	if tips := pet.Tips(p); len(tips) > 0 {
		s.WriteString("\nTips:\n")
		for _, tip := range tips {
			s.WriteString("  " + tip + "\n")
		}
	}
	return s.String()
}

// pad fills the counter lines to the card width.
func pad(a, b, c int) string {
	n := len(fmt.Sprint(a)) + len(fmt.Sprint(b)) + len(fmt.Sprint(c))
	if w := 9 - n; w > 0 {
		return strings.Repeat(" ", w)
	}
	return ""
}

// DisplayStats shows the stats display
func DisplayStats(p pet.Pet) error {
	program := tea.NewProgram(StatsModel{Pet: p}, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running stats display: %w", err)
	}
	return nil
}
