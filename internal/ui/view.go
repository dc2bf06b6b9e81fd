package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"hippo/internal/minigame"
	"hippo/internal/pet"
	"hippo/internal/shop"
)

var gameStyles = struct {
	title   lipgloss.Style
	status  lipgloss.Style
	menu    lipgloss.Style
	menuBox lipgloss.Style
	stats   lipgloss.Style
	errText lipgloss.Style
	dim     lipgloss.Style
}{
	title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#8E7CC3")).
		Padding(0, 1),

	status: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#8E7CC3")).
		Width(40),

	stats: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#8E7CC3")).
		Width(40),

	menu: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#8E7CC3")),

	menuBox: lipgloss.NewStyle().
		Padding(0, 2),

	errText: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF5F5F")),

	dim: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#777777")),
}

// View implements tea.Model
func (m Model) View() string {
	if m.Quitting {
		return "Thanks for playing!\n"
	}

	if m.Screen == ScreenOnboard {
		return m.renderOnboarding()
	}

	// Show animation if one is active
	if m.Animation.Type != AnimNone {
		return m.renderAnimation()
	}

	switch m.Screen {
	case ScreenShop:
		return m.renderShop()
	case ScreenDice:
		return m.renderDice()
	}

	sections := []string{
		m.renderTitle(),
		"",
		m.renderStats(),
		"",
		m.renderStatus(),
	}

	if msg := m.activeMessage(); msg != "" {
		sections = append(sections, "", gameStyles.status.Render(msg))
	}

	sections = append(sections,
		"",
		m.renderMenu(),
		"",
		gameStyles.status.Render("Use arrows to move • enter to select • q to quit"),
	)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) activeMessage() string {
	if m.Message != "" && m.clock.Now().Before(m.MessageExpires) {
		return m.Message
	}
	return ""
}

func (m Model) renderTitle() string {
	return gameStyles.title.Render("🦛 " + m.Pet.Name + " " + m.outfitIcons())
}

// outfitIcons lists the worn items head to toe.
func (m Model) outfitIcons() string {
	catalog := m.store.Catalog()
	var icons []string
	for _, cat := range shop.Categories {
		id, ok := m.Pet.Outfit[cat]
		if !ok {
			continue
		}
		if item, ok := catalog.Lookup(id); ok {
			icons = append(icons, item.Icon)
		}
	}
	return strings.Join(icons, "")
}

func (m Model) renderStats() string {
	s := m.Pet.Stats
	stats := []struct {
		name, value string
	}{
		{"Health", fmt.Sprintf("%s %3.0f%%", makeBar(s.Health), s.Health)},
		{"Satiety", fmt.Sprintf("%s %3.0f%%", makeBar(s.Satiety), s.Satiety)},
		{"Water", fmt.Sprintf("%s %3.0f%%", makeBar(s.Thirst), s.Thirst)},
		{"Happiness", fmt.Sprintf("%s %3.0f%%", makeBar(s.Happiness), s.Happiness)},
		{"Clean", fmt.Sprintf("%s %3.0f%%", makeBar(s.Cleanliness), s.Cleanliness)},
		{"Energy", fmt.Sprintf("%s %3.0f%%", makeBar(s.Energy), s.Energy)},
		{"Coins", fmt.Sprintf("🪙 %d", m.Pet.Coins)},
	}

	var lines []string
	for _, stat := range stats {
		lines = append(lines, fmt.Sprintf("%-10s %s", stat.name+":", stat.value))
	}

	return gameStyles.stats.Render(strings.Join(lines, "\n"))
}

func makeBar(value float64) string {
	filled := int(value) / 20
	var b strings.Builder
	for i := 0; i < 5; i++ {
		if i < filled {
			b.WriteString("█")
		} else {
			b.WriteString("░")
		}
	}
	return b.String()
}

func (m Model) renderStatus() string {
	score := pet.CareScore(m.Pet.Stats)
	return gameStyles.status.Render(fmt.Sprintf("Status: %s  Care: %d (%s)",
		pet.GetStatusWithLabel(m.Pet), score, pet.GetTier(score).Label()))
}

func (m Model) renderMenu() string {
	var menuItems []string

	for i, choice := range menuChoices {
		cursor := " "
		if m.Choice == i {
			cursor = ">"
		}
		line := fmt.Sprintf("%s %s", cursor, choice)
		if i == choicePlay && !pet.CanPerform(pet.ActionPlay, m.Pet.Stats) {
			line = gameStyles.dim.Render(line + " (too tired)")
		}
		menuItems = append(menuItems, line)
	}

	return gameStyles.menuBox.Render(strings.Join(menuItems, "\n"))
}

func (m Model) renderShop() string {
	header := gameStyles.title.Render(fmt.Sprintf("🛍️ Shop  🪙 %d", m.Pet.Coins))

	var rows []string
	for i, l := range m.shopListings() {
		cursor := " "
		if m.ShopChoice == i {
			cursor = ">"
		}
		state := fmt.Sprintf("%4d", l.Price)
		switch {
		case m.Pet.Outfit[l.Category] == l.ID:
			state = "worn"
		case l.Unlocked:
			state = "  ✓ "
		}
		row := fmt.Sprintf("%s %s %-15s %-6s %-6s %s", cursor, l.Icon, l.Name, l.Category, l.Rarity, state)
		if !l.Unlocked && l.Price > m.Pet.Coins {
			row = gameStyles.dim.Render(row)
		}
		rows = append(rows, row)
	}

	sections := []string{header, "", gameStyles.menuBox.Render(strings.Join(rows, "\n"))}
	if msg := m.activeMessage(); msg != "" {
		sections = append(sections, "", gameStyles.status.Render(msg))
	}
	sections = append(sections, "",
		gameStyles.status.Render("enter to buy or wear • esc to go back"))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderDice() string {
	def, _ := minigame.Lookup(minigame.Dice)
	sections := []string{
		gameStyles.title.Render(def.Icon + " " + def.Name),
		"",
		gameStyles.status.Render(fmt.Sprintf("Round %d of %d  Score: %d", m.Dice.Round+1, diceRounds, m.Dice.Score)),
	}
	if m.Dice.Last != "" {
		sections = append(sections, gameStyles.status.Render(m.Dice.Last))
	}
	sections = append(sections, "",
		gameStyles.status.Render("Guess the roll: press 1-6 • esc to stop"))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderOnboarding() string {
	o := m.Onboarding
	field := func(i int, label, value string) string {
		cursor := " "
		if o.Field == i {
			cursor = ">"
		}
		return fmt.Sprintf("%s %-7s %s", cursor, label, value)
	}
	name := o.Name
	if o.Field == 0 {
		name += "_"
	}
	rows := []string{
		field(0, "Name:", name),
		field(1, "Gender:", "◀ "+string(o.Gender)+" ▶"),
		field(2, "Age:", "◀ "+string(o.Age)+" ▶"),
	}

	sections := []string{
		gameStyles.title.Render("🦛 A new hippo is here!"),
		"",
		gameStyles.menuBox.Render(strings.Join(rows, "\n")),
	}
	if o.Err != "" {
		sections = append(sections, "", gameStyles.errText.Render(o.Err))
	}
	sections = append(sections, "",
		gameStyles.status.Render("tab to move • arrows to choose • enter to start"))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderAnimation() string {
	frame := GetAnimationFrame(m.Animation)

	animStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFD700")).
		Bold(true).
		Padding(1, 2)

	sections := []string{
		m.renderTitle(),
		"",
		animStyle.Render(frame),
	}

	if msg := m.activeMessage(); msg != "" {
		sections = append(sections, "", gameStyles.status.Render(msg))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
