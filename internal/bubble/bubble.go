// Package bubble is the Bubble Pop mini-game: bubbles rise from the bottom
// of the terminal and the hippo pops the ones it can reach.
package bubble

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"hippo/internal/minigame"
	"hippo/internal/pet"
)

const (
	tickInterval   = 70 * time.Millisecond
	minVisibleRows = 6

	riseEvery  = 4  // Frames per row a bubble rises
	spawnEvery = 10 // Frames between new bubbles

	// PointsPerPop is the score for each popped bubble.
	PointsPerPop = 10
	// DefaultDuration is how long a round lasts.
	DefaultDuration = 30 * time.Second

	bubbleEmoji = "🫧"
)

// hippoEmoji picks the hippo's face from its state and how close a bubble is.
func hippoEmoji(p pet.Pet, near bool) string {
	if near {
		return "🤩"
	}
	if p.Stats.Energy < pet.SleepyThreshold {
		return "😴"
	}
	return "🦛"
}

// Bubble is a rising bubble on the grid.
type Bubble struct {
	X, Y int
}

// Model is the Bubble Tea model for one round.
type Model struct {
	Pet        pet.Pet
	TermWidth  int
	TermHeight int
	PosX       int
	PosY       int
	Bubbles    []Bubble
	Frame      int
	FramesLeft int
	Score      int
	Popped     int
	Finished   bool // the round ran out of time
	Aborted    bool // the player quit early

	intn func(n int) int
}

type animTickMsg time.Time

// New prepares a round for p lasting d.
func New(p pet.Pet, d time.Duration) Model {
	if d <= 0 {
		d = DefaultDuration
	}
	return Model{
		Pet:        p,
		FramesLeft: int(d / tickInterval),
		intn:       rand.Intn,
	}
}

// Result is what the round reports to the store.
func (m Model) Result() minigame.Result {
	return minigame.Result{Score: m.Score, Finished: m.Finished}
}

// Run plays one round on the terminal and returns its result.
func Run(p pet.Pet) (minigame.Result, error) {
	program := tea.NewProgram(New(p, DefaultDuration), tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return minigame.Result{}, fmt.Errorf("bubble pop failed: %w", err)
	}
	return final.(Model).Result(), nil
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return animTickMsg(t)
	})
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tick(),
		tea.EnterAltScreen,
	)
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.Aborted = true
			return m, tea.Quit
		case "left", "h":
			m.PosX--
		case "right", "l":
			m.PosX++
		case "up", "k":
			m.PosY--
		case "down", "j":
			m.PosY++
		case " ", "enter":
			m.pop()
		}
		m.clampPositions()
		return m, nil

	case tea.WindowSizeMsg:
		m.TermWidth = msg.Width
		m.TermHeight = msg.Height
		if m.PosY == 0 {
			m.PosY = m.visibleRows() - 1
		}
		m.clampPositions()
		return m, nil

	case animTickMsg:
		if m.TermWidth == 0 || m.TermHeight == 0 {
			return m, tick()
		}

		m.Frame++
		m.FramesLeft--
		if m.FramesLeft <= 0 {
			m.Finished = true
			return m, tea.Quit
		}

		if m.Frame%riseEvery == 0 {
			kept := make([]Bubble, 0, len(m.Bubbles))
			for _, b := range m.Bubbles {
				b.Y--
				if b.Y >= 0 {
					kept = append(kept, b)
				}
			}
			m.Bubbles = kept
		}

		if m.Frame%spawnEvery == 0 {
			m.Bubbles = append(m.Bubbles, Bubble{
				X: m.intn(m.maxX() + 1),
				Y: m.visibleRows() - 1,
			})
		}

		return m, tick()
	}

	return m, nil
}

// reachable reports whether b is close enough to pop.
func (m Model) reachable(b Bubble) bool {
	return absInt(b.X-m.PosX) <= 2 && absInt(b.Y-m.PosY) <= 1
}

// pop bursts every reachable bubble.
func (m *Model) pop() {
	kept := make([]Bubble, 0, len(m.Bubbles))
	for _, b := range m.Bubbles {
		if m.reachable(b) {
			m.Popped++
			m.Score += PointsPerPop
			continue
		}
		kept = append(kept, b)
	}
	m.Bubbles = kept
}

// View implements tea.Model
func (m Model) View() string {
	if m.TermWidth == 0 || m.TermHeight == 0 {
		return "Initializing..."
	}

	rows := m.visibleRows()

	near := false
	for _, b := range m.Bubbles {
		if m.reachable(b) {
			near = true
			break
		}
	}

	// Build 2D grid for the playfield
	grid := make([][]rune, rows)
	for y := 0; y < rows; y++ {
		grid[y] = make([]rune, m.TermWidth)
		for x := 0; x < m.TermWidth; x++ {
			grid[y][x] = ' '
		}
	}

	place := func(x, y int, s string) {
		if y < 0 || y >= rows || x < 0 || x >= m.TermWidth-2 {
			return
		}
		for i, r := range []rune(s) {
			if x+i < m.TermWidth {
				grid[y][x+i] = r
			}
		}
	}
	for _, b := range m.Bubbles {
		place(b.X, b.Y, bubbleEmoji)
	}
	place(m.PosX, m.PosY, hippoEmoji(m.Pet, near))

	var result strings.Builder
	seconds := (time.Duration(m.FramesLeft) * tickInterval).Seconds()
	result.WriteString(fmt.Sprintf("🫧 Score: %d  Time: %.0fs\n", m.Score, seconds))
	for y := 0; y < rows; y++ {
		result.WriteString(string(grid[y]))
		result.WriteRune('\n')
	}

	result.WriteString("Arrows to move • space to pop • q to stop")

	return result.String()
}

func (m *Model) clampPositions() {
	rows := m.visibleRows()
	if rows < 1 {
		return
	}

	if m.PosX < 0 {
		m.PosX = 0
	}
	if m.PosX >= m.maxX() {
		m.PosX = m.maxX()
	}
	if m.PosY < 0 {
		m.PosY = 0
	}
	if m.PosY >= rows {
		m.PosY = rows - 1
	}

	for i := range m.Bubbles {
		if m.Bubbles[i].X > m.maxX() {
			m.Bubbles[i].X = m.maxX()
		}
		if m.Bubbles[i].Y >= rows {
			m.Bubbles[i].Y = rows - 1
		}
	}
}

func (m Model) visibleRows() int {
	if m.TermHeight <= 0 {
		return 0
	}
	rows := m.TermHeight - 2 // header and instruction lines
	if rows < minVisibleRows {
		rows = minVisibleRows
	}
	return rows
}

func (m Model) maxX() int {
	if m.TermWidth <= 2 {
		return 0
	}
	return m.TermWidth - 2
}
