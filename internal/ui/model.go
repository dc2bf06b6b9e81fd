package ui

import (
	"fmt"
	"log"
	"math/rand"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"hippo/internal/clock"
	"hippo/internal/minigame"
	"hippo/internal/pet"
	"hippo/internal/shop"
	"hippo/internal/store"
)

// Screen selects what the model renders and how it handles keys.
type Screen int

const (
	ScreenCare Screen = iota
	ScreenShop
	ScreenDice
	ScreenOnboard
)

// Main menu entries
var menuChoices = []string{"Feed", "Clean", "Play", "Sleep", "Water", "Shop", "Dice Guess", "Quit"}

const (
	choiceFeed = iota
	choiceClean
	choicePlay
	choiceSleep
	choiceWater
	choiceShop
	choiceDice
	choiceQuit
)

const messageDuration = 3 * time.Second

// Onboarding holds the form shown before a hippo exists.
type Onboarding struct {
	Name   string
	Gender pet.Gender
	Age    pet.Age
	Field  int // 0 name, 1 gender, 2 age
	Err    string
}

// DiceRound is an in-progress dice guess game.
type DiceRound struct {
	Round int
	Score int
	Last  string
}

const (
	diceRounds     = 3
	diceExactScore = 40
	diceCloseScore = 10
)

// Model represents the game state
type Model struct {
	Pet            pet.Pet
	Screen         Screen
	Choice         int
	ShopChoice     int
	Quitting       bool
	Message        string
	MessageExpires time.Time
	Animation      Animation
	Onboarding     Onboarding
	Dice           DiceRound

	store   *store.Store
	clock   clock.Clock
	updates <-chan pet.Pet
	cancel  func()
	roll    func() int
}

type tickMsg time.Time
type animTickMsg struct {
	started time.Time
}
type petMsg pet.Pet

// NewModel creates a model driven by s. The model follows the store's
// snapshots, so decay applied in the background shows up on screen.
func NewModel(s *store.Store, c clock.Clock) Model {
	if c == nil {
		c = clock.RealClock{}
	}
	updates, cancel := s.Subscribe()
	p := s.Snapshot()
	m := Model{
		Pet:     p,
		store:   s,
		clock:   c,
		updates: updates,
		cancel:  cancel,
		roll:    func() int { return rand.Intn(6) + 1 },
	}
	if !p.Onboarded() {
		m.Screen = ScreenOnboard
		m.Onboarding = newOnboarding()
	}
	return m
}

func newOnboarding() Onboarding {
	return Onboarding{Gender: pet.GenderMale, Age: pet.AgeChild}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(tick(), waitForUpdate(m.updates))
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func animTick(start time.Time) tea.Cmd {
	return tea.Tick(AnimationFrameDuration, func(t time.Time) tea.Msg {
		return animTickMsg{started: start}
	})
}

func waitForUpdate(ch <-chan pet.Pet) tea.Cmd {
	return func() tea.Msg {
		p, ok := <-ch
		if !ok {
			return nil
		}
		return petMsg(p)
	}
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m.quit()
		}
		// While an animation is playing, ignore inputs except quit keys
		if m.Animation.Type != AnimNone {
			if msg.String() == "q" {
				return m.quit()
			}
			return m, nil
		}
		switch m.Screen {
		case ScreenOnboard:
			return m.updateOnboarding(msg)
		case ScreenShop:
			return m.updateShop(msg)
		case ScreenDice:
			return m.updateDice(msg)
		default:
			return m.updateCare(msg)
		}

	case petMsg:
		m.Pet = pet.Pet(msg)
		if !m.Pet.Onboarded() && m.Screen != ScreenOnboard {
			m.Screen = ScreenOnboard
			m.Onboarding = newOnboarding()
		}
		return m, waitForUpdate(m.updates)

	case tickMsg:
		if m.Message != "" && !m.clock.Now().Before(m.MessageExpires) {
			m.Message = ""
		}
		return m, tick()

	case animTickMsg:
		// Drop ticks that belong to an older animation (e.g., if a new action started)
		if m.Animation.Type == AnimNone || !m.Animation.StartTime.Equal(msg.started) {
			return m, nil
		}

		m.Animation.Frame++
		if IsAnimationComplete(m.Animation) {
			m.Animation = Animation{}
			return m, nil
		}

		return m, animTick(m.Animation.StartTime)
	}

	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.Quitting = true
	if m.cancel != nil {
		m.cancel()
	}
	return m, tea.Quit
}

func (m Model) updateCare(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m.quit()
	case "up", "k":
		if m.Choice > 0 {
			m.Choice--
		}
	case "down", "j":
		if m.Choice < len(menuChoices)-1 {
			m.Choice++
		}
	case "enter", " ":
		switch m.Choice {
		case choiceFeed:
			return m.perform(pet.ActionFeed)
		case choiceClean:
			return m.perform(pet.ActionClean)
		case choicePlay:
			return m.perform(pet.ActionPlay)
		case choiceSleep:
			return m.perform(pet.ActionSleep)
		case choiceWater:
			return m.perform(pet.ActionWater)
		case choiceShop:
			m.Screen = ScreenShop
			m.ShopChoice = 0
		case choiceDice:
			if !m.store.CanStartGame(minigame.Dice) {
				m.setMessage("😴 Too tired to play...")
				return m, nil
			}
			m.Screen = ScreenDice
			m.Dice = DiceRound{}
		case choiceQuit:
			return m.quit()
		}
	}
	return m, nil
}

// Action feedback
var actionMessages = map[pet.Action]string{
	pet.ActionFeed:  "🍖 Yum!",
	pet.ActionClean: "🛁 Squeaky clean!",
	pet.ActionPlay:  "🎾 Wheee!",
	pet.ActionSleep: "😴 Zzz...",
	pet.ActionWater: "💧 Gulp gulp!",
}

var actionAnimations = map[pet.Action]AnimationType{
	pet.ActionFeed:  AnimFeed,
	pet.ActionClean: AnimClean,
	pet.ActionPlay:  AnimPlay,
	pet.ActionSleep: AnimSleep,
	pet.ActionWater: AnimWater,
}

func (m Model) perform(a pet.Action) (tea.Model, tea.Cmd) {
	if !m.store.Perform(a) {
		if a == pet.ActionPlay {
			m.setMessage("😴 Too tired to play...")
		} else {
			m.setMessage("Not now...")
		}
		return m, nil
	}
	m.Pet = m.store.Snapshot()
	m.setMessage(actionMessages[a])
	m.startAnimation(actionAnimations[a])
	return m, animTick(m.Animation.StartTime)
}

func (m Model) shopListings() []shop.Listing {
	return shop.FilterForAge(m.store.AvailableItems(), m.Pet.Age)
}

func (m Model) updateShop(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	listings := m.shopListings()
	switch msg.String() {
	case "q":
		return m.quit()
	case "esc", "b":
		m.Screen = ScreenCare
	case "up", "k":
		if m.ShopChoice > 0 {
			m.ShopChoice--
		}
	case "down", "j":
		if m.ShopChoice < len(listings)-1 {
			m.ShopChoice++
		}
	case "enter", " ":
		if m.ShopChoice >= len(listings) {
			return m, nil
		}
		item := listings[m.ShopChoice]
		switch {
		case !item.Unlocked:
			if m.store.BuyItem(item.ID) {
				m.setMessage("🛍️ Bought " + item.Name + "!")
				m.startAnimation(AnimBuy)
				m.Pet = m.store.Snapshot()
				return m, animTick(m.Animation.StartTime)
			}
			m.setMessage("💰 Not enough coins")
		case m.Pet.Outfit[item.Category] == item.ID:
			m.store.UnequipItem(item.Category)
			m.setMessage("Took off " + item.Name)
		default:
			m.store.EquipItem(item.ID)
			m.setMessage("Wearing " + item.Name)
		}
		m.Pet = m.store.Snapshot()
	}
	return m, nil
}

func (m Model) updateDice(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "q":
		m.finishDice(false)
		return m.quit()
	case "esc":
		m.finishDice(false)
		m.Screen = ScreenCare
	case "1", "2", "3", "4", "5", "6":
		guess := int(key[0] - '0')
		rolled := m.roll()
		switch diff := guess - rolled; {
		case diff == 0:
			m.Dice.Score += diceExactScore
			m.Dice.Last = "🎯 Rolled " + key + "! Exact hit"
		case diff == 1 || diff == -1:
			m.Dice.Score += diceCloseScore
			m.Dice.Last = "🎲 Rolled " + strconv.Itoa(rolled) + ". So close"
		default:
			m.Dice.Last = "🎲 Rolled " + strconv.Itoa(rolled) + ". Miss"
		}
		m.Dice.Round++
		if m.Dice.Round >= diceRounds {
			m.finishDice(true)
			m.Screen = ScreenCare
			m.startAnimation(AnimGame)
			return m, animTick(m.Animation.StartTime)
		}
	}
	return m, nil
}

// finishDice reports the round to the store. Whether an early exit is
// rewarded depends on the store's reward policy.
func (m *Model) finishDice(finished bool) {
	res := minigame.Result{Score: m.Dice.Score, Finished: finished}
	if m.store.CompleteGame(minigame.Dice, res) {
		def, _ := minigame.Lookup(minigame.Dice)
		m.setMessage(fmt.Sprintf("🎲 Score %d, +%d coins", res.Score, def.RewardFor(res.Score).Coins))
	} else if finished {
		m.setMessage("🎲 No luck this time")
	}
	log.Printf("Dice guess ended with score %d (finished: %t)", res.Score, finished)
	m.Pet = m.store.Snapshot()
	m.Dice = DiceRound{}
}

func (m Model) updateOnboarding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	o := &m.Onboarding
	switch msg.Type {
	case tea.KeyEsc:
		return m.quit()
	case tea.KeyUp, tea.KeyShiftTab:
		if o.Field > 0 {
			o.Field--
		}
		return m, nil
	case tea.KeyDown, tea.KeyTab:
		if o.Field < 2 {
			o.Field++
		}
		return m, nil
	case tea.KeyEnter:
		if err := m.store.CompleteOnboarding(o.Name, o.Gender, o.Age); err != nil {
			o.Err = err.Error()
			return m, nil
		}
		m.Pet = m.store.Snapshot()
		m.Screen = ScreenCare
		m.Choice = 0
		m.setMessage("🦛 Welcome, " + m.Pet.Name + "!")
		return m, nil
	}

	switch o.Field {
	case 0:
		switch msg.Type {
		case tea.KeyBackspace:
			if r := []rune(o.Name); len(r) > 0 {
				o.Name = string(r[:len(r)-1])
			}
		case tea.KeySpace:
			if len([]rune(o.Name)) < pet.MaxNameLength {
				o.Name += " "
			}
		case tea.KeyRunes:
			if len([]rune(o.Name))+len(msg.Runes) <= pet.MaxNameLength {
				o.Name += string(msg.Runes)
			}
		}
		o.Err = ""
	case 1:
		if isToggle(msg) {
			if o.Gender == pet.GenderMale {
				o.Gender = pet.GenderFemale
			} else {
				o.Gender = pet.GenderMale
			}
		}
	case 2:
		if isToggle(msg) {
			if o.Age == pet.AgeChild {
				o.Age = pet.AgeParent
			} else {
				o.Age = pet.AgeChild
			}
		}
	}
	return m, nil
}

func isToggle(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "left", "right", "h", "l", " ":
		return true
	}
	return false
}

func (m *Model) setMessage(msg string) {
	m.Message = msg
	m.MessageExpires = m.clock.Now().Add(messageDuration)
}

func (m *Model) startAnimation(animType AnimationType) {
	m.Animation = Animation{
		Type:      animType,
		Frame:     0,
		StartTime: m.clock.Now(),
	}
}
