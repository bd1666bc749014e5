package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ksolberg/habitkit/internal/models"
	"github.com/ksolberg/habitkit/internal/storage"
	"github.com/ksolberg/habitkit/internal/tracker"
	"github.com/ksolberg/habitkit/internal/utils"
)

type Item struct {
	Habit models.Habit
	Group string
	Due   bool
	Done  bool
}

func (i Item) Title() string {
	switch {
	case i.Done:
		return "✓ " + i.Habit.Name
	case i.Due:
		return "○ " + i.Habit.Name
	default:
		return "· " + i.Habit.Name
	}
}

func (i Item) Description() string {
	status := "not due today"
	if i.Done {
		status = "completed today"
	} else if i.Due {
		status = "due today"
	}
	return fmt.Sprintf("%s · %s · streak %d (best %d)",
		i.Group, status, i.Habit.CurrentStreak, i.Habit.LongestStreak)
}

func (i Item) FilterValue() string { return i.Habit.Name }

type KeyMap struct {
	Toggle key.Binding
	Quit   key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "toggle"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

type Model struct {
	store    storage.Provider
	tracker  *tracker.Tracker
	list     list.Model
	keys     KeyMap
	unlocked []string
	err      error
	quitting bool
	width    int
	height   int
}

func NewModel(store storage.Provider) Model {
	keys := DefaultKeyMap()

	m := Model{store: store, keys: keys}
	state, err := store.State()
	if err != nil {
		m.err = err
		m.list = list.New(nil, list.NewDefaultDelegate(), 0, 0)
		return m
	}
	m.tracker = tracker.New(state)

	l := list.New(m.buildItems(), list.NewDefaultDelegate(), 0, 0)
	l.Title = "Habits"
	l.SetShowTitle(false)
	l.SetShowHelp(true)
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Toggle}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Toggle}
	}
	m.list = l
	return m
}

func (m Model) buildItems() []list.Item {
	today := utils.Today().String()
	var items []list.Item
	for _, g := range m.tracker.Groups() {
		for _, h := range m.tracker.HabitsInGroup(g.ID) {
			items = append(items, Item{
				Habit: h,
				Group: g.Name,
				Due:   m.tracker.IsHabitDueOnDate(h, today),
				Done:  h.CompletedOn(today),
			})
		}
	}
	return items
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		frameW, frameH := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-frameW, msg.Height-frameH-4)
		return m, nil

	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Toggle):
			if i, ok := m.list.SelectedItem().(Item); ok && m.tracker != nil {
				m.toggle(i.Habit.ID)
				idx := m.list.Index()
				m.list.SetItems(m.buildItems())
				m.list.Select(idx)
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *Model) toggle(id string) {
	today := utils.Today().String()
	newlyUnlocked := m.tracker.ToggleHabitCompletion(id, today)

	m.unlocked = m.unlocked[:0]
	for _, rid := range newlyUnlocked {
		if r, ok := m.tracker.Reward(rid); ok {
			m.unlocked = append(m.unlocked, r.Title)
		}
	}

	if err := m.store.SaveState(m.tracker.State()); err != nil {
		m.err = err
	}
}
