package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/ksolberg/habitkit/internal/models"
	"github.com/ksolberg/habitkit/internal/tracker"
)

func newTempJSONStore(t *testing.T) *JSONStore {
	t.Helper()
	store := NewJSONStore(filepath.Join(t.TempDir(), "habitkit.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	if err := store.Load(); err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	return store
}

func TestJSONStoreInit(t *testing.T) {
	store := newTempJSONStore(t)

	state, err := store.State()
	if err != nil {
		t.Fatalf("State() error: %v", err)
	}
	if len(state.Groups) != 3 {
		t.Errorf("len(Groups) = %d, want 3", len(state.Groups))
	}
	if len(state.Rewards) != 5 {
		t.Errorf("len(Rewards) = %d, want 5", len(state.Rewards))
	}
	if !state.Settings.DarkMode {
		t.Error("default settings are not dark mode")
	}

	// Init on an already initialized store fails.
	if err := store.Init(); err == nil {
		t.Error("second Init() succeeded, want error")
	}
}

func TestJSONStoreLoadUninitialized(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "habitkit.json"))
	if err := store.Load(); err == nil {
		t.Error("Load() on missing file succeeded, want error")
	}
}

func TestJSONStoreRoundTripPreservesDerivedState(t *testing.T) {
	store := newTempJSONStore(t)
	state, err := store.State()
	if err != nil {
		t.Fatalf("State() error: %v", err)
	}

	tr := tracker.New(state)
	freq, err := models.Custom(time.Monday, time.Wednesday)
	if err != nil {
		t.Fatalf("Custom() error: %v", err)
	}
	h := tr.AddHabit("read", "book", "#4D94FF", "study", freq)
	today := time.Now().Format("2006-01-02")
	tr.ToggleHabitCompletion(h.ID, today)
	if err := store.SaveState(tr.State()); err != nil {
		t.Fatalf("SaveState() error: %v", err)
	}

	// A fresh store over the same file sees identical habit, streak
	// and unlock state.
	reopened := NewJSONStore(store.GetConfigPath())
	if err := reopened.Load(); err != nil {
		t.Fatalf("reopen Load() error: %v", err)
	}
	got, err := reopened.State()
	if err != nil {
		t.Fatalf("reopen State() error: %v", err)
	}

	if len(got.Habits) != 1 {
		t.Fatalf("len(Habits) = %d, want 1", len(got.Habits))
	}
	want := tr.State().Habits[0]
	have := got.Habits[0]
	if have.ID != want.ID || have.Name != want.Name {
		t.Errorf("habit = %+v, want %+v", have, want)
	}
	if have.CurrentStreak != want.CurrentStreak || have.LongestStreak != want.LongestStreak {
		t.Errorf("streaks = %d/%d, want %d/%d",
			have.CurrentStreak, have.LongestStreak, want.CurrentStreak, want.LongestStreak)
	}
	if have.Frequency.Type() != models.FrequencyCustom {
		t.Errorf("frequency type = %q, want custom", have.Frequency.Type())
	}
	if len(got.UnlockedRewards) != len(tr.State().UnlockedRewards) {
		t.Errorf("unlocked = %v, want %v", got.UnlockedRewards, tr.State().UnlockedRewards)
	}
}

func TestJSONStoreReset(t *testing.T) {
	store := newTempJSONStore(t)
	state, _ := store.State()

	tr := tracker.New(state)
	tr.AddHabit("temp", "star", "#fff", "morning", models.Daily())
	if err := store.SaveState(tr.State()); err != nil {
		t.Fatalf("SaveState() error: %v", err)
	}

	if err := store.Reset(); err != nil {
		t.Fatalf("Reset() error: %v", err)
	}
	got, err := store.State()
	if err != nil {
		t.Fatalf("State() error: %v", err)
	}
	if len(got.Habits) != 0 {
		t.Errorf("len(Habits) after reset = %d, want 0", len(got.Habits))
	}
	if len(got.Groups) != 3 {
		t.Errorf("len(Groups) after reset = %d, want 3", len(got.Groups))
	}
}

func TestJSONStoreStateBeforeLoad(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "habitkit.json"))
	if _, err := store.State(); err == nil {
		t.Error("State() before Load() succeeded, want error")
	}
}
