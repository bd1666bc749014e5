package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/ksolberg/habitkit/internal/models"
	"github.com/ksolberg/habitkit/internal/tracker"
)

func newTempSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "habitkit.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	if err := store.Load(); err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStoreInitSeedsDefaults(t *testing.T) {
	store := newTempSQLiteStore(t)

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

	// Init on an already initialized store fails and keeps the data.
	tr := tracker.New(state)
	tr.AddHabit("keepme", "star", "#fff", "morning", models.Daily())
	if err := store.SaveState(tr.State()); err != nil {
		t.Fatalf("SaveState() error: %v", err)
	}
	if err := store.Init(); err == nil {
		t.Error("second Init() succeeded, want error")
	}
	if err := store.Load(); err != nil {
		t.Fatalf("reload error: %v", err)
	}
	got, _ := store.State()
	if len(got.Habits) != 1 {
		t.Errorf("len(Habits) after refused re-init = %d, want 1", len(got.Habits))
	}
}

func TestSQLiteStoreLoadUninitialized(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "habitkit.db"))
	if err := store.Load(); err == nil {
		t.Error("Load() on missing file succeeded, want error")
	}
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	store := newTempSQLiteStore(t)
	state, _ := store.State()

	tr := tracker.New(state)
	freq, err := models.Custom(time.Tuesday, time.Thursday)
	if err != nil {
		t.Fatalf("Custom() error: %v", err)
	}
	h := tr.AddHabit("stretch", "sunny", "#FBBF24", "morning", freq)
	today := time.Now().Format("2006-01-02")
	tr.ToggleHabitCompletion(h.ID, today)
	tr.ToggleDarkMode()
	tr.SetBackground(models.BackgroundGradient, "#000000", []string{"#111111", "#222222"})
	if err := store.SaveState(tr.State()); err != nil {
		t.Fatalf("SaveState() error: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	reopened := NewSQLiteStore(store.GetConfigPath())
	if err := reopened.Load(); err != nil {
		t.Fatalf("reopen Load() error: %v", err)
	}
	defer reopened.Close()
	got, err := reopened.State()
	if err != nil {
		t.Fatalf("reopen State() error: %v", err)
	}

	if len(got.Habits) != 1 {
		t.Fatalf("len(Habits) = %d, want 1", len(got.Habits))
	}
	have := got.Habits[0]
	want := tr.State().Habits[0]
	if have.ID != want.ID || have.Name != want.Name || have.GroupID != want.GroupID {
		t.Errorf("habit = %+v, want %+v", have, want)
	}
	if have.Frequency.Type() != models.FrequencyCustom {
		t.Errorf("frequency type = %q, want custom", have.Frequency.Type())
	}
	if len(have.CompletedDates) != 1 || have.CompletedDates[0] != today {
		t.Errorf("CompletedDates = %v, want [%s]", have.CompletedDates, today)
	}
	if have.CurrentStreak != want.CurrentStreak || have.LongestStreak != want.LongestStreak {
		t.Errorf("streaks = %d/%d, want %d/%d",
			have.CurrentStreak, have.LongestStreak, want.CurrentStreak, want.LongestStreak)
	}
	if got.Settings.DarkMode {
		t.Error("DarkMode = true, want false after toggle")
	}
	if got.Settings.BackgroundType != models.BackgroundGradient {
		t.Errorf("BackgroundType = %q, want gradient", got.Settings.BackgroundType)
	}
	if len(got.Settings.GradientColors) != 2 {
		t.Errorf("GradientColors = %v, want two stops", got.Settings.GradientColors)
	}
	if len(got.UnlockedRewards) != len(tr.State().UnlockedRewards) {
		t.Errorf("unlocked = %v, want %v", got.UnlockedRewards, tr.State().UnlockedRewards)
	}
}

func TestSQLiteStoreReset(t *testing.T) {
	store := newTempSQLiteStore(t)
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
