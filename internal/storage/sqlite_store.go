package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/ksolberg/habitkit/internal/models"
)

// SQLiteStore persists the state document in normalized tables. The
// dataset is a single user's habits, so saves rewrite the document in
// one transaction rather than tracking row-level changes.
type SQLiteStore struct {
	path  string
	db    *sql.DB
	state *models.State
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

const schema = `
CREATE TABLE IF NOT EXISTS groups (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	icon       TEXT NOT NULL DEFAULT '',
	color      TEXT NOT NULL DEFAULT '',
	sort_order INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS habits (
	id             TEXT PRIMARY KEY,
	name           TEXT NOT NULL,
	icon           TEXT NOT NULL DEFAULT '',
	color          TEXT NOT NULL DEFAULT '',
	group_id       TEXT NOT NULL,
	frequency      TEXT NOT NULL,
	current_streak INTEGER NOT NULL DEFAULT 0,
	longest_streak INTEGER NOT NULL DEFAULT 0,
	created_at     TEXT NOT NULL,
	sort_order     INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS habit_completions (
	habit_id TEXT NOT NULL,
	day      TEXT NOT NULL,
	PRIMARY KEY (habit_id, day)
);
CREATE TABLE IF NOT EXISTS rewards (
	id              TEXT PRIMARY KEY,
	title           TEXT NOT NULL,
	description     TEXT NOT NULL DEFAULT '',
	streak_required INTEGER NOT NULL,
	icon            TEXT NOT NULL DEFAULT '',
	is_custom       INTEGER NOT NULL DEFAULT 0,
	unlocked_at     TEXT
);
CREATE TABLE IF NOT EXISTS unlocked_rewards (
	reward_id TEXT PRIMARY KEY
);
CREATE TABLE IF NOT EXISTS settings (
	id               INTEGER PRIMARY KEY CHECK (id = 1),
	dark_mode        INTEGER NOT NULL,
	background_type  TEXT NOT NULL,
	background_color TEXT NOT NULL,
	gradient_colors  TEXT
);
`

func (s *SQLiteStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	// A populated settings row means a previous Init already seeded this file
	var count int
	if err := s.db.QueryRow("SELECT count(*) FROM settings").Scan(&count); err != nil {
		return fmt.Errorf("failed to inspect settings: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	if err := s.SaveState(models.DefaultState()); err != nil {
		return fmt.Errorf("failed to seed defaults: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db == nil {
		if _, err := os.Stat(s.path); os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'habitkit init' first")
		}
		db, err := sql.Open("sqlite", s.path)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		s.db = db
	}

	state, err := s.readState()
	if err != nil {
		return err
	}
	s.state = &state
	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) State() (models.State, error) {
	if s.state == nil {
		return models.State{}, fmt.Errorf("storage not loaded")
	}
	return *s.state, nil
}

func (s *SQLiteStore) SaveState(state models.State) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"groups", "habits", "habit_completions", "rewards", "unlocked_rewards", "settings"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	for _, g := range state.Groups {
		if _, err := tx.Exec(
			"INSERT INTO groups (id, name, icon, color, sort_order) VALUES (?, ?, ?, ?, ?)",
			g.ID, g.Name, g.Icon, g.Color, g.Order,
		); err != nil {
			return fmt.Errorf("failed to insert group: %w", err)
		}
	}

	for _, h := range state.Habits {
		freq, err := json.Marshal(h.Frequency)
		if err != nil {
			return fmt.Errorf("failed to serialize frequency: %w", err)
		}
		if _, err := tx.Exec(
			`INSERT INTO habits (id, name, icon, color, group_id, frequency, current_streak, longest_streak, created_at, sort_order)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			h.ID, h.Name, h.Icon, h.Color, h.GroupID, string(freq),
			h.CurrentStreak, h.LongestStreak, h.CreatedAt.Format(time.RFC3339), h.Order,
		); err != nil {
			return fmt.Errorf("failed to insert habit: %w", err)
		}
		for _, day := range h.CompletedDates {
			if _, err := tx.Exec(
				"INSERT INTO habit_completions (habit_id, day) VALUES (?, ?)",
				h.ID, day,
			); err != nil {
				return fmt.Errorf("failed to insert completion: %w", err)
			}
		}
	}

	for _, r := range state.Rewards {
		var unlockedAt sql.NullString
		if r.UnlockedAt != nil {
			unlockedAt = sql.NullString{String: r.UnlockedAt.Format(time.RFC3339), Valid: true}
		}
		if _, err := tx.Exec(
			`INSERT INTO rewards (id, title, description, streak_required, icon, is_custom, unlocked_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			r.ID, r.Title, r.Description, r.StreakRequired, r.Icon, r.IsCustom, unlockedAt,
		); err != nil {
			return fmt.Errorf("failed to insert reward: %w", err)
		}
	}

	for _, id := range state.UnlockedRewards {
		if _, err := tx.Exec("INSERT INTO unlocked_rewards (reward_id) VALUES (?)", id); err != nil {
			return fmt.Errorf("failed to insert unlocked reward: %w", err)
		}
	}

	var gradient sql.NullString
	if len(state.Settings.GradientColors) > 0 {
		data, err := json.Marshal(state.Settings.GradientColors)
		if err != nil {
			return fmt.Errorf("failed to serialize gradient colors: %w", err)
		}
		gradient = sql.NullString{String: string(data), Valid: true}
	}
	if _, err := tx.Exec(
		"INSERT INTO settings (id, dark_mode, background_type, background_color, gradient_colors) VALUES (1, ?, ?, ?, ?)",
		state.Settings.DarkMode, string(state.Settings.BackgroundType), state.Settings.BackgroundColor, gradient,
	); err != nil {
		return fmt.Errorf("failed to insert settings: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}

	s.state = &state
	return nil
}

func (s *SQLiteStore) Reset() error {
	return s.SaveState(models.DefaultState())
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

func (s *SQLiteStore) readState() (models.State, error) {
	state := models.State{
		Habits:          []models.Habit{},
		Groups:          []models.HabitGroup{},
		Rewards:         []models.Reward{},
		UnlockedRewards: []string{},
	}

	rows, err := s.db.Query("SELECT id, name, icon, color, sort_order FROM groups")
	if err != nil {
		return state, fmt.Errorf("failed to read groups: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var g models.HabitGroup
		if err := rows.Scan(&g.ID, &g.Name, &g.Icon, &g.Color, &g.Order); err != nil {
			return state, fmt.Errorf("failed to scan group: %w", err)
		}
		state.Groups = append(state.Groups, g)
	}
	if err := rows.Err(); err != nil {
		return state, err
	}

	completions, err := s.readCompletions()
	if err != nil {
		return state, err
	}

	habitRows, err := s.db.Query(
		"SELECT id, name, icon, color, group_id, frequency, current_streak, longest_streak, created_at, sort_order FROM habits")
	if err != nil {
		return state, fmt.Errorf("failed to read habits: %w", err)
	}
	defer habitRows.Close()
	for habitRows.Next() {
		var h models.Habit
		var freq, createdAt string
		if err := habitRows.Scan(&h.ID, &h.Name, &h.Icon, &h.Color, &h.GroupID, &freq,
			&h.CurrentStreak, &h.LongestStreak, &createdAt, &h.Order); err != nil {
			return state, fmt.Errorf("failed to scan habit: %w", err)
		}
		if err := json.Unmarshal([]byte(freq), &h.Frequency); err != nil {
			return state, fmt.Errorf("failed to parse frequency: %w", err)
		}
		h.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return state, fmt.Errorf("failed to parse created_at: %w", err)
		}
		h.CompletedDates = completions[h.ID]
		if h.CompletedDates == nil {
			h.CompletedDates = []string{}
		}
		state.Habits = append(state.Habits, h)
	}
	if err := habitRows.Err(); err != nil {
		return state, err
	}

	rewardRows, err := s.db.Query(
		"SELECT id, title, description, streak_required, icon, is_custom, unlocked_at FROM rewards")
	if err != nil {
		return state, fmt.Errorf("failed to read rewards: %w", err)
	}
	defer rewardRows.Close()
	for rewardRows.Next() {
		var r models.Reward
		var unlockedAt sql.NullString
		if err := rewardRows.Scan(&r.ID, &r.Title, &r.Description, &r.StreakRequired, &r.Icon, &r.IsCustom, &unlockedAt); err != nil {
			return state, fmt.Errorf("failed to scan reward: %w", err)
		}
		if unlockedAt.Valid {
			t, err := time.Parse(time.RFC3339, unlockedAt.String)
			if err != nil {
				return state, fmt.Errorf("failed to parse unlocked_at: %w", err)
			}
			r.UnlockedAt = &t
		}
		state.Rewards = append(state.Rewards, r)
	}
	if err := rewardRows.Err(); err != nil {
		return state, err
	}

	unlockedRows, err := s.db.Query("SELECT reward_id FROM unlocked_rewards")
	if err != nil {
		return state, fmt.Errorf("failed to read unlocked rewards: %w", err)
	}
	defer unlockedRows.Close()
	for unlockedRows.Next() {
		var id string
		if err := unlockedRows.Scan(&id); err != nil {
			return state, fmt.Errorf("failed to scan unlocked reward: %w", err)
		}
		state.UnlockedRewards = append(state.UnlockedRewards, id)
	}
	if err := unlockedRows.Err(); err != nil {
		return state, err
	}

	var bgType string
	var gradient sql.NullString
	err = s.db.QueryRow("SELECT dark_mode, background_type, background_color, gradient_colors FROM settings WHERE id = 1").
		Scan(&state.Settings.DarkMode, &bgType, &state.Settings.BackgroundColor, &gradient)
	if err != nil {
		return state, fmt.Errorf("failed to read settings: %w", err)
	}
	state.Settings.BackgroundType = models.BackgroundType(bgType)
	if gradient.Valid {
		if err := json.Unmarshal([]byte(gradient.String), &state.Settings.GradientColors); err != nil {
			return state, fmt.Errorf("failed to parse gradient colors: %w", err)
		}
	}

	return state, nil
}

func (s *SQLiteStore) readCompletions() (map[string][]string, error) {
	rows, err := s.db.Query("SELECT habit_id, day FROM habit_completions ORDER BY day")
	if err != nil {
		return nil, fmt.Errorf("failed to read completions: %w", err)
	}
	defer rows.Close()

	completions := make(map[string][]string)
	for rows.Next() {
		var habitID, day string
		if err := rows.Scan(&habitID, &day); err != nil {
			return nil, fmt.Errorf("failed to scan completion: %w", err)
		}
		completions[habitID] = append(completions[habitID], day)
	}
	return completions, rows.Err()
}
