package store

import (
	"database/sql"
	"fmt"
	"time"
)

func (s *Store) CreateGoal(name string, target int64, period string) (*Goal, error) {
	now := time.Now().UTC().Format(time.RFC3339)
	res, err := s.db.Exec(
		`INSERT INTO goals (name, target, period, created_at) VALUES (?, ?, ?, ?)`,
		name, target, period, now,
	)
	if err != nil {
		return nil, fmt.Errorf("insert goal: %w", err)
	}
	id, _ := res.LastInsertId()

	g, err := s.GetGoal(id)
	if err != nil {
		return nil, err
	}
	s.notifier.broadcast()
	return g, nil
}

func (s *Store) GetGoal(id int64) (*Goal, error) {
	row := s.db.QueryRow(
		`SELECT id, name, target, current, period, last_updated, created_at FROM goals WHERE id = ?`, id,
	)
	g, err := scanGoal(row)
	if err != nil {
		return nil, fmt.Errorf("get goal %d: %w", id, err)
	}
	return g, nil
}

func (s *Store) ListGoals() ([]Goal, error) {
	rows, err := s.db.Query(
		`SELECT id, name, target, current, period, last_updated, created_at FROM goals ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	defer rows.Close()

	var goals []Goal
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		goals = append(goals, *g)
	}
	return goals, rows.Err()
}

// UpdateGoal edits a goal's name, target and period. Current progress is
// deliberately left alone: changing the target or period never recomputes
// what has already been tracked.
func (s *Store) UpdateGoal(id int64, name string, target int64, period string) error {
	_, err := s.db.Exec(
		`UPDATE goals SET name = ?, target = ?, period = ? WHERE id = ?`,
		name, target, period, id,
	)
	if err != nil {
		return fmt.Errorf("update goal %d: %w", id, err)
	}
	s.notifier.broadcast()
	return nil
}

// SetGoalProgress writes the engine-computed progress back after an activity.
func (s *Store) SetGoalProgress(id int64, current int64, lastUpdated time.Time) error {
	_, err := s.db.Exec(
		`UPDATE goals SET current = ?, last_updated = ? WHERE id = ?`,
		current, lastUpdated.UTC().Format(time.RFC3339), id,
	)
	if err != nil {
		return fmt.Errorf("set goal progress %d: %w", id, err)
	}
	s.notifier.broadcast()
	return nil
}

// DeleteGoal removes a goal permanently. No cascade: activities are untouched.
func (s *Store) DeleteGoal(id int64) error {
	_, err := s.db.Exec(`DELETE FROM goals WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete goal %d: %w", id, err)
	}
	s.notifier.broadcast()
	return nil
}

// SeedDefaultGoals creates the two starter goals when the user has none.
func (s *Store) SeedDefaultGoals(dailyTarget, weeklyTarget int64) error {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM goals`).Scan(&count); err != nil {
		return fmt.Errorf("count goals: %w", err)
	}
	if count > 0 {
		return nil
	}
	if _, err := s.CreateGoal("Daily Target", dailyTarget, PeriodDaily); err != nil {
		return err
	}
	if _, err := s.CreateGoal("Weekly Target", weeklyTarget, PeriodWeekly); err != nil {
		return err
	}
	return nil
}

func scanGoal(row rowScanner) (*Goal, error) {
	g := &Goal{}
	var lastUpdated sql.NullString
	var createdAt string

	err := row.Scan(&g.ID, &g.Name, &g.Target, &g.Current, &g.Period, &lastUpdated, &createdAt)
	if err != nil {
		return nil, err
	}
	if lastUpdated.Valid {
		g.LastUpdated, _ = time.Parse(time.RFC3339, lastUpdated.String)
	}
	g.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return g, nil
}
