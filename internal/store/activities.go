package store

import (
	"database/sql"
	"fmt"
	"time"
)

// AddActivity appends a completed activity. Activities are write-once; there
// is no update path. Negative durations are normalized to 0 and a missing
// status defaults to pending.
func (s *Store) AddActivity(a Activity) (*Activity, error) {
	if a.Seconds < 0 {
		a.Seconds = 0
	}
	if a.Status == "" {
		a.Status = StatusPending
	}

	var date any
	if !a.Date.IsZero() {
		date = a.Date.UTC().Format(time.RFC3339)
	}
	now := time.Now().UTC().Format(time.RFC3339)

	res, err := s.db.Exec(
		`INSERT INTO activities (task, project_id, project, client, member, seconds, billable, status, date, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.Task, a.ProjectID, a.Project, a.Client, a.Member, a.Seconds, boolToInt(a.Billable), a.Status, date, now,
	)
	if err != nil {
		return nil, fmt.Errorf("add activity: %w", err)
	}
	id, _ := res.LastInsertId()

	saved, err := s.GetActivity(id)
	if err != nil {
		return nil, err
	}
	s.notifier.broadcast()
	return saved, nil
}

func (s *Store) GetActivity(id int64) (*Activity, error) {
	row := s.db.QueryRow(
		`SELECT id, task, project_id, project, client, member, seconds, billable, status, date, created_at
		 FROM activities WHERE id = ?`, id,
	)
	a, err := scanActivity(row)
	if err != nil {
		return nil, fmt.Errorf("get activity %d: %w", id, err)
	}
	return a, nil
}

// ApproveActivity marks an activity approved for team reports. The tracked
// record itself (task, project, duration, date) stays immutable.
func (s *Store) ApproveActivity(id int64) error {
	_, err := s.db.Exec(`UPDATE activities SET status = ? WHERE id = ?`, StatusApproved, id)
	if err != nil {
		return fmt.Errorf("approve activity %d: %w", id, err)
	}
	s.notifier.broadcast()
	return nil
}

// ListActivities returns activities most recent first. Records without a date
// sort last.
func (s *Store) ListActivities(f ActivityFilter) ([]Activity, error) {
	query := `SELECT id, task, project_id, project, client, member, seconds, billable, status, date, created_at
	          FROM activities WHERE 1=1`
	var args []any

	if f.ProjectID != nil {
		query += ` AND project_id = ?`
		args = append(args, *f.ProjectID)
	}
	if f.Client != "" {
		query += ` AND client = ?`
		args = append(args, f.Client)
	}
	if f.From != nil {
		query += ` AND date >= ?`
		args = append(args, f.From.UTC().Format(time.RFC3339))
	}
	if f.To != nil {
		query += ` AND date < ?`
		args = append(args, f.To.UTC().Format(time.RFC3339))
	}
	query += ` ORDER BY date IS NULL, date DESC, id DESC`
	if f.Limit > 0 {
		query += fmt.Sprintf(` LIMIT %d`, f.Limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer rows.Close()

	var activities []Activity
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		activities = append(activities, *a)
	}
	return activities, rows.Err()
}

// TotalTracked returns the unconditional sum of all dated activity seconds.
func (s *Store) TotalTracked() (int64, error) {
	var total sql.NullInt64
	err := s.db.QueryRow(
		`SELECT COALESCE(SUM(seconds), 0) FROM activities WHERE date IS NOT NULL`,
	).Scan(&total)
	if err != nil {
		return 0, err
	}
	return total.Int64, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanActivity normalizes a raw row into the strict Activity shape: NULL or
// unparseable dates become the zero time, never an error.
func scanActivity(row rowScanner) (*Activity, error) {
	a := &Activity{}
	var date sql.NullString
	var createdAt string
	var billable int

	err := row.Scan(&a.ID, &a.Task, &a.ProjectID, &a.Project, &a.Client, &a.Member,
		&a.Seconds, &billable, &a.Status, &date, &createdAt)
	if err != nil {
		return nil, err
	}
	a.Billable = billable == 1
	if date.Valid {
		a.Date, _ = time.Parse(time.RFC3339, date.String)
	}
	a.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return a, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
