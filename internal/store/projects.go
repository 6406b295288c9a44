package store

import (
	"database/sql"
	"fmt"
	"time"
)

func (s *Store) CreateProject(name, color string, clientID *int64) (*Project, error) {
	now := time.Now().UTC().Format(time.RFC3339)
	res, err := s.db.Exec(
		`INSERT INTO projects (name, color, client_id, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		name, color, clientID, now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("insert project: %w", err)
	}
	id, _ := res.LastInsertId()

	p, err := s.GetProject(id)
	if err != nil {
		return nil, err
	}
	s.notifier.broadcast()
	return p, nil
}

func (s *Store) GetProject(id int64) (*Project, error) {
	row := s.db.QueryRow(
		`SELECT p.id, p.client_id, p.name, COALESCE(c.name, ''), p.color, p.archived, p.created_at, p.updated_at
		 FROM projects p LEFT JOIN clients c ON c.id = p.client_id
		 WHERE p.id = ?`, id,
	)
	p, err := scanProject(row)
	if err != nil {
		return nil, fmt.Errorf("get project %d: %w", id, err)
	}
	return p, nil
}

func (s *Store) ListProjects(includeArchived bool) ([]Project, error) {
	query := `SELECT p.id, p.client_id, p.name, COALESCE(c.name, ''), p.color, p.archived, p.created_at, p.updated_at
	          FROM projects p LEFT JOIN clients c ON c.id = p.client_id`
	if !includeArchived {
		query += ` WHERE p.archived = 0`
	}
	query += ` ORDER BY p.name`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var projects []Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, *p)
	}
	return projects, rows.Err()
}

func (s *Store) UpdateProject(id int64, name, color string, clientID *int64) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.Exec(
		`UPDATE projects SET name = ?, color = ?, client_id = ?, updated_at = ? WHERE id = ?`,
		name, color, clientID, now, id,
	)
	if err != nil {
		return fmt.Errorf("update project %d: %w", id, err)
	}
	s.notifier.broadcast()
	return nil
}

func (s *Store) ArchiveProject(id int64) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.Exec(
		`UPDATE projects SET archived = 1, updated_at = ? WHERE id = ?`, now, id,
	)
	if err != nil {
		return fmt.Errorf("archive project %d: %w", id, err)
	}
	s.notifier.broadcast()
	return nil
}

func scanProject(row rowScanner) (*Project, error) {
	p := &Project{}
	var clientID sql.NullInt64
	var createdAt, updatedAt string
	var archived int

	err := row.Scan(&p.ID, &clientID, &p.Name, &p.Client, &p.Color, &archived, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	if clientID.Valid {
		p.ClientID = &clientID.Int64
	}
	p.Archived = archived == 1
	p.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	p.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return p, nil
}
