package store

import (
	"fmt"
	"time"
)

func (s *Store) CreateClient(name, contact string) (*Client, error) {
	now := time.Now().UTC().Format(time.RFC3339)
	res, err := s.db.Exec(
		`INSERT INTO clients (name, contact, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		name, contact, now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("insert client: %w", err)
	}
	id, _ := res.LastInsertId()

	c, err := s.GetClient(id)
	if err != nil {
		return nil, err
	}
	s.notifier.broadcast()
	return c, nil
}

func (s *Store) GetClient(id int64) (*Client, error) {
	c := &Client{}
	var createdAt, updatedAt string
	var archived int
	err := s.db.QueryRow(
		`SELECT id, name, contact, archived, created_at, updated_at FROM clients WHERE id = ?`, id,
	).Scan(&c.ID, &c.Name, &c.Contact, &archived, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("get client %d: %w", id, err)
	}
	c.Archived = archived == 1
	c.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	c.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return c, nil
}

func (s *Store) ListClients(includeArchived bool) ([]Client, error) {
	query := `SELECT id, name, contact, archived, created_at, updated_at FROM clients`
	if !includeArchived {
		query += ` WHERE archived = 0`
	}
	query += ` ORDER BY name`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	var clients []Client
	for rows.Next() {
		var c Client
		var createdAt, updatedAt string
		var archived int
		if err := rows.Scan(&c.ID, &c.Name, &c.Contact, &archived, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		c.Archived = archived == 1
		c.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		c.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
		clients = append(clients, c)
	}
	return clients, rows.Err()
}

func (s *Store) UpdateClient(id int64, name, contact string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.Exec(
		`UPDATE clients SET name = ?, contact = ?, updated_at = ? WHERE id = ?`,
		name, contact, now, id,
	)
	if err != nil {
		return fmt.Errorf("update client %d: %w", id, err)
	}
	s.notifier.broadcast()
	return nil
}

func (s *Store) ArchiveClient(id int64) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.Exec(
		`UPDATE clients SET archived = 1, updated_at = ? WHERE id = ?`, now, id,
	)
	if err != nil {
		return fmt.Errorf("archive client %d: %w", id, err)
	}
	s.notifier.broadcast()
	return nil
}
