package store

import "time"

// Goal periods.
const (
	PeriodDaily   = "daily"
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
)

// Activity statuses for team reports.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
)

type Client struct {
	ID        int64
	Name      string
	Contact   string
	Archived  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Project struct {
	ID        int64
	ClientID  *int64
	Name      string
	Client    string // denormalized client name, "" when unassigned
	Color     string
	Archived  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Activity is one completed, timed unit of tracked work. Activities are
// append-only: never edited in place. A zero Date means the record carries no
// usable timestamp and is excluded from every time bucket.
type Activity struct {
	ID        int64
	Task      string
	ProjectID int64
	Project   string // denormalized project name
	Client    string // denormalized client name
	Member    string // display name of whoever tracked it
	Seconds   int64
	Billable  bool
	Status    string
	Date      time.Time
	CreatedAt time.Time
}

// Goal is a recurring time target. Current accumulates within the active
// period and resets when the period rolls over; it may exceed Target.
type Goal struct {
	ID          int64
	Name        string
	Target      int64 // seconds, > 0
	Current     int64 // seconds, >= 0
	Period      string
	LastUpdated time.Time // zero when the goal has never been advanced
	CreatedAt   time.Time
}

type Setting struct {
	Key   string
	Value string
}

// ActivityFilter is used to filter activities in queries.
type ActivityFilter struct {
	ProjectID *int64
	Client    string
	From      *time.Time
	To        *time.Time
	Limit     int
}
