package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sadopc/pulse/internal/store"
	"github.com/sadopc/pulse/internal/timefmt"
)

type jsonExport struct {
	ExportedAt string         `json:"exported_at"`
	Count      int            `json:"count"`
	Activities []jsonActivity `json:"activities"`
}

type jsonActivity struct {
	ID          int64  `json:"id"`
	Task        string `json:"task,omitempty"`
	Project     string `json:"project"`
	ProjectID   int64  `json:"project_id"`
	Client      string `json:"client,omitempty"`
	Member      string `json:"member,omitempty"`
	Date        string `json:"date,omitempty"`
	DurationSec int64  `json:"duration_seconds"`
	Duration    string `json:"duration"`
	Billable    bool   `json:"billable"`
	Status      string `json:"status"`
}

func ToJSON(activities []store.Activity, path string) error {
	out := jsonExport{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Count:      len(activities),
	}

	for _, a := range activities {
		dateStr := ""
		if !a.Date.IsZero() {
			dateStr = a.Date.Local().Format(time.RFC3339)
		}

		out.Activities = append(out.Activities, jsonActivity{
			ID:          a.ID,
			Task:        a.Task,
			Project:     a.Project,
			ProjectID:   a.ProjectID,
			Client:      a.Client,
			Member:      a.Member,
			Date:        dateStr,
			DurationSec: a.Seconds,
			Duration:    timefmt.Colon(a.Seconds),
			Billable:    a.Billable,
			Status:      a.Status,
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}
