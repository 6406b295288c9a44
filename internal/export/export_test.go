package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sadopc/pulse/internal/store"
)

func sampleData() []store.Activity {
	date := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	return []store.Activity{
		{
			ID:        1,
			Task:      "feature work",
			ProjectID: 1,
			Project:   "Alpha",
			Client:    "Acme",
			Member:    "Ada",
			Seconds:   3600,
			Billable:  true,
			Status:    store.StatusApproved,
			Date:      date,
		},
		{
			ID:        2,
			ProjectID: 2,
			Project:   "Beta",
			Seconds:   1800,
			Status:    store.StatusPending,
			Date:      date.Add(time.Hour),
		},
		{
			ID:        3,
			ProjectID: 1,
			Project:   "Alpha",
			Seconds:   600,
			Status:    store.StatusPending,
			// no date
		},
	}
}

// ============================================================
// CSV
// ============================================================

func TestToCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	if err := ToCSV(sampleData(), path); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 4 {
		t.Fatalf("expected header + 3 rows, got %d", len(records))
	}

	header := records[0]
	if header[0] != "ID" || header[2] != "Project" || header[8] != "Billable" {
		t.Fatalf("unexpected header: %v", header)
	}

	first := records[1]
	if first[1] != "feature work" || first[3] != "Acme" || first[4] != "Ada" {
		t.Fatalf("unexpected first row: %v", first)
	}
	if first[6] != "3600" || first[7] != "01:00:00" {
		t.Fatalf("unexpected durations: %v", first)
	}
	if first[8] != "yes" || first[9] != "approved" {
		t.Fatalf("unexpected flags: %v", first)
	}

	// Undated activity exports an empty date cell.
	if records[3][5] != "" {
		t.Fatalf("expected empty date for undated activity, got %q", records[3][5])
	}
}

func TestToCSVEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	if err := ToCSV(nil, path); err != nil {
		t.Fatal(err)
	}

	f, _ := os.Open(path)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 {
		t.Fatalf("expected header only, got %d rows", len(records))
	}
}

func TestToCSVBadPath(t *testing.T) {
	if err := ToCSV(sampleData(), "/no/such/dir/out.csv"); err == nil {
		t.Fatal("expected error for unwritable path")
	}
}

// ============================================================
// JSON
// ============================================================

func TestToJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	if err := ToJSON(sampleData(), path); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var out jsonExport
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	if out.Count != 3 || len(out.Activities) != 3 {
		t.Fatalf("expected 3 activities, got count=%d len=%d", out.Count, len(out.Activities))
	}
	if out.ExportedAt == "" {
		t.Fatal("expected exported_at timestamp")
	}

	first := out.Activities[0]
	if first.Project != "Alpha" || first.Client != "Acme" || !first.Billable {
		t.Fatalf("unexpected first activity: %+v", first)
	}
	if first.DurationSec != 3600 || first.Duration != "01:00:00" {
		t.Fatalf("unexpected durations: %+v", first)
	}

	if out.Activities[2].Date != "" {
		t.Fatalf("expected empty date for undated activity, got %q", out.Activities[2].Date)
	}
}

func TestToJSONBadPath(t *testing.T) {
	if err := ToJSON(sampleData(), "/no/such/dir/out.json"); err == nil {
		t.Fatal("expected error for unwritable path")
	}
}
