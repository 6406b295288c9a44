package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"github.com/sadopc/pulse/internal/store"
	"github.com/sadopc/pulse/internal/timefmt"
)

func ToCSV(activities []store.Activity, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	// Header
	if err := w.Write([]string{"ID", "Task", "Project", "Client", "Member", "Date", "Duration (s)", "Duration", "Billable", "Status"}); err != nil {
		return err
	}

	for _, a := range activities {
		dateStr := ""
		if !a.Date.IsZero() {
			dateStr = a.Date.Local().Format(time.RFC3339)
		}
		billable := "no"
		if a.Billable {
			billable = "yes"
		}

		row := []string{
			fmt.Sprintf("%d", a.ID),
			a.Task,
			a.Project,
			a.Client,
			a.Member,
			dateStr,
			fmt.Sprintf("%d", a.Seconds),
			timefmt.Colon(a.Seconds),
			billable,
			a.Status,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}
