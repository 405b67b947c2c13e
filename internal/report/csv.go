package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/fgillet-lagoon/hour-track/internal/models"
)

// CSVHeader is the first row of every export.
var CSVHeader = []string{"user", "project", "period", "hours", "notes"}

// WriteCSV streams entries as CSV in input order, header first.
// Quoting follows RFC 4180, so commas, quotes and newlines inside
// usernames, project names or notes never corrupt the output. Entries
// are expected to carry their User and Project relations.
func WriteCSV(w io.Writer, entries []models.TimeEntry) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(CSVHeader); err != nil {
		return err
	}

	for i := range entries {
		e := &entries[i]
		record := []string{
			e.User.Username,
			e.Project.Name,
			e.PeriodString(),
			strconv.FormatFloat(e.Hours, 'f', -1, 64),
			e.Notes,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
