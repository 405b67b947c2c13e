// Package report turns raw time entries into grouped statistics for
// dashboards, charts and CSV export. All functions are pure: they never
// touch storage and hold no state between calls.
package report

import (
	"math"
	"sort"
	"time"

	"github.com/fgillet-lagoon/hour-track/internal/constants"
	"github.com/fgillet-lagoon/hour-track/internal/models"
)

// Row is one aggregated bucket: a label, its total hours, and its share
// of the grand total. Percent is unrounded; rendering rounds for display.
type Row struct {
	Label   string  `json:"label"`
	Hours   float64 `json:"hours"`
	Percent float64 `json:"percent"`
}

// ByProject sums hours per project. Rows are ordered by descending
// total, ties broken by project name ascending. An empty input yields
// an empty result.
func ByProject(entries []models.TimeEntry) []Row {
	return byLabel(entries, func(e *models.TimeEntry) string {
		return e.Project.Name
	})
}

// ByUser sums hours per user, with the same ordering and percentage
// rules as ByProject. Intended for admin-scoped entry sets.
func ByUser(entries []models.TimeEntry) []Row {
	return byLabel(entries, func(e *models.TimeEntry) string {
		return e.User.Username
	})
}

func byLabel(entries []models.TimeEntry, labelOf func(*models.TimeEntry) string) []Row {
	totals := make(map[string]float64)
	for i := range entries {
		totals[labelOf(&entries[i])] += entries[i].Hours
	}

	rows := make([]Row, 0, len(totals))
	var grand float64
	for label, hours := range totals {
		rows = append(rows, Row{Label: label, Hours: hours})
		grand += hours
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Hours != rows[j].Hours {
			return rows[i].Hours > rows[j].Hours
		}
		return rows[i].Label < rows[j].Label
	})

	applyPercentages(rows, grand)
	return rows
}

// ByMonth buckets entries into the twelve calendar months ending at the
// reference time's month, oldest first. Months without entries are kept
// at zero so chart axes stay contiguous. Entries whose period cannot be
// resolved are skipped; the count of skipped entries is returned for
// the caller to log.
func ByMonth(entries []models.TimeEntry, ref time.Time) ([]Row, int) {
	end := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
	start := end.AddDate(0, -(constants.ReportMonths - 1), 0)

	totals := make(map[time.Time]float64, constants.ReportMonths)
	skipped := 0
	for i := range entries {
		month, ok := entries[i].PeriodMonth()
		if !ok {
			skipped++
			continue
		}
		if month.Before(start) || month.After(end) {
			continue
		}
		totals[month] += entries[i].Hours
	}

	var grand float64
	for _, hours := range totals {
		grand += hours
	}

	rows := make([]Row, 0, constants.ReportMonths)
	for month := start; !month.After(end); month = month.AddDate(0, 1, 0) {
		rows = append(rows, Row{
			Label: month.Format("2006-01"),
			Hours: totals[month],
		})
	}

	applyPercentages(rows, grand)
	return rows, skipped
}

// GrandTotal sums hours across all entries in the set.
func GrandTotal(entries []models.TimeEntry) float64 {
	var total float64
	for i := range entries {
		total += entries[i].Hours
	}
	return total
}

// applyPercentages fills Percent on each row. A zero grand total maps
// every row to 0% rather than dividing by zero.
func applyPercentages(rows []Row, grand float64) {
	if grand == 0 {
		return
	}
	for i := range rows {
		rows[i].Percent = rows[i].Hours / grand * 100
	}
}

// Round1 rounds a value to one decimal place for display.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
