package report

import (
	"testing"
	"time"

	"github.com/fgillet-lagoon/hour-track/internal/models"
	"github.com/stretchr/testify/require"
)

func monthEntry(username, project string, hours float64, month, year int) models.TimeEntry {
	return models.TimeEntry{
		UserID:  1,
		Hours:   hours,
		Month:   &month,
		Year:    &year,
		User:    models.User{ID: 1, Username: username},
		Project: models.Project{ID: 1, Name: project},
	}
}

func dateEntry(username, project string, hours float64, date time.Time) models.TimeEntry {
	return models.TimeEntry{
		UserID:  1,
		Hours:   hours,
		Date:    &date,
		User:    models.User{ID: 1, Username: username},
		Project: models.Project{ID: 1, Name: project},
	}
}

func TestByProject_OrderingAndPercentages(t *testing.T) {
	entries := []models.TimeEntry{
		monthEntry("htepa", "Alpha", 3, 1, 2025),
		monthEntry("htepa", "Beta", 1, 1, 2025),
	}

	rows := ByProject(entries)

	require.Len(t, rows, 2)
	require.Equal(t, "Alpha", rows[0].Label)
	require.Equal(t, 3.0, rows[0].Hours)
	require.Equal(t, 75.0, rows[0].Percent)
	require.Equal(t, "Beta", rows[1].Label)
	require.Equal(t, 1.0, rows[1].Hours)
	require.Equal(t, 25.0, rows[1].Percent)
}

func TestByProject_TiesBreakByNameAscending(t *testing.T) {
	entries := []models.TimeEntry{
		monthEntry("a", "Zulu", 2, 1, 2025),
		monthEntry("a", "Echo", 2, 1, 2025),
		monthEntry("a", "Mike", 5, 1, 2025),
	}

	rows := ByProject(entries)

	require.Equal(t, []string{"Mike", "Echo", "Zulu"},
		[]string{rows[0].Label, rows[1].Label, rows[2].Label})
}

func TestByProject_Empty(t *testing.T) {
	rows := ByProject(nil)
	require.Empty(t, rows)
}

func TestByUser_ZeroGrandTotalYieldsZeroPercent(t *testing.T) {
	entries := []models.TimeEntry{
		monthEntry("htepa", "Alpha", 0, 1, 2025),
	}

	rows := ByUser(entries)

	require.Len(t, rows, 1)
	require.Equal(t, 0.0, rows[0].Percent)
}

func TestGroupings_AgreeOnGrandTotal(t *testing.T) {
	entries := []models.TimeEntry{
		{UserID: 1, Hours: 2.5, User: models.User{ID: 1, Username: "ann"}, Project: models.Project{ID: 1, Name: "Alpha"}},
		{UserID: 2, Hours: 4.25, User: models.User{ID: 2, Username: "bob"}, Project: models.Project{ID: 1, Name: "Alpha"}},
		{UserID: 1, Hours: 1.75, User: models.User{ID: 1, Username: "ann"}, Project: models.Project{ID: 2, Name: "Beta"}},
	}

	grand := GrandTotal(entries)

	var byProject, byUser float64
	for _, row := range ByProject(entries) {
		byProject += row.Hours
	}
	for _, row := range ByUser(entries) {
		byUser += row.Hours
	}

	require.InDelta(t, grand, byProject, 1e-9)
	require.InDelta(t, grand, byUser, 1e-9)
}

func TestGroupings_PercentagesSumTo100(t *testing.T) {
	entries := []models.TimeEntry{
		monthEntry("a", "Alpha", 1.1, 1, 2025),
		monthEntry("a", "Beta", 2.2, 1, 2025),
		monthEntry("a", "Gamma", 3.3, 1, 2025),
	}

	var sum float64
	for _, row := range ByProject(entries) {
		sum += row.Percent
	}
	require.InDelta(t, 100.0, sum, 1e-9)
}

func TestByMonth_EmptyInputYieldsTwelveZeroBuckets(t *testing.T) {
	ref := time.Date(2025, time.June, 15, 10, 0, 0, 0, time.UTC)

	rows, skipped := ByMonth(nil, ref)

	require.Len(t, rows, 12)
	require.Zero(t, skipped)
	require.Equal(t, "2024-07", rows[0].Label)
	require.Equal(t, "2025-06", rows[11].Label)
	for _, row := range rows {
		require.Zero(t, row.Hours)
		require.Zero(t, row.Percent)
	}
}

func TestByMonth_BucketsDateAndMonthPeriods(t *testing.T) {
	ref := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)

	entries := []models.TimeEntry{
		monthEntry("a", "Alpha", 3, 1, 2025),
		dateEntry("a", "Alpha", 2, time.Date(2025, time.January, 28, 0, 0, 0, 0, time.UTC)),
		dateEntry("a", "Alpha", 5, time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)),
	}

	rows, skipped := ByMonth(entries, ref)

	require.Len(t, rows, 12)
	require.Zero(t, skipped)

	byLabel := make(map[string]Row, len(rows))
	for _, row := range rows {
		byLabel[row.Label] = row
	}
	require.Equal(t, 5.0, byLabel["2025-01"].Hours)
	require.Equal(t, 5.0, byLabel["2025-03"].Hours)
	require.Equal(t, 50.0, byLabel["2025-01"].Percent)
}

func TestByMonth_IgnoresEntriesOutsideWindow(t *testing.T) {
	ref := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	entries := []models.TimeEntry{
		monthEntry("a", "Alpha", 8, 6, 2023), // too old
		monthEntry("a", "Alpha", 4, 7, 2024), // oldest bucket
		monthEntry("a", "Alpha", 1, 7, 2025), // future
	}

	rows, skipped := ByMonth(entries, ref)

	require.Zero(t, skipped)
	require.Equal(t, 4.0, rows[0].Hours)
	require.Equal(t, 100.0, rows[0].Percent)
	for _, row := range rows[1:] {
		require.Zero(t, row.Hours)
	}
}

func TestByMonth_SkipsEntriesWithoutPeriod(t *testing.T) {
	ref := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	badMonth := 13
	badYear := 2025

	entries := []models.TimeEntry{
		monthEntry("a", "Alpha", 2, 6, 2025),
		{UserID: 1, Hours: 9}, // no period at all
		{UserID: 1, Hours: 9, Month: &badMonth, Year: &badYear},
	}

	rows, skipped := ByMonth(entries, ref)

	require.Equal(t, 2, skipped)
	require.Equal(t, 2.0, rows[11].Hours)
}

func TestRound1(t *testing.T) {
	require.Equal(t, 33.3, Round1(33.333333))
	require.Equal(t, 66.7, Round1(66.666666))
	require.Equal(t, 0.0, Round1(0))
}
