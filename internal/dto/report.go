package dto

import (
	"github.com/fgillet-lagoon/hour-track/internal/report"
)

// ReportRowDTO is one aggregated bucket with display rounding applied.
type ReportRowDTO struct {
	Label   string  `json:"label"`
	Hours   float64 `json:"hours"`
	Percent float64 `json:"percent"`
}

// ReportResponse wraps aggregated rows with their grand total.
type ReportResponse struct {
	Rows  []ReportRowDTO `json:"rows"`
	Total float64        `json:"total"`
}

// DashboardResponse combines per-project totals with recent entries.
type DashboardResponse struct {
	ProjectTotals []ReportRowDTO `json:"project_totals"`
	RecentEntries []EntryDTO     `json:"recent_entries"`
}

// ToReportResponse rounds aggregated rows to one decimal for display.
func ToReportResponse(rows []report.Row) ReportResponse {
	dtos := make([]ReportRowDTO, len(rows))
	var total float64
	for i, row := range rows {
		dtos[i] = ReportRowDTO{
			Label:   row.Label,
			Hours:   report.Round1(row.Hours),
			Percent: report.Round1(row.Percent),
		}
		total += row.Hours
	}
	return ReportResponse{
		Rows:  dtos,
		Total: report.Round1(total),
	}
}
