package report

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildSeries_UsesConfiguredColors(t *testing.T) {
	rows := []Row{
		{Label: "Alpha", Hours: 3, Percent: 75},
		{Label: "Beta", Hours: 1, Percent: 25},
	}
	colors := map[string]string{
		"Alpha": "#DC2626",
		"Beta":  "#16A34A",
	}

	series := BuildSeries(rows, func(label string) string {
		return colors[label]
	}, DefaultPalette)

	require.Equal(t, []string{"Alpha", "Beta"}, series.Labels)
	require.Equal(t, []float64{3, 1}, series.Values)
	require.Equal(t, []string{"#DC2626", "#16A34A"}, series.Colors)
}

func TestBuildSeries_FallsBackToPaletteByIndex(t *testing.T) {
	rows := []Row{
		{Label: "Alpha", Hours: 1},
		{Label: "Beta", Hours: 1},
	}

	series := BuildSeries(rows, func(string) string { return "" }, DefaultPalette)

	require.Equal(t, DefaultPalette[0], series.Colors[0])
	require.Equal(t, DefaultPalette[1], series.Colors[1])
}

func TestBuildSeries_NilColorLookupUsesPalette(t *testing.T) {
	rows := make([]Row, len(DefaultPalette)+1)
	for i := range rows {
		rows[i] = Row{Label: "row", Hours: 1}
	}

	series := BuildSeries(rows, nil, DefaultPalette)

	// index wraps deterministically past the palette size
	require.Equal(t, DefaultPalette[0], series.Colors[len(DefaultPalette)])
}

func TestBuildSeries_RoundsValuesForDisplay(t *testing.T) {
	rows := []Row{{Label: "Alpha", Hours: 1.23456}}

	series := BuildSeries(rows, nil, DefaultPalette)

	require.Equal(t, 1.2, series.Values[0])
}

func TestPaletteColor_EmptyPalette(t *testing.T) {
	require.Equal(t, "", Palette{}.Color(3))
}

func TestPaletteContains(t *testing.T) {
	require.True(t, DefaultPalette.Contains("#2563EB"))
	require.False(t, DefaultPalette.Contains("#000000"))
}
