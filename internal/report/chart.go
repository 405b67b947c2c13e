package report

// Series is the chart-ready shape consumed by the web layer: parallel
// labels, display-rounded values, and one color per label.
type Series struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
	Colors []string  `json:"colors"`
}

// Palette is an ordered set of display colors. It is injected rather
// than read from a global so renderers stay pure and testable.
type Palette []string

// DefaultPalette matches the fixed set of project colors offered in the
// project form.
var DefaultPalette = Palette{
	"#2563EB", // blue
	"#DC2626", // red
	"#16A34A", // green
	"#D97706", // amber
	"#7C3AED", // violet
	"#DB2777", // pink
	"#0D9488", // teal
	"#EA580C", // orange
}

// Color returns the palette entry for an index, wrapping deterministically
// when the index exceeds the palette size.
func (p Palette) Color(i int) string {
	if len(p) == 0 {
		return ""
	}
	return p[i%len(p)]
}

// Contains reports whether the color is part of the palette.
func (p Palette) Contains(color string) bool {
	for _, c := range p {
		if c == color {
			return true
		}
	}
	return false
}

// BuildSeries renders aggregated rows as a chart series. colorOf maps a
// row label to its configured color; an empty result falls back to the
// palette entry at the row's index. A nil colorOf uses the palette for
// every row.
func BuildSeries(rows []Row, colorOf func(label string) string, palette Palette) Series {
	series := Series{
		Labels: make([]string, len(rows)),
		Values: make([]float64, len(rows)),
		Colors: make([]string, len(rows)),
	}

	for i, row := range rows {
		series.Labels[i] = row.Label
		series.Values[i] = Round1(row.Hours)

		color := ""
		if colorOf != nil {
			color = colorOf(row.Label)
		}
		if color == "" {
			color = palette.Color(i)
		}
		series.Colors[i] = color
	}

	return series
}
