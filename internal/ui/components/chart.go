package components

import (
	"fmt"
	"math"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/guptarohit/asciigraph"

	"github.com/abhisek/calctutor/internal/ui/theme"
)

// ChartData is what Chart needs from a figure.
type ChartData struct {
	X, Y   []float64
	Title  string
	XLabel string
	YLabel string
	Legend string
}

// Chart renders data as a terminal line chart with the title above, the
// x range below and the legend as caption. Non-finite samples leave gaps,
// counted in the caption.
// It returns a message instead of a chart when no sample is finite.
func Chart(d ChartData, width, height int) string {
	ys := make([]float64, len(d.Y))
	finite := 0
	for i, y := range d.Y {
		if math.IsInf(y, 0) || math.IsNaN(y) {
			ys[i] = math.NaN()
			continue
		}
		ys[i] = y
		finite++
	}

	title := theme.Title.Render(d.Title)
	if finite == 0 {
		return title + "\n\n" + theme.ErrorText.Render("no finite values in the selected range")
	}

	// Room for the y tick labels, title, x axis line and caption.
	plotWidth := max(width-12, 10)
	plotHeight := max(height-6, 4)

	graph := asciigraph.Plot(ys,
		asciigraph.Width(plotWidth),
		asciigraph.Height(plotHeight),
		asciigraph.Precision(2),
		asciigraph.SeriesColors(asciigraph.Cyan),
		asciigraph.Caption(caption(d.Legend, len(ys)-finite)),
	)

	var b strings.Builder
	b.WriteString(title)
	b.WriteString("  ")
	b.WriteString(theme.Hint.Render(d.YLabel))
	b.WriteString("\n")
	b.WriteString(graph)
	b.WriteString("\n")
	b.WriteString(xAxis(d, lipgloss.Width(firstLine(graph))))
	return b.String()
}

// caption appends a note on undefined samples to the legend, since each
// one breaks the line.
func caption(legend string, undefined int) string {
	switch undefined {
	case 0:
		return legend
	case 1:
		return legend + "  (gap: 1 sample undefined)"
	}
	return fmt.Sprintf("%s  (gaps: %d samples undefined)", legend, undefined)
}

// xAxis renders the first and last x value under the plot with the axis
// label centred between them.
func xAxis(d ChartData, width int) string {
	if len(d.X) == 0 {
		return ""
	}
	lo := fmt.Sprintf("%g", d.X[0])
	hi := fmt.Sprintf("%g", d.X[len(d.X)-1])
	gap := width - len(lo) - len(hi) - len(d.XLabel)
	if gap < 2 {
		return theme.Hint.Render(lo + " " + d.XLabel + " " + hi)
	}
	left := gap / 2
	return theme.Hint.Render(lo + strings.Repeat(" ", left) + d.XLabel + strings.Repeat(" ", gap-left) + hi)
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
