package viz

import "github.com/guptarohit/asciigraph"

// Chart plots values as a line graph. It returns "" when there is nothing to plot.
func Chart(values []float64, height int, caption string) string {
	if len(values) == 0 {
		return ""
	}
	if height < 1 {
		height = 1
	}
	// asciigraph needs two points to draw a line
	if len(values) == 1 {
		values = []float64{values[0], values[0]}
	}
	return asciigraph.Plot(values,
		asciigraph.Height(height),
		asciigraph.Precision(0),
		asciigraph.Caption(caption),
	)
}
