package layout

import "github.com/tdewolff/labels"

// Projection converts chart coordinates, such as a pointer position, into plot coordinates. XPos and XLen are the offset and length of the x axis in chart coordinates, likewise for the y axis. For inverted charts the x axis runs vertically and the y axis horizontally.
type Projection struct {
	XPos, XLen float64
	YPos, YLen float64
	Inverted   bool
}

// PlotProjection returns the projection for a plot area placed at (left,top) of size width by height within the chart.
func PlotProjection(left, top, width, height float64, inverted bool) Projection {
	if inverted {
		return Projection{top, height, left, width, true}
	}
	return Projection{left, width, top, height, false}
}

// ToPlot returns the plot coordinates of the chart position (chartX,chartY).
func (p Projection) ToPlot(chartX, chartY float64) labels.Point {
	if p.Inverted {
		return labels.Point{p.XLen - (chartY - p.XPos), p.YLen - (chartX - p.YPos)}
	}
	return labels.Point{chartX - p.XPos, chartY - p.YPos}
}
