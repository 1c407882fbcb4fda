package layout

import (
	"github.com/go-logr/logr"
	"github.com/tdewolff/labels"
	"github.com/tdewolff/labels/kdtree"
)

// DefaultGridStep is the spacing of the exhaustive fallback search over the plot area.
const DefaultGridStep = 16.0

// Options configures a layout pass. Zero fields take the value of DefaultOptions.
type Options struct {
	// Grain is both the sampling distance inside a label box and the minimal clearance between a label and any series.
	Grain float64

	// GridStep is the spacing of candidate positions when falling back to a search over the whole plot area.
	GridStep float64

	Axes   []kdtree.Axis
	Metric kdtree.Metric

	// KeepPrevious makes a Labeler reuse the last successful position of a series when no new position is found.
	KeepPrevious bool

	Logger logr.Logger
}

// DefaultOptions are the default layout options.
var DefaultOptions = Options{
	Grain:    labels.DefaultGrain,
	GridStep: DefaultGridStep,
	Axes:     kdtree.DefaultOptions.Axes,
	Metric:   kdtree.Radial,
	Logger:   logr.Discard(),
}

func (o Options) withDefaults() Options {
	if !(0.0 < o.Grain) {
		o.Grain = DefaultOptions.Grain
	}
	if !(0.0 < o.GridStep) {
		o.GridStep = DefaultOptions.GridStep
	}
	if len(o.Axes) == 0 {
		o.Axes = DefaultOptions.Axes
	}
	if o.Logger.GetSink() == nil {
		o.Logger = DefaultOptions.Logger
	}
	return o
}
