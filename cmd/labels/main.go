package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"

	"github.com/go-logr/logr"
	"github.com/tdewolff/argp"
	"github.com/tdewolff/labels/layout"
	"gopkg.in/yaml.v3"
	"k8s.io/klog/v2"
)

type Main struct{}

type Render struct {
	Verbose int    `short:"v" desc:"Log verbosity"`
	Output  string `short:"o" desc:"Output file, the format is chosen by extension"`
	Input   string `index:"0" desc:"Chart configuration file"`
}

type Place struct {
	Verbose int    `short:"v" desc:"Log verbosity"`
	Input   string `index:"0" desc:"Chart configuration file"`
}

func main() {
	defer klog.Flush()

	root := argp.NewCmd(&Main{}, "Draw line charts with the name of each series next to its line")
	root.AddCmd(&Render{}, "render", "Render a chart to an image")
	root.AddCmd(&Place{}, "place", "Print the label positions as YAML")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Main) Run() error {
	return argp.ShowUsage
}

func (cmd *Render) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	} else if cmd.Output == "" {
		fmt.Println("ERROR: must specify output filename")
		return argp.ShowUsage
	}

	log := logger(cmd.Verbose)
	ls, err := run(cmd.Input, cmd.Output, log)
	if err != nil {
		return err
	}
	log.Info("rendered chart", "file", cmd.Output, "series", len(ls), "placed", placed(ls))
	return nil
}

func (cmd *Place) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}

	ls, err := run(cmd.Input, "", logger(cmd.Verbose))
	if err != nil {
		return err
	}
	return writePlacements(os.Stdout, ls)
}

var initFlags sync.Once

// logger returns a klog backed logger that logs the layout passes at the given verbosity.
func logger(verbosity int) logr.Logger {
	initFlags.Do(func() {
		klog.InitFlags(nil)
	})
	if err := flag.Set("v", strconv.Itoa(verbosity)); err != nil {
		klog.ErrorS(err, "failed to set verbosity")
	}
	return klog.NewKlogr().WithName("labels")
}

func run(filename, output string, log logr.Logger) ([]layout.Label, error) {
	cfg, err := LoadConfig(filename)
	if err != nil {
		return nil, err
	}
	ds, err := LoadDataset(cfg)
	if err != nil {
		return nil, err
	}
	opts, err := cfg.LayoutOptions()
	if err != nil {
		return nil, err
	}
	opts.Logger = log.WithValues("engine", cfg.Engine)

	e, err := engineFor(cfg.Engine)
	if err != nil {
		return nil, err
	}
	log.V(1).Info("loaded chart", "config", filename, "series", len(ds.Names), "bound", ds.Bound)
	return e(cfg, ds, opts, output)
}

func placed(ls []layout.Label) int {
	n := 0
	for _, l := range ls {
		if l.Placed() {
			n++
		}
	}
	return n
}

type placement struct {
	Series    string  `yaml:"series"`
	Strategy  string  `yaml:"strategy"`
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Clearance float64 `yaml:"clearance,omitempty"`
}

// writePlacements writes the labels as a YAML list, unplaced labels have strategy none and no position.
func writePlacements(w io.Writer, ls []layout.Label) error {
	ps := make([]placement, 0, len(ls))
	for _, l := range ls {
		ps = append(ps, placement{
			Series:    l.Series,
			Strategy:  l.Strategy.String(),
			X:         l.Pos.X,
			Y:         l.Pos.Y,
			Width:     l.Box.W,
			Height:    l.Box.H,
			Clearance: l.Clearance,
		})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(ps); err != nil {
		return err
	}
	return enc.Close()
}
