package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tdewolff/labels/kdtree"
	"github.com/tdewolff/labels/layout"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

const (
	EngineGonum   = "gonum"
	EngineGoChart = "gochart"

	FontDefault     = "default"
	FontLatinModern = "latin-modern"
)

// Config describes a chart and the data of its series.
type Config struct {
	Width    float64        `yaml:"width"`  // in points for gonum, in pixels for gochart
	Height   float64        `yaml:"height"` // idem
	Title    string         `yaml:"title"`
	Engine   string         `yaml:"engine"`   // gonum or gochart
	Font     string         `yaml:"font"`     // default, latin-modern or a path to a TTF file
	Simplify float64        `yaml:"simplify"` // Douglas-Peucker tolerance in data units, zero disables
	Layout   LayoutConfig   `yaml:"layout"`
	Series   []SeriesConfig `yaml:"series"`
}

// LayoutConfig holds the layout options of a single pass. Every run lays out the chart once, so there is no previous position to keep.
type LayoutConfig struct {
	Grain    float64 `yaml:"grain"`
	GridStep float64 `yaml:"grid_step"`
	Metric   string  `yaml:"metric"` // radial, horizontal or vertical
}

// SeriesConfig holds either inline points or a CSV file with the column indices of the X and Y values.
type SeriesConfig struct {
	Name   string       `yaml:"name"`
	Points [][2]float64 `yaml:"points"`
	File   string       `yaml:"file"`
	X      int          `yaml:"x"`
	Y      int          `yaml:"y"`
	Header bool         `yaml:"header"` // skip the first record
}

func defaultConfig() Config {
	return Config{
		Width:  400.0,
		Height: 300.0,
		Engine: EngineGonum,
		Font:   FontDefault,
		Layout: LayoutConfig{
			Grain:    layout.DefaultOptions.Grain,
			GridStep: layout.DefaultOptions.GridStep,
			Metric:   kdtree.Radial.String(),
		},
	}
}

// LoadConfig reads a YAML configuration. Relative paths of CSV files are resolved against the directory of the configuration file.
func LoadConfig(filename string) (Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", filename, err)
	}

	dir := filepath.Dir(filename)
	for i, s := range cfg.Series {
		if s.File != "" && !filepath.IsAbs(s.File) {
			cfg.Series[i].File = filepath.Join(dir, s.File)
		}
	}
	if cfg.Font != FontDefault && cfg.Font != FontLatinModern && !filepath.IsAbs(cfg.Font) {
		cfg.Font = filepath.Join(dir, cfg.Font)
	}
	return cfg, nil
}

// ParseConfig parses and validates a YAML configuration, unset fields take their default value.
func ParseConfig(data []byte) (Config, error) {
	cfg := defaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate returns all problems of the configuration combined.
func (cfg Config) Validate() error {
	var err error
	if cfg.Width <= 0.0 || cfg.Height <= 0.0 {
		err = multierr.Append(err, fmt.Errorf("size must be positive: %gx%g", cfg.Width, cfg.Height))
	}
	if cfg.Engine != EngineGonum && cfg.Engine != EngineGoChart {
		err = multierr.Append(err, fmt.Errorf("unknown engine %q", cfg.Engine))
	}
	if cfg.Font == "" {
		err = multierr.Append(err, errors.New("font must not be empty"))
	}
	if cfg.Simplify < 0.0 {
		err = multierr.Append(err, fmt.Errorf("simplify tolerance must not be negative: %g", cfg.Simplify))
	}
	if cfg.Layout.Grain < 0.0 {
		err = multierr.Append(err, fmt.Errorf("grain must not be negative: %g", cfg.Layout.Grain))
	}
	if cfg.Layout.GridStep < 0.0 {
		err = multierr.Append(err, fmt.Errorf("grid step must not be negative: %g", cfg.Layout.GridStep))
	}
	if _, errMetric := kdtree.ParseMetric(cfg.Layout.Metric); errMetric != nil {
		err = multierr.Append(err, errMetric)
	}

	if len(cfg.Series) == 0 {
		err = multierr.Append(err, errors.New("no series"))
	}
	names := map[string]bool{}
	for i, s := range cfg.Series {
		if s.Name == "" {
			err = multierr.Append(err, fmt.Errorf("series %d: no name", i))
		} else if names[s.Name] {
			err = multierr.Append(err, fmt.Errorf("series %d: duplicate name %q", i, s.Name))
		}
		names[s.Name] = true

		if (len(s.Points) == 0) == (s.File == "") {
			err = multierr.Append(err, fmt.Errorf("series %d: either points or file must be set", i))
		} else if s.File != "" && (s.X < 0 || s.Y < 0 || s.X == s.Y) {
			err = multierr.Append(err, fmt.Errorf("series %d: invalid columns x=%d y=%d", i, s.X, s.Y))
		}
	}
	return err
}

// LayoutOptions returns the label layout options of the configuration.
func (cfg Config) LayoutOptions() (layout.Options, error) {
	metric, err := kdtree.ParseMetric(cfg.Layout.Metric)
	if err != nil {
		return layout.Options{}, err
	}
	return layout.Options{
		Grain:    cfg.Layout.Grain,
		GridStep: cfg.Layout.GridStep,
		Metric:   metric,
	}, nil
}
