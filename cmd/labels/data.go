package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/simplify"
)

// Dataset holds the loaded series in data coordinates.
type Dataset struct {
	Names []string
	Lines []orb.LineString
	Bound orb.Bound
}

// LoadDataset loads the points of every series, simplifying them when a tolerance is set.
func LoadDataset(cfg Config) (Dataset, error) {
	ds := Dataset{}
	for i, s := range cfg.Series {
		ls, err := loadSeries(s)
		if err != nil {
			return Dataset{}, fmt.Errorf("series %q: %w", s.Name, err)
		}
		if 0.0 < cfg.Simplify {
			ls = simplifyLine(ls, cfg.Simplify)
		}

		if i == 0 {
			ds.Bound = ls.Bound()
		} else {
			ds.Bound = ds.Bound.Union(ls.Bound())
		}
		ds.Names = append(ds.Names, s.Name)
		ds.Lines = append(ds.Lines, ls)
	}
	return ds, nil
}

// XYs returns the coordinates of series i as separate slices.
func (ds Dataset) XYs(i int) ([]float64, []float64) {
	xs := make([]float64, len(ds.Lines[i]))
	ys := make([]float64, len(ds.Lines[i]))
	for j, p := range ds.Lines[i] {
		xs[j], ys[j] = p.X(), p.Y()
	}
	return xs, ys
}

func loadSeries(s SeriesConfig) (orb.LineString, error) {
	if s.File == "" {
		ls := make(orb.LineString, 0, len(s.Points))
		for _, p := range s.Points {
			ls = append(ls, orb.Point{p[0], p[1]})
		}
		return ls, checkLine(ls)
	}

	f, err := os.Open(s.File)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ls, err := readCSV(f, s.X, s.Y, s.Header)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.File, err)
	}
	return ls, checkLine(ls)
}

// readCSV reads the points of a line from two columns of CSV records.
func readCSV(r io.Reader, xcol, ycol int, header bool) (orb.LineString, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	ls := orb.LineString{}
	for line := 1; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		} else if header && line == 1 {
			continue
		}

		if len(record) <= xcol || len(record) <= ycol {
			return nil, fmt.Errorf("record %d: expected at least %d fields", line, max(xcol, ycol)+1)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(record[xcol]), 64)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", line, err)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(record[ycol]), 64)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", line, err)
		}
		ls = append(ls, orb.Point{x, y})
	}
	return ls, nil
}

func checkLine(ls orb.LineString) error {
	if len(ls) == 0 {
		return errors.New("no points")
	}
	for _, p := range ls {
		if math.IsNaN(p.X()) || math.IsInf(p.X(), 0) || math.IsNaN(p.Y()) || math.IsInf(p.Y(), 0) {
			return fmt.Errorf("invalid point %v", p)
		}
	}
	return nil
}

// simplifyLine reduces the number of points of a line with the Douglas-Peucker algorithm, keeping both end points.
func simplifyLine(ls orb.LineString, tolerance float64) orb.LineString {
	if len(ls) < 3 {
		return ls
	}
	if simplified, ok := simplify.DouglasPeucker(tolerance).Simplify(ls.Clone()).(orb.LineString); ok && 2 <= len(simplified) {
		return simplified
	}
	return ls
}
