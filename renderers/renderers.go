// Package renderers connects the label layout to plotting libraries. Each renderer projects its series into plot coordinates, measures the label text with the library's own font metrics and draws the placed labels in the color of their series.
package renderers

import (
	"fmt"
	"os"

	"github.com/go-fonts/latin-modern/lmroman10bold"
	"github.com/go-fonts/latin-modern/lmroman10regular"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"gonum.org/v1/plot/font"
)

// LatinModern is the typeface name under which the Latin Modern Roman fonts are registered.
const LatinModern = "Latin Modern"

// RegisterLatinModern adds the regular and bold Latin Modern Roman faces to the default gonum font cache and returns the regular font.
func RegisterLatinModern() (font.Font, error) {
	regular, err := opentype.Parse(lmroman10regular.TTF)
	if err != nil {
		return font.Font{}, fmt.Errorf("latin modern: %w", err)
	}
	bold, err := opentype.Parse(lmroman10bold.TTF)
	if err != nil {
		return font.Font{}, fmt.Errorf("latin modern: %w", err)
	}

	fnt := font.Font{Typeface: LatinModern}
	fntBold := fnt
	fntBold.Weight = xfont.WeightBold
	font.DefaultCache.Add(font.Collection{
		{Font: fnt, Face: regular},
		{Font: fntBold, Face: bold},
	})
	return fnt, nil
}

// RegisterFont adds the TrueType or OpenType font file to the default gonum font cache under the given typeface name. The face is used for both the regular and bold weight.
func RegisterFont(typeface, filename string) (font.Font, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return font.Font{}, err
	}
	face, err := opentype.Parse(b)
	if err != nil {
		return font.Font{}, fmt.Errorf("%s: %w", filename, err)
	}

	fnt := font.Font{Typeface: font.Typeface(typeface)}
	fntBold := fnt
	fntBold.Weight = xfont.WeightBold
	font.DefaultCache.Add(font.Collection{
		{Font: fnt, Face: face},
		{Font: fntBold, Face: face},
	})
	return fnt, nil
}
