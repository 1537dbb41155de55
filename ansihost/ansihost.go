// Package ansihost provides a ready-made boxel.MeasureFunc for terminal
// hosts, so trying the engine against a real terminal doesn't require
// writing a glyph-width table first. It measures by terminal display cell.
package ansihost

import (
	"github.com/charmbracelet/x/ansi"

	"github.com/nyborg/boxel"
)

// CellHeight is the fixed line height, in cells, this measurer reports for
// every run. Terminal cells have no sub-cell vertical metric, so there is
// no font-size-derived height to compute — every fontSize measures the
// same single cell tall.
const CellHeight = 1

// Measure returns a boxel.MeasureFunc that reports width in terminal
// display cells via github.com/charmbracelet/x/ansi's wide-character-aware
// StringWidth, ignoring fontId/fontSize (a terminal has one cell grid,
// not a font metric per size).
func Measure() boxel.MeasureFunc {
	return func(text string, fontID uint32, fontSize uint16) boxel.Measurement {
		return boxel.Measurement{
			Width:  float64(ansi.StringWidth(text)),
			Height: CellHeight,
		}
	}
}
