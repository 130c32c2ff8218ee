package postprocess

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// LabelHeight is the strip reserved under each cell for its caption.
const LabelHeight = 16

var (
	sheetBackground = color.NRGBA{255, 255, 255, 255}
	sheetInk        = color.NRGBA{40, 40, 40, 255}
)

// ContactSheet lays frames out in a grid of cols columns, each captioned
// with the matching label. All frames are drawn in a cell the size of the
// first one. Returns nil when frames is empty.
func ContactSheet(frames []*image.NRGBA, labels []string, cols int) *image.NRGBA {
	if len(frames) == 0 {
		return nil
	}
	cols = max(1, min(cols, len(frames)))
	rows := (len(frames) + cols - 1) / cols

	cw := frames[0].Bounds().Dx()
	ch := frames[0].Bounds().Dy() + LabelHeight
	sheet := image.NewNRGBA(image.Rect(0, 0, cols*cw, rows*ch))
	draw.Draw(sheet, sheet.Bounds(), image.NewUniform(sheetBackground), image.Point{}, draw.Src)

	d := font.Drawer{
		Dst:  sheet,
		Src:  image.NewUniform(sheetInk),
		Face: basicfont.Face7x13,
	}

	for i, f := range frames {
		x := (i % cols) * cw
		y := (i / cols) * ch
		cell := image.Rect(x, y, x+cw, y+ch-LabelHeight)
		draw.Draw(sheet, cell, f, f.Bounds().Min, draw.Over)

		if i < len(labels) {
			d.Dot = fixed.P(x+4, y+ch-4)
			d.DrawString(labels[i])
		}
	}

	return sheet
}
