// Package textimg rasterizes decoded message text into an image, one
// line per row, using the fixed-width 7x13 bitmap face.
package textimg

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	padding    = 4 // pixels around the text block, pre-scale
	lineHeight = 13
	charWidth  = 7
)

// Render draws lines onto a dark canvas and upscales the result by
// scale. Characters outside the bitmap face's ASCII range draw as the
// face's replacement glyph. scale values below 1 are treated as 1.
func Render(lines []string, scale int) *image.RGBA {
	if scale < 1 {
		scale = 1
	}

	cols := 0
	for _, line := range lines {
		if n := len([]rune(line)); n > cols {
			cols = n
		}
	}

	w := cols*charWidth + 2*padding
	h := len(lines)*lineHeight + 2*padding
	if w <= 2*padding {
		w = 2 * padding
	}

	src := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(src, src.Bounds(), image.NewUniform(color.RGBA{16, 16, 24, 255}), image.Point{}, draw.Src)

	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  src,
		Src:  image.NewUniform(color.RGBA{64, 255, 128, 255}),
		Face: face,
	}
	for i, line := range lines {
		d.Dot = fixed.P(padding, padding+i*lineHeight+face.Ascent)
		d.DrawString(line)
	}

	if scale == 1 {
		return src
	}

	// Nearest neighbor keeps the bitmap face crisp
	dst := image.NewRGBA(image.Rect(0, 0, w*scale, h*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}
