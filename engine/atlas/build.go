package atlas

import (
	"image"

	"github.com/chewxy/math32"
	"github.com/hubastard/grove-atlasui/engine/core"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	builtinSize  = 128
	iconSize     = 16
	iconX        = 4
	glyphTop     = iconSize
	glyphsPerRow = builtinSize / 7 // basicfont.Face7x13 advance
)

// point is a vertex in icon cell space (pixels, origin top-left).
type point struct{ x, y float32 }

// coverageFunc reports how much of the texel centred at p is inside the shape.
type coverageFunc func(p point) float32

// icons in id order, starting at IconClose.
var icons = [...]coverageFunc{
	strokes(1, [2]point{{4, 4}, {12, 12}}, [2]point{{12, 4}, {4, 12}}),
	strokes(1, [2]point{{3.5, 8.5}, {6.5, 11.5}}, [2]point{{6.5, 11.5}, {12.5, 4.5}}),
	triangle(point{6, 4}, point{11, 8}, point{6, 12}),
	triangle(point{4, 6}, point{12, 6}, point{8, 11}),
}

func build() *Atlas {
	img := image.NewAlpha(image.Rect(0, 0, builtinSize, builtinSize))
	a := &Atlas{Width: builtinSize, Height: builtinSize, Pixels: img.Pix}

	// 3x3 solid block; sampling its centre texel never touches a neighbour.
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			img.Pix[y*img.Stride+x] = 0xff
		}
	}
	a.Rects[White] = core.Rect{X: 1, Y: 1, W: 1, H: 1}

	for i, cov := range icons {
		cell := core.Rect{X: iconX + i*iconSize, Y: 0, W: iconSize, H: iconSize}
		rasterize(img, cell, cov)
		a.Rects[IconClose+i] = cell
	}

	face := basicfont.Face7x13
	a.TextHeight = face.Height
	d := &font.Drawer{Dst: img, Src: image.Opaque, Face: face}
	for code := 0; code < Glyphs; code++ {
		cell := core.Rect{
			X: (code % glyphsPerRow) * face.Advance,
			Y: glyphTop + (code/glyphsPerRow)*face.Height,
			W: face.Advance,
			H: face.Height,
		}
		switch {
		case code < ' ':
			// control codes have no glyph and no advance
			continue
		case code == Glyphs-1:
			drawBox(img, cell)
		default:
			d.Dot = fixed.P(cell.X, cell.Y+face.Ascent)
			d.DrawString(string(rune(code)))
		}
		a.Rects[FontBase+code] = cell
	}
	return a
}

func rasterize(img *image.Alpha, cell core.Rect, cov coverageFunc) {
	for y := 0; y < cell.H; y++ {
		for x := 0; x < cell.W; x++ {
			c := cov(point{float32(x) + 0.5, float32(y) + 0.5})
			if c <= 0 {
				continue
			}
			img.Pix[(cell.Y+y)*img.Stride+cell.X+x] = uint8(math32.Round(math32.Min(c, 1) * 255))
		}
	}
}

// drawBox outlines the cell inset by one texel: the glyph shown for code
// points outside ASCII.
func drawBox(img *image.Alpha, cell core.Rect) {
	x0, y0 := cell.X+1, cell.Y+2
	x1, y1 := cell.X+cell.W-2, cell.Y+cell.H-2
	for x := x0; x <= x1; x++ {
		img.Pix[y0*img.Stride+x] = 0xff
		img.Pix[y1*img.Stride+x] = 0xff
	}
	for y := y0; y <= y1; y++ {
		img.Pix[y*img.Stride+x0] = 0xff
		img.Pix[y*img.Stride+x1] = 0xff
	}
}

// strokes covers line segments of the given half width, with a one texel
// linear falloff at the edge.
func strokes(halfWidth float32, segs ...[2]point) coverageFunc {
	return func(p point) float32 {
		var best float32
		for _, s := range segs {
			c := halfWidth + 0.5 - segmentDistance(p, s[0], s[1])
			best = math32.Max(best, c)
		}
		return best
	}
}

func segmentDistance(p, a, b point) float32 {
	dx, dy := b.x-a.x, b.y-a.y
	t := ((p.x-a.x)*dx + (p.y-a.y)*dy) / (dx*dx + dy*dy)
	t = math32.Max(0, math32.Min(1, t))
	ex, ey := p.x-(a.x+t*dx), p.y-(a.y+t*dy)
	return math32.Sqrt(ex*ex + ey*ey)
}

func triangle(a, b, c point) coverageFunc {
	return func(p point) float32 {
		d0 := edge(a, b, p)
		d1 := edge(b, c, p)
		d2 := edge(c, a, p)
		neg := d0 < 0 || d1 < 0 || d2 < 0
		pos := d0 > 0 || d1 > 0 || d2 > 0
		if neg && pos {
			return 0
		}
		return 1
	}
}

func edge(a, b, p point) float32 {
	return (b.x-a.x)*(p.y-a.y) - (b.y-a.y)*(p.x-a.x)
}
