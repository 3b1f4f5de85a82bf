// Package atlas holds the texture atlas shared by glyphs and icons: a single
// channel raster plus a fixed table from id to texel rectangle.
//
// The id space is laid out as
//
//	White                      solid texel for untextured fills
//	IconClose..IconExpanded    GUI icons
//	FontBase..FontBase+127     ASCII glyphs
package atlas

import (
	"errors"
	"fmt"

	"github.com/hubastard/grove-atlasui/engine/core"
)

const (
	White = iota
	IconClose
	IconCheck
	IconCollapsed
	IconExpanded
	FontBase

	// Glyphs is the size of the glyph block; code points are clamped below it.
	Glyphs = 128
	Count  = FontBase + Glyphs
)

var ErrInvalidAtlas = errors.New("invalid atlas")

type Atlas struct {
	Width, Height int
	Pixels        []byte // R8 coverage, row-major, top-left origin
	Rects         [Count]core.Rect
	TextHeight    int
}

// New validates imported atlas data.
func New(width, height int, pixels []byte, rects [Count]core.Rect, textHeight int) (*Atlas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d", ErrInvalidAtlas, width, height)
	}
	if len(pixels) != width*height {
		return nil, fmt.Errorf("%w: %d pixels for %dx%d", ErrInvalidAtlas, len(pixels), width, height)
	}
	if textHeight <= 0 {
		return nil, fmt.Errorf("%w: text height %d", ErrInvalidAtlas, textHeight)
	}
	for id, r := range rects {
		if r.X < 0 || r.Y < 0 || r.W < 0 || r.H < 0 || r.X+r.W > width || r.Y+r.H > height {
			return nil, fmt.Errorf("%w: rect %d %v outside %dx%d", ErrInvalidAtlas, id, r, width, height)
		}
	}
	if rects[White].Empty() {
		return nil, fmt.Errorf("%w: white rect is empty", ErrInvalidAtlas)
	}
	return &Atlas{Width: width, Height: height, Pixels: pixels, Rects: rects, TextHeight: textHeight}, nil
}

// RectFor returns the texel rect of id. Unknown ids resolve to the white rect.
func (a *Atlas) RectFor(id int) core.Rect {
	if id < 0 || id >= Count {
		return a.Rects[White]
	}
	return a.Rects[id]
}

// Glyph returns the rect for a code point, clamped to the 128-entry table.
func (a *Atlas) Glyph(code int) core.Rect {
	return a.Rects[FontBase+clampCode(code)]
}

func clampCode(code int) int {
	if code < 0 {
		return 0
	}
	if code >= Glyphs {
		return Glyphs - 1
	}
	return code
}

var builtin = build()

// Default returns the built-in atlas. Callers must not modify it.
func Default() *Atlas { return builtin }
