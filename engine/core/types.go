package core

import "github.com/hubastard/grove-atlasui/engine/colors"

// Rect is an integer rectangle. In pixel space the origin is top-left and Y
// grows downward; atlas rects use the same convention in texels.
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

type Vec2 struct {
	X, Y int
}

// Vertex is one corner of a quad. The layout matches the pipeline input:
// POS float2, TEX float2, COL unorm8x4 (20 bytes, no padding).
type Vertex struct {
	Pos [2]float32
	UV  [2]float32
	Col colors.Color
}
