package renderer2d

import "github.com/hubastard/grove-atlasui/engine/core"

// uvRect is a normalized sub-rect of the atlas.
type uvRect struct {
	U0, V0 float32 // top-left
	U1, V1 float32 // bottom-right
}

// texCoords converts a texel rect to normalized UVs. Both spaces have their
// origin at the top-left, so V is not flipped.
func texCoords(src core.Rect, atlasW, atlasH int) uvRect {
	return uvRect{
		U0: float32(src.X) / float32(atlasW),
		V0: float32(src.Y) / float32(atlasH),
		U1: float32(src.X+src.W) / float32(atlasW),
		V1: float32(src.Y+src.H) / float32(atlasH),
	}
}
