package renderer2d

import (
	"github.com/hubastard/grove-atlasui/engine/atlas"
	"github.com/hubastard/grove-atlasui/engine/colors"
	"github.com/hubastard/grove-atlasui/engine/core"
	"github.com/hubastard/grove-atlasui/engine/text"
)

// DrawRect fills rect with a solid color through the atlas white texel.
func (rd *Renderer) DrawRect(rect core.Rect, color colors.Color) {
	rd.pushQuad(rect, rd.atlas.RectFor(atlas.White), color)
}

// DrawText draws s on one line with its top-left corner at pos. Every byte
// that is not a UTF-8 continuation byte becomes one glyph quad; the pen
// advances by the glyph width.
func (rd *Renderer) DrawText(s string, pos core.Vec2, color colors.Color) {
	dst := core.Rect{X: pos.X, Y: pos.Y}
	text.Each(s, -1, func(code int) {
		src := rd.atlas.Glyph(code)
		dst.W = src.W
		dst.H = src.H
		rd.pushQuad(dst, src, color)
		dst.X += dst.W
	})
}

// DrawIcon centers the icon in rect. Odd leftovers round toward the
// top-left.
func (rd *Renderer) DrawIcon(id int, rect core.Rect, color colors.Color) {
	src := rd.atlas.RectFor(id)
	x := rect.X + (rect.W-src.W)/2
	y := rect.Y + (rect.H-src.H)/2
	rd.pushQuad(core.Rect{X: x, Y: y, W: src.W, H: src.H}, src, color)
}

// TextWidth measures what DrawText would advance over the first maxLen
// glyphs of s (all of them if maxLen < 0).
func (rd *Renderer) TextWidth(s string, maxLen int) int {
	return text.Width(s, maxLen, func(code int) int { return rd.atlas.Glyph(code).W })
}

func (rd *Renderer) TextHeight() int { return rd.atlas.TextHeight }

// SetClipRect draws everything batched so far under the old scissor before
// switching to rect. Quads batched afterwards are clipped to rect.
func (rd *Renderer) SetClipRect(rect core.Rect) {
	rd.flush()
	rd.backend.SetScissor(rect)
	rd.clip = rect
	rd.stats.ClipChanges++
}
