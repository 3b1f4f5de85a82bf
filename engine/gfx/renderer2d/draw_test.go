package renderer2d

import (
	"testing"

	"github.com/hubastard/grove-atlasui/engine/atlas"
	"github.com/hubastard/grove-atlasui/engine/colors"
	"github.com/hubastard/grove-atlasui/engine/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// quadAt returns the destination rect of the i-th quad in the arena.
func quadAt(rd *Renderer, i int) core.Rect {
	v := rd.vertices[i*4:]
	return core.Rect{
		X: int(v[0].Pos[0]),
		Y: int(v[0].Pos[1]),
		W: int(v[2].Pos[0] - v[0].Pos[0]),
		H: int(v[2].Pos[1] - v[0].Pos[1]),
	}
}

func TestDrawRectUsesWhiteTexel(t *testing.T) {
	rd, _, _ := newTestRenderer(t, 16)
	rd.Clear(colors.Black)
	rd.DrawRect(core.Rect{X: 3, Y: 4, W: 50, H: 60}, colors.Red)

	require.Equal(t, 4, rd.Cursor())
	assert.Equal(t, core.Rect{X: 3, Y: 4, W: 50, H: 60}, quadAt(rd, 0))

	white := texCoords(rd.atlas.RectFor(atlas.White), rd.atlas.Width, rd.atlas.Height)
	assert.Equal(t, [2]float32{white.U0, white.V0}, rd.vertices[0].UV)
	assert.Equal(t, [2]float32{white.U1, white.V1}, rd.vertices[2].UV)
	assert.Equal(t, colors.Red, rd.vertices[3].Col)
}

func TestDrawTextAdvancesPen(t *testing.T) {
	rd, _, _ := newTestRenderer(t, 64)
	rd.Clear(colors.Black)
	rd.DrawText("Hi!", core.Vec2{X: 100, Y: 50}, colors.White)

	require.Equal(t, 12, rd.Cursor())
	x := 100
	for i, c := range []int{'H', 'i', '!'} {
		g := rd.atlas.Glyph(c)
		assert.Equal(t, core.Rect{X: x, Y: 50, W: g.W, H: g.H}, quadAt(rd, i))
		x += g.W
	}
}

func TestDrawTextMultiByteIsOneQuad(t *testing.T) {
	rd, _, _ := newTestRenderer(t, 64)
	rd.Clear(colors.Black)
	rd.DrawText("é", core.Vec2{}, colors.White)

	require.Equal(t, 4, rd.Cursor(), "one quad for a two byte sequence")
	want := texCoords(rd.atlas.Glyph(127), rd.atlas.Width, rd.atlas.Height)
	assert.Equal(t, [2]float32{want.U0, want.V0}, rd.vertices[0].UV)
}

func TestTextWidthMatchesDrawnAdvance(t *testing.T) {
	rd, _, _ := newTestRenderer(t, 256)
	cases := []struct {
		s      string
		maxLen int
	}{
		{"hello world", -1},
		{"hello world", 5},
		{"naïve café", -1},
		{"naïve café", 3},
		{"\x80\x80abc", 2},
		{"", -1},
		{"tab\there", -1},
	}
	for _, tc := range cases {
		rd.Clear(colors.Black)
		// truncate to maxLen leading bytes, then draw the whole truncated string
		s := tc.s
		if tc.maxLen >= 0 {
			n, i := 0, 0
			for ; i < len(s); i++ {
				if s[i]&0xc0 == 0x80 {
					continue
				}
				if n == tc.maxLen {
					break
				}
				n++
			}
			s = s[:i]
		}
		rd.DrawText(s, core.Vec2{X: 7}, colors.White)

		advance := 0
		if q := rd.Cursor() / 4; q > 0 {
			last := quadAt(rd, q-1)
			advance = last.X + last.W - 7
		}
		assert.Equal(t, advance, rd.TextWidth(tc.s, tc.maxLen), "%q/%d", tc.s, tc.maxLen)
	}
}

func TestTextHeight(t *testing.T) {
	rd, _, _ := newTestRenderer(t, 16)
	assert.Equal(t, 13, rd.TextHeight())
}

func TestDrawIconCentered(t *testing.T) {
	rd, _, _ := newTestRenderer(t, 64)
	rd.Clear(colors.Black)

	rd.DrawIcon(atlas.IconClose, core.Rect{X: 10, Y: 10, W: 20, H: 20}, colors.White)
	assert.Equal(t, core.Rect{X: 12, Y: 12, W: 16, H: 16}, quadAt(rd, 0))

	// odd leftover rounds toward the top-left
	rd.DrawIcon(atlas.IconCheck, core.Rect{X: 0, Y: 0, W: 19, H: 21}, colors.White)
	assert.Equal(t, core.Rect{X: 1, Y: 2, W: 16, H: 16}, quadAt(rd, 1))

	// a rect smaller than the icon truncates toward zero like C division
	rd.DrawIcon(atlas.IconExpanded, core.Rect{X: 100, Y: 100, W: 9, H: 9}, colors.White)
	assert.Equal(t, core.Rect{X: 97, Y: 97, W: 16, H: 16}, quadAt(rd, 2))

	src := texCoords(rd.atlas.RectFor(atlas.IconExpanded), rd.atlas.Width, rd.atlas.Height)
	assert.Equal(t, [2]float32{src.U0, src.V0}, rd.vertices[8].UV)
}

func TestSetClipRectFlushesBeforeScissor(t *testing.T) {
	rd, b, _ := newTestRenderer(t, 64)
	rd.Clear(colors.Black)

	rd.DrawRect(core.Rect{W: 1, H: 1}, quadColor(0))
	rd.DrawRect(core.Rect{W: 1, H: 1}, quadColor(1))
	clip := core.Rect{X: 10, Y: 20, W: 30, H: 40}
	rd.SetClipRect(clip)

	assert.Equal(t, rd.Cursor(), rd.Offset())
	assert.Equal(t, clip, rd.ClipRect())
	require.Len(t, b.draws, 1)
	assert.Equal(t, core.Rect{W: 800, H: 600}, b.draws[0].scissor, "old quads keep the old clip")

	rd.DrawRect(core.Rect{W: 1, H: 1}, quadColor(2))
	rd.Present()
	require.Len(t, b.draws, 2)
	assert.Equal(t, clip, b.draws[1].scissor)
	assert.Equal(t, quadColor(2), b.draws[1].vertices[0].Col)

	// flush (map, unmap, draw) strictly precedes the scissor change
	i := indexOf(b.ops, "scissor")
	require.GreaterOrEqual(t, i, 3)
	assert.Equal(t, []string{"map:discard", "unmap", "draw"}, b.ops[i-3:i])
	assert.Equal(t, 1, rd.Stats().ClipChanges)
}

func indexOf(ops []string, op string) int {
	for i, o := range ops {
		if o == op {
			return i
		}
	}
	return -1
}
