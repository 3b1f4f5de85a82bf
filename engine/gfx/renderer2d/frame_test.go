package renderer2d

import (
	"testing"

	"github.com/hubastard/grove-atlasui/engine/colors"
	"github.com/hubastard/grove-atlasui/engine/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrtho800x600(t *testing.T) {
	m := Ortho(800, 600)
	assert.InDelta(t, 0.0025, m[0*4+0], 1e-7)
	assert.InDelta(t, -0.0033333, m[1*4+1], 1e-6)
	assert.InDelta(t, -1, m[2*4+2], 1e-7)
	assert.InDelta(t, -1, m[3*4+0], 1e-7)
	assert.InDelta(t, 1, m[3*4+1], 1e-7)
	assert.InDelta(t, 1, m[3*4+3], 1e-7)
}

func TestOrthoMapsCorners(t *testing.T) {
	m := Ortho(640, 480)
	apply := func(x, y float32) (float32, float32) {
		return m[0]*x + m[4]*y + m[12], m[1]*x + m[5]*y + m[13]
	}
	cx, cy := apply(0, 0)
	assert.InDelta(t, -1, cx, 1e-6)
	assert.InDelta(t, 1, cy, 1e-6)
	cx, cy = apply(640, 480)
	assert.InDelta(t, 1, cx, 1e-6)
	assert.InDelta(t, -1, cy, 1e-6)
	cx, cy = apply(320, 240)
	assert.InDelta(t, 0, cx, 1e-6)
	assert.InDelta(t, 0, cy, 1e-6)
}

func TestClearSequence(t *testing.T) {
	rd, b, _ := newTestRenderer(t, 16)
	rd.Clear(colors.Blue)

	assert.Equal(t, []string{"create", "resize", "projection", "clear", "bind"}, b.ops)
	assert.Equal(t, [][2]int{{800, 600}}, b.resizes)
	require.Len(t, b.projections, 1)
	assert.Equal(t, Ortho(800, 600), b.projections[0])
	assert.Equal(t, rd.Projection(), b.projections[0])
	assert.Equal(t, []colors.Color{colors.Blue}, b.clears)
	assert.Equal(t, []core.Rect{{W: 800, H: 600}}, b.binds)
	assert.Equal(t, core.Rect{W: 800, H: 600}, rd.ClipRect())
}

func TestResizeIsIdempotent(t *testing.T) {
	rd, b, s := newTestRenderer(t, 16)

	rd.Clear(colors.Black)
	rd.Present()
	rd.Clear(colors.Black)
	rd.Present()
	assert.Len(t, b.resizes, 1, "unchanged size must not rebuild the target")
	assert.Len(t, b.projections, 2)
	assert.Len(t, b.binds, 2)

	s.w, s.h = 1024, 768
	rd.Clear(colors.Black)
	assert.Equal(t, [][2]int{{800, 600}, {1024, 768}}, b.resizes)
	assert.Equal(t, Ortho(1024, 768), rd.Projection())
	assert.Equal(t, 2, rd.Stats().Resizes)
}

func TestClearMinimizedWindow(t *testing.T) {
	rd, b, s := newTestRenderer(t, 16)
	s.w, s.h = 0, 0
	rd.Clear(colors.Black)
	assert.Equal(t, [][2]int{{1, 1}}, b.resizes)
	assert.Equal(t, Ortho(1, 1), rd.Projection())
}

func TestClearRewindsArena(t *testing.T) {
	rd, b, _ := newTestRenderer(t, 64)
	rd.Clear(colors.Black)
	rd.DrawRect(core.Rect{W: 1, H: 1}, colors.White)
	rd.SetClipRect(core.Rect{W: 10, H: 10})
	rd.DrawRect(core.Rect{W: 1, H: 1}, colors.White)
	rd.Present()
	require.Equal(t, 8, rd.Offset())

	rd.Clear(colors.Black)
	assert.Zero(t, rd.Offset())
	assert.Zero(t, rd.Cursor())
	assert.Equal(t, Statistics{Resizes: 1}, rd.Stats())

	// first upload of the new frame discards even though last frame ended at 8
	rd.DrawRect(core.Rect{W: 1, H: 1}, colors.White)
	rd.Present()
	assert.Equal(t, core.MapDiscard, b.maps[len(b.maps)-1])
}

func TestPresentFlushesThenPresents(t *testing.T) {
	rd, b, _ := newTestRenderer(t, 16)
	rd.Clear(colors.Black)
	rd.DrawText("ok", core.Vec2{}, colors.White)
	rd.Present()

	n := len(b.ops)
	assert.Equal(t, []string{"map:discard", "unmap", "draw", "present"}, b.ops[n-4:])
	assert.Equal(t, []int{1}, b.presents)
	assert.Equal(t, rd.Cursor(), rd.Offset())
	assert.Equal(t, 2, rd.Stats().Quads)
	assert.Equal(t, 1, rd.Stats().Flushes)
	assert.Equal(t, 8, rd.Stats().TotalVertexCount())
	assert.Equal(t, 12, rd.Stats().TotalIndexCount())
}

func TestPresentSyncInterval(t *testing.T) {
	b := newMockBackend(t)
	rd, err := New(b, &fakeSurface{w: 8, h: 8}, Options{})
	require.NoError(t, err)
	rd.Clear(colors.Black)
	rd.Present()
	assert.Equal(t, []int{1}, b.presents, "zero Options waits for vblank")

	b = newMockBackend(t)
	rd, err = New(b, &fakeSurface{w: 8, h: 8}, Options{NoVSync: true})
	require.NoError(t, err)
	rd.Clear(colors.Black)
	rd.Present()
	assert.Equal(t, []int{0}, b.presents)
}

func TestLastFrameSurvivesClear(t *testing.T) {
	rd, _, _ := newTestRenderer(t, 16)
	rd.Clear(colors.Black)
	rd.DrawText("abc", core.Vec2{}, colors.White)
	rd.Present()
	rd.Clear(colors.Black)

	assert.Zero(t, rd.Stats().Quads)
	assert.Equal(t, 3, rd.LastFrame().Quads)
	assert.Equal(t, 1, rd.LastFrame().Flushes)
}
