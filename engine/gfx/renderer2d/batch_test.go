package renderer2d

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/hubastard/grove-atlasui/engine/atlas"
	"github.com/hubastard/grove-atlasui/engine/colors"
	"github.com/hubastard/grove-atlasui/engine/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsInvalidCapacity(t *testing.T) {
	for _, c := range []int{-4, 6, core.MaxBufferCapacity + 4} {
		_, err := New(newMockBackend(t), &fakeSurface{w: 1, h: 1}, Options{Capacity: c})
		assert.ErrorIs(t, err, ErrInvalidCapacity, "capacity %d", c)
	}
}

func TestNewDefaultsAndResources(t *testing.T) {
	b := newMockBackend(t)
	rd, err := New(b, &fakeSurface{w: 1, h: 1}, Options{})
	require.NoError(t, err)

	assert.Equal(t, core.DefaultBufferCapacity, rd.Capacity())
	assert.Same(t, atlas.Default(), rd.Atlas())
	assert.Equal(t, core.DefaultBufferCapacity, b.desc.VertexCapacity)
	assert.Len(t, b.desc.Indices, core.DefaultBufferCapacity*6/4)
	assert.Equal(t, atlas.Default().Width, b.desc.AtlasWidth)
	assert.Equal(t, atlas.Default().Height, b.desc.AtlasHeight)
	assert.Len(t, b.desc.AtlasPixels, b.desc.AtlasWidth*b.desc.AtlasHeight)

	rd.Shutdown()
	assert.True(t, b.shutdown)
}

func TestNewWrapsBackendError(t *testing.T) {
	boom := errors.New("no device")
	b := newMockBackend(t)
	b.createErr = boom
	_, err := New(b, &fakeSurface{w: 1, h: 1}, Options{Capacity: 16})
	assert.ErrorIs(t, err, boom)
}

func TestIndexPattern(t *testing.T) {
	inds := buildIndices(8)
	assert.Equal(t, []uint16{0, 2, 3, 2, 0, 1, 4, 6, 7, 6, 4, 5}, inds)

	full := buildIndices(core.MaxBufferCapacity)
	v := uint16(core.MaxBufferCapacity - 4)
	assert.Equal(t, []uint16{v, v + 2, v + 3, v + 2, v, v + 1}, full[len(full)-6:])
	assert.Equal(t, uint16(0xffff), full[len(full)-4])
}

func TestPushQuadVertices(t *testing.T) {
	rd, _, _ := newTestRenderer(t, 16)
	rd.Clear(colors.Black)

	src := core.Rect{X: 32, Y: 64, W: 16, H: 32}
	col := colors.RGBA(1, 2, 3, 4)
	rd.pushQuad(core.Rect{X: 10, Y: 20, W: 30, H: 40}, src, col)

	require.Equal(t, 4, rd.Cursor())
	v := rd.vertices[:4]
	assert.Equal(t, [2]float32{10, 20}, v[0].Pos)
	assert.Equal(t, [2]float32{40, 20}, v[1].Pos)
	assert.Equal(t, [2]float32{40, 60}, v[2].Pos)
	assert.Equal(t, [2]float32{10, 60}, v[3].Pos)

	assert.Equal(t, [2]float32{0.25, 0.5}, v[0].UV)
	assert.Equal(t, [2]float32{0.375, 0.5}, v[1].UV)
	assert.Equal(t, [2]float32{0.375, 0.75}, v[2].UV)
	assert.Equal(t, [2]float32{0.25, 0.75}, v[3].UV)
	for i := range v {
		assert.Equal(t, col, v[i].Col)
	}
}

// quadColor tags quad i so draws can be matched back to their source.
func quadColor(i int) colors.Color {
	return colors.RGBA(uint8(i), uint8(i>>8), 0xaa, 0xff)
}

func TestOverflowFlushes(t *testing.T) {
	const capacity = 16 // 4 quads
	for _, n := range []int{1, 4, 5, 8, 10, 13} {
		rd, b, _ := newTestRenderer(t, capacity)
		rd.Clear(colors.Black)

		for i := 0; i < n; i++ {
			rd.DrawRect(core.Rect{X: i, Y: 0, W: 1, H: 1}, quadColor(i))
			checkInvariant(t, rd)
		}
		quadsPerBuffer := capacity / 4
		wantOverflow := (n+quadsPerBuffer-1)/quadsPerBuffer - 1
		assert.Len(t, b.draws, wantOverflow, "n=%d before present", n)
		assert.Equal(t, wantOverflow, rd.Stats().Overflows, "n=%d", n)

		rd.Present()
		require.Len(t, b.draws, wantOverflow+1, "n=%d", n)
		assert.Equal(t, n, b.quadsDrawn())
		assert.Equal(t, n, rd.Stats().Quads)

		// every draw reads exactly its own quads, in order
		next := 0
		for _, d := range b.draws {
			for q := 0; q < len(d.vertices)/4; q++ {
				for k := 0; k < 4; k++ {
					assert.Equal(t, quadColor(next), d.vertices[q*4+k].Col, "n=%d quad %d", n, next)
				}
				next++
			}
			// after an overflow restart each segment starts at slot zero
			assert.Zero(t, d.firstIndex)
		}
		assert.Equal(t, n, next)

		for _, m := range b.maps {
			assert.Equal(t, core.MapDiscard, m)
		}
	}
}

func TestMapModeFollowsOffset(t *testing.T) {
	rd, b, _ := newTestRenderer(t, 64)
	rd.Clear(colors.Black)

	rd.DrawRect(core.Rect{W: 5, H: 5}, quadColor(0))
	rd.SetClipRect(core.Rect{X: 1, Y: 1, W: 10, H: 10})
	rd.DrawRect(core.Rect{W: 5, H: 5}, quadColor(1))
	rd.DrawRect(core.Rect{W: 5, H: 5}, quadColor(2))
	rd.SetClipRect(core.Rect{X: 2, Y: 2, W: 10, H: 10})
	rd.DrawRect(core.Rect{W: 5, H: 5}, quadColor(3))
	rd.Present()

	assert.Equal(t, []core.MapMode{core.MapDiscard, core.MapNoOverwrite, core.MapNoOverwrite}, b.maps)
	require.Len(t, b.draws, 3)
	assert.Equal(t, 0, b.draws[0].firstIndex)
	assert.Equal(t, 6, b.draws[0].indexCount)
	assert.Equal(t, 6, b.draws[1].firstIndex)
	assert.Equal(t, 12, b.draws[1].indexCount)
	assert.Equal(t, 18, b.draws[2].firstIndex)
	assert.Equal(t, 6, b.draws[2].indexCount)

	// no-overwrite appends must not disturb what the GPU already holds
	assert.Equal(t, quadColor(0), b.gpu[0].Col)
	assert.Equal(t, quadColor(3), b.gpu[12].Col)
	assert.Equal(t, quadColor(2), b.draws[1].vertices[4].Col)
}

func TestEmptyFlushStillMapsAndDraws(t *testing.T) {
	rd, b, _ := newTestRenderer(t, 16)
	rd.Clear(colors.Black)
	rd.Present()

	require.Len(t, b.draws, 1)
	assert.Zero(t, b.draws[0].indexCount)
	assert.Zero(t, b.draws[0].firstIndex)
	assert.Equal(t, []core.MapMode{core.MapDiscard}, b.maps)
	assert.Equal(t, 1, b.unmaps)
}

func TestRandomCallsKeepInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	rd, b, s := newTestRenderer(t, 32)

	for frame := 0; frame < 20; frame++ {
		if rng.Intn(5) == 0 {
			s.w, s.h = 640+rng.Intn(4), 480
		}
		rd.Clear(colors.DarkGray)
		checkInvariant(t, rd)
		quads := 0
		for call := 0; call < 40; call++ {
			before := rd.Cursor()
			switch rng.Intn(4) {
			case 0:
				rd.DrawRect(core.Rect{X: 1, Y: 2, W: 3, H: 4}, colors.White)
				quads++
			case 1:
				rd.DrawText("héllo", core.Vec2{X: 5, Y: 5}, colors.White)
				quads += 5
			case 2:
				rd.DrawIcon(atlas.IconCheck, core.Rect{W: 20, H: 20}, colors.White)
				quads++
			case 3:
				rd.SetClipRect(core.Rect{W: 100, H: 100})
				assert.Equal(t, rd.Cursor(), rd.Offset())
				assert.Equal(t, before, rd.Cursor())
			}
			checkInvariant(t, rd)
		}
		rd.Present()
		checkInvariant(t, rd)
		assert.Equal(t, quads, rd.Stats().Quads, "frame %d", frame)
	}
	assert.Equal(t, len(b.maps), b.unmaps)
	assert.False(t, b.mapped)
}
