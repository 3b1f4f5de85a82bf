package glbackend

import (
	"testing"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/grove-atlasui/engine/core"
	"github.com/stretchr/testify/assert"
)

func TestUnmapResult(t *testing.T) {
	assert.NoError(t, unmapResult(true))
	assert.ErrorIs(t, unmapResult(false), ErrStorageLost)
}

func TestScissorBoxFlipsY(t *testing.T) {
	x, y, w, h := scissorBox(core.Rect{X: 10, Y: 20, W: 30, H: 40}, 600)
	assert.Equal(t, []int32{10, 540, 30, 40}, []int32{x, y, w, h})

	_, y, w, h = scissorBox(core.Rect{X: 0, Y: 5, W: -3, H: -1}, 100)
	assert.Equal(t, []int32{95, 0, 0}, []int32{y, w, h})
}

func TestMapFlags(t *testing.T) {
	assert.Equal(t, uint32(gl.MAP_WRITE_BIT|gl.MAP_INVALIDATE_BUFFER_BIT), mapFlags(core.MapDiscard))
	assert.Equal(t, uint32(gl.MAP_WRITE_BIT|gl.MAP_UNSYNCHRONIZED_BIT), mapFlags(core.MapNoOverwrite))
}
