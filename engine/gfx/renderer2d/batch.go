package renderer2d

import (
	"github.com/hubastard/grove-atlasui/engine/colors"
	"github.com/hubastard/grove-atlasui/engine/core"
	"github.com/hubastard/grove-atlasui/engine/profiler"
)

// pushQuad appends one quad. A full arena is drawn and then reused from slot
// zero; the drawn quads are already on the GPU so nothing is lost.
func (rd *Renderer) pushQuad(dst, src core.Rect, color colors.Color) {
	if rd.cursor == len(rd.vertices) {
		rd.flush()
		rd.offset = 0
		rd.cursor = 0
		rd.stats.Overflows++
		core.Logger().Debug("vertex arena full, restarting", "capacity", len(rd.vertices))
	}

	x0 := float32(dst.X)
	y0 := float32(dst.Y)
	x1 := float32(dst.X + dst.W)
	y1 := float32(dst.Y + dst.H)

	uv := texCoords(src, rd.atlas.Width, rd.atlas.Height)

	v := rd.vertices[rd.cursor : rd.cursor+vertsPerQuad]
	v[0] = core.Vertex{Pos: [2]float32{x0, y0}, UV: [2]float32{uv.U0, uv.V0}, Col: color}
	v[1] = core.Vertex{Pos: [2]float32{x1, y0}, UV: [2]float32{uv.U1, uv.V0}, Col: color}
	v[2] = core.Vertex{Pos: [2]float32{x1, y1}, UV: [2]float32{uv.U1, uv.V1}, Col: color}
	v[3] = core.Vertex{Pos: [2]float32{x0, y1}, UV: [2]float32{uv.U0, uv.V1}, Col: color}

	rd.cursor += vertsPerQuad
}

// flush draws the pending range. An empty range still goes through the map
// and issues a zero-index draw.
func (rd *Renderer) flush() {
	end := profiler.Start("renderer2d.flush")
	defer end()

	count := rd.cursor - rd.offset

	// First upload this frame (or after an overflow restart): nothing drawn
	// from this buffer is still needed, let the driver hand out new storage.
	mode := core.MapNoOverwrite
	if rd.offset == 0 {
		mode = core.MapDiscard
	}
	rd.upload(mode)

	rd.backend.DrawIndexed(count*indsPerQuad/vertsPerQuad, rd.offset*indsPerQuad/vertsPerQuad)
	rd.offset = rd.cursor

	rd.stats.Flushes++
	rd.stats.Quads += count / vertsPerQuad
}

// upload copies the pending range to the same slots of the GPU buffer. The
// buffer is mapped only for the duration of the call.
func (rd *Renderer) upload(mode core.MapMode) {
	dst := rd.backend.MapVertices(mode)
	defer rd.backend.UnmapVertices()
	copy(dst[rd.offset:rd.cursor], rd.vertices[rd.offset:rd.cursor])
}
