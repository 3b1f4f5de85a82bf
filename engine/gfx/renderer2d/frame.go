package renderer2d

import (
	"github.com/hubastard/grove-atlasui/engine/colors"
	"github.com/hubastard/grove-atlasui/engine/core"
	"github.com/hubastard/grove-atlasui/engine/profiler"
)

// Clear starts a frame: it rewinds the arena, follows the window size,
// refreshes the projection, clears the target and binds the pipeline.
func (rd *Renderer) Clear(color colors.Color) {
	end := profiler.Start("renderer2d.Clear")
	defer end()

	rd.offset = 0
	rd.cursor = 0
	rd.stats = Statistics{Resizes: rd.stats.Resizes}

	w, h := rd.surface.ClientSize()
	// a minimized window reports 0x0; keep a valid target
	w, h = max(w, 1), max(h, 1)
	if w != rd.width || h != rd.height {
		rd.width, rd.height = w, h
		rd.backend.ResizeTarget(w, h)
		rd.stats.Resizes++
		core.Logger().Debug("backbuffer resized", "width", w, "height", h)
	}

	rd.projection = Ortho(w, h)
	rd.backend.UploadProjection(rd.projection)

	full := core.Rect{W: w, H: h}
	rd.backend.ClearTarget(color)
	rd.backend.BindPipeline(full)
	rd.clip = full
}

// Present draws whatever is still pending and shows the frame.
func (rd *Renderer) Present() {
	end := profiler.Start("renderer2d.Present")
	defer end()

	rd.flush()
	rd.lastFrame = rd.stats
	rd.backend.Present(rd.syncInterval)
}

// Ortho maps pixel space (origin top-left, y down) to clip space (origin
// centre, y up) for a w x h target. The matrix is column-major:
// m[12], m[13] hold the translation.
func Ortho(w, h int) [16]float32 {
	return ortho(0, float32(w), float32(h), 0, -1, 1)
}

func ortho(l, r, b, t, n, f float32) [16]float32 {
	rl := 1 / (r - l)
	tb := 1 / (t - b)
	fn := 1 / (f - n)
	return [16]float32{
		2 * rl, 0, 0, 0,
		0, 2 * tb, 0, 0,
		0, 0, -2 * fn, 0,
		-(r + l) * rl, -(t + b) * tb, -(f + n) * fn, 1,
	}
}
