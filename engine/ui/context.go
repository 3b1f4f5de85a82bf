package ui

import "github.com/hubastard/grove-atlasui/engine/core"

// Context carries per-frame state through a layout and draw pass.
type Context struct {
	Viewport core.Rect
	Renderer core.Renderer
	Mouse    core.Vec2

	clips []core.Rect
}

// pushClip narrows the renderer clip to r intersected with the current clip.
func (ctx *Context) pushClip(r core.Rect) {
	cur := ctx.Viewport
	if n := len(ctx.clips); n > 0 {
		cur = ctx.clips[n-1]
	}
	r = intersect(cur, r)
	ctx.clips = append(ctx.clips, r)
	ctx.Renderer.SetClipRect(r)
}

func (ctx *Context) popClip() {
	ctx.clips = ctx.clips[:len(ctx.clips)-1]
	if n := len(ctx.clips); n > 0 {
		ctx.Renderer.SetClipRect(ctx.clips[n-1])
		return
	}
	ctx.Renderer.SetClipRect(ctx.Viewport)
}

func intersect(a, b core.Rect) core.Rect {
	x0, y0 := max(a.X, b.X), max(a.Y, b.Y)
	x1, y1 := min(a.X+a.W, b.X+b.W), min(a.Y+a.H, b.Y+b.H)
	return core.Rect{X: x0, Y: y0, W: max(0, x1-x0), H: max(0, y1-y0)}
}

func contains(r core.Rect, p core.Vec2) bool {
	return p.X >= r.X && p.Y >= r.Y && p.X < r.X+r.W && p.Y < r.Y+r.H
}
