package main

import (
	"github.com/hubastard/grove-atlasui/engine/colors"
	"github.com/hubastard/grove-atlasui/engine/core"
	"github.com/hubastard/grove-atlasui/engine/gfx/renderer2d"
	"github.com/hubastard/grove-atlasui/engine/profiler"
	"github.com/hubastard/grove-atlasui/engine/scratch"
	"github.com/hubastard/grove-atlasui/engine/ui"
)

const profilePath = "profile.speedscope.json"

// LayerDebug draws renderer statistics of the previous frame in the top
// right corner.
type LayerDebug struct {
	r2d           *renderer2d.Renderer
	text          *scratch.Buffer
	frameDuration float32
	tick          int
}

func (l *LayerDebug) OnAttach(e *core.Engine) {
	l.text = scratch.New(1 << 10)
}

func (l *LayerDebug) OnDetach(e *core.Engine) {}

func (l *LayerDebug) OnUpdate(e *core.Engine, dt float64) {}

func (l *LayerDebug) OnRender(e *core.Engine, alpha float64) {
	end := profiler.Start("LayerDebug.OnRender")
	defer end()

	l.text.Reset()
	s := l.r2d.LastFrame()

	m := l.text.Mark()
	l.text.F64(float64(l.frameDuration), 2).S(" ms")
	frame := l.text.View(m)

	panel := ui.View(
		ui.Label(l.text.Field("Frame", l.tick)).Color(colors.Yellow),
		ui.Label(frame),
		ui.Label("Renderer").Padding4(0, 6, 0, 0).Color(colors.Yellow),
		ui.Label(l.text.Field("Draw calls", s.Flushes)),
		ui.Label(l.text.Field("Quads", s.Quads)),
		ui.Label(l.text.Field("Vertices", s.TotalVertexCount())),
		ui.Label(l.text.Field("Overflows", s.Overflows)),
		ui.Label(l.text.Field("Clip changes", s.ClipChanges)),
		ui.Label(l.text.Field("Resizes", s.Resizes)),
		ui.Label(l.text.Field("Capacity", l.r2d.Capacity())),
	).
		FlowDirection(ui.LayoutVertical).
		Gap(2).
		Padding(8).
		BgColor(colors.Black.WithAlpha(160))

	w, h := e.Window.ClientSize()
	// right-align: lay out once to learn the width, then place
	ctx := &ui.Context{Viewport: core.Rect{W: w, H: h}, Renderer: e.Renderer}
	pw := panel.Layout(ctx, ui.Constraints{Max: [2]int{w, h}}).Size[0]
	ctx.Viewport = core.Rect{X: max(0, w-pw-16), Y: 16, W: pw, H: h}
	panel.Draw(ctx)
}

func (l *LayerDebug) OnEvent(e *core.Engine, ev core.Event) bool {
	if v, ok := ev.(core.EventKey); ok && v.Down && v.Key == core.KeyP && (v.Mods&core.ModCtrl) != 0 {
		if err := profiler.Dump(profilePath); err != nil {
			core.Logger().Warn("profiler dump failed", "err", err)
		} else {
			core.Logger().Info("speedscope dump", "path", profilePath)
		}
		return true
	}
	return false
}
