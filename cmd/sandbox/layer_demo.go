package main

import (
	"strconv"

	"github.com/hubastard/grove-atlasui/engine/atlas"
	"github.com/hubastard/grove-atlasui/engine/colors"
	"github.com/hubastard/grove-atlasui/engine/core"
	"github.com/hubastard/grove-atlasui/engine/profiler"
	"github.com/hubastard/grove-atlasui/engine/ui"
)

const (
	listItems  = 200
	listHeight = 240
	scrollStep = 24
)

var (
	panelBg = colors.RGBA(50, 55, 60, 255)
	titleBg = colors.RGBA(30, 90, 160, 255)
	rowBg   = colors.RGBA(60, 66, 72, 255)
)

// LayerDemo exercises every draw call: panels, text, icons and nested clip
// rects around a scrolling list long enough to overflow the vertex arena.
type LayerDemo struct {
	items     []string
	expanded  bool
	scroll    int
	maxScroll int
}

func (l *LayerDemo) OnAttach(e *core.Engine) {
	l.expanded = true
	l.items = make([]string, listItems)
	for i := range l.items {
		l.items[i] = "Item " + strconv.Itoa(i) + " · naïve café"
	}
}

func (l *LayerDemo) OnDetach(e *core.Engine) {}

func (l *LayerDemo) OnUpdate(e *core.Engine, dt float64) {
	l.scroll -= int(e.Input.TakeScroll() * scrollStep)
	if e.Input.IsKeyDown(core.KeyDown) {
		l.scroll += scrollStep / 4
	}
	if e.Input.IsKeyDown(core.KeyUp) {
		l.scroll -= scrollStep / 4
	}
	l.scroll = max(0, min(l.scroll, l.maxScroll))
}

func (l *LayerDemo) OnRender(e *core.Engine, alpha float64) {
	end := profiler.Start("LayerDemo.OnRender")
	defer end()

	mx, my := e.Input.Mouse()
	w, h := e.Window.ClientSize()
	ctx := &ui.Context{
		Viewport: core.Rect{W: w, H: h},
		Renderer: e.Renderer,
		Mouse:    core.Vec2{X: int(mx), Y: int(my)},
	}

	rows := make([]ui.UIElement, 0, len(l.items))
	for i, it := range l.items {
		icon := atlas.IconCheck
		if i%3 == 0 {
			icon = atlas.IconClose
		}
		rows = append(rows, ui.View(
			ui.Icon(icon).Color(colors.Green),
			ui.Label(it),
		).Gap(6).Padding2(6, 2).BgColor(rowBg).WidthExpand().AlignCross(ui.AlignCenter))
	}
	list := ui.View(rows...).
		FlowDirection(ui.LayoutVertical).
		AlignCross(ui.AlignStretch).
		Gap(2).
		HeightFixed(listHeight).
		Clip(true).
		Scroll(l.scroll)

	section := ui.Icon(atlas.IconCollapsed)
	var body ui.UIElement = ui.Label("Press space to expand.").Color(colors.Gray)
	if l.expanded {
		section = ui.Icon(atlas.IconExpanded)
		body = list
	}

	panel := ui.View(
		ui.View(
			ui.Label("atlasui sandbox").WidthExpand(),
			ui.Button("").Icon(atlas.IconClose).BgColor(titleBg).HoverColor(colors.Red),
		).Padding2(8, 4).BgColor(titleBg).AlignCross(ui.AlignCenter).WidthExpand(),
		ui.View(section, ui.Label("Items")).Gap(4).AlignCross(ui.AlignCenter),
		body,
		ui.Label("Glyphs outside ASCII render as a box: ü ß € → ✓").MaxWidth(360),
		ui.Label("Long labels are truncated by glyph count, not bytes.").MaxLen(24).Color(colors.Cyan),
	).
		FlowDirection(ui.LayoutVertical).
		AlignCross(ui.AlignStretch).
		WidthFixed(400).
		Padding(10).
		BgColor(panelBg)

	root := ui.View(panel).Padding(24).Clip(true)
	root.Draw(ctx)

	l.maxScroll = max(0, list.ContentSize()-listHeight)
}

func (l *LayerDemo) OnEvent(e *core.Engine, ev core.Event) bool {
	if k, ok := ev.(core.EventKey); ok && k.Down && k.Key == core.KeySpace {
		l.expanded = !l.expanded
		return true
	}
	return false
}
