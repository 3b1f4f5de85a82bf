package ui

import (
	"github.com/hubastard/grove-atlasui/engine/colors"
)

// IconSize is the default box of an icon element. The renderer centers the
// atlas icon inside whatever box it gets.
const IconSize = 16

type UIIcon struct {
	Common[*UIIcon]
	id int
}

func Icon(id int) *UIIcon {
	l := &UIIcon{id: id}
	l.Common = NewCommon(l)
	l.base.color = colors.White
	return l
}

func (l *UIIcon) ID() int { return l.id }

func (l *UIIcon) Layout(ctx *Context, constraints Constraints) LayoutResult {
	padding := l.base.Padding()
	width := l.base.resolveAxis(l.base.widthMod, l.base.widthVal, IconSize+padding[0]+padding[2], constraints.Min[0], constraints.Max[0])
	height := l.base.resolveAxis(l.base.heightMod, l.base.heightVal, IconSize+padding[1]+padding[3], constraints.Min[1], constraints.Max[1])
	l.base.SetSize(width, height)
	return LayoutResult{Size: [2]int{width, height}}
}

func (l *UIIcon) Draw(ctx *Context) {
	if l.base.color[3] == 0 {
		return
	}
	ctx.Renderer.DrawIcon(l.id, l.base.innerRect(), l.base.color)
}
