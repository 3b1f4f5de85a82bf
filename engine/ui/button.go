package ui

import (
	"github.com/hubastard/grove-atlasui/engine/colors"
	"github.com/hubastard/grove-atlasui/engine/core"
)

type UIButton struct {
	Common[*UIButton]
	label   *UILabel
	icon    *UIIcon
	hoverBg colors.Color
	onClick func()
}

func Button(str string) *UIButton {
	l := &UIButton{}
	l.Common = NewCommon(l)
	l.label = Label(str)
	l.Children(l.label)
	l.base.color = colors.Gray
	l.hoverBg = colors.LightGray
	l.base.SetPadding(6, 4, 6, 4)
	return l
}

func (l *UIButton) BgColor(color colors.Color) *UIButton    { l.base.color = color; return l }
func (l *UIButton) HoverColor(color colors.Color) *UIButton { l.hoverBg = color; return l }
func (l *UIButton) TextColor(color colors.Color) *UIButton  { l.label.base.color = color; return l }
func (l *UIButton) OnClick(fn func()) *UIButton             { l.onClick = fn; return l }

// Icon puts an atlas icon before the label.
func (l *UIButton) Icon(id int) *UIButton {
	l.icon = Icon(id)
	l.icon.base.parent = l
	return l
}

func (l *UIButton) Layout(ctx *Context, constraints Constraints) LayoutResult {
	padding := l.base.Padding()
	inner := Constraints{
		Max: [2]int{
			max(0, resolveConstraint(constraints.Max[0])-padding[0]-padding[2]),
			max(0, resolveConstraint(constraints.Max[1])-padding[1]-padding[3]),
		},
	}

	res := l.label.Layout(ctx, inner)
	contentW, contentH := res.Size[0], res.Size[1]
	if l.icon != nil {
		ir := l.icon.Layout(ctx, inner)
		contentW += ir.Size[0] + iconGap
		contentH = max(contentH, ir.Size[1])
	}

	width := l.base.resolveAxis(l.base.widthMod, l.base.widthVal, contentW+padding[0]+padding[2], constraints.Min[0], constraints.Max[0])
	height := l.base.resolveAxis(l.base.heightMod, l.base.heightVal, contentH+padding[1]+padding[3], constraints.Min[1], constraints.Max[1])
	l.base.SetSize(width, height)

	return LayoutResult{Size: [2]int{width, height}}
}

const iconGap = 4

// Hovered reports whether the mouse is over the button's last laid out box.
func (l *UIButton) Hovered(ctx *Context) bool {
	return contains(l.base.Rect(), ctx.Mouse)
}

// Click invokes the click handler if p hits the button.
func (l *UIButton) Click(p core.Vec2) bool {
	if !contains(l.base.Rect(), p) || l.onClick == nil {
		return false
	}
	l.onClick()
	return true
}

func (l *UIButton) Draw(ctx *Context) {
	bg := l.base.color
	if l.Hovered(ctx) {
		bg = l.hoverBg
	}
	if bg[3] > 0 {
		ctx.Renderer.DrawRect(l.base.Rect(), bg)
	}

	inner := l.base.innerRect()
	x := inner.X
	if l.icon != nil {
		iw, ih := l.icon.base.Size()
		l.icon.base.SetPos(x, inner.Y+(inner.H-ih)/2)
		l.icon.Draw(ctx)
		x += iw + iconGap
	}
	_, lh := l.label.base.Size()
	l.label.base.SetPos(x, inner.Y+(inner.H-lh)/2)
	l.label.Draw(ctx)
}
