package ui

import (
	"github.com/hubastard/grove-atlasui/engine/colors"
)

type Align int

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
	AlignStretch
)

type LayoutDirection int

const (
	LayoutHorizontal LayoutDirection = iota
	LayoutVertical
)

type UIView struct {
	Common[*UIView]
	gap        int
	mainAlign  Align
	crossAlign Align
	flow       LayoutDirection
	clip       bool
	scroll     int
}

func View(children ...UIElement) *UIView {
	v := &UIView{
		gap:        10,
		mainAlign:  AlignStart,
		crossAlign: AlignStart,
	}
	v.Common = NewCommon(v)
	v.Children(children...)
	return v
}

func (l *UIView) BgColor(color colors.Color) *UIView              { l.base.color = color; return l }
func (l *UIView) FlowDirection(direction LayoutDirection) *UIView { l.flow = direction; return l }
func (l *UIView) Gap(g int) *UIView                               { l.gap = g; return l }
func (l *UIView) AlignMain(a Align) *UIView                       { l.mainAlign = a; return l }
func (l *UIView) AlignCross(a Align) *UIView                      { l.crossAlign = a; return l }

// Clip restricts children to the view's padded box.
func (l *UIView) Clip(enabled bool) *UIView { l.clip = enabled; return l }

// Scroll shifts children up by offset pixels along the main axis.
func (l *UIView) Scroll(offset int) *UIView { l.scroll = offset; return l }

// ContentSize is the main-axis extent of the children from the last layout,
// gaps included.
func (l *UIView) ContentSize() int {
	total := 0
	for i, c := range l.base.children {
		w, h := c.Node().Size()
		if l.flow == LayoutVertical {
			total += h
		} else {
			total += w
		}
		if i > 0 {
			total += l.gap
		}
	}
	return total
}

// mainOf and crossOf pick the axis components of a size for this view's flow.
func (l *UIView) mainOf(s [2]int) int {
	if l.flow == LayoutVertical {
		return s[1]
	}
	return s[0]
}

func (l *UIView) crossOf(s [2]int) int {
	if l.flow == LayoutVertical {
		return s[0]
	}
	return s[1]
}

func (l *UIView) mainMode(b *Base) SizeMode {
	if l.flow == LayoutVertical {
		return b.heightMod
	}
	return b.widthMod
}

func (l *UIView) crossMode(b *Base) SizeMode {
	if l.flow == LayoutVertical {
		return b.widthMod
	}
	return b.heightMod
}

func (l *UIView) Layout(ctx *Context, constraints Constraints) LayoutResult {
	padding := l.base.Padding()
	padW, padH := padding[0]+padding[2], padding[1]+padding[3]

	childConstraints := Constraints{
		Max: [2]int{
			max(0, resolveConstraint(constraints.Max[0])-padW),
			max(0, resolveConstraint(constraints.Max[1])-padH),
		},
	}

	children := l.base.children
	childSizes := make([][2]int, len(children))
	var mainSum, maxCross, expandCount int
	for i, child := range children {
		size := child.Layout(ctx, childConstraints).Size
		maxCross = max(maxCross, l.crossOf(size))
		// expanding children only get what is left over
		if l.mainMode(child.Node()) == SizeModeExpand {
			expandCount++
			if l.flow == LayoutVertical {
				size[1] = 0
			} else {
				size[0] = 0
			}
		}
		childSizes[i] = size
		mainSum += l.mainOf(size)
	}

	gapTotal := 0
	if len(children) > 1 {
		gapTotal = l.gap * (len(children) - 1)
	}

	var outerWidth, outerHeight int
	if l.flow == LayoutVertical {
		outerHeight = l.base.resolveAxis(l.base.heightMod, l.base.heightVal, mainSum+gapTotal+padH, constraints.Min[1], constraints.Max[1])
		outerWidth = l.base.resolveAxis(l.base.widthMod, l.base.widthVal, maxCross+padW, constraints.Min[0], constraints.Max[0])
	} else {
		outerWidth = l.base.resolveAxis(l.base.widthMod, l.base.widthVal, mainSum+gapTotal+padW, constraints.Min[0], constraints.Max[0])
		outerHeight = l.base.resolveAxis(l.base.heightMod, l.base.heightVal, maxCross+padH, constraints.Min[1], constraints.Max[1])
	}
	l.base.SetSize(outerWidth, outerHeight)

	inner := l.base.innerRect()
	innerMain, innerCross := inner.W, inner.H
	if l.flow == LayoutVertical {
		innerMain, innerCross = inner.H, inner.W
	}

	// Distribute extra space along main axis to expanding children.
	if expandCount > 0 {
		share := max(0, innerMain-(mainSum+gapTotal)) / expandCount
		for i, child := range children {
			if l.mainMode(child.Node()) != SizeModeExpand {
				continue
			}
			if l.flow == LayoutVertical {
				childSizes[i][1] = share
			} else {
				childSizes[i][0] = share
			}
		}
	}

	mainUsed := gapTotal
	for i := range children {
		mainUsed += l.mainOf(childSizes[i])
	}
	remaining := max(0, innerMain-mainUsed)
	mainCursor := 0
	switch l.mainAlign {
	case AlignCenter:
		mainCursor = remaining / 2
	case AlignEnd:
		mainCursor = remaining
	}
	mainCursor -= l.scroll

	for i, child := range children {
		childBase := child.Node()
		main := l.mainOf(childSizes[i])
		cross := l.crossOf(childSizes[i])
		if l.crossAlign == AlignStretch || l.crossMode(childBase) == SizeModeExpand {
			cross = innerCross
		}
		cross = clamp(cross, 0, innerCross)

		crossPos := 0
		switch l.crossAlign {
		case AlignCenter:
			crossPos = (innerCross - cross) / 2
		case AlignEnd:
			crossPos = innerCross - cross
		}

		if l.flow == LayoutVertical {
			childBase.SetPos(inner.X+crossPos, inner.Y+mainCursor)
			childBase.SetSize(cross, main)
		} else {
			childBase.SetPos(inner.X+mainCursor, inner.Y+crossPos)
			childBase.SetSize(main, cross)
		}
		// children position their own subtrees during their Layout, so a
		// second pass fixes them up now that their origin is known
		if c, ok := child.(placer); ok {
			c.place(ctx)
		}
		mainCursor += main + l.gap
	}

	return LayoutResult{Size: l.base.size}
}

// placer is implemented by elements whose children depend on their final
// position and size.
type placer interface {
	place(ctx *Context)
}

func (l *UIView) place(ctx *Context) {
	w, h := l.base.Size()
	l.Layout(ctx, Constraints{Min: [2]int{w, h}, Max: [2]int{w, h}})
	l.base.SetSize(w, h)
}

func (l *UIView) Draw(ctx *Context) {
	if l.base.parent == nil {
		l.base.SetPos(ctx.Viewport.X, ctx.Viewport.Y)
		l.Layout(ctx, Constraints{Max: [2]int{ctx.Viewport.W, ctx.Viewport.H}})
	}

	if l.base.color[3] > 0 {
		ctx.Renderer.DrawRect(l.base.Rect(), l.base.color)
	}

	if l.clip {
		ctx.pushClip(l.base.innerRect())
	}
	for _, c := range l.base.children {
		c.Draw(ctx)
	}
	if l.clip {
		ctx.popClip()
	}
}
