// Package ui is a small retained widget tree laid out in integer pixels and
// drawn through core.Renderer.
package ui

import (
	"math"

	"github.com/hubastard/grove-atlasui/engine/colors"
	"github.com/hubastard/grove-atlasui/engine/core"
)

type SizeMode int

const (
	SizeModeFit SizeMode = iota
	SizeModeFixed
	SizeModeExpand
)

// Constraints bound a layout pass. A zero Max means unbounded.
type Constraints struct {
	Min [2]int
	Max [2]int
}

type LayoutResult struct {
	Size [2]int
}

type UIElement interface {
	Node() *Base
	Layout(ctx *Context, constraints Constraints) LayoutResult
	Draw(ctx *Context)
}

type Base struct {
	parent    UIElement
	children  []UIElement
	position  [2]int
	size      [2]int
	color     colors.Color
	widthMod  SizeMode
	heightMod SizeMode
	widthVal  int
	heightVal int
	padding   [4]int // left, top, right, bottom
}

func (b *Base) Parent() UIElement       { return b.parent }
func (b *Base) Children() []UIElement   { return b.children }
func (b *Base) Pos() (x, y int)         { return b.position[0], b.position[1] }
func (b *Base) Size() (w, h int)        { return b.size[0], b.size[1] }
func (b *Base) SetPos(x, y int)         { b.position = [2]int{x, y} }
func (b *Base) SetSize(w, h int)        { b.size = [2]int{w, h} }
func (b *Base) SetColor(c colors.Color) { b.color = c }
func (b *Base) Padding() [4]int         { return b.padding }
func (b *Base) SetPadding(l, t, r, btm int) {
	b.padding = [4]int{l, t, r, btm}
}

// Rect is the element's outer box after layout.
func (b *Base) Rect() core.Rect {
	return core.Rect{X: b.position[0], Y: b.position[1], W: b.size[0], H: b.size[1]}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func resolveConstraint(max int) int {
	if max == 0 {
		return math.MaxInt32
	}
	return max
}

func (b *Base) resolveAxis(mode SizeMode, fixed, content, min, max int) int {
	switch mode {
	case SizeModeFixed:
		if fixed > 0 {
			return clamp(fixed, min, resolveConstraint(max))
		}
		return clamp(content, min, resolveConstraint(max))
	case SizeModeExpand:
		return clamp(resolveConstraint(max), min, resolveConstraint(max))
	default:
		return clamp(content, min, resolveConstraint(max))
	}
}

func (b *Base) innerPosition() (int, int) {
	return b.position[0] + b.padding[0], b.position[1] + b.padding[1]
}

func (b *Base) innerRect() core.Rect {
	x, y := b.innerPosition()
	return core.Rect{
		X: x,
		Y: y,
		W: max(0, b.size[0]-b.padding[0]-b.padding[2]),
		H: max(0, b.size[1]-b.padding[1]-b.padding[3]),
	}
}

// ------ Helper ------

type Common[T any] struct {
	owner T
	base  Base
}

func NewCommon[T any](owner T) Common[T] {
	return Common[T]{owner: owner}
}

func (c *Common[T]) Node() *Base              { return &c.base }
func (c *Common[T]) Position(x, y int) T      { c.base.SetPos(x, y); return c.owner }
func (c *Common[T]) Color(col colors.Color) T { c.base.SetColor(col); return c.owner }

func (c *Common[T]) WidthFit() T {
	c.base.widthMod = SizeModeFit
	return c.owner
}

func (c *Common[T]) WidthFixed(width int) T {
	c.base.widthMod = SizeModeFixed
	c.base.widthVal = width
	return c.owner
}

func (c *Common[T]) WidthExpand() T {
	c.base.widthMod = SizeModeExpand
	return c.owner
}

func (c *Common[T]) HeightFit() T {
	c.base.heightMod = SizeModeFit
	return c.owner
}

func (c *Common[T]) HeightFixed(height int) T {
	c.base.heightMod = SizeModeFixed
	c.base.heightVal = height
	return c.owner
}

func (c *Common[T]) HeightExpand() T {
	c.base.heightMod = SizeModeExpand
	return c.owner
}

func (c *Common[T]) Padding(all int) T {
	c.base.SetPadding(all, all, all, all)
	return c.owner
}

func (c *Common[T]) Padding2(horizontal, vertical int) T {
	c.base.SetPadding(horizontal, vertical, horizontal, vertical)
	return c.owner
}

func (c *Common[T]) Padding4(left, top, right, bottom int) T {
	c.base.SetPadding(left, top, right, bottom)
	return c.owner
}

func (c *Common[T]) Children(kids ...UIElement) T {
	c.base.children = append(c.base.children, kids...)
	for _, k := range kids {
		k.Node().parent = any(c.owner).(UIElement)
	}
	return c.owner
}
