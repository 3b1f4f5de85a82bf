package ui

import (
	"strings"

	"github.com/hubastard/grove-atlasui/engine/colors"
	"github.com/hubastard/grove-atlasui/engine/core"
	"github.com/hubastard/grove-atlasui/engine/text"
)

type UILabel struct {
	Common[*UILabel]
	text     string
	maxLen   int
	wrap     bool
	maxWidth int
	lines    []string
}

func Label(str string) *UILabel {
	l := &UILabel{text: str, maxLen: -1}
	l.Common = NewCommon(l)
	l.base.color = colors.White
	return l
}

func (l *UILabel) Color(c colors.Color) *UILabel { l.base.color = c; return l }
func (l *UILabel) Wrap(enabled bool) *UILabel    { l.wrap = enabled; return l }

// MaxLen limits the label to n glyphs; negative means no limit.
func (l *UILabel) MaxLen(n int) *UILabel { l.maxLen = n; return l }

func (l *UILabel) MaxWidth(width int) *UILabel {
	l.maxWidth = width
	if width > 0 {
		l.wrap = true
	}
	return l
}

// Text is the label string after MaxLen truncation.
func (l *UILabel) Text() string { return text.Truncate(l.text, l.maxLen) }

func (l *UILabel) Layout(ctx *Context, constraints Constraints) LayoutResult {
	padding := l.base.Padding()
	effectiveMax := constraints.Max[0]
	if l.maxWidth > 0 && (effectiveMax == 0 || l.maxWidth < effectiveMax) {
		effectiveMax = l.maxWidth
	}
	if effectiveMax > 0 {
		effectiveMax = max(0, effectiveMax-padding[0]-padding[2])
	}

	contentW, contentH := l.measureText(ctx.Renderer, effectiveMax)

	width := l.base.resolveAxis(l.base.widthMod, l.base.widthVal, contentW+padding[0]+padding[2], constraints.Min[0], constraints.Max[0])
	height := l.base.resolveAxis(l.base.heightMod, l.base.heightVal, contentH+padding[1]+padding[3], constraints.Min[1], constraints.Max[1])

	l.base.SetSize(width, height)
	return LayoutResult{Size: [2]int{width, height}}
}

func (l *UILabel) Draw(ctx *Context) {
	if len(l.lines) == 0 || l.base.color[3] == 0 {
		return
	}
	x, y := l.base.innerPosition()
	lineH := ctx.Renderer.TextHeight()
	for i, line := range l.lines {
		ctx.Renderer.DrawText(line, core.Vec2{X: x, Y: y + i*lineH}, l.base.color)
	}
}

// measureText splits the label into lines no wider than maxWidth (when
// wrapping) and returns the widest line and the total height.
func (l *UILabel) measureText(r core.Renderer, maxWidth int) (int, int) {
	l.lines = l.lines[:0]
	s := l.Text()
	if s == "" {
		return 0, 0
	}
	width := func(s string) int { return r.TextWidth(s, -1) }
	lineH := r.TextHeight()

	if !l.wrap || maxWidth <= 0 {
		l.lines = append(l.lines, strings.Split(s, "\n")...)
	} else {
		spaceWidth := width(" ")
		for _, raw := range strings.Split(s, "\n") {
			words := strings.Fields(raw)
			if len(words) == 0 {
				l.lines = append(l.lines, "")
				continue
			}

			current := words[0]
			currentWidth := width(current)
			for _, word := range words[1:] {
				wordWidth := width(word)
				if currentWidth+spaceWidth+wordWidth > maxWidth {
					l.lines = append(l.lines, current)
					current = word
					currentWidth = wordWidth
				} else {
					current += " " + word
					currentWidth += spaceWidth + wordWidth
				}
			}
			l.lines = append(l.lines, current)
		}
	}

	maxLineWidth := 0
	for _, line := range l.lines {
		maxLineWidth = max(maxLineWidth, width(line))
	}
	return maxLineWidth, lineH * len(l.lines)
}
