package core

import (
	"time"

	"github.com/hubastard/grove-atlasui/engine/colors"
)

// App defines the application hooks.
type App interface {
	OnStart(e *Engine)                 // called once after window/renderer init
	OnUpdate(e *Engine, dt float64)    // called at a fixed tick (60Hz by default)
	OnRender(e *Engine, alpha float64) // between Renderer.Clear and Renderer.Present
	OnEvent(e *Engine, ev Event)       // input/window events
	OnShutdown(e *Engine)              // before exit
}

// Engine exposes core services to the App.
type Engine struct {
	Window   Window
	Renderer Renderer
	Input    *Input
	Layers   LayerStack
	start    time.Time
}

func (e *Engine) Uptime() time.Duration { return time.Since(e.start) }

// Surface reports the drawable client area in pixels.
type Surface interface {
	ClientSize() (w, h int)
}

// Window abstraction.
type Window interface {
	Surface
	PollEvents()
	SwapBuffers()
	SetSwapInterval(n int)
	ShouldClose() bool
	RequestClose()
	SetTitle(title string)
	SetEventCallback(cb func(Event))
}

// Renderer is the draw API a GUI calls every frame. Calls between Clear and
// Present are recorded in order; clip changes are ordering boundaries.
type Renderer interface {
	DrawRect(rect Rect, color colors.Color)
	DrawText(text string, pos Vec2, color colors.Color)
	DrawIcon(id int, rect Rect, color colors.Color)
	TextWidth(text string, maxLen int) int
	TextHeight() int
	SetClipRect(rect Rect)
	Clear(color colors.Color)
	Present()
}

// Event model (can expand over time).
type Event interface{ isEvent() }

type EventCloseRequested struct{}

func (EventCloseRequested) isEvent() {}

type EventResize struct{ W, H int }

func (EventResize) isEvent() {}

type EventKey struct {
	Key  Key
	Down bool
	Mods Mod
}

func (EventKey) isEvent() {}

type EventMouseMove struct{ X, Y float64 }

func (EventMouseMove) isEvent() {}

type EventScroll struct{ Xoff, Yoff float64 }

func (EventScroll) isEvent() {}

// Key/mod enums (subset; add as needed).
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeySpace
	KeyP
	KeyUp
	KeyDown
)

type Mod int

const (
	ModNone  Mod = 0
	ModShift Mod = 1 << 0
	ModCtrl  Mod = 1 << 1
	ModAlt   Mod = 1 << 2
	ModSuper Mod = 1 << 3
)
