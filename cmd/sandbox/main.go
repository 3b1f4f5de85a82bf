package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/hubastard/grove-atlasui/engine/assets"
	"github.com/hubastard/grove-atlasui/engine/atlas"
	"github.com/hubastard/grove-atlasui/engine/core"
	glbackend "github.com/hubastard/grove-atlasui/engine/gfx/gl"
	"github.com/hubastard/grove-atlasui/engine/gfx/renderer2d"
	"github.com/hubastard/grove-atlasui/engine/platform"
	"github.com/hubastard/grove-atlasui/engine/profiler"
)

type App struct {
	lastFrame  time.Time
	tick       int
	r2d        *renderer2d.Renderer
	demo       *LayerDemo
	debugLayer *LayerDebug
}

func (a *App) OnStart(e *core.Engine) {
	profiler.Init(1 << 12)

	a.r2d = e.Renderer.(*renderer2d.Renderer)

	a.demo = &LayerDemo{}
	e.Layers.Push(a.demo)

	a.debugLayer = &LayerDebug{r2d: a.r2d}
	e.Layers.Push(a.debugLayer)
}

func (a *App) OnUpdate(e *core.Engine, dt float64) {
	a.tick++

	// Calculate frame duration
	now := time.Now()
	if !a.lastFrame.IsZero() {
		a.debugLayer.frameDuration = float32(now.Sub(a.lastFrame).Seconds() * 1000.0)
		a.debugLayer.tick = a.tick
	}
	a.lastFrame = now
}

func (a *App) OnRender(e *core.Engine, alpha float64) {}

func (a *App) OnEvent(e *core.Engine, ev core.Event) {
	switch v := ev.(type) {
	case core.EventKey:
		if v.Down && v.Key == core.KeyEscape {
			e.Window.RequestClose()
		}
	case core.EventCloseRequested:
		e.Window.RequestClose()
	}
}

func (a *App) OnShutdown(e *core.Engine) {
	s := a.r2d.LastFrame()
	core.Logger().Info("last frame", "flushes", s.Flushes, "quads", s.Quads, "resizes", s.Resizes)
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg := core.DefaultConfig()
	cfg.Title = "atlasui sandbox"
	if *configPath != "" {
		var err error
		if cfg, err = core.LoadConfig(*configPath); err != nil {
			log.Fatal(err)
		}
	}
	core.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	newWindow := func(cfg core.Config) (core.Window, error) {
		return platform.NewGLFWWindow(cfg)
	}
	newRenderer := func(win core.Window, cfg core.Config) (core.Renderer, error) {
		var a *atlas.Atlas
		if cfg.AtlasDir != "" {
			var err error
			if a, err = assets.LoadAtlas(cfg.AtlasDir); err != nil {
				return nil, err
			}
		}
		return renderer2d.New(glbackend.NewBackend(win, cfg), win, renderer2d.Options{
			Capacity: cfg.BufferCapacity,
			NoVSync:  !cfg.VSync,
			Atlas:    a,
		})
	}

	if err := core.Run(&App{}, cfg, newWindow, newRenderer); err != nil {
		log.Fatal(err)
	}
}
