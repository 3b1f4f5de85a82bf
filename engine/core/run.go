package core

import (
	"runtime"
	"time"
)

type (
	shutdowner interface{ Shutdown() }
	destroyer  interface{ Destroy() }
)

// Run wires the platform window + renderer and executes the main loop. Each
// iteration is one frame: Clear, App and layer rendering, Present.
func Run(app App, cfg Config, newWindow func(Config) (Window, error), newRenderer func(Window, Config) (Renderer, error)) error {
	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := cfg.Validate(); err != nil {
		return err
	}

	win, err := newWindow(cfg)
	if err != nil {
		return err
	}
	if d, ok := win.(destroyer); ok {
		defer d.Destroy()
	}

	rend, err := newRenderer(win, cfg)
	if err != nil {
		return err
	}
	if s, ok := rend.(shutdowner); ok {
		defer s.Shutdown()
	}

	eng := &Engine{Window: win, Renderer: rend, Input: NewInput(), start: time.Now()}
	win.SetEventCallback(func(ev Event) {
		eng.Input.Handle(ev)
		if eng.Layers.dispatch(eng, ev) {
			return
		}
		app.OnEvent(eng, ev)
	})

	app.OnStart(eng)
	eng.Layers.attach(eng)

	// Fixed-timestep (60 Hz) with interpolation
	const tick = time.Second / 60
	var (
		accum   time.Duration
		prev    = time.Now()
		maxStep = 10 // prevent spiral of death
	)

	for !win.ShouldClose() {
		now := time.Now()
		accum += now.Sub(prev)
		prev = now

		// Poll OS events (platform will emit via callbacks)
		win.PollEvents()

		steps := 0
		for accum >= tick && steps < maxStep {
			dt := float64(tick) / float64(time.Second)
			app.OnUpdate(eng, dt)
			eng.Layers.update(eng, dt)
			accum -= tick
			steps++
		}
		if steps == maxStep {
			accum = 0
		}
		alpha := float64(accum) / float64(tick)

		rend.Clear(cfg.ClearColor)
		app.OnRender(eng, alpha)
		eng.Layers.render(eng, alpha)
		rend.Present()
	}

	eng.Layers.detach(eng)
	app.OnShutdown(eng)
	Logger().Info("engine exit", "uptime", eng.Uptime())
	return nil
}
