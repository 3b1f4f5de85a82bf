package core

// Layer is one slice of a frame. Layers render bottom to top, so later layers
// draw over earlier ones; events travel top to bottom until handled.
type Layer interface {
	OnAttach(e *Engine)
	OnDetach(e *Engine)
	OnUpdate(e *Engine, dt float64)
	OnRender(e *Engine, alpha float64)
	OnEvent(e *Engine, ev Event) bool // return true if handled; propagation stops
}

type LayerStack struct{ list []Layer }

func (ls *LayerStack) Push(l Layer) { ls.list = append(ls.list, l) }

func (ls *LayerStack) Pop() (Layer, bool) {
	if len(ls.list) == 0 {
		return nil, false
	}
	i := len(ls.list) - 1
	l := ls.list[i]
	ls.list[i] = nil
	ls.list = ls.list[:i]
	return l, true
}

func (ls *LayerStack) Len() int { return len(ls.list) }

func (ls *LayerStack) attach(e *Engine) {
	for _, l := range ls.list {
		l.OnAttach(e)
	}
}

func (ls *LayerStack) detach(e *Engine) {
	for i := len(ls.list) - 1; i >= 0; i-- {
		ls.list[i].OnDetach(e)
	}
}

func (ls *LayerStack) update(e *Engine, dt float64) {
	for _, l := range ls.list {
		l.OnUpdate(e, dt)
	}
}

func (ls *LayerStack) render(e *Engine, alpha float64) {
	for _, l := range ls.list {
		l.OnRender(e, alpha)
	}
}

// dispatch reports whether a layer consumed ev.
func (ls *LayerStack) dispatch(e *Engine, ev Event) bool {
	for i := len(ls.list) - 1; i >= 0; i-- {
		if ls.list[i].OnEvent(e, ev) {
			return true
		}
	}
	return false
}
