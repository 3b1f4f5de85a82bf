package renderer2d

import (
	"testing"

	"github.com/hubastard/grove-atlasui/engine/colors"
	"github.com/hubastard/grove-atlasui/engine/core"
	"github.com/stretchr/testify/require"
)

// drawCall is one DrawIndexed as the backend saw it, with the vertices that
// were in GPU memory for its range at the time of the draw.
type drawCall struct {
	indexCount, firstIndex int
	scissor                core.Rect
	vertices               []core.Vertex
}

// mockBackend records every call and mirrors the GPU vertex buffer so tests
// can check what each draw actually read.
type mockBackend struct {
	t *testing.T

	desc     core.ResourceDesc
	gpu      []core.Vertex
	mapped   bool
	maps     []core.MapMode
	unmaps   int
	draws    []drawCall
	scissor  core.Rect
	scissors []core.Rect

	resizes     [][2]int
	projections [][16]float32
	clears      []colors.Color
	binds       []core.Rect
	presents    []int
	ops         []string
	shutdown    bool

	createErr error
}

func newMockBackend(t *testing.T) *mockBackend { return &mockBackend{t: t} }

func (m *mockBackend) CreateResources(desc core.ResourceDesc) error {
	m.ops = append(m.ops, "create")
	if m.createErr != nil {
		return m.createErr
	}
	m.desc = desc
	m.gpu = make([]core.Vertex, desc.VertexCapacity)
	return nil
}

func (m *mockBackend) ResizeTarget(w, h int) {
	m.ops = append(m.ops, "resize")
	m.resizes = append(m.resizes, [2]int{w, h})
}

func (m *mockBackend) MapVertices(mode core.MapMode) []core.Vertex {
	require.False(m.t, m.mapped, "vertex buffer mapped twice")
	m.ops = append(m.ops, "map:"+mode.String())
	m.mapped = true
	m.maps = append(m.maps, mode)
	if mode == core.MapDiscard {
		// a fresh allocation: old contents are gone
		for i := range m.gpu {
			m.gpu[i] = core.Vertex{}
		}
	}
	return m.gpu
}

func (m *mockBackend) UnmapVertices() {
	require.True(m.t, m.mapped, "unmap without map")
	m.ops = append(m.ops, "unmap")
	m.mapped = false
	m.unmaps++
}

func (m *mockBackend) UploadProjection(p [16]float32) {
	m.ops = append(m.ops, "projection")
	m.projections = append(m.projections, p)
}

func (m *mockBackend) ClearTarget(c colors.Color) {
	m.ops = append(m.ops, "clear")
	m.clears = append(m.clears, c)
}

func (m *mockBackend) BindPipeline(vp core.Rect) {
	m.ops = append(m.ops, "bind")
	m.binds = append(m.binds, vp)
	m.scissor = vp
}

func (m *mockBackend) SetScissor(r core.Rect) {
	m.ops = append(m.ops, "scissor")
	m.scissor = r
	m.scissors = append(m.scissors, r)
}

func (m *mockBackend) DrawIndexed(indexCount, firstIndex int) {
	require.False(m.t, m.mapped, "draw while mapped")
	m.ops = append(m.ops, "draw")
	first := firstIndex / indsPerQuad * vertsPerQuad
	n := indexCount / indsPerQuad * vertsPerQuad
	m.draws = append(m.draws, drawCall{
		indexCount: indexCount,
		firstIndex: firstIndex,
		scissor:    m.scissor,
		vertices:   append([]core.Vertex(nil), m.gpu[first:first+n]...),
	})
}

func (m *mockBackend) Present(syncInterval int) {
	m.ops = append(m.ops, "present")
	m.presents = append(m.presents, syncInterval)
}

func (m *mockBackend) Shutdown() { m.shutdown = true }

func (m *mockBackend) quadsDrawn() int {
	n := 0
	for _, d := range m.draws {
		n += d.indexCount / indsPerQuad
	}
	return n
}

type fakeSurface struct{ w, h int }

func (s *fakeSurface) ClientSize() (int, int) { return s.w, s.h }

func newTestRenderer(t *testing.T, capacity int) (*Renderer, *mockBackend, *fakeSurface) {
	t.Helper()
	b := newMockBackend(t)
	s := &fakeSurface{w: 800, h: 600}
	rd, err := New(b, s, Options{Capacity: capacity})
	require.NoError(t, err)
	return rd, b, s
}

// checkInvariant asserts the arena bookkeeping rules.
func checkInvariant(t *testing.T, rd *Renderer) {
	t.Helper()
	require.GreaterOrEqual(t, rd.offset, 0)
	require.LessOrEqual(t, rd.offset, rd.cursor)
	require.LessOrEqual(t, rd.cursor, len(rd.vertices))
	require.Zero(t, (rd.cursor-rd.offset)%vertsPerQuad)
}
