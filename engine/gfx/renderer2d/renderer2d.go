// Package renderer2d batches GUI draw calls into textured quads over a single
// atlas and submits them to a core.Backend in as few draws as possible.
//
// Quads accumulate in a fixed vertex arena. The pending range [offset, cursor)
// is drawn when the arena fills up, when the clip rect changes, and at
// Present. The first upload of a frame maps the GPU buffer with discard; later
// uploads map with no-overwrite and only touch slots past what was drawn.
package renderer2d

import (
	"errors"
	"fmt"

	"github.com/hubastard/grove-atlasui/engine/atlas"
	"github.com/hubastard/grove-atlasui/engine/core"
)

const vertsPerQuad = 4
const indsPerQuad = 6

// ErrInvalidCapacity is returned by New for a capacity that is negative, not a
// multiple of 4, or beyond 16-bit index range.
var ErrInvalidCapacity = errors.New("renderer2d: invalid buffer capacity")

// Statistics captures the counts generated during a renderer frame.
type Statistics struct {
	Flushes     int // indexed draws issued
	Quads       int // quads drawn
	Overflows   int // flushes forced by a full arena
	ClipChanges int
	Resizes     int // render target rebuilds since New; not reset per frame
}

// TotalVertexCount reports vertices submitted this frame.
func (s Statistics) TotalVertexCount() int { return s.Quads * vertsPerQuad }

// TotalIndexCount reports indices submitted this frame.
func (s Statistics) TotalIndexCount() int { return s.Quads * indsPerQuad }

// Options configures New. The zero value is a default-sized arena over the
// built-in atlas, presented with vsync.
type Options struct {
	// Capacity is the arena size in vertices. Zero selects
	// core.DefaultBufferCapacity.
	Capacity int
	// NoVSync presents with interval 0 instead of waiting for vblank.
	NoVSync bool
	// Atlas defaults to atlas.Default().
	Atlas *atlas.Atlas
}

// Renderer implements core.Renderer. It is not safe for concurrent use.
type Renderer struct {
	backend core.Backend
	surface core.Surface
	atlas   *atlas.Atlas

	vertices []core.Vertex
	offset   int // start of the range not yet drawn
	cursor   int // next free slot

	width, height int // cached backbuffer size
	projection    [16]float32
	clip          core.Rect
	syncInterval  int

	stats     Statistics
	lastFrame Statistics
}

var _ core.Renderer = (*Renderer)(nil)

// New allocates the vertex arena, builds the index pattern and creates the
// backend resources. Any error is a startup failure.
func New(b core.Backend, s core.Surface, opts Options) (*Renderer, error) {
	capacity := opts.Capacity
	if capacity == 0 {
		capacity = core.DefaultBufferCapacity
	}
	if capacity < 0 || capacity%vertsPerQuad != 0 || capacity > core.MaxBufferCapacity {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}
	a := opts.Atlas
	if a == nil {
		a = atlas.Default()
	}

	sync := 1
	if opts.NoVSync {
		sync = 0
	}

	rd := &Renderer{
		backend:      b,
		surface:      s,
		atlas:        a,
		vertices:     make([]core.Vertex, capacity),
		syncInterval: sync,
	}

	err := b.CreateResources(core.ResourceDesc{
		VertexCapacity: capacity,
		Indices:        buildIndices(capacity),
		AtlasWidth:     a.Width,
		AtlasHeight:    a.Height,
		AtlasPixels:    a.Pixels,
	})
	if err != nil {
		return nil, fmt.Errorf("create backend resources: %w", err)
	}
	core.Logger().Debug("renderer2d ready", "capacity", capacity, "quads", capacity/vertsPerQuad)
	return rd, nil
}

// Shutdown releases the backend.
func (rd *Renderer) Shutdown() { rd.backend.Shutdown() }

// Stats returns the current frame statistics snapshot.
func (rd *Renderer) Stats() Statistics { return rd.stats }

// LastFrame returns the statistics of the most recently presented frame.
func (rd *Renderer) LastFrame() Statistics { return rd.lastFrame }

// Capacity is the arena size in vertices.
func (rd *Renderer) Capacity() int { return len(rd.vertices) }

// Offset is the first vertex slot not yet drawn.
func (rd *Renderer) Offset() int { return rd.offset }

// Cursor is the next free vertex slot.
func (rd *Renderer) Cursor() int { return rd.cursor }

// Projection returns the column-major matrix uploaded by the last Clear.
func (rd *Renderer) Projection() [16]float32 { return rd.projection }

// ClipRect returns the scissor rect currently in effect.
func (rd *Renderer) ClipRect() core.Rect { return rd.clip }

// Atlas returns the atlas quads are sampled from.
func (rd *Renderer) Atlas() *atlas.Atlas { return rd.atlas }

// buildIndices returns the shared pattern: two triangles (0,2,3) and (2,0,1)
// for every quad.
func buildIndices(capacity int) []uint16 {
	inds := make([]uint16, capacity/vertsPerQuad*indsPerQuad)
	for i, v := 0, 0; i < len(inds); i, v = i+indsPerQuad, v+vertsPerQuad {
		inds[i+0] = uint16(v + 0)
		inds[i+1] = uint16(v + 2)
		inds[i+2] = uint16(v + 3)

		inds[i+3] = uint16(v + 2)
		inds[i+4] = uint16(v + 0)
		inds[i+5] = uint16(v + 1)
	}
	return inds
}
