package core

import "github.com/hubastard/grove-atlasui/engine/colors"

// MapMode tells the backend how a vertex buffer map relates to draws already
// submitted this frame.
type MapMode int

const (
	// MapDiscard hands out fresh storage; previous contents are undefined.
	// Used for the first write of a frame or after an overflow reset.
	MapDiscard MapMode = iota
	// MapNoOverwrite keeps the storage. The caller only writes past ranges
	// that earlier draws consumed, so no synchronization is needed.
	MapNoOverwrite
)

func (m MapMode) String() string {
	switch m {
	case MapDiscard:
		return "discard"
	case MapNoOverwrite:
		return "no-overwrite"
	default:
		return "unknown"
	}
}

// ResourceDesc describes the fixed GPU resources created once at startup.
type ResourceDesc struct {
	VertexCapacity int      // vertices in the dynamic vertex buffer
	Indices        []uint16 // immutable index pattern, 6 per quad
	AtlasWidth     int
	AtlasHeight    int
	AtlasPixels    []byte // R8, row-major, top-left origin
}

// Backend is the GPU collaborator. There is a single pipeline configuration,
// so BindPipeline always binds everything.
//
// Only CreateResources reports errors. A failure in any other call means the
// device is gone and implementations panic.
type Backend interface {
	CreateResources(desc ResourceDesc) error
	// ResizeTarget releases the current render target (if any) and creates
	// one of the given size against the resized swapchain.
	ResizeTarget(w, h int)
	// MapVertices maps the whole vertex buffer for CPU writes. The returned
	// slice is valid until UnmapVertices.
	MapVertices(mode MapMode) []Vertex
	UnmapVertices()
	// UploadProjection rewrites the whole projection constant buffer.
	UploadProjection(m [16]float32)
	ClearTarget(color colors.Color)
	BindPipeline(viewport Rect)
	SetScissor(r Rect)
	// DrawIndexed draws indexCount indices of the shared index buffer
	// starting at firstIndex.
	DrawIndexed(indexCount, firstIndex int)
	Present(syncInterval int)
	Shutdown()
}
