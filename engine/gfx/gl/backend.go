// Package glbackend implements core.Backend on OpenGL 3.3 core.
//
// The vertex buffer is mapped with MapBufferRange: a discard map invalidates
// the whole buffer so the driver can orphan it, a no-overwrite map is
// unsynchronized because the caller only writes past ranges already drawn.
package glbackend

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/grove-atlasui/engine/colors"
	"github.com/hubastard/grove-atlasui/engine/core"
)

const (
	projectionBinding = 0
	atlasUnit         = 0

	vertexSize     = int(unsafe.Sizeof(core.Vertex{}))
	projectionSize = 16 * 4
)

// ErrStorageLost reports that the driver discarded a mapped buffer's contents
// before they were drawn.
var ErrStorageLost = errors.New("gl: vertex buffer storage lost")

// Backend owns every GL object the renderer uses. All methods must be called
// on the thread that owns the window's context.
type Backend struct {
	win       core.Window
	shaderDir string

	program uint32
	vao     uint32
	vbo     uint32
	ebo     uint32
	ubo     uint32
	atlas   uint32
	sampler uint32

	vertexCap    int
	target       *renderTarget
	mapped       bool
	swapInterval int
}

// NewBackend binds to win's current GL context. Resources are created later
// by CreateResources.
func NewBackend(win core.Window, cfg core.Config) *Backend {
	return &Backend{
		win:          win,
		shaderDir:    cfg.ShaderDir,
		swapInterval: cfg.SyncInterval(),
	}
}

func (b *Backend) CreateResources(desc core.ResourceDesc) error {
	vs, fs, err := shaderSources(b.shaderDir)
	if err != nil {
		return fmt.Errorf("gl: load shaders: %w", err)
	}
	b.program, err = makeProgram(vs, fs)
	if err != nil {
		return fmt.Errorf("gl: %w", err)
	}

	block := gl.GetUniformBlockIndex(b.program, gl.Str("Projection\x00"))
	if block == gl.INVALID_INDEX {
		return fmt.Errorf("gl: program has no Projection block")
	}
	gl.UniformBlockBinding(b.program, block, projectionBinding)
	gl.UseProgram(b.program)
	gl.Uniform1i(gl.GetUniformLocation(b.program, gl.Str("uAtlas\x00")), atlasUnit)
	gl.UseProgram(0)

	// VAO captures the attribute layout and the element buffer.
	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	b.vertexCap = desc.VertexCapacity
	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, b.vertexCap*vertexSize, nil, gl.DYNAMIC_DRAW)

	var v core.Vertex
	stride := int32(vertexSize)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, unsafe.Offsetof(v.Pos))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, unsafe.Offsetof(v.UV))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 4, gl.UNSIGNED_BYTE, true, stride, unsafe.Offsetof(v.Col))

	gl.GenBuffers(1, &b.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(desc.Indices)*2, gl.Ptr(desc.Indices), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	gl.GenBuffers(1, &b.ubo)
	gl.BindBuffer(gl.UNIFORM_BUFFER, b.ubo)
	gl.BufferData(gl.UNIFORM_BUFFER, projectionSize, nil, gl.DYNAMIC_DRAW)
	gl.BindBuffer(gl.UNIFORM_BUFFER, 0)

	gl.GenTextures(1, &b.atlas)
	gl.BindTexture(gl.TEXTURE_2D, b.atlas)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.R8, int32(desc.AtlasWidth), int32(desc.AtlasHeight), 0,
		gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(desc.AtlasPixels))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAX_LEVEL, 0)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.GenSamplers(1, &b.sampler)
	gl.SamplerParameteri(b.sampler, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.SamplerParameteri(b.sampler, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.SamplerParameteri(b.sampler, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.SamplerParameteri(b.sampler, gl.TEXTURE_WRAP_T, gl.REPEAT)

	if e := gl.GetError(); e != gl.NO_ERROR {
		return fmt.Errorf("gl: create resources: error 0x%x", e)
	}
	core.Logger().Info("gl resources created",
		"vertices", b.vertexCap,
		"indices", len(desc.Indices),
		"atlas", fmt.Sprintf("%dx%d", desc.AtlasWidth, desc.AtlasHeight))
	return nil
}

func (b *Backend) ResizeTarget(w, h int) {
	if b.target != nil {
		b.target.release()
		b.target = nil
	}
	t, err := newRenderTarget(w, h)
	if err != nil {
		panic(fmt.Errorf("gl: resize target: %w", err))
	}
	b.target = t
	core.Logger().Debug("render target resized", "w", w, "h", h)
}

func mapFlags(mode core.MapMode) uint32 {
	if mode == core.MapNoOverwrite {
		return gl.MAP_WRITE_BIT | gl.MAP_UNSYNCHRONIZED_BIT
	}
	return gl.MAP_WRITE_BIT | gl.MAP_INVALIDATE_BUFFER_BIT
}

func (b *Backend) MapVertices(mode core.MapMode) []core.Vertex {
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	ptr := gl.MapBufferRange(gl.ARRAY_BUFFER, 0, b.vertexCap*vertexSize, mapFlags(mode))
	if ptr == nil {
		panic(fmt.Errorf("gl: map vertex buffer (%s): error 0x%x", mode, gl.GetError()))
	}
	b.mapped = true
	return unsafe.Slice((*core.Vertex)(ptr), b.vertexCap)
}

func (b *Backend) UnmapVertices() {
	if !b.mapped {
		return
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	ok := gl.UnmapBuffer(gl.ARRAY_BUFFER)
	b.mapped = false
	if err := unmapResult(ok); err != nil {
		panic(err)
	}
}

// unmapResult turns UnmapBuffer's result into an error. A false result means
// the written vertices are undefined, which is treated as device loss.
func unmapResult(ok bool) error {
	if ok {
		return nil
	}
	return ErrStorageLost
}

func (b *Backend) UploadProjection(m [16]float32) {
	gl.BindBuffer(gl.UNIFORM_BUFFER, b.ubo)
	ptr := gl.MapBufferRange(gl.UNIFORM_BUFFER, 0, projectionSize, gl.MAP_WRITE_BIT|gl.MAP_INVALIDATE_BUFFER_BIT)
	if ptr == nil {
		panic(fmt.Errorf("gl: map projection buffer: error 0x%x", gl.GetError()))
	}
	copy(unsafe.Slice((*float32)(ptr), 16), m[:])
	gl.UnmapBuffer(gl.UNIFORM_BUFFER)
	gl.BindBuffer(gl.UNIFORM_BUFFER, 0)
}

func (b *Backend) ClearTarget(c colors.Color) {
	gl.BindFramebuffer(gl.FRAMEBUFFER, b.target.fbo)
	gl.Disable(gl.SCISSOR_TEST)
	gl.ClearColor(c.Floats())
	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.Enable(gl.SCISSOR_TEST)
}

func (b *Backend) BindPipeline(viewport core.Rect) {
	gl.BindFramebuffer(gl.FRAMEBUFFER, b.target.fbo)
	gl.UseProgram(b.program)
	gl.BindVertexArray(b.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BindBufferBase(gl.UNIFORM_BUFFER, projectionBinding, b.ubo)

	gl.ActiveTexture(gl.TEXTURE0 + atlasUnit)
	gl.BindTexture(gl.TEXTURE_2D, b.atlas)
	gl.BindSampler(atlasUnit, b.sampler)

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.BLEND)
	gl.BlendEquation(gl.FUNC_ADD)
	gl.BlendFuncSeparate(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA, gl.ONE, gl.ZERO)

	gl.Viewport(int32(viewport.X), int32(viewport.Y), int32(viewport.W), int32(viewport.H))
	gl.Enable(gl.SCISSOR_TEST)
	b.SetScissor(viewport)
}

// SetScissor takes a top-left origin rect; GL counts from the bottom.
func (b *Backend) SetScissor(r core.Rect) {
	x, y, w, h := scissorBox(r, b.target.h)
	gl.Scissor(x, y, w, h)
}

func scissorBox(r core.Rect, targetH int) (x, y, w, h int32) {
	w, h = int32(max(r.W, 0)), int32(max(r.H, 0))
	return int32(r.X), int32(targetH - (r.Y + int(h))), w, h
}

func (b *Backend) DrawIndexed(indexCount, firstIndex int) {
	if indexCount == 0 {
		return
	}
	gl.DrawElementsWithOffset(gl.TRIANGLES, int32(indexCount), gl.UNSIGNED_SHORT, uintptr(firstIndex*2))
}

func (b *Backend) Present(syncInterval int) {
	b.target.blit()
	if syncInterval != b.swapInterval {
		b.win.SetSwapInterval(syncInterval)
		b.swapInterval = syncInterval
	}
	b.win.SwapBuffers()
}

func (b *Backend) Shutdown() {
	if b.mapped {
		b.UnmapVertices()
	}
	if b.target != nil {
		b.target.release()
		b.target = nil
	}
	if b.sampler != 0 {
		gl.DeleteSamplers(1, &b.sampler)
	}
	if b.atlas != 0 {
		gl.DeleteTextures(1, &b.atlas)
	}
	for _, buf := range []*uint32{&b.ubo, &b.ebo, &b.vbo} {
		if *buf != 0 {
			gl.DeleteBuffers(1, buf)
			*buf = 0
		}
	}
	if b.vao != 0 {
		gl.DeleteVertexArrays(1, &b.vao)
	}
	if b.program != 0 {
		gl.DeleteProgram(b.program)
	}
	b.sampler, b.atlas, b.vao, b.program = 0, 0, 0, 0
	core.Logger().Info("gl resources released")
}
