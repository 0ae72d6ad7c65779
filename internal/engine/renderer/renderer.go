// Package renderer provides OpenGL rendering functionality.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/cylview/internal/engine/shader"
	"github.com/Faultbox/cylview/internal/logger"
	"github.com/Faultbox/cylview/pkg/mesh"
)

// Part ids passed to the shader's "part" uniform.
const (
	PartBottom int32 = 1
	PartSide   int32 = 2
	PartTop    int32 = 3
)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	FOVDegrees float32
	Near       float32
	Far        float32
	ClearColor [3]float32
}

// Material holds surface lighting parameters.
type Material struct {
	Ka, Kd, Ks    float32
	AmbientColor  mgl32.Vec3
	DiffuseColor  mgl32.Vec3
	SpecularColor mgl32.Vec3
	CapColor      mgl32.Vec4
	SideColor     mgl32.Vec4
}

// drawPart is one index buffer of the uploaded mesh.
type drawPart struct {
	ebo   uint32
	mode  uint32
	count int32
	id    int32
	color mgl32.Vec4
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config  Config
	program *shader.Program
	log     *zap.Logger

	vao   uint32
	vbo   uint32
	parts []drawPart
}

// New creates a new renderer and compiles the given shader sources.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config, vertexSrc, fragmentSrc string) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		log:    logger.Named("renderer"),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	r.log.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(cfg.ClearColor[0], cfg.ClearColor[1], cfg.ClearColor[2], 1.0)

	var err error
	r.program, err = shader.NewProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}
	r.log.Debug("shader program created", zap.Uint32("program", r.program.ID))

	r.program.Use()
	r.program.SetMat4("model", mgl32.Ident4())
	r.Resize(cfg.Width, cfg.Height)

	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	r.releaseMesh()
	if r.program != nil {
		r.program.Delete()
	}
}

// UploadMesh uploads the cylinder's vertex and index buffers, replacing any
// previously uploaded mesh.
func (r *Renderer) UploadMesh(c *mesh.Cylinder, m Material) error {
	r.releaseMesh()

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(c.Positions)*4, unsafe.Pointer(&c.Positions[0]), gl.STATIC_DRAW)

	// Position attribute (location = 0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, nil)
	gl.EnableVertexAttribArray(0)

	colors := []mgl32.Vec4{m.CapColor, m.SideColor, m.CapColor}
	ids := []int32{PartBottom, PartSide, PartTop}

	for i, buf := range c.Indices.Parts() {
		p := drawPart{
			mode:  glMode(buf.Primitive),
			count: int32(len(buf.Indices)),
			id:    ids[i],
			color: colors[i],
		}
		gl.GenBuffers(1, &p.ebo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, p.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(buf.Indices)*4, unsafe.Pointer(&buf.Indices[0]), gl.STATIC_DRAW)
		r.parts = append(r.parts, p)
	}

	if err := checkError("mesh upload"); err != nil {
		return err
	}

	r.program.Use()
	if err := r.program.Validate(); err != nil {
		r.log.Warn("shader program validation failed", zap.Error(err))
	}

	gl.BindVertexArray(0)

	r.log.Debug("mesh uploaded",
		zap.Uint32("vao", r.vao),
		zap.Int("vertices", c.VertexCount()),
		zap.Int("bottom", len(c.Indices.Bottom.Indices)),
		zap.Int("middle", len(c.Indices.Middle.Indices)),
		zap.Int("top", len(c.Indices.Top.Indices)),
	)
	return nil
}

func (r *Renderer) releaseMesh() {
	for i := range r.parts {
		gl.DeleteBuffers(1, &r.parts[i].ebo)
	}
	r.parts = r.parts[:0]
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
		r.vbo = 0
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		r.vao = 0
	}
}

// SetMaterial uploads the lighting coefficients and colors.
func (r *Renderer) SetMaterial(m Material) {
	r.program.Use()
	r.program.SetFloat("Ka", m.Ka)
	r.program.SetFloat("Kd", m.Kd)
	r.program.SetFloat("Ks", m.Ks)
	r.program.SetVec3("ambientColor", m.AmbientColor)
	r.program.SetVec3("diffuseColor", m.DiffuseColor)
	r.program.SetVec3("specularColor", m.SpecularColor)
}

// SetLight uploads the light position.
func (r *Renderer) SetLight(position mgl32.Vec3) {
	r.program.Use()
	r.program.SetVec3("lightPosition", position)
}

// SetView uploads the view matrix and the eye position.
func (r *Renderer) SetView(view mgl32.Mat4, eye mgl32.Vec3) {
	r.program.Use()
	r.program.SetMat4("view", view)
	r.program.SetVec3("viewDirection", eye)
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return // minimized
	}
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))

	r.program.Use()
	r.program.SetMat4("projection", Projection(r.config))

	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// DrawMesh draws the uploaded mesh: bottom fan, side strip, top fan.
func (r *Renderer) DrawMesh() {
	r.program.Use()
	gl.BindVertexArray(r.vao)
	for _, p := range r.parts {
		r.program.SetVec4("objectColor", p.color)
		r.program.SetInt("part", p.id)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, p.ebo)
		gl.DrawElements(p.mode, p.count, gl.UNSIGNED_INT, nil)
	}
	gl.BindVertexArray(0)
}

// End finishes the current frame.
func (r *Renderer) End() error {
	return checkError("frame")
}

// ReadPixels reads the current framebuffer as RGBA, bottom row first.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	return pixels, w, h
}

// Projection returns the perspective matrix for cfg's viewport.
func Projection(cfg Config) mgl32.Mat4 {
	aspect := float32(cfg.Width) / float32(cfg.Height)
	return mgl32.Perspective(mgl32.DegToRad(cfg.FOVDegrees), aspect, cfg.Near, cfg.Far)
}

func glMode(p mesh.Primitive) uint32 {
	switch p {
	case mesh.PrimitiveTriangleStrip:
		return gl.TRIANGLE_STRIP
	default:
		return gl.TRIANGLE_FAN
	}
}

func checkError(stage string) error {
	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("%s: OpenGL error 0x%04x", stage, code)
	}
	return nil
}
