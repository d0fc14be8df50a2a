package game

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"neoncity/internal/city"
	"neoncity/internal/scene"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

type Renderer struct {
	// Building mesh program.
	meshProg      uint32
	meshUView     int32
	meshUProj     int32
	meshUFogColor int32
	meshUFogStart int32
	meshUFogEnd   int32

	// Per-building GPU meshes, keyed by building ID.
	meshes  map[uint64]*buildingMesh
	meshBuf []float32

	// Firework spark program.
	sparkProg        uint32
	sparkVAO         uint32
	sparkVBO         uint32
	sparkUView       int32
	sparkUProj       int32
	sparkUPointScale int32
	sparkUFogColor   int32
	sparkUFogStart   int32
	sparkUFogEnd     int32
	sparkBuf         []float32

	// Font/text rendering.
	fontTex      uint32
	textProg     uint32
	textVAO      uint32
	textVBO      uint32
	textURes     int32
	textUFontTex int32
	textBuf      []float32
}

func NewRenderer() (*Renderer, error) {
	meshProg, err := linkProgram(meshVertSrc, meshFragSrc)
	if err != nil {
		return nil, fmt.Errorf("mesh program: %w", err)
	}
	sparkProg, err := linkProgram(sparkVertSrc, sparkFragSrc)
	if err != nil {
		gl.DeleteProgram(meshProg)
		return nil, fmt.Errorf("spark program: %w", err)
	}

	r := &Renderer{
		meshProg:  meshProg,
		sparkProg: sparkProg,
		meshes:    make(map[uint64]*buildingMesh),
	}

	gl.UseProgram(meshProg)
	r.meshUView = gl.GetUniformLocation(meshProg, gl.Str("uView\x00"))
	r.meshUProj = gl.GetUniformLocation(meshProg, gl.Str("uProj\x00"))
	r.meshUFogColor = gl.GetUniformLocation(meshProg, gl.Str("uFogColor\x00"))
	r.meshUFogStart = gl.GetUniformLocation(meshProg, gl.Str("uFogStart\x00"))
	r.meshUFogEnd = gl.GetUniformLocation(meshProg, gl.Str("uFogEnd\x00"))

	// Spark VAO/VBO: streaming buffer for point sprites.
	// Each spark: 8 floats (x, y, z, size, r, g, b, a).
	var sVAO, sVBO uint32
	gl.GenVertexArrays(1, &sVAO)
	gl.GenBuffers(1, &sVBO)
	gl.BindVertexArray(sVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, sVBO)

	stride := int32(8 * 4)
	gl.BufferData(gl.ARRAY_BUFFER, scene.MaxParticles*int(stride), nil, gl.STREAM_DRAW)
	// aPos (vec3)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, glOffset(0))
	// aSize (float)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, stride, glOffset(3*4))
	// aColor (vec4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(4*4))
	r.sparkVAO = sVAO
	r.sparkVBO = sVBO

	gl.UseProgram(sparkProg)
	r.sparkUView = gl.GetUniformLocation(sparkProg, gl.Str("uView\x00"))
	r.sparkUProj = gl.GetUniformLocation(sparkProg, gl.Str("uProj\x00"))
	r.sparkUPointScale = gl.GetUniformLocation(sparkProg, gl.Str("uPointScale\x00"))
	r.sparkUFogColor = gl.GetUniformLocation(sparkProg, gl.Str("uFogColor\x00"))
	r.sparkUFogStart = gl.GetUniformLocation(sparkProg, gl.Str("uFogStart\x00"))
	r.sparkUFogEnd = gl.GetUniformLocation(sparkProg, gl.Str("uFogEnd\x00"))

	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.Enable(gl.MULTISAMPLE)

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	r.ReleaseAll()
	for _, id := range []uint32{r.sparkVBO, r.textVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.sparkVAO, r.textVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.meshProg, r.sparkProg, r.textProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
	if r.fontTex != 0 {
		gl.DeleteTextures(1, &r.fontTex)
	}
}

// BeginFrame clears to the theme background and enables depth testing.
func (r *Renderer) BeginFrame(bg city.Color, fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.ClearColor(bg.R, bg.G, bg.B, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)
}

// SetCamera uploads view, projection and fog to the 3D programs.
func (r *Renderer) SetCamera(cam scene.OrbitCamera, bg city.Color, fbW, fbH int) {
	view := cam.View()
	proj := cam.Projection(fbW, fbH)
	fogStart, fogEnd := cam.Fog()
	// Pixels per world unit at eye distance 1.
	pointScale := float32(fbH) * 0.5 * proj[5]

	setView(r.meshProg, r.meshUView, r.meshUProj, view, proj)
	setFog(r.meshUFogColor, r.meshUFogStart, r.meshUFogEnd, bg, fogStart, fogEnd)

	setView(r.sparkProg, r.sparkUView, r.sparkUProj, view, proj)
	setFog(r.sparkUFogColor, r.sparkUFogStart, r.sparkUFogEnd, bg, fogStart, fogEnd)
	gl.Uniform1f(r.sparkUPointScale, pointScale)
}

// setView binds prog and uploads its camera matrices.
func setView(prog uint32, uView, uProj int32, view, proj mgl32.Mat4) {
	gl.UseProgram(prog)
	gl.UniformMatrix4fv(uView, 1, false, &view[0])
	gl.UniformMatrix4fv(uProj, 1, false, &proj[0])
}

// setFog fades towards bg between start and end on the bound program.
func setFog(uColor, uStart, uEnd int32, bg city.Color, start, end float32) {
	gl.Uniform3f(uColor, bg.R, bg.G, bg.B)
	gl.Uniform1f(uStart, start)
	gl.Uniform1f(uEnd, end)
}
