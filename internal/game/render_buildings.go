package game

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"neoncity/internal/city"
)

// Vertex layout: pos(3) + color(4).
const meshStride = 7

// buildingMesh is the uploaded geometry of one building at a given revision.
type buildingMesh struct {
	vao, vbo    uint32
	revision    uint64
	bodyVerts   int32
	windowVerts int32
}

func (m *buildingMesh) free() {
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteVertexArrays(1, &m.vao)
}

// appendQuads triangulates quads (0,1,2)(0,2,3) into buf.
func appendQuads(buf []float32, quads []city.Quad) []float32 {
	for _, q := range quads {
		c := q.Color
		for _, i := range [6]int{0, 1, 2, 0, 2, 3} {
			v := q.V[i]
			buf = append(buf, v[0], v[1], v[2], c.R, c.G, c.B, c.A)
		}
	}
	return buf
}

// upload (re)builds the mesh for b when its revision moved on.
func (r *Renderer) upload(b *city.Building) *buildingMesh {
	m := r.meshes[b.ID]
	if m != nil && m.revision == b.Revision() {
		return m
	}
	if m == nil {
		m = &buildingMesh{}
		gl.GenVertexArrays(1, &m.vao)
		gl.GenBuffers(1, &m.vbo)
		gl.BindVertexArray(m.vao)
		gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
		stride := int32(meshStride * 4)
		gl.EnableVertexAttribArray(0) // aPos
		gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, glOffset(0))
		gl.EnableVertexAttribArray(1) // aColor
		gl.VertexAttribPointer(1, 4, gl.FLOAT, false, stride, glOffset(3*4))
		r.meshes[b.ID] = m
	} else {
		gl.BindVertexArray(m.vao)
		gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	}

	g := b.EmitGeometry()
	buf := appendQuads(r.meshBuf[:0], g.Body)
	m.bodyVerts = int32(len(g.Body) * 6)
	buf = appendQuads(buf, g.Windows)
	m.windowVerts = int32(len(g.Windows) * 6)
	gl.BufferData(gl.ARRAY_BUFFER, len(buf)*4, gl.Ptr(buf), gl.STATIC_DRAW)
	r.meshBuf = buf
	m.revision = b.Revision()
	return m
}

// DrawCity draws every building body, then all windows pulled towards the
// camera with a polygon offset so they win the depth test against the wall.
func (r *Renderer) DrawCity(c *city.City) {
	if c == nil {
		return
	}
	gl.UseProgram(r.meshProg)

	for _, b := range c.Buildings {
		m := r.upload(b)
		gl.BindVertexArray(m.vao)
		gl.DrawArrays(gl.TRIANGLES, 0, m.bodyVerts)
	}

	gl.Enable(gl.POLYGON_OFFSET_FILL)
	gl.PolygonOffset(-1, -1)
	for _, b := range c.Buildings {
		m := r.meshes[b.ID]
		if m.windowVerts == 0 {
			continue
		}
		gl.BindVertexArray(m.vao)
		gl.DrawArrays(gl.TRIANGLES, m.bodyVerts, m.windowVerts)
	}
	gl.Disable(gl.POLYGON_OFFSET_FILL)
	gl.BindVertexArray(0)
}

// Release frees cached meshes for buildings that no longer exist.
func (r *Renderer) Release(ids []uint64) {
	for _, id := range ids {
		if m, ok := r.meshes[id]; ok {
			m.free()
			delete(r.meshes, id)
		}
	}
}

func (r *Renderer) ReleaseAll() {
	for id, m := range r.meshes {
		m.free()
		delete(r.meshes, id)
	}
}

// MeshCount reports how many building meshes are resident.
func (r *Renderer) MeshCount() int { return len(r.meshes) }
