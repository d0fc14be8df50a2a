package game

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"neoncity/internal/scene"
)

// DrawSparks renders firework particles as point sprites.
// Alpha-blended, depth-tested but not depth-written.
func (r *Renderer) DrawSparks(ps *scene.ParticleSystem) {
	r.sparkBuf = ps.ParticleRenderData(r.sparkBuf)
	if len(r.sparkBuf) == 0 {
		return
	}
	count := len(r.sparkBuf) / 8
	if count > scene.MaxParticles {
		count = scene.MaxParticles
	}

	gl.UseProgram(r.sparkProg)
	gl.BindVertexArray(r.sparkVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.sparkVBO)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.DepthMask(false)

	gl.BufferData(gl.ARRAY_BUFFER, count*8*4, gl.Ptr(r.sparkBuf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.POINTS, 0, int32(count))

	gl.DepthMask(true)
	gl.Disable(gl.BLEND)
	gl.BindVertexArray(0)
}
