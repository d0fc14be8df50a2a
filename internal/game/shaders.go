package game

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Mesh vertex shader: world-space position + solid colour per vertex.
const meshVertSrc = `#version 410 core

layout(location = 0) in vec3 aPos;
layout(location = 1) in vec4 aColor;

uniform mat4 uView;
uniform mat4 uProj;

out vec4 vColor;
out float vDist;

void main() {
    vec4 eye = uView * vec4(aPos, 1.0);
    vDist = length(eye.xyz);
    vColor = aColor;
    gl_Position = uProj * eye;
}
` + "\x00"

// Mesh fragment shader: linear fog towards the theme background.
const meshFragSrc = `#version 410 core

uniform vec3 uFogColor;
uniform float uFogStart;
uniform float uFogEnd;

in vec4 vColor;
in float vDist;
out vec4 FragColor;

void main() {
    float f = clamp((uFogEnd - vDist) / (uFogEnd - uFogStart), 0.0, 1.0);
    FragColor = vec4(mix(uFogColor, vColor.rgb, f), vColor.a);
}
` + "\x00"

// Spark vertex shader: perspective-scaled point sprites.
const sparkVertSrc = `#version 410 core

layout(location = 0) in vec3 aPos;
layout(location = 1) in float aSize;
layout(location = 2) in vec4 aColor;

uniform mat4 uView;
uniform mat4 uProj;
uniform float uPointScale; // pixels per world unit at distance 1

out vec4 vColor;
out float vDist;

void main() {
    vec4 eye = uView * vec4(aPos, 1.0);
    vDist = length(eye.xyz);
    gl_Position = uProj * eye;
    gl_PointSize = max(1.0, 2.0 * aSize * uPointScale / max(0.1, -eye.z));
    vColor = aColor;
}
` + "\x00"

// Spark fragment shader: solid square, alpha from remaining life, fogged.
const sparkFragSrc = `#version 410 core

uniform vec3 uFogColor;
uniform float uFogStart;
uniform float uFogEnd;

in vec4 vColor;
in float vDist;
out vec4 FragColor;

void main() {
    float f = clamp((uFogEnd - vDist) / (uFogEnd - uFogStart), 0.0, 1.0);
    FragColor = vec4(mix(uFogColor, vColor.rgb, f), vColor.a);
}
` + "\x00"

// Text vertex shader: screen-space textured quads for font rendering.
const textVertSrc = `#version 410 core

layout(location = 0) in vec2 aPos;
layout(location = 1) in vec2 aUV;
layout(location = 2) in vec4 aColor;

uniform vec2 uResolution;

out vec2 vUV;
out vec4 vColor;

void main() {
    vec2 ndc = (aPos / uResolution) * 2.0 - 1.0;
    ndc.y = -ndc.y;
    gl_Position = vec4(ndc, 0.0, 1.0);
    vUV = aUV;
    vColor = aColor;
}
` + "\x00"

// Text fragment shader: font atlas sampling with color tint.
const textFragSrc = `#version 410 core

uniform sampler2D uFontTex;

in vec2 vUV;
in vec4 vColor;
out vec4 FragColor;

void main() {
    vec4 t = texture(uFontTex, vUV);
    if (t.a < 0.01) discard;
    FragColor = vec4(t.rgb * vColor.rgb, t.a * vColor.a);
}
` + "\x00"

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(buf))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile shader: %s", strings.TrimRight(buf, "\x00"))
	}
	return shader, nil
}

func linkProgram(vertSrc, fragSrc string) (uint32, error) {
	vs, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)

	gl.DetachShader(program, vs)
	gl.DetachShader(program, fs)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(program, logLen, nil, gl.Str(buf))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link program: %s", strings.TrimRight(buf, "\x00"))
	}
	return program, nil
}
