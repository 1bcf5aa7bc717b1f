// This file is part of Phosphor.
//
// Phosphor is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Phosphor is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Phosphor.  If not, see <https://www.gnu.org/licenses/>.

package crt

import (
	"strings"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/tubeglow/phosphor/crt/shaders"
)

type shaderProgram interface {
	destroy()
	setAttributes(shaderEnvironment)
}

type shaderEnvironment struct {
	// the function used to trigger the shader program
	draw func()

	// the texture the shader will work with
	srcTextureID uint32

	// width and height of the source texture. optional depending on the
	// shader
	width  int32
	height int32
}

type shader struct {
	handle uint32

	// fragment
	texture int32 // uniform
}

func (sh *shader) destroy() {
	if sh.handle != 0 {
		gl.DeleteProgram(sh.handle)
		sh.handle = 0
	}
}

func (sh *shader) setAttributes(env shaderEnvironment) {
	gl.UseProgram(sh.handle)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, env.srcTextureID)
	gl.Uniform1i(sh.texture, 0)
	gl.BindSampler(0, 0) // Rely on combined texture/sampler state.
}

// compile and link shader programs.
func (sh *shader) createProgram(vertProgram string, fragProgram string) {
	sh.destroy()

	sh.handle = gl.CreateProgram()

	vertHandle := gl.CreateShader(gl.VERTEX_SHADER)
	fragHandle := gl.CreateShader(gl.FRAGMENT_SHADER)

	glShaderSource := func(handle uint32, source string) {
		csource, free := gl.Strs(source + "\x00")
		defer free()

		gl.ShaderSource(handle, 1, csource, nil)
	}

	// vertex and fragment glsl sources are embedded by the shaders package
	glShaderSource(vertHandle, vertProgram)
	glShaderSource(fragHandle, fragProgram)

	gl.CompileShader(vertHandle)
	if log := sh.getShaderCompileError(vertHandle); log != "" {
		panic(log)
	}

	gl.CompileShader(fragHandle)
	if log := sh.getShaderCompileError(fragHandle); log != "" {
		panic(log)
	}

	gl.AttachShader(sh.handle, vertHandle)
	gl.AttachShader(sh.handle, fragHandle)

	// fix attribute locations before linking so that the one quad VAO
	// serves every program
	gl.BindAttribLocation(sh.handle, 0, gl.Str("Position"+"\x00"))
	gl.BindAttribLocation(sh.handle, 1, gl.Str("UV"+"\x00"))

	gl.LinkProgram(sh.handle)

	// now that the shader program has linked we no longer need the
	// individual shader programs
	gl.DeleteShader(fragHandle)
	gl.DeleteShader(vertHandle)

	sh.texture = gl.GetUniformLocation(sh.handle, gl.Str("Texture"+"\x00"))
}

// getShaderCompileError returns the most recent error generated by the
// shader compiler.
func (sh *shader) getShaderCompileError(shader uint32) string {
	var isCompiled int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &isCompiled)
	if isCompiled == 0 {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		if logLength > 0 {
			// the maxLength includes the NULL character
			log := strings.Repeat("\x00", int(logLength+1))
			gl.GetShaderInfoLog(shader, logLength, &logLength, gl.Str(log))
			return log
		}
	}
	return ""
}

type colorShader struct {
	shader
}

func newColorShader(yflipped bool) *colorShader {
	sh := &colorShader{}
	if yflipped {
		sh.createProgram(string(shaders.YFlipVertexShader), string(shaders.ColorShader))
	} else {
		sh.createProgram(string(shaders.StraightVertexShader), string(shaders.ColorShader))
	}
	return sh
}

type pixelateShader struct {
	shader
	gridDim int32
}

func newPixelateShader(yflipped bool) *pixelateShader {
	sh := &pixelateShader{}
	if yflipped {
		sh.createProgram(string(shaders.YFlipVertexShader), string(shaders.PixelateShader))
	} else {
		sh.createProgram(string(shaders.StraightVertexShader), string(shaders.PixelateShader))
	}
	sh.gridDim = gl.GetUniformLocation(sh.handle, gl.Str("GridDim"+"\x00"))
	return sh
}

func (sh *pixelateShader) setAttributesArgs(env shaderEnvironment, gridW float32, gridH float32) {
	sh.shader.setAttributes(env)
	gl.Uniform2f(sh.gridDim, gridW, gridH)
}

// blurShader covers the three passes that share the plain Gaussian falloff:
// horizontal bloom, vertical bloom and horizontal scan. the fragment source
// decides tap count and direction; Hardness is the per-pass falloff scale.
type blurShader struct {
	shader
	sourceSize int32
	hardness   int32
}

func newBlurShader(fragProgram []byte) *blurShader {
	sh := &blurShader{}
	sh.createProgram(string(shaders.StraightVertexShader), string(fragProgram))
	sh.sourceSize = gl.GetUniformLocation(sh.handle, gl.Str("SourceSize"+"\x00"))
	sh.hardness = gl.GetUniformLocation(sh.handle, gl.Str("Hardness"+"\x00"))
	return sh
}

func (sh *blurShader) setAttributesArgs(env shaderEnvironment, hardness float32) {
	sh.shader.setAttributes(env)
	gl.Uniform2f(sh.sourceSize, float32(env.width), float32(env.height))
	gl.Uniform1f(sh.hardness, hardness)
}

// scanlineShader is the vertical scan pass. distinct from blurShader
// because of the Shape exponent in its falloff function.
type scanlineShader struct {
	shader
	sourceSize int32
	hardness   int32
	shape      int32
}

func newScanlineShader() *scanlineShader {
	sh := &scanlineShader{}
	sh.createProgram(string(shaders.StraightVertexShader), string(shaders.ScanVertShader))
	sh.sourceSize = gl.GetUniformLocation(sh.handle, gl.Str("SourceSize"+"\x00"))
	sh.hardness = gl.GetUniformLocation(sh.handle, gl.Str("Hardness"+"\x00"))
	sh.shape = gl.GetUniformLocation(sh.handle, gl.Str("Shape"+"\x00"))
	return sh
}

func (sh *scanlineShader) setAttributesArgs(env shaderEnvironment, hardness float32, shape float32) {
	sh.shader.setAttributes(env)
	gl.Uniform2f(sh.sourceSize, float32(env.width), float32(env.height))
	gl.Uniform1f(sh.hardness, hardness)
	gl.Uniform1f(sh.shape, shape)
}

type compositeShader struct {
	shader
	warp         int32
	bloomAmount  int32
	brightBoost  int32
	shadowMask   int32
	bloomTexture int32
}

func newCompositeShader() *compositeShader {
	sh := &compositeShader{}

	// the composite pass always draws to the screen so the flipped vertex
	// shader is the only variant
	sh.createProgram(string(shaders.YFlipVertexShader), string(shaders.CompositeShader))

	sh.warp = gl.GetUniformLocation(sh.handle, gl.Str("Warp"+"\x00"))
	sh.bloomAmount = gl.GetUniformLocation(sh.handle, gl.Str("BloomAmount"+"\x00"))
	sh.brightBoost = gl.GetUniformLocation(sh.handle, gl.Str("BrightBoost"+"\x00"))
	sh.shadowMask = gl.GetUniformLocation(sh.handle, gl.Str("ShadowMask"+"\x00"))
	sh.bloomTexture = gl.GetUniformLocation(sh.handle, gl.Str("BloomTexture"+"\x00"))
	return sh
}

func (sh *compositeShader) setAttributesArgs(env shaderEnvironment, params Params, bloomTextureID uint32) {
	sh.shader.setAttributes(env)

	gl.Uniform2f(sh.warp, params.WarpX, params.WarpY)
	gl.Uniform1f(sh.bloomAmount, params.BloomAmount)
	gl.Uniform1f(sh.brightBoost, params.BrightBoost)
	gl.Uniform1i(sh.shadowMask, int32(params.ShadowMask))

	gl.ActiveTexture(gl.TEXTURE1)
	gl.BindTexture(gl.TEXTURE_2D, bloomTextureID)
	gl.Uniform1i(sh.bloomTexture, 1)

	// leave unit 0 active. restoreGLState() rebinds the caller's texture
	// before reinstating the active unit so the binding must land on the
	// unit the caller had active
	gl.ActiveTexture(gl.TEXTURE0)
}
