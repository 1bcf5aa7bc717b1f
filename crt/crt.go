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
	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/tubeglow/phosphor/crt/framebuffer"
	"github.com/tubeglow/phosphor/crt/shaders"
	"github.com/tubeglow/phosphor/logger"
)

// the pixelate pass quantizes lookups to this fixed grid, regardless of
// capture resolution
const (
	pixelateGridWidth  = 854
	pixelateGridHeight = 480
)

// indices into the framebuffer sequence. one offscreen target per pass
const (
	idxPixelate = iota
	idxBloomHorz
	idxBloomVert
	idxScanHorz
	idxScanVert
	numPassTextures
)

// Renderer transforms the latest capture frame texture into the final
// displayed image. It is driven exclusively from the thread that owns the
// GL context and assumes a current context with gl.Init() already called.
//
// The renderer draws into whatever framebuffer is bound as the screen
// (framebuffer zero) and restores the GL binding state it touches before
// returning, so it can share a context with an enclosing UI renderer.
type Renderer struct {
	seq  *framebuffer.Sequence
	quad *quad

	colorShader           *colorShader
	pixelateShader        *pixelateShader
	pixelateShaderFlipped *pixelateShader
	bloomHorzShader       *blurShader
	bloomVertShader       *blurShader
	scanHorzShader        *blurShader
	scanVertShader        *scanlineShader
	compositeShader       *compositeShader
}

// NewRenderer is the preferred method of initialisation of the Renderer
// type. Shader compilation or link failure is a panic; the shaders are
// fixed and shipped with the program so failure indicates a broken GL
// environment rather than anything recoverable.
func NewRenderer() *Renderer {
	rnd := &Renderer{
		seq:                   framebuffer.NewSequence(numPassTextures),
		quad:                  newQuad(),
		colorShader:           newColorShader(true),
		pixelateShader:        newPixelateShader(false),
		pixelateShaderFlipped: newPixelateShader(true),
		bloomHorzShader:       newBlurShader(shaders.BloomHorzShader),
		bloomVertShader:       newBlurShader(shaders.BloomVertShader),
		scanHorzShader:        newBlurShader(shaders.ScanHorzShader),
		scanVertShader:        newScanlineShader(),
		compositeShader:       newCompositeShader(),
	}

	logger.Logf(logger.Allow, "crt", "vendor: %s", gl.GoStr(gl.GetString(gl.VENDOR)))
	logger.Logf(logger.Allow, "crt", "renderer: %s", gl.GoStr(gl.GetString(gl.RENDERER)))
	logger.Logf(logger.Allow, "crt", "driver: %s", gl.GoStr(gl.GetString(gl.VERSION)))

	return rnd
}

// Destroy all GPU resources held by the renderer. Must be called before the
// GL context itself is destroyed.
func (rnd *Renderer) Destroy() {
	rnd.seq.Destroy()
	rnd.quad.destroy()
	rnd.colorShader.destroy()
	rnd.pixelateShader.destroy()
	rnd.pixelateShaderFlipped.destroy()
	rnd.bloomHorzShader.destroy()
	rnd.bloomVertShader.destroy()
	rnd.scanHorzShader.destroy()
	rnd.scanVertShader.destroy()
	rnd.compositeShader.destroy()
}

// Render the source texture to the screen framebuffer. srcTextureID is the
// uploaded capture frame (see Texture), capW/capH its dimensions and
// dispW/dispH the size of the display surface. The image is letterboxed or
// pillarboxed to preserve the capture aspect ratio.
//
// Must be called from the GL context thread, once per displayed frame, and
// only after the first frame has been uploaded.
func (rnd *Renderer) Render(srcTextureID uint32, capW int32, capH int32, dispW int32, dispH int32,
	params Params, pixelate bool, crtEnabled bool) {
	st := storeGLState()
	defer st.restoreGLState()

	gl.Disable(gl.BLEND)
	gl.Disable(gl.SCISSOR_TEST)

	env := shaderEnvironment{
		draw:         rnd.quad.draw,
		srcTextureID: srcTextureID,
		width:        capW,
		height:       capH,
	}

	// offscreen targets track the capture resolution, not the display size
	if pixelate || crtEnabled {
		rnd.seq.Setup(capW, capH)
	}

	if crtEnabled {
		rnd.renderCRT(env, params, pixelate, dispW, dispH)
		return
	}

	// passthrough. the pixelate-only path quantizes during the single
	// screen-facing draw rather than through an offscreen pass
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	x, y, w, h := fitRect(capW, capH, dispW, dispH)
	gl.Viewport(x, y, w, h)

	if pixelate {
		rnd.pixelateShaderFlipped.setAttributesArgs(env, pixelateGridWidth, pixelateGridHeight)
	} else {
		rnd.colorShader.setAttributes(env)
	}
	env.draw()
}

// renderCRT runs the multi-pass chain. the bloom and scanline chains both
// start from the same source (the pixelate output when pixelate is
// enabled) and meet again in the composite pass.
func (rnd *Renderer) renderCRT(env shaderEnvironment, params Params, pixelate bool, dispW int32, dispH int32) {
	params = params.Clamp()

	// every offscreen pass runs at capture resolution
	gl.Viewport(0, 0, env.width, env.height)

	if pixelate {
		env.srcTextureID = rnd.seq.Process(idxPixelate, func() {
			rnd.pixelateShader.setAttributesArgs(env, pixelateGridWidth, pixelateGridHeight)
			env.draw()
		})
	}
	src := env.srcTextureID

	// bloom chain
	env.srcTextureID = rnd.seq.Process(idxBloomHorz, func() {
		rnd.bloomHorzShader.setAttributesArgs(env, params.HardBloomPix)
		env.draw()
	})
	env.srcTextureID = rnd.seq.Process(idxBloomVert, func() {
		rnd.bloomVertShader.setAttributesArgs(env, params.HardBloomScan)
		env.draw()
	})
	bloom := env.srcTextureID

	// scanline chain, from the same source as the bloom chain
	env.srcTextureID = src
	env.srcTextureID = rnd.seq.Process(idxScanHorz, func() {
		rnd.scanHorzShader.setAttributesArgs(env, params.HardPix)
		env.draw()
	})
	env.srcTextureID = rnd.seq.Process(idxScanVert, func() {
		rnd.scanVertShader.setAttributesArgs(env, params.HardScan, params.Shape)
		env.draw()
	})

	// composite to the screen
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	x, y, w, h := fitRect(env.width, env.height, dispW, dispH)
	gl.Viewport(x, y, w, h)

	rnd.compositeShader.setAttributesArgs(env, params, bloom)
	env.draw()
}
