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

// Package framebuffer provides a convenient way of working with OpenGL
// framebuffers. The Sequence type conceptualises a sequence of textures all
// of which may be attached to the framebuffer object for a drawing
// operation.
//
// The key to the Sequence type is the texture index. This is not to be
// confused with the texture ID. The number of textures (and therefore
// texture indices) is defined at Sequence creation, with NewSequence().
//
// The Setup() function must be called at least once after NewSequence() and
// called as often as necessary to ensure the dimensions (width and height)
// are correct. Setup() returns true if the texture data has been recreated
// in accordance with new dimensions.
//
// The Process() function assigns the texture at the given index to the
// framebuffer object and, for convenience, runs the supplied draw()
// function. The texture ID is returned and can be used as the input for the
// next call to Process().
//
// Much of the work of chaining a sequence of shaders is left to the user of
// the package.
package framebuffer
