package openglhelper

import (
	"fmt"

	"github.com/go-gl/gl/v4.6-core/gl"
)

// Attribute locations shared by the mesh layout and the shaders.
const (
	PositionAttrib = 0
	TexCoordAttrib = 1
)

// floatsPerVertex is position (3) + texture coordinates (2).
const floatsPerVertex = 5

// Mesh represents a static indexed mesh with interleaved position and texture coordinates.
type Mesh struct {
	vao        *VertexArrayObject
	vbo        *BufferObject
	ebo        *BufferObject
	indexCount int32
}

// NewMesh uploads vertices and indices once and records the attribute layout in a VAO.
func NewMesh(vertices []float32, indices []uint32) (*Mesh, error) {
	if len(vertices) == 0 || len(vertices)%floatsPerVertex != 0 {
		return nil, fmt.Errorf("vertex data length %d is not a multiple of %d", len(vertices), floatsPerVertex)
	}
	if len(indices) == 0 || len(indices)%3 != 0 {
		return nil, fmt.Errorf("index count %d does not describe whole triangles", len(indices))
	}

	vao := NewVAO()
	vao.Bind()

	vbo := NewVBO(vertices, StaticDraw)
	ebo := NewEBO(indices, StaticDraw)

	stride := int32(floatsPerVertex * 4)
	// Position attribute (3 floats)
	vao.SetVertexAttribPointer(PositionAttrib, 3, gl.FLOAT, false, stride, 0)
	// Texture coordinates attribute (2 floats)
	vao.SetVertexAttribPointer(TexCoordAttrib, 2, gl.FLOAT, false, stride, 3*4)

	// Unbind VAO
	vao.Unbind()

	return &Mesh{
		vao:        vao,
		vbo:        vbo,
		ebo:        ebo,
		indexCount: int32(len(indices)),
	}, nil
}

// Draw renders the mesh with the currently bound shader and textures.
func (m *Mesh) Draw() {
	m.vao.Bind()
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil)
	m.vao.Unbind()
}

// Delete releases all resources
func (m *Mesh) Delete() {
	m.vao.Delete()
	m.vbo.Delete()
	m.ebo.Delete()
}
