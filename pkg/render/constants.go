package render

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Window constants
const (
	WindowWidth  = 1000
	WindowHeight = 600
	WindowTitle  = "Textured Corridor"
)

// Shader files, relative to the working directory.
const (
	VertexShaderFile   = "pkg/render/shaders/corridor.vert"
	FragmentShaderFile = "pkg/render/shaders/corridor.frag"
)

// Shader uniforms and the texture unit the walls are sampled from.
const (
	ModelViewUniform  = "mv_matrix"
	ProjectionUniform = "p_matrix"
	SamplerUniform    = "samp"
	WallTextureUnit   = 0
)

// ClearColor is the background behind the corridor.
var ClearColor = mgl32.Vec4{0, 0, 0, 1}
