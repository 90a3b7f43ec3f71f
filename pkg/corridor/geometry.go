package corridor

// FloatsPerVertex is the interleaved segment layout: position (3) + texture coordinates (2).
const FloatsPerVertex = 5

// SegmentVertices is one hallway segment in model space: a trapezoidal tube
// along X, 10 units long on the far wall and 8 on the near wall, one unit
// tall and deep. Texture coordinates repeat along the hallway.
var SegmentVertices = []float32{
	// Top
	-4, 0.5, 0.5, 1, 1,
	-5, 0.5, -0.5, 0, 0,
	4, 0.5, 0.5, 1, 9,
	5, 0.5, -0.5, 0, 10,

	// Bottom
	-5, -0.5, -0.5, 0, 0,
	-4, -0.5, 0.5, 1, 1,
	4, -0.5, 0.5, 1, 9,
	5, -0.5, -0.5, 0, 10,

	// Long wall
	-5, 0.5, -0.5, 0, 1,
	-5, -0.5, -0.5, 0, 0,
	5, -0.5, -0.5, 10, 0,
	5, 0.5, -0.5, 10, 1,

	// Short wall
	-4, -0.5, 0.5, 0, 0,
	-4, 0.5, 0.5, 0, 1,
	4, -0.5, 0.5, 8, 0,
	4, 0.5, 0.5, 8, 1,
}

// SegmentIndices draws the four quads as eight triangles. The winding
// faces every triangle into the tube so back-face culling keeps the inside.
var SegmentIndices = []uint32{
	0, 1, 2, 2, 1, 3, // Top
	4, 5, 6, 4, 6, 7, // Bottom
	8, 9, 10, 8, 10, 11, // Long wall
	12, 13, 14, 14, 13, 15, // Short wall
}
