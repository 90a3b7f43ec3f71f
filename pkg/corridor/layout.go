package corridor

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Legs is the number of hallways (and corners) in the loop.
const Legs = 4

// Layout constants in world units.
const (
	// CorridorLength is the distance walked between two corners.
	CorridorLength = 900.0
	// HalfSpan is the distance from the loop centre to a hallway's centre line.
	HalfSpan = CorridorLength / 2

	// EyeHeight is the camera height with both feet on the floor.
	EyeHeight = -0.5
	// TargetHeight is the height of the look-at points.
	TargetHeight = 1.0 / 6.0
	// LookAhead is how far past the far corner the camera looks while walking.
	LookAhead = 50.0

	// HallScale scales the unit segment mesh to hallway size.
	HallScale = 100.0
)

// Corners are the four corners of the loop, walked in index order.
var Corners = [Legs]mgl32.Vec3{
	{-HalfSpan, EyeHeight, -HalfSpan},
	{HalfSpan, EyeHeight, -HalfSpan},
	{HalfSpan, EyeHeight, HalfSpan},
	{-HalfSpan, EyeHeight, HalfSpan},
}

// Directions holds the unit direction leaving each corner.
var Directions = [Legs]mgl32.Vec3{
	{1, 0, 0},
	{0, 0, 1},
	{-1, 0, 0},
	{0, 0, -1},
}

// Targets holds the fixed look-at point of each leg: on the leg's centre
// line, LookAhead units past the corner the leg ends at.
var Targets = func() [Legs]mgl32.Vec3 {
	var t [Legs]mgl32.Vec3
	for leg := range Legs {
		p := Corners[NextLeg(leg)].Add(Directions[leg].Mul(LookAhead))
		t[leg] = mgl32.Vec3{p.X(), TargetHeight, p.Z()}
	}
	return t
}()

// hallPlacement positions the segment mesh for one leg.
type hallPlacement struct {
	center mgl32.Vec3
	yawDeg float32
}

var hallPlacements = [Legs]hallPlacement{
	{center: mgl32.Vec3{0, 0, -HalfSpan}, yawDeg: 0},
	{center: mgl32.Vec3{HalfSpan, 0, 0}, yawDeg: 270},
	{center: mgl32.Vec3{0, 0, HalfSpan}, yawDeg: 180},
	{center: mgl32.Vec3{-HalfSpan, 0, 0}, yawDeg: 90},
}

// NextLeg returns the leg that follows leg around the loop.
func NextLeg(leg int) int {
	return (leg + 1) % Legs
}

// ModelMatrix returns translate * rotateY * scale for the hallway of leg.
func ModelMatrix(leg int) mgl32.Mat4 {
	p := hallPlacements[leg%Legs]
	translate := mgl32.Translate3D(p.center.X(), p.center.Y(), p.center.Z())
	rotate := mgl32.HomogRotate3DY(mgl32.DegToRad(p.yawDeg))
	scale := mgl32.Scale3D(HallScale, HallScale, HallScale)
	return translate.Mul4(rotate).Mul4(scale)
}

// ModelMatrices returns the model matrix of every leg, in leg order.
func ModelMatrices() [Legs]mgl32.Mat4 {
	var m [Legs]mgl32.Mat4
	for leg := range Legs {
		m[leg] = ModelMatrix(leg)
	}
	return m
}
