package corridor

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Projection defaults.
const (
	DefaultFOV  = 60.0
	DefaultNear = 0.1
	DefaultFar  = 10000.0
)

// Camera follows a Path on a Clock and owns the projection matrix.
type Camera struct {
	path  *Path
	clock *Clock

	// Current pose, refreshed by Update.
	pose Pose

	// Projection
	fov        float32
	projection mgl32.Mat4
	width      int
	height     int
}

// NewCamera creates a camera at the start of path, with a projection for
// a width x height viewport.
func NewCamera(path *Path, clock *Clock, width, height int) *Camera {
	camera := &Camera{
		path:   path,
		clock:  clock,
		fov:    DefaultFOV,
		width:  width,
		height: height,
	}

	camera.pose = path.PoseAt(0)
	camera.updateProjectionMatrix()

	return camera
}

// updateProjectionMatrix recalculates the projection matrix
func (c *Camera) updateProjectionMatrix() {
	aspect := float32(c.width) / float32(c.height)
	c.projection = mgl32.Perspective(mgl32.DegToRad(c.fov), aspect, DefaultNear, DefaultFar)
}

// UpdateProjectionMatrix updates the projection matrix with new dimensions.
// Empty viewports (a minimised window) keep the previous projection.
func (c *Camera) UpdateProjectionMatrix(width, height int) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	c.width = width
	c.height = height
	c.updateProjectionMatrix()
	return true
}

// Update moves the camera to where the path is at the clock's current time.
func (c *Camera) Update() Pose {
	c.pose = c.path.PoseAt(c.clock.ElapsedMs())
	return c.pose
}

// Pose returns the pose from the last Update.
func (c *Camera) Pose() Pose {
	return c.pose
}

// ViewMatrix returns the current view matrix
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return c.pose.View()
}

// ProjectionMatrix returns the current projection matrix
func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	return c.projection
}

// Position returns the current camera position
func (c *Camera) Position() mgl32.Vec3 {
	return c.pose.Position
}
