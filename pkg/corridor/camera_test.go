package corridor

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestCamera_FollowsClock(t *testing.T) {
	p := newTestPath(t, 2000, 1000, 4, 0.2)
	now := time.Unix(1000, 0)
	clock := NewClockWithSource(func() time.Time { return now })
	cam := NewCamera(p, clock, 1000, 600)

	assert.Equal(t, p.PoseAt(0), cam.Pose())

	now = now.Add(2500 * time.Millisecond)
	pose := cam.Update()
	assert.Equal(t, Turning, pose.Phase)
	assert.Equal(t, Corners[1], cam.Position())
	assert.Equal(t, p.ViewAt(2500), cam.ViewMatrix())
}

func TestCamera_Projection(t *testing.T) {
	p := newTestPath(t, 2000, 1000, 4, 0.2)
	cam := NewCamera(p, NewClock(), 1000, 600)

	want := mgl32.Perspective(mgl32.DegToRad(60), 1000.0/600.0, 0.1, 10000)
	assert.Equal(t, want, cam.ProjectionMatrix())

	assert.True(t, cam.UpdateProjectionMatrix(800, 800))
	assert.Equal(t, mgl32.Perspective(mgl32.DegToRad(60), 1, 0.1, 10000), cam.ProjectionMatrix())
}

func TestCamera_IgnoresEmptyViewport(t *testing.T) {
	p := newTestPath(t, 2000, 1000, 4, 0.2)
	cam := NewCamera(p, NewClock(), 1000, 600)
	before := cam.ProjectionMatrix()

	assert.False(t, cam.UpdateProjectionMatrix(1000, 0))
	assert.Equal(t, before, cam.ProjectionMatrix())
}
