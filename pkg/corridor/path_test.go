package corridor

import (
	"math"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPath(t *testing.T, walk, turn int64, steps int, height float64) *Path {
	t.Helper()
	cfg, err := NewConfig(walk, turn, steps, height, []string{"wall.png"})
	require.NoError(t, err)
	p, err := NewPath(cfg)
	require.NoError(t, err)
	return p
}

// forward returns the world-space direction the view looks along.
func forward(view mgl32.Mat4) mgl32.Vec3 {
	return mgl32.Vec3{-view.At(2, 0), -view.At(2, 1), -view.At(2, 2)}.Normalize()
}

func horizontal(v mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{v.X(), 0, v.Z()}.Normalize()
}

func assertVecInDelta(t *testing.T, want, got mgl32.Vec3, delta float64) {
	t.Helper()
	for i := range 3 {
		assert.InDelta(t, want[i], got[i], delta, "component %d of %v vs %v", i, got, want)
	}
}

func TestNewPath_RejectsZeroPeriods(t *testing.T) {
	_, err := NewPath(Config{WalkPeriodMs: 0, TurnPeriodMs: 1000, StepCount: 1})
	assert.ErrorIs(t, err, ErrUsage)

	_, err = NewPath(Config{WalkPeriodMs: 1000, TurnPeriodMs: 0, StepCount: 1})
	assert.ErrorIs(t, err, ErrUsage)

	_, err = NewPath(Config{WalkPeriodMs: 1000, TurnPeriodMs: 1000, StepCount: 0})
	assert.ErrorIs(t, err, ErrUsage)
}

func TestPath_LegsCycleInOrder(t *testing.T) {
	p := newTestPath(t, 2000, 1000, 4, 0.2)

	prev := p.Leg(0)
	assert.Equal(t, 0, prev)
	for elapsed := int64(0); elapsed < 5*p.Config().CycleMs(); elapsed += 7 {
		leg := p.Leg(elapsed)
		require.GreaterOrEqual(t, leg, 0)
		require.Less(t, leg, Legs)
		if leg != prev {
			require.Equal(t, NextLeg(prev), leg, "at %dms", elapsed)
			prev = leg
		}
	}
}

func TestPath_Phases(t *testing.T) {
	p := newTestPath(t, 2000, 1000, 4, 0.2)

	assert.Equal(t, Walking, p.PhaseAt(0))
	assert.Equal(t, Walking, p.PhaseAt(1999))
	assert.Equal(t, Turning, p.PhaseAt(2000))
	assert.Equal(t, Turning, p.PhaseAt(2999))
	assert.Equal(t, Walking, p.PhaseAt(3000))
	assert.Equal(t, 1, p.Leg(3000))
	assert.Equal(t, 0, p.Leg(12000))
	assert.Equal(t, "turning", Turning.String())
}

func TestPath_NegativeElapsedWraps(t *testing.T) {
	p := newTestPath(t, 2000, 1000, 4, 0.2)
	assert.Equal(t, 3, p.Leg(-1))
	assert.Equal(t, p.PoseAt(11000), p.PoseAt(-1000))
}

func TestPath_WalkStartsAtCorner(t *testing.T) {
	p := newTestPath(t, 2000, 1000, 4, 0.2)
	for leg := range Legs {
		pose := p.PoseAt(int64(leg) * p.Config().LegPeriodMs())
		assert.Equal(t, leg, pose.Leg)
		assert.Equal(t, Walking, pose.Phase)
		assert.InDelta(t, Corners[leg].X(), pose.Position.X(), 1e-4)
		assert.InDelta(t, Corners[leg].Z(), pose.Position.Z(), 1e-4)
		assert.InDelta(t, EyeHeight, pose.Position.Y(), 1e-6)
	}
}

func TestPath_WalkEndsAtNextCorner(t *testing.T) {
	p := newTestPath(t, 2000, 1000, 4, 0.2)
	for leg := range Legs {
		end := int64(leg)*p.Config().LegPeriodMs() + p.Config().WalkPeriodMs - 1
		pose := p.PoseAt(end)
		next := Corners[NextLeg(leg)]
		assert.Equal(t, Walking, pose.Phase)
		assert.InDelta(t, next.X(), pose.Position.X(), 0.5)
		assert.InDelta(t, next.Z(), pose.Position.Z(), 0.5)
	}
}

func TestPath_MidWalkExample(t *testing.T) {
	p := newTestPath(t, 2000, 1000, 4, 0.2)

	assert.InDelta(t, 450.0, p.Distance(p.PhaseTime(1000)), 1e-9)

	pose := p.PoseAt(1000)
	want := Corners[0].Add(Directions[0].Mul(450))
	assert.InDelta(t, want.X(), pose.Position.X(), 1e-4)
	assert.InDelta(t, want.Z(), pose.Position.Z(), 1e-4)
	assert.Equal(t, Targets[0], pose.Target)
	assert.Equal(t, WorldUp, pose.Up)
}

func TestPath_BounceExample(t *testing.T) {
	p := newTestPath(t, 2000, 1000, 4, 0.2)
	assert.InDelta(t, 0.2, p.Bounce(CorridorLength/8), 1e-9)
}

func TestPath_BounceBounds(t *testing.T) {
	p := newTestPath(t, 2000, 1000, 4, 0.2)
	for elapsed := int64(0); elapsed < p.Config().WalkPeriodMs; elapsed++ {
		y := float64(p.PoseAt(elapsed).Position.Y())
		require.GreaterOrEqual(t, y, EyeHeight-1e-6)
		require.LessOrEqual(t, y, EyeHeight+0.2+1e-6)
	}
}

func TestPath_BounceZeroAtStepBoundaries(t *testing.T) {
	p := newTestPath(t, 2000, 1000, 4, 0.2)
	for step := 0; step <= 4; step++ {
		d := float64(step) * CorridorLength / 4
		assert.InDelta(t, 0, p.Bounce(d), 1e-9, "step %d", step)
	}
}

func TestPath_SweepDecreasesOverTurn(t *testing.T) {
	p := newTestPath(t, 2000, 1000, 4, 0.2)

	assert.InDelta(t, math.Pi/2, p.SweepAngle(2000), 1e-9)
	prev := math.Inf(1)
	for phase := int64(2000); phase < 3000; phase += 10 {
		sweep := p.SweepAngle(phase)
		require.Less(t, sweep, prev)
		require.GreaterOrEqual(t, sweep, 0.0)
		prev = sweep
	}
	assert.InDelta(t, 0, p.SweepAngle(3000), 1e-9)
}

func TestPath_TurnPinsCameraAtFarCorner(t *testing.T) {
	p := newTestPath(t, 2000, 1000, 4, 0.2)
	for leg := range Legs {
		pose := p.PoseAt(int64(leg)*3000 + 2500)
		assert.Equal(t, Turning, pose.Phase)
		assert.Equal(t, leg, pose.Leg)
		assert.Equal(t, Corners[NextLeg(leg)], pose.Position)
		assert.Equal(t, Targets[NextLeg(leg)], pose.Target)
		assert.InDelta(t, math.Pi/4, pose.Sweep, 1e-6)
	}
}

func TestPath_WalkingViewLooksDownTheLeg(t *testing.T) {
	p := newTestPath(t, 2000, 1000, 4, 0)
	for leg := range Legs {
		view := p.ViewAt(int64(leg)*3000 + 500)
		assertVecInDelta(t, Directions[leg], horizontal(forward(view)), 1e-4)
	}
}

func TestPath_TurnIsContinuous(t *testing.T) {
	p := newTestPath(t, 2000, 1000, 4, 0)
	for leg := range Legs {
		base := int64(leg) * 3000

		lastWalk := horizontal(forward(p.ViewAt(base + 1999)))
		turnStart := horizontal(forward(p.ViewAt(base + 2000)))
		turnEnd := horizontal(forward(p.ViewAt(base + 2999)))
		nextWalk := horizontal(forward(p.ViewAt(base + 3000)))

		assertVecInDelta(t, Directions[leg], lastWalk, 1e-3)
		assertVecInDelta(t, Directions[leg], turnStart, 1e-3)
		assertVecInDelta(t, Directions[NextLeg(leg)], turnEnd, 1e-2)
		assertVecInDelta(t, Directions[NextLeg(leg)], nextWalk, 1e-3)
	}
}

func TestPath_TurnMidpointFacesDiagonal(t *testing.T) {
	p := newTestPath(t, 2000, 1000, 4, 0)
	dir := horizontal(forward(p.ViewAt(2500)))
	want := Directions[0].Add(Directions[1]).Normalize()
	assertVecInDelta(t, want, dir, 1e-3)
}

func TestPose_ViewMapsEyeToOrigin(t *testing.T) {
	p := newTestPath(t, 2000, 1000, 4, 0.2)
	for _, elapsed := range []int64{0, 1234, 2400, 7777} {
		pose := p.PoseAt(elapsed)
		eye := pose.View().Mul4x1(pose.Position.Vec4(1))
		assertVecInDelta(t, mgl32.Vec3{}, eye.Vec3(), 1e-2)
	}
}

func TestClock_ElapsedMs(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewClockWithSource(func() time.Time { return now })
	assert.Equal(t, int64(0), c.ElapsedMs())

	now = now.Add(1500*time.Millisecond + 700*time.Microsecond)
	assert.Equal(t, int64(1500), c.ElapsedMs())
}
