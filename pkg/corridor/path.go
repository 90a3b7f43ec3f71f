package corridor

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Phase is the part of a leg the camera is in.
type Phase int

const (
	Walking Phase = iota
	Turning
)

func (p Phase) String() string {
	switch p {
	case Walking:
		return "walking"
	case Turning:
		return "turning"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// TurnAngle is the heading change at every corner, in radians.
const TurnAngle = math.Pi / 2

// WorldUp is the camera's up vector.
var WorldUp = mgl32.Vec3{0, 1, 0}

// Pose is the camera state for one instant.
type Pose struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3
	Up       mgl32.Vec3

	Leg   int
	Phase Phase
	// Sweep is the part of the corner turn still to go, in radians.
	// It is zero while walking.
	Sweep float32
}

// View returns the right-handed look-at transform for the pose. While
// turning, the view is additionally rotated by -Sweep about the camera's
// vertical axis so it pans from the previous heading to the next one.
func (p Pose) View() mgl32.Mat4 {
	view := mgl32.LookAtV(p.Position, p.Target, p.Up)
	if p.Phase == Turning {
		view = mgl32.HomogRotate3DY(-p.Sweep).Mul4(view)
	}
	return view
}

// Path maps elapsed time to a camera pose on the endless four-corner loop.
// It holds no mutable state: every pose is computed from time alone.
type Path struct {
	cfg Config
}

// NewPath returns the camera path for cfg. The periods must be positive.
func NewPath(cfg Config) (*Path, error) {
	if cfg.WalkPeriodMs <= 0 || cfg.TurnPeriodMs <= 0 {
		return nil, fmt.Errorf("%w: periods must be positive (walk %dms, turn %dms)", ErrUsage, cfg.WalkPeriodMs, cfg.TurnPeriodMs)
	}
	if cfg.StepCount <= 0 {
		return nil, fmt.Errorf("%w: step count must be greater than 0, got %d", ErrUsage, cfg.StepCount)
	}
	return &Path{cfg: cfg}, nil
}

// Config returns the configuration the path was built from.
func (p *Path) Config() Config {
	return p.cfg
}

// cycleTime folds elapsedMs into [0, cycle).
func (p *Path) cycleTime(elapsedMs int64) int64 {
	cycle := p.cfg.CycleMs()
	t := elapsedMs % cycle
	if t < 0 {
		t += cycle
	}
	return t
}

// Leg returns the hallway index (0-3) the camera is on at elapsedMs.
func (p *Path) Leg(elapsedMs int64) int {
	return int(p.cycleTime(elapsedMs)/p.cfg.LegPeriodMs()) % Legs
}

// PhaseTime returns the time into the current leg.
func (p *Path) PhaseTime(elapsedMs int64) int64 {
	return p.cycleTime(elapsedMs) % p.cfg.LegPeriodMs()
}

// PhaseAt reports whether the camera is walking or turning at elapsedMs.
func (p *Path) PhaseAt(elapsedMs int64) Phase {
	if p.PhaseTime(elapsedMs) < p.cfg.WalkPeriodMs {
		return Walking
	}
	return Turning
}

// Distance returns how far along the hallway the camera is phaseMs into a walk.
func (p *Path) Distance(phaseMs int64) float64 {
	return CorridorLength * float64(phaseMs) / float64(p.cfg.WalkPeriodMs)
}

// Bounce returns the footstep height offset after walking distance units.
// It is zero at every step boundary and StepHeight halfway between them.
func (p *Path) Bounce(distance float64) float64 {
	return p.cfg.StepHeight * math.Abs(math.Sin(float64(p.cfg.StepCount)*math.Pi*distance/CorridorLength))
}

// SweepAngle returns the remaining turn, in radians, phaseMs into a leg
// that is turning. It falls from TurnAngle to 0 over the turn.
func (p *Path) SweepAngle(phaseMs int64) float64 {
	progress := float64(phaseMs-p.cfg.WalkPeriodMs) / float64(p.cfg.TurnPeriodMs)
	return (1 - progress) * TurnAngle
}

// PoseAt returns the camera pose elapsedMs after the animation started.
func (p *Path) PoseAt(elapsedMs int64) Pose {
	leg := p.Leg(elapsedMs)
	phaseMs := p.PhaseTime(elapsedMs)

	if phaseMs < p.cfg.WalkPeriodMs {
		distance := p.Distance(phaseMs)
		pos := Corners[leg].Add(Directions[leg].Mul(float32(distance)))
		pos[1] = float32(EyeHeight + p.Bounce(distance))
		return Pose{
			Position: pos,
			Target:   Targets[leg],
			Up:       WorldUp,
			Leg:      leg,
			Phase:    Walking,
		}
	}

	next := NextLeg(leg)
	return Pose{
		Position: Corners[next],
		Target:   Targets[next],
		Up:       WorldUp,
		Leg:      leg,
		Phase:    Turning,
		Sweep:    float32(p.SweepAngle(phaseMs)),
	}
}

// ViewAt returns the view matrix elapsedMs after the animation started.
func (p *Path) ViewAt(elapsedMs int64) mgl32.Mat4 {
	return p.PoseAt(elapsedMs).View()
}
