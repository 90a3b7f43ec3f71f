// Package corridor holds the GL-free core of the corridor demo: the loop
// configuration, the fixed hallway layout and the camera path that walks it.
package corridor

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ErrUsage marks every error caused by malformed command-line arguments.
var ErrUsage = errors.New("invalid arguments")

// Usage documents the positional argument contract.
const Usage = `Non readable input. Please use the following format:
  corridor <walkingPeriod> <turningPeriod> <stepCount> <stepHeight> <texture1> [texture2] [texture3] [texture4]

  walkingPeriod  seconds it takes to walk down one hallway (greater than 0)
  turningPeriod  seconds it takes to turn into the next hallway (greater than 0)
  stepCount      footsteps per hallway (integer greater than 0)
  stepHeight     height of the footstep bounce (0 or greater)
  texture1-4     1 to 4 PNG or JPEG files used for the hallway walls
`

const (
	requiredArgs = 4
	maxTextures  = 4

	// Keeps CycleMs well inside int64.
	maxPeriodSeconds = 1e9
)

// Config is the immutable loop configuration. Build it with NewConfig or ParseArgs.
type Config struct {
	WalkPeriodMs int64
	TurnPeriodMs int64
	StepCount    int
	StepHeight   float64

	// Textures holds the texture file for each leg, in leg order.
	Textures [Legs]string
}

// NewConfig validates the loop parameters and expands the texture list
// into one texture per leg.
func NewConfig(walkPeriodMs, turnPeriodMs int64, stepCount int, stepHeight float64, textures []string) (Config, error) {
	if walkPeriodMs <= 0 {
		return Config{}, fmt.Errorf("%w: walking period must be at least 1ms, got %dms", ErrUsage, walkPeriodMs)
	}
	if turnPeriodMs <= 0 {
		return Config{}, fmt.Errorf("%w: turning period must be at least 1ms, got %dms", ErrUsage, turnPeriodMs)
	}
	if stepCount <= 0 {
		return Config{}, fmt.Errorf("%w: step count must be greater than 0, got %d", ErrUsage, stepCount)
	}
	if math.IsNaN(stepHeight) || math.IsInf(stepHeight, 0) || stepHeight < 0 {
		return Config{}, fmt.Errorf("%w: step height must be a non-negative number, got %v", ErrUsage, stepHeight)
	}

	assigned, err := AssignTextures(textures)
	if err != nil {
		return Config{}, err
	}

	return Config{
		WalkPeriodMs: walkPeriodMs,
		TurnPeriodMs: turnPeriodMs,
		StepCount:    stepCount,
		StepHeight:   stepHeight,
		Textures:     assigned,
	}, nil
}

// ParseArgs parses the positional arguments (program name excluded).
// Periods are given in seconds and truncated to whole milliseconds.
func ParseArgs(args []string) (Config, error) {
	if len(args) < requiredArgs+1 {
		return Config{}, fmt.Errorf("%w: expected at least %d arguments, got %d", ErrUsage, requiredArgs+1, len(args))
	}

	walk, err := parsePeriod("walking period", args[0])
	if err != nil {
		return Config{}, err
	}
	turn, err := parsePeriod("turning period", args[1])
	if err != nil {
		return Config{}, err
	}

	stepCount, err := strconv.Atoi(args[2])
	if err != nil {
		return Config{}, fmt.Errorf("%w: step count %q is not an integer", ErrUsage, args[2])
	}

	stepHeight, err := strconv.ParseFloat(args[3], 64)
	if err != nil {
		return Config{}, fmt.Errorf("%w: step height %q is not a number", ErrUsage, args[3])
	}

	return NewConfig(walk, turn, stepCount, stepHeight, args[requiredArgs:])
}

func parsePeriod(name, arg string) (int64, error) {
	seconds, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not a number", ErrUsage, name, arg)
	}
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || math.Abs(seconds) > maxPeriodSeconds {
		return 0, fmt.Errorf("%w: %s %q is out of range", ErrUsage, name, arg)
	}
	return int64(seconds * 1000), nil
}

// AssignTextures maps 1-4 texture files onto the four legs:
//
//	1 texture:  [1,1,1,1]
//	2 textures: [1,2,1,2]
//	3 textures: [1,2,1,3]
//	4 textures: [1,2,3,4]
func AssignTextures(textures []string) ([Legs]string, error) {
	var out [Legs]string
	switch len(textures) {
	case 1:
		out = [Legs]string{textures[0], textures[0], textures[0], textures[0]}
	case 2:
		out = [Legs]string{textures[0], textures[1], textures[0], textures[1]}
	case 3:
		out = [Legs]string{textures[0], textures[1], textures[0], textures[2]}
	case 4:
		out = [Legs]string{textures[0], textures[1], textures[2], textures[3]}
	case 0:
		return out, fmt.Errorf("%w: at least one texture file is required", ErrUsage)
	default:
		return out, fmt.Errorf("%w: at most %d texture files are allowed, got %d", ErrUsage, maxTextures, len(textures))
	}
	return out, nil
}

// LegPeriodMs is the time budget of one leg (walk plus turn).
func (c Config) LegPeriodMs() int64 {
	return c.WalkPeriodMs + c.TurnPeriodMs
}

// CycleMs is the length of one full loop around the four corners.
func (c Config) CycleMs() int64 {
	return Legs * c.LegPeriodMs()
}
