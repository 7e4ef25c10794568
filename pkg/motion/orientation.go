// Package motion animates orientations with critically damped springs.
package motion

import (
	"math"

	"github.com/charmbracelet/harmonica"

	"github.com/taigrr/linmath/pkg/math3d"
)

const (
	// DefaultFrequency is the angular frequency of the velocity spring.
	DefaultFrequency = 4.0
	// DefaultDamping is the damping ratio; 1 is critically damped (no overshoot).
	DefaultDamping = 1.0
)

// Axis tracks the angle and angular velocity about one axis. The velocity
// decays toward zero through a spring, so an impulse spins the axis up and
// lets it coast to a stop.
type Axis struct {
	Angle    float64 // radians
	Velocity float64 // radians per frame

	spring harmonica.Spring
	accel  float64 // velocity of the spring animating Velocity
}

// NewAxis creates an axis at rest, stepped at fps frames per second.
func NewAxis(fps int) Axis {
	return NewAxisWithSpring(fps, DefaultFrequency, DefaultDamping)
}

// NewAxisWithSpring creates an axis at rest with a custom spring.
func NewAxisWithSpring(fps int, frequency, damping float64) Axis {
	return Axis{
		spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping),
	}
}

// Update advances the axis by one frame.
func (a *Axis) Update() {
	a.Angle += a.Velocity
	a.Velocity, a.accel = a.spring.Update(a.Velocity, a.accel, 0)
}

// Resting reports whether the axis has effectively stopped.
func (a *Axis) Resting(tolerance float64) bool {
	return math.Abs(a.Velocity) <= tolerance && math.Abs(a.accel) <= tolerance
}

// Orientation is a pitch/yaw/roll rotation driven by per-axis springs.
// Pitch turns about X, yaw about Y and roll about Z.
type Orientation struct {
	Pitch, Yaw, Roll Axis
	fps              int
}

// NewOrientation creates an orientation at rest with the default spring.
func NewOrientation(fps int) *Orientation {
	return &Orientation{
		Pitch: NewAxis(fps),
		Yaw:   NewAxis(fps),
		Roll:  NewAxis(fps),
		fps:   fps,
	}
}

// FPS returns the frame rate the springs were built for.
func (o *Orientation) FPS() int {
	return o.fps
}

// Update advances all three axes by one frame.
func (o *Orientation) Update() {
	o.Pitch.Update()
	o.Yaw.Update()
	o.Roll.Update()
}

// Impulse adds angular velocity, in radians per frame, to each axis.
func (o *Orientation) Impulse(pitch, yaw, roll float64) {
	o.Pitch.Velocity += pitch
	o.Yaw.Velocity += yaw
	o.Roll.Velocity += roll
}

// Reset returns every axis to zero angle at rest.
func (o *Orientation) Reset() {
	o.Pitch = NewAxis(o.fps)
	o.Yaw = NewAxis(o.fps)
	o.Roll = NewAxis(o.fps)
}

// Resting reports whether all three axes have stopped.
func (o *Orientation) Resting(tolerance float64) bool {
	return o.Pitch.Resting(tolerance) && o.Yaw.Resting(tolerance) && o.Roll.Resting(tolerance)
}

// Quat returns the rotation yaw * pitch * roll: roll is applied first and
// yaw last.
func (o *Orientation) Quat() math3d.Quat {
	pitch := math3d.QuatFromAxisAngle(math3d.V3(1, 0, 0), float32(o.Pitch.Angle))
	yaw := math3d.QuatFromAxisAngle(math3d.V3(0, 1, 0), float32(o.Yaw.Angle))
	roll := math3d.QuatFromAxisAngle(math3d.V3(0, 0, 1), float32(o.Roll.Angle))
	return yaw.Mul(pitch).Mul(roll)
}

// Transform returns Quat as a transform with no translation.
func (o *Orientation) Transform() math3d.Transform4 {
	return math3d.Transform4FromMat3(o.Quat().Mat3(), math3d.Zero3())
}
