package geometry

import (
	"github.com/chewxy/math32"

	"github.com/taigrr/linmath/pkg/math3d"
)

// Camera represents a perspective camera with position and orientation.
type Camera struct {
	// Position in world space
	Position math3d.Pt3

	// Orientation (Euler angles in radians)
	Pitch float32 // Rotation around X axis (look up/down)
	Yaw   float32 // Rotation around Y axis (look left/right)
	Roll  float32 // Rotation around Z axis (tilt)

	// Projection parameters
	FOV         float32 // Vertical field of view in radians
	AspectRatio float32 // Width / Height
	Near        float32 // Near clipping plane
	Far         float32 // Far clipping plane

	// Cached matrices (computed on demand)
	viewMatrix math3d.Mat4
	projMatrix math3d.Mat4
	viewDirty  bool
	projDirty  bool
}

// NewCamera creates a new camera with default settings.
func NewCamera() *Camera {
	return &Camera{
		Position:    math3d.P3(0, 10, 0),
		FOV:         math32.Pi / 3, // 60 degrees
		AspectRatio: 16.0 / 9.0,
		Near:        0.1,
		Far:         1000,
		viewDirty:   true,
		projDirty:   true,
	}
}

// SetPosition sets the camera position.
func (c *Camera) SetPosition(pos math3d.Pt3) {
	c.Position = pos
	c.viewDirty = true
}

// SetRotation sets the camera rotation (pitch, yaw, roll in radians).
func (c *Camera) SetRotation(pitch, yaw, roll float32) {
	c.Pitch = pitch
	c.Yaw = yaw
	c.Roll = roll
	c.viewDirty = true
}

// SetFOV sets the field of view (in radians).
func (c *Camera) SetFOV(fov float32) {
	c.FOV = fov
	c.projDirty = true
}

// SetAspectRatio sets the aspect ratio.
func (c *Camera) SetAspectRatio(aspect float32) {
	c.AspectRatio = aspect
	c.projDirty = true
}

// SetClipPlanes sets the near and far clipping planes.
func (c *Camera) SetClipPlanes(near, far float32) {
	c.Near = near
	c.Far = far
	c.projDirty = true
}

// Orientation returns the camera-to-world rotation, yaw * pitch * roll.
func (c *Camera) Orientation() math3d.Mat3 {
	return math3d.Mat3RotateY(c.Yaw).
		Mul(math3d.Mat3RotateX(c.Pitch)).
		Mul(math3d.Mat3RotateZ(c.Roll))
}

// Forward returns the forward direction vector.
func (c *Camera) Forward() math3d.Vec3 {
	// Forward is -Z in camera space, rotated by yaw and pitch
	sy, cy := math32.Sincos(c.Yaw)
	sp, cp := math32.Sincos(c.Pitch)
	return math3d.V3(-sy*cp, sp, -cy*cp)
}

// Right returns the right direction vector, ignoring roll.
func (c *Camera) Right() math3d.Vec3 {
	sy, cy := math32.Sincos(c.Yaw)
	return math3d.V3(cy, 0, -sy)
}

// Up returns the up direction vector, ignoring roll.
func (c *Camera) Up() math3d.Vec3 {
	return c.Right().Cross(c.Forward())
}

// ViewMatrix returns the view matrix.
func (c *Camera) ViewMatrix() math3d.Mat4 {
	if c.viewDirty {
		c.computeViewMatrix()
		c.viewDirty = false
	}
	return c.viewMatrix
}

// ProjectionMatrix returns the projection matrix.
func (c *Camera) ProjectionMatrix() math3d.Mat4 {
	if c.projDirty {
		c.computeProjectionMatrix()
		c.projDirty = false
	}
	return c.projMatrix
}

// ViewProjectionMatrix returns the combined view-projection matrix.
func (c *Camera) ViewProjectionMatrix() math3d.Mat4 {
	return c.ProjectionMatrix().Mul(c.ViewMatrix())
}

// Frustum returns the camera's view frustum in world space.
func (c *Camera) Frustum() Frustum {
	return NewFrustum(c.ViewProjectionMatrix())
}

func (c *Camera) computeViewMatrix() {
	// View = Rotation^T * Translation(-position)
	rot := c.Orientation().Transpose()
	c.viewMatrix = math3d.Transform4FromMat3(rot, rot.MulVec(c.Position.Vec().Negate())).Mat4()
}

func (c *Camera) computeProjectionMatrix() {
	c.projMatrix = math3d.Perspective(c.FOV, c.AspectRatio, c.Near, c.Far)
}

// MoveForward moves the camera forward (or backward if negative).
func (c *Camera) MoveForward(distance float32) {
	c.Position = c.Position.Offset(c.Forward().Scale(distance))
	c.viewDirty = true
}

// MoveRight moves the camera right (or left if negative).
func (c *Camera) MoveRight(distance float32) {
	c.Position = c.Position.Offset(c.Right().Scale(distance))
	c.viewDirty = true
}

// MoveUp moves the camera up (or down if negative).
func (c *Camera) MoveUp(distance float32) {
	c.Position = c.Position.Offset(math3d.Up().Scale(distance))
	c.viewDirty = true
}

// Rotate rotates the camera by the given angles (in radians).
func (c *Camera) Rotate(deltaPitch, deltaYaw, deltaRoll float32) {
	c.Pitch += deltaPitch
	c.Yaw += deltaYaw
	c.Roll += deltaRoll

	// Clamp pitch to avoid gimbal lock issues
	const maxPitch = math32.Pi/2 - 0.01
	c.Pitch = math32.Max(-maxPitch, math32.Min(maxPitch, c.Pitch))

	c.viewDirty = true
}

// LookAt makes the camera look at a target point. Looking straight up or
// down leaves the yaw unchanged.
func (c *Camera) LookAt(target math3d.Pt3) {
	dir := target.Diff(c.Position).Normalize()

	c.Pitch = math32.Asin(math32.Max(-1, math32.Min(1, dir.Y)))
	if dir.X != 0 || dir.Z != 0 {
		c.Yaw = math32.Atan2(-dir.X, -dir.Z)
	}
	c.Roll = 0

	c.viewDirty = true
}

// WorldToScreen transforms a world point to screen coordinates.
// Returns (screenX, screenY, depth, visible).
func (c *Camera) WorldToScreen(worldPos math3d.Pt3, screenWidth, screenHeight int) (x, y, depth float32, visible bool) {
	// Transform to clip space
	clipPos := c.ViewProjectionMatrix().MulVec(worldPos.Vec().Extend(1))

	// Check if behind camera
	if clipPos.W <= 0 {
		return 0, 0, 0, false
	}

	// Perspective divide to NDC (-1 to 1)
	ndc := clipPos.PerspectiveDivide()

	// Check if in view frustum
	if ndc.X < -1 || ndc.X > 1 || ndc.Y < -1 || ndc.Y > 1 || ndc.Z < -1 || ndc.Z > 1 {
		return 0, 0, 0, false
	}

	// Convert to screen coordinates
	x = (ndc.X + 1) * 0.5 * float32(screenWidth)
	y = (1 - ndc.Y) * 0.5 * float32(screenHeight) // Y is flipped
	depth = ndc.Z

	return x, y, depth, true
}
