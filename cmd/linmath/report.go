package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chewxy/math32"

	"github.com/taigrr/linmath/pkg/geometry"
	"github.com/taigrr/linmath/pkg/math3d"
	"github.com/taigrr/linmath/pkg/models"
	"github.com/taigrr/linmath/pkg/motion"
)

const degToRad = math32.Pi / 180

// spinImpulse is the pitch, yaw and roll velocity, in radians per frame,
// given to the scene at the start of a spin.
var spinImpulse = [3]float64{0.02, 0.05, 0.01}

// report writes the node transforms and bounds of scene to w, followed by
// whatever opts asks for.
func report(ctx context.Context, w io.Writer, scene *models.Scene, opts options) error {
	fmt.Fprintf(w, "Scene: %s (%d nodes, %d triangles)\n", scene.Name, len(scene.Nodes), scene.TriangleCount())

	for i, n := range scene.Nodes {
		fmt.Fprintf(w, "\nNode %d %q", i, n.Name)
		if n.Parent >= 0 {
			fmt.Fprintf(w, " (child of %d)", n.Parent)
		}
		fmt.Fprintln(w)

		for r := range 3 {
			row := n.World.Row(r)
			fmt.Fprintf(w, "  [%9.3f %9.3f %9.3f %9.3f]\n", row.X, row.Y, row.Z, row.W)
		}
		if scale, rot, ok := decompose(n.World); ok {
			fmt.Fprintf(w, "  scale %s  rotation %s  det %.4g\n", fmtVec(scale), fmtQuat(rot), n.World.Determinant())
		} else {
			fmt.Fprintf(w, "  singular (det %.4g)\n", n.World.Determinant())
		}
		if n.Mesh != nil {
			fmt.Fprintf(w, "  mesh %q: %d vertices, %d triangles\n", n.Mesh.Name, n.Mesh.VertexCount(), n.Mesh.TriangleCount())
		}
	}

	box, ok := scene.Bounds()
	if !ok {
		fmt.Fprintf(w, "\nNo mesh geometry\n")
		return nil
	}
	fmt.Fprintln(w)
	printBox(w, "Bounds", box)

	if opts.plane != nil {
		h := math3d.Transform4Reflection(*opts.plane)
		printBox(w, "Reflected", box.Transform(h))
	}

	if opts.eye != nil {
		if err := visibility(w, scene, box, *opts.eye, opts.fov); err != nil {
			return err
		}
	}

	if opts.spin > 0 {
		if err := spin(ctx, w, box, opts); err != nil {
			return err
		}
	}
	return nil
}

// visibility reports which meshes a camera at eye, aimed at the center of
// box, can see.
func visibility(w io.Writer, scene *models.Scene, box geometry.AABB, eye math3d.Pt3, fov float32) error {
	center := box.Center()
	dir := center.Diff(eye)
	dist := dir.Len()
	if dist == 0 {
		return errors.New("eye is at the scene center")
	}

	// clip planes hug the scene's bounding sphere
	radius := box.HalfSize().Len()
	near := math32.Max(dist-radius, dist*0.01)
	far := dist + radius + near

	cam := geometry.NewCamera()
	cam.SetPosition(eye)
	cam.SetFOV(fov)
	cam.SetAspectRatio(1)
	cam.SetClipPlanes(near, far)
	cam.LookAt(center)
	frustum := cam.Frustum()

	fmt.Fprintf(w, "\nCamera at %s, fov %.1f deg\n", fmtPt(eye), fov/degToRad)

	visible, total := 0, 0
	for i, n := range scene.Nodes {
		if n.Mesh == nil || n.Mesh.VertexCount() == 0 {
			continue
		}
		total++

		b := n.Mesh.Bounds.Transform(n.World)
		state := "culled"
		switch {
		case frustum.ContainsAABB(b):
			state = "inside"
			visible++
		case frustum.IntersectAABB(b):
			state = "partial"
			visible++
		}
		fmt.Fprintf(w, "  node %d %q: %s\n", i, n.Name, state)
	}
	fmt.Fprintf(w, "  %d of %d meshes visible\n", visible, total)
	return nil
}

// spin simulates a spring-damped spin of the scene about its center.
func spin(ctx context.Context, w io.Writer, box geometry.AABB, opts options) error {
	o := motion.NewOrientation(opts.fps)
	o.Impulse(spinImpulse[0], spinImpulse[1], spinImpulse[2])

	for range opts.spin {
		if err := ctx.Err(); err != nil {
			return err
		}
		o.Update()
	}

	c := box.Center().Vec()
	about := math3d.Translate(c).Mul(o.Transform()).Mul(math3d.Translate(c.Negate()))

	fmt.Fprintf(w, "\nSpin: %d frames at %d fps\n", opts.spin, opts.fps)
	fmt.Fprintf(w, "  pitch %.4f  yaw %.4f  roll %.4f rad", o.Pitch.Angle, o.Yaw.Angle, o.Roll.Angle)
	if o.Resting(1e-6) {
		fmt.Fprintf(w, " (at rest)")
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  rotation %s\n", fmtQuat(o.Quat()))
	printBox(w, "  Spun bounds", box.Transform(about))
	return nil
}

// decompose splits the linear part of h into a per-axis scale and a
// rotation. A mirrored transform gets a negative X scale. ok is false when
// an axis collapses.
func decompose(h math3d.Transform4) (scale math3d.Vec3, rot math3d.Quat, ok bool) {
	lin := h.Linear()
	a, b, c := lin.Col(0), lin.Col(1), lin.Col(2)
	scale = math3d.V3(a.Len(), b.Len(), c.Len())
	if scale.X == 0 || scale.Y == 0 || scale.Z == 0 {
		return scale, math3d.IdentityQuat(), false
	}
	if lin.Determinant() < 0 {
		scale.X = -scale.X
	}

	r := math3d.Mat3FromCols(a.Div(scale.X), b.Div(scale.Y), c.Div(scale.Z))
	return scale, math3d.QuatFromMat3(r).Normalize(), true
}

func printBox(w io.Writer, label string, b geometry.AABB) {
	fmt.Fprintf(w, "%s: %s .. %s  size %s\n", label, fmtPt(b.Min), fmtPt(b.Max), fmtVec(b.Size()))
}

func fmtVec(v math3d.Vec3) string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", v.X, v.Y, v.Z)
}

func fmtPt(p math3d.Pt3) string {
	return fmtVec(p.Vec())
}

func fmtQuat(q math3d.Quat) string {
	return fmt.Sprintf("[%.4f %.4f %.4f | %.4f]", q.X, q.Y, q.Z, q.W)
}

// parseFloats parses exactly n comma-separated numbers.
func parseFloats(s string, n int) ([]float32, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("want %d comma-separated numbers, got %q", n, s)
	}

	out := make([]float32, n)
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", p, err)
		}
		out[i] = float32(f)
	}
	return out, nil
}

func parseVec3(s string) (math3d.Vec3, error) {
	f, err := parseFloats(s, 3)
	if err != nil {
		return math3d.Vec3{}, err
	}
	return math3d.V3(f[0], f[1], f[2]), nil
}

// parsePlane parses a plane and scales it to a unit normal.
func parsePlane(s string) (math3d.Plane, error) {
	f, err := parseFloats(s, 4)
	if err != nil {
		return math3d.Plane{}, err
	}
	p := math3d.NewPlane(f[0], f[1], f[2], f[3])
	if p.Normal().LenSq() == 0 {
		return math3d.Plane{}, errors.New("plane normal is zero")
	}
	return p.Normalize(), nil
}
