// linmath - inspect the geometry of a glTF scene.
// Prints every node's world transform with its rotation, scale and
// determinant, and the scene bounds.
//
// Options:
//
//	-plane a,b,c,d  - Also print the bounds reflected through the plane ax+by+cz+d=0
//	-eye x,y,z      - Report which meshes a camera at eye, looking at the scene center, sees
//	-fov deg        - Vertical field of view for -eye
//	-spin n         - Spin the scene for n frames with spring damping and print the result
//	-fps n          - Frame rate of the spin simulation
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/taigrr/linmath/pkg/math3d"
	"github.com/taigrr/linmath/pkg/models"
)

var (
	planeFlag = flag.String("plane", "", "Reflection plane (A,B,C,D)")
	eyeFlag   = flag.String("eye", "", "Camera position (X,Y,Z)")
	fovFlag   = flag.Float64("fov", 60, "Vertical field of view in degrees")
	spinFlag  = flag.Int("spin", 0, "Frames of spin to simulate")
	fpsFlag   = flag.Int("fps", 60, "Frame rate of the spin simulation")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "linmath - Inspect the geometry of a glTF scene\n\n")
		fmt.Fprintf(os.Stderr, "Usage: linmath [options] <model.gltf|model.glb>\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	opts, err := parseOptions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Context for clean shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	if err := run(ctx, os.Stdout, flag.Arg(0), opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// options holds the parsed command line flags.
type options struct {
	plane *math3d.Plane
	eye   *math3d.Pt3
	fov   float32 // radians
	spin  int
	fps   int
}

func parseOptions() (options, error) {
	opts := options{
		fov:  float32(*fovFlag) * degToRad,
		spin: *spinFlag,
		fps:  *fpsFlag,
	}

	if *planeFlag != "" {
		f, err := parsePlane(*planeFlag)
		if err != nil {
			return opts, fmt.Errorf("-plane: %w", err)
		}
		opts.plane = &f
	}
	if *eyeFlag != "" {
		v, err := parseVec3(*eyeFlag)
		if err != nil {
			return opts, fmt.Errorf("-eye: %w", err)
		}
		p := v.Pt()
		opts.eye = &p
	}
	if opts.fov <= 0 || opts.fov >= 180*degToRad {
		return opts, fmt.Errorf("-fov: %v out of range (0, 180)", *fovFlag)
	}
	if opts.spin < 0 {
		return opts, fmt.Errorf("-spin: negative frame count %d", opts.spin)
	}
	if opts.fps <= 0 {
		return opts, fmt.Errorf("-fps: must be positive, got %d", opts.fps)
	}
	return opts, nil
}

func run(ctx context.Context, w io.Writer, modelPath string, opts options) error {
	scene, err := models.LoadScene(modelPath)
	if err != nil {
		return fmt.Errorf("load model: %w", err)
	}
	return report(ctx, w, scene, opts)
}
