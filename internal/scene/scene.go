package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"collision-lab/internal/collision"
	"collision-lab/internal/primitives"
	"collision-lab/internal/sim"
)

const (
	gridExtent     = 160
	gridMinorStep  = 10
	gridMajorStep  = 50
	gridMinorAlpha = 50
	gridMajorAlpha = 120
	axisLineAlpha  = 220

	// gridLift keeps the grid lines from z-fighting with the ground plane.
	gridLift = float32(0.05)

	groundExtent = 2 * gridExtent
)

// groundColor is the albedo tint for the ground plane.
var groundColor = rl.NewColor(70, 74, 80, 255)

// sphereColor is the solid tint for the moving sphere.
var sphereColor = rl.NewColor(180, 180, 185, 255)

// Volume wireframes: green while separated, red while overlapping.
var (
	clearColor = rl.NewColor(80, 220, 80, 255)
	hitColor   = rl.NewColor(230, 60, 60, 255)
)

// Scene holds a 3D camera and draws the 3D world: ground plane, editor grid,
// the loaded model, and both collision volumes. Update runs camera logic;
// Draw renders between BeginMode3D and EndMode3D. Camera handling based on
// raylib examples/core/core_3d_camera_free.
type Scene struct {
	Camera      rl.Camera3D
	GridVisible bool
	reg         *primitives.Registry
	cursorDone  bool
}

// New returns a scene with a perspective camera looking at the origin from
// above the travel axis. Up is +Y, fovy 45°.
func New(gridVisible bool) *Scene {
	s := &Scene{
		GridVisible: gridVisible,
		reg:         primitives.NewRegistry(),
	}
	s.Camera.Position = rl.NewVector3(0, 60, 140)
	s.Camera.Target = rl.NewVector3(0, 10, 0)
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = 45
	s.Camera.Projection = rl.CameraPerspective
	return s
}

// SetGridVisible sets whether the editor grid is drawn.
func (s *Scene) SetGridVisible(visible bool) {
	s.GridVisible = visible
}

// Update runs once per frame. Uses raylib UpdateCamera with CameraFree so the
// user can orbit, pan, and zoom. Cursor is captured for camera control.
func (s *Scene) Update() {
	if !s.cursorDone {
		rl.DisableCursor()
		s.cursorDone = true
	}
	rl.UpdateCamera(&s.Camera, rl.CameraFree)
}

// Draw renders the 3D scene around the given simulation state. The wireframe
// color of both volumes reflects st.Colliding and nothing else; the verdict
// has no other visible effect.
func (s *Scene) Draw(st *sim.State) {
	rl.BeginMode3D(s.Camera)

	pos := s.Camera.Position
	s.reg.SetView([3]float32{pos.X, pos.Y, pos.Z}, [3]float32{0.5, 1, 0.5})

	s.reg.Draw("plane", [3]float32{0, 0, 0}, [3]float32{groundExtent, 1, groundExtent}, groundColor)
	if s.GridVisible {
		drawEditorGrid()
	}

	rl.DrawModel(st.Model, rl.NewVector3(0, 0, 0), 1, rl.White)

	c := st.Sphere.Center
	d := st.Sphere.Radius * 2
	s.reg.Draw("sphere", [3]float32{c.X, c.Y, c.Z}, [3]float32{d, d, d}, sphereColor)

	wire := clearColor
	if st.Colliding {
		wire = hitColor
	}
	drawBoxWires(st.Box, wire)
	rl.DrawSphereWires(c, st.Sphere.Radius, 12, 12, wire)

	rl.EndMode3D()
}

// drawBoxWires draws the twelve edges of an oriented box. Edges connect
// corners whose index bits differ in exactly one axis.
func drawBoxWires(box collision.OrientedBox, col rl.Color) {
	corners := box.Corners()
	for i := 0; i < 8; i++ {
		for j := 0; j < 3; j++ {
			k := i ^ (1 << j)
			if i < k {
				rl.DrawLine3D(corners[i], corners[k], col)
			}
		}
	}
}

// drawEditorGrid draws a grid on the XZ plane with major/minor lines and axis
// lines, sized to cover the sphere's travel range.
func drawEditorGrid() {
	minor := rl.NewColor(128, 128, 128, gridMinorAlpha)
	major := rl.NewColor(160, 160, 160, gridMajorAlpha)
	axisX := rl.NewColor(220, 80, 80, axisLineAlpha)
	axisY := rl.NewColor(80, 220, 80, axisLineAlpha)
	axisZ := rl.NewColor(80, 80, 220, axisLineAlpha)

	var start, end rl.Vector3
	for x := -gridExtent; x <= gridExtent; x += gridMinorStep {
		c := major
		if x%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(x), gridLift, float32(-gridExtent)
		end.X, end.Y, end.Z = float32(x), gridLift, float32(gridExtent)
		rl.DrawLine3D(start, end, c)
	}
	for z := -gridExtent; z <= gridExtent; z += gridMinorStep {
		c := major
		if z%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(-gridExtent), gridLift, float32(z)
		end.X, end.Y, end.Z = float32(gridExtent), gridLift, float32(z)
		rl.DrawLine3D(start, end, c)
	}

	// Axis lines through origin (X=red, Y=green, Z=blue)
	start.X, start.Y, start.Z = float32(-gridExtent), gridLift, 0
	end.X, end.Y, end.Z = float32(gridExtent), gridLift, 0
	rl.DrawLine3D(start, end, axisX)
	start.X, start.Y, start.Z = 0, float32(-gridExtent), 0
	end.X, end.Y, end.Z = 0, float32(gridExtent), 0
	rl.DrawLine3D(start, end, axisY)
	start.X, start.Y, start.Z = 0, gridLift, float32(-gridExtent)
	end.X, end.Y, end.Z = 0, gridLift, float32(gridExtent)
	rl.DrawLine3D(start, end, axisZ)
}
