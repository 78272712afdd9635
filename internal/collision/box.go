package collision

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// OrientedBox is a box with arbitrary rotation: a center point, half extents
// along its local axes, and an orthonormal rotation matrix mapping local axes
// to world. Half extents must be non-negative.
type OrientedBox struct {
	Center      rl.Vector3
	HalfExtents rl.Vector3
	Rotation    rl.Matrix
}

// NewOrientedBox returns an axis-aligned oriented box (identity rotation).
func NewOrientedBox(center, halfExtents rl.Vector3) OrientedBox {
	return OrientedBox{
		Center:      center,
		HalfExtents: halfExtents,
		Rotation:    rl.MatrixIdentity(),
	}
}

// NewOrientedBoxFromBoundingBox returns an axis-aligned oriented box covering
// bb (e.g. the result of rl.GetModelBoundingBox).
func NewOrientedBoxFromBoundingBox(bb rl.BoundingBox) OrientedBox {
	center := rl.NewVector3(
		(bb.Min.X+bb.Max.X)*0.5,
		(bb.Min.Y+bb.Max.Y)*0.5,
		(bb.Min.Z+bb.Max.Z)*0.5,
	)
	half := rl.NewVector3(
		(bb.Max.X-bb.Min.X)*0.5,
		(bb.Max.Y-bb.Min.Y)*0.5,
		(bb.Max.Z-bb.Min.Z)*0.5,
	)
	return NewOrientedBox(center, half)
}

// Axis returns the box's i-th local axis (0=X, 1=Y, 2=Z) in world space.
func (b OrientedBox) Axis(i int) rl.Vector3 {
	switch i {
	case 0:
		return rl.NewVector3(b.Rotation.M0, b.Rotation.M1, b.Rotation.M2)
	case 1:
		return rl.NewVector3(b.Rotation.M4, b.Rotation.M5, b.Rotation.M6)
	default:
		return rl.NewVector3(b.Rotation.M8, b.Rotation.M9, b.Rotation.M10)
	}
}

// Spin returns the box with inc composed onto its rotation. inc is
// right-multiplied, so the increment applies in the box's local frame.
func (b OrientedBox) Spin(inc rl.Matrix) OrientedBox {
	b.Rotation = rl.MatrixMultiply(inc, b.Rotation)
	return b
}

// Transformed returns the box placed by an owner world transform: the center
// is mapped through the matrix and the rotation is composed with the matrix's
// rotation part. The transform must be rigid (rotation + translation).
func (b OrientedBox) Transformed(world rl.Matrix) OrientedBox {
	b.Center = rl.Vector3Transform(b.Center, world)
	b.Rotation = rl.MatrixMultiply(b.Rotation, rotationOf(world))
	return b
}

// Corners returns the box's eight corners in world space. Corner i offsets the
// center by ±HalfExtents along each axis; bit j of i selects the sign for
// axis j.
func (b OrientedBox) Corners() [8]rl.Vector3 {
	half := [3]float32{b.HalfExtents.X, b.HalfExtents.Y, b.HalfExtents.Z}
	var out [8]rl.Vector3
	for i := range out {
		c := b.Center
		for j := 0; j < 3; j++ {
			s := half[j]
			if i&(1<<j) == 0 {
				s = -s
			}
			c = rl.Vector3Add(c, rl.Vector3Scale(b.Axis(j), s))
		}
		out[i] = c
	}
	return out
}

// rotationOf returns m with its translation and projection parts cleared,
// keeping only the 3x3 rotation block.
func rotationOf(m rl.Matrix) rl.Matrix {
	m.M12, m.M13, m.M14 = 0, 0, 0
	m.M3, m.M7, m.M11, m.M15 = 0, 0, 0, 1
	return m
}
