package collision

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Sphere is a bounding sphere: a world-space center and a radius that stays
// fixed after creation.
type Sphere struct {
	Center rl.Vector3
	Radius float32
}

// NewSphere returns a sphere at center with the given radius.
func NewSphere(center rl.Vector3, radius float32) Sphere {
	return Sphere{Center: center, Radius: radius}
}

// Moved returns the sphere re-centered at p. Radius is unchanged.
func (s Sphere) Moved(p rl.Vector3) Sphere {
	s.Center = p
	return s
}

// Intersects reports whether box and sphere overlap. The sphere center is
// projected onto each box axis and clamped to the half extents, giving the
// closest point on the box; the volumes overlap when the squared distance from
// the sphere center to that point is at most Radius². The boundary is closed:
// exact tangency counts as an intersection.
func Intersects(box OrientedBox, s Sphere) bool {
	d := rl.Vector3Subtract(s.Center, box.Center)
	half := [3]float32{box.HalfExtents.X, box.HalfExtents.Y, box.HalfExtents.Z}
	closest := box.Center
	for i := 0; i < 3; i++ {
		axis := box.Axis(i)
		dist := rl.Vector3DotProduct(d, axis)
		dist = math32.Max(-half[i], math32.Min(half[i], dist))
		closest = rl.Vector3Add(closest, rl.Vector3Scale(axis, dist))
	}
	diff := rl.Vector3Subtract(s.Center, closest)
	return rl.Vector3DotProduct(diff, diff) <= s.Radius*s.Radius
}
