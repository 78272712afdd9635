package sim

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/require"

	"collision-lab/internal/collision"
)

func TestAdvanceKeepsSpeedInsideBounds(t *testing.T) {
	starts := []float32{0, -100, 100, 149.4, -149.4}
	for _, p := range starts {
		b := NewMovingBody(0.5)
		b.Position = p
		b.Advance()
		require.Equal(t, float32(0.5), b.Speed, "start %v", p)
		require.Equal(t, p+0.5, b.Position)
	}
}

func TestAdvanceReflectsPastUpperBound(t *testing.T) {
	b := NewMovingBody(0.5)
	b.Position = 149.6

	b.Advance()
	require.Equal(t, float32(150.1), b.Position, "overshoot is not clamped")
	require.Equal(t, float32(-0.5), b.Speed, "speed flips on the crossing tick")

	b.Advance()
	require.Equal(t, float32(149.6), b.Position)
	require.Equal(t, float32(-0.5), b.Speed, "no second flip once heading back")
}

func TestAdvanceReflectsPastLowerBound(t *testing.T) {
	b := NewMovingBody(-0.5)
	b.Position = -149.6

	b.Advance()
	require.Equal(t, float32(-150.1), b.Position)
	require.Equal(t, float32(0.5), b.Speed)
}

func TestReflectionTickFromOrigin(t *testing.T) {
	b := NewMovingBody(0.5)

	flipTick := 0
	for tick := 1; tick <= 400; tick++ {
		b.Advance()
		if b.Speed < 0 {
			flipTick = tick
			break
		}
	}

	// 150/0.5 ticks reach the bound exactly; the flip happens one step later,
	// on the first position strictly outside it.
	require.Equal(t, 301, flipTick)
	require.Equal(t, float32(150.5), b.Position)
}

func TestCustomBounds(t *testing.T) {
	b := NewMovingBody(2)
	b.BoundMin, b.BoundMax = -5, 5
	b.Position = 4

	b.Advance()
	require.Equal(t, float32(6), b.Position)
	require.Equal(t, float32(-2), b.Speed)
}

// testState builds a minimal state around an origin-centered box without
// loading any model.
func testState(half rl.Vector3, radius, bodyPos, speed float32) *State {
	base := collision.NewOrientedBox(rl.NewVector3(0, 0, 0), half)
	body := NewMovingBody(speed)
	body.Position = bodyPos
	return &State{
		ModelTransform: rl.MatrixIdentity(),
		BaseBox:        base,
		Box:            base,
		Body:           body,
		Sphere:         collision.NewSphere(rl.NewVector3(bodyPos, 0, 0), radius),
		SpinStep:       rl.MatrixRotateZ(spinStepAngle),
	}
}

func TestTickClassifiesOverlap(t *testing.T) {
	t.Run("sphere inside box", func(t *testing.T) {
		s := testState(rl.NewVector3(5, 5, 5), 1, 4, 0)
		Tick(s)
		require.True(t, s.Colliding)
	})

	t.Run("sphere far away", func(t *testing.T) {
		s := testState(rl.NewVector3(5, 5, 5), 1, 20, 0)
		Tick(s)
		require.False(t, s.Colliding)
	})
}

func TestTickMovesSphereWithBody(t *testing.T) {
	s := testState(rl.NewVector3(5, 5, 5), 1, 0, 0.5)
	Tick(s)
	require.Equal(t, float32(0.5), s.Body.Position)
	require.Equal(t, float32(0.5), s.Sphere.Center.X)
	require.Equal(t, float32(1), s.Sphere.Radius, "radius never changes")
}

func TestTickSpinsBox(t *testing.T) {
	s := testState(rl.NewVector3(5, 5, 5), 1, 0, 0)
	for i := 0; i < 10; i++ {
		Tick(s)
	}
	x := s.Box.Axis(0)
	require.NotZero(t, x.Y, "box rotated about Z")
	z := s.Box.Axis(2)
	require.InDelta(t, 1, z.Z, 1e-6, "spin axis unchanged")
}
