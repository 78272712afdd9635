package sim

// Default travel bounds for the moving body, symmetric about the origin.
const (
	DefaultBoundMin = float32(-150)
	DefaultBoundMax = float32(150)
)

// MovingBody travels along the X axis between two bounds. Position is a scalar
// offset; Speed is signed and flips at the bounds.
type MovingBody struct {
	Position float32
	Speed    float32
	BoundMin float32
	BoundMax float32
}

// NewMovingBody returns a body at the origin with the given speed and the
// default bounds.
func NewMovingBody(speed float32) MovingBody {
	return MovingBody{Speed: speed, BoundMin: DefaultBoundMin, BoundMax: DefaultBoundMax}
}

// Advance moves the body one tick. Speed is negated on the tick whose advanced
// position lies outside [BoundMin, BoundMax]; the position is not clamped, so
// the body overshoots the bound for exactly one step before heading back.
func (b *MovingBody) Advance() {
	b.Position += b.Speed
	if b.Position > b.BoundMax || b.Position < b.BoundMin {
		b.Speed = -b.Speed
	}
}
