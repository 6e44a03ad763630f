package engine

// Vector4 is a position in screen space. Z orders layers, W is unused by
// the 2D renderer but kept so positions round-trip through the API intact.
type Vector4 struct {
	X float32
	Y float32
	Z float32
	W float32
}

func NewVector4(x, y, z float32) Vector4 {
	return Vector4{X: x, Y: y, Z: z}
}

// Sprite is an untextured quad centred on Position.
type Sprite struct {
	Position Vector4
	Width    float32
	Height   float32
	// Rotation is consumed by renderers as radians.
	Rotation float32
	// Colour is packed ABGR.
	Colour uint32
}

// NewSprite returns a white sprite with no size at the origin.
func NewSprite() Sprite {
	return Sprite{Colour: 0xffffffff}
}

func (s *Sprite) SetPosition(x, y, z float32) {
	s.Position = NewVector4(x, y, z)
}
