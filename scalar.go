package vecmath

// Scalar is the set of element types a vector or matrix can be built on.
//
// Every member supports + - * /, unary minus, == and ordering, and converts
// to and from float64 for the trigonometry in [Rotation3].
type Scalar interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// degToRad converts degrees to radians.
const degToRad = 0.017453292519943295769236907684886
