package vecmath

import (
	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/f64"
)

// The golang.org/x/image/math types are row-major. Converting reorders
// storage only; the matrix itself is unchanged.

// FromF64Mat3 converts a row-major x/image matrix.
func FromF64Mat3(a f64.Mat3) DMat3 {
	return FromRows(a[0], a[1], a[2], a[3], a[4], a[5], a[6], a[7], a[8])
}

// ToF64Mat3 converts m to a row-major x/image matrix.
func ToF64Mat3(m DMat3) f64.Mat3 {
	return f64.Mat3(m.Transposed().e)
}

// FromF32Mat3 converts a row-major x/image matrix.
func FromF32Mat3(a f32.Mat3) FMat3 {
	return FromRows(a[0], a[1], a[2], a[3], a[4], a[5], a[6], a[7], a[8])
}

// ToF32Mat3 converts m to a row-major x/image matrix.
func ToF32Mat3(m FMat3) f32.Mat3 {
	return f32.Mat3(m.Transposed().e)
}

// FromAff3 converts an x/image affine transform, adding the 0 0 1 bottom
// row.
func FromAff3(a f64.Aff3) DMat3 {
	return FromRows(
		a[0], a[1], a[2],
		a[3], a[4], a[5],
		0, 0, 1,
	)
}

// ToAff3 returns the top two rows of m as an x/image affine transform,
// suitable for golang.org/x/image/draw.Transformer. The bottom row is
// dropped, so m should be affine.
func ToAff3(m DMat3) f64.Aff3 {
	return f64.Aff3{
		m.At(0, 0), m.At(0, 1), m.At(0, 2),
		m.At(1, 0), m.At(1, 1), m.At(1, 2),
	}
}

// FromF32Aff3 is the float32 form of [FromAff3].
func FromF32Aff3(a f32.Aff3) FMat3 {
	return FromRows(
		a[0], a[1], a[2],
		a[3], a[4], a[5],
		0, 0, 1,
	)
}

// ToF32Aff3 is the float32 form of [ToAff3].
func ToF32Aff3(m FMat3) f32.Aff3 {
	return f32.Aff3{
		m.At(0, 0), m.At(0, 1), m.At(0, 2),
		m.At(1, 0), m.At(1, 1), m.At(1, 2),
	}
}
