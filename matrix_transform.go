package vecmath

import "math"

// Rotation3 returns a counter-clockwise rotation by degrees about the
// origin. The angle is in degrees, not radians.
//
//	| cos -sin  0 |
//	| sin  cos  0 |
//	|  0    0   1 |
func Rotation3[T Scalar](degrees T) Matrix3[T] {
	rad := float64(degrees) * degToRad
	s, c := T(math.Sin(rad)), T(math.Cos(rad))
	m := Identity3[T]()
	m.e[0], m.e[1] = c, s
	m.e[3], m.e[4] = -s, c
	return m
}

// Translation3 returns a translation by (x, y).
func Translation3[T Scalar](x, y T) Matrix3[T] {
	m := Identity3[T]()
	m.e[6], m.e[7] = x, y
	return m
}

// Translation3V returns a translation by v.
func Translation3V[T Scalar](v Vec2[T]) Matrix3[T] {
	return Translation3(v.X, v.Y)
}

// Scaling3 returns a scale by x along the x axis and y along the y axis.
func Scaling3[T Scalar](x, y T) Matrix3[T] {
	m := Identity3[T]()
	m.e[0], m.e[4] = x, y
	return m
}

// Rotate sets m = Rotation3(degrees) * m: the rotation is applied after
// the transform m already describes.
func (m *Matrix3[T]) Rotate(degrees T) *Matrix3[T] {
	*m = Mul3(Rotation3(degrees), *m)
	return m
}

// Scale sets m = Scaling3(x, y) * m: the scale is applied after the
// transform m already describes.
func (m *Matrix3[T]) Scale(x, y T) *Matrix3[T] {
	*m = Mul3(Scaling3(x, y), *m)
	return m
}

// Translate sets m = m * Translation3(x, y): the translation is applied
// BEFORE the transform m already describes.
//
// This is the opposite side from [Matrix3.TranslateV], which
// pre-multiplies. Both are kept for compatibility with existing callers.
func (m *Matrix3[T]) Translate(x, y T) *Matrix3[T] {
	*m = Mul3(*m, Translation3(x, y))
	return m
}

// TranslateV sets m = Translation3V(v) * m: the translation is applied
// after the transform m already describes, like [Matrix3.Rotate] and
// [Matrix3.Scale]. See [Matrix3.Translate] for the scalar form, which
// composes on the other side.
func (m *Matrix3[T]) TranslateV(v Vec2[T]) *Matrix3[T] {
	*m = Mul3(Translation3V(v), *m)
	return m
}
