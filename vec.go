package vecmath

import "math"

// Vec2 represents a 2-component vector.
// Matrix3 treats it as a direction (z = 0) unless a method says otherwise.
type Vec2[T Scalar] struct {
	X, Y T
}

// V2 is a convenience function to create a Vec2.
func V2[T Scalar](x, y T) Vec2[T] {
	return Vec2[T]{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vec2[T]) Add(w Vec2[T]) Vec2[T] {
	return Vec2[T]{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2[T]) Sub(w Vec2[T]) Vec2[T] {
	return Vec2[T]{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2[T]) Mul(s T) Vec2[T] {
	return Vec2[T]{X: v.X * s, Y: v.Y * s}
}

// Neg returns the negation of the vector.
func (v Vec2[T]) Neg() Vec2[T] {
	return Vec2[T]{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product of two vectors.
func (v Vec2[T]) Dot(w Vec2[T]) T {
	return v.X*w.X + v.Y*w.Y
}

// XYZ extends the vector with the given z component.
func (v Vec2[T]) XYZ(z T) Vec3[T] {
	return Vec3[T]{X: v.X, Y: v.Y, Z: z}
}

// Approx returns true if two vectors are approximately equal within epsilon.
func (v Vec2[T]) Approx(w Vec2[T], epsilon float64) bool {
	return approx(v.X, w.X, epsilon) && approx(v.Y, w.Y, epsilon)
}

// Vec3 represents a 3-component vector. Matrix3 stores its columns as Vec3.
type Vec3[T Scalar] struct {
	X, Y, Z T
}

// V3 is a convenience function to create a Vec3.
func V3[T Scalar](x, y, z T) Vec3[T] {
	return Vec3[T]{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors.
func (v Vec3[T]) Add(w Vec3[T]) Vec3[T] {
	return Vec3[T]{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

// Sub returns the difference of two vectors.
func (v Vec3[T]) Sub(w Vec3[T]) Vec3[T] {
	return Vec3[T]{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z}
}

// Mul returns the vector scaled by a scalar.
func (v Vec3[T]) Mul(s T) Vec3[T] {
	return Vec3[T]{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Neg returns the negation of the vector.
func (v Vec3[T]) Neg() Vec3[T] {
	return Vec3[T]{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Dot returns the dot product of two vectors.
func (v Vec3[T]) Dot(w Vec3[T]) T {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// XY drops the z component.
func (v Vec3[T]) XY() Vec2[T] {
	return Vec2[T]{X: v.X, Y: v.Y}
}

// Approx returns true if two vectors are approximately equal within epsilon.
func (v Vec3[T]) Approx(w Vec3[T], epsilon float64) bool {
	return approx(v.X, w.X, epsilon) && approx(v.Y, w.Y, epsilon) && approx(v.Z, w.Z, epsilon)
}

func approx[T Scalar](a, b T, epsilon float64) bool {
	return math.Abs(float64(a)-float64(b)) < epsilon
}
