// Package vecmath provides small value-type vectors and matrices for the
// gogpu rendering stack.
//
// # Overview
//
// The centre of the package is [Matrix3], a 3×3 matrix generic over its
// scalar type. It represents 2D affine transforms (linear 2×2 block plus a
// translation column) and general 3×3 linear transforms.
//
//	import "github.com/gogpu/vecmath"
//
//	m := vecmath.Scaling3(2.0, 2.0)
//	m.Rotate(90)                      // m = R(90) * m
//	m.TranslateV(vecmath.V2(10.0, 0)) // m = T(10, 0) * m
//
//	p := m.TransformPoint(vecmath.V2(1.0, 0))
//	inv, det := m.Inverse()
//
// # Conventions
//
//   - Storage is column-major; element (row i, column j) is At(i, j) and
//     lives at buffer index j*3+i. [Matrix3.Ptr] exposes that buffer.
//   - Angles are in degrees.
//   - m2.Mul(m1) applies m1 first, then m2, to a column vector.
//   - Vec2 arguments to ApplyToColumn2/ApplyToRow2 are directions (z = 0);
//     translation is not applied. TransformPoint treats them as positions.
//   - Equality is exact. [Matrix3.Diff] measures distance.
//   - Inverting a singular matrix yields the null matrix and a zero
//     determinant. Nothing in the matrix core returns an error.
//
// # Precision
//
// [DMat3], [FMat3], [IMat3] and [UMat3] fix the scalar type. [Mat3] is the
// pipeline default: float32, or float64 when built with
// -tags vecmath_double.
//
// # Interop
//
// Conversions to golang.org/x/image/math/f32 and f64 live in this package.
// Packing into a WGSL mat3x3<f32> uniform lives in package uniform.
//
// Matrices are plain values with no shared state; independent values may
// be used from any number of goroutines.
package vecmath

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
