package vecmath

import (
	"fmt"
	"strings"
)

// Matrix3 is a 3×3 matrix used for 2D affine and 3×3 linear transforms.
//
// Elements are stored column-major: three contiguous columns, each a
// 3-vector, so element (row i, column j) lives at index j*3+i. For an
// affine transform the upper-left 2×2 block is the linear part and column 2
// holds the translation:
//
//	| e00  e01  tx |
//	| e10  e11  ty |
//	|  0    0    1 |
//
// Matrix3 is a plain value: assignment copies all nine elements and == is
// exact element comparison. The zero value is the null matrix; use
// [NewMatrix3] or [Identity3] for the identity.
type Matrix3[T Scalar] struct {
	e [9]T
}

// NewMatrix3 returns the identity matrix.
func NewMatrix3[T Scalar]() Matrix3[T] {
	return Identity3[T]()
}

// Identity3 returns the identity matrix.
func Identity3[T Scalar]() Matrix3[T] {
	return Matrix3[T]{e: [9]T{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}}
}

// Null3 returns the matrix with every element set to zero.
func Null3[T Scalar]() Matrix3[T] {
	return Matrix3[T]{}
}

// Diagonal3 returns the identity matrix with n on the whole diagonal.
func Diagonal3[T Scalar](n T) Matrix3[T] {
	m := Identity3[T]()
	m.e[0], m.e[4], m.e[8] = n, n, n
	return m
}

// FromColumns builds a matrix from nine elements given column by column:
// the first three arguments are column 0 from top to bottom.
func FromColumns[T Scalar](e00, e10, e20, e01, e11, e21, e02, e12, e22 T) Matrix3[T] {
	return Matrix3[T]{e: [9]T{
		e00, e10, e20,
		e01, e11, e21,
		e02, e12, e22,
	}}
}

// FromRows builds a matrix from nine elements given row by row, the way a
// matrix is usually written on paper.
func FromRows[T Scalar](e00, e01, e02, e10, e11, e12, e20, e21, e22 T) Matrix3[T] {
	return FromColumns(e00, e10, e20, e01, e11, e21, e02, e12, e22)
}

// FromArray builds a matrix from a column-major buffer.
func FromArray[T Scalar](a [9]T) Matrix3[T] {
	return Matrix3[T]{e: a}
}

// Convert returns a copy of m with every element converted to D.
func Convert[D, S Scalar](m Matrix3[S]) Matrix3[D] {
	var out Matrix3[D]
	for i, v := range m.e {
		out.e[i] = D(v)
	}
	return out
}

// At returns the element at row i, column j. Indices outside [0,2] panic.
func (m Matrix3[T]) At(i, j int) T {
	return m.e[j*3+i]
}

// Set stores v at row i, column j. Indices outside [0,2] panic.
func (m *Matrix3[T]) Set(i, j int, v T) {
	m.e[j*3+i] = v
}

// Ptr returns the backing buffer. Writes through the pointer modify m.
// The layout is column-major, ready to hand to APIs expecting that order.
func (m *Matrix3[T]) Ptr() *[9]T {
	return &m.e
}

// Array returns a copy of the elements in column-major order.
func (m Matrix3[T]) Array() [9]T {
	return m.e
}

// Col returns column j.
func (m Matrix3[T]) Col(j int) Vec3[T] {
	return Vec3[T]{X: m.e[j*3], Y: m.e[j*3+1], Z: m.e[j*3+2]}
}

// SetCol replaces column j.
func (m *Matrix3[T]) SetCol(j int, v Vec3[T]) *Matrix3[T] {
	m.e[j*3], m.e[j*3+1], m.e[j*3+2] = v.X, v.Y, v.Z
	return m
}

// Row returns row i.
func (m Matrix3[T]) Row(i int) Vec3[T] {
	return Vec3[T]{X: m.e[i], Y: m.e[3+i], Z: m.e[6+i]}
}

// AxisX returns the transformed x axis: the upper two elements of column 0.
func (m Matrix3[T]) AxisX() Vec2[T] {
	return Vec2[T]{X: m.e[0], Y: m.e[1]}
}

// AxisY returns the transformed y axis: the upper two elements of column 1.
func (m Matrix3[T]) AxisY() Vec2[T] {
	return Vec2[T]{X: m.e[3], Y: m.e[4]}
}

// Translation returns the translation: the upper two elements of column 2.
func (m Matrix3[T]) Translation() Vec2[T] {
	return Vec2[T]{X: m.e[6], Y: m.e[7]}
}

// SetAxisX writes the upper two elements of column 0.
func (m *Matrix3[T]) SetAxisX(v Vec2[T]) *Matrix3[T] {
	m.e[0], m.e[1] = v.X, v.Y
	return m
}

// SetAxisY writes the upper two elements of column 1.
func (m *Matrix3[T]) SetAxisY(v Vec2[T]) *Matrix3[T] {
	m.e[3], m.e[4] = v.X, v.Y
	return m
}

// SetTranslation writes the upper two elements of column 2.
func (m *Matrix3[T]) SetTranslation(v Vec2[T]) *Matrix3[T] {
	m.e[6], m.e[7] = v.X, v.Y
	return m
}

// Fill sets every element to v.
func (m *Matrix3[T]) Fill(v T) *Matrix3[T] {
	for i := range m.e {
		m.e[i] = v
	}
	return m
}

// SetIdentity resets m to the identity matrix.
func (m *Matrix3[T]) SetIdentity() *Matrix3[T] {
	*m = Identity3[T]()
	return m
}

// SetNull sets every element of m to zero.
func (m *Matrix3[T]) SetNull() *Matrix3[T] {
	return m.Fill(0)
}

// IsIdentity reports whether m is exactly the identity matrix.
func (m Matrix3[T]) IsIdentity() bool {
	return m == Identity3[T]()
}

// IsNull reports whether every element of m is exactly zero.
func (m Matrix3[T]) IsNull() bool {
	for _, v := range m.e {
		if v != 0 {
			return false
		}
	}
	return true
}

// Equal reports whether m and n are element-wise identical.
// There is no tolerance; use [Matrix3.Diff] to measure closeness.
func (m Matrix3[T]) Equal(n Matrix3[T]) bool {
	return m.e == n.e
}

// Transpose swaps rows and columns of m in place.
func (m *Matrix3[T]) Transpose() *Matrix3[T] {
	m.e[1], m.e[3] = m.e[3], m.e[1]
	m.e[2], m.e[6] = m.e[6], m.e[2]
	m.e[5], m.e[7] = m.e[7], m.e[5]
	return m
}

// Transposed returns the transpose of m.
func (m Matrix3[T]) Transposed() Matrix3[T] {
	var t Matrix3[T]
	m.TransposedInto(&t)
	return t
}

// TransposedInto writes the transpose of m into dest and returns dest.
func (m Matrix3[T]) TransposedInto(dest *Matrix3[T]) *Matrix3[T] {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			dest.e[i*3+j] = m.e[j*3+i]
		}
	}
	return dest
}

// Get2x2 returns the upper-left 2×2 block.
func (m Matrix3[T]) Get2x2() Matrix2[T] {
	return NewMatrix2(m.e[0], m.e[1], m.e[3], m.e[4])
}

// Set2x2 overwrites the upper-left 2×2 block. The last row and column,
// including the translation, are left untouched.
func (m *Matrix3[T]) Set2x2(b Matrix2[T]) *Matrix3[T] {
	m.e[0], m.e[1] = b.At(0, 0), b.At(1, 0)
	m.e[3], m.e[4] = b.At(0, 1), b.At(1, 1)
	return m
}

// String formats m row by row, e.g. "[1 0 3; 0 1 4; 0 0 1]".
func (m Matrix3[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < 3; i++ {
		if i > 0 {
			sb.WriteString("; ")
		}
		fmt.Fprintf(&sb, "%v %v %v", m.e[i], m.e[3+i], m.e[6+i])
	}
	sb.WriteByte(']')
	return sb.String()
}
