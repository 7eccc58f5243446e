package vecmath

// Matrix2 is a column-major 2×2 matrix. It only carries what Matrix3 needs
// to read and write its upper-left linear block.
type Matrix2[T Scalar] struct {
	e [4]T
}

// Identity2 returns the 2×2 identity matrix.
func Identity2[T Scalar]() Matrix2[T] {
	return Matrix2[T]{e: [4]T{1, 0, 0, 1}}
}

// NewMatrix2 builds a matrix column by column: (e00, e10) is the first
// column and (e01, e11) the second.
func NewMatrix2[T Scalar](e00, e10, e01, e11 T) Matrix2[T] {
	return Matrix2[T]{e: [4]T{e00, e10, e01, e11}}
}

// At returns the element at row i, column j.
func (m Matrix2[T]) At(i, j int) T {
	return m.e[j*2+i]
}

// Set stores v at row i, column j.
func (m *Matrix2[T]) Set(i, j int, v T) {
	m.e[j*2+i] = v
}

// Array returns the elements in column-major order.
func (m Matrix2[T]) Array() [4]T {
	return m.e
}
