package vecmath

// Determinant returns the determinant of m.
func (m Matrix3[T]) Determinant() T {
	e := &m.e
	return e[0]*(e[8]*e[4]-e[7]*e[5]) +
		e[3]*(e[7]*e[2]-e[8]*e[1]) +
		e[6]*(e[5]*e[1]-e[4]*e[2])
}

// InverseInto writes the inverse of m into dest and returns the
// determinant.
//
// The inverse is the adjugate divided by the determinant. A singular
// matrix (determinant exactly zero) has no inverse: dest is set to the
// null matrix and 0 is returned. Callers that depend on invertibility must
// check the determinant. dest may point at the matrix m was read from.
//
// Integer instantiations divide through a truncated reciprocal (see
// [Matrix3.DivScalar]), so their inverse is exact only when det is ±1.
func (m Matrix3[T]) InverseInto(dest *Matrix3[T]) T {
	a11, a12, a13 := m.e[0], m.e[1], m.e[2]
	a21, a22, a23 := m.e[3], m.e[4], m.e[5]
	a31, a32, a33 := m.e[6], m.e[7], m.e[8]

	// First column of the adjugate; the determinant expands along it.
	c0 := a33*a22 - a32*a23
	c1 := a32*a13 - a33*a12
	c2 := a23*a12 - a22*a13

	det := a11*c0 + a21*c1 + a31*c2

	var tmp Matrix3[T]
	if det == 0 {
		Logger().Debug("vecmath: inverting singular matrix", "matrix", m)
	} else {
		tmp = FromColumns(
			c0, c1, c2,
			a31*a23-a33*a21, a33*a11-a31*a13, a21*a13-a23*a11,
			a32*a21-a31*a22, a31*a12-a32*a11, a22*a11-a21*a12,
		).DivScalar(det)
	}
	*dest = tmp
	return det
}

// Inverse returns the inverse of m and its determinant, leaving m
// unchanged. See [Matrix3.InverseInto] for the singular case.
func (m Matrix3[T]) Inverse() (Matrix3[T], T) {
	var inv Matrix3[T]
	det := m.InverseInto(&inv)
	return inv, det
}

// Invert replaces m with its inverse and returns the determinant.
// A singular m becomes the null matrix.
func (m *Matrix3[T]) Invert() T {
	return m.InverseInto(m)
}
