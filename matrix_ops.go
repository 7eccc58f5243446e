package vecmath

// Add returns m + n.
func (m Matrix3[T]) Add(n Matrix3[T]) Matrix3[T] {
	var t Matrix3[T]
	for i := range t.e {
		t.e[i] = m.e[i] + n.e[i]
	}
	return t
}

// AddInPlace sets m = m + n.
func (m *Matrix3[T]) AddInPlace(n Matrix3[T]) *Matrix3[T] {
	*m = m.Add(n)
	return m
}

// Sub returns m - n.
func (m Matrix3[T]) Sub(n Matrix3[T]) Matrix3[T] {
	var t Matrix3[T]
	for i := range t.e {
		t.e[i] = m.e[i] - n.e[i]
	}
	return t
}

// SubInPlace sets m = m - n.
func (m *Matrix3[T]) SubInPlace(n Matrix3[T]) *Matrix3[T] {
	*m = m.Sub(n)
	return m
}

// Neg returns -m.
func (m Matrix3[T]) Neg() Matrix3[T] {
	var t Matrix3[T]
	for i := range t.e {
		t.e[i] = -m.e[i]
	}
	return t
}

// AddScalar returns m with d added to every element.
func (m Matrix3[T]) AddScalar(d T) Matrix3[T] {
	var t Matrix3[T]
	for i := range t.e {
		t.e[i] = m.e[i] + d
	}
	return t
}

// AddScalarInPlace adds d to every element of m.
func (m *Matrix3[T]) AddScalarInPlace(d T) *Matrix3[T] {
	*m = m.AddScalar(d)
	return m
}

// SubScalar returns m with d subtracted from every element.
func (m Matrix3[T]) SubScalar(d T) Matrix3[T] {
	var t Matrix3[T]
	for i := range t.e {
		t.e[i] = m.e[i] - d
	}
	return t
}

// SubScalarInPlace subtracts d from every element of m.
func (m *Matrix3[T]) SubScalarInPlace(d T) *Matrix3[T] {
	*m = m.SubScalar(d)
	return m
}

// MulScalar returns m with every element multiplied by d.
func (m Matrix3[T]) MulScalar(d T) Matrix3[T] {
	var t Matrix3[T]
	for i := range t.e {
		t.e[i] = m.e[i] * d
	}
	return t
}

// MulScalarInPlace multiplies every element of m by d.
func (m *Matrix3[T]) MulScalarInPlace(d T) *Matrix3[T] {
	*m = m.MulScalar(d)
	return m
}

// DivScalar returns m with every element divided by d.
//
// The reciprocal 1/d is computed once and multiplied in. Division by zero
// follows the scalar type: ±Inf or NaN for floats, a runtime panic for
// integers. For integer scalars the reciprocal truncates, so any |d| > 1
// yields the null matrix.
func (m Matrix3[T]) DivScalar(d T) Matrix3[T] {
	return m.MulScalar(1 / d)
}

// DivScalarInPlace divides every element of m by d. See [Matrix3.DivScalar].
func (m *Matrix3[T]) DivScalarInPlace(d T) *Matrix3[T] {
	*m = m.DivScalar(d)
	return m
}

// Mul returns the matrix product m * n.
//
// Applied to a column vector the result transforms by n first, then by m:
// m.Mul(n).ApplyToColumn(v) == m.ApplyToColumn(n.ApplyToColumn(v)).
func (m Matrix3[T]) Mul(n Matrix3[T]) Matrix3[T] {
	return Mul3(m, n)
}

// MulInPlace sets m = m * n.
func (m *Matrix3[T]) MulInPlace(n Matrix3[T]) *Matrix3[T] {
	*m = Mul3(*m, n)
	return m
}

// Mul3 returns m2 * m1: the transform that applies m1 first, then m2.
func Mul3[T Scalar](m2, m1 Matrix3[T]) Matrix3[T] {
	a, b := &m2.e, &m1.e
	return Matrix3[T]{e: [9]T{
		a[0]*b[0] + a[3]*b[1] + a[6]*b[2],
		a[1]*b[0] + a[4]*b[1] + a[7]*b[2],
		a[2]*b[0] + a[5]*b[1] + a[8]*b[2],

		a[0]*b[3] + a[3]*b[4] + a[6]*b[5],
		a[1]*b[3] + a[4]*b[4] + a[7]*b[5],
		a[2]*b[3] + a[5]*b[4] + a[8]*b[5],

		a[0]*b[6] + a[3]*b[7] + a[6]*b[8],
		a[1]*b[6] + a[4]*b[7] + a[7]*b[8],
		a[2]*b[6] + a[5]*b[7] + a[8]*b[8],
	}}
}

// ApplyToColumn returns m * v, treating v as a column vector.
func (m Matrix3[T]) ApplyToColumn(v Vec3[T]) Vec3[T] {
	return Vec3[T]{
		X: v.X*m.e[0] + v.Y*m.e[3] + v.Z*m.e[6],
		Y: v.X*m.e[1] + v.Y*m.e[4] + v.Z*m.e[7],
		Z: v.X*m.e[2] + v.Y*m.e[5] + v.Z*m.e[8],
	}
}

// ApplyToColumn2 returns m * v with v taken as a column (x, y, 0).
// Only the linear part applies; the translation column is ignored.
// Use [Matrix3.TransformPoint] for positions.
func (m Matrix3[T]) ApplyToColumn2(v Vec2[T]) Vec2[T] {
	return Vec2[T]{
		X: v.X*m.e[0] + v.Y*m.e[3],
		Y: v.X*m.e[1] + v.Y*m.e[4],
	}
}

// ApplyToRow returns v * m, treating v as a row vector. This is the same
// as applying the transpose of m to v as a column.
func (m Matrix3[T]) ApplyToRow(v Vec3[T]) Vec3[T] {
	return Vec3[T]{
		X: v.X*m.e[0] + v.Y*m.e[1] + v.Z*m.e[2],
		Y: v.X*m.e[3] + v.Y*m.e[4] + v.Z*m.e[5],
		Z: v.X*m.e[6] + v.Y*m.e[7] + v.Z*m.e[8],
	}
}

// ApplyToRow2 returns v * m with v taken as a row (x, y, 0), dropping the
// third component of the result.
func (m Matrix3[T]) ApplyToRow2(v Vec2[T]) Vec2[T] {
	return Vec2[T]{
		X: v.X*m.e[0] + v.Y*m.e[1],
		Y: v.X*m.e[3] + v.Y*m.e[4],
	}
}

// TransformPoint applies m to the position p, taken as (x, y, 1), so the
// translation column is included. The bottom row is assumed to be 0 0 1.
func (m Matrix3[T]) TransformPoint(p Vec2[T]) Vec2[T] {
	return Vec2[T]{
		X: p.X*m.e[0] + p.Y*m.e[3] + m.e[6],
		Y: p.X*m.e[1] + p.Y*m.e[4] + m.e[7],
	}
}

// Diff returns the sum of the absolute element-wise differences between m
// and n. It is zero for identical matrices and never negative, which makes
// it usable as an error metric where exact equality is too strict.
func (m Matrix3[T]) Diff(n Matrix3[T]) T {
	var sum T
	for i := range m.e {
		// No abs: unsigned scalars have no sign to strip.
		if m.e[i] > n.e[i] {
			sum += m.e[i] - n.e[i]
		} else {
			sum += n.e[i] - m.e[i]
		}
	}
	return sum
}
