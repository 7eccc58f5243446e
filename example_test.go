package vecmath_test

import (
	"fmt"

	"github.com/gogpu/vecmath"
)

func ExampleTranslation3() {
	m := vecmath.Translation3(3.0, 4.0)
	fmt.Println(m.ApplyToColumn(vecmath.V3(1.0, 1, 1)))
	// Output: {4 5 1}
}

func ExampleScaling3() {
	m := vecmath.Scaling3(2.0, 3.0)
	fmt.Println(m.ApplyToColumn2(vecmath.V2(1.0, 1)))
	// Output: {2 3}
}

func ExampleMatrix3_Inverse() {
	m := vecmath.FromRows(
		2.0, 0, 6,
		0, 4, 8,
		0, 0, 1,
	)
	inv, det := m.Inverse()
	fmt.Println(det)
	fmt.Println(inv)

	singular, det := vecmath.Null3[float64]().Inverse()
	fmt.Println(det, singular.IsNull())
	// Output:
	// 8
	// [0.5 0 -3; 0 0.25 -2; 0 0 1]
	// 0 true
}

func ExampleMatrix3_Mul() {
	// Mul applies the right-hand matrix first.
	scale := vecmath.Scaling3(2.0, 2.0)
	move := vecmath.Translation3(10.0, 0)
	fmt.Println(move.Mul(scale).TransformPoint(vecmath.V2(1.0, 1)))
	fmt.Println(scale.Mul(move).TransformPoint(vecmath.V2(1.0, 1)))
	// Output:
	// {12 2}
	// {22 2}
}
