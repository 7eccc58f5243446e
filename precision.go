package vecmath

// Fixed-precision instantiations. The integer variants use 32-bit elements
// to match the GL/WGSL integer matrix types.
type (
	// DMat3 is a 3×3 matrix of float64.
	DMat3 = Matrix3[float64]
	// FMat3 is a 3×3 matrix of float32.
	FMat3 = Matrix3[float32]
	// IMat3 is a 3×3 matrix of int32.
	IMat3 = Matrix3[int32]
	// UMat3 is a 3×3 matrix of uint32.
	UMat3 = Matrix3[uint32]

	DVec2 = Vec2[float64]
	FVec2 = Vec2[float32]
	IVec2 = Vec2[int32]
	UVec2 = Vec2[uint32]

	DVec3 = Vec3[float64]
	FVec3 = Vec3[float32]
	IVec3 = Vec3[int32]
	UVec3 = Vec3[uint32]

	DMat2 = Matrix2[float64]
	FMat2 = Matrix2[float32]
)
