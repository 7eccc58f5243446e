//go:build vecmath_double

package vecmath

// PipelinePrecision is 1 when the pipeline default is float32 and 2 when
// it is float64. Build with -tags vecmath_double to select float64.
const PipelinePrecision = 2

// Real is the pipeline-wide default floating-point scalar.
type Real = float64

// Matrix and vector aliases at the pipeline default precision.
type (
	Mat3   = DMat3
	Mat2   = DMat2
	Point2 = DVec2
	Point3 = DVec3
)
