package math3d

import "github.com/chewxy/math32"

// EuclideanSpace is anything with a scalar product against V.
type EuclideanSpace[V any] interface {
	Dot(V) float32
}

// VecSpace is the set of linear operations shared by every vector-like type
// in this package. The length, normalization and projection helpers below are
// written once against it.
type VecSpace[V any] interface {
	EuclideanSpace[V]
	Add(V) V
	Sub(V) V
	Scale(float32) V
	Div(float32) V
	Negate() V
}

// LenSq returns v·v.
func LenSq[V VecSpace[V]](v V) float32 {
	return v.Dot(v)
}

// Len returns the Euclidean length of v.
func Len[V VecSpace[V]](v V) float32 {
	return math32.Sqrt(LenSq(v))
}

// Normalize returns v scaled to unit length.
// The zero vector yields NaN components; callers must not pass it.
func Normalize[V VecSpace[V]](v V) V {
	return v.Div(Len(v))
}

// ProjectOn returns the component of v parallel to on.
// on must be non-zero, otherwise the result is NaN or Inf.
func ProjectOn[V VecSpace[V]](v, on V) V {
	return on.Scale(v.Dot(on) / LenSq(on))
}

// RejectOn returns the component of v perpendicular to on.
func RejectOn[V VecSpace[V]](v, on V) V {
	return v.Sub(ProjectOn(v, on))
}

// Mat is a matrix addressed by columns and rows of type C.
type Mat[M, C any] interface {
	Col(i int) C
	Row(i int) C
	Transpose() M
}

// SquareMat adds the square-matrix operations. Invert reports false for a
// singular matrix, detected by an exact zero determinant.
type SquareMat[M, C any] interface {
	Mat[M, C]
	Mul(M) M
	MulVec(C) C
	Determinant() float32
	Invert() (M, bool)
}

var (
	_ VecSpace[Vec3] = Vec3{}
	_ VecSpace[Vec4] = Vec4{}
	_ VecSpace[Pt3]  = Pt3{}
	_ VecSpace[Quat] = Quat{}

	_ EuclideanSpace[Vec3] = Plane{}

	_ SquareMat[Mat3, Vec3] = Mat3{}
	_ SquareMat[Mat4, Vec4] = Mat4{}
	_ Mat[Mat4, Vec4]       = Transform4{}
)
