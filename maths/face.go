package maths

import (
	"math"
	"math/cmplx"

	"golang.org/x/exp/constraints"
)

// Epsilon 浮点精度阈值
const Epsilon = 1e-16

// Number 是一个约束，允许任何浮点或复数类型。
// 引擎中所有矩阵、向量与加盖累加均以该约束为标量类型参数，
// 以便后续扩展到复数或更高精度的运算。
type Number interface {
	constraints.Float | constraints.Complex
}

// abs 是一个泛型函数，返回任何支持的 Number 类型的绝对值（复数取模）。
func abs[T Number](v T) float64 {
	switch x := any(v).(type) {
	case float32:
		return math.Abs(float64(x))
	case float64:
		return math.Abs(x)
	case complex64:
		return cmplx.Abs(complex128(x))
	case complex128:
		return cmplx.Abs(x)
	}
	return 0
}
