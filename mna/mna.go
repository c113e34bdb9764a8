package mna

import (
	"fmt"
	"strings"

	"esim/element"
	"esim/maths"
)

// Mna 装配编排器：持有一个系数矩阵构建器与一个激励向量构建器，
// 按元件种类将描述符分派到对应的加盖组合。元件顺序无关：所有矩阵
// 加盖都是可交换的累加。GetSystem 冻结两个构建器并输出最终的
// (矩阵, 向量) 对，每个实例只能输出一次。
type Mna[T maths.Number] struct {
	matrix    *Matrix[T]
	rhs       *Rhs[T]
	finalized bool
}

// New 创建空的MNA装配编排器
func New[T maths.Number]() *Mna[T] {
	return &Mna[T]{
		matrix: NewMatrix[T](),
		rhs:    NewRhs[T](),
	}
}

// NumVoltageNodes 返回目前出现过的电压节点数量（不含地节点）
func (m *Mna[T]) NumVoltageNodes() int { return m.matrix.NumVoltageNodes() }

// NumCurrentEdges 返回目前出现过的支路电流未知量数量
func (m *Mna[T]) NumCurrentEdges() int { return m.matrix.NumCurrentEdges() }

// StampElement 按元件种类加盖一个元件的全部线性贡献。
//
// 调度规则：
//
//	电阻（无支路）:     左上块电导对称加盖 ±1/R
//	电阻（带支路 e）:   对称支路耦合 (1, -1, -R)
//	独立电压源:        对称支路耦合 (1, -1, 0) + 支路激励 V
//	VCVS:             对称支路耦合 (1, -1, 0) + 控制节点左下块 (-k, k, 0)
//	CCVS:             对称支路耦合 (1, -1, 0) + 支路↔支路 (e, ctrl, -k)
//	电流源（带支路 e）: 仅右上块支路耦合 (1, -1, 1) + 支路激励 I
//	电流源（无支路）:   节点激励 (Pos, -I) 与 (Neg, +I)
//
// 未覆盖的种类返回 ErrUnsupportedElement。
func (m *Mna[T]) StampElement(el element.Face) error {
	if m.finalized {
		return ErrFinalized
	}
	switch e := el.(type) {
	case element.Resistor[T]:
		if e.Edge == element.NoEdge {
			g := 1 / e.Resistance
			return m.matrix.StampNodeNode(e.N1, e.N2, g, -g)
		}
		return m.matrix.StampBranchCoupling(e.N1, e.N2, e.Edge, 1, -1, -e.Resistance)

	case element.VoltageSource[T]:
		if err := m.matrix.StampBranchCoupling(e.Pos, e.Neg, e.Edge, 1, -1, 0); err != nil {
			return err
		}
		return m.rhs.StampEdge(e.Edge, e.Voltage)

	case element.VCVS[T]:
		if err := m.matrix.StampBranchCoupling(e.Pos, e.Neg, e.Edge, 1, -1, 0); err != nil {
			return err
		}
		return m.matrix.StampBranchCouplingBottomOnly(e.CtrlPos, e.CtrlNeg, e.Edge, -e.Gain, e.Gain, 0)

	case element.CCVS[T]:
		if err := m.matrix.StampBranchCoupling(e.Pos, e.Neg, e.Edge, 1, -1, 0); err != nil {
			return err
		}
		return m.matrix.StampBranchBranch(e.Edge, e.CtrlEdge, -e.Gain)

	case element.CurrentSource[T]:
		if e.Edge == element.NoEdge {
			if err := m.rhs.StampNode(e.Pos, -e.Current); err != nil {
				return err
			}
			return m.rhs.StampNode(e.Neg, e.Current)
		}
		if err := m.matrix.StampBranchCouplingRightOnly(e.Pos, e.Neg, e.Edge, 1, -1, 1); err != nil {
			return err
		}
		return m.rhs.StampEdge(e.Edge, e.Current)

	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedElement, el.Kind())
	}
}

// GetSystem 冻结两个构建器并返回可求解的 (矩阵, 向量) 对。
// 矩阵为 (nv+ne)² 方阵，向量长度与之一致。这是获取系统的唯一途径，
// 每个编排器实例只能调用一次，之后返回 ErrFinalized。
func (m *Mna[T]) GetSystem() (*maths.Sparse[T], []T, error) {
	if m.finalized {
		return nil, nil, ErrFinalized
	}
	m.finalized = true

	nv := m.matrix.NumVoltageNodes()
	ne := m.matrix.NumCurrentEdges()
	a, err := m.matrix.Finalize()
	if err != nil {
		return nil, nil, err
	}
	z, err := m.rhs.Finalize(nv, ne)
	if err != nil {
		return nil, nil, err
	}
	return a, z, nil
}

// String 输出两个构建器的调试信息
func (m *Mna[T]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "MNA系数矩阵:\n%s", m.matrix)
	fmt.Fprintf(&b, "MNA激励向量:\n%s", m.rhs)
	return b.String()
}
