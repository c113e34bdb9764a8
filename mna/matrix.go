package mna

import (
	"fmt"
	"strings"

	"esim/maths"
)

// Matrix MNA系数矩阵构建器
//
// 逻辑上划分为四个独立增长的稀疏块：
//
//	| topLeft    topRight    |   topLeft:     节点↔节点导纳（nv×nv）
//	| bottomLeft bottomRight |   topRight:    节点↔支路耦合（nv×ne）
//	                             bottomLeft:  支路↔节点耦合（ne×nv）
//	                             bottomRight: 支路↔支路耦合（ne×ne）
//
// 加盖按任意顺序增量累加（节点数与支路数单调不减），维度只在
// Finalize 时冻结并拼接为 (nv+ne)² 的方阵。所有矩阵加盖均为累加
// 而非覆盖：多个元件可以共享节点或支路。
type Matrix[T maths.Number] struct {
	numVoltageNodes int // 电压节点数量（不含地）
	numCurrentEdges int // 支路电流未知量数量

	topLeft     *maths.Sparse[T]
	topRight    *maths.Sparse[T]
	bottomLeft  *maths.Sparse[T]
	bottomRight *maths.Sparse[T]

	finalized bool // 冻结标记，冻结后禁止任何加盖
}

// NewMatrix 创建空的系数矩阵构建器
func NewMatrix[T maths.Number]() *Matrix[T] {
	return &Matrix[T]{
		topLeft:     maths.NewSparse[T](0, 0),
		topRight:    maths.NewSparse[T](0, 0),
		bottomLeft:  maths.NewSparse[T](0, 0),
		bottomRight: maths.NewSparse[T](0, 0),
	}
}

// NumVoltageNodes 返回目前出现过的电压节点数量（不含地节点）。
// 节点 n 使用网表索引，计数为出现过的最大 n。
func (m *Matrix[T]) NumVoltageNodes() int { return m.numVoltageNodes }

// NumCurrentEdges 返回目前出现过的支路电流未知量数量。
// 支路 e 直接是矩阵索引，计数为出现过的最大 e+1。
func (m *Matrix[T]) NumCurrentEdges() int { return m.numCurrentEdges }

// growVoltageNodes 按节点索引扩展电压节点计数
func (m *Matrix[T]) growVoltageNodes(n NodeID) {
	if n > m.numVoltageNodes {
		m.numVoltageNodes = n
	}
}

// growCurrentEdges 按支路索引扩展支路计数
func (m *Matrix[T]) growCurrentEdges(e EdgeID) {
	if e+1 > m.numCurrentEdges {
		m.numCurrentEdges = e + 1
	}
}

// checkStamp 加盖公共前提：未冻结且两端子不同
func (m *Matrix[T]) checkStamp(n1, n2 NodeID) error {
	if m.finalized {
		return ErrFinalized
	}
	if n1 == n2 {
		return fmt.Errorf("%w: n1=%d n2=%d", ErrSameNode, n1, n2)
	}
	return nil
}

// StampNodeNode 向左上块加盖一组对称值。
//
// 两个节点索引确定四个矩阵元素：(n1-1,n1-1) = (n2-1,n2-1) = xDiag，
// (n1-1,n2-1) = (n2-1,n1-1) = xOff（对称块）。若其中一端为地，
// 则只累加幸存端子的对角元素，任何行列索引都不会为负。
func (m *Matrix[T]) StampNodeNode(n1, n2 NodeID, xDiag, xOff T) error {
	if err := m.checkStamp(n1, n2); err != nil {
		return err
	}
	m.growVoltageNodes(n1)
	m.growVoltageNodes(n2)
	switch {
	case n1 == Gnd:
		m.topLeft.Increment(n2-1, n2-1, xDiag)
	case n2 == Gnd:
		m.topLeft.Increment(n1-1, n1-1, xDiag)
	default:
		m.topLeft.Increment(n1-1, n1-1, xDiag)
		m.topLeft.Increment(n2-1, n2-1, xDiag)
		m.topLeft.Increment(n1-1, n2-1, xOff)
		m.topLeft.Increment(n2-1, n1-1, xOff)
	}
	return nil
}

// stampBranch 支路耦合加盖的公共实现。
// right/bottom 控制写入右上块/左下块，yDiag 无条件累加到右下块
// 对角元素 (e,e)；接地端子的贡献被省略。
func (m *Matrix[T]) stampBranch(n1, n2 NodeID, e EdgeID, xPos, xNeg, yDiag T, right, bottom bool) error {
	if err := m.checkStamp(n1, n2); err != nil {
		return err
	}
	m.growVoltageNodes(n1)
	m.growVoltageNodes(n2)
	m.growCurrentEdges(e)
	m.bottomRight.Increment(e, e, yDiag)
	if n1 != Gnd {
		if right {
			m.topRight.Increment(n1-1, e, xPos)
		}
		if bottom {
			m.bottomLeft.Increment(e, n1-1, xPos)
		}
	}
	if n2 != Gnd {
		if right {
			m.topRight.Increment(n2-1, e, xNeg)
		}
		if bottom {
			m.bottomLeft.Increment(e, n2-1, xNeg)
		}
	}
	return nil
}

// StampBranchCoupling 对称加盖节点↔支路耦合。
//
// xPos 累加到右上块 (n1-1,e) 与左下块 (e,n1-1)，xNeg 累加到
// (n2-1,e) 与 (e,n2-1)，yDiag 累加到右下块 (e,e)。
func (m *Matrix[T]) StampBranchCoupling(n1, n2 NodeID, e EdgeID, xPos, xNeg, yDiag T) error {
	return m.stampBranch(n1, n2, e, xPos, xNeg, yDiag, true, true)
}

// StampBranchCouplingRightOnly 与对称版本相同，但只写右上块。
// 当元件的控制支路与被写支路不同，上下系数需要分别设置时，
// 用两个方向调用代替一次对称调用。
func (m *Matrix[T]) StampBranchCouplingRightOnly(n1, n2 NodeID, e EdgeID, xPos, xNeg, yDiag T) error {
	return m.stampBranch(n1, n2, e, xPos, xNeg, yDiag, true, false)
}

// StampBranchCouplingBottomOnly 与对称版本相同，但只写左下块。
func (m *Matrix[T]) StampBranchCouplingBottomOnly(n1, n2 NodeID, e EdgeID, xPos, xNeg, yDiag T) error {
	return m.stampBranch(n1, n2, e, xPos, xNeg, yDiag, false, true)
}

// StampBranchBranch 向右下块 (e1,e2) 累加支路↔支路耦合值，
// 用于方程引用其他支路电流的元件（如CCVS）。
func (m *Matrix[T]) StampBranchBranch(e1, e2 EdgeID, y T) error {
	if m.finalized {
		return ErrFinalized
	}
	m.growCurrentEdges(e1)
	m.growCurrentEdges(e2)
	m.bottomRight.Increment(e1, e2, y)
	return nil
}

// Finalize 冻结维度并拼接出最终系数矩阵（消耗性操作，只能调用一次）。
//
// 四个块先调整到冻结维度（左上 nv×nv，右下 ne×ne，耦合块为匹配的
// 矩形），再水平拼接出上下两个行带，最后垂直拼接为
// (nv+ne)×(nv+ne) 方阵。冻结后任何加盖调用返回 ErrFinalized。
func (m *Matrix[T]) Finalize() (*maths.Sparse[T], error) {
	if m.finalized {
		return nil, ErrFinalized
	}
	m.finalized = true

	nv, ne := m.numVoltageNodes, m.numCurrentEdges
	m.topLeft.Resize(nv, nv)
	m.topRight.Resize(nv, ne)
	m.bottomLeft.Resize(ne, nv)
	m.bottomRight.Resize(ne, ne)

	top := maths.ConcatHorizontal(m.topLeft, m.topRight)
	bottom := maths.ConcatHorizontal(m.bottomLeft, m.bottomRight)
	return maths.ConcatVertical(top, bottom), nil
}

// String 输出四个分块的标注内容与维度摘要，仅用于调试
func (m *Matrix[T]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "电压节点数 = %d, 支路电流数 = %d\n", m.numVoltageNodes, m.numCurrentEdges)
	fmt.Fprintf(&b, "左上块:\n%s", m.topLeft)
	fmt.Fprintf(&b, "右上块:\n%s", m.topRight)
	fmt.Fprintf(&b, "左下块:\n%s", m.bottomLeft)
	fmt.Fprintf(&b, "右下块:\n%s", m.bottomRight)
	return b.String()
}
