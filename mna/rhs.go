package mna

import (
	"fmt"
	"strings"

	"esim/maths"
)

// Rhs MNA激励向量构建器
//
// 由上下两个稀疏列块组成：上段按电压节点行索引（第一组激励），
// 下段按支路行索引（第二组激励）。Finalize 时按矩阵构建器冻结的
// 维度拼接为稠密向量，未写入的单元默认为零。
type Rhs[T maths.Number] struct {
	top    *maths.Sparse[T] // 节点激励段
	bottom *maths.Sparse[T] // 支路激励段

	written   map[EdgeID]struct{} // 支路激励写入记录，用于冲突检查
	finalized bool
}

// NewRhs 创建空的激励向量构建器
func NewRhs[T maths.Number]() *Rhs[T] {
	return &Rhs[T]{
		top:     maths.NewSparse[T](0, 1),
		bottom:  maths.NewSparse[T](0, 1),
		written: map[EdgeID]struct{}{},
	}
}

// StampNode 第一组激励加盖（按节点索引，直接写入而非累加）。
// 地节点不占激励行，对地加盖为空操作。
// 仅由不带支路未知量的独立电流源使用。
func (r *Rhs[T]) StampNode(n NodeID, x T) error {
	if r.finalized {
		return ErrFinalized
	}
	if n == Gnd {
		return nil
	}
	r.top.Set(n-1, 0, x)
	return nil
}

// StampEdge 第二组激励加盖（按支路索引）。
// 每个支路的激励单元至多允许写入一次：同一支路的第二次写入
// 返回 ErrExcitationConflict，而不是静默覆盖前值。
func (r *Rhs[T]) StampEdge(e EdgeID, x T) error {
	if r.finalized {
		return ErrFinalized
	}
	if _, ok := r.written[e]; ok {
		return fmt.Errorf("%w: 支路 %d", ErrExcitationConflict, e)
	}
	r.written[e] = struct{}{}
	r.bottom.Set(e, 0, x)
	return nil
}

// Finalize 冻结并输出长度为 nv+ne 的稠密激励向量（只能调用一次）。
// 上段占据行 [0, nv)，下段占据行 [nv, nv+ne)，偏移为支路索引；
// 任何写入行超出对应段长度都说明装配不一致，返回 ErrExcitationRange
// 而不是输出与矩阵维度不匹配的向量。
func (r *Rhs[T]) Finalize(numVoltageNodes, numCurrentEdges int) ([]T, error) {
	if r.finalized {
		return nil, ErrFinalized
	}
	r.finalized = true

	out := make([]T, numVoltageNodes+numCurrentEdges)
	for _, e := range r.top.Entries() {
		if e.Row >= numVoltageNodes {
			return nil, fmt.Errorf("%w: 节点激励行 %d, 段长 %d", ErrExcitationRange, e.Row, numVoltageNodes)
		}
		out[e.Row] = e.Value
	}
	for _, e := range r.bottom.Entries() {
		if e.Row >= numCurrentEdges {
			return nil, fmt.Errorf("%w: 支路激励行 %d, 段长 %d", ErrExcitationRange, e.Row, numCurrentEdges)
		}
		out[numVoltageNodes+e.Row] = e.Value
	}
	return out, nil
}

// String 输出上下两段的标注内容，仅用于调试
func (r *Rhs[T]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "节点激励段:\n%s", r.top)
	fmt.Fprintf(&b, "支路激励段:\n%s", r.bottom)
	return b.String()
}
