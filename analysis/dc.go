// Package analysis 提供线性直流分析的高层入口：注册元件、自动分配
// 支路电流索引、一次性装配并求解，读取节点电压与支路电流。
package analysis

import (
	"errors"
	"fmt"

	"esim/element"
	"esim/maths"
	"esim/mna"
)

// NodeID 电路节点索引，0 为接地参考节点
type NodeID = element.NodeID

// EdgeID 支路电流未知量索引
type EdgeID = element.EdgeID

// ErrEmptyCircuit 没有任何元件贡献未知量，无法求解
var ErrEmptyCircuit = errors.New("analysis: 空电路无法求解")

// LinearDC 线性直流分析
// 封装一个MNA装配编排器，按注册顺序为需要支路电流未知量的元件
// 自动分配支路索引。Solve 只能调用一次（装配系统随之冻结）。
type LinearDC struct {
	mna      *mna.Mna[float64]
	numEdges int // 已分配的支路电流索引数量
}

// NewLinearDC 创建空的直流分析实例
func NewLinearDC() *LinearDC {
	return &LinearDC{mna: mna.New[float64]()}
}

// allocEdge 分配下一个支路电流索引
func (dc *LinearDC) allocEdge() EdgeID {
	e := dc.numEdges
	dc.numEdges++
	return e
}

// AddResistor 添加电阻（不引入支路电流未知量）
func (dc *LinearDC) AddResistor(n1, n2 NodeID, r float64) error {
	return dc.mna.StampElement(element.Resistor[float64]{
		N1: n1, N2: n2, Edge: element.NoEdge, Resistance: r,
	})
}

// AddVoltageSource 添加独立电压源，返回为其分配的支路索引，
// 求解后可用 Currents 下标读取流经该源的电流。
func (dc *LinearDC) AddVoltageSource(pos, neg NodeID, v float64) (EdgeID, error) {
	e := dc.allocEdge()
	return e, dc.mna.StampElement(element.VoltageSource[float64]{
		Pos: pos, Neg: neg, Edge: e, Voltage: v,
	})
}

// AddCurrentSource 添加独立电流源（电流从 pos 流向 neg，只贡献激励）
func (dc *LinearDC) AddCurrentSource(pos, neg NodeID, i float64) error {
	return dc.mna.StampElement(element.CurrentSource[float64]{
		Pos: pos, Neg: neg, Edge: element.NoEdge, Current: i,
	})
}

// AddMeasuredCurrentSource 添加带电流测量支路的独立电流源，
// 返回为其分配的支路索引。
func (dc *LinearDC) AddMeasuredCurrentSource(pos, neg NodeID, i float64) (EdgeID, error) {
	e := dc.allocEdge()
	return e, dc.mna.StampElement(element.CurrentSource[float64]{
		Pos: pos, Neg: neg, Edge: e, Current: i,
	})
}

// AddVCVS 添加电压控制电压源，返回为其分配的支路索引
func (dc *LinearDC) AddVCVS(pos, neg, ctrlPos, ctrlNeg NodeID, gain float64) (EdgeID, error) {
	e := dc.allocEdge()
	return e, dc.mna.StampElement(element.VCVS[float64]{
		Pos: pos, Neg: neg, CtrlPos: ctrlPos, CtrlNeg: ctrlNeg, Edge: e, Gain: gain,
	})
}

// AddCCVS 添加电流控制电压源（控制电流取自已分配的支路 ctrl），
// 返回为其分配的支路索引。
func (dc *LinearDC) AddCCVS(pos, neg NodeID, ctrl EdgeID, gain float64) (EdgeID, error) {
	e := dc.allocEdge()
	return e, dc.mna.StampElement(element.CCVS[float64]{
		Pos: pos, Neg: neg, CtrlEdge: ctrl, Edge: e, Gain: gain,
	})
}

// Solve 装配并求解线性系统，返回节点电压与支路电流。
// voltages[i] 为节点 i+1 的电压（地节点恒为0，不在列表中），
// currents[e] 为支路 e 的电流。
func (dc *LinearDC) Solve() (voltages, currents []float64, err error) {
	nv := dc.mna.NumVoltageNodes()
	a, z, err := dc.mna.GetSystem()
	if err != nil {
		return nil, nil, err
	}
	n := len(z)
	if n == 0 {
		return nil, nil, ErrEmptyCircuit
	}

	lu, err := maths.NewLU[float64](n)
	if err != nil {
		return nil, nil, err
	}
	if err := lu.Decompose(a); err != nil {
		return nil, nil, fmt.Errorf("analysis: 矩阵分解失败: %w", err)
	}
	x, err := lu.Solve(z)
	if err != nil {
		return nil, nil, fmt.Errorf("analysis: 矩阵求解失败: %w", err)
	}
	return x[:nv], x[nv:], nil
}

// String 输出装配引擎的调试信息
func (dc *LinearDC) String() string { return dc.mna.String() }
