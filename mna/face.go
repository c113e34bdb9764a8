// Package mna 实现改进节点分析法（Modified Nodal Analysis）的装配引擎：
// 接收元件描述符流，通过加盖操作增量构建分块系数矩阵与激励向量，
// 冻结后输出一次性的可求解线性系统 Ax = z。
package mna

import (
	"errors"

	"esim/element"
)

// NodeID 电路节点索引，0 为接地参考节点
type NodeID = element.NodeID

// EdgeID 支路电流未知量索引
type EdgeID = element.EdgeID

// Gnd 接地参考节点
const Gnd = element.Gnd

var (
	// ErrSameNode 加盖操作收到相同的两个端子索引（无效拓扑短路）
	ErrSameNode = errors.New("mna: 加盖端子索引相同")
	// ErrUnsupportedElement 调度表未覆盖的元件类型
	ErrUnsupportedElement = errors.New("mna: 不支持的元件类型")
	// ErrExcitationConflict 同一激励单元被写入两次
	ErrExcitationConflict = errors.New("mna: 激励单元重复写入")
	// ErrFinalized 系统已冻结，禁止继续修改或再次冻结
	ErrFinalized = errors.New("mna: 系统已冻结")
	// ErrExcitationRange 激励行索引超出冻结后的段长度
	ErrExcitationRange = errors.New("mna: 激励行索引越界")
)
