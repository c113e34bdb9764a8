// Package element 定义MNA装配引擎消费的元件描述符。
// 描述符由外部元件源（网表解析器等）提供，引擎只在加盖时读取，
// 不做除端子不等之外的拓扑校验。
package element

import "esim/maths"

// NodeID 电路节点索引，非负整数；0 为保留的接地参考节点，
// 不占用矩阵行列，节点 n 对应矩阵行列 n-1。
type NodeID = int

// EdgeID 支路电流未知量索引（从0开始），直接对应下块的行列。
type EdgeID = int

const (
	// Gnd 接地参考节点
	Gnd NodeID = 0
	// NoEdge 表示元件不需要支路电流未知量
	NoEdge EdgeID = -1
)

// 元件种类标识
const (
	KindResistor      = "resistor"
	KindVoltageSource = "voltage_source"
	KindCurrentSource = "current_source"
	KindVCVS          = "vcvs"
	KindCCVS          = "ccvs"
)

// Face 元件描述符接口。
// 种类集合是小而封闭的：新增种类需要在装配调度表中补充对应的
// 加盖规则，调度表未覆盖的种类会得到"不支持的元件类型"错误。
type Face interface {
	Kind() string
}

// Resistor 电阻
// Edge 为 NoEdge 时按电导加盖到导纳块；指定 Edge 时引入支路电流
// 未知量（第二组元件），电阻值进入支路方程。
type Resistor[T maths.Number] struct {
	N1, N2     NodeID // 两端节点
	Edge       EdgeID // 支路电流索引，NoEdge 表示无
	Resistance T      // 电阻值（欧姆）
}

// Kind 元件种类
func (Resistor[T]) Kind() string { return KindResistor }

// VoltageSource 独立电压源
// 必须携带支路电流未知量，约束 V(Pos) - V(Neg) = Voltage。
type VoltageSource[T maths.Number] struct {
	Pos, Neg NodeID // 正极/负极节点
	Edge     EdgeID // 支路电流索引
	Voltage  T      // 电压值（伏特）
}

// Kind 元件种类
func (VoltageSource[T]) Kind() string { return KindVoltageSource }

// CurrentSource 独立电流源
// Edge 为 NoEdge 时只贡献激励向量（电流从 Pos 流向 Neg）；
// 指定 Edge 时额外引入支路电流未知量用于电流测量。
type CurrentSource[T maths.Number] struct {
	Pos, Neg NodeID // 流出/流入节点
	Edge     EdgeID // 支路电流索引，NoEdge 表示无
	Current  T      // 电流值（安培）
}

// Kind 元件种类
func (CurrentSource[T]) Kind() string { return KindCurrentSource }

// VCVS 电压控制电压源
// 约束 V(Pos) - V(Neg) = Gain × (V(CtrlPos) - V(CtrlNeg))。
type VCVS[T maths.Number] struct {
	Pos, Neg         NodeID // 输出节点
	CtrlPos, CtrlNeg NodeID // 控制电压节点
	Edge             EdgeID // 支路电流索引
	Gain             T      // 电压增益
}

// Kind 元件种类
func (VCVS[T]) Kind() string { return KindVCVS }

// CCVS 电流控制电压源
// 约束 V(Pos) - V(Neg) = Gain × I(CtrlEdge)。
type CCVS[T maths.Number] struct {
	Pos, Neg NodeID // 输出节点
	CtrlEdge EdgeID // 控制电流所在支路索引
	Edge     EdgeID // 支路电流索引
	Gain     T      // 跨阻增益（欧姆）
}

// Kind 元件种类
func (CCVS[T]) Kind() string { return KindCCVS }
