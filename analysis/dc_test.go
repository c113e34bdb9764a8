package analysis

import (
	"errors"
	"math"
	"testing"
)

func TestLinearDCTwoResistorSource(t *testing.T) {
	// 5V电压源接节点2，两个100Ω电阻：节点2到节点1，节点1到地
	dc := NewLinearDC()
	if err := dc.AddResistor(1, 0, 100); err != nil {
		t.Fatalf("添加电阻失败: %v", err)
	}
	if err := dc.AddResistor(1, 2, 100); err != nil {
		t.Fatalf("添加电阻失败: %v", err)
	}
	e, err := dc.AddVoltageSource(2, 0, 5)
	if err != nil {
		t.Fatalf("添加电压源失败: %v", err)
	}

	voltages, currents, err := dc.Solve()
	if err != nil {
		t.Fatalf("求解失败: %v", err)
	}
	if len(voltages) != 2 || len(currents) != 1 {
		t.Fatalf("希望2个节点电压1个支路电流, 得到 %d 和 %d", len(voltages), len(currents))
	}
	if math.Abs(voltages[0]-2.5) > 1e-9 {
		t.Errorf("希望节点1电压为2.5V, 得到 %v", voltages[0])
	}
	if math.Abs(voltages[1]-5) > 1e-9 {
		t.Errorf("希望节点2电压为5V, 得到 %v", voltages[1])
	}
	if math.Abs(currents[e]-(-0.025)) > 1e-9 {
		t.Errorf("希望电压源支路电流为-0.025A, 得到 %v", currents[e])
	}
}

func TestLinearDCCurrentSource(t *testing.T) {
	// 10mA注入1kΩ接地电阻，节点电压10V
	dc := NewLinearDC()
	if err := dc.AddResistor(1, 0, 1000); err != nil {
		t.Fatalf("添加电阻失败: %v", err)
	}
	if err := dc.AddCurrentSource(0, 1, 0.01); err != nil {
		t.Fatalf("添加电流源失败: %v", err)
	}

	voltages, currents, err := dc.Solve()
	if err != nil {
		t.Fatalf("求解失败: %v", err)
	}
	if len(currents) != 0 {
		t.Errorf("希望没有支路电流, 得到 %d 个", len(currents))
	}
	if math.Abs(voltages[0]-10) > 1e-9 {
		t.Errorf("希望节点1电压为10V, 得到 %v", voltages[0])
	}
}

func TestLinearDCMeasuredCurrentSource(t *testing.T) {
	// 带测量支路的电流源：支路电流等于源电流本身
	dc := NewLinearDC()
	if err := dc.AddResistor(1, 0, 500); err != nil {
		t.Fatalf("添加电阻失败: %v", err)
	}
	e, err := dc.AddMeasuredCurrentSource(0, 1, 0.02)
	if err != nil {
		t.Fatalf("添加电流源失败: %v", err)
	}

	voltages, currents, err := dc.Solve()
	if err != nil {
		t.Fatalf("求解失败: %v", err)
	}
	if math.Abs(currents[e]-0.02) > 1e-9 {
		t.Errorf("希望测量支路电流为0.02A, 得到 %v", currents[e])
	}
	if math.Abs(voltages[0]-10) > 1e-9 {
		t.Errorf("希望节点1电压为10V, 得到 %v", voltages[0])
	}
}

func TestLinearDCVCVS(t *testing.T) {
	// 增益为2的VCVS放大1V输入，输出节点为2V
	dc := NewLinearDC()
	if _, err := dc.AddVoltageSource(1, 0, 1); err != nil {
		t.Fatalf("添加电压源失败: %v", err)
	}
	if _, err := dc.AddVCVS(2, 0, 1, 0, 2); err != nil {
		t.Fatalf("添加VCVS失败: %v", err)
	}
	if err := dc.AddResistor(2, 0, 1000); err != nil {
		t.Fatalf("添加电阻失败: %v", err)
	}

	voltages, _, err := dc.Solve()
	if err != nil {
		t.Fatalf("求解失败: %v", err)
	}
	if math.Abs(voltages[1]-2) > 1e-9 {
		t.Errorf("希望输出节点电压为2V, 得到 %v", voltages[1])
	}
}

func TestLinearDCCCVS(t *testing.T) {
	// 跨阻100Ω的CCVS：控制支路为5V源驱动500Ω负载，
	// 控制电流 i = -0.01A，输出节点电压 = 100 × (-0.01) = -1V
	dc := NewLinearDC()
	ctrl, err := dc.AddVoltageSource(1, 0, 5)
	if err != nil {
		t.Fatalf("添加电压源失败: %v", err)
	}
	if err := dc.AddResistor(1, 0, 500); err != nil {
		t.Fatalf("添加电阻失败: %v", err)
	}
	if _, err := dc.AddCCVS(2, 0, ctrl, 100); err != nil {
		t.Fatalf("添加CCVS失败: %v", err)
	}
	if err := dc.AddResistor(2, 0, 1000); err != nil {
		t.Fatalf("添加电阻失败: %v", err)
	}

	voltages, currents, err := dc.Solve()
	if err != nil {
		t.Fatalf("求解失败: %v", err)
	}
	if math.Abs(currents[ctrl]-(-0.01)) > 1e-9 {
		t.Errorf("希望控制支路电流为-0.01A, 得到 %v", currents[ctrl])
	}
	if math.Abs(voltages[1]-(-1)) > 1e-9 {
		t.Errorf("希望输出节点电压为-1V, 得到 %v", voltages[1])
	}
}

func TestLinearDCEmptyCircuit(t *testing.T) {
	dc := NewLinearDC()
	if _, _, err := dc.Solve(); !errors.Is(err, ErrEmptyCircuit) {
		t.Errorf("希望空电路求解得到 ErrEmptyCircuit, 得到 %v", err)
	}
}

func TestLinearDCSolveOnce(t *testing.T) {
	dc := NewLinearDC()
	if err := dc.AddResistor(1, 0, 100); err != nil {
		t.Fatalf("添加电阻失败: %v", err)
	}
	if err := dc.AddCurrentSource(0, 1, 1); err != nil {
		t.Fatalf("添加电流源失败: %v", err)
	}
	if _, _, err := dc.Solve(); err != nil {
		t.Fatalf("求解失败: %v", err)
	}
	if _, _, err := dc.Solve(); err == nil {
		t.Error("希望第二次求解返回错误")
	}
}
