// dcsweep 对分压电路做直流扫描并绘制输出曲线：
// 10V 电压源 + R1(1kΩ) 串联待扫描的 R2，每个扫描点独立装配求解，
// 输出节点2电压随 R2 变化的曲线图。
package main

import (
	"flag"
	"fmt"
	"log"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"esim/analysis"
)

func main() {
	var (
		output = flag.String("o", "dcsweep.png", "输出图片路径")
		r1     = flag.Float64("r1", 1000, "固定电阻R1（欧姆）")
		rMin   = flag.Float64("rmin", 100, "R2扫描起点（欧姆）")
		rMax   = flag.Float64("rmax", 10000, "R2扫描终点（欧姆）")
		points = flag.Int("n", 100, "扫描点数")
		v      = flag.Float64("v", 10, "电压源电压（伏特）")
	)
	flag.Parse()

	if *points < 2 || *rMin <= 0 || *rMax <= *rMin {
		log.Fatal("无效的扫描参数")
	}

	pts := make(plotter.XYs, 0, *points)
	step := (*rMax - *rMin) / float64(*points-1)
	for i := 0; i < *points; i++ {
		r2 := *rMin + float64(i)*step

		dc := analysis.NewLinearDC()
		if err := dc.AddResistor(1, 2, *r1); err != nil {
			log.Fatalf("添加R1失败: %v", err)
		}
		if err := dc.AddResistor(2, 0, r2); err != nil {
			log.Fatalf("添加R2失败: %v", err)
		}
		if _, err := dc.AddVoltageSource(1, 0, *v); err != nil {
			log.Fatalf("添加电压源失败: %v", err)
		}

		voltages, _, err := dc.Solve()
		if err != nil {
			log.Fatalf("求解失败 (R2=%.1f): %v", r2, err)
		}
		pts = append(pts, plotter.XY{X: r2, Y: voltages[1]})
	}

	p := plot.New()
	p.Title.Text = "分压电路直流扫描"
	p.X.Label.Text = "R2 (Ω)"
	p.Y.Label.Text = "V(2) (V)"
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(pts)
	if err != nil {
		log.Fatalf("创建曲线失败: %v", err)
	}
	p.Add(line)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, *output); err != nil {
		log.Fatalf("保存图片失败: %v", err)
	}
	fmt.Printf("已写入 %s (%d 个扫描点)\n", *output, len(pts))
}
