package maths

import (
	"fmt"
	"sort"
	"strings"
)

// cell 稀疏矩阵中非零元素的坐标
type cell struct{ row, col int }

// Entry 非零元素枚举项
type Entry[T Number] struct {
	Row, Col int
	Value    T
}

// Sparse 可增长稀疏矩阵
// 逻辑维度与已写入范围分离管理：Set/Increment 允许越界写入并自动扩展
// 逻辑维度，Resize 只在所有写入完成后冻结最终大小。
// 零值写入会删除对应单元，保持底层存储稀疏。
type Sparse[T Number] struct {
	rows, cols int
	data       map[cell]T
}

// NewSparse 创建指定逻辑维度的稀疏矩阵
func NewSparse[T Number](rows, cols int) *Sparse[T] {
	if rows < 0 || cols < 0 {
		panic("sparse: dimensions cannot be negative")
	}
	return &Sparse[T]{
		rows: rows,
		cols: cols,
		data: map[cell]T{},
	}
}

// Rows 返回逻辑行数
func (m *Sparse[T]) Rows() int { return m.rows }

// Cols 返回逻辑列数
func (m *Sparse[T]) Cols() int { return m.cols }

// IsSquare 判断是否为方阵
func (m *Sparse[T]) IsSquare() bool { return m.rows == m.cols }

// checkIndex 索引合法性校验（负索引视为编程错误）
func (m *Sparse[T]) checkIndex(row, col int) {
	if row < 0 || col < 0 {
		panic(fmt.Sprintf("sparse: index out of range: (%d, %d)", row, col))
	}
}

// grow 按写入位置扩展逻辑维度
func (m *Sparse[T]) grow(row, col int) {
	if row >= m.rows {
		m.rows = row + 1
	}
	if col >= m.cols {
		m.cols = col + 1
	}
}

// Get 获取矩阵元素，未存储的单元返回零值
func (m *Sparse[T]) Get(row, col int) T {
	m.checkIndex(row, col)
	return m.data[cell{row, col}]
}

// Set 设置矩阵元素（覆盖写入），越界时扩展逻辑维度
func (m *Sparse[T]) Set(row, col int, value T) {
	m.checkIndex(row, col)
	m.grow(row, col)
	var zero T
	if value == zero {
		delete(m.data, cell{row, col})
		return
	}
	m.data[cell{row, col}] = value
}

// Increment 增量更新矩阵元素（现有值+value），越界时扩展逻辑维度。
// 这是所有加盖操作共用的单元累加入口。
func (m *Sparse[T]) Increment(row, col int, value T) {
	m.checkIndex(row, col)
	m.Set(row, col, m.data[cell{row, col}]+value)
}

// Resize 调整逻辑维度，保留所有已存储元素。
// 新维度不能小于任何已写入元素的索引：构建器通过跟踪最大索引保证
// 该前提，违反视为编程错误。
func (m *Sparse[T]) Resize(rows, cols int) {
	if rows < 0 || cols < 0 {
		panic("sparse: dimensions cannot be negative")
	}
	for c := range m.data {
		if c.row >= rows || c.col >= cols {
			panic(fmt.Sprintf("sparse: resize to %dx%d drops entry at (%d, %d)", rows, cols, c.row, c.col))
		}
	}
	m.rows = rows
	m.cols = cols
}

// NonZeroCount 返回非零元素数量
func (m *Sparse[T]) NonZeroCount() int { return len(m.data) }

// Entries 返回所有非零元素，按（行,列）行优先排序，枚举顺序稳定。
func (m *Sparse[T]) Entries() []Entry[T] {
	entries := make([]Entry[T], 0, len(m.data))
	for c, v := range m.data {
		entries = append(entries, Entry[T]{Row: c.row, Col: c.col, Value: v})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Row != entries[j].Row {
			return entries[i].Row < entries[j].Row
		}
		return entries[i].Col < entries[j].Col
	})
	return entries
}

// Copy 将自身数据复制到目标矩阵（目标维度由写入自动扩展）
func (m *Sparse[T]) Copy(a *Sparse[T]) {
	for c, v := range m.data {
		a.Set(c.row, c.col, v)
	}
}

// String 返回稠密格式的字符串表示，仅用于调试输出
func (m *Sparse[T]) String() string {
	var b strings.Builder
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			fmt.Fprintf(&b, "%8.4v ", m.Get(i, j))
		}
		b.WriteString("\n")
	}
	return b.String()
}
