package maths

import "fmt"

// Vector 稠密向量
type Vector[T Number] struct {
	data []T
}

// NewVector 创建指定长度的零向量
func NewVector[T Number](length int) *Vector[T] {
	if length < 0 {
		panic("vector: length cannot be negative")
	}
	return &Vector[T]{data: make([]T, length)}
}

// NewVectorWithData 使用给定切片创建向量（不复制底层数据）
func NewVectorWithData[T Number](data []T) *Vector[T] {
	return &Vector[T]{data: data}
}

// Length 返回向量长度
func (v *Vector[T]) Length() int { return len(v.data) }

// Get 获取指定索引处的元素值
func (v *Vector[T]) Get(index int) T { return v.data[index] }

// Set 设置指定索引处的元素值
func (v *Vector[T]) Set(index int, value T) { v.data[index] = value }

// Increment 增量更新指定索引处的元素值
func (v *Vector[T]) Increment(index int, value T) { v.data[index] += value }

// Zero 将所有元素设置为零
func (v *Vector[T]) Zero() {
	var zero T
	for i := range v.data {
		v.data[i] = zero
	}
}

// ToDense 返回数据的切片副本
func (v *Vector[T]) ToDense() []T {
	cpy := make([]T, len(v.data))
	copy(cpy, v.data)
	return cpy
}

// MaxAbs 返回向量中元素绝对值的最大值
func (v *Vector[T]) MaxAbs() float64 {
	maxVal := 0.0
	for _, x := range v.data {
		if a := abs(x); a > maxVal {
			maxVal = a
		}
	}
	return maxVal
}

// String 返回向量的字符串表示
func (v *Vector[T]) String() string {
	return fmt.Sprintf("%v", v.data)
}
