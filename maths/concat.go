package maths

import "fmt"

// ConcatHorizontal 水平拼接 [a b]，返回新矩阵。
// 两个矩阵的行数必须一致。
func ConcatHorizontal[T Number](a, b *Sparse[T]) *Sparse[T] {
	if a.Rows() != b.Rows() {
		panic(fmt.Sprintf("concat horizontal: row mismatch %d != %d", a.Rows(), b.Rows()))
	}
	out := NewSparse[T](a.Rows(), a.Cols()+b.Cols())
	for _, e := range a.Entries() {
		out.Set(e.Row, e.Col, e.Value)
	}
	for _, e := range b.Entries() {
		out.Set(e.Row, e.Col+a.Cols(), e.Value)
	}
	return out
}

// ConcatVertical 垂直拼接 [a; b]，返回新矩阵。
// 两个矩阵的列数必须一致。
func ConcatVertical[T Number](a, b *Sparse[T]) *Sparse[T] {
	if a.Cols() != b.Cols() {
		panic(fmt.Sprintf("concat vertical: col mismatch %d != %d", a.Cols(), b.Cols()))
	}
	out := NewSparse[T](a.Rows()+b.Rows(), a.Cols())
	for _, e := range a.Entries() {
		out.Set(e.Row, e.Col, e.Value)
	}
	for _, e := range b.Entries() {
		out.Set(e.Row+a.Rows(), e.Col, e.Value)
	}
	return out
}

// Transpose 返回转置后的新矩阵
func Transpose[T Number](a *Sparse[T]) *Sparse[T] {
	out := NewSparse[T](a.Cols(), a.Rows())
	for _, e := range a.Entries() {
		out.Set(e.Col, e.Row, e.Value)
	}
	return out
}
