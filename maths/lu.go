package maths

import "errors"

// LU 实现带部分主元的LU分解（PA = LU），其中：
//
//	P - 置换向量（表示置换矩阵）
//	L - 单位下三角矩阵（对角线为1，严格下三角存储消元因子）
//	U - 上三角矩阵（存储消元后上三角元素）
//
// 分解与求解在内部稠密副本上进行，输入矩阵不会被修改。
type LU[T Number] struct {
	n int   // 矩阵维度（方阵n×n）
	l [][]T // 下三角矩阵L
	u [][]T // 上三角矩阵U
	y []T   // 中间变量：存储前向替换结果Ly=Pb
	p []int // 置换向量：p[i] = 分解后第i行对应的原始矩阵行索引
}

// NewLU 创建LU分解器（输入矩阵维度n，必须为正整数）
func NewLU[T Number](n int) (*LU[T], error) {
	if n < 1 {
		return nil, errors.New("lu dimension must be positive")
	}
	lu := &LU[T]{
		n: n,
		l: make([][]T, n),
		u: make([][]T, n),
		y: make([]T, n),
		p: make([]int, n),
	}
	for i := range lu.l {
		lu.l[i] = make([]T, n)
		lu.u[i] = make([]T, n)
	}
	return lu, nil
}

// Dim 获取矩阵维度
func (lu *LU[T]) Dim() int { return lu.n }

// init 初始化置换向量和L/U矩阵
//  1. 清零L和U
//  2. 将输入矩阵的非零元素拷贝到U（后续在U上进行原位消元）
//  3. 初始化置换向量为单位置换，L对角线设置为1
func (lu *LU[T]) init(matrix *Sparse[T]) {
	var zero T
	for i := 0; i < lu.n; i++ {
		for j := 0; j < lu.n; j++ {
			lu.l[i][j] = zero
			lu.u[i][j] = zero
		}
		lu.p[i] = i
		lu.l[i][i] = 1
	}
	for _, e := range matrix.Entries() {
		lu.u[e.Row][e.Col] = e.Value
	}
}

// Decompose 执行LU分解（核心逻辑：高斯消元+部分主元）
//
// 算法步骤（对每一列k）:
//  1. 部分主元选择：在U的当前列k中找[k, n-1]行绝对值最大的元素
//  2. 行交换：交换U的整行，交换L的前k-1列，更新置换向量
//  3. 高斯消元：计算消元因子存入L，更新U矩阵
//
// 主元接近零时矩阵视为奇异，返回错误。
func (lu *LU[T]) Decompose(matrix *Sparse[T]) error {
	if !matrix.IsSquare() {
		return errors.New("lu decompose: input must be square matrix")
	}
	if matrix.Rows() != lu.n {
		return errors.New("lu decompose: matrix dimension mismatch")
	}

	lu.init(matrix)

	for k := 0; k < lu.n; k++ {
		// 部分主元选择
		maxRow := k
		maxAbsVal := abs(lu.u[k][k])
		for i := k + 1; i < lu.n; i++ {
			if v := abs(lu.u[i][k]); v > maxAbsVal {
				maxAbsVal = v
				maxRow = i
			}
		}

		// 主元接近零说明矩阵奇异
		if maxAbsVal < Epsilon {
			return errors.New("lu decompose: matrix is singular or nearly singular")
		}

		// 行交换
		if maxRow != k {
			lu.u[k], lu.u[maxRow] = lu.u[maxRow], lu.u[k]
			// L只交换已填充的前k-1列消元因子
			for j := 0; j < k; j++ {
				lu.l[k][j], lu.l[maxRow][j] = lu.l[maxRow][j], lu.l[k][j]
			}
			lu.p[k], lu.p[maxRow] = lu.p[maxRow], lu.p[k]
		}

		// 高斯消元
		pivotVal := lu.u[k][k]
		for i := k + 1; i < lu.n; i++ {
			factor := lu.u[i][k] / pivotVal
			lu.l[i][k] = factor
			lu.u[i][k] = 0
			for j := k + 1; j < lu.n; j++ {
				lu.u[i][j] -= factor * lu.u[k][j]
			}
		}
	}
	return nil
}

// SolveReuse 利用分解结果求解Ax=b（重用预分配向量，无额外内存分配）
//
// 数学步骤:
//  1. 前向替换：求解Ly = Pb（Pb为b按置换向量重新排序）
//  2. 后向替换：求解Ux = y
func (lu *LU[T]) SolveReuse(b, x *Vector[T]) error {
	if b.Length() != lu.n || x.Length() != lu.n {
		return errors.New("lu solve: vector dimension mismatch")
	}

	// 前向替换：求解Ly = Pb
	for i := 0; i < lu.n; i++ {
		sum := b.Get(lu.p[i])
		for j := 0; j < i; j++ {
			sum -= lu.l[i][j] * lu.y[j]
		}
		lu.y[i] = sum
	}

	// 后向替换：求解Ux = y
	for i := lu.n - 1; i >= 0; i-- {
		sum := lu.y[i]
		for j := i + 1; j < lu.n; j++ {
			sum -= lu.u[i][j] * x.Get(j)
		}
		diagVal := lu.u[i][i]
		if abs(diagVal) < Epsilon {
			return errors.New("lu solve: division by zero (U diagonal is zero)")
		}
		x.Set(i, sum/diagVal)
	}
	return nil
}

// Solve 求解Ax=b并返回新分配的解切片
func (lu *LU[T]) Solve(b []T) ([]T, error) {
	if len(b) != lu.n {
		return nil, errors.New("lu solve: vector dimension mismatch")
	}
	x := NewVector[T](lu.n)
	if err := lu.SolveReuse(NewVectorWithData(b), x); err != nil {
		return nil, err
	}
	return x.ToDense(), nil
}
