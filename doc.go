// Package lvarray is a dense, correctness-first numeric container engine:
// a 2-D Matrix and an N-dimensional NDArray over one contiguous row-major
// float64 buffer.
//
// What is in the box?
//
//	• Shape-checked indexing: every bad index is an error, never a panic
//	• Reshape/Flatten that reinterpret the flat order without reordering it
//	• Deterministic arithmetic: Add, Mul (increasing-k sums), Transpose, Identity
//	• Safe conversion between Matrix and rank-2 NDArray
//	• One error taxonomy with stable kinds for host adapters
//
// Under the hood, everything is organized under five subpackages:
//
//	numerr/  — sentinel errors and the Kind enumeration (KindOf)
//	shape/   — validated dims, row-major strides, multi-index → offset
//	storage/ — the exclusively owned flat buffer and the NaN/Inf policy
//	matrix/  — Matrix, arithmetic kernels and gonum interop
//	ndarray/ — NDArray, nested input/output and Matrix conversions
//
// Quick example:
//
//	a, _ := matrix.FromNested([][]float64{{1, 2}, {3, 4}})
//	b, _ := matrix.FromNested([][]float64{{5, 6}, {7, 8}})
//	p, _ := matrix.Mul(a, b) // [[19 22] [43 50]]
//	n, _ := ndarray.FromMatrix(p)
//	r, _ := n.Reshape(4)     // [19, 22, 43, 50]
//
// Containers are not safe for concurrent mutation of one instance; callers
// serialize such access. Distinct instances never share storage.
//
//	go get github.com/katalvlaran/lvarray
package lvarray
