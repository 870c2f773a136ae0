// Package matrix is the two-dimensional container of lvarray.
//
// The matrix package provides:
//
//   - Matrix, a rows×cols row-major float64 container with error-returning
//     accessors (At, Set, Row, Col) that never panic on bad indices.
//   - Constructors New, Full, FromFlat, FromNested and Identity.
//   - Deterministic kernels Add, Sub, Mul, Transpose, Scale, Hadamard and
//     MatVec. Mul sums every output cell over k in increasing order.
//   - ToGonum/FromGonum for handing data to gonum.org/v1/gonum/mat.
//
// Every derived matrix owns a fresh buffer; no two live containers share
// storage. Failed calls return a wrapped sentinel (check with errors.Is) and
// never produce a partially written result.
//
// See the examples in this package and ndarray for N-dimensional use.
package matrix
