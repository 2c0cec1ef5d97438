// Package matrix provides the dense, immutable, generic matrix used by the
// lowrank compression pipeline.
//
// The matrix package provides:
//
//   - Size, a (Height, Width) shape with Transpose.
//   - Matrix[T], a row-major container over any Numeric element type
//     (integer channel intensities or floating-point values).
//   - Constructors New, Zeros, Identity and Diagonal with strict shape checks.
//   - Mul, computed in float64 and re-quantized into the operand type.
//   - Quantize, the saturating round-to-integer conversion that decides the
//     pixel values of a compressed image at the extremes.
//   - TransposeStorage / ColMajor / FromColMajor for handing buffers to
//     column-major numerical routines.
//
// Matrices are never mutated after construction. Every operation returns a
// fresh value, so a Matrix can be shared freely between goroutines.
//
// See example_test.go for usage patterns.
package matrix
