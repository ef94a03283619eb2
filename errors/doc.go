// Package errors provides structured error types for the german-strings library.
//
// Errors are categorized by Op (the operation that failed) and Kind (error
// category). The Error type includes the offending value and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.OpAlloc, errors.KindAllocation).
//		Value(n).
//		Detail("chunk size %d exceeds arena limit", n).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.Overflow(errors.OpNew, n, math.MaxUint32)
//	err := errors.OutOfRange(errors.OpAt, 10, 5)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
