package errors

import (
	"fmt"
	"strings"
)

// Op identifies the operation that failed
type Op string

const (
	OpNew   Op = "new"   // value construction
	OpAlloc Op = "alloc" // arena allocation
	OpPut   Op = "put"   // dictionary insertion
	OpAt    Op = "at"    // indexed access
)

// Kind categorizes the error
type Kind string

const (
	KindOverflow   Kind = "overflow"     // content longer than a value can describe
	KindAllocation Kind = "allocation"   // allocation rejected or failed
	KindOutOfRange Kind = "out_of_range" // index outside the container
)

// Error is the structured error type used throughout the library
type Error struct {
	Value  any
	Cause  error
	Op     Op
	Kind   Kind
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Op))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Op == t.Op && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(op Op, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Op:   op,
			Kind: kind,
		},
	}
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// Overflow creates an overflow error for content that exceeds max bytes
func Overflow(op Op, n, max uint64) *Error {
	return &Error{
		Op:     op,
		Kind:   KindOverflow,
		Detail: fmt.Sprintf("content length %d exceeds maximum %d", n, max),
		Value:  n,
	}
}

// Allocation creates an allocation failure error
func Allocation(op Op, size int) *Error {
	return &Error{
		Op:     op,
		Kind:   KindAllocation,
		Detail: fmt.Sprintf("cannot allocate %d bytes", size),
		Value:  size,
	}
}

// OutOfRange creates an out of range error
func OutOfRange(op Op, index, length int) *Error {
	return &Error{
		Op:     op,
		Kind:   KindOutOfRange,
		Detail: fmt.Sprintf("index %d out of range (length %d)", index, length),
		Value:  index,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(op Op, kind Kind, cause error, detail string) *Error {
	return &Error{
		Op:     op,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
