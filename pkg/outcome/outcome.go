// Package outcome carries the result of a best-effort stage: either a valid
// value, a value produced by a degraded path, or no value at all.
package outcome

// Kind tags a Result.
type Kind int

const (
	// KindUnavailable means the dependency was absent or failed.
	KindUnavailable Kind = iota
	// KindValid means the preferred path produced the value.
	KindValid
	// KindFallback means a degraded path produced the value.
	KindFallback
	// KindInvalid means the dependency answered but its output was rejected.
	KindInvalid
)

func (k Kind) String() string {
	switch k {
	case KindValid:
		return "valid"
	case KindFallback:
		return "fallback"
	case KindInvalid:
		return "invalid"
	case KindUnavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// Result is a tagged stage outcome. The zero value is Unavailable with no cause.
type Result[T any] struct {
	value T
	kind  Kind
	cause error
	raw   string
}

// Valid wraps a value produced by the preferred path.
func Valid[T any](v T) Result[T] {
	return Result[T]{value: v, kind: KindValid}
}

// Fallback wraps a value produced by a degraded path. cause explains why the
// preferred path was skipped and may be nil.
func Fallback[T any](v T, cause error) Result[T] {
	return Result[T]{value: v, kind: KindFallback, cause: cause}
}

// Invalid records output that failed parsing or validation.
func Invalid[T any](raw string, cause error) Result[T] {
	return Result[T]{kind: KindInvalid, cause: cause, raw: raw}
}

// Unavailable records a missing or failing dependency.
func Unavailable[T any](cause error) Result[T] {
	return Result[T]{kind: KindUnavailable, cause: cause}
}

// Kind returns the tag.
func (r Result[T]) Kind() Kind { return r.kind }

// Cause returns the error behind a non-valid result.
func (r Result[T]) Cause() error { return r.cause }

// Raw returns the rejected output of an Invalid result.
func (r Result[T]) Raw() string { return r.raw }

// HasValue reports whether the result carries a usable value.
func (r Result[T]) HasValue() bool {
	return r.kind == KindValid || r.kind == KindFallback
}

// Degraded reports whether anything other than the preferred path was taken.
func (r Result[T]) Degraded() bool { return r.kind != KindValid }

// Get returns the value and whether it is usable.
func (r Result[T]) Get() (T, bool) {
	return r.value, r.HasValue()
}

// OrElse returns the carried value, or fallback when there is none.
func (r Result[T]) OrElse(fallback T) T {
	if r.HasValue() {
		return r.value
	}
	return fallback
}

// OrElseFunc is OrElse with a lazily built fallback.
func (r Result[T]) OrElseFunc(fallback func() T) T {
	if r.HasValue() {
		return r.value
	}
	return fallback()
}
