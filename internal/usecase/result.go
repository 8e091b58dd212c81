// Package usecase defines the application operations the delivery layers call.
package usecase

// Source tells where a Result's data came from.
type Source string

const (
	SourceRemote   Source = "remote"
	SourceFallback Source = "fallback"
)

// Result is either fresh remote data (Ok) or bundled substitute data
// (Degraded) along with the failure that caused the substitution.
type Result[T any] struct {
	Data   T
	Source Source
	Cause  error
}

// Ok wraps data fetched from the content service.
func Ok[T any](data T) Result[T] {
	return Result[T]{Data: data, Source: SourceRemote}
}

// Degraded wraps fallback data substituted because of cause.
func Degraded[T any](data T, cause error) Result[T] {
	return Result[T]{Data: data, Source: SourceFallback, Cause: cause}
}

// IsDegraded reports whether the data is a fallback substitution.
func (r Result[T]) IsDegraded() bool {
	return r.Source == SourceFallback
}
