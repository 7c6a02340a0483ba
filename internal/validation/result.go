// Package validation defines validators over builds and the result type they produce.
package validation

import (
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/assembly"
)

// Error is a single validator complaint.
type Error struct {
	Validator string
	Message   string
}

func (e Error) Error() string {
	if e.Validator == "" {
		return e.Message
	}
	return e.Validator + ": " + e.Message
}

// Result is either a success carrying a build or a failure carrying at least one error.
//
// Concat is associative, Success is its left identity, and failures accumulate their
// errors left to right without deduplication.
type Result struct {
	build  assembly.Build
	errors []error
}

// Success wraps a valid build.
func Success(b assembly.Build) Result {
	return Result{build: b}
}

// Failure reports one or more errors.
func Failure(first error, rest ...error) Result {
	errs := make([]error, 0, len(rest)+1)
	errs = append(errs, first)
	errs = append(errs, rest...)
	return Result{errors: errs}
}

// IsSuccess reports whether the result carries no errors.
func (r Result) IsSuccess() bool {
	return len(r.errors) == 0
}

// Build returns the validated build; the second result is false for failures.
func (r Result) Build() (assembly.Build, bool) {
	if !r.IsSuccess() {
		return assembly.Build{}, false
	}
	return r.build, true
}

// Errors returns a copy of the failure errors, nil for successes.
func (r Result) Errors() []error {
	if r.IsSuccess() {
		return nil
	}
	return append([]error(nil), r.errors...)
}

// Concat combines r with other:
//
//	success.Concat(x)           == x
//	failure(a).Concat(success)  == failure(a)
//	failure(a).Concat(failure(b)) == failure(a ++ b)
func (r Result) Concat(other Result) Result {
	if r.IsSuccess() {
		return other
	}
	if other.IsSuccess() {
		return r
	}
	errs := make([]error, 0, len(r.errors)+len(other.errors))
	errs = append(errs, r.errors...)
	errs = append(errs, other.errors...)
	return Result{errors: errs}
}

// Fold eliminates a Result into a single value.
func Fold[T any](r Result, onFailure func([]error) T, onSuccess func(assembly.Build) T) T {
	if r.IsSuccess() {
		return onSuccess(r.build)
	}
	return onFailure(r.Errors())
}

// ConcatAll folds results left to right.
func ConcatAll(first Result, rest ...Result) Result {
	out := first
	for _, r := range rest {
		out = out.Concat(r)
	}
	return out
}
