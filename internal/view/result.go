// Package view renders the portfolio page and drives the GitHub activity
// section through its per-source loading state machine.
package view

import (
	"errors"
	"fmt"
)

// Status is the state of one data source.
type Status int

const (
	Loading Status = iota
	Success
	Failure
)

func (s Status) String() string {
	switch s {
	case Loading:
		return "loading"
	case Success:
		return "success"
	case Failure:
		return "failure"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// MarshalText lets Status appear as a word in JSON output.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// ErrSettled is returned when a settled Result is asked to settle again.
var ErrSettled = errors.New("result already settled")

// Result is the fetch envelope of one data source. The zero value is Loading.
// A Result moves from Loading to Success or Failure exactly once; a new
// request starts from a new Result.
type Result[T any] struct {
	status Status
	value  T
	err    error
}

// Pending returns a Result in the Loading state.
func Pending[T any]() Result[T] {
	return Result[T]{}
}

// Succeed settles r with value.
func (r Result[T]) Succeed(value T) (Result[T], error) {
	if r.status != Loading {
		return r, fmt.Errorf("cannot succeed: %w (%s)", ErrSettled, r.status)
	}
	return Result[T]{status: Success, value: value}, nil
}

// Fail settles r with the reason err.
func (r Result[T]) Fail(err error) (Result[T], error) {
	if r.status != Loading {
		return r, fmt.Errorf("cannot fail: %w (%s)", ErrSettled, r.status)
	}
	if err == nil {
		err = errors.New("unknown failure")
	}
	return Result[T]{status: Failure, err: err}, nil
}

func (r Result[T]) Status() Status {
	return r.status
}

// Value returns the payload and whether r succeeded.
func (r Result[T]) Value() (T, bool) {
	return r.value, r.status == Success
}

// Err returns the failure reason, or nil unless r failed.
func (r Result[T]) Err() error {
	return r.err
}
