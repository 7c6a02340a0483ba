package random

import (
	"errors"
	"fmt"

	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/messages"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/parts"
)

// Sentinels matched with errors.Is.
var (
	ErrInvalidLimit       = errors.New("invalid retry limit")
	ErrReservedKey        = errors.New("reserved validator key")
	ErrEmptyPool          = errors.New("empty candidate pool")
	ErrContradictoryLocks = errors.New("contradictory locks")
	ErrExhausted          = errors.New("retry limit exhausted")
)

// ReservedKeyError is returned when a caller touches an internal validator key.
type ReservedKeyError struct {
	Key string
}

func (e *ReservedKeyError) Error() string {
	return fmt.Sprintf(messages.RandomReservedKeyFmt, e.Key)
}

// Unwrap lets errors.Is match ErrReservedKey.
func (e *ReservedKeyError) Unwrap() error { return ErrReservedKey }

// EmptyPoolError is returned when an unpinned slot has nothing left to draw.
type EmptyPoolError struct {
	Slot parts.Slot
}

func (e *EmptyPoolError) Error() string {
	return fmt.Sprintf(messages.RandomEmptyPoolFmt, e.Slot)
}

// Unwrap lets errors.Is match ErrEmptyPool.
func (e *EmptyPoolError) Unwrap() error { return ErrEmptyPool }

// ExhaustedError is returned when no attempt within Limit passed validation.
// Errors holds every validation error of every attempt, in order.
type ExhaustedError struct {
	Limit  int
	Errors []error
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf(messages.RandomExhaustedFmt, e.Limit, len(e.Errors))
}

// Unwrap exposes ErrExhausted followed by the collected validation errors.
func (e *ExhaustedError) Unwrap() []error {
	out := make([]error, 0, len(e.Errors)+1)
	out = append(out, ErrExhausted)
	return append(out, e.Errors...)
}
