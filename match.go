package bitcol

import "golang.org/x/exp/constraints"

// A predicate over a packed value.
type Match[T constraints.Integer] func(value T) bool

// Matches values which have every bit in test.
func MatchAll[T constraints.Integer](test T) Match[T] {
	return func(value T) bool {
		return value&test == test
	}
}

// Matches values which have no bits outside of test.
func MatchOnly[T constraints.Integer](test T) Match[T] {
	return func(value T) bool {
		return value&test == value
	}
}

func MatchExact[T constraints.Integer](test T) Match[T] {
	return func(value T) bool {
		return value == test
	}
}

// Matches values which share at least one bit with test.
func MatchAny[T constraints.Integer](test T) Match[T] {
	return func(value T) bool {
		return value&test != 0
	}
}

func MatchNone[T constraints.Integer](test T) Match[T] {
	return func(value T) bool {
		return value&test == 0
	}
}

func MatchEmpty[T constraints.Integer]() Match[T] {
	return func(value T) bool {
		return value == 0
	}
}

func MatchNot[T constraints.Integer](not Match[T]) Match[T] {
	return func(value T) bool {
		return !not(value)
	}
}

func MatchAnd[T constraints.Integer](ands ...Match[T]) Match[T] {
	return func(value T) bool {
		for _, and := range ands {
			if !and(value) {
				return false
			}
		}
		return true
	}
}

func MatchOr[T constraints.Integer](ors ...Match[T]) Match[T] {
	return func(value T) bool {
		for _, or := range ors {
			if or(value) {
				return true
			}
		}
		return false
	}
}

// A match that never passes, used when a query names an undeclared flag.
func matchNever[T constraints.Integer]() Match[T] {
	return func(value T) bool {
		return false
	}
}
