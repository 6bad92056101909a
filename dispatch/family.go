// Package dispatch selects among a family of operations by the number of
// positional arguments supplied at the call site. A family registers one
// implementation per arity in [1, 8]; any other argument count is a described
// error, never a silent fallback.
package dispatch

import (
	"errors"
	"fmt"

	"declgen/utils"
)

const (
	MinArity = 1
	MaxArity = 8
)

var (
	ErrEmptyFamily = errors.New("dispatch family must register at least one implementation")
	ErrArityRange  = errors.New("arity outside the supported range [1, 8]")
	ErrUnresolved  = errors.New("no implementation registered for arity")
)

// DuplicateArityError reports two implementations registered for one arity.
type DuplicateArityError struct {
	Family string
	Arity  int
}

func (e *DuplicateArityError) Error() string {
	return fmt.Sprintf("family %q: duplicate implementation for arity %d", e.Family, e.Arity)
}

// UnresolvedError reports a call whose argument count has no implementation.
// It wraps ErrUnresolved.
type UnresolvedError struct {
	Family string
	Arity  int
}

func (e *UnresolvedError) Error() string {
	return fmt.Sprintf("family %q: no implementation for arity %d", e.Family, e.Arity)
}

func (e *UnresolvedError) Unwrap() error { return ErrUnresolved }

// Op is an arity-erased operation. The args slice length always equals the
// arity the operation was registered under.
type Op[T, R any] func(args []T) R

// Impl pairs an operation with its declared arity. Construct via Arity1..Arity8.
type Impl[T, R any] struct {
	arity int
	op    Op[T, R]
}

func Arity1[T, R any](fn func(T) R) Impl[T, R] {
	return Impl[T, R]{arity: 1, op: func(a []T) R { return fn(a[0]) }}
}

func Arity2[T, R any](fn func(T, T) R) Impl[T, R] {
	return Impl[T, R]{arity: 2, op: func(a []T) R { return fn(a[0], a[1]) }}
}

func Arity3[T, R any](fn func(T, T, T) R) Impl[T, R] {
	return Impl[T, R]{arity: 3, op: func(a []T) R { return fn(a[0], a[1], a[2]) }}
}

func Arity4[T, R any](fn func(T, T, T, T) R) Impl[T, R] {
	return Impl[T, R]{arity: 4, op: func(a []T) R { return fn(a[0], a[1], a[2], a[3]) }}
}

func Arity5[T, R any](fn func(T, T, T, T, T) R) Impl[T, R] {
	return Impl[T, R]{arity: 5, op: func(a []T) R { return fn(a[0], a[1], a[2], a[3], a[4]) }}
}

func Arity6[T, R any](fn func(T, T, T, T, T, T) R) Impl[T, R] {
	return Impl[T, R]{arity: 6, op: func(a []T) R { return fn(a[0], a[1], a[2], a[3], a[4], a[5]) }}
}

func Arity7[T, R any](fn func(T, T, T, T, T, T, T) R) Impl[T, R] {
	return Impl[T, R]{arity: 7, op: func(a []T) R { return fn(a[0], a[1], a[2], a[3], a[4], a[5], a[6]) }}
}

func Arity8[T, R any](fn func(T, T, T, T, T, T, T, T) R) Impl[T, R] {
	return Impl[T, R]{arity: 8, op: func(a []T) R { return fn(a[0], a[1], a[2], a[3], a[4], a[5], a[6], a[7]) }}
}

// Family is a closed, arity-indexed set of operations. Fixed at construction;
// safe for concurrent callers.
type Family[T, R any] struct {
	name string
	ops  [MaxArity + 1]Op[T, R]
}

// NewFamily builds a family from its implementations. Registering two
// implementations for the same arity is a definition-time redefinition failure.
func NewFamily[T, R any](name string, impls ...Impl[T, R]) (*Family[T, R], error) {
	if len(impls) == 0 {
		return nil, fmt.Errorf("family %q: %w", name, ErrEmptyFamily)
	}

	family := &Family[T, R]{name: name}
	for _, impl := range impls {
		if !utils.IsInRange(MinArity, impl.arity, MaxArity) || impl.op == nil {
			return nil, fmt.Errorf("family %q: %w: %d", name, ErrArityRange, impl.arity)
		}

		if family.ops[impl.arity] != nil {
			return nil, &DuplicateArityError{Family: name, Arity: impl.arity}
		}

		family.ops[impl.arity] = impl.op
	}

	return family, nil
}

// MustNewFamily is NewFamily for package-level definition sites, where a bad
// family must prevent the program from starting at all.
func MustNewFamily[T, R any](name string, impls ...Impl[T, R]) *Family[T, R] {
	family, err := NewFamily(name, impls...)
	if err != nil {
		panic(err)
	}

	return family
}

func (f *Family[T, R]) Name() string { return f.name }

// Defined reports whether an implementation is registered for arity.
func (f *Family[T, R]) Defined(arity int) bool {
	return utils.IsInRange(MinArity, arity, MaxArity) && f.ops[arity] != nil
}

// Call resolves the implementation matching len(args) and invokes it. Zero
// arguments, more than MaxArity arguments, and unregistered arities all yield
// an UnresolvedError; nothing resolves to an unintended implementation.
func (f *Family[T, R]) Call(args ...T) (R, error) {
	arity := len(args)
	if !f.Defined(arity) {
		var zero R
		return zero, &UnresolvedError{Family: f.name, Arity: arity}
	}

	return f.ops[arity](args), nil
}
