package dynarray

import (
	"fmt"
	"iter"
	"strings"
)

// DefaultSep separates elements in String.
const DefaultSep = ", "

// Array owns a buffer of exactly n elements. n is fixed at construction;
// there is no append or resize.
type Array[T any] struct {
	data []T
	n    int
}

// New allocates n zero-valued elements. A negative n yields an empty array.
func New[T any](n int) *Array[T] {
	if n < 0 {
		n = 0
	}
	return &Array[T]{data: make([]T, n), n: n}
}

// Of builds an array holding a copy of values.
func Of[T any](values ...T) *Array[T] {
	a := New[T](len(values))
	copy(a.data, values)
	return a
}

// Clone returns a deep copy of other with its own buffer.
func Clone[T any](other *Array[T]) *Array[T] {
	a := New[T](other.n)
	for i := 0; i < other.n; i++ {
		a.data[i] = other.data[i]
	}
	return a
}

// Concat returns a new array holding a's elements followed by b's.
// Neither input is modified.
func Concat[T any](a, b *Array[T]) *Array[T] {
	result := New[T](a.n + b.n)
	copy(result.data, a.data)
	copy(result.data[a.n:], b.data)
	return result
}

// Index returns a pointer to element i without checking i.
// The caller guarantees 0 <= i < Len.
func (a *Array[T]) Index(i int) *T {
	return &a.data[i]
}

// At returns a pointer to element i, or a *RangeError if i is outside [0, Len).
func (a *Array[T]) At(i int) (*T, error) {
	if i < 0 || i >= a.n {
		return nil, &RangeError{Index: i, Len: a.n}
	}
	return &a.data[i], nil
}

// Set stores v at position i with the same checks as At.
func (a *Array[T]) Set(i int, v T) error {
	p, err := a.At(i)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

func (a *Array[T]) Len() int { return a.n }

func (a *Array[T]) Front() (*T, error) {
	if a.n == 0 {
		return nil, ErrEmpty
	}
	return &a.data[0], nil
}

func (a *Array[T]) Back() (*T, error) {
	if a.n == 0 {
		return nil, ErrEmpty
	}
	return &a.data[a.n-1], nil
}

// Data exposes the backing buffer. Writes through it are visible in the
// array. It is nil for an empty array.
func (a *Array[T]) Data() []T {
	if a.n == 0 {
		return nil
	}
	return a.data
}

func (a *Array[T]) Fill(v T) {
	for i := range a.data {
		a.data[i] = v
	}
}

// All yields index/value pairs in order.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < a.n; i++ {
			if !yield(i, a.data[i]) {
				return
			}
		}
	}
}

// ToText renders every element with %v, joined by sep.
func (a *Array[T]) ToText(sep string) string {
	if a.n == 0 {
		return ""
	}
	var b strings.Builder
	fmt.Fprint(&b, a.data[0])
	for i := 1; i < a.n; i++ {
		b.WriteString(sep)
		fmt.Fprint(&b, a.data[i])
	}
	return b.String()
}

func (a *Array[T]) String() string {
	return a.ToText(DefaultSep)
}
