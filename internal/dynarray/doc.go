// Package dynarray provides a generic array whose length is chosen at
// construction and never changes afterwards.
//
//   - [Array]: owning container with checked and unchecked access
//   - [Cursor]: forward position over an array, from [Array.Begin] to [Array.End]
//   - [Concat]: joins two arrays into a new one
//
// # Example
//
//	a := dynarray.New[int](3)
//	*a.Index(0) = 1
//	b := dynarray.Clone(a)
//	c := dynarray.Concat(a, b)
//	fmt.Println(c.ToText(", "))
//
// # Access
//
// [Array.Index] does no bounds checking of its own; the caller must keep the
// index inside [0, Len). [Array.At] checks and returns an error wrapping
// [ErrOutOfRange] instead.
package dynarray
