package dynarray

// Cursor is a forward position in an array. End is one past the last
// element and must not be dereferenced.
type Cursor[T any] struct {
	arr *Array[T]
	pos int
}

func (a *Array[T]) Begin() Cursor[T] { return Cursor[T]{arr: a, pos: 0} }
func (a *Array[T]) End() Cursor[T]   { return Cursor[T]{arr: a, pos: a.n} }

func (c Cursor[T]) Pos() int { return c.pos }

func (c Cursor[T]) Next() Cursor[T] { return c.Advance(1) }

// Advance moves k positions forward.
func (c Cursor[T]) Advance(k int) Cursor[T] {
	c.pos += k
	return c
}

// Equal reports whether both cursors point at the same position of the same array.
func (c Cursor[T]) Equal(other Cursor[T]) bool {
	return c.arr == other.arr && c.pos == other.pos
}

// Ptr is the element under the cursor, unchecked like Array.Index.
func (c Cursor[T]) Ptr() *T { return c.arr.Index(c.pos) }

// Value copies the element under the cursor.
func (c Cursor[T]) Value() T { return *c.Ptr() }
