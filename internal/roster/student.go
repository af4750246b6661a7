// Package roster models a class of students on a fixed-length array.
package roster

import (
	"fmt"

	"github.com/san-kum/roster/internal/dynarray"
)

// Student is one roster entry. Standard is the class year.
type Student struct {
	Name     string
	Standard int
}

func (s Student) String() string {
	return fmt.Sprintf("[%s, %d]", s.Name, s.Standard)
}

// Class is a fixed-size group of students.
type Class = dynarray.Array[Student]

// NewClass returns a class of n empty students.
func NewClass(n int) *Class {
	return dynarray.New[Student](n)
}

// Copy deep-copies a class; edits to either side stay local.
func Copy(c *Class) *Class {
	return dynarray.Clone(c)
}

// Merge returns a new class with a's students followed by b's.
func Merge(a, b *Class) *Class {
	return dynarray.Concat(a, b)
}

// Standards projects the numeric attribute of every student.
func Standards(c *Class) []int {
	out := make([]int, 0, c.Len())
	for _, s := range c.All() {
		out = append(out, s.Standard)
	}
	return out
}
