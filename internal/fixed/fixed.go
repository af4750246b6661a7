// Package fixed walks through Go's built-in fixed-size arrays, the
// compile-time counterpart of dynarray.Array.
package fixed

import (
	"fmt"
	"io"
	"strings"

	"github.com/san-kum/roster/internal/dynarray"
)

// At is checked access into any array slice; arr[:] passes an [N]T.
func At[T any](arr []T, i int) (T, error) {
	var zero T
	if i < 0 || i >= len(arr) {
		return zero, &dynarray.RangeError{Index: i, Len: len(arr)}
	}
	return arr[i], nil
}

func Join[T any](arr []T, sep string) string {
	parts := make([]string, len(arr))
	for i, v := range arr {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, sep)
}

// Walkthrough prints the fixed-array exercise to out. Checked-access
// failures go to errOut and do not stop the walk.
func Walkthrough(out, errOut io.Writer) {
	var arr1 [10]int
	arr1[0] = 1
	fmt.Fprintf(out, "first element of arr1: %d\n", arr1[0])

	arr2 := [4]int{1, 2, 3, 4}
	fmt.Fprint(out, "all elements of arr2:")
	for i := 0; i < len(arr2); i++ {
		fmt.Fprintf(out, " %d", arr2[i])
	}
	fmt.Fprintln(out)

	for _, i := range []int{3, 100} {
		v, err := At(arr2[:], i)
		if err != nil {
			fmt.Fprintln(errOut, err)
			continue
		}
		fmt.Fprintf(out, "arr2 at %d: %d\n", i, v)
	}

	fmt.Fprintln(out, Join(arr2[:], ", "))

	// arrays are values: ranging copies each element
	for _, v := range arr2 {
		fmt.Fprintf(out, "%d ", v)
	}
	fmt.Fprintln(out)

	// a slice of the array shares its storage, like a pointer to the first element
	data := arr2[:]
	fmt.Fprintf(out, "front %d, back %d, data[1] %d\n", arr2[0], arr2[len(arr2)-1], data[1])
}
