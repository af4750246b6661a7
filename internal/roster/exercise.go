package roster

import (
	"fmt"
	"io"

	"github.com/san-kum/roster/internal/dynarray"
)

// Options controls how the exercise reads and prints.
type Options struct {
	Sep         string
	FirstLabel  string
	CopyLabel   string
	MergedLabel string
	Prompts     bool

	// Heading decorates the label printed before each class. nil means plain.
	Heading func(string) string
}

func DefaultOptions() Options {
	return Options{
		Sep:         dynarray.DefaultSep,
		FirstLabel:  "class 1",
		CopyLabel:   "class 2 (copy of class 1)",
		MergedLabel: "class 3 (class 1 + class 2)",
		Prompts:     true,
	}
}

// Result holds the three classes the exercise builds.
type Result struct {
	First  *Class
	Copy   *Class
	Merged *Class
}

// Exercise reads the first class from in, then copies and merges it and
// prints the results to out.
func Exercise(in io.Reader, out io.Writer, opts Options) (*Result, error) {
	var prompt io.Writer
	if opts.Prompts {
		prompt = out
	}
	first, err := NewReader(in, prompt).Class(opts.FirstLabel)
	if err != nil {
		return nil, err
	}
	if opts.Prompts {
		fmt.Fprintln(out)
	}
	return Build(first, out, opts), nil
}

// Assemble copies first and merges the original with its copy.
func Assemble(first *Class) *Result {
	res := &Result{First: first, Copy: Copy(first)}
	res.Merged = Merge(res.First, res.Copy)
	return res
}

// Build assembles the classes for first and prints the copy and the merge.
func Build(first *Class, out io.Writer, opts Options) *Result {
	res := Assemble(first)
	PrintClass(out, opts, opts.CopyLabel, res.Copy)
	PrintClass(out, opts, opts.MergedLabel, res.Merged)
	return res
}

// PrintClass writes "label: students" on one line.
func PrintClass(out io.Writer, opts Options, label string, c *Class) {
	head := label + ":"
	if opts.Heading != nil {
		head = opts.Heading(head)
	}
	sep := opts.Sep
	if sep == "" {
		sep = dynarray.DefaultSep
	}
	fmt.Fprintf(out, "%s %s\n", head, c.ToText(sep))
}
