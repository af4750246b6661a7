package roster

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/untillpro/goutils/logger"
)

// Reader pulls whitespace-separated tokens from an input stream, so a
// count and name/standard pairs may share a line or span several.
type Reader struct {
	sc     *bufio.Scanner
	prompt io.Writer
}

// NewReader reads from in. Prompts are written to prompt when it is non-nil.
func NewReader(in io.Reader, prompt io.Writer) *Reader {
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)
	return &Reader{sc: sc, prompt: prompt}
}

func (r *Reader) promptf(format string, args ...any) {
	if r.prompt != nil {
		fmt.Fprintf(r.prompt, format, args...)
	}
}

func (r *Reader) token() (string, error) {
	if r.sc.Scan() {
		return r.sc.Text(), nil
	}
	if err := r.sc.Err(); err != nil {
		return "", err
	}
	return "", io.ErrUnexpectedEOF
}

// Count reads the number of students in a class.
func (r *Reader) Count(label string) (int, error) {
	r.promptf("Enter the number of students in %s: ", label)
	tok, err := r.token()
	if err != nil {
		return 0, fmt.Errorf("reading student count: %w", err)
	}
	return ParseCount(tok)
}

// ParseCount accepts a whole number in [0, MaxStudents].
func ParseCount(tok string) (int, error) {
	n, err := strconv.Atoi(tok)
	if err != nil || n < 0 || n > MaxStudents {
		return 0, fmt.Errorf("%q: %w", tok, ErrBadCount)
	}
	return n, nil
}

// Student reads one name/standard pair. pos is 1-based and only used in
// prompts and errors.
func (r *Reader) Student(pos int) (Student, error) {
	r.promptf("Enter name and standard of student %d: ", pos)
	name, err := r.token()
	if err != nil {
		return Student{}, fmt.Errorf("student %d name: %w", pos, err)
	}
	tok, err := r.token()
	if err != nil {
		return Student{}, fmt.Errorf("student %d standard: %w", pos, err)
	}
	standard, err := strconv.Atoi(tok)
	if err != nil {
		return Student{}, fmt.Errorf("student %d standard %q: %w", pos, tok, ErrBadStandard)
	}
	return Student{Name: name, Standard: standard}, nil
}

// Class reads a count followed by that many students.
func (r *Reader) Class(label string) (*Class, error) {
	n, err := r.Count(label)
	if err != nil {
		return nil, err
	}
	c := NewClass(n)
	for i := 0; i < n; i++ {
		s, err := r.Student(i + 1)
		if err != nil {
			return nil, err
		}
		*c.Index(i) = s
	}
	logger.Verbose(fmt.Sprintf("read %d students for %s", n, label))
	return c, nil
}

// ParseStudent parses a "name standard" line. Anything after the standard
// is rejected.
func ParseStudent(line string) (Student, error) {
	r := NewReader(strings.NewReader(line), nil)
	s, err := r.Student(1)
	if err != nil {
		return Student{}, err
	}
	if tok, err := r.token(); err == nil {
		return Student{}, fmt.Errorf("%q after standard: %w", tok, ErrTrailingInput)
	}
	return s, nil
}
