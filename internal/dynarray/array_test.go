package dynarray_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/roster/internal/dynarray"
)

type pair struct {
	name string
	v    int
}

var _ = Describe("Array", func() {
	var a *dynarray.Array[int]

	BeforeEach(func() {
		a = dynarray.Of(10, 20, 30, 40)
	})

	Describe("New", func() {
		It("zero-initializes every element", func() {
			b := dynarray.New[int](5)
			Expect(b.Len()).To(Equal(5))
			for _, v := range b.All() {
				Expect(v).To(BeZero())
			}
		})

		It("allows zero length", func() {
			Expect(dynarray.New[string](0).Len()).To(Equal(0))
		})

		It("treats a negative length as empty", func() {
			Expect(dynarray.New[int](-3).Len()).To(Equal(0))
		})
	})

	Describe("Index and At", func() {
		It("point at the same element for every valid index", func() {
			for i := 0; i < a.Len(); i++ {
				p, err := a.At(i)
				Expect(err).NotTo(HaveOccurred())
				Expect(p).To(BeIdenticalTo(a.Index(i)))
			}
		})

		It("write through the returned pointer", func() {
			*a.Index(1) = 99
			p, err := a.At(1)
			Expect(err).NotTo(HaveOccurred())
			Expect(*p).To(Equal(99))
		})

		DescribeTable("At rejects indexes outside the array",
			func(i int) {
				p, err := a.At(i)
				Expect(p).To(BeNil())
				Expect(err).To(MatchError(dynarray.ErrOutOfRange))

				var re *dynarray.RangeError
				Expect(errors.As(err, &re)).To(BeTrue())
				Expect(re.Index).To(Equal(i))
				Expect(re.Len).To(Equal(4))
			},
			Entry("one past the end", 4),
			Entry("far past the end", 100),
			Entry("negative", -1),
		)

		It("Set follows the same bounds as At", func() {
			Expect(a.Set(0, 7)).To(Succeed())
			Expect(*a.Index(0)).To(Equal(7))
			Expect(a.Set(4, 7)).To(MatchError(dynarray.ErrOutOfRange))
		})
	})

	Describe("Clone", func() {
		It("copies length and contents", func() {
			b := dynarray.Clone(a)
			Expect(b.Len()).To(Equal(a.Len()))
			Expect(b.Data()).To(Equal(a.Data()))
		})

		It("is independent of the source in both directions", func() {
			b := dynarray.Clone(a)
			*b.Index(0) = -1
			Expect(*a.Index(0)).To(Equal(10))

			*a.Index(3) = -4
			Expect(*b.Index(3)).To(Equal(40))
		})

		It("copies struct elements by value", func() {
			src := dynarray.Of(pair{"x", 1})
			dst := dynarray.Clone(src)
			dst.Index(0).v = 2
			Expect(src.Index(0).v).To(Equal(1))
		})
	})

	Describe("Concat", func() {
		It("puts a's elements before b's", func() {
			b := dynarray.Of(1, 2)
			c := dynarray.Concat(a, b)

			Expect(c.Len()).To(Equal(a.Len() + b.Len()))
			for i := 0; i < c.Len(); i++ {
				if i < a.Len() {
					Expect(*c.Index(i)).To(Equal(*a.Index(i)))
				} else {
					Expect(*c.Index(i)).To(Equal(*b.Index(i - a.Len())))
				}
			}
		})

		It("leaves both inputs untouched", func() {
			b := dynarray.Of(1, 2)
			c := dynarray.Concat(a, b)
			*c.Index(0) = 0
			*c.Index(5) = 0

			Expect(a.ToText(",")).To(Equal("10,20,30,40"))
			Expect(b.ToText(",")).To(Equal("1,2"))
		})

		It("handles empty operands", func() {
			e := dynarray.New[int](0)
			Expect(dynarray.Concat(e, e).Len()).To(Equal(0))
			Expect(dynarray.Concat(e, a).String()).To(Equal(a.String()))
		})
	})

	Describe("ToText", func() {
		It("is empty for an empty array", func() {
			Expect(dynarray.New[int](0).ToText(", ")).To(BeEmpty())
		})

		It("joins with the separator", func() {
			Expect(dynarray.Of(1, 2, 3).ToText(", ")).To(Equal("1, 2, 3"))
			Expect(dynarray.Of(1, 2, 3).ToText(" | ")).To(Equal("1 | 2 | 3"))
		})

		It("uses the default separator in String", func() {
			Expect(dynarray.Of("a", "b").String()).To(Equal("a, b"))
		})

		It("does not add a separator to a single element", func() {
			Expect(dynarray.Of(5).ToText(", ")).To(Equal("5"))
		})
	})

	Describe("Front, Back and Data", func() {
		It("return the ends of the array", func() {
			f, err := a.Front()
			Expect(err).NotTo(HaveOccurred())
			Expect(*f).To(Equal(10))

			b, err := a.Back()
			Expect(err).NotTo(HaveOccurred())
			Expect(*b).To(Equal(40))

			Expect(a.Data()[1]).To(Equal(20))
		})

		It("report an empty array", func() {
			e := dynarray.New[int](0)
			_, err := e.Front()
			Expect(err).To(MatchError(dynarray.ErrEmpty))
			_, err = e.Back()
			Expect(err).To(MatchError(dynarray.ErrEmpty))
			Expect(e.Data()).To(BeNil())
		})

		It("Fill overwrites every element", func() {
			a.Fill(3)
			Expect(a.ToText("")).To(Equal("3333"))
		})
	})

	Describe("cursors", func() {
		It("walk from Begin to End in order", func() {
			var got []int
			for it := a.Begin(); !it.Equal(a.End()); it = it.Next() {
				got = append(got, it.Value())
			}
			Expect(got).To(Equal([]int{10, 20, 30, 40}))
		})

		It("coincide on an empty array", func() {
			e := dynarray.New[int](0)
			Expect(e.Begin().Equal(e.End())).To(BeTrue())
		})

		It("write through Ptr", func() {
			*a.Begin().Advance(2).Ptr() = 0
			Expect(*a.Index(2)).To(Equal(0))
			Expect(a.End().Pos()).To(Equal(a.Len()))
		})

		It("do not compare equal across arrays", func() {
			b := dynarray.Clone(a)
			Expect(a.Begin().Equal(b.Begin())).To(BeFalse())
		})
	})

	Describe("All", func() {
		It("stops when the loop breaks", func() {
			n := 0
			for i := range a.All() {
				if i == 1 {
					break
				}
				n++
			}
			Expect(n).To(Equal(1))
		})
	})
})
