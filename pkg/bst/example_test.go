package bst_test

import (
	"fmt"
	"strings"

	"github.com/scottcagno/bstmap/pkg/bst"
)

func ExampleOrderedMap() {
	m := bst.NewOrdered[int, string]()
	m.Put(1, "first")
	m.Put(99, "last")
	m.Put(4, "fourth")
	m.Put(2, "second")
	m.Put(3, "third")

	fmt.Println(m.Keys())
	fmt.Println(m.Values())

	v, ok := m.Remove(1)
	fmt.Println(v, ok, m.Size())
	fmt.Println(m)
	// Output:
	// [1 2 3 4 99]
	// [first second third fourth last]
	// first true 4
	// [  {key=2;value=second}  {key=3;value=third}  {key=4;value=fourth}  {key=99;value=last} ]
}

func ExampleNew() {
	// order by length first, then lexically
	m := bst.New[string, int](func(a, b string) int {
		if len(a) != len(b) {
			return len(a) - len(b)
		}
		return strings.Compare(a, b)
	})
	for _, w := range []string{"pear", "fig", "banana", "kiwi", "apple"} {
		m.Put(w, len(w))
	}
	fmt.Println(m.Keys())
	// Output:
	// [fig kiwi pear apple banana]
}
