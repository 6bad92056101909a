package enumset_test

import (
	"fmt"

	"declgen/canon"
	"declgen/enumset"
)

func Example() {
	list := canon.MustNew("Red", "Green", "Blue")
	set := enumset.Build(list)

	for i, member := range set.Members() {
		entry := set.NameTable()[i]
		fmt.Printf("%d %s %q(%d)\n", member.Ordinal, member.Name, entry.Name, entry.Len)
	}
	// Output:
	// 0 Red "Red"(3)
	// 1 Green "Green"(5)
	// 2 Blue "Blue"(4)
}
