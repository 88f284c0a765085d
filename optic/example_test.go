package optic_test

import (
	"fmt"

	"optics-generator/optic"
)

func Example() {
	street := optic.ComposeOptional(optic.Flatten(personAddress), addressStreet.ToOptional()).
		OrElseValue("Unknown")

	homeless := person{Name: "Alice", Age: 30}
	fmt.Println(street.Get(homeless))
	fmt.Println(street.Set(homeless, "Main").Address == nil)

	housed := street.Set(person{Name: "Bob", Address: &address{Street: "Elm"}}, "Main")
	fmt.Println(street.Get(housed))
	// Output:
	// Unknown
	// true
	// Main
}

func ExampleJoin() {
	k, ok := optic.Join(optic.KindLens, optic.KindOptional)
	fmt.Println(k, ok)

	k, ok = optic.Join(optic.KindGetter, optic.KindSetter)
	fmt.Println(k, ok)
	// Output:
	// Optional true
	// Invalid false
}
