package optic_test

import "optics-generator/optic"

type address struct {
	Street string
	City   string
}

type person struct {
	Name    string
	Age     int
	Address *address
}

var (
	personName = optic.NewLens(
		func(p person) string { return p.Name },
		func(p person, v string) person { p.Name = v; return p },
	)
	personAge = optic.NewLens(
		func(p person) int { return p.Age },
		func(p person, v int) person { p.Age = v; return p },
	)
	personAddress = optic.NewLens(
		func(p person) optic.Option[address] { return optic.FromPtr(p.Address) },
		func(p person, v optic.Option[address]) person { p.Address = v.ToPtr(); return p },
	)
	addressStreet = optic.NewLens(
		func(a address) string { return a.Street },
		func(a address, v string) address { a.Street = v; return a },
	)
	// nonEmptyStreet finds nothing for an address without a street.
	nonEmptyStreet = optic.NewOptional(
		func(a address) optic.Option[string] {
			if a.Street == "" {
				return optic.None[string]()
			}

			return optic.Some(a.Street)
		},
		func(a address, v string) address { a.Street = v; return a },
	)
	// positive matches strictly positive ints.
	positive = optic.NewPrism(
		func(n int) optic.Option[int] {
			if n <= 0 {
				return optic.None[int]()
			}

			return optic.Some(n)
		},
		func(n int) int { return n },
	)
	// even matches even ints and halves them.
	even = optic.NewPrism(
		func(n int) optic.Option[int] {
			if n%2 != 0 {
				return optic.None[int]()
			}

			return optic.Some(n / 2)
		},
		func(n int) int { return n * 2 },
	)
	celsius = optic.NewIso(
		func(f float64) float64 { return (f - 32) * 5 / 9 },
		func(c float64) float64 { return c*9/5 + 32 },
	)
	double = optic.NewIso(
		func(n int) int { return n * 2 },
		func(n int) int { return n / 2 },
	)
)

func alice() person {
	return person{Name: "Alice", Age: 30}
}

func aliceAt(street string) person {
	p := alice()
	p.Address = &address{Street: street, City: "Springfield"}

	return p
}
