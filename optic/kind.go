package optic

import "fmt"

//go:generate go tool stringer -type=Kind -trimprefix=Kind

// Kind tags the closed set of accessor kinds.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindIso
	KindLens
	KindPrism
	KindOptional
	KindGetter
	KindOptionalGetter
	KindSetter
	KindConstructor
)

// capability is one primitive operation an accessor kind can answer.
type capability uint8

const (
	capGet       capability = 1 << iota // total read
	capPreview                          // partial read
	capSet                              // write
	capConstruct                        // build a whole from a part
)

var kindCapabilities = [...]capability{
	KindInvalid:        0,
	KindIso:            capGet | capPreview | capSet | capConstruct,
	KindLens:           capGet | capPreview | capSet,
	KindPrism:          capPreview | capSet | capConstruct,
	KindOptional:       capPreview | capSet,
	KindGetter:         capGet | capPreview,
	KindOptionalGetter: capPreview,
	KindSetter:         capSet,
	KindConstructor:    capConstruct,
}

func (k Kind) capabilities() capability {
	if int(k) >= len(kindCapabilities) {
		return 0
	}

	return kindCapabilities[k]
}

// CanGet reports whether the kind reads totally.
func (k Kind) CanGet() bool { return k.capabilities()&capGet != 0 }

// CanPreview reports whether the kind reads, possibly finding nothing.
func (k Kind) CanPreview() bool { return k.capabilities()&capPreview != 0 }

// CanSet reports whether the kind writes.
func (k Kind) CanSet() bool { return k.capabilities()&capSet != 0 }

// CanConstruct reports whether the kind builds a whole from a part.
func (k Kind) CanConstruct() bool { return k.capabilities()&capConstruct != 0 }

// Covers reports whether k supports every operation of other, i.e. whether
// an accessor of kind k can be viewed as one of kind other.
func (k Kind) Covers(other Kind) bool {
	want := other.capabilities()

	return want != 0 && k.capabilities()&want == want
}

// kindOf returns the strongest kind answering exactly the given capabilities.
func kindOf(c capability) Kind {
	switch {
	case c&capConstruct != 0 && c&capGet != 0:
		return KindIso
	case c&capConstruct != 0 && c&capPreview != 0:
		return KindPrism
	case c&capConstruct != 0:
		return KindConstructor
	case c&capGet != 0 && c&capSet != 0:
		return KindLens
	case c&capPreview != 0 && c&capSet != 0:
		return KindOptional
	case c&capGet != 0:
		return KindGetter
	case c&capPreview != 0:
		return KindOptionalGetter
	case c&capSet != 0:
		return KindSetter
	default:
		return KindInvalid
	}
}

// Join returns the kind of outer composed with inner.
// The composite keeps the capabilities both kinds share; writing through
// the composite also needs the outer kind to read. ok is false when the
// two kinds share nothing usable.
func Join(outer, inner Kind) (Kind, bool) {
	oc := outer.capabilities()

	c := oc & inner.capabilities()
	if oc&capPreview == 0 {
		c &^= capSet
	}

	k := kindOf(c)

	return k, k != KindInvalid
}

// JoinError is the panic value raised when two kinds have no defined join.
type JoinError struct {
	Outer Kind
	Inner Kind
}

func (e *JoinError) Error() string {
	return fmt.Sprintf("optic: %s cannot be composed with %s", e.Outer, e.Inner)
}

// KindError is the panic value raised when an accessor is used as a kind
// it does not cover.
type KindError struct {
	Have Kind
	Want Kind
}

func (e *KindError) Error() string {
	return fmt.Sprintf("optic: %s accessor used as %s", e.Have, e.Want)
}
