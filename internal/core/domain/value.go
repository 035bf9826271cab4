package domain

// Value is either Text or Number. The unexported method seals the set of
// variants to this package.
type Value interface {
	isValue()
}

type Text string

type Number float64

func (Text) isValue()   {}
func (Number) isValue() {}
