package enums

// PaymentMethod names how a transaction was settled. Stored as plain text;
// only Card carries extra validation (a card number is required).
type PaymentMethod string

const (
	PaymentMethodCash PaymentMethod = "Cash"
	PaymentMethodCard PaymentMethod = "Card"
)

// String implements fmt.Stringer.
func (p PaymentMethod) String() string {
	return string(p)
}

// IsValid reports whether the value is a known PaymentMethod.
func (p PaymentMethod) IsValid() bool {
	return p == PaymentMethodCash || p == PaymentMethodCard
}

// RequiresCardNumber reports whether the method needs a card number attached.
func (p PaymentMethod) RequiresCardNumber() bool {
	return p == PaymentMethodCard
}
