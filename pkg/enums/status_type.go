package enums

import "fmt"

// StatusType discriminates rows in the status registry.
type StatusType string

const (
	StatusTypeOrder       StatusType = "Order"
	StatusTypeTransaction StatusType = "Transaction"
)

var validStatusTypes = []StatusType{
	StatusTypeOrder,
	StatusTypeTransaction,
}

// String implements fmt.Stringer.
func (s StatusType) String() string {
	return string(s)
}

// IsValid reports whether the value is a known StatusType.
func (s StatusType) IsValid() bool {
	for _, candidate := range validStatusTypes {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseStatusType converts raw input into a StatusType.
func ParseStatusType(value string) (StatusType, error) {
	for _, candidate := range validStatusTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid status type %q", value)
}
