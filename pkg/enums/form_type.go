package enums

import "fmt"

// FormType distinguishes the two submission surfaces.
type FormType string

const (
	FormTypeContact FormType = "contact"
	FormTypeOrder   FormType = "order"
)

var validFormTypes = []FormType{
	FormTypeContact,
	FormTypeOrder,
}

// String implements fmt.Stringer.
func (f FormType) String() string {
	return string(f)
}

// IsValid reports whether the value is a known FormType.
func (f FormType) IsValid() bool {
	for _, candidate := range validFormTypes {
		if candidate == f {
			return true
		}
	}
	return false
}

// ParseFormType converts raw input into a FormType.
func ParseFormType(value string) (FormType, error) {
	for _, candidate := range validFormTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid form type %q", value)
}
