package enums

import "fmt"

// ContactMethod is the buyer's preferred follow-up channel.
type ContactMethod string

const (
	ContactMethodEmail    ContactMethod = "email"
	ContactMethodWhatsApp ContactMethod = "whatsapp"
)

var validContactMethods = []ContactMethod{
	ContactMethodEmail,
	ContactMethodWhatsApp,
}

// String implements fmt.Stringer.
func (c ContactMethod) String() string {
	return string(c)
}

// IsValid reports whether the value is a known ContactMethod.
func (c ContactMethod) IsValid() bool {
	for _, candidate := range validContactMethods {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseContactMethod converts raw input into a ContactMethod.
func ParseContactMethod(value string) (ContactMethod, error) {
	for _, candidate := range validContactMethods {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid contact method %q", value)
}
