package enums

import "fmt"

// DeliveryPlatform is where purchased digital goods get delivered. The
// checkout form and the order endpoint share this list, so new platforms
// only need to be added here.
type DeliveryPlatform string

const (
	DeliveryPlatformEmail   DeliveryPlatform = "email"
	DeliveryPlatformDrive   DeliveryPlatform = "drive"
	DeliveryPlatformDropbox DeliveryPlatform = "dropbox"
)

var validDeliveryPlatforms = []DeliveryPlatform{
	DeliveryPlatformEmail,
	DeliveryPlatformDrive,
	DeliveryPlatformDropbox,
}

// String implements fmt.Stringer.
func (p DeliveryPlatform) String() string {
	return string(p)
}

// IsValid reports whether the value is a known DeliveryPlatform.
func (p DeliveryPlatform) IsValid() bool {
	for _, candidate := range validDeliveryPlatforms {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParseDeliveryPlatform converts raw input into a DeliveryPlatform.
func ParseDeliveryPlatform(value string) (DeliveryPlatform, error) {
	for _, candidate := range validDeliveryPlatforms {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid delivery platform %q", value)
}
