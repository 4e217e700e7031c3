package notify

import (
	"fmt"
	"strings"

	"github.com/benjaminbelloeil/portfolio-api/internal/cart"
)

// Placeholder text for optional fields left blank.
const (
	fallbackNotProvided  = "Not provided"
	fallbackNone         = "None"
	fallbackNotSpecified = "Not specified"
)

// OrderInfo is the structured input for an order notification body.
type OrderInfo struct {
	FirstName     string
	LastName      string
	Email         string
	DeliveryEmail string
	Platform      string
	PhoneNumber   string
	Notes         string
	Items         []cart.Item
	Total         string
}

// OrderBody renders the plain-text order notification. It is a pure
// transformation: any well-formed input produces a string.
func OrderBody(o OrderInfo) string {
	var b strings.Builder

	b.WriteString("Order Details:\n")
	for _, item := range o.Items {
		fmt.Fprintf(&b, "%s - Quantity: %d - Price: %s\n", item.Title, item.Quantity, item.Price)
	}

	fmt.Fprintf(&b, "\nTotal: $%s\n", o.Total)

	b.WriteString("\nDelivery Information:\n")
	fmt.Fprintf(&b, "Platform: %s\n", orDefault(o.Platform, fallbackNotSpecified))
	fmt.Fprintf(&b, "Delivery Email: %s\n", orDefault(o.DeliveryEmail, o.Email))
	fmt.Fprintf(&b, "Phone: %s\n", orDefault(o.PhoneNumber, fallbackNotProvided))

	b.WriteString("\nAdditional Notes:\n")
	b.WriteString(orDefault(strings.TrimSpace(o.Notes), fallbackNone))

	return b.String()
}

// OrderSubject builds the notification subject for an order.
func OrderSubject(firstName, lastName string) string {
	return fmt.Sprintf("New Order from %s %s", firstName, lastName)
}

// ContactSubject is the fixed subject for contact submissions.
const ContactSubject = "New Contact Form Submission"

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
