package notify

import (
	"strings"
	"testing"

	"github.com/benjaminbelloeil/portfolio-api/internal/cart"
	"github.com/benjaminbelloeil/portfolio-api/pkg/enums"
	"github.com/stretchr/testify/assert"
)

func orderFixture() OrderInfo {
	return OrderInfo{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Platform:  "email",
		Total:     "100.00",
		Items: []cart.Item{
			{ID: 1, Title: "HTML Starter Website", Price: "$50", Quantity: 2},
		},
	}
}

func TestOrderBody_SummaryLinesAndTotal(t *testing.T) {
	body := OrderBody(orderFixture())

	assert.Contains(t, body, "Order Details:")
	assert.Contains(t, body, "HTML Starter Website - Quantity: 2 - Price: $50")
	assert.Contains(t, body, "Total: $100.00")
	assert.Contains(t, body, "Platform: email")
}

func TestOrderBody_OptionalFieldFallbacks(t *testing.T) {
	info := orderFixture()
	info.DeliveryEmail = ""
	info.PhoneNumber = ""
	info.Notes = "   "
	info.Platform = ""

	body := OrderBody(info)

	// Delivery email falls back to the buyer's contact email.
	assert.Contains(t, body, "Delivery Email: jane@example.com")
	assert.Contains(t, body, "Phone: Not provided")
	assert.Contains(t, body, "Additional Notes:\nNone")
	assert.Contains(t, body, "Platform: Not specified")
}

func TestOrderBody_ExplicitOptionalFields(t *testing.T) {
	info := orderFixture()
	info.DeliveryEmail = "delivery@example.com"
	info.PhoneNumber = "+52 55 1234 5678"
	info.Notes = "Please deliver before Friday"

	body := OrderBody(info)

	assert.Contains(t, body, "Delivery Email: delivery@example.com")
	assert.Contains(t, body, "Phone: +52 55 1234 5678")
	assert.Contains(t, body, "Please deliver before Friday")
}

func TestOrderSubject(t *testing.T) {
	assert.Equal(t, "New Order from Jane Doe", OrderSubject("Jane", "Doe"))
}

func TestRenderHTML_ContactLayout(t *testing.T) {
	html := RenderHTML(EmailData{
		FirstName: "Sam",
		Email:     "sam@example.com",
		Service:   "General Inquiry",
		Message:   "Hi there",
		FormType:  enums.FormTypeContact,
	})

	assert.Contains(t, html, "New Contact Form Submission")
	assert.Contains(t, html, "Message:")
	assert.Contains(t, html, "Service/Platform:")
	assert.Contains(t, html, "Reply directly to this email to respond to Sam.")
}

func TestRenderHTML_OrderLayoutAndEscaping(t *testing.T) {
	html := RenderHTML(EmailData{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Message:   "<script>alert(1)</script>",
		FormType:  enums.FormTypeOrder,
	})

	assert.Contains(t, html, "New Order Received")
	assert.Contains(t, html, "Order Details:")
	assert.False(t, strings.Contains(html, "<script>"), "message must be escaped")
}

func TestRenderHTML_OmitsEmptyService(t *testing.T) {
	html := RenderHTML(EmailData{FirstName: "Sam", Email: "sam@example.com", Message: "hi", FormType: enums.FormTypeContact})
	assert.NotContains(t, html, "Service/Platform:")
}
