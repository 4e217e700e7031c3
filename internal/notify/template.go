package notify

import (
	"html/template"
	"strings"

	"github.com/benjaminbelloeil/portfolio-api/pkg/enums"
)

// EmailData feeds the HTML notification template. Message carries either
// the raw contact message or the formatted order body.
type EmailData struct {
	FirstName string
	LastName  string
	Email     string
	Service   string
	Message   string
	FormType  enums.FormType
}

func (d EmailData) Heading() string {
	if d.FormType == enums.FormTypeOrder {
		return "New Order Received"
	}
	return "New Contact Form Submission"
}

func (d EmailData) DetailsLabel() string {
	if d.FormType == enums.FormTypeOrder {
		return "Order Details:"
	}
	return "Message:"
}

var emailTemplate = template.Must(template.New("notification").Parse(`<div style="font-family: Arial, sans-serif; line-height: 1.6; color: #333">
  <h2 style="color: #2563eb; border-bottom: 2px solid #e5e7eb; padding-bottom: 10px">{{.Heading}}</h2>
  <div style="background-color: #f9fafb; padding: 20px; border-radius: 8px; margin: 20px 0">
    <h3 style="margin: 0 0 15px 0; color: #374151">Contact Information:</h3>
    <p><strong>Name:</strong> {{.FirstName}} {{.LastName}}</p>
    <p><strong>Email:</strong> {{.Email}}</p>
    {{- if .Service}}
    <p><strong>Service/Platform:</strong> {{.Service}}</p>
    {{- end}}
  </div>
  <div style="background-color: #f3f4f6; padding: 20px; border-radius: 8px; margin: 20px 0">
    <h3 style="margin: 0 0 15px 0; color: #374151">{{.DetailsLabel}}</h3>
    <div style="white-space: pre-wrap; background-color: white; padding: 15px; border-radius: 4px; border: 1px solid #d1d5db">{{.Message}}</div>
  </div>
  <div style="font-size: 12px; color: #6b7280; border-top: 1px solid #e5e7eb; padding-top: 15px; margin-top: 30px">
    <p>This email was sent from your portfolio website contact form.</p>
    <p>Reply directly to this email to respond to {{.FirstName}}.</p>
  </div>
</div>`))

// RenderHTML produces the HTML notification body. It never errors: if
// template execution fails it falls back to the pre-wrapped message text.
func RenderHTML(d EmailData) string {
	var b strings.Builder
	if err := emailTemplate.Execute(&b, d); err != nil {
		return "<pre>" + template.HTMLEscapeString(d.Message) + "</pre>"
	}
	return b.String()
}
