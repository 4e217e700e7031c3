package submission

import (
	"context"
	"regexp"
	"strings"

	"github.com/benjaminbelloeil/portfolio-api/internal/notify"
	"github.com/benjaminbelloeil/portfolio-api/pkg/config"
	"github.com/benjaminbelloeil/portfolio-api/pkg/enums"
	pkgerrors "github.com/benjaminbelloeil/portfolio-api/pkg/errors"
	"github.com/benjaminbelloeil/portfolio-api/pkg/resend"
)

// Mailer is the outbound email dependency.
type Mailer interface {
	Send(ctx context.Context, msg resend.Message) (string, error)
}

// Service validates submissions, formats the notification, and dispatches
// it through the email provider.
type Service interface {
	SendContact(ctx context.Context, req ContactRequest) (string, error)
	SendOrder(ctx context.Context, req OrderRequest) (string, error)
}

// ServiceParams groups dependencies for the submission service. Mailer may
// be nil when the provider is unconfigured: requests then fail with a
// service-configuration error instead of preventing boot.
type ServiceParams struct {
	Mailer Mailer
	Resend config.ResendConfig
}

type service struct {
	mailer Mailer
	cfg    config.ResendConfig
}

func NewService(params ServiceParams) Service {
	return &service{mailer: params.Mailer, cfg: params.Resend}
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// SendContact handles a contact-form submission and returns the provider
// message id.
func (s *service) SendContact(ctx context.Context, req ContactRequest) (string, error) {
	if anyBlank(req.Name, req.Email, req.Message) {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "Missing required fields")
	}
	if !emailPattern.MatchString(req.Email) {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "Invalid email address")
	}

	formType := enums.FormTypeContact
	if strings.TrimSpace(req.FormType) != "" {
		parsed, err := enums.ParseFormType(req.FormType)
		if err != nil {
			return "", pkgerrors.Wrap(pkgerrors.CodeValidation, err, "Invalid form type")
		}
		formType = parsed
	}

	if err := s.ensureConfigured(); err != nil {
		return "", err
	}

	subject := notify.ContactSubject
	if formType == enums.FormTypeOrder {
		subject = "New Order Received"
	}

	id, err := s.mailer.Send(ctx, resend.Message{
		From:    s.cfg.FromEmail,
		To:      []string{s.cfg.ToEmail},
		ReplyTo: req.Email,
		Subject: subject,
		Text:    req.Message,
		HTML: notify.RenderHTML(notify.EmailData{
			FirstName: req.Name,
			Email:     req.Email,
			Service:   req.Service,
			Message:   req.Message,
			FormType:  formType,
		}),
	})
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeDelivery, err, "Failed to send email")
	}
	return id, nil
}

// SendOrder handles an order submission and returns the provider message
// id. A single malformed cart line rejects the whole request: a partial
// order email would not match what the buyer reviewed.
func (s *service) SendOrder(ctx context.Context, req OrderRequest) (string, error) {
	if anyBlank(req.FirstName, req.LastName, req.Email, req.Total) || len(req.Cart) == 0 {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "Missing required fields")
	}
	if !emailPattern.MatchString(req.Email) {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "Invalid email address")
	}
	if strings.TrimSpace(req.DeliveryEmail) != "" && !emailPattern.MatchString(req.DeliveryEmail) {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "Invalid delivery email address")
	}
	if strings.TrimSpace(req.Platform) != "" {
		if _, err := enums.ParseDeliveryPlatform(req.Platform); err != nil {
			return "", pkgerrors.Wrap(pkgerrors.CodeValidation, err, "Invalid delivery platform")
		}
	}
	for i, item := range req.Cart {
		if item.ID <= 0 || anyBlank(item.Title, item.Price) || item.Quantity <= 0 {
			return "", pkgerrors.New(pkgerrors.CodeValidation, "Invalid cart item").
				WithDetails(map[string]any{"index": i})
		}
	}

	if err := s.ensureConfigured(); err != nil {
		return "", err
	}

	body := notify.OrderBody(notify.OrderInfo{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		DeliveryEmail: req.DeliveryEmail,
		Platform:      req.Platform,
		PhoneNumber:   req.PhoneNumber,
		Notes:         req.Notes,
		Items:         req.Cart,
		Total:         req.Total,
	})

	id, err := s.mailer.Send(ctx, resend.Message{
		From:    s.cfg.FromEmail,
		To:      []string{s.cfg.ToEmail},
		ReplyTo: req.Email,
		Subject: notify.OrderSubject(req.FirstName, req.LastName),
		Text:    body,
		HTML: notify.RenderHTML(notify.EmailData{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
			Service:   req.Platform,
			Message:   body,
			FormType:  enums.FormTypeOrder,
		}),
	})
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeDelivery, err, "Failed to send order email")
	}
	return id, nil
}

func (s *service) ensureConfigured() error {
	if s.mailer == nil || !s.cfg.Configured() {
		return pkgerrors.New(pkgerrors.CodeServiceConfig, "Email service not configured")
	}
	return nil
}

func anyBlank(values ...string) bool {
	for _, value := range values {
		if strings.TrimSpace(value) == "" {
			return true
		}
	}
	return false
}
