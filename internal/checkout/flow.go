package checkout

import (
	"context"
	"errors"
	"strings"

	"github.com/benjaminbelloeil/portfolio-api/internal/cart"
	"github.com/benjaminbelloeil/portfolio-api/pkg/enums"
)

// ErrEmptyCart is the terminal failure for a submission attempted with no
// cart items. The cart can drain from another tab while checkout is open,
// so emptiness is re-checked at submission time, never earlier.
var ErrEmptyCart = errors.New("checkout: cart is empty")

// FormData collects the buyer's checkout answers across all steps.
type FormData struct {
	Email            string
	FirstName        string
	LastName         string
	Platform         string
	DeliveryEmail    string
	PreferredContact string
	PhoneNumber      string
	Notes            string
}

func defaultFormData() FormData {
	return FormData{
		Platform:         enums.DeliveryPlatformEmail.String(),
		PreferredContact: enums.ContactMethodEmail.String(),
	}
}

// OrderPayload is the composed submission sent to the order endpoint: the
// form answers plus the cart snapshot and its total at submission time.
type OrderPayload struct {
	FirstName     string      `json:"firstName"`
	LastName      string      `json:"lastName"`
	Email         string      `json:"email"`
	DeliveryEmail string      `json:"deliveryEmail,omitempty"`
	Platform      string      `json:"platform,omitempty"`
	PhoneNumber   string      `json:"phoneNumber,omitempty"`
	Notes         string      `json:"notes,omitempty"`
	Cart          []cart.Item `json:"cart"`
	Total         string      `json:"total"`
}

// Submitter delivers the composed order. Implemented by Client over HTTP.
type Submitter interface {
	SubmitOrder(ctx context.Context, payload OrderPayload) error
}

// Flow is the checkout state machine: contact info, delivery preferences,
// review, then a single submission. It owns its form data and reads the
// cart store fresh at submission.
type Flow struct {
	cart      *cart.Store
	submitter Submitter
	step      Step
	form      FormData
	completed bool
}

func NewFlow(cartStore *cart.Store, submitter Submitter) (*Flow, error) {
	if cartStore == nil {
		return nil, errors.New("checkout: cart store is required")
	}
	if submitter == nil {
		return nil, errors.New("checkout: submitter is required")
	}
	return &Flow{
		cart:      cartStore,
		submitter: submitter,
		step:      StepContactInfo,
		form:      defaultFormData(),
	}, nil
}

// Step returns the current stage.
func (f *Flow) Step() Step {
	return f.step
}

// Form returns the current form values.
func (f *Flow) Form() FormData {
	return f.form
}

// SetForm replaces the form values, as field edits do in the UI.
func (f *Flow) SetForm(form FormData) {
	f.form = form
}

// Completed reports whether a submission succeeded.
func (f *Flow) Completed() bool {
	return f.completed
}

// Next advances one step after validating the current step's required
// fields. The review step has no forward transition; Submit ends it.
func (f *Flow) Next() error {
	if err := f.validateStep(f.step); err != nil {
		return err
	}
	switch f.step {
	case StepContactInfo:
		f.step = StepDeliveryPreferences
	case StepDeliveryPreferences:
		f.step = StepReviewAndSubmit
	default:
		return errors.New("checkout: already at review step, submit instead")
	}
	return nil
}

// Back moves one step toward contact info and stops there.
func (f *Flow) Back() {
	if f.step > StepContactInfo {
		f.step--
	}
}

// Submit composes and delivers the order from the review step. The cart
// snapshot is taken immediately before the network call; an empty cart is
// the ErrEmptyCart terminal state. On success the cart is cleared and the
// form resets. On delivery failure the form stays populated so the buyer
// can resubmit; there is no automatic retry.
func (f *Flow) Submit(ctx context.Context) error {
	if f.step != StepReviewAndSubmit {
		return errors.New("checkout: submit is only valid at the review step")
	}

	items := f.cart.Items()
	if len(items) == 0 {
		return ErrEmptyCart
	}

	payload := OrderPayload{
		FirstName:     f.form.FirstName,
		LastName:      f.form.LastName,
		Email:         f.form.Email,
		DeliveryEmail: f.form.DeliveryEmail,
		Platform:      f.form.Platform,
		PhoneNumber:   f.form.PhoneNumber,
		Notes:         f.form.Notes,
		Cart:          items,
		Total:         f.cart.Total().StringFixed(2),
	}

	if err := f.submitter.SubmitOrder(ctx, payload); err != nil {
		return err
	}

	f.cart.Clear()
	f.form = defaultFormData()
	f.step = StepContactInfo
	f.completed = true
	return nil
}

func (f *Flow) validateStep(step Step) error {
	switch step {
	case StepContactInfo:
		if anyBlank(f.form.FirstName, f.form.LastName, f.form.Email) {
			return errors.New("checkout: first name, last name, and email are required")
		}
	case StepDeliveryPreferences:
		if anyBlank(f.form.Platform) {
			return errors.New("checkout: delivery platform is required")
		}
		if !enums.DeliveryPlatform(f.form.Platform).IsValid() {
			return errors.New("checkout: unknown delivery platform")
		}
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
