package checkout

// Step is a checkout form stage. Transitions only move one step at a
// time, forward after validation or backward unconditionally.
type Step int

const (
	StepContactInfo Step = iota + 1
	StepDeliveryPreferences
	StepReviewAndSubmit
)

// String implements fmt.Stringer.
func (s Step) String() string {
	switch s {
	case StepContactInfo:
		return "contact_info"
	case StepDeliveryPreferences:
		return "delivery_preferences"
	case StepReviewAndSubmit:
		return "review_and_submit"
	}
	return "unknown"
}
