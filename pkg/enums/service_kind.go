package enums

// ServiceKind names the contact-form service options. The contact form
// posts the human-readable title, so values here are display strings
// rather than slugs. The endpoint does not reject unknown values: the
// list exists for clients and may lag a redeployed frontend.
type ServiceKind string

const (
	ServiceKindGeneralInquiry    ServiceKind = "General Inquiry"
	ServiceKindProjectDiscussion ServiceKind = "Project Discussion"
	ServiceKindPlatformIssues    ServiceKind = "Platform Issues"
)

var validServiceKinds = []ServiceKind{
	ServiceKindGeneralInquiry,
	ServiceKindProjectDiscussion,
	ServiceKindPlatformIssues,
}

// String implements fmt.Stringer.
func (s ServiceKind) String() string {
	return string(s)
}

// IsValid reports whether the value is a known ServiceKind.
func (s ServiceKind) IsValid() bool {
	for _, candidate := range validServiceKinds {
		if candidate == s {
			return true
		}
	}
	return false
}

// ServiceKinds returns the full option list in display order.
func ServiceKinds() []ServiceKind {
	out := make([]ServiceKind, len(validServiceKinds))
	copy(out, validServiceKinds)
	return out
}
