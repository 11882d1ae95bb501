package types

// Email draft types.
const (
	EmailInterviewInvitation = "interview_invitation"
	EmailRejection           = "rejection"
	EmailFollowUp            = "follow_up"
	EmailAcknowledgment      = "acknowledgment"
)

// EmailDraft is a drafted candidate email. RecipientEmail is the address
// harvested during CV parsing when available, otherwise a synthesized
// placeholder; it is never a verified deliverable address.
type EmailDraft struct {
	RecipientName  string `json:"recipient_name"`
	RecipientEmail string `json:"recipient_email"`
	EmailType      string `json:"email_type"`

	Subject string `json:"subject"`
	Body    string `json:"body"`

	JobTitle      string `json:"job_title"`
	CompanyName   string `json:"company_name"`
	InterviewDate string `json:"interview_date,omitempty"`
	InterviewTime string `json:"interview_time,omitempty"`
}
