package models

// AdminStats is the moderation dashboard's summary record.
type AdminStats struct {
	TotalUsers            int            `json:"total_users"`
	TotalContents         int            `json:"total_contents"`
	PendingExpertRequests int            `json:"pending_expert_requests"`
	PendingLabelRequests  int            `json:"pending_label_requests"`
	UsersByRole           map[string]int `json:"users_by_role"`
	RecentRegistrations   int            `json:"recent_registrations"`
}

// PendingRequest is one verification request awaiting an admin decision.
type PendingRequest struct {
	ID                      string `json:"id"`
	Email                   string `json:"email"`
	Username                string `json:"username"`
	VerificationDocuments   string `json:"verification_documents,omitempty"`
	VerificationDescription string `json:"verification_description,omitempty"`
	CreatedAt               string `json:"created_at"`
	SubmittedAt             string `json:"submitted_at,omitempty"`
}

// PendingVerifications groups pending requests by the role being verified.
type PendingVerifications struct {
	ExpertRequests []PendingRequest `json:"expert_requests"`
	LabelRequests  []PendingRequest `json:"label_requests"`
}

// Decision is an admin's verdict on a verification request.
type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)
