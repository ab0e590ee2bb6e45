package types

import (
	"time"
)

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "PENDING"
	RequestStatusApproved RequestStatus = "APPROVED"
	RequestStatusRejected RequestStatus = "REJECTED"
)

type Urgency string

const (
	UrgencyLow    Urgency = "LOW"
	UrgencyMedium Urgency = "MEDIUM"
	UrgencyHigh   Urgency = "HIGH"
)

// Canonical categories recognized by the scoring engine. Requests may carry
// any category string; these are the ones that influence the score.
const (
	CategoryHealth         = "HEALTH"
	CategoryInfrastructure = "INFRASTRUCTURE"
	CategoryEducation      = "EDUCATION"
)

// AidRequest is a submitted need for aid, reviewed by staff. Status moves
// PENDING -> APPROVED or PENDING -> REJECTED, both terminal.
type AidRequest struct {
	ID                 int           `json:"id"`
	Code               string        `json:"code"`
	Title              string        `json:"title"`
	Description        string        `json:"description,omitempty"`
	ResourceType       string        `json:"resourceType,omitempty"`
	Category           string        `json:"category,omitempty"`
	Urgency            Urgency       `json:"urgency"`
	BeneficiaryName    string        `json:"beneficiaryName"`
	BeneficiaryType    string        `json:"beneficiaryType,omitempty"`
	BeneficiaryContact string        `json:"beneficiaryContact,omitempty"`
	RequestedAmount    float64       `json:"requestedAmount"`
	Status             RequestStatus `json:"status"`
	RejectionReason    *string       `json:"rejectionReason,omitempty"`
	Evidence           []string      `json:"evidence"`
	CreatedAt          time.Time     `json:"createdAt"`
}

type Priority string

const (
	PriorityCritical Priority = "CRITICAL"
	PriorityHigh     Priority = "HIGH"
	PriorityMedium   Priority = "MEDIUM"
	PriorityLow      Priority = "LOW"
)

// ScoredRequest is an AidRequest annotated by the scoring engine. It is
// computed on demand for display and never persisted.
type ScoredRequest struct {
	AidRequest
	Score       float64  `json:"score"`
	Priority    Priority `json:"priority"`
	Explanation string   `json:"explanation"`
}
