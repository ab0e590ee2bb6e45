package types

import (
	"time"
)

// Publication is the public campaign created when a request is approved.
// Exactly one publication exists per approved request.
type Publication struct {
	ID              int        `json:"id"`
	RequestCode     string     `json:"requestCode"`
	Title           string     `json:"title"`
	ResourceType    string     `json:"resourceType,omitempty"`
	BeneficiaryName string     `json:"beneficiaryName"`
	Urgency         Urgency    `json:"urgency"`
	PublishedAt     time.Time  `json:"publishedAt"`
	Description     string     `json:"description,omitempty"`
	Evidence        []string   `json:"evidence"`
	ImageURL        *string    `json:"imageUrl,omitempty"`
	TotalDonated    float64    `json:"totalDonated"`
	Donations       []Donation `json:"donations"`
}
