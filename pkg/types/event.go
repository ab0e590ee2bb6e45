package types

type EventStatus string

const (
	EventStatusPlanned    EventStatus = "PLANNED"
	EventStatusInProgress EventStatus = "IN_PROGRESS"
	EventStatusFinished   EventStatus = "FINISHED"
)

// SolidarityEvent is an outreach or fundraising activity, optionally linked
// to a publication.
type SolidarityEvent struct {
	ID               int         `json:"id"`
	Name             string      `json:"name"`
	PublicationID    int         `json:"publicationId,omitempty"`
	PublicationTitle string      `json:"publicationTitle,omitempty"`
	Type             string      `json:"type"`
	Date             string      `json:"date"`
	Venue            string      `json:"venue,omitempty"`
	FundraisingGoal  float64     `json:"fundraisingGoal,omitempty"`
	OutreachChannel  string      `json:"outreachChannel,omitempty"`
	Status           EventStatus `json:"status"`
	Description      string      `json:"description,omitempty"`
}
