package types

import (
	"time"
)

const InventoryStatusInWarehouse = "IN_WAREHOUSE"

// InventoryItem is the warehouse ledger record created for every donation,
// monetary or in kind, plus items ingested manually by staff.
type InventoryItem struct {
	ID          int       `json:"id"`
	Code        string    `json:"code"`
	Description string    `json:"description"`
	Quantity    float64   `json:"quantity"`
	Unit        string    `json:"unit"`
	Location    string    `json:"location"`
	Status      string    `json:"status"`
	ReceivedAt  time.Time `json:"receivedAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	DonationID  int       `json:"donationId,omitempty"`
}
