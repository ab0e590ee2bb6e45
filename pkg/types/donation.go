package types

import (
	"time"
)

type DonationKind string

const (
	DonationKindMoney DonationKind = "MONEY"
	DonationKindGoods DonationKind = "GOODS"
)

// Donation is a monetary or in-kind contribution. Amount and Currency are
// meaningful for MONEY donations, GoodsDescription for GOODS. Donations are
// immutable once recorded.
type Donation struct {
	ID               int          `json:"id"`
	Kind             DonationKind `json:"kind"`
	Amount           float64      `json:"amount,omitempty"`
	Currency         string       `json:"currency,omitempty"`
	GoodsDescription string       `json:"goodsDescription,omitempty"`
	DonorName        string       `json:"donorName"`
	DonorContact     string       `json:"donorContact,omitempty"`
	ReceiptRef       string       `json:"receiptRef,omitempty"`
	PublicationID    int          `json:"publicationId,omitempty"`
	CreatedAt        time.Time    `json:"createdAt"`
}
