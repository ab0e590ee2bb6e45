package store

import (
	"context"
	"fmt"
	"time"

	"solidaria/pkg/types"

	"github.com/sirupsen/logrus"
)

const donationIntakeLocation = "Almacén central - Entrada de donaciones"

// RecordDonation appends an immutable donation. When the donation names an
// existing publication, that publication's running total grows by the
// monetary amount (zero for goods) and the donation joins its list. An
// inventory item is created for every donation, money included: monetary
// gifts enter the ledger as transfer records.
func (s *Store) RecordDonation(ctx context.Context, in types.RecordDonationInput) (*types.Donation, error) {
	if err := s.validateInput(in); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.loadState(ctx)
	if err != nil {
		return nil, err
	}

	id := nextID(state.Donations, func(d types.Donation) int { return d.ID })
	now := time.Now().UTC()

	donation := types.Donation{
		ID:            id,
		Kind:          in.Kind,
		DonorName:     in.DonorName,
		DonorContact:  in.DonorContact,
		ReceiptRef:    in.ReceiptRef,
		PublicationID: in.PublicationID,
		CreatedAt:     now,
	}
	if donation.DonorName == "" {
		donation.DonorName = "Anónimo"
	}

	switch in.Kind {
	case types.DonationKindMoney:
		donation.Amount = in.Amount
		donation.Currency = in.Currency
		if donation.Currency == "" {
			donation.Currency = "BOB"
		}
	case types.DonationKindGoods:
		donation.GoodsDescription = in.GoodsDescription
	}

	state.Donations = append(state.Donations, donation)

	if pub := findPublication(state, in.PublicationID); pub != nil {
		pub.TotalDonated += donation.Amount
		pub.Donations = append(pub.Donations, donation)
	}

	item := inventoryItemFor(state, donation, now)
	state.Inventory = append(state.Inventory, item)

	if err := s.saveState(ctx, state); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"donation_id":    donation.ID,
		"kind":           donation.Kind,
		"publication_id": donation.PublicationID,
		"inventory_code": item.Code,
	}).Info("donation recorded")

	return &donation, nil
}

func inventoryItemFor(state *types.State, donation types.Donation, now time.Time) types.InventoryItem {
	id := nextID(state.Inventory, func(i types.InventoryItem) int { return i.ID })

	item := types.InventoryItem{
		ID:         id,
		Code:       fmt.Sprintf("INV-%04d", id),
		Location:   donationIntakeLocation,
		Status:     types.InventoryStatusInWarehouse,
		ReceivedAt: now,
		UpdatedAt:  now,
		DonationID: donation.ID,
	}

	if donation.Kind == types.DonationKindMoney {
		item.Description = fmt.Sprintf("Donación monetaria - Bs %g (%s)", donation.Amount, donation.Currency)
		item.Unit = "transferencia"
		item.Quantity = donation.Amount
	} else {
		item.Description = donation.GoodsDescription
		if item.Description == "" {
			item.Description = "Donación en especie"
		}
		item.Unit = "donación"
		item.Quantity = 1
	}

	if donation.ReceiptRef != "" {
		item.Description = fmt.Sprintf("%s | comprobante: %s", item.Description, donation.ReceiptRef)
	}

	return item
}
