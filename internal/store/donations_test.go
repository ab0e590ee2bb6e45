package store

import (
	"context"
	"testing"

	"solidaria/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoneyDonationUpdatesPublicationAndInventory(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	donation, err := s.RecordDonation(ctx, types.RecordDonationInput{
		PublicationID: 1,
		Kind:          types.DonationKindMoney,
		Amount:        150,
		DonorName:     "María Pérez",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, donation.ID)
	assert.Equal(t, "BOB", donation.Currency)
	assert.Empty(t, donation.GoodsDescription)

	pub, err := s.GetPublication(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 150.0, pub.TotalDonated)
	require.Len(t, pub.Donations, 1)
	assert.Equal(t, donation.ID, pub.Donations[0].ID)

	items, err := s.ListInventory(ctx, "")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "INV-0001", items[0].Code)
	assert.Equal(t, 150.0, items[0].Quantity)
	assert.Equal(t, "transferencia", items[0].Unit)
	assert.Equal(t, types.InventoryStatusInWarehouse, items[0].Status)
	assert.Equal(t, donation.ID, items[0].DonationID)
}

func TestGoodsDonationEndToEnd(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	req, err := s.SubmitRequest(ctx, submitInput("Abrigos para el invierno"))
	require.NoError(t, err)

	_, err = s.ChangeRequestStatus(ctx, req.ID, types.ReviewRequestInput{
		Status:  types.RequestStatusApproved,
		Comment: "cumple requisitos",
	})
	require.NoError(t, err)

	pubs, err := s.ListPublications(ctx)
	require.NoError(t, err)
	pub := pubs[len(pubs)-1]
	require.Equal(t, req.Code, pub.RequestCode)

	_, err = s.RecordDonation(ctx, types.RecordDonationInput{
		PublicationID:    pub.ID,
		Kind:             types.DonationKindGoods,
		GoodsDescription: "ropa de invierno",
		DonorName:        "Juan",
	})
	require.NoError(t, err)

	updated, err := s.GetPublication(ctx, pub.ID)
	require.NoError(t, err)
	assert.Len(t, updated.Donations, 1)
	assert.Zero(t, updated.TotalDonated)

	items, err := s.ListInventory(ctx, "")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 1.0, items[0].Quantity)
	assert.Equal(t, "donación", items[0].Unit)
	assert.Equal(t, "ropa de invierno", items[0].Description)
}

func TestAnyDonationCreatesInventory(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	// No publication referenced at all.
	_, err := s.RecordDonation(ctx, types.RecordDonationInput{
		Kind:   types.DonationKindMoney,
		Amount: 40,
	})
	require.NoError(t, err)

	// Unknown publication id: donation and inventory are still recorded.
	_, err = s.RecordDonation(ctx, types.RecordDonationInput{
		PublicationID:    77,
		Kind:             types.DonationKindGoods,
		GoodsDescription: "alimentos no perecederos",
	})
	require.NoError(t, err)

	items, err := s.ListInventory(ctx, "")
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestDonationDefaults(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	donation, err := s.RecordDonation(ctx, types.RecordDonationInput{
		Kind: types.DonationKindGoods,
	})
	require.NoError(t, err)

	assert.Equal(t, "Anónimo", donation.DonorName)

	items, err := s.ListInventory(ctx, "")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Donación en especie", items[0].Description)
}

func TestReceiptRefTracedInInventory(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	_, err := s.RecordDonation(ctx, types.RecordDonationInput{
		Kind:       types.DonationKindMoney,
		Amount:     90,
		Currency:   "USD",
		ReceiptRef: "https://receipts.example/abc",
	})
	require.NoError(t, err)

	items, err := s.ListInventory(ctx, "")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Contains(t, items[0].Description, "Bs 90 (USD)")
	assert.Contains(t, items[0].Description, "comprobante: https://receipts.example/abc")
}

func TestRecordDonationValidatesKind(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.RecordDonation(context.Background(), types.RecordDonationInput{
		Amount: 10,
	})

	var verr *types.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestDonationsForPublication(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	_, err := s.RecordDonation(ctx, types.RecordDonationInput{
		PublicationID: 1,
		Kind:          types.DonationKindMoney,
		Amount:        25,
	})
	require.NoError(t, err)

	_, err = s.RecordDonation(ctx, types.RecordDonationInput{
		Kind:   types.DonationKindMoney,
		Amount: 10,
	})
	require.NoError(t, err)

	donations, err := s.DonationsForPublication(ctx, 1)
	require.NoError(t, err)
	require.Len(t, donations, 1)
	assert.Equal(t, 25.0, donations[0].Amount)
}
