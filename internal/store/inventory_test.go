package store

import (
	"context"
	"testing"

	"solidaria/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterInventoryItemManually(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	item, err := s.RegisterInventoryItem(ctx, types.RegisterInventoryInput{
		Description: "Cajas de útiles escolares",
		Quantity:    12,
		Unit:        "caja",
		Location:    "Depósito B",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, item.ID)
	assert.Equal(t, "I-0001", item.Code)
	assert.Equal(t, types.InventoryStatusInWarehouse, item.Status)
	assert.Equal(t, item.ReceivedAt, item.UpdatedAt)
}

func TestRegisterInventoryItemValidation(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.RegisterInventoryItem(context.Background(), types.RegisterInventoryInput{
		Quantity: 3,
	})

	var verr *types.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestListInventoryFiltersByStatus(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	first, err := s.RegisterInventoryItem(ctx, types.RegisterInventoryInput{
		Description: "Colchones",
		Quantity:    4,
	})
	require.NoError(t, err)

	_, err = s.RegisterInventoryItem(ctx, types.RegisterInventoryInput{
		Description: "Frazadas",
		Quantity:    10,
	})
	require.NoError(t, err)

	_, err = s.UpdateInventoryStatus(ctx, first.ID, "DELIVERED")
	require.NoError(t, err)

	inWarehouse, err := s.ListInventory(ctx, types.InventoryStatusInWarehouse)
	require.NoError(t, err)
	require.Len(t, inWarehouse, 1)
	assert.Equal(t, "Frazadas", inWarehouse[0].Description)

	all, err := s.ListInventory(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestUpdateInventoryStatus(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	item, err := s.RegisterInventoryItem(ctx, types.RegisterInventoryInput{
		Description: "Sillas de ruedas",
		Quantity:    2,
	})
	require.NoError(t, err)

	updated, err := s.UpdateInventoryStatus(ctx, item.ID, "IN_TRANSIT")
	require.NoError(t, err)
	assert.Equal(t, "IN_TRANSIT", updated.Status)
	assert.True(t, !updated.UpdatedAt.Before(item.UpdatedAt))

	_, err = s.UpdateInventoryStatus(ctx, 99, "LOST")
	assert.ErrorIs(t, err, types.ErrInventoryItemNotFound)

	_, err = s.UpdateInventoryStatus(ctx, item.ID, "")
	var verr *types.ValidationError
	require.ErrorAs(t, err, &verr)
}
