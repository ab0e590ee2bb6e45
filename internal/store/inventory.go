package store

import (
	"context"
	"fmt"
	"time"

	"solidaria/pkg/types"

	"github.com/sirupsen/logrus"
)

// RegisterInventoryItem is the manual ingestion path, independent of
// donation recording.
func (s *Store) RegisterInventoryItem(ctx context.Context, in types.RegisterInventoryInput) (*types.InventoryItem, error) {
	if err := s.validateInput(in); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.loadState(ctx)
	if err != nil {
		return nil, err
	}

	id := nextID(state.Inventory, func(i types.InventoryItem) int { return i.ID })
	now := time.Now().UTC()

	item := types.InventoryItem{
		ID:          id,
		Code:        fmt.Sprintf("I-%04d", id),
		Description: in.Description,
		Quantity:    in.Quantity,
		Unit:        in.Unit,
		Location:    in.Location,
		Status:      types.InventoryStatusInWarehouse,
		ReceivedAt:  now,
		UpdatedAt:   now,
		DonationID:  in.DonationID,
	}
	state.Inventory = append(state.Inventory, item)

	if err := s.saveState(ctx, state); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"inventory_id": item.ID,
		"code":         item.Code,
	}).Info("inventory item registered")

	return &item, nil
}

func (s *Store) ListInventory(ctx context.Context, status string) ([]types.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.loadState(ctx)
	if err != nil {
		return nil, err
	}

	if status == "" {
		return state.Inventory, nil
	}

	out := make([]types.InventoryItem, 0, len(state.Inventory))
	for _, item := range state.Inventory {
		if item.Status == status {
			out = append(out, item)
		}
	}
	return out, nil
}

// UpdateInventoryStatus overwrites an item's status. Downstream states are
// free-form; no transition table applies past IN_WAREHOUSE.
func (s *Store) UpdateInventoryStatus(ctx context.Context, id int, status string) (*types.InventoryItem, error) {
	if status == "" {
		return nil, types.NewValidationError(types.FieldError{
			Field:   "status",
			Message: "failed 'required' validation",
		})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.loadState(ctx)
	if err != nil {
		return nil, err
	}

	var item *types.InventoryItem
	for i := range state.Inventory {
		if state.Inventory[i].ID == id {
			item = &state.Inventory[i]
			break
		}
	}
	if item == nil {
		return nil, types.ErrInventoryItemNotFound
	}

	item.Status = status
	item.UpdatedAt = time.Now().UTC()

	if err := s.saveState(ctx, state); err != nil {
		return nil, err
	}

	out := *item
	return &out, nil
}
