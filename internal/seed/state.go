// Package seed builds the default store state: two accounts and two sample
// requests. The store falls back to it whenever the persisted snapshot is
// missing or unreadable, so it must always satisfy the lifecycle
// invariants on its own.
package seed

import (
	"time"

	"solidaria/pkg/types"
)

// DefaultState returns the reproducible initial state. The approved sample
// request ships with its matching publication: every approved request has
// exactly one publication, seeded state included.
func DefaultState(now time.Time) *types.State {
	return &types.State{
		Users: []types.User{
			{
				ID:       1,
				Email:    "admin@local.com",
				Password: "admin123",
				Name:     "Administrador",
				Role:     "admin",
			},
			{
				ID:       2,
				Email:    "donante@local.com",
				Password: "donor123",
				Name:     "Donante",
				Role:     "donor",
			},
		},
		Requests: []types.AidRequest{
			{
				ID:              1,
				Code:            "S-0001",
				Title:           "Kits escolares para niños",
				Description:     "Solicitan 50 kits escolares",
				ResourceType:    "GOODS",
				Category:        types.CategoryEducation,
				Urgency:         types.UrgencyMedium,
				BeneficiaryName: "Colegio San Juan",
				Status:          types.RequestStatusPending,
				Evidence:        []string{},
				CreatedAt:       now,
			},
			{
				ID:              2,
				Code:            "S-0002",
				Title:           "Ropa de abrigo para familia",
				Description:     "Ropa para 5 personas",
				ResourceType:    "GOODS",
				Category:        "EMERGENCY",
				Urgency:         types.UrgencyHigh,
				BeneficiaryName: "Familia López",
				Status:          types.RequestStatusApproved,
				Evidence:        []string{},
				CreatedAt:       now,
			},
		},
		Publications: []types.Publication{
			{
				ID:              1,
				RequestCode:     "S-0002",
				Title:           "Ropa de abrigo para familia",
				ResourceType:    "GOODS",
				BeneficiaryName: "Familia López",
				Urgency:         types.UrgencyHigh,
				PublishedAt:     now,
				Description:     "Ropa para 5 personas",
				Evidence:        []string{},
				TotalDonated:    0,
				Donations:       []types.Donation{},
			},
		},
		Donations: []types.Donation{},
		Inventory: []types.InventoryItem{},
		Events:    []types.SolidarityEvent{},
	}
}
