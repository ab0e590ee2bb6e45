package types

// State is the full persisted blob: every collection the lifecycle store
// owns. It is loaded, mutated and saved back as a single unit of
// consistency; there are no partial updates.
type State struct {
	Users        []User            `json:"users"`
	Requests     []AidRequest      `json:"requests"`
	Publications []Publication     `json:"publications"`
	Donations    []Donation        `json:"donations"`
	Inventory    []InventoryItem   `json:"inventory"`
	Events       []SolidarityEvent `json:"events"`
}
