package domain

import "github.com/golangid/candi/candishared"

// FilterProject model
type FilterProject struct {
	candishared.Filter
	ID       *string `json:"-"`
	Category string  `json:"category,omitempty"`
	Status   string  `json:"status,omitempty"`
	Featured *bool   `json:"featured,omitempty"`
}
