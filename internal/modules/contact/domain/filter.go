package domain

import (
	"time"

	"github.com/golangid/candi/candishared"
)

// FilterContact model
type FilterContact struct {
	candishared.Filter
	Since time.Time `json:"-"`
}
