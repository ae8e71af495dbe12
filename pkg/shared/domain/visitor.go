package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Device type values derived from the user agent header
const (
	DeviceDesktop = "desktop"
	DeviceMobile  = "mobile"
	DeviceTablet  = "tablet"
	DeviceUnknown = "unknown"
)

// PageVisit one entry in the visitor page trail
type PageVisit struct {
	Page      string    `bson:"page" json:"page"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}

// Visitor model, one logged page view event (not a deduplicated unique visitor).
// Records are insert-only, isReturning is computed once at insert time and never revised.
type Visitor struct {
	ID            primitive.ObjectID `bson:"_id" json:"id"`
	IPAddress     string             `bson:"ipAddress" json:"ipAddress"`
	UserAgent     string             `bson:"userAgent,omitempty" json:"userAgent,omitempty"`
	Page          string             `bson:"page" json:"page"`
	Referrer      string             `bson:"referrer,omitempty" json:"referrer,omitempty"`
	SessionID     string             `bson:"sessionId,omitempty" json:"sessionId,omitempty"`
	DeviceType    string             `bson:"deviceType" json:"deviceType"`
	PagesVisited  []PageVisit        `bson:"pagesVisited" json:"pagesVisited"`
	IsReturning   bool               `bson:"isReturning" json:"isReturning"`
	VisitDuration int                `bson:"visitDuration" json:"visitDuration"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	LastVisit     time.Time          `bson:"lastVisit" json:"lastVisit"`
}

// CollectionName return collection name of Visitor model
func (Visitor) CollectionName() string {
	return "visitors"
}
