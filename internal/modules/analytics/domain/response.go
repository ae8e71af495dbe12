package domain

import (
	"time"

	shareddomain "portfolio-service/pkg/shared/domain"
)

// ResponseVisit result of recording one visit
type ResponseVisit struct {
	IsReturning bool `json:"isReturning"`
}

// ResponseVisitor visitor report row. The userAgent field is redacted
// and must never appear here.
type ResponseVisitor struct {
	ID           string                   `json:"id"`
	IPAddress    string                   `json:"ipAddress"`
	Page         string                   `json:"page"`
	Referrer     string                   `json:"referrer,omitempty"`
	SessionID    string                   `json:"sessionId,omitempty"`
	DeviceType   string                   `json:"deviceType"`
	PagesVisited []shareddomain.PageVisit `json:"pagesVisited"`
	IsReturning  bool                     `json:"isReturning"`
	CreatedAt    string                   `json:"createdAt"`
	LastVisit    string                   `json:"lastVisit"`
}

// Serialize from db model
func (r *ResponseVisitor) Serialize(source *shareddomain.Visitor) {
	r.ID = source.ID.Hex()
	r.IPAddress = source.IPAddress
	r.Page = source.Page
	r.Referrer = source.Referrer
	r.SessionID = source.SessionID
	r.DeviceType = source.DeviceType
	r.PagesVisited = source.PagesVisited
	r.IsReturning = source.IsReturning
	r.CreatedAt = source.CreatedAt.Format(time.RFC3339)
	r.LastVisit = source.LastVisit.Format(time.RFC3339)
}

// DailyVisit one calendar day bucket (UTC), sparse over the window
type DailyVisit struct {
	Date  string `bson:"_id" json:"date"`
	Count int    `bson:"count" json:"count"`
}

// DeviceCount aggregation bucket grouped by deviceType
type DeviceCount struct {
	DeviceType string `bson:"_id" json:"deviceType"`
	Count      int    `bson:"count" json:"count"`
}

// PopularProject projection of a project record for the popular ranking
type PopularProject struct {
	Title string `json:"title"`
	Views int    `json:"views"`
	Likes int    `json:"likes"`
}

// StatisticVisitors visitor counters of the snapshot
type StatisticVisitors struct {
	Total     int          `json:"total"`
	Recent    int          `json:"recent"`
	Returning int          `json:"returning"`
	Daily     []DailyVisit `json:"daily"`
}

// StatisticContacts contact store counters
type StatisticContacts struct {
	Total  int `json:"total"`
	Recent int `json:"recent"`
}

// StatisticProjects project store rollups
type StatisticProjects struct {
	Total      int              `json:"total"`
	TotalViews int              `json:"totalViews"`
	Popular    []PopularProject `json:"popular"`
}

// ResponseStatistic point in time snapshot, recomputed on every call
type ResponseStatistic struct {
	Visitors StatisticVisitors `json:"visitors"`
	Devices  map[string]int    `json:"devices"`
	Contacts StatisticContacts `json:"contacts"`
	Projects StatisticProjects `json:"projects"`
}
