package domain

import (
	"time"

	shareddomain "portfolio-service/pkg/shared/domain"
)

// RequestVisit payload for recording one page view. IPAddress and
// UserAgent are extracted from the transport layer, never from the body.
type RequestVisit struct {
	Page      string `json:"page"`
	Referrer  string `json:"referrer"`
	SessionID string `json:"sessionId"`

	IPAddress string `json:"-"`
	UserAgent string `json:"-"`
}

// Deserialize to db model
func (r *RequestVisit) Deserialize() (res shareddomain.Visitor) {
	if r.Page == "" {
		r.Page = "/"
	}

	now := time.Now()
	res.IPAddress = r.IPAddress
	res.UserAgent = r.UserAgent
	res.Page = r.Page
	res.Referrer = r.Referrer
	res.SessionID = r.SessionID
	res.PagesVisited = []shareddomain.PageVisit{{Page: r.Page, Timestamp: now}}
	res.CreatedAt = now
	res.LastVisit = now
	return
}
