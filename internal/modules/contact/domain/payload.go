package domain

import (
	"time"

	shareddomain "portfolio-service/pkg/shared/domain"
)

// RequestContact contact form payload
type RequestContact struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Deserialize to db model
func (r *RequestContact) Deserialize() (res shareddomain.Contact) {
	res.Name = r.Name
	res.Email = r.Email
	res.Subject = r.Subject
	res.Message = r.Message
	res.CreatedAt = time.Now()
	return
}

// ResponseContact model
type ResponseContact struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"createdAt"`
}

// Serialize from db model
func (r *ResponseContact) Serialize(source *shareddomain.Contact) {
	r.ID = source.ID.Hex()
	r.Name = source.Name
	r.Email = source.Email
	r.Subject = source.Subject
	r.Message = source.Message
	r.Read = source.Read
	r.CreatedAt = source.CreatedAt.Format(time.RFC3339)
}
