package domain

import (
	"time"

	shareddomain "portfolio-service/pkg/shared/domain"
)

// ResponseProject model
type ResponseProject struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Category     string   `json:"category"`
	Status       string   `json:"status"`
	Featured     bool     `json:"featured"`
	Order        int      `json:"order"`
	ImageURL     string   `json:"imageUrl,omitempty"`
	LiveURL      string   `json:"liveUrl,omitempty"`
	GithubURL    string   `json:"githubUrl,omitempty"`
	Views        int      `json:"views"`
	Likes        int      `json:"likes"`
	CreatedAt    string   `json:"createdAt"`
	UpdatedAt    string   `json:"updatedAt"`
}

// Serialize from db model
func (r *ResponseProject) Serialize(source *shareddomain.Project) {
	r.ID = source.ID.Hex()
	r.Title = source.Title
	r.Description = source.Description
	r.Technologies = source.Technologies
	r.Category = source.Category
	r.Status = source.Status
	r.Featured = source.Featured
	r.Order = source.Order
	r.ImageURL = source.ImageURL
	r.LiveURL = source.LiveURL
	r.GithubURL = source.GithubURL
	r.Views = source.Views
	r.Likes = source.Likes
	r.CreatedAt = source.CreatedAt.Format(time.RFC3339)
	r.UpdatedAt = source.UpdatedAt.Format(time.RFC3339)
}

// ResponseLike result of liking a project
type ResponseLike struct {
	Likes int `json:"likes"`
}
