package domain

import (
	shareddomain "portfolio-service/pkg/shared/domain"
)

// RequestProject model
type RequestProject struct {
	ID           string   `json:"-"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Category     string   `json:"category"`
	Status       string   `json:"status"`
	Featured     bool     `json:"featured"`
	Order        int      `json:"order"`
	ImageURL     string   `json:"imageUrl"`
	LiveURL      string   `json:"liveUrl"`
	GithubURL    string   `json:"githubUrl"`
}

// Deserialize to db model
func (r *RequestProject) Deserialize() (res shareddomain.Project) {
	if r.Status == "" {
		r.Status = "completed"
	}

	res.Title = r.Title
	res.Description = r.Description
	res.Technologies = r.Technologies
	res.Category = r.Category
	res.Status = r.Status
	res.Featured = r.Featured
	res.Order = r.Order
	res.ImageURL = r.ImageURL
	res.LiveURL = r.LiveURL
	res.GithubURL = r.GithubURL
	return
}
