package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Project model
type Project struct {
	ID           primitive.ObjectID `bson:"_id" json:"id"`
	Title        string             `bson:"title" json:"title"`
	Description  string             `bson:"description" json:"description"`
	Technologies []string           `bson:"technologies" json:"technologies"`
	Category     string             `bson:"category" json:"category"`
	Status       string             `bson:"status" json:"status"`
	Featured     bool               `bson:"featured" json:"featured"`
	Order        int                `bson:"order" json:"order"`
	ImageURL     string             `bson:"imageUrl,omitempty" json:"imageUrl"`
	LiveURL      string             `bson:"liveUrl,omitempty" json:"liveUrl"`
	GithubURL    string             `bson:"githubUrl,omitempty" json:"githubUrl"`
	Views        int                `bson:"views" json:"views"`
	Likes        int                `bson:"likes" json:"likes"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CollectionName return collection name of Project model
func (Project) CollectionName() string {
	return "projects"
}
