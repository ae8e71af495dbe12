package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Contact model, one contact form submission
type Contact struct {
	ID        primitive.ObjectID `bson:"_id" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Subject   string             `bson:"subject" json:"subject"`
	Message   string             `bson:"message" json:"message"`
	Read      bool               `bson:"read" json:"read"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// CollectionName return collection name of Contact model
func (Contact) CollectionName() string {
	return "contacts"
}
