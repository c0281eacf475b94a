package model

// User is a customer profile. No endpoint creates users yet.
type User struct {
	ID         string  `json:"_id" bson:"_id,omitempty"`
	Name       string  `json:"name" bson:"name"`
	Email      string  `json:"email" bson:"email"`
	Phone      *string `json:"phone" bson:"phone"`
	IsVerified bool    `json:"is_verified" bson:"is_verified"`
}
