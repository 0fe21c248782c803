package models

import "time"

// UserProfile is the MongoDB document written when an account is created.
// Authentication itself lives in Cognito; this document only carries the
// display profile.
type UserProfile struct {
	ID        string    `json:"id" bson:"userId"`
	Email     string    `json:"email" bson:"email"`
	Name      string    `json:"name" bson:"name"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}
