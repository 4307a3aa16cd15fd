package models

import "time"

// User is the persistence model for the users collection.
// Username, Email and MobileNumber are covered by unique indexes (see
// migrations); duplicate writes surface as duplicate-key errors.
type User struct {
	UserID       string    `bson:"_id"`
	Username     string    `bson:"username"`
	Email        string    `bson:"email"`
	FullName     string    `bson:"fullName"`
	MobileNumber string    `bson:"mobileNumber"`
	PasswordHash string    `bson:"password"`
	RefreshToken string    `bson:"refreshToken,omitempty"`
	CreatedAt    time.Time `bson:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt"`
}
