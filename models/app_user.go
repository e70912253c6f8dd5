package models

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type AppUser struct {
	ID        int64     `json:"id" bson:"_id,omitempty" db:"id"`
	Name      string    `json:"name" bson:"name" db:"name"`
	Email     string    `json:"email" bson:"email" db:"email"`
	Role      string    `json:"role" bson:"role" db:"role"`
	Password  string    `json:"password,omitempty" bson:"password_hash" db:"password_hash"`
	CreatedAt time.Time `json:"created_at" bson:"created_at" db:"created_at"`
}
