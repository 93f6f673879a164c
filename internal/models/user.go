package models

import "time"

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Picture   *string   `json:"picture,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
