package domain

import "time"

type Speaker struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Title        string    `json:"title"`
	Organization string    `json:"organization"`
	Bio          string    `json:"bio"`
	AvatarURL    string    `json:"avatar_url"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
