package models

import "time"

type Category struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Option is the compact {id,name} shape used by select boxes on the dashboard.
type Option struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
