package models

import "time"

// Costume is a traditional costume entry. Picture is a photo URL and Model a
// .glb 3D model URL, both produced by the attachments endpoint.
type Costume struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Picture     string    `json:"picture,omitempty"`
	Model       string    `json:"model,omitempty"`
	Description string    `json:"description,omitempty"`
	ScopeID     int64     `json:"scopeId"`
	Scope       *Option   `json:"scope,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
