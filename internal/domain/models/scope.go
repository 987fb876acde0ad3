package models

import "time"

// Scope is a service target group ("đối tượng") living under a category.
// Backgrounds are the ordered gallery images shown on the detail page.
type Scope struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Logo        string    `json:"logo,omitempty"`
	Description string    `json:"description,omitempty"`
	CategoryID  int64     `json:"categoryId"`
	Category    *Option   `json:"category,omitempty"`
	Backgrounds []string  `json:"backgrounds"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
