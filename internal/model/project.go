package model

import "time"

// Project is a portfolio entry shown on the public site.
type Project struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	TechStack   []string  `json:"tech_stack"`
	Category    string    `json:"category,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	LiveURL     string    `json:"live_url,omitempty"`
	RepoURL     string    `json:"repo_url,omitempty"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProjectPatch holds the fields an update may change. Nil means unchanged.
type ProjectPatch struct {
	Title       *string
	Description *string
	TechStack   *[]string
	Category    *string
	LiveURL     *string
	RepoURL     *string
}
