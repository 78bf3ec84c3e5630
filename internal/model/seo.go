package model

import "time"

// SEOSetting holds the meta tags for one page of the public site.
type SEOSetting struct {
	Page        string    `json:"page"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Keywords    string    `json:"keywords,omitempty"`
	OGImage     string    `json:"og_image,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}
