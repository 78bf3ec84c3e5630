package model

import "time"

const (
	ArticleStatusDraft     = "draft"
	ArticleStatusPublished = "published"
)

// Article is a blog post.
type Article struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     string     `json:"excerpt,omitempty"`
	Content     string     `json:"content"`
	Status      string     `json:"status"` // "draft" | "published"
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// IsPublished reports whether the article is publicly visible.
func (a *Article) IsPublished() bool {
	return a.Status == ArticleStatusPublished
}

// ArticlePatch holds the fields an update may change. Nil means unchanged.
type ArticlePatch struct {
	Title   *string
	Slug    *string
	Excerpt *string
	Content *string
	Status  *string
}

// ArticleListOptions filters article listings.
type ArticleListOptions struct {
	PublishedOnly bool
	Limit         int
	Offset        int
}
