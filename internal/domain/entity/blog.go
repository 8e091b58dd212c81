package entity

import "time"

// BlogPost is an article published on the firm's blog.
type BlogPost struct {
	ID          int           `json:"id"`
	Slug        string        `json:"slug"`
	Title       LocalizedText `json:"title"`
	Excerpt     LocalizedText `json:"excerpt"`
	Content     LocalizedText `json:"content"` // rich markup
	CoverImage  *MediaAsset   `json:"coverImage,omitempty"`
	PublishedAt time.Time     `json:"publishedAt,omitzero"`
}

// Pagination mirrors the content service's pagination metadata.
type Pagination struct {
	Page      int `json:"page"`
	PageSize  int `json:"pageSize"`
	PageCount int `json:"pageCount"`
	Total     int `json:"total"`
}

// HasNext reports whether another page follows.
func (p Pagination) HasNext() bool {
	return p.Page < p.PageCount
}

// HasPrev reports whether a page precedes.
func (p Pagination) HasPrev() bool {
	return p.Page > 1
}

// BlogPage is one page of blog posts.
type BlogPage struct {
	Posts      []BlogPost `json:"posts"`
	Pagination Pagination `json:"pagination"`
}
