package models

import "time"

type NewsStatus string

const (
	NewsStatusPublished NewsStatus = "published"
	NewsStatusDraft     NewsStatus = "draft"
)

type News struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	Excerpt     string     `json:"excerpt"`
	PublishDate time.Time  `json:"publishDate"`
	Status      NewsStatus `json:"status"`
}

type NewsInput struct {
	Title   string
	Content string
	Excerpt string
	Status  NewsStatus
}

// NewNews stamps publishDate and defaults the status to published.
func NewNews(id string, in NewsInput, publishDate time.Time) News {
	n := News{
		ID:          id,
		Title:       in.Title,
		Content:     in.Content,
		Excerpt:     in.Excerpt,
		PublishDate: publishDate,
		Status:      in.Status,
	}
	if n.Status == "" {
		n.Status = NewsStatusPublished
	}
	return n
}

type NewsPatch struct {
	Title   *string
	Content *string
	Excerpt *string
	Status  *NewsStatus
}

func (p NewsPatch) Apply(n *News) {
	if p.Title != nil {
		n.Title = *p.Title
	}
	if p.Content != nil {
		n.Content = *p.Content
	}
	if p.Excerpt != nil {
		n.Excerpt = *p.Excerpt
	}
	if p.Status != nil {
		n.Status = *p.Status
	}
}
