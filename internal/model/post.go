package model

import "time"

const (
	PostTypeDefault  = "post"
	PostTypeQuestion = "question"
)

type Post struct {
	ID             string    `json:"id"`
	Type           string    `json:"type"`
	Author         string    `json:"author"`
	Content        string    `json:"content"`
	Image          *string   `json:"image"`
	Audio          *string   `json:"audio"`
	Tags           []string  `json:"tags"`
	Likes          int64     `json:"likes"`
	Replies        int64     `json:"replies"`
	Flagged        bool      `json:"flagged"`
	IsHealthWorker bool      `json:"isHealthWorker"`
	Comments       []Comment `json:"comments"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// PostFilter narrows ListPosts. An empty Type matches every post.
type PostFilter struct {
	Type   string
	Limit  int
	Offset int
}
