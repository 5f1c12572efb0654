package dto

type CreatePostRequest struct {
	Type           string   `json:"type"`
	Author         string   `json:"author" binding:"notblank"`
	Content        string   `json:"content"`
	Image          *string  `json:"image"`
	Audio          *string  `json:"audio"`
	Tags           []string `json:"tags"`
	IsHealthWorker bool     `json:"isHealthWorker"`
}

type GetPostsRequest struct {
	Type   string `form:"type"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}

type CreateCommentRequest struct {
	Author string `json:"author" binding:"notblank"`
	Text   string `json:"text" binding:"notblank"`
}
