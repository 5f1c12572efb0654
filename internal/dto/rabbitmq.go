package dto

import "time"

type MQPostCreatedMsg struct {
	PostID    string    `json:"post_id"`
	Type      string    `json:"type"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}

type MQPostFlaggedMsg struct {
	PostID    string    `json:"post_id"`
	Flagged   bool      `json:"flagged"`
	FlaggedAt time.Time `json:"flagged_at"`
}
