package model

import "time"

type Comment struct {
	Author string    `json:"author" bson:"author"`
	Text   string    `json:"text" bson:"text"`
	Time   time.Time `json:"time" bson:"time"`
}
