package model

import "time"

type Question struct {
	ID        string    `json:"id"`
	Question  string    `json:"question"`
	AskedBy   string    `json:"askedBy"`
	Answers   []Answer  `json:"answers"`
	CreatedAt time.Time `json:"createdAt"`
}

// Answer is a reply appended by a health worker. Answers appended through
// the answer endpoint are always verified.
type Answer struct {
	Answer     string    `json:"answer" bson:"answer"`
	AnsweredBy string    `json:"answeredBy" bson:"answeredBy"`
	Role       string    `json:"role" bson:"role"`
	Verified   bool      `json:"verified" bson:"verified"`
	Time       time.Time `json:"time" bson:"time"`
}
