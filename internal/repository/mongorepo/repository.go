// Package mongorepo stores posts and questions as documents with embedded
// comment and answer arrays.
package mongorepo

import (
	"github.com/KannamTejaswi311/NutriTrack/internal/repository"
	"go.mongodb.org/mongo-driver/mongo"
)

func New(db *mongo.Database) *repository.Store {
	return &repository.Store{
		Post:     newPostRepo(db),
		Question: newQuestionRepo(db),
	}
}
