package postgres

import (
	"github.com/KannamTejaswi311/NutriTrack/internal/db"
	"github.com/KannamTejaswi311/NutriTrack/internal/repository"
)

func New(db db.Querier) *repository.Store {
	return &repository.Store{
		Post:     newPostRepo(db),
		Question: newQuestionRepo(db),
	}
}
