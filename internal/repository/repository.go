package repository

import (
	"context"
	"errors"

	"github.com/KannamTejaswi311/NutriTrack/internal/model"
	"github.com/KannamTejaswi311/NutriTrack/internal/repository/redisrepo"
)

var ErrNotFound = errors.New("record not found")

type Post interface {
	Create(ctx context.Context, post model.Post) (*model.Post, error)
	Find(ctx context.Context, filter model.PostFilter) ([]*model.Post, error)
	Count(ctx context.Context) (int64, error)
	IncrLikes(ctx context.Context, id string) (*model.Post, error)
	IncrReplies(ctx context.Context, id string) (*model.Post, error)
	// AppendComment also counts the comment as a reply.
	AppendComment(ctx context.Context, id string, comment model.Comment) (*model.Post, error)
	ToggleFlag(ctx context.Context, id string) (*model.Post, error)
}

type Question interface {
	Create(ctx context.Context, question model.Question) (*model.Question, error)
	Find(ctx context.Context, limit int, offset int) ([]*model.Question, error)
	AppendAnswer(ctx context.Context, id string, answer model.Answer) (*model.Question, error)
}

// Store is a document backend holding posts and questions.
type Store struct {
	Post
	Question
}

type Repository struct {
	Store *Store
	// Redis is nil when no cache is configured.
	Redis *redisrepo.RedisRepository
}

func New(store *Store, redis *redisrepo.RedisRepository) *Repository {
	return &Repository{
		Store: store,
		Redis: redis,
	}
}
