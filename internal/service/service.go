package service

import (
	"context"
	"time"

	"github.com/KannamTejaswi311/NutriTrack/internal/dto"
	"github.com/KannamTejaswi311/NutriTrack/internal/mealmatch"
	"github.com/KannamTejaswi311/NutriTrack/internal/model"
	"github.com/KannamTejaswi311/NutriTrack/internal/repository"
	"go.uber.org/zap"
)

const (
	DEFAULT_LIMIT = 50
	MAX_LIMIT     = 100
)

func normalizePage(limit *int, offset *int) {
	if *limit <= 0 {
		*limit = DEFAULT_LIMIT
	}
	if *limit > MAX_LIMIT {
		*limit = MAX_LIMIT
	}
	if *offset < 0 {
		*offset = 0
	}
}

// Publisher emits community events for moderation and notifications.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, body interface{}) error
}

type Post interface {
	Create(ctx context.Context, input dto.CreatePostRequest) (*model.Post, error)
	List(ctx context.Context, filter model.PostFilter) ([]*model.Post, error)
	Like(ctx context.Context, id string) (*model.Post, error)
	Reply(ctx context.Context, id string) (*model.Post, error)
	Comment(ctx context.Context, id string, input dto.CreateCommentRequest) (*model.Post, error)
	ToggleFlag(ctx context.Context, id string) (*model.Post, error)
	SeedIfEmpty(ctx context.Context) (bool, error)
}

type Question interface {
	Ask(ctx context.Context, input dto.AskQuestionRequest) (*model.Question, error)
	List(ctx context.Context, limit int, offset int) ([]*model.Question, error)
	Answer(ctx context.Context, id string, input dto.AnswerQuestionRequest) (*model.Question, error)
}

type Meal interface {
	Catalog() []mealmatch.Recipe
	Suggest(input dto.SuggestMealsRequest) (*dto.SuggestMealsResponse, error)
}

type Options struct {
	// CacheTTL bounds how long cached list pages live when Redis is
	// configured.
	CacheTTL  time.Duration
	Publisher Publisher
	Catalog   []mealmatch.Recipe
	Now       func() time.Time
}

type Service struct {
	Post
	Question
	Meal
}

func New(logger *zap.Logger, repo *repository.Repository, opts Options) *Service {
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = time.Minute
	}
	if opts.Catalog == nil {
		opts.Catalog = mealmatch.DefaultCatalog()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Service{
		Post:     newPostService(logger, repo, opts),
		Question: newQuestionService(logger, repo, opts),
		Meal:     newMealService(opts),
	}
}
