package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/KannamTejaswi311/NutriTrack/internal/dto"
	"github.com/KannamTejaswi311/NutriTrack/internal/model"
	"github.com/KannamTejaswi311/NutriTrack/internal/repository"
	"github.com/KannamTejaswi311/NutriTrack/internal/repository/redisrepo"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const anonymousAsker = "Anonymous"

type questionService struct {
	logger   *zap.Logger
	repo     *repository.Repository
	cacheTTL time.Duration
	now      func() time.Time
}

func newQuestionService(logger *zap.Logger, repo *repository.Repository, opts Options) Question {
	return &questionService{
		logger:   logger,
		repo:     repo,
		cacheTTL: opts.CacheTTL,
		now:      opts.Now,
	}
}

func (s *questionService) Ask(ctx context.Context, input dto.AskQuestionRequest) (*model.Question, error) {
	text := strings.TrimSpace(input.Question)
	if text == "" {
		return nil, newValidationError("question", "question is required")
	}

	askedBy := strings.TrimSpace(input.AskedBy)
	if askedBy == "" {
		askedBy = anonymousAsker
	}

	question, err := s.repo.Store.Question.Create(ctx, model.Question{
		Question: text,
		AskedBy:  askedBy,
	})
	if err != nil {
		s.logger.Sugar().Errorf("failed to create question by(%s): %s", askedBy, err.Error())
		return nil, &StorageError{Op: "ask question", Err: err}
	}

	s.invalidateQuestions(ctx)
	return question, nil
}

func (s *questionService) List(ctx context.Context, limit int, offset int) ([]*model.Question, error) {
	normalizePage(&limit, &offset)

	cached := false
	var key string
	if s.repo.Redis != nil {
		generation, err := s.repo.Redis.Default.Generation(ctx, redisrepo.QUESTIONS_GENERATION_KEY)
		if err != nil {
			s.logger.Sugar().Errorf("failed to get questions generation from redis: %s", err.Error())
		} else {
			cached = true
			key = redisrepo.QuestionsKey(generation, limit, offset)
			cachedQuestions, err := redisrepo.GetMany[model.Question](s.repo.Redis.Default, ctx, key)
			if err == nil {
				return cachedQuestions, nil
			}
			if !errors.Is(err, redis.Nil) {
				s.logger.Sugar().Errorf("failed to get questions(%s) from redis: %s", key, err.Error())
			}
		}
	}

	questions, err := s.repo.Store.Question.Find(ctx, limit, offset)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find questions(%d:%d): %s", limit, offset, err.Error())
		return nil, &StorageError{Op: "list questions", Err: err}
	}
	if questions == nil {
		questions = []*model.Question{}
	}

	if cached {
		if err := s.repo.Redis.Default.SetJSON(ctx, key, questions, s.cacheTTL); err != nil {
			s.logger.Sugar().Errorf("failed to set questions(%s) in redis: %s", key, err.Error())
		}
	}

	return questions, nil
}

// Answer appends a verified answer. Identity overrides, if any, are applied
// to input by the caller before this point.
func (s *questionService) Answer(ctx context.Context, id string, input dto.AnswerQuestionRequest) (*model.Question, error) {
	text := strings.TrimSpace(input.Answer)
	if text == "" {
		return nil, newValidationError("answer", "answer is required")
	}
	answeredBy := strings.TrimSpace(input.AnsweredBy)
	if answeredBy == "" {
		return nil, newValidationError("answeredBy", "answeredBy is required")
	}

	answer := model.Answer{
		Answer:     text,
		AnsweredBy: answeredBy,
		Role:       strings.TrimSpace(input.Role),
		Verified:   true,
		Time:       s.now().UTC(),
	}

	question, err := s.repo.Store.Question.AppendAnswer(ctx, id, answer)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &NotFoundError{Resource: "question", ID: id}
		}
		s.logger.Sugar().Errorf("failed to answer question(%s): %s", id, err.Error())
		return nil, &StorageError{Op: "answer question", Err: err}
	}

	s.invalidateQuestions(ctx)
	return question, nil
}

func (s *questionService) invalidateQuestions(ctx context.Context) {
	if s.repo.Redis == nil {
		return
	}
	if _, err := s.repo.Redis.Default.BumpGeneration(ctx, redisrepo.QUESTIONS_GENERATION_KEY); err != nil {
		s.logger.Sugar().Errorf("failed to bump questions generation: %s", err.Error())
	}
	if err := s.repo.Redis.Default.DelPattern(ctx, redisrepo.QUESTIONS_PATTERN); err != nil {
		s.logger.Sugar().Errorf("failed to invalidate cached questions: %s", err.Error())
	}
}
