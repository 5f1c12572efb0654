package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/KannamTejaswi311/NutriTrack/internal/dto"
	"github.com/KannamTejaswi311/NutriTrack/internal/model"
	"github.com/KannamTejaswi311/NutriTrack/internal/rabbitmq"
	"github.com/KannamTejaswi311/NutriTrack/internal/repository"
	"github.com/KannamTejaswi311/NutriTrack/internal/repository/redisrepo"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type postService struct {
	logger    *zap.Logger
	repo      *repository.Repository
	publisher Publisher
	cacheTTL  time.Duration
	now       func() time.Time
}

func newPostService(logger *zap.Logger, repo *repository.Repository, opts Options) Post {
	return &postService{
		logger:    logger,
		repo:      repo,
		publisher: opts.Publisher,
		cacheTTL:  opts.CacheTTL,
		now:       opts.Now,
	}
}

func (s *postService) Create(ctx context.Context, input dto.CreatePostRequest) (*model.Post, error) {
	author := strings.TrimSpace(input.Author)
	if author == "" {
		return nil, newValidationError("author", "author is required")
	}

	image := optionalString(input.Image)
	audio := optionalString(input.Audio)
	content := strings.TrimSpace(input.Content)
	if content == "" && image == nil && audio == nil {
		return nil, newValidationError("content", "content is required")
	}

	postType := strings.TrimSpace(input.Type)
	if postType == "" {
		postType = model.PostTypeDefault
	}

	post := model.Post{
		Type:           postType,
		Author:         author,
		Content:        content,
		Image:          image,
		Audio:          audio,
		Tags:           cleanTags(input.Tags),
		IsHealthWorker: input.IsHealthWorker,
	}

	createdPost, err := s.repo.Store.Post.Create(ctx, post)
	if err != nil {
		s.logger.Sugar().Errorf("failed to create post by author(%s): %s", author, err.Error())
		return nil, &StorageError{Op: "create post", Err: err}
	}

	s.invalidatePosts(ctx)
	s.publish(ctx, rabbitmq.POST_CREATED_QUEUE, dto.MQPostCreatedMsg{
		PostID:    createdPost.ID,
		Type:      createdPost.Type,
		Author:    createdPost.Author,
		CreatedAt: createdPost.CreatedAt,
	})

	return createdPost, nil
}

func (s *postService) List(ctx context.Context, filter model.PostFilter) ([]*model.Post, error) {
	normalizePage(&filter.Limit, &filter.Offset)
	filter.Type = strings.TrimSpace(filter.Type)

	// Pages are cached under the generation read before Find, so a page
	// built before a concurrent mutation is never served after it.
	cached := false
	var key string
	if s.repo.Redis != nil {
		generation, err := s.repo.Redis.Default.Generation(ctx, redisrepo.POSTS_GENERATION_KEY)
		if err != nil {
			s.logger.Sugar().Errorf("failed to get posts generation from redis: %s", err.Error())
		} else {
			cached = true
			key = redisrepo.PostsKey(generation, filter.Type, filter.Limit, filter.Offset)
			cachedPosts, err := redisrepo.GetMany[model.Post](s.repo.Redis.Default, ctx, key)
			if err == nil {
				return cachedPosts, nil
			}
			if !errors.Is(err, redis.Nil) {
				s.logger.Sugar().Errorf("failed to get posts(%s) from redis: %s", key, err.Error())
			}
		}
	}

	posts, err := s.repo.Store.Post.Find(ctx, filter)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find posts(type=%q): %s", filter.Type, err.Error())
		return nil, &StorageError{Op: "list posts", Err: err}
	}
	if posts == nil {
		posts = []*model.Post{}
	}

	if cached {
		if err := s.repo.Redis.Default.SetJSON(ctx, key, posts, s.cacheTTL); err != nil {
			s.logger.Sugar().Errorf("failed to set posts(%s) in redis: %s", key, err.Error())
		}
	}

	return posts, nil
}

func (s *postService) Like(ctx context.Context, id string) (*model.Post, error) {
	post, err := s.repo.Store.Post.IncrLikes(ctx, id)
	if err != nil {
		return nil, s.storageError("like post", id, err)
	}

	s.invalidatePosts(ctx)
	return post, nil
}

// Reply counts a reply that was made outside the comment thread.
func (s *postService) Reply(ctx context.Context, id string) (*model.Post, error) {
	post, err := s.repo.Store.Post.IncrReplies(ctx, id)
	if err != nil {
		return nil, s.storageError("reply to post", id, err)
	}

	s.invalidatePosts(ctx)
	return post, nil
}

func (s *postService) Comment(ctx context.Context, id string, input dto.CreateCommentRequest) (*model.Post, error) {
	author := strings.TrimSpace(input.Author)
	if author == "" {
		return nil, newValidationError("author", "author is required")
	}
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return nil, newValidationError("text", "text is required")
	}

	comment := model.Comment{
		Author: author,
		Text:   text,
		Time:   s.now().UTC(),
	}

	post, err := s.repo.Store.Post.AppendComment(ctx, id, comment)
	if err != nil {
		return nil, s.storageError("comment on post", id, err)
	}

	s.invalidatePosts(ctx)
	return post, nil
}

func (s *postService) ToggleFlag(ctx context.Context, id string) (*model.Post, error) {
	post, err := s.repo.Store.Post.ToggleFlag(ctx, id)
	if err != nil {
		return nil, s.storageError("flag post", id, err)
	}

	s.invalidatePosts(ctx)
	s.publish(ctx, rabbitmq.POST_FLAGGED_QUEUE, dto.MQPostFlaggedMsg{
		PostID:    post.ID,
		Flagged:   post.Flagged,
		FlaggedAt: s.now().UTC(),
	})

	return post, nil
}

// SeedIfEmpty inserts the welcome posts into an empty store and reports
// whether it did.
func (s *postService) SeedIfEmpty(ctx context.Context) (bool, error) {
	count, err := s.repo.Store.Post.Count(ctx)
	if err != nil {
		s.logger.Sugar().Errorf("failed to count posts: %s", err.Error())
		return false, &StorageError{Op: "count posts", Err: err}
	}
	if count > 0 {
		return false, nil
	}

	for _, post := range welcomePosts() {
		if _, err := s.repo.Store.Post.Create(ctx, post); err != nil {
			s.logger.Sugar().Errorf("failed to seed post by author(%s): %s", post.Author, err.Error())
			return false, &StorageError{Op: "seed posts", Err: err}
		}
	}

	s.invalidatePosts(ctx)
	return true, nil
}

func welcomePosts() []model.Post {
	return []model.Post{
		{
			Type:           model.PostTypeDefault,
			Author:         "Alice",
			Content:        "Welcome to our community! Share your health tips here.",
			Tags:           []string{"health", "community"},
			IsHealthWorker: true,
		},
		{
			Type:    model.PostTypeDefault,
			Author:  "John",
			Content: "Try this amazing budget nutrition recipe!",
			Tags:    []string{"recipes", "budget-nutrition"},
		},
	}
}

func (s *postService) storageError(op string, id string, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return &NotFoundError{Resource: "post", ID: id}
	}

	s.logger.Sugar().Errorf("failed to %s(%s): %s", op, id, err.Error())
	return &StorageError{Op: op, Err: err}
}

// invalidatePosts moves readers to a new generation and drops the old
// pages. A failure only leaves pages stale until their TTL runs out.
func (s *postService) invalidatePosts(ctx context.Context) {
	if s.repo.Redis == nil {
		return
	}
	if _, err := s.repo.Redis.Default.BumpGeneration(ctx, redisrepo.POSTS_GENERATION_KEY); err != nil {
		s.logger.Sugar().Errorf("failed to bump posts generation: %s", err.Error())
	}
	if err := s.repo.Redis.Default.DelPattern(ctx, redisrepo.POSTS_PATTERN); err != nil {
		s.logger.Sugar().Errorf("failed to invalidate cached posts: %s", err.Error())
	}
}

func (s *postService) publish(ctx context.Context, queue string, msg interface{}) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, queue, msg); err != nil {
		s.logger.Sugar().Errorf("failed to publish message to queue(%s): %s", queue, err.Error())
	}
}

func optionalString(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func cleanTags(tags []string) []string {
	cleaned := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			cleaned = append(cleaned, tag)
		}
	}
	return cleaned
}
