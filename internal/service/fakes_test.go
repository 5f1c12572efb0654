package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/KannamTejaswi311/NutriTrack/internal/model"
	"github.com/KannamTejaswi311/NutriTrack/internal/repository"
	"github.com/KannamTejaswi311/NutriTrack/internal/repository/redisrepo"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var errBackend = errors.New("backend unavailable")

type memoryPosts struct {
	mu    sync.Mutex
	seq   int
	posts map[string]*model.Post
	err   error
	finds int
	// afterFind runs once Find has taken its snapshot and released the lock.
	afterFind func()
}

func newMemoryPosts() *memoryPosts {
	return &memoryPosts{posts: map[string]*model.Post{}}
}

func clonePost(p *model.Post) *model.Post {
	c := *p
	c.Tags = append([]string{}, p.Tags...)
	c.Comments = append([]model.Comment{}, p.Comments...)
	return &c
}

func (m *memoryPosts) Create(ctx context.Context, post model.Post) (*model.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	m.seq++
	post.ID = fmt.Sprintf("p%d", m.seq)
	post.CreatedAt = time.Date(2025, 1, 1, 0, 0, m.seq, 0, time.UTC)
	post.UpdatedAt = post.CreatedAt
	post.Likes = 0
	post.Replies = 0
	post.Flagged = false
	post.Comments = []model.Comment{}
	if post.Tags == nil {
		post.Tags = []string{}
	}
	m.posts[post.ID] = &post
	return clonePost(&post), nil
}

func (m *memoryPosts) Find(ctx context.Context, filter model.PostFilter) ([]*model.Post, error) {
	posts, err := m.find(filter)
	if m.afterFind != nil {
		m.afterFind()
	}
	return posts, err
}

func (m *memoryPosts) find(filter model.PostFilter) ([]*model.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.finds++
	if m.err != nil {
		return nil, m.err
	}
	posts := []*model.Post{}
	for _, p := range m.posts {
		if filter.Type == "" || p.Type == filter.Type {
			posts = append(posts, clonePost(p))
		}
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].CreatedAt.After(posts[j].CreatedAt) })
	if filter.Offset >= len(posts) {
		return []*model.Post{}, nil
	}
	posts = posts[filter.Offset:]
	if len(posts) > filter.Limit {
		posts = posts[:filter.Limit]
	}
	return posts, nil
}

func (m *memoryPosts) Count(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return 0, m.err
	}
	return int64(len(m.posts)), nil
}

func (m *memoryPosts) update(id string, fn func(p *model.Post)) (*model.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	p, ok := m.posts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	fn(p)
	return clonePost(p), nil
}

func (m *memoryPosts) IncrLikes(ctx context.Context, id string) (*model.Post, error) {
	return m.update(id, func(p *model.Post) { p.Likes++ })
}

func (m *memoryPosts) IncrReplies(ctx context.Context, id string) (*model.Post, error) {
	return m.update(id, func(p *model.Post) { p.Replies++ })
}

func (m *memoryPosts) AppendComment(ctx context.Context, id string, comment model.Comment) (*model.Post, error) {
	return m.update(id, func(p *model.Post) {
		p.Comments = append(p.Comments, comment)
		p.Replies++
	})
}

func (m *memoryPosts) ToggleFlag(ctx context.Context, id string) (*model.Post, error) {
	return m.update(id, func(p *model.Post) { p.Flagged = !p.Flagged })
}

type memoryQuestions struct {
	mu        sync.Mutex
	seq       int
	questions map[string]*model.Question
	err       error
	afterFind func()
}

func newMemoryQuestions() *memoryQuestions {
	return &memoryQuestions{questions: map[string]*model.Question{}}
}

func (m *memoryQuestions) Create(ctx context.Context, question model.Question) (*model.Question, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	m.seq++
	question.ID = fmt.Sprintf("q%d", m.seq)
	question.Answers = []model.Answer{}
	question.CreatedAt = time.Date(2025, 1, 1, 0, 0, m.seq, 0, time.UTC)
	m.questions[question.ID] = &question
	c := question
	return &c, nil
}

func (m *memoryQuestions) Find(ctx context.Context, limit int, offset int) ([]*model.Question, error) {
	questions, err := m.find(limit, offset)
	if m.afterFind != nil {
		m.afterFind()
	}
	return questions, err
}

func (m *memoryQuestions) find(limit int, offset int) ([]*model.Question, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	questions := []*model.Question{}
	for _, q := range m.questions {
		c := *q
		questions = append(questions, &c)
	}
	sort.Slice(questions, func(i, j int) bool { return questions[i].CreatedAt.After(questions[j].CreatedAt) })
	if offset >= len(questions) {
		return []*model.Question{}, nil
	}
	questions = questions[offset:]
	if len(questions) > limit {
		questions = questions[:limit]
	}
	return questions, nil
}

func (m *memoryQuestions) AppendAnswer(ctx context.Context, id string, answer model.Answer) (*model.Question, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	q, ok := m.questions[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	q.Answers = append(q.Answers, answer)
	c := *q
	c.Answers = append([]model.Answer{}, q.Answers...)
	return &c, nil
}

type published struct {
	queue string
	body  interface{}
}

type recordingPublisher struct {
	mu       sync.Mutex
	messages []published
}

func (p *recordingPublisher) Publish(ctx context.Context, queue string, body interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messages = append(p.messages, published{queue: queue, body: body})
	return nil
}

// pauseAfterFind makes the first Find call block until release is closed.
// started is closed once that call holds its snapshot.
func pauseAfterFind() (hook func(), started chan struct{}, release chan struct{}) {
	started = make(chan struct{})
	release = make(chan struct{})
	var once sync.Once
	hook = func() {
		once.Do(func() {
			close(started)
			<-release
		})
	}
	return hook, started, release
}

var fixedNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

type fixture struct {
	svc       *Service
	posts     *memoryPosts
	questions *memoryQuestions
	publisher *recordingPublisher
	redis     *miniredis.Miniredis
}

func newFixture(t *testing.T, withCache bool) *fixture {
	t.Helper()

	f := &fixture{
		posts:     newMemoryPosts(),
		questions: newMemoryQuestions(),
		publisher: &recordingPublisher{},
	}

	var cache *redisrepo.RedisRepository
	if withCache {
		f.redis = miniredis.RunT(t)
		rdb := redis.NewClient(&redis.Options{Addr: f.redis.Addr()})
		t.Cleanup(func() { _ = rdb.Close() })
		cache = redisrepo.New(rdb)
	}

	repo := repository.New(&repository.Store{Post: f.posts, Question: f.questions}, cache)
	f.svc = New(zap.NewNop(), repo, Options{
		CacheTTL:  time.Minute,
		Publisher: f.publisher,
		Now:       func() time.Time { return fixedNow },
	})
	return f
}
