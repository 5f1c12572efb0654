package client

import (
	"context"
	"sync"

	"github.com/KannamTejaswi311/NutriTrack/internal/dto"
	"github.com/KannamTejaswi311/NutriTrack/internal/model"
)

// Feed is a local view of the post list. Mutations reach the local copy
// only after the server confirms them; a failed call leaves it untouched.
type Feed struct {
	client *Client

	mu    sync.RWMutex
	posts []model.Post
}

func NewFeed(client *Client) *Feed {
	return &Feed{
		client: client,
		posts:  []model.Post{},
	}
}

func (f *Feed) Load(ctx context.Context, filter model.PostFilter) error {
	posts, err := f.client.ListPosts(ctx, filter)
	if err != nil {
		return err
	}
	if posts == nil {
		posts = []model.Post{}
	}

	f.mu.Lock()
	f.posts = posts
	f.mu.Unlock()
	return nil
}

func (f *Feed) Posts() []model.Post {
	f.mu.RLock()
	defer f.mu.RUnlock()

	posts := make([]model.Post, len(f.posts))
	copy(posts, f.posts)
	return posts
}

func (f *Feed) Create(ctx context.Context, input dto.CreatePostRequest) (*model.Post, error) {
	post, err := f.client.CreatePost(ctx, input)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	f.posts = append([]model.Post{*post}, f.posts...)
	f.mu.Unlock()
	return post, nil
}

func (f *Feed) Like(ctx context.Context, id string) (*model.Post, error) {
	return f.commit(f.client.LikePost(ctx, id))
}

func (f *Feed) Reply(ctx context.Context, id string) (*model.Post, error) {
	return f.commit(f.client.ReplyPost(ctx, id))
}

func (f *Feed) Comment(ctx context.Context, id string, input dto.CreateCommentRequest) (*model.Post, error) {
	return f.commit(f.client.CommentOnPost(ctx, id, input))
}

func (f *Feed) ToggleFlag(ctx context.Context, id string) (*model.Post, error) {
	return f.commit(f.client.ToggleFlag(ctx, id))
}

// commit replaces the local copy with the server's version of the post.
func (f *Feed) commit(post *model.Post, err error) (*model.Post, error) {
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.posts {
		if f.posts[i].ID == post.ID {
			f.posts[i] = *post
			break
		}
	}
	return post, nil
}
