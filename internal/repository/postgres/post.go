package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/KannamTejaswi311/NutriTrack/internal/db"
	"github.com/KannamTejaswi311/NutriTrack/internal/model"
	"github.com/KannamTejaswi311/NutriTrack/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const postColumns = "id, type, author, content, image, audio, tags, likes, replies, flagged, is_health_worker, comments, created_at, updated_at"

type postRepo struct {
	db db.Querier
}

func newPostRepo(db db.Querier) repository.Post {
	return &postRepo{
		db: db,
	}
}

func (r *postRepo) Create(ctx context.Context, post model.Post) (*model.Post, error) {
	// TIMESTAMPTZ keeps microseconds.
	now := time.Now().UTC().Truncate(time.Microsecond)
	post.ID = uuid.NewString()
	post.Likes = 0
	post.Replies = 0
	post.Flagged = false
	post.Comments = []model.Comment{}
	post.CreatedAt = now
	post.UpdatedAt = now
	if post.Tags == nil {
		post.Tags = []string{}
	}

	if _, err := r.db.Exec(
		ctx,
		`INSERT INTO posts(id, type, author, content, image, audio, tags, likes, replies, flagged, is_health_worker, comments, created_at, updated_at)
		VALUES($1, $2, $3, $4, $5, $6, $7, 0, 0, FALSE, $8, '[]'::jsonb, $9, $9)`,
		post.ID,
		post.Type,
		post.Author,
		post.Content,
		post.Image,
		post.Audio,
		post.Tags,
		post.IsHealthWorker,
		now,
	); err != nil {
		return nil, err
	}

	return &post, nil
}

func (r *postRepo) Find(ctx context.Context, filter model.PostFilter) ([]*model.Post, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT `+postColumns+`
		FROM posts
		WHERE ($1::text = '' OR type = $1)
		ORDER BY created_at DESC
		LIMIT $2
		OFFSET $3`,
		filter.Type,
		filter.Limit,
		filter.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := []*model.Post{}
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return posts, nil
}

func (r *postRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, "SELECT count(*) FROM posts").Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *postRepo) IncrLikes(ctx context.Context, id string) (*model.Post, error) {
	return r.update(ctx, "likes = likes + 1", id)
}

func (r *postRepo) IncrReplies(ctx context.Context, id string) (*model.Post, error) {
	return r.update(ctx, "replies = replies + 1", id)
}

func (r *postRepo) AppendComment(ctx context.Context, id string, comment model.Comment) (*model.Post, error) {
	commentJSON, err := json.Marshal(comment)
	if err != nil {
		return nil, err
	}

	return r.update(ctx, "comments = comments || jsonb_build_array($2::jsonb), replies = replies + 1", id, string(commentJSON))
}

func (r *postRepo) ToggleFlag(ctx context.Context, id string) (*model.Post, error) {
	return r.update(ctx, "flagged = NOT flagged", id)
}

// update applies set to a single row in one statement, so concurrent
// mutations of the same post never lose a write.
func (r *postRepo) update(ctx context.Context, set string, id string, args ...any) (*model.Post, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, repository.ErrNotFound
	}

	post, err := scanPost(r.db.QueryRow(
		ctx,
		`UPDATE posts SET `+set+`, updated_at = now()
		WHERE id = $1
		RETURNING `+postColumns,
		append([]any{id}, args...)...,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return post, nil
}

func scanPost(row pgx.Row) (*model.Post, error) {
	var (
		post         model.Post
		commentsJSON []byte
	)
	if err := row.Scan(
		&post.ID,
		&post.Type,
		&post.Author,
		&post.Content,
		&post.Image,
		&post.Audio,
		&post.Tags,
		&post.Likes,
		&post.Replies,
		&post.Flagged,
		&post.IsHealthWorker,
		&commentsJSON,
		&post.CreatedAt,
		&post.UpdatedAt,
	); err != nil {
		return nil, err
	}

	post.Comments = []model.Comment{}
	if len(commentsJSON) > 0 {
		if err := json.Unmarshal(commentsJSON, &post.Comments); err != nil {
			return nil, err
		}
	}
	if post.Tags == nil {
		post.Tags = []string{}
	}

	return &post, nil
}
