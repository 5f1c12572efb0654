package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KannamTejaswi311/NutriTrack/internal/model"
	"github.com/KannamTejaswi311/NutriTrack/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const postID = "0b6b3d64-2f0e-4a36-9d55-5c1f4f6b8f10"

var errDB = errors.New("db error")

var postRowColumns = []string{"id", "type", "author", "content", "image", "audio", "tags", "likes", "replies", "flagged", "is_health_worker", "comments", "created_at", "updated_at"}

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func postRows(likes int64, replies int64, flagged bool, comments string) *pgxmock.Rows {
	now := time.Now()
	return pgxmock.NewRows(postRowColumns).
		AddRow(postID, "post", "Alice", "hello", nil, nil, []string{"health"}, likes, replies, flagged, true, []byte(comments), now, now)
}

func TestPostCreate(t *testing.T) {
	mock := newMock(t)
	mock.ExpectExec(`INSERT INTO posts`).
		WithArgs(pgxmock.AnyArg(), "post", "Alice", "hello", pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), true, pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	repo := New(mock)
	post, err := repo.Post.Create(context.Background(), model.Post{Type: "post", Author: "Alice", Content: "hello", IsHealthWorker: true})
	require.NoError(t, err)

	assert.NotEmpty(t, post.ID)
	assert.Zero(t, post.Likes)
	assert.Zero(t, post.Replies)
	assert.False(t, post.Flagged)
	assert.True(t, post.IsHealthWorker)
	assert.Empty(t, post.Comments)
	assert.NotNil(t, post.Comments)
	assert.NotNil(t, post.Tags)
	assert.False(t, post.CreatedAt.IsZero())
	assert.Equal(t, post.CreatedAt, post.CreatedAt.Truncate(time.Microsecond))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostCreateError(t *testing.T) {
	mock := newMock(t)
	mock.ExpectExec(`INSERT INTO posts`).WillReturnError(errDB)

	_, err := New(mock).Post.Create(context.Background(), model.Post{Author: "Alice", Content: "hello"})
	assert.ErrorIs(t, err, errDB)
}

func TestPostFind(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(`SELECT id, type, author, content, image, audio, tags, likes, replies, flagged, is_health_worker, comments, created_at, updated_at\s+FROM posts`).
		WithArgs("question", 10, 0).
		WillReturnRows(postRows(3, 1, false, `[{"author":"Bob","text":"nice","time":"2025-01-10T12:00:00Z"}]`))

	posts, err := New(mock).Post.Find(context.Background(), model.PostFilter{Type: "question", Limit: 10})
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, int64(3), posts[0].Likes)
	assert.Equal(t, int64(1), posts[0].Replies)
	assert.True(t, posts[0].IsHealthWorker)
	require.Len(t, posts[0].Comments, 1)
	assert.Equal(t, "Bob", posts[0].Comments[0].Author)
	assert.Nil(t, posts[0].Image)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostFindEmpty(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(`FROM posts`).
		WithArgs("", 50, 0).
		WillReturnRows(pgxmock.NewRows(postRowColumns))

	posts, err := New(mock).Post.Find(context.Background(), model.PostFilter{Limit: 50})
	require.NoError(t, err)
	assert.NotNil(t, posts)
	assert.Empty(t, posts)
}

func TestPostFindQueryError(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(`FROM posts`).WillReturnError(errDB)

	_, err := New(mock).Post.Find(context.Background(), model.PostFilter{Limit: 50})
	assert.ErrorIs(t, err, errDB)
}

func TestPostFindScanError(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(`FROM posts`).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(postID))

	_, err := New(mock).Post.Find(context.Background(), model.PostFilter{Limit: 50})
	assert.Error(t, err)
}

func TestPostCount(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(`SELECT count\(\*\) FROM posts`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(2)))

	count, err := New(mock).Post.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestPostIncrLikesIsSingleAtomicUpdate(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(`UPDATE posts SET likes = likes \+ 1, updated_at = now\(\)\s+WHERE id = \$1\s+RETURNING`).
		WithArgs(postID).
		WillReturnRows(postRows(6, 0, false, `[]`))

	post, err := New(mock).Post.IncrLikes(context.Background(), postID)
	require.NoError(t, err)
	assert.Equal(t, int64(6), post.Likes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostIncrRepliesIsSingleAtomicUpdate(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(`UPDATE posts SET replies = replies \+ 1, updated_at = now\(\)\s+WHERE id = \$1\s+RETURNING`).
		WithArgs(postID).
		WillReturnRows(postRows(0, 4, false, `[]`))

	post, err := New(mock).Post.IncrReplies(context.Background(), postID)
	require.NoError(t, err)
	assert.Equal(t, int64(4), post.Replies)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostIncrRepliesNotFound(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(`UPDATE posts SET replies`).
		WithArgs(postID).
		WillReturnError(pgx.ErrNoRows)

	_, err := New(mock).Post.IncrReplies(context.Background(), postID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestPostIncrLikesNotFound(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(`UPDATE posts SET likes`).
		WithArgs(postID).
		WillReturnError(pgx.ErrNoRows)

	_, err := New(mock).Post.IncrLikes(context.Background(), postID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestPostUpdateMalformedIDSkipsDatabase(t *testing.T) {
	mock := newMock(t)

	_, err := New(mock).Post.ToggleFlag(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostAppendComment(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(`UPDATE posts SET comments = comments \|\| jsonb_build_array\(\$2::jsonb\), replies = replies \+ 1, updated_at = now\(\)`).
		WithArgs(postID, pgxmock.AnyArg()).
		WillReturnRows(postRows(0, 2, false, `[{"author":"Bob","text":"first","time":"2025-01-10T12:00:00Z"},{"author":"Eve","text":"second","time":"2025-01-10T12:01:00Z"}]`))

	post, err := New(mock).Post.AppendComment(context.Background(), postID, model.Comment{Author: "Eve", Text: "second", Time: time.Now()})
	require.NoError(t, err)
	require.Len(t, post.Comments, 2)
	assert.Equal(t, "first", post.Comments[0].Text)
	assert.Equal(t, "second", post.Comments[1].Text)
	assert.Equal(t, int64(2), post.Replies)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostToggleFlag(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(`UPDATE posts SET flagged = NOT flagged`).
		WithArgs(postID).
		WillReturnRows(postRows(0, 0, true, `[]`))

	post, err := New(mock).Post.ToggleFlag(context.Background(), postID)
	require.NoError(t, err)
	assert.True(t, post.Flagged)
}

func TestPostToggleFlagError(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(`UPDATE posts SET flagged`).
		WithArgs(postID).
		WillReturnError(errDB)

	_, err := New(mock).Post.ToggleFlag(context.Background(), postID)
	assert.ErrorIs(t, err, errDB)
}
