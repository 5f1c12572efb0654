package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/KannamTejaswi311/NutriTrack/internal/model"
	"github.com/KannamTejaswi311/NutriTrack/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const questionID = "7d1e2a0c-5b8e-4b7f-8d1a-2f3c4b5a6d7e"

func TestQuestionCreate(t *testing.T) {
	mock := newMock(t)
	mock.ExpectExec(`INSERT INTO questions`).
		WithArgs(pgxmock.AnyArg(), "Is ragi good for kids?", "Meena", pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	question, err := New(mock).Question.Create(context.Background(), model.Question{Question: "Is ragi good for kids?", AskedBy: "Meena"})
	require.NoError(t, err)
	assert.NotEmpty(t, question.ID)
	assert.NotNil(t, question.Answers)
	assert.Equal(t, question.CreatedAt, question.CreatedAt.Truncate(time.Microsecond))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuestionFind(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(`SELECT id, question, asked_by, answers, created_at\s+FROM questions`).
		WithArgs(20, 0).
		WillReturnRows(pgxmock.NewRows([]string{"id", "question", "asked_by", "answers", "created_at"}).
			AddRow(questionID, "Is ragi good for kids?", "Meena", []byte(`[]`), time.Now()))

	questions, err := New(mock).Question.Find(context.Background(), 20, 0)
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Empty(t, questions[0].Answers)
}

func TestQuestionFindError(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(`FROM questions`).WillReturnError(errDB)

	_, err := New(mock).Question.Find(context.Background(), 20, 0)
	assert.ErrorIs(t, err, errDB)
}

func TestQuestionAppendAnswer(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(`UPDATE questions SET answers = answers \|\| jsonb_build_array\(\$2::jsonb\)`).
		WithArgs(questionID, pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"id", "question", "asked_by", "answers", "created_at"}).
			AddRow(questionID, "Is ragi good for kids?", "Meena", []byte(`[{"answer":"Yes","answeredBy":"Asha","role":"asha","verified":true,"time":"2025-01-10T12:00:00Z"}]`), time.Now()))

	question, err := New(mock).Question.AppendAnswer(context.Background(), questionID, model.Answer{Answer: "Yes", AnsweredBy: "Asha", Role: "asha", Verified: true})
	require.NoError(t, err)
	require.Len(t, question.Answers, 1)
	assert.True(t, question.Answers[0].Verified)
}

func TestQuestionAppendAnswerNotFound(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(`UPDATE questions`).
		WithArgs(questionID, pgxmock.AnyArg()).
		WillReturnError(pgx.ErrNoRows)

	_, err := New(mock).Question.AppendAnswer(context.Background(), questionID, model.Answer{Answer: "Yes"})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = New(mock).Question.AppendAnswer(context.Background(), "bogus", model.Answer{Answer: "Yes"})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
