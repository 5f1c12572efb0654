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

const questionColumns = "id, question, asked_by, answers, created_at"

type questionRepo struct {
	db db.Querier
}

func newQuestionRepo(db db.Querier) repository.Question {
	return &questionRepo{
		db: db,
	}
}

func (r *questionRepo) Create(ctx context.Context, question model.Question) (*model.Question, error) {
	question.ID = uuid.NewString()
	question.Answers = []model.Answer{}
	question.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)

	if _, err := r.db.Exec(
		ctx,
		"INSERT INTO questions(id, question, asked_by, answers, created_at) VALUES($1, $2, $3, '[]'::jsonb, $4)",
		question.ID,
		question.Question,
		question.AskedBy,
		question.CreatedAt,
	); err != nil {
		return nil, err
	}

	return &question, nil
}

func (r *questionRepo) Find(ctx context.Context, limit int, offset int) ([]*model.Question, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT `+questionColumns+`
		FROM questions
		ORDER BY created_at DESC
		LIMIT $1
		OFFSET $2`,
		limit,
		offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	questions := []*model.Question{}
	for rows.Next() {
		question, err := scanQuestion(rows)
		if err != nil {
			return nil, err
		}
		questions = append(questions, question)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return questions, nil
}

func (r *questionRepo) AppendAnswer(ctx context.Context, id string, answer model.Answer) (*model.Question, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, repository.ErrNotFound
	}

	answerJSON, err := json.Marshal(answer)
	if err != nil {
		return nil, err
	}

	question, err := scanQuestion(r.db.QueryRow(
		ctx,
		`UPDATE questions SET answers = answers || jsonb_build_array($2::jsonb)
		WHERE id = $1
		RETURNING `+questionColumns,
		id,
		string(answerJSON),
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return question, nil
}

func scanQuestion(row pgx.Row) (*model.Question, error) {
	var (
		question    model.Question
		answersJSON []byte
	)
	if err := row.Scan(
		&question.ID,
		&question.Question,
		&question.AskedBy,
		&answersJSON,
		&question.CreatedAt,
	); err != nil {
		return nil, err
	}

	question.Answers = []model.Answer{}
	if len(answersJSON) > 0 {
		if err := json.Unmarshal(answersJSON, &question.Answers); err != nil {
			return nil, err
		}
	}

	return &question, nil
}
