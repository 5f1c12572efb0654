package handler

import (
	"context"

	"github.com/KannamTejaswi311/NutriTrack/internal/dto"
	"github.com/KannamTejaswi311/NutriTrack/internal/mealmatch"
	"github.com/KannamTejaswi311/NutriTrack/internal/model"
	"github.com/KannamTejaswi311/NutriTrack/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) Create(ctx context.Context, input dto.CreatePostRequest) (*model.Post, error) {
	args := m.Called(ctx, input)
	post, _ := args.Get(0).(*model.Post)
	return post, args.Error(1)
}

func (m *MockPostService) List(ctx context.Context, filter model.PostFilter) ([]*model.Post, error) {
	args := m.Called(ctx, filter)
	posts, _ := args.Get(0).([]*model.Post)
	return posts, args.Error(1)
}

func (m *MockPostService) Like(ctx context.Context, id string) (*model.Post, error) {
	args := m.Called(ctx, id)
	post, _ := args.Get(0).(*model.Post)
	return post, args.Error(1)
}

func (m *MockPostService) Reply(ctx context.Context, id string) (*model.Post, error) {
	args := m.Called(ctx, id)
	post, _ := args.Get(0).(*model.Post)
	return post, args.Error(1)
}

func (m *MockPostService) Comment(ctx context.Context, id string, input dto.CreateCommentRequest) (*model.Post, error) {
	args := m.Called(ctx, id, input)
	post, _ := args.Get(0).(*model.Post)
	return post, args.Error(1)
}

func (m *MockPostService) ToggleFlag(ctx context.Context, id string) (*model.Post, error) {
	args := m.Called(ctx, id)
	post, _ := args.Get(0).(*model.Post)
	return post, args.Error(1)
}

func (m *MockPostService) SeedIfEmpty(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

type MockQuestionService struct {
	mock.Mock
}

func (m *MockQuestionService) Ask(ctx context.Context, input dto.AskQuestionRequest) (*model.Question, error) {
	args := m.Called(ctx, input)
	question, _ := args.Get(0).(*model.Question)
	return question, args.Error(1)
}

func (m *MockQuestionService) List(ctx context.Context, limit int, offset int) ([]*model.Question, error) {
	args := m.Called(ctx, limit, offset)
	questions, _ := args.Get(0).([]*model.Question)
	return questions, args.Error(1)
}

func (m *MockQuestionService) Answer(ctx context.Context, id string, input dto.AnswerQuestionRequest) (*model.Question, error) {
	args := m.Called(ctx, id, input)
	question, _ := args.Get(0).(*model.Question)
	return question, args.Error(1)
}

type MockMealService struct {
	mock.Mock
}

func (m *MockMealService) Catalog() []mealmatch.Recipe {
	args := m.Called()
	recipes, _ := args.Get(0).([]mealmatch.Recipe)
	return recipes
}

func (m *MockMealService) Suggest(input dto.SuggestMealsRequest) (*dto.SuggestMealsResponse, error) {
	args := m.Called(input)
	resp, _ := args.Get(0).(*dto.SuggestMealsResponse)
	return resp, args.Error(1)
}

var (
	_ service.Post     = (*MockPostService)(nil)
	_ service.Question = (*MockQuestionService)(nil)
	_ service.Meal     = (*MockMealService)(nil)
)
