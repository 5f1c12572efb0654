// Package client is a typed HTTP client for the NutriTrack API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/KannamTejaswi311/NutriTrack/internal/dto"
	"github.com/KannamTejaswi311/NutriTrack/internal/mealmatch"
	"github.com/KannamTejaswi311/NutriTrack/internal/model"
)

// ApiError is a non-2xx response decoded from the server's error body.
type ApiError struct {
	Status  int
	Details string
	Field   string
}

func (e *ApiError) Error() string {
	if e.Details == "" {
		return fmt.Sprintf("request failed with status %d", e.Status)
	}
	return fmt.Sprintf("request failed with status %d: %s", e.Status, e.Details)
}

func (e *ApiError) NotFound() bool {
	return e.Status == http.StatusNotFound
}

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

type Option func(*Client)

func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) do(ctx context.Context, method string, path string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		reqBytes, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("error marshalling request: %v", err)
		}
		reader = bytes.NewReader(reqBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("error creating request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error sending request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		apiErr := &ApiError{Status: resp.StatusCode}
		var basic dto.BasicResponse
		if err := json.Unmarshal(errorBody, &basic); err == nil {
			apiErr.Details = basic.Details
			apiErr.Field = basic.Field
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("error decoding response: %v", err)
	}
	return nil
}

func pageQuery(values url.Values, limit int, offset int) string {
	if limit > 0 {
		values.Set("limit", strconv.Itoa(limit))
	}
	if offset > 0 {
		values.Set("offset", strconv.Itoa(offset))
	}
	if len(values) == 0 {
		return ""
	}
	return "?" + values.Encode()
}

func (c *Client) ListPosts(ctx context.Context, filter model.PostFilter) ([]model.Post, error) {
	values := url.Values{}
	if filter.Type != "" {
		values.Set("type", filter.Type)
	}

	var posts []model.Post
	if err := c.do(ctx, http.MethodGet, "/api/posts"+pageQuery(values, filter.Limit, filter.Offset), nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (c *Client) CreatePost(ctx context.Context, input dto.CreatePostRequest) (*model.Post, error) {
	var post model.Post
	if err := c.do(ctx, http.MethodPost, "/api/posts", input, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *Client) LikePost(ctx context.Context, id string) (*model.Post, error) {
	var post model.Post
	if err := c.do(ctx, http.MethodPut, "/api/posts/"+url.PathEscape(id)+"/like", nil, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *Client) ReplyPost(ctx context.Context, id string) (*model.Post, error) {
	var post model.Post
	if err := c.do(ctx, http.MethodPut, "/api/posts/"+url.PathEscape(id)+"/reply", nil, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *Client) CommentOnPost(ctx context.Context, id string, input dto.CreateCommentRequest) (*model.Post, error) {
	var post model.Post
	if err := c.do(ctx, http.MethodPost, "/api/posts/"+url.PathEscape(id)+"/comment", input, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *Client) ToggleFlag(ctx context.Context, id string) (*model.Post, error) {
	var post model.Post
	if err := c.do(ctx, http.MethodPut, "/api/posts/"+url.PathEscape(id)+"/flag", nil, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *Client) ListQuestions(ctx context.Context, limit int, offset int) ([]model.Question, error) {
	var questions []model.Question
	if err := c.do(ctx, http.MethodGet, "/api/questions"+pageQuery(url.Values{}, limit, offset), nil, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

func (c *Client) AskQuestion(ctx context.Context, input dto.AskQuestionRequest) (*model.Question, error) {
	var question model.Question
	if err := c.do(ctx, http.MethodPost, "/api/questions", input, &question); err != nil {
		return nil, err
	}
	return &question, nil
}

func (c *Client) AnswerQuestion(ctx context.Context, id string, input dto.AnswerQuestionRequest) (*model.Question, error) {
	var question model.Question
	if err := c.do(ctx, http.MethodPost, "/api/questions/"+url.PathEscape(id)+"/answer", input, &question); err != nil {
		return nil, err
	}
	return &question, nil
}

func (c *Client) Catalog(ctx context.Context) ([]mealmatch.Recipe, error) {
	var recipes []mealmatch.Recipe
	if err := c.do(ctx, http.MethodGet, "/api/meals/catalog", nil, &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

func (c *Client) SuggestMeals(ctx context.Context, input dto.SuggestMealsRequest) (*dto.SuggestMealsResponse, error) {
	var resp dto.SuggestMealsResponse
	if err := c.do(ctx, http.MethodPost, "/api/meals/suggestions", input, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
