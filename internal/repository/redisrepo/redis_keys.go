package redisrepo

import "fmt"

const (
	POSTS_KEY                = "posts:%d:%s:%d:%d" // <generation>:<type>:<limit>:<offset>
	POSTS_PATTERN            = "posts:*"
	POSTS_GENERATION_KEY     = "generation:posts"
	QUESTIONS_KEY            = "questions:%d:%d:%d" // <generation>:<limit>:<offset>
	QUESTIONS_PATTERN        = "questions:*"
	QUESTIONS_GENERATION_KEY = "generation:questions"
)

func PostsKey(generation int64, postType string, limit int, offset int) string {
	if postType == "" {
		postType = "all"
	}
	return fmt.Sprintf(POSTS_KEY, generation, postType, limit, offset)
}

func QuestionsKey(generation int64, limit int, offset int) string {
	return fmt.Sprintf(QUESTIONS_KEY, generation, limit, offset)
}
