package dto

type AskQuestionRequest struct {
	Question string `json:"question" binding:"notblank"`
	AskedBy  string `json:"askedBy"`
}

type GetQuestionsRequest struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}

// AnswerQuestionRequest leaves answeredBy unchecked at bind time because a
// bearer token may supply it.
type AnswerQuestionRequest struct {
	Answer     string `json:"answer" binding:"notblank"`
	AnsweredBy string `json:"answeredBy"`
	Role       string `json:"role"`
}
