package handler

import (
	"net/http"
	"strings"

	"github.com/KannamTejaswi311/NutriTrack/internal/dto"
	"github.com/gin-gonic/gin"
)

func (h *Handler) questionsList(c *gin.Context) {
	var input dto.GetQuestionsRequest
	if err := c.ShouldBindQuery(&input); err != nil {
		h.respondBindError(c, err)
		return
	}

	questions, err := h.services.Question.List(c.Request.Context(), input.Limit, input.Offset)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, questions)
}

func (h *Handler) questionsAsk(c *gin.Context) {
	var input dto.AskQuestionRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		h.respondBindError(c, err)
		return
	}

	question, err := h.services.Question.Ask(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, question)
}

func (h *Handler) questionsAnswer(c *gin.Context) {
	var input dto.AnswerQuestionRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		h.respondBindError(c, err)
		return
	}

	if identity := h.getIdentityFromRequest(c); identity != nil {
		if identity.Name != "" {
			input.AnsweredBy = identity.Name
		}
		if identity.Role != "" {
			input.Role = identity.Role
		}
	}

	question, err := h.services.Question.Answer(c.Request.Context(), strings.TrimSpace(c.Param("id")), input)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, question)
}
