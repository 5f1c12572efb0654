package handler

import (
	"net/http"
	"strings"

	"github.com/KannamTejaswi311/NutriTrack/internal/dto"
	"github.com/KannamTejaswi311/NutriTrack/internal/model"
	"github.com/gin-gonic/gin"
)

func (h *Handler) postsList(c *gin.Context) {
	var input dto.GetPostsRequest
	if err := c.ShouldBindQuery(&input); err != nil {
		h.respondBindError(c, err)
		return
	}

	posts, err := h.services.Post.List(c.Request.Context(), model.PostFilter{
		Type:   input.Type,
		Limit:  input.Limit,
		Offset: input.Offset,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

func (h *Handler) postsCreate(c *gin.Context) {
	var input dto.CreatePostRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		h.respondBindError(c, err)
		return
	}

	createdPost, err := h.services.Post.Create(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, createdPost)
}

func (h *Handler) postsLike(c *gin.Context) {
	post, err := h.services.Post.Like(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

func (h *Handler) postsReply(c *gin.Context) {
	post, err := h.services.Post.Reply(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

func (h *Handler) postsComment(c *gin.Context) {
	var input dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		h.respondBindError(c, err)
		return
	}

	post, err := h.services.Post.Comment(c.Request.Context(), strings.TrimSpace(c.Param("id")), input)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

func (h *Handler) postsFlag(c *gin.Context) {
	post, err := h.services.Post.ToggleFlag(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}
