package handler

import (
	"net/http"

	"github.com/KannamTejaswi311/NutriTrack/internal/dto"
	"github.com/gin-gonic/gin"
)

func (h *Handler) mealsCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Meal.Catalog())
}

func (h *Handler) mealsSuggest(c *gin.Context) {
	var input dto.SuggestMealsRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		h.respondBindError(c, err)
		return
	}

	suggestions, err := h.services.Meal.Suggest(input)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, suggestions)
}
