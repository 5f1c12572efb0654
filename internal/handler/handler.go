package handler

import (
	"net/http"

	"github.com/KannamTejaswi311/NutriTrack/internal/model"
	"github.com/KannamTejaswi311/NutriTrack/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const identityKey = "identity"

type Options struct {
	ClientOrigin string
	// JWTSecret enables bearer identities. Tokens are ignored when empty.
	JWTSecret string
}

type Handler struct {
	services *service.Service
	logger   *zap.Logger
	opts     Options
}

func New(services *service.Service, logger *zap.Logger, opts Options) *Handler {
	return &Handler{
		services: services,
		logger:   logger,
		opts:     opts,
	}
}

func (h *Handler) InitRoutes() *gin.Engine {
	registerValidators()

	r := gin.New()

	r.Use(h.recoveryMiddleware, h.requestLoggerMiddleware)
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{h.opts.ClientOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		posts := api.Group("/posts")
		{
			posts.GET("", h.postsList)
			posts.POST("", h.postsCreate)

			post := posts.Group("/:id")
			{
				post.PUT("/like", h.postsLike)
				post.PUT("/reply", h.postsReply)
				post.PUT("/comment", h.postsComment)
				post.POST("/comment", h.postsComment)
				post.PUT("/flag", h.postsFlag)
			}
		}

		questions := api.Group("/questions")
		{
			questions.GET("", h.questionsList)
			questions.POST("", h.questionsAsk)
			questions.POST("/:id/answer", h.notRequiredAuthMiddleware, h.questionsAnswer)
		}

		meals := api.Group("/meals")
		{
			meals.GET("/catalog", h.mealsCatalog)
			meals.POST("/suggestions", h.mealsSuggest)
		}
	}

	return r
}

func (h *Handler) getIdentityFromRequest(c *gin.Context) *model.Identity {
	identityReq, exists := c.Get(identityKey)
	if !exists {
		return nil
	}

	identity, ok := identityReq.(model.Identity)
	if !ok {
		return nil
	}

	return &identity
}
