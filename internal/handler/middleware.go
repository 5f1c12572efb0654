package handler

import (
	"net/http"
	"runtime/debug"
	"time"

	"github.com/KannamTejaswi311/NutriTrack/internal/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (h *Handler) recoveryMiddleware(c *gin.Context) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error("panic while handling request",
				zap.Any("error", r),
				zap.String("path", c.Request.URL.Path),
				zap.String("stack", string(debug.Stack())))

			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewBasicResponse(false, errInternal.Error()))
		}
	}()
	c.Next()
}

func (h *Handler) requestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next()

	h.logger.Info("request",
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.Int("status", c.Writer.Status()),
		zap.Duration("latency", time.Since(start)),
		zap.String("client_ip", c.ClientIP()))
}
