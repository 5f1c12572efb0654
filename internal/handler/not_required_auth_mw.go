package handler

import (
	"strings"

	"github.com/KannamTejaswi311/NutriTrack/internal/model"
	"github.com/KannamTejaswi311/NutriTrack/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// notRequiredAuthMiddleware attaches the bearer identity when a valid token
// is presented. Requests without one, or with an invalid one, continue
// anonymously.
func (h *Handler) notRequiredAuthMiddleware(c *gin.Context) {
	if h.opts.JWTSecret == "" {
		c.Next()
		return
	}

	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		c.Next()
		return
	}

	accessToken := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	if accessToken == "" {
		c.Next()
		return
	}

	claims, err := utils.DecodeJWT(accessToken, []byte(h.opts.JWTSecret))
	if err != nil {
		h.logger.Sugar().Debugf("ignoring bearer token: %s", err.Error())
		c.Next()
		return
	}

	c.Set(identityKey, identityFromClaims(claims))

	c.Next()
}

// identityFromClaims reads the sub, name and role claims. Missing or
// non-string claims are left empty.
func identityFromClaims(claims jwt.MapClaims) model.Identity {
	str := func(key string) string {
		value, _ := claims[key].(string)
		return value
	}

	return model.Identity{
		Subject: str("sub"),
		Name:    str("name"),
		Role:    str("role"),
	}
}
