package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"clinic-backend/internal/apperr"
	"clinic-backend/internal/models"
	"clinic-backend/internal/services"
	"clinic-backend/pkg/utils"
)

// Context keys set by RequireSession.
const (
	SessionKey = "session"
	TokenKey   = "sessionToken"
)

// BearerToken returns the token from "Authorization: Bearer <token>", or ""
// when the header is missing or malformed.
func BearerToken(c *gin.Context) string {
	parts := strings.Split(c.GetHeader("Authorization"), " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

// RequireSession lets the request through only with a live session of class.
// Anyone else is sent to that class's login entry point without a body.
func RequireSession(sessions *services.SessionAuthority, class models.AccountClass) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c)
		session, err := sessions.Require(c.Request.Context(), token, class)
		if err != nil {
			if apperr.Is(err, apperr.CodeUnauthorized) {
				c.Header("Location", class.LoginPath())
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}
			utils.ErrorResponse(c, err)
			c.Abort()
			return
		}

		c.Set(SessionKey, session)
		c.Set(TokenKey, token)
		c.Next()
	}
}

// CurrentSession returns the session stored by RequireSession.
func CurrentSession(c *gin.Context) *models.Session {
	v, ok := c.Get(SessionKey)
	if !ok {
		return nil
	}
	session, _ := v.(*models.Session)
	return session
}
