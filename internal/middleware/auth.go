package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"nursery_manager/internal/auth"

	"github.com/gin-gonic/gin"
)

const sessionKey = "session"

// Authenticate verifies the bearer token and loads the session it names.
// The loaded session is the only identity handlers see.
func Authenticate(issuer *auth.TokenIssuer, store auth.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "Authorization header required")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			abortUnauthorized(c, "Bearer token required")
			return
		}

		claims, err := issuer.Verify(tokenString)
		if err != nil {
			abortUnauthorized(c, "Could not validate credentials")
			return
		}

		session, err := store.LoadSession(c.Request.Context(), claims.SessionID)
		if err != nil {
			if errors.Is(err, auth.ErrSessionNotFound) {
				abortUnauthorized(c, "Session expired or logged out")
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"detail": "Failed to load session"})
			return
		}
		if session.Username != claims.Subject || session.Expired(time.Now()) {
			abortUnauthorized(c, "Session expired or logged out")
			return
		}

		c.Set(sessionKey, session)
		c.Next()
	}
}

// Require rejects sessions whose role lacks the capability.
func Require(capability auth.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !CurrentSession(c).Can(capability) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"detail": "Not enough permissions"})
			return
		}
		c.Next()
	}
}

// CurrentSession returns the session set by Authenticate, or nil.
func CurrentSession(c *gin.Context) *auth.Session {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil
	}
	session, _ := v.(*auth.Session)
	return session
}

func abortUnauthorized(c *gin.Context, detail string) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": detail})
}
