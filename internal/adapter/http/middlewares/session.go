// Package middlewares holds the gin middlewares of the HTTP adapter.
package middlewares

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

// SessionCookieName is the operator session cookie.
const SessionCookieName = "siign_session"

// RequireSession validates the HS256 session cookie issued by the login
// handler and aborts with 401 otherwise. The webhook route is not behind this
// guard, it authenticates with the shared secret instead.
func RequireSession(sessionSecret []byte) gin.HandlerFunc {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	return func(c *gin.Context) {
		raw, err := c.Cookie(SessionCookieName)
		if err != nil || raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "login required"})
			return
		}

		var claims jwt.RegisteredClaims
		token, err := parser.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
			if t.Method != jwt.SigningMethodHS256 {
				return nil, errors.New("unexpected signing method")
			}
			return sessionSecret, nil
		})
		if err != nil || !token.Valid || claims.Subject != "operator" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid or expired session"})
			return
		}

		c.Next()
	}
}
