package handlers

import (
	"net/http"
	"time"

	request "github.com/francois2metz/siign/internal/adapter/http/dto/request"
	"github.com/francois2metz/siign/internal/adapter/http/middlewares"
	"github.com/francois2metz/siign/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

var (
	errInvalidLoginPayload = pkg.NewDomainErrorSimple("INVALID_LOGIN_PAYLOAD", "Invalid login payload", http.StatusBadRequest)
	errBadCredentials      = pkg.NewDomainErrorSimple("BAD_CREDENTIALS", "Bad credentials", http.StatusForbidden)
)

const sessionTTL = 24 * time.Hour

// AuthHandler implements the single-operator login. The password is the
// Tiime password, as in the original ERB front; a successful login issues a
// short-lived HS256 session cookie.

type AuthHandler struct {
	operatorPassword string
	sessionSecret    []byte
}

func NewAuthHandler(operatorPassword string, sessionSecret []byte) *AuthHandler {
	return &AuthHandler{operatorPassword: operatorPassword, sessionSecret: sessionSecret}
}

// Login checks the operator password and sets the session cookie.
//
// @Summary     Operator login
// @Accept      json
// @Param       credentials  body  request.LoginRequest  true  "operator password"
// @Success     204
// @Failure     403 {object} pkg.HTTPError
// @Router      /v1/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLoginPayload.HTTPStatus, errInvalidLoginPayload.ToHTTPError())
		return
	}

	if h.operatorPassword == "" || payload.Password != h.operatorPassword {
		c.JSON(errBadCredentials.HTTPStatus, errBadCredentials.ToHTTPError())
		return
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "operator",
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(sessionTTL)),
	})
	signed, err := token.SignedString(h.sessionSecret)
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.SetCookie(middlewares.SessionCookieName, signed, int(sessionTTL.Seconds()), "/", "", false, true)
	c.Status(http.StatusNoContent)
}

// Logout clears the session cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(middlewares.SessionCookieName, "", -1, "/", "", false, true)
	c.Status(http.StatusNoContent)
}
