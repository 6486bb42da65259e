package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/francois2metz/siign/internal/adapter/http/middlewares"
)

func newAuthRouter(operatorPassword string, sessionSecret []byte) *gin.Engine {
	r := gin.New()
	h := NewAuthHandler(operatorPassword, sessionSecret)
	r.POST("/v1/login", h.Login)
	r.POST("/v1/logout", h.Logout)
	guarded := r.Group("/v1/quotes", middlewares.RequireSession(sessionSecret))
	guarded.GET("", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func login(t *testing.T, r *gin.Engine, password string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/login", bytes.NewBufferString(`{"password":"`+password+`"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)
	secret := []byte("session-secret")

	t.Run("valid password issues a working session", func(t *testing.T) {
		r := newAuthRouter("hunter2", secret)

		w := login(t, r, "hunter2")
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
		cookies := w.Result().Cookies()
		var session *http.Cookie
		for _, c := range cookies {
			if c.Name == middlewares.SessionCookieName {
				session = c
			}
		}
		if session == nil || session.Value == "" {
			t.Fatal("expected a session cookie")
		}

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes", nil)
		req.AddCookie(session)
		w = httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected the cookie to pass the guard, got %d", w.Code)
		}
	})

	t.Run("bad password", func(t *testing.T) {
		r := newAuthRouter("hunter2", secret)

		if w := login(t, r, "wrong"); w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("empty configured password rejects everything", func(t *testing.T) {
		r := newAuthRouter("", secret)

		if w := login(t, r, ""); w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("missing payload", func(t *testing.T) {
		r := newAuthRouter("hunter2", secret)

		req := httptest.NewRequest(http.MethodPost, "/v1/login", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestRequireSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := newAuthRouter("hunter2", []byte("session-secret"))

	t.Run("no cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/quotes", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("garbage cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/quotes", nil)
		req.AddCookie(&http.Cookie{Name: middlewares.SessionCookieName, Value: "not-a-jwt"})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("cookie signed with another secret", func(t *testing.T) {
		other := newAuthRouter("hunter2", []byte("other-secret"))
		w := login(t, other, "hunter2")
		cookies := w.Result().Cookies()

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes", nil)
		for _, c := range cookies {
			req.AddCookie(c)
		}
		w = httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}
