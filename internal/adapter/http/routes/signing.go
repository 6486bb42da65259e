package routes

import (
	"github.com/francois2metz/siign/internal/adapter/http/handlers"
	"github.com/francois2metz/siign/internal/adapter/http/middlewares"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes  = "/quotes"
	PathWebhook = "/webhook"
)

func addSigningRoutes(r *gin.Engine, webhookHandler *handlers.WebhookHandler, signingHandler *handlers.SigningHandler, authHandler *handlers.AuthHandler, sessionSecret []byte) {
	// Docage callbacks authenticate with the shared secret, never a session.
	r.POST(PathWebhook, webhookHandler.HandleWebhook)

	v1 := r.Group("/v1")
	v1.POST("/login", authHandler.Login)
	v1.POST("/logout", authHandler.Logout)

	quotes := v1.Group(PathQuotes, middlewares.RequireSession(sessionSecret))
	{
		quotes.GET("", signingHandler.ListQuotes)
		quotes.POST("/:id/transaction", signingHandler.LaunchTransaction)
		quotes.DELETE("/:id/transaction", signingHandler.CancelTransaction)
	}
}
