package handlers

import (
	"errors"
	"net/http"

	request "github.com/francois2metz/siign/internal/adapter/http/dto/request"
	"github.com/francois2metz/siign/internal/usecase"
	"github.com/francois2metz/siign/internal/usecase/interfaces"
	"github.com/francois2metz/siign/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidWebhookPayload = pkg.NewDomainErrorSimple("INVALID_WEBHOOK_PAYLOAD", "Invalid webhook payload", http.StatusBadRequest)

// WebhookHandler receives Docage transaction lifecycle callbacks.

type WebhookHandler struct {
	usecase usecase.IReconciliationUseCase
}

func NewWebhookHandler(uc usecase.IReconciliationUseCase) *WebhookHandler {
	return &WebhookHandler{usecase: uc}
}

// HandleWebhook processes a transaction status callback.
//
// The shared secret travels as a query parameter on the callback URL that
// siign registered when the transaction was created.
//
// @Summary     Docage status webhook
// @Accept      json
// @Param       secret  query  string                  true  "shared webhook secret"
// @Param       event   body   request.WebhookRequest  true  "transaction event"
// @Success     200 {object} map[string]string
// @Failure     403 {object} pkg.HTTPError
// @Failure     404 {object} pkg.HTTPError
// @Router      /webhook [post]
func (h *WebhookHandler) HandleWebhook(c *gin.Context) {
	secret := c.Query("secret")

	var payload request.WebhookRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWebhookPayload.HTTPStatus, errInvalidWebhookPayload.ToHTTPError())
		return
	}

	err := h.usecase.HandleWebhook(c.Request.Context(), secret, usecase.WebhookEvent{
		TransactionID: payload.ID,
		StatusCode:    payload.Status,
		Name:          payload.Name,
	})
	if err != nil {
		appErr := mapWebhookError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func mapWebhookError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWebhookSecret):
		return pkg.NewDomainErrorSimple("INVALID_SECRET", "Invalid webhook secret", http.StatusForbidden)
	case errors.Is(err, interfaces.ErrTransactionNotFound):
		return pkg.NewDomainErrorSimple("TRANSACTION_NOT_FOUND", "Transaction not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAssociationNotFound):
		return pkg.NewDomainErrorSimple("ASSOCIATION_NOT_FOUND", "No quote associated with this transaction", http.StatusNotFound)
	case errors.Is(err, interfaces.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
