package handlers

import (
	"errors"
	"net/http"
	"net/url"

	response "github.com/francois2metz/siign/internal/adapter/http/dto/response"
	"github.com/francois2metz/siign/internal/usecase"
	"github.com/francois2metz/siign/internal/usecase/interfaces"
	"github.com/francois2metz/siign/pkg"

	"github.com/gin-gonic/gin"
)

// SigningHandler exposes the quote board and the launch/cancel flow.

type SigningHandler struct {
	usecase usecase.ISigningUseCase

	// Webhook callback registered on every created transaction. Empty base
	// URL means transactions are created without a callback.
	webhookBaseURL string
	webhookSecret  string
	testMode       bool
}

func NewSigningHandler(uc usecase.ISigningUseCase, webhookBaseURL, webhookSecret string, testMode bool) *SigningHandler {
	return &SigningHandler{
		usecase:        uc,
		webhookBaseURL: webhookBaseURL,
		webhookSecret:  webhookSecret,
		testMode:       testMode,
	}
}

// ListQuotes returns every Tiime quote joined with its transaction.
//
// @Summary     Quote board
// @Produce     json
// @Success     200 {array} response.QuoteBoardEntry
// @Router      /v1/quotes [get]
func (h *SigningHandler) ListQuotes(c *gin.Context) {
	board, err := h.usecase.ListQuotes(c.Request.Context())
	if err != nil {
		appErr := mapSigningError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuoteBoard(board))
}

// LaunchTransaction pushes the quote to Docage for signature.
//
// @Summary     Launch a signature transaction
// @Produce     json
// @Param       id  path  string  true  "quote id"
// @Success     201 {object} response.TransactionResponse
// @Failure     403 {object} pkg.HTTPError
// @Failure     404 {object} pkg.HTTPError
// @Failure     409 {object} pkg.HTTPError
// @Router      /v1/quotes/{id}/transaction [post]
func (h *SigningHandler) LaunchTransaction(c *gin.Context) {
	quoteID := c.Param("id")

	transactionID, err := h.usecase.Launch(c.Request.Context(), quoteID, h.webhookURL(), h.testMode)
	if err != nil {
		appErr := mapSigningError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.TransactionResponse{QuoteID: quoteID, TransactionID: transactionID})
}

// CancelTransaction aborts the quote's transaction at Docage and forgets the
// association.
//
// @Summary     Cancel a signature transaction
// @Produce     json
// @Param       id  path  string  true  "quote id"
// @Success     204
// @Failure     403 {object} pkg.HTTPError
// @Failure     404 {object} pkg.HTTPError
// @Router      /v1/quotes/{id}/transaction [delete]
func (h *SigningHandler) CancelTransaction(c *gin.Context) {
	if err := h.usecase.Cancel(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapSigningError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *SigningHandler) webhookURL() string {
	if h.webhookBaseURL == "" {
		return ""
	}
	return h.webhookBaseURL + "/webhook?secret=" + url.QueryEscape(h.webhookSecret)
}

func mapSigningError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotSignable):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_SIGNABLE", "Quote status does not allow this operation", http.StatusForbidden)
	case errors.Is(err, interfaces.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, interfaces.ErrTransactionNotFound):
		return pkg.NewDomainErrorSimple("TRANSACTION_NOT_FOUND", "Transaction not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAssociationNotFound):
		return pkg.NewDomainErrorSimple("ASSOCIATION_NOT_FOUND", "Quote has no signature transaction", http.StatusNotFound)
	case errors.Is(err, interfaces.ErrAssociationExists):
		return pkg.NewDomainErrorSimple("ASSOCIATION_ALREADY_EXISTS", "Quote already has a signature transaction", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
