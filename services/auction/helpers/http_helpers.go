package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"auction-house/internal/auctionerrors"
	"auction-house/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrProductNotFound):
		return http.StatusNotFound, "product not found"
	case errors.Is(err, auctionerrors.ErrInvalidBid):
		return http.StatusBadRequest, "invalid bid details"
	case errors.Is(err, auctionerrors.ErrBidTooLow):
		return http.StatusConflict, "bid amount too low"
	case errors.Is(err, auctionerrors.ErrAlreadyBid):
		return http.StatusConflict, "bidder already bid on this product"
	case errors.Is(err, auctionerrors.ErrAuctionNotStarted):
		return http.StatusForbidden, "auction has not started"
	case errors.Is(err, auctionerrors.ErrAuctionEnded):
		return http.StatusGone, "auction has ended"
	case errors.Is(err, auctionerrors.ErrInvalidWindow):
		return http.StatusBadRequest, "invalid auction window"
	case errors.Is(err, auctionerrors.ErrNoWindow):
		return http.StatusConflict, "auction window not configured"
	case errors.Is(err, auctionerrors.ErrNoBids):
		return http.StatusOK, "no bids found for product"
	case errors.Is(err, auctionerrors.ErrBidderNoBids):
		return http.StatusOK, "no bids found for bidder"
	case errors.Is(err, auctionerrors.ErrPersistence):
		return http.StatusServiceUnavailable, "service temporarily unavailable, try again"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// ClientSafeError decides what error text leaves the service. Infra
// failures keep their detail in the logs only; the client gets the
// generic message so a storage outage is never mistaken for a domain
// rejection.
func ClientSafeError(status int, err error, message string) error {
	if status >= http.StatusInternalServerError {
		return errors.New(message)
	}
	return err
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
