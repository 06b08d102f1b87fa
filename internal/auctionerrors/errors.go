package auctionerrors

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Repository-level errors
var (
	ErrProductNotFound = errors.New("product not found")
	ErrNoBids          = errors.New("no bids found for product")
	ErrBidderNoBids    = errors.New("bidder has not placed any bids")
	ErrNoWindow        = errors.New("auction window not configured")
	ErrPersistence     = errors.New("storage failure")
)

// business logic errors
var (
	ErrInvalidBid        = errors.New("invalid bid")
	ErrBidTooLow         = errors.New("bid amount too low")
	ErrAuctionNotStarted = errors.New("auction has not started")
	ErrAuctionEnded      = errors.New("auction has ended")
	ErrAlreadyBid        = errors.New("bidder already bid on this product")
	ErrInvalidWindow     = errors.New("invalid auction window")
)

// BidTooLowError carries the minimum acceptable amount so callers can
// re-prompt the bidder with a concrete number. It unwraps to ErrBidTooLow.
type BidTooLowError struct {
	Minimum decimal.Decimal
}

func (e *BidTooLowError) Error() string {
	return fmt.Sprintf("bid amount too low, minimum acceptable bid is %s", e.Minimum.String())
}

func (e *BidTooLowError) Unwrap() error {
	return ErrBidTooLow
}
