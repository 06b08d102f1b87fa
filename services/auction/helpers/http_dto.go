package helpers

import (
	"time"

	"github.com/shopspring/decimal"

	model "auction-house/internal/models"
)

// Request/Response DTOs
type PlaceBidRequest struct {
	ProductID   string          `json:"product_id" binding:"required"`
	BidderEmail string          `json:"bidder_email" binding:"required,email"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
}

type BidResponse struct {
	BidID       string          `json:"bid_id"`
	ProductID   string          `json:"product_id"`
	BidderEmail string          `json:"bidder_email"`
	Amount      decimal.Decimal `json:"amount"`
	CreatedAt   string          `json:"created_at"`
}

type ProductDetailResponse struct {
	Product        model.Product   `json:"product"`
	MinimumNextBid decimal.Decimal `json:"minimum_next_bid"`
	Bids           []model.Bid     `json:"bids"`
}

type UpdateWindowRequest struct {
	StartDate time.Time `json:"start_date" binding:"required"`
	EndDate   time.Time `json:"end_date" binding:"required"`
	IsActive  bool      `json:"is_active"`
}

type WindowResponse struct {
	StartDate        time.Time `json:"start_date"`
	EndDate          time.Time `json:"end_date"`
	IsActive         bool      `json:"is_active"`
	Phase            string    `json:"phase"`
	RemainingSeconds int64     `json:"remaining_seconds"`
}

// NewBidResponse converts a stored bid into its transport shape
func NewBidResponse(bid model.Bid) BidResponse {
	return BidResponse{
		BidID:       bid.BidID,
		ProductID:   bid.ProductID,
		BidderEmail: bid.BidderEmail,
		Amount:      bid.Amount,
		CreatedAt:   bid.CreatedAt.UTC().Format(time.RFC3339),
	}
}
