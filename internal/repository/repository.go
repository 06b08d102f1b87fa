package repository

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=repository

import (
	"context"

	"auction-house/internal/auctionwindow"
	model "auction-house/internal/models"
)

// AuctionDB defines the storage contract for the auction system: the
// product catalog, the append-only bid ledger and the singleton auction
// window. Implementations must treat ReplaceWindow as all-or-nothing.
type AuctionDB interface {
	GetProduct(ctx context.Context, productID string) (model.Product, error)
	ListProducts(ctx context.Context) ([]model.Product, error)

	RecordBid(ctx context.Context, bid model.Bid) error
	GetBidsByProduct(ctx context.Context, productID string) ([]model.Bid, error)
	GetWinningBid(ctx context.Context, productID string) (model.Bid, error)
	GetWinningBids(ctx context.Context) (map[string]model.Bid, error)
	GetBidsByBidder(ctx context.Context, bidderEmail string) ([]model.BidWithProduct, error)
	HasBidderBid(ctx context.Context, productID, bidderEmail string) (bool, error)

	GetWindow(ctx context.Context) (auctionwindow.Window, error)
	ReplaceWindow(ctx context.Context, w auctionwindow.Window) error
}
