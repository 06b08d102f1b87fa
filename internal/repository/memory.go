package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"auction-house/internal/auctionerrors"
	"auction-house/internal/auctionwindow"
	model "auction-house/internal/models"
)

// MemoryRepo is a concurrency-safe in-memory implementation of AuctionDB
type MemoryRepo struct {
	mu          sync.RWMutex
	products    map[string]model.Product
	bids        map[string][]model.Bid // key: productID -> bids in insertion order
	bidderBids  map[string][]model.Bid // key: bidderEmail -> bids in insertion order
	window      auctionwindow.Window
	windowValid bool
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		products:   make(map[string]model.Product),
		bids:       make(map[string][]model.Bid),
		bidderBids: make(map[string][]model.Bid),
	}
}

// AddProduct adds a product to the catalog. Used by seeding and tests;
// the service never creates products.
func (r *MemoryRepo) AddProduct(product model.Product) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[product.ProductID] = product
}

// GetProduct returns the catalog entry for a product
func (r *MemoryRepo) GetProduct(_ context.Context, productID string) (model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[productID]
	if !ok {
		return model.Product{}, fmt.Errorf("get product %s: %w", productID, auctionerrors.ErrProductNotFound)
	}
	return product, nil
}

// ListProducts returns the full catalog ordered by product ID
func (r *MemoryRepo) ListProducts(_ context.Context) ([]model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		products = append(products, p)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ProductID < products[j].ProductID })
	return products, nil
}

// RecordBid appends a bid to the ledger. Existing entries are never
// mutated or removed.
func (r *MemoryRepo) RecordBid(_ context.Context, bid model.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[bid.ProductID]; !ok {
		return fmt.Errorf("record bid for product %s: %w", bid.ProductID, auctionerrors.ErrProductNotFound)
	}

	r.bids[bid.ProductID] = append(r.bids[bid.ProductID], bid)
	r.bidderBids[bid.BidderEmail] = append(r.bidderBids[bid.BidderEmail], bid)
	return nil
}

// GetBidsByProduct returns all bids for a product, newest first
func (r *MemoryRepo) GetBidsByProduct(_ context.Context, productID string) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bids, ok := r.bids[productID]
	if !ok || len(bids) == 0 {
		return nil, fmt.Errorf("get bids for product %s: %w", productID, auctionerrors.ErrNoBids)
	}

	out := append([]model.Bid(nil), bids...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// GetWinningBid returns the highest bid for a product. Ties on amount
// go to the earliest bid.
func (r *MemoryRepo) GetWinningBid(_ context.Context, productID string) (model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.winningBidLocked(productID)
}

func (r *MemoryRepo) winningBidLocked(productID string) (model.Bid, error) {
	bids, ok := r.bids[productID]
	if !ok || len(bids) == 0 {
		return model.Bid{}, fmt.Errorf("get winning bid for product %s: %w", productID, auctionerrors.ErrNoBids)
	}

	winning := bids[0]
	for _, b := range bids[1:] {
		if b.Amount.GreaterThan(winning.Amount) ||
			(b.Amount.Equal(winning.Amount) && b.CreatedAt.Before(winning.CreatedAt)) {
			winning = b
		}
	}
	return winning, nil
}

// GetWinningBids returns the winner per product, one entry for every
// product that has at least one bid.
func (r *MemoryRepo) GetWinningBids(_ context.Context) (map[string]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	winners := make(map[string]model.Bid, len(r.bids))
	for productID, bids := range r.bids {
		if len(bids) == 0 {
			continue
		}
		winning, err := r.winningBidLocked(productID)
		if err != nil {
			return nil, err
		}
		winners[productID] = winning
	}
	return winners, nil
}

// GetBidsByBidder returns the bidder's bids newest first, each joined
// with its product when the product still resolves.
func (r *MemoryRepo) GetBidsByBidder(_ context.Context, bidderEmail string) ([]model.BidWithProduct, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bids, ok := r.bidderBids[bidderEmail]
	if !ok || len(bids) == 0 {
		return nil, fmt.Errorf("get bids for bidder %s: %w", bidderEmail, auctionerrors.ErrBidderNoBids)
	}

	out := make([]model.BidWithProduct, 0, len(bids))
	for _, b := range bids {
		joined := model.BidWithProduct{Bid: b}
		if product, exists := r.products[b.ProductID]; exists {
			p := product
			joined.Product = &p
		}
		out = append(out, joined)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// HasBidderBid reports whether the bidder already has a bid on the product
func (r *MemoryRepo) HasBidderBid(_ context.Context, productID, bidderEmail string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, b := range r.bidderBids[bidderEmail] {
		if b.ProductID == productID {
			return true, nil
		}
	}
	return false, nil
}

// GetWindow returns the stored auction window
func (r *MemoryRepo) GetWindow(_ context.Context) (auctionwindow.Window, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.windowValid {
		return auctionwindow.Window{}, fmt.Errorf("get auction window: %w", auctionerrors.ErrNoWindow)
	}
	return r.window, nil
}

// ReplaceWindow swaps in a new window. Both timestamps and the flag
// change together or not at all.
func (r *MemoryRepo) ReplaceWindow(_ context.Context, w auctionwindow.Window) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.window = w
	r.windowValid = true
	return nil
}
