package bidding

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"auction-house/internal/auctionerrors"
	"auction-house/internal/auctionwindow"
	"auction-house/internal/keylock"
	model "auction-house/internal/models"
	"auction-house/internal/repository"
	"auction-house/utils"
)

// minIncrement is the factor a new bid must clear over the current
// leader: at least 1% above, never below the starting price.
var minIncrement = decimal.RequireFromString("1.01")

// BidOrder selects the ordering of bid history queries
type BidOrder string

const (
	OrderByTime   BidOrder = "time"   // newest first, for history displays
	OrderByAmount BidOrder = "amount" // highest first, for ranking displays
)

// Config holds the bid-admission policy knobs
type Config struct {
	// AllowMultipleBidsPerBidder selects between the two admission
	// policies: when false a bidder gets one bid per product and a
	// second attempt is rejected; when true re-bidding is allowed and
	// each new bid competes under the minimum-increment rule.
	AllowMultipleBidsPerBidder bool
}

// BiddingService defines the business logic for auction bidding
type BiddingService struct {
	repo   repository.AuctionDB
	config Config
	locks  *keylock.KeyLock
	now    func() time.Time
}

// NewBiddingService creates a new BiddingService instance
func NewBiddingService(repo repository.AuctionDB, config Config) *BiddingService {
	return &BiddingService{
		repo:   repo,
		config: config,
		locks:  keylock.New(),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// PlaceBid validates and records a bidder's bid on a product.
// The read-compute-append sequence runs under a per-product lock so
// two concurrent bids cannot both pass the minimum check against the
// same ledger snapshot.
func (s *BiddingService) PlaceBid(ctx context.Context, productID, bidderEmail string, amount decimal.Decimal) (model.Bid, error) {
	if err := s.validateBid(productID, bidderEmail, amount); err != nil {
		return model.Bid{}, err
	}

	window, err := s.repo.GetWindow(ctx)
	if err != nil {
		return model.Bid{}, fmt.Errorf("service: failed to read auction window: %w", err)
	}
	if err := s.checkWindow(window); err != nil {
		return model.Bid{}, err
	}

	unlock := s.locks.Lock(productID)
	defer unlock()

	product, err := s.repo.GetProduct(ctx, productID)
	if err != nil {
		return model.Bid{}, fmt.Errorf("service: failed to load product %s: %w", productID, err)
	}

	if !s.config.AllowMultipleBidsPerBidder {
		alreadyBid, err := s.repo.HasBidderBid(ctx, productID, bidderEmail)
		if err != nil {
			return model.Bid{}, fmt.Errorf("service: failed to check existing bids for %s: %w", bidderEmail, err)
		}
		if alreadyBid {
			return model.Bid{}, fmt.Errorf("service: %w - %s on product %s", auctionerrors.ErrAlreadyBid, bidderEmail, productID)
		}
	}

	minimum, err := s.minimumAmount(ctx, product)
	if err != nil {
		return model.Bid{}, err
	}
	if amount.LessThan(minimum) {
		return model.Bid{}, fmt.Errorf("service: bid %s on product %s: %w", amount, productID, &auctionerrors.BidTooLowError{Minimum: minimum})
	}

	bid := model.Bid{
		BidID:       utils.GenerateID(),
		ProductID:   productID,
		BidderEmail: bidderEmail,
		Amount:      amount,
		CreatedAt:   s.now(),
	}

	if err := s.repo.RecordBid(ctx, bid); err != nil {
		return model.Bid{}, fmt.Errorf("service: failed to record bid for product %s by %s: %w", productID, bidderEmail, err)
	}

	return bid, nil
}

// validateBid checks input validity for bidding
func (s *BiddingService) validateBid(productID, bidderEmail string, amount decimal.Decimal) error {
	if productID == "" {
		return fmt.Errorf("service: %w - missing product ID", auctionerrors.ErrInvalidBid)
	}
	if _, err := mail.ParseAddress(bidderEmail); err != nil {
		return fmt.Errorf("service: %w - bidder identity is not a valid email", auctionerrors.ErrInvalidBid)
	}
	if !amount.IsPositive() {
		return fmt.Errorf("service: %w - non-positive bid amount", auctionerrors.ErrInvalidBid)
	}
	return nil
}

// checkWindow gates bidding on the auction window, distinguishing a
// not-yet-open auction from a finished or deactivated one.
func (s *BiddingService) checkWindow(window auctionwindow.Window) error {
	now := s.now()
	switch window.PhaseAt(now) {
	case auctionwindow.PhaseNotStarted:
		return fmt.Errorf("service: %w - opens at %s", auctionerrors.ErrAuctionNotStarted, window.StartDate.Format(time.RFC3339))
	case auctionwindow.PhaseEnded:
		return fmt.Errorf("service: %w - closed at %s", auctionerrors.ErrAuctionEnded, window.EndDate.Format(time.RFC3339))
	}
	if !window.IsActive {
		// Deactivated by an administrator while the clock is inside
		// the window; bidders see it as ended.
		return fmt.Errorf("service: %w - auction deactivated", auctionerrors.ErrAuctionEnded)
	}
	return nil
}

// minimumAmount computes the minimum acceptable bid for a product:
// the starting price with no prior bids, otherwise 1% above the
// current leader and never below the starting price.
func (s *BiddingService) minimumAmount(ctx context.Context, product model.Product) (decimal.Decimal, error) {
	winning, err := s.repo.GetWinningBid(ctx, product.ProductID)
	if errors.Is(err, auctionerrors.ErrNoBids) {
		return product.StartingPrice, nil
	}
	if err != nil {
		return decimal.Zero, fmt.Errorf("service: failed to check winning bid: %w", err)
	}

	minimum := winning.Amount.Mul(minIncrement)
	if minimum.LessThan(product.StartingPrice) {
		minimum = product.StartingPrice
	}
	return minimum, nil
}

// MinimumNextBid returns the amount the next bid on a product must
// reach, for display next to the bid form.
func (s *BiddingService) MinimumNextBid(ctx context.Context, productID string) (decimal.Decimal, error) {
	if productID == "" {
		return decimal.Zero, fmt.Errorf("service: %w - empty product ID", auctionerrors.ErrInvalidBid)
	}
	product, err := s.repo.GetProduct(ctx, productID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("service: failed to load product %s: %w", productID, err)
	}
	return s.minimumAmount(ctx, product)
}

// GetBidsForProduct returns all bids for a product in the requested order
func (s *BiddingService) GetBidsForProduct(ctx context.Context, productID string, order BidOrder) ([]model.Bid, error) {
	if productID == "" {
		return nil, fmt.Errorf("service: %w - empty product ID", auctionerrors.ErrInvalidBid)
	}

	bids, err := s.repo.GetBidsByProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for product %s: %w", productID, err)
	}

	if order == OrderByAmount {
		sort.SliceStable(bids, func(i, j int) bool {
			if !bids[i].Amount.Equal(bids[j].Amount) {
				return bids[i].Amount.GreaterThan(bids[j].Amount)
			}
			return bids[i].CreatedAt.Before(bids[j].CreatedAt)
		})
	}
	return bids, nil
}

// GetWinningBid returns the highest bid for a product
func (s *BiddingService) GetWinningBid(ctx context.Context, productID string) (model.Bid, error) {
	if productID == "" {
		return model.Bid{}, fmt.Errorf("service: %w - empty product ID", auctionerrors.ErrInvalidBid)
	}

	winning, err := s.repo.GetWinningBid(ctx, productID)
	if err != nil {
		return model.Bid{}, fmt.Errorf("service: failed to get winning bid for product %s: %w", productID, err)
	}
	return winning, nil
}

// IsWinningBid reports whether the given bid currently leads its product
func (s *BiddingService) IsWinningBid(ctx context.Context, bid model.Bid) (bool, error) {
	winning, err := s.repo.GetWinningBid(ctx, bid.ProductID)
	if errors.Is(err, auctionerrors.ErrNoBids) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("service: failed to get winning bid for product %s: %w", bid.ProductID, err)
	}
	return winning.BidID == bid.BidID, nil
}

// Winners returns the current winner per product, one entry for every
// product with at least one bid. The set is derived at query time,
// never stored.
func (s *BiddingService) Winners(ctx context.Context) (map[string]model.Bid, error) {
	winners, err := s.repo.GetWinningBids(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get winners: %w", err)
	}
	return winners, nil
}

// GetBidsForBidder returns all bids a bidder has placed, product-joined
func (s *BiddingService) GetBidsForBidder(ctx context.Context, bidderEmail string) ([]model.BidWithProduct, error) {
	if _, err := mail.ParseAddress(bidderEmail); err != nil {
		return nil, fmt.Errorf("service: %w - bidder identity is not a valid email", auctionerrors.ErrInvalidBid)
	}

	bids, err := s.repo.GetBidsByBidder(ctx, bidderEmail)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for bidder %s: %w", bidderEmail, err)
	}
	return bids, nil
}

// GetProduct returns a catalog entry
func (s *BiddingService) GetProduct(ctx context.Context, productID string) (model.Product, error) {
	if productID == "" {
		return model.Product{}, fmt.Errorf("service: %w - empty product ID", auctionerrors.ErrInvalidBid)
	}
	product, err := s.repo.GetProduct(ctx, productID)
	if err != nil {
		return model.Product{}, fmt.Errorf("service: failed to load product %s: %w", productID, err)
	}
	return product, nil
}

// ListProducts returns the storefront catalog
func (s *BiddingService) ListProducts(ctx context.Context) ([]model.Product, error) {
	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list products: %w", err)
	}
	return products, nil
}

// WindowStatus returns the stored window with its derived phase and
// the remaining countdown duration.
func (s *BiddingService) WindowStatus(ctx context.Context) (auctionwindow.Window, auctionwindow.Phase, time.Duration, error) {
	window, err := s.repo.GetWindow(ctx)
	if err != nil {
		return auctionwindow.Window{}, "", 0, fmt.Errorf("service: failed to read auction window: %w", err)
	}
	now := s.now()
	return window, window.PhaseAt(now), window.RemainingAt(now), nil
}

// UpdateWindow validates and atomically replaces the auction window.
// A rejected update leaves the stored window untouched. Moving the end
// date forward to re-open an ended auction is allowed.
func (s *BiddingService) UpdateWindow(ctx context.Context, start, end time.Time, active bool) error {
	if err := auctionwindow.Validate(start, end); err != nil {
		return fmt.Errorf("service: %w", err)
	}
	window := auctionwindow.Window{StartDate: start, EndDate: end, IsActive: active}
	if err := s.repo.ReplaceWindow(ctx, window); err != nil {
		return fmt.Errorf("service: failed to replace auction window: %w", err)
	}
	return nil
}
