package bidding

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"auction-house/internal/auctionerrors"
	"auction-house/internal/auctionwindow"
	model "auction-house/internal/models"
	"auction-house/internal/repository"
)

var fixedNow = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

func activeWindow() auctionwindow.Window {
	return auctionwindow.Window{
		StartDate: fixedNow.Add(-24 * time.Hour),
		EndDate:   fixedNow.Add(7 * 24 * time.Hour),
		IsActive:  true,
	}
}

func newTestService(repo repository.AuctionDB, config Config) *BiddingService {
	service := NewBiddingService(repo, config)
	service.now = func() time.Time { return fixedNow }
	return service
}

func product(productID string, startingPrice int64) model.Product {
	return model.Product{
		ProductID:     productID,
		Name:          "Product " + productID,
		StartingPrice: decimal.NewFromInt(startingPrice),
		Quantity:      1,
	}
}

func leaderBid(productID string, amount int64) model.Bid {
	return model.Bid{
		BidID:       uuid.NewString(),
		ProductID:   productID,
		BidderEmail: "leader@example.com",
		Amount:      decimal.NewFromInt(amount),
		CreatedAt:   fixedNow.Add(-time.Hour),
	}
}

// Tests PlaceBid under the multi-bid admission policy
func TestBiddingService_PlaceBid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		productID       string
		bidderEmail     string
		amount          decimal.Decimal
		mockSetup       func(mockRepo *repository.MockAuctionDB)
		expectError     bool
		expectedError   error
		expectedMinimum string
	}{
		{
			name:        "valid_first_bid_at_starting_price",
			productID:   "prodA",
			bidderEmail: "alice@example.com",
			amount:      decimal.NewFromInt(500),
			mockSetup: func(mockRepo *repository.MockAuctionDB) {
				mockRepo.EXPECT().GetWindow(gomock.Any()).Return(activeWindow(), nil)
				mockRepo.EXPECT().GetProduct(gomock.Any(), "prodA").Return(product("prodA", 500), nil)
				mockRepo.EXPECT().GetWinningBid(gomock.Any(), "prodA").Return(model.Bid{}, auctionerrors.ErrNoBids)
				mockRepo.EXPECT().RecordBid(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:        "bid_meets_increment_over_leader",
			productID:   "prodB",
			bidderEmail: "bob@example.com",
			amount:      decimal.NewFromInt(505),
			mockSetup: func(mockRepo *repository.MockAuctionDB) {
				mockRepo.EXPECT().GetWindow(gomock.Any()).Return(activeWindow(), nil)
				mockRepo.EXPECT().GetProduct(gomock.Any(), "prodB").Return(product("prodB", 500), nil)
				mockRepo.EXPECT().GetWinningBid(gomock.Any(), "prodB").Return(leaderBid("prodB", 500), nil)
				mockRepo.EXPECT().RecordBid(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:        "bid_below_increment_over_leader",
			productID:   "prodC",
			bidderEmail: "carol@example.com",
			amount:      decimal.NewFromInt(504),
			mockSetup: func(mockRepo *repository.MockAuctionDB) {
				mockRepo.EXPECT().GetWindow(gomock.Any()).Return(activeWindow(), nil)
				mockRepo.EXPECT().GetProduct(gomock.Any(), "prodC").Return(product("prodC", 500), nil)
				mockRepo.EXPECT().GetWinningBid(gomock.Any(), "prodC").Return(leaderBid("prodC", 500), nil)
			},
			expectError:     true,
			expectedError:   auctionerrors.ErrBidTooLow,
			expectedMinimum: "505",
		},
		{
			name:        "bid_below_starting_price_with_no_bids",
			productID:   "prodD",
			bidderEmail: "dave@example.com",
			amount:      decimal.NewFromInt(499),
			mockSetup: func(mockRepo *repository.MockAuctionDB) {
				mockRepo.EXPECT().GetWindow(gomock.Any()).Return(activeWindow(), nil)
				mockRepo.EXPECT().GetProduct(gomock.Any(), "prodD").Return(product("prodD", 500), nil)
				mockRepo.EXPECT().GetWinningBid(gomock.Any(), "prodD").Return(model.Bid{}, auctionerrors.ErrNoBids)
			},
			expectError:     true,
			expectedError:   auctionerrors.ErrBidTooLow,
			expectedMinimum: "500",
		},
		{
			name:        "minimum_never_drops_below_starting_price",
			productID:   "prodE",
			bidderEmail: "erin@example.com",
			amount:      decimal.NewFromInt(400),
			mockSetup: func(mockRepo *repository.MockAuctionDB) {
				mockRepo.EXPECT().GetWindow(gomock.Any()).Return(activeWindow(), nil)
				mockRepo.EXPECT().GetProduct(gomock.Any(), "prodE").Return(product("prodE", 500), nil)
				mockRepo.EXPECT().GetWinningBid(gomock.Any(), "prodE").Return(leaderBid("prodE", 100), nil)
			},
			expectError:     true,
			expectedError:   auctionerrors.ErrBidTooLow,
			expectedMinimum: "500",
		},
		{
			name:          "empty_productID",
			productID:     "",
			bidderEmail:   "alice@example.com",
			amount:        decimal.NewFromInt(100),
			mockSetup:     func(mockRepo *repository.MockAuctionDB) {},
			expectError:   true,
			expectedError: auctionerrors.ErrInvalidBid,
		},
		{
			name:          "malformed_email",
			productID:     "prodF",
			bidderEmail:   "not-an-email",
			amount:        decimal.NewFromInt(100),
			mockSetup:     func(mockRepo *repository.MockAuctionDB) {},
			expectError:   true,
			expectedError: auctionerrors.ErrInvalidBid,
		},
		{
			name:          "zero_amount",
			productID:     "prodF",
			bidderEmail:   "alice@example.com",
			amount:        decimal.Zero,
			mockSetup:     func(mockRepo *repository.MockAuctionDB) {},
			expectError:   true,
			expectedError: auctionerrors.ErrInvalidBid,
		},
		{
			name:          "negative_amount",
			productID:     "prodF",
			bidderEmail:   "alice@example.com",
			amount:        decimal.NewFromInt(-50),
			mockSetup:     func(mockRepo *repository.MockAuctionDB) {},
			expectError:   true,
			expectedError: auctionerrors.ErrInvalidBid,
		},
		{
			name:        "auction_not_started",
			productID:   "prodG",
			bidderEmail: "alice@example.com",
			amount:      decimal.NewFromInt(1000),
			mockSetup: func(mockRepo *repository.MockAuctionDB) {
				window := auctionwindow.Window{
					StartDate: fixedNow.Add(24 * time.Hour),
					EndDate:   fixedNow.Add(8 * 24 * time.Hour),
					IsActive:  true,
				}
				mockRepo.EXPECT().GetWindow(gomock.Any()).Return(window, nil)
			},
			expectError:   true,
			expectedError: auctionerrors.ErrAuctionNotStarted,
		},
		{
			name:        "auction_ended_regardless_of_amount",
			productID:   "prodH",
			bidderEmail: "alice@example.com",
			amount:      decimal.NewFromInt(1000000),
			mockSetup: func(mockRepo *repository.MockAuctionDB) {
				window := auctionwindow.Window{
					StartDate: fixedNow.Add(-48 * time.Hour),
					EndDate:   fixedNow.Add(-24 * time.Hour),
					IsActive:  true,
				}
				mockRepo.EXPECT().GetWindow(gomock.Any()).Return(window, nil)
			},
			expectError:   true,
			expectedError: auctionerrors.ErrAuctionEnded,
		},
		{
			name:        "auction_deactivated_inside_window",
			productID:   "prodI",
			bidderEmail: "alice@example.com",
			amount:      decimal.NewFromInt(1000),
			mockSetup: func(mockRepo *repository.MockAuctionDB) {
				window := activeWindow()
				window.IsActive = false
				mockRepo.EXPECT().GetWindow(gomock.Any()).Return(window, nil)
			},
			expectError:   true,
			expectedError: auctionerrors.ErrAuctionEnded,
		},
		{
			name:        "window_read_fails",
			productID:   "prodJ",
			bidderEmail: "alice@example.com",
			amount:      decimal.NewFromInt(100),
			mockSetup: func(mockRepo *repository.MockAuctionDB) {
				mockRepo.EXPECT().GetWindow(gomock.Any()).
					Return(auctionwindow.Window{}, fmt.Errorf("get auction window: %w", auctionerrors.ErrPersistence))
			},
			expectError:   true,
			expectedError: auctionerrors.ErrPersistence,
		},
		{
			name:        "repo_record_fails",
			productID:   "prodK",
			bidderEmail: "alice@example.com",
			amount:      decimal.NewFromInt(120),
			mockSetup: func(mockRepo *repository.MockAuctionDB) {
				mockRepo.EXPECT().GetWindow(gomock.Any()).Return(activeWindow(), nil)
				mockRepo.EXPECT().GetProduct(gomock.Any(), "prodK").Return(product("prodK", 100), nil)
				mockRepo.EXPECT().GetWinningBid(gomock.Any(), "prodK").Return(leaderBid("prodK", 100), nil)
				mockRepo.EXPECT().RecordBid(gomock.Any(), gomock.Any()).
					Return(fmt.Errorf("record bid: %w", auctionerrors.ErrPersistence))
			},
			expectError:   true,
			expectedError: auctionerrors.ErrPersistence,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := repository.NewMockAuctionDB(ctrl)
			service := newTestService(mockRepo, Config{AllowMultipleBidsPerBidder: true})
			tc.mockSetup(mockRepo)

			bid, err := service.PlaceBid(context.Background(), tc.productID, tc.bidderEmail, tc.amount)

			if tc.expectError {
				require.Error(t, err)
				if tc.expectedError != nil {
					require.True(t, errors.Is(err, tc.expectedError), "expected error: %v, got: %v", tc.expectedError, err)
				}
				if tc.expectedMinimum != "" {
					var tooLow *auctionerrors.BidTooLowError
					require.True(t, errors.As(err, &tooLow))
					require.True(t, tooLow.Minimum.Equal(decimal.RequireFromString(tc.expectedMinimum)),
						"expected minimum %s, got %s", tc.expectedMinimum, tooLow.Minimum)
				}
				return
			}

			require.NoError(t, err)

			// Validate generated BidID
			require.NotEmpty(t, bid.BidID)
			_, parseErr := uuid.Parse(bid.BidID)
			require.NoError(t, parseErr, "BidID should be a valid UUID")

			// Validate bid fields
			require.Equal(t, tc.productID, bid.ProductID)
			require.Equal(t, tc.bidderEmail, bid.BidderEmail)
			require.True(t, bid.Amount.Equal(tc.amount))
			require.Equal(t, fixedNow, bid.CreatedAt)
		})
	}
}

// Tests the one-bid-per-bidder admission policy
func TestBiddingService_PlaceBid_SingleBidPolicy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository.NewMockAuctionDB(ctrl)
	service := newTestService(mockRepo, Config{AllowMultipleBidsPerBidder: false})

	ctx := context.Background()

	t.Run("second_bid_by_same_bidder_rejected", func(t *testing.T) {
		mockRepo.EXPECT().GetWindow(gomock.Any()).Return(activeWindow(), nil)
		mockRepo.EXPECT().GetProduct(gomock.Any(), "prodA").Return(product("prodA", 100), nil)
		mockRepo.EXPECT().HasBidderBid(gomock.Any(), "prodA", "alice@example.com").Return(true, nil)

		_, err := service.PlaceBid(ctx, "prodA", "alice@example.com", decimal.NewFromInt(200))
		require.Error(t, err)
		require.True(t, errors.Is(err, auctionerrors.ErrAlreadyBid))
	})

	t.Run("first_bid_by_bidder_accepted", func(t *testing.T) {
		mockRepo.EXPECT().GetWindow(gomock.Any()).Return(activeWindow(), nil)
		mockRepo.EXPECT().GetProduct(gomock.Any(), "prodB").Return(product("prodB", 100), nil)
		mockRepo.EXPECT().HasBidderBid(gomock.Any(), "prodB", "bob@example.com").Return(false, nil)
		mockRepo.EXPECT().GetWinningBid(gomock.Any(), "prodB").Return(model.Bid{}, auctionerrors.ErrNoBids)
		mockRepo.EXPECT().RecordBid(gomock.Any(), gomock.Any()).Return(nil)

		bid, err := service.PlaceBid(ctx, "prodB", "bob@example.com", decimal.NewFromInt(100))
		require.NoError(t, err)
		require.Equal(t, "bob@example.com", bid.BidderEmail)
	})
}

// Tests MinimumNextBid
func TestBiddingService_MinimumNextBid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		productID     string
		mockSetup     func(mockRepo *repository.MockAuctionDB)
		expected      string
		expectError   bool
		expectedError error
	}{
		{
			name:      "no_bids_minimum_is_starting_price",
			productID: "prodA",
			mockSetup: func(mockRepo *repository.MockAuctionDB) {
				mockRepo.EXPECT().GetProduct(gomock.Any(), "prodA").Return(product("prodA", 500), nil)
				mockRepo.EXPECT().GetWinningBid(gomock.Any(), "prodA").Return(model.Bid{}, auctionerrors.ErrNoBids)
			},
			expected: "500",
		},
		{
			name:      "leader_505_minimum_is_510.05",
			productID: "prodB",
			mockSetup: func(mockRepo *repository.MockAuctionDB) {
				mockRepo.EXPECT().GetProduct(gomock.Any(), "prodB").Return(product("prodB", 500), nil)
				mockRepo.EXPECT().GetWinningBid(gomock.Any(), "prodB").Return(leaderBid("prodB", 505), nil)
			},
			expected: "510.05",
		},
		{
			name:      "leader_below_starting_price_floors_at_starting_price",
			productID: "prodC",
			mockSetup: func(mockRepo *repository.MockAuctionDB) {
				mockRepo.EXPECT().GetProduct(gomock.Any(), "prodC").Return(product("prodC", 500), nil)
				mockRepo.EXPECT().GetWinningBid(gomock.Any(), "prodC").Return(leaderBid("prodC", 200), nil)
			},
			expected: "500",
		},
		{
			name:          "empty_productID",
			productID:     "",
			mockSetup:     func(mockRepo *repository.MockAuctionDB) {},
			expectError:   true,
			expectedError: auctionerrors.ErrInvalidBid,
		},
		{
			name:      "unknown_product",
			productID: "prodX",
			mockSetup: func(mockRepo *repository.MockAuctionDB) {
				mockRepo.EXPECT().GetProduct(gomock.Any(), "prodX").
					Return(model.Product{}, fmt.Errorf("get product: %w", auctionerrors.ErrProductNotFound))
			},
			expectError:   true,
			expectedError: auctionerrors.ErrProductNotFound,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := repository.NewMockAuctionDB(ctrl)
			service := newTestService(mockRepo, Config{AllowMultipleBidsPerBidder: true})
			tc.mockSetup(mockRepo)

			minimum, err := service.MinimumNextBid(context.Background(), tc.productID)

			if tc.expectError {
				require.Error(t, err)
				require.True(t, errors.Is(err, tc.expectedError))
				return
			}
			require.NoError(t, err)
			require.True(t, minimum.Equal(decimal.RequireFromString(tc.expected)),
				"expected minimum %s, got %s", tc.expected, minimum)
		})
	}
}

// The full spec ladder against the real in-memory repository:
// 500 accepted, 504 rejected at minimum 505, 505 accepted, next minimum 510.05.
func TestBiddingService_BidLadder(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := repository.NewMemoryRepo()
	repo.AddProduct(product("prod1", 500))
	require.NoError(t, repo.ReplaceWindow(ctx, activeWindow()))

	service := newTestService(repo, Config{AllowMultipleBidsPerBidder: true})

	// Bid 1: exactly the starting price
	first, err := service.PlaceBid(ctx, "prod1", "alice@example.com", decimal.NewFromInt(500))
	require.NoError(t, err)

	minimum, err := service.MinimumNextBid(ctx, "prod1")
	require.NoError(t, err)
	require.True(t, minimum.Equal(decimal.NewFromInt(505)))

	// Bid 2: one short of the minimum
	_, err = service.PlaceBid(ctx, "prod1", "bob@example.com", decimal.NewFromInt(504))
	require.Error(t, err)
	var tooLow *auctionerrors.BidTooLowError
	require.True(t, errors.As(err, &tooLow))
	require.True(t, tooLow.Minimum.Equal(decimal.NewFromInt(505)))

	// Rejection mutated nothing: the first bid still leads alone
	bids, err := service.GetBidsForProduct(ctx, "prod1", OrderByTime)
	require.NoError(t, err)
	require.Len(t, bids, 1)

	// Repeating the failing call changes nothing either
	_, err = service.PlaceBid(ctx, "prod1", "bob@example.com", decimal.NewFromInt(504))
	require.Error(t, err)
	bids, err = service.GetBidsForProduct(ctx, "prod1", OrderByTime)
	require.NoError(t, err)
	require.Len(t, bids, 1)

	// Bid 3: exactly the minimum
	third, err := service.PlaceBid(ctx, "prod1", "bob@example.com", decimal.NewFromInt(505))
	require.NoError(t, err)

	minimum, err = service.MinimumNextBid(ctx, "prod1")
	require.NoError(t, err)
	require.True(t, minimum.Equal(decimal.RequireFromString("510.05")),
		"expected 510.05, got %s", minimum)

	// Exactly one winning bid
	winning, err := service.GetWinningBid(ctx, "prod1")
	require.NoError(t, err)
	require.Equal(t, third.BidID, winning.BidID)

	isWinning, err := service.IsWinningBid(ctx, third)
	require.NoError(t, err)
	require.True(t, isWinning)

	isWinning, err = service.IsWinningBid(ctx, first)
	require.NoError(t, err)
	require.False(t, isWinning)
}

// Tests UpdateWindow validation and atomicity
func TestBiddingService_UpdateWindow(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := repository.NewMemoryRepo()
	service := newTestService(repo, Config{AllowMultipleBidsPerBidder: true})

	original := activeWindow()
	require.NoError(t, repo.ReplaceWindow(ctx, original))

	// end before start is rejected without touching stored settings
	err := service.UpdateWindow(ctx, fixedNow.Add(24*time.Hour), fixedNow.Add(-24*time.Hour), true)
	require.Error(t, err)
	require.True(t, errors.Is(err, auctionerrors.ErrInvalidWindow))

	stored, err := repo.GetWindow(ctx)
	require.NoError(t, err)
	require.Equal(t, original, stored, "failed update must leave the prior window in place")

	// a valid update replaces the whole window, including re-opening
	// an ended auction by pushing the end date into the future
	err = service.UpdateWindow(ctx, fixedNow.Add(-time.Hour), fixedNow.Add(30*24*time.Hour), true)
	require.NoError(t, err)

	stored, err = repo.GetWindow(ctx)
	require.NoError(t, err)
	require.Equal(t, fixedNow.Add(30*24*time.Hour), stored.EndDate)
}

// Tests WindowStatus phase and countdown derivation
func TestBiddingService_WindowStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository.NewMockAuctionDB(ctrl)
	service := newTestService(mockRepo, Config{AllowMultipleBidsPerBidder: true})

	window := auctionwindow.Window{
		StartDate: fixedNow.Add(2 * time.Hour),
		EndDate:   fixedNow.Add(26 * time.Hour),
		IsActive:  true,
	}
	mockRepo.EXPECT().GetWindow(gomock.Any()).Return(window, nil)

	stored, phase, remaining, err := service.WindowStatus(context.Background())
	require.NoError(t, err)
	require.Equal(t, window, stored)
	require.Equal(t, auctionwindow.PhaseNotStarted, phase)
	require.Equal(t, 2*time.Hour, remaining)
}

// Tests GetBidsForProduct ranking order
func TestBiddingService_GetBidsForProduct(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository.NewMockAuctionDB(ctrl)
	service := newTestService(mockRepo, Config{AllowMultipleBidsPerBidder: true})

	ctx := context.Background()

	low := model.Bid{BidID: "bid1", ProductID: "prod1", Amount: decimal.NewFromInt(100), CreatedAt: fixedNow}
	high := model.Bid{BidID: "bid2", ProductID: "prod1", Amount: decimal.NewFromInt(150), CreatedAt: fixedNow.Add(time.Second)}

	t.Run("time_order_passthrough", func(t *testing.T) {
		mockRepo.EXPECT().GetBidsByProduct(gomock.Any(), "prod1").Return([]model.Bid{high, low}, nil)

		bids, err := service.GetBidsForProduct(ctx, "prod1", OrderByTime)
		require.NoError(t, err)
		require.Equal(t, []model.Bid{high, low}, bids)
	})

	t.Run("amount_order_resorts", func(t *testing.T) {
		// repo hands back newest first; ranking puts the highest amount first
		mockRepo.EXPECT().GetBidsByProduct(gomock.Any(), "prod1").Return([]model.Bid{low, high}, nil)

		bids, err := service.GetBidsForProduct(ctx, "prod1", OrderByAmount)
		require.NoError(t, err)
		require.Equal(t, []model.Bid{high, low}, bids)
	})

	t.Run("empty_productID", func(t *testing.T) {
		_, err := service.GetBidsForProduct(ctx, "", OrderByTime)
		require.True(t, errors.Is(err, auctionerrors.ErrInvalidBid))
	})
}

// Tests Winners passthrough and IsWinningBid edge cases
func TestBiddingService_Winners(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository.NewMockAuctionDB(ctrl)
	service := newTestService(mockRepo, Config{AllowMultipleBidsPerBidder: true})

	ctx := context.Background()

	winners := map[string]model.Bid{
		"prod1": {BidID: "bid1", ProductID: "prod1", Amount: decimal.NewFromInt(100)},
	}
	mockRepo.EXPECT().GetWinningBids(gomock.Any()).Return(winners, nil)

	got, err := service.Winners(ctx)
	require.NoError(t, err)
	require.Equal(t, winners, got)

	// IsWinningBid on a product with no bids is false, not an error
	mockRepo.EXPECT().GetWinningBid(gomock.Any(), "prod2").Return(model.Bid{}, auctionerrors.ErrNoBids)
	isWinning, err := service.IsWinningBid(ctx, model.Bid{BidID: "bidX", ProductID: "prod2"})
	require.NoError(t, err)
	require.False(t, isWinning)
}

// Tests GetBidsForBidder validation
func TestBiddingService_GetBidsForBidder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository.NewMockAuctionDB(ctrl)
	service := newTestService(mockRepo, Config{AllowMultipleBidsPerBidder: true})

	ctx := context.Background()

	_, err := service.GetBidsForBidder(ctx, "not-an-email")
	require.True(t, errors.Is(err, auctionerrors.ErrInvalidBid))

	joined := []model.BidWithProduct{
		{Bid: model.Bid{BidID: "bid1", ProductID: "prod1", BidderEmail: "alice@example.com", Amount: decimal.NewFromInt(100)}},
	}
	mockRepo.EXPECT().GetBidsByBidder(gomock.Any(), "alice@example.com").Return(joined, nil)

	got, err := service.GetBidsForBidder(ctx, "alice@example.com")
	require.NoError(t, err)
	require.Equal(t, joined, got)
}

// Concurrent bidders on one product: every accepted bid must clear the
// minimum computed against the ledger state it actually landed on.
func TestBiddingService_ConcurrentPlaceBid(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := repository.NewMemoryRepo()
	repo.AddProduct(product("prod1", 100))
	require.NoError(t, repo.ReplaceWindow(ctx, activeWindow()))

	service := newTestService(repo, Config{AllowMultipleBidsPerBidder: true})

	const bidders = 30
	done := make(chan struct{}, bidders)
	for i := 0; i < bidders; i++ {
		go func(n int) {
			defer func() { done <- struct{}{} }()
			amount := decimal.NewFromInt(int64(100 + n*10))
			// Rejections are expected under contention; acceptance is
			// what must be consistent.
			_, _ = service.PlaceBid(ctx, "prod1", fmt.Sprintf("bidder%d@example.com", n), amount)
		}(i)
	}
	for i := 0; i < bidders; i++ {
		<-done
	}

	// Accepted amounts strictly increase on a product, so ascending
	// amount order is placement order; replay it and verify the
	// increment invariant held at every accepted step.
	history, err := service.GetBidsForProduct(ctx, "prod1", OrderByAmount)
	require.NoError(t, err)
	require.NotEmpty(t, history)
	for i, j := 0, len(history)-1; i < j; i, j = i+1, j-1 {
		history[i], history[j] = history[j], history[i] // lowest first
	}
	leader := decimal.Zero
	start := decimal.NewFromInt(100)
	for _, b := range history {
		minimum := start
		if leader.IsPositive() {
			if withIncrement := leader.Mul(decimal.RequireFromString("1.01")); withIncrement.GreaterThan(minimum) {
				minimum = withIncrement
			}
		}
		require.True(t, b.Amount.GreaterThanOrEqual(minimum),
			"accepted bid %s below minimum %s", b.Amount, minimum)
		if b.Amount.GreaterThan(leader) {
			leader = b.Amount
		}
	}
}
