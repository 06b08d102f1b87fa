package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"auction-house/internal/auctionerrors"
	"auction-house/internal/auctionwindow"
	model "auction-house/internal/models"
)

// settingsRow maps the singleton auction window to one table row.
type settingsRow struct {
	ID        uint      `gorm:"primaryKey"`
	StartDate time.Time `gorm:"not null"`
	EndDate   time.Time `gorm:"not null"`
	IsActive  bool      `gorm:"not null"`
}

func (settingsRow) TableName() string { return "auction_settings" }

const settingsRowID = 1

// PostgresRepo is the durable AuctionDB implementation backed by
// Postgres through gorm. Storage failures are wrapped with
// auctionerrors.ErrPersistence so callers can tell infra trouble apart
// from domain rejections.
type PostgresRepo struct {
	db *gorm.DB
}

// NewPostgresRepo connects to Postgres and migrates the schema
func NewPostgresRepo(dsn string) (*PostgresRepo, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("repository: failed to connect to postgres: %w", err)
	}
	if err := db.AutoMigrate(&model.Product{}, &model.Bid{}, &settingsRow{}); err != nil {
		return nil, fmt.Errorf("repository: failed to migrate schema: %w", err)
	}
	return &PostgresRepo{db: db}, nil
}

// GetProduct returns the catalog entry for a product
func (r *PostgresRepo) GetProduct(ctx context.Context, productID string) (model.Product, error) {
	var product model.Product
	result := r.db.WithContext(ctx).Where("product_id = ?", productID).First(&product)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return model.Product{}, fmt.Errorf("get product %s: %w", productID, auctionerrors.ErrProductNotFound)
	}
	if result.Error != nil {
		return model.Product{}, fmt.Errorf("get product %s: %w: %v", productID, auctionerrors.ErrPersistence, result.Error)
	}
	return product, nil
}

// ListProducts returns the full catalog ordered by product ID
func (r *PostgresRepo) ListProducts(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	result := r.db.WithContext(ctx).Order("product_id ASC").Find(&products)
	if result.Error != nil {
		return nil, fmt.Errorf("list products: %w: %v", auctionerrors.ErrPersistence, result.Error)
	}
	return products, nil
}

// RecordBid appends a bid to the ledger after confirming the product
// exists. The check and the insert share one transaction.
func (r *PostgresRepo) RecordBid(ctx context.Context, bid model.Bid) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var product model.Product
		if result := tx.Where("product_id = ?", bid.ProductID).First(&product); result.Error != nil {
			return result.Error
		}
		return tx.Create(&bid).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("record bid for product %s: %w", bid.ProductID, auctionerrors.ErrProductNotFound)
	}
	if err != nil {
		return fmt.Errorf("record bid for product %s: %w: %v", bid.ProductID, auctionerrors.ErrPersistence, err)
	}
	return nil
}

// GetBidsByProduct returns all bids for a product, newest first
func (r *PostgresRepo) GetBidsByProduct(ctx context.Context, productID string) ([]model.Bid, error) {
	var bids []model.Bid
	result := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order(clause.OrderBy{Columns: []clause.OrderByColumn{
			{Column: clause.Column{Name: "created_at"}, Desc: true},
		}}).
		Find(&bids)
	if result.Error != nil {
		return nil, fmt.Errorf("get bids for product %s: %w: %v", productID, auctionerrors.ErrPersistence, result.Error)
	}
	if len(bids) == 0 {
		return nil, fmt.Errorf("get bids for product %s: %w", productID, auctionerrors.ErrNoBids)
	}
	return bids, nil
}

// GetWinningBid returns the highest bid for a product. Ties on amount
// go to the earliest bid.
func (r *PostgresRepo) GetWinningBid(ctx context.Context, productID string) (model.Bid, error) {
	var bid model.Bid
	result := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("amount DESC, created_at ASC").
		First(&bid)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return model.Bid{}, fmt.Errorf("get winning bid for product %s: %w", productID, auctionerrors.ErrNoBids)
	}
	if result.Error != nil {
		return model.Bid{}, fmt.Errorf("get winning bid for product %s: %w: %v", productID, auctionerrors.ErrPersistence, result.Error)
	}
	return bid, nil
}

// GetWinningBids returns the winner per product, one entry for every
// product that has at least one bid.
func (r *PostgresRepo) GetWinningBids(ctx context.Context) (map[string]model.Bid, error) {
	var bids []model.Bid
	result := r.db.WithContext(ctx).
		Raw("SELECT DISTINCT ON (product_id) * FROM bids ORDER BY product_id, amount DESC, created_at ASC").
		Scan(&bids)
	if result.Error != nil {
		return nil, fmt.Errorf("get winning bids: %w: %v", auctionerrors.ErrPersistence, result.Error)
	}

	winners := make(map[string]model.Bid, len(bids))
	for _, b := range bids {
		winners[b.ProductID] = b
	}
	return winners, nil
}

// GetBidsByBidder returns the bidder's bids newest first, each joined
// with its product when the product still resolves.
func (r *PostgresRepo) GetBidsByBidder(ctx context.Context, bidderEmail string) ([]model.BidWithProduct, error) {
	var bids []model.Bid
	result := r.db.WithContext(ctx).
		Where("bidder_email = ?", bidderEmail).
		Order("created_at DESC").
		Find(&bids)
	if result.Error != nil {
		return nil, fmt.Errorf("get bids for bidder %s: %w: %v", bidderEmail, auctionerrors.ErrPersistence, result.Error)
	}
	if len(bids) == 0 {
		return nil, fmt.Errorf("get bids for bidder %s: %w", bidderEmail, auctionerrors.ErrBidderNoBids)
	}

	productIDs := make([]string, 0, len(bids))
	for _, b := range bids {
		productIDs = append(productIDs, b.ProductID)
	}
	var products []model.Product
	result = r.db.WithContext(ctx).Where("product_id IN ?", productIDs).Find(&products)
	if result.Error != nil {
		return nil, fmt.Errorf("get products for bidder %s: %w: %v", bidderEmail, auctionerrors.ErrPersistence, result.Error)
	}
	byID := make(map[string]model.Product, len(products))
	for _, p := range products {
		byID[p.ProductID] = p
	}

	out := make([]model.BidWithProduct, 0, len(bids))
	for _, b := range bids {
		joined := model.BidWithProduct{Bid: b}
		if product, ok := byID[b.ProductID]; ok {
			p := product
			joined.Product = &p
		}
		out = append(out, joined)
	}
	return out, nil
}

// HasBidderBid reports whether the bidder already has a bid on the product
func (r *PostgresRepo) HasBidderBid(ctx context.Context, productID, bidderEmail string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.Bid{}).
		Where("product_id = ? AND bidder_email = ?", productID, bidderEmail).
		Count(&count)
	if result.Error != nil {
		return false, fmt.Errorf("check bids for bidder %s on product %s: %w: %v", bidderEmail, productID, auctionerrors.ErrPersistence, result.Error)
	}
	return count > 0, nil
}

// GetWindow returns the stored auction window
func (r *PostgresRepo) GetWindow(ctx context.Context) (auctionwindow.Window, error) {
	var row settingsRow
	result := r.db.WithContext(ctx).Where("id = ?", settingsRowID).First(&row)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return auctionwindow.Window{}, fmt.Errorf("get auction window: %w", auctionerrors.ErrNoWindow)
	}
	if result.Error != nil {
		return auctionwindow.Window{}, fmt.Errorf("get auction window: %w: %v", auctionerrors.ErrPersistence, result.Error)
	}
	return auctionwindow.Window{StartDate: row.StartDate, EndDate: row.EndDate, IsActive: row.IsActive}, nil
}

// ReplaceWindow upserts the singleton settings row in one statement,
// so a failed update leaves the prior window untouched.
func (r *PostgresRepo) ReplaceWindow(ctx context.Context, w auctionwindow.Window) error {
	row := settingsRow{
		ID:        settingsRowID,
		StartDate: w.StartDate,
		EndDate:   w.EndDate,
		IsActive:  w.IsActive,
	}
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, UpdateAll: true}).
		Create(&row)
	if result.Error != nil {
		return fmt.Errorf("replace auction window: %w: %v", auctionerrors.ErrPersistence, result.Error)
	}
	return nil
}

// SeedProducts inserts catalog entries, skipping any that already exist
func (r *PostgresRepo) SeedProducts(ctx context.Context, products []model.Product) error {
	if len(products) == 0 {
		return nil
	}
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&products)
	if result.Error != nil {
		return fmt.Errorf("seed products: %w: %v", auctionerrors.ErrPersistence, result.Error)
	}
	return nil
}
