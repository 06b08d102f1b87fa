package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bidder represents an authenticated participant in the auction.
// Identity management lives outside this service; the email is the
// opaque identity the auth provider hands us.
type Bidder struct {
	BidderID    string `json:"bidder_id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
}

// Product represents an item up for auction
type Product struct {
	ProductID     string          `json:"product_id" gorm:"primaryKey;column:product_id;type:varchar(64)"`
	Name          string          `json:"name" gorm:"type:varchar(255);not null"`
	Description   string          `json:"description" gorm:"type:text"`
	StartingPrice decimal.Decimal `json:"starting_price" gorm:"type:numeric(20,4);not null"`
	Quantity      int             `json:"quantity" gorm:"not null;default:1"`
}

// Bid represents a bidder's bid on a product. Bids are immutable once
// recorded; there is no edit or cancel.
type Bid struct {
	BidID       string          `json:"bid_id" gorm:"primaryKey;column:bid_id;type:uuid"`
	ProductID   string          `json:"product_id" gorm:"type:varchar(64);not null;index"`
	BidderEmail string          `json:"bidder_email" gorm:"type:varchar(255);not null;index"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:numeric(20,4);not null"`
	CreatedAt   time.Time       `json:"created_at" gorm:"not null"`
}

// BidWithProduct is a bid joined with the product it was placed on,
// used for bidder history displays. Product is nil when the product
// record no longer resolves.
type BidWithProduct struct {
	Bid
	Product *Product `json:"product,omitempty"`
}
