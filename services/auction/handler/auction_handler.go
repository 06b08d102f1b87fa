package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"auction-house/internal/auctionerrors"
	"auction-house/internal/auctionwindow"
	bidding "auction-house/internal/biddingService"
	model "auction-house/internal/models"
	"auction-house/services/auction/helpers"
	"auction-house/utils"
)

//go:generate mockgen -source=auction_handler.go -destination=mock_service.go -package=handler

type AuctionServiceInterface interface {
	PlaceBid(ctx context.Context, productID, bidderEmail string, amount decimal.Decimal) (model.Bid, error)
	MinimumNextBid(ctx context.Context, productID string) (decimal.Decimal, error)
	GetBidsForProduct(ctx context.Context, productID string, order bidding.BidOrder) ([]model.Bid, error)
	GetWinningBid(ctx context.Context, productID string) (model.Bid, error)
	GetBidsForBidder(ctx context.Context, bidderEmail string) ([]model.BidWithProduct, error)
	Winners(ctx context.Context) (map[string]model.Bid, error)
	GetProduct(ctx context.Context, productID string) (model.Product, error)
	ListProducts(ctx context.Context) ([]model.Product, error)
	WindowStatus(ctx context.Context) (auctionwindow.Window, auctionwindow.Phase, time.Duration, error)
	UpdateWindow(ctx context.Context, start, end time.Time, active bool) error
}

type AuctionHandler struct {
	service AuctionServiceInterface
}

func NewAuctionHandler(service AuctionServiceInterface) *AuctionHandler {
	return &AuctionHandler{service: service}
}

// RecordBidHandler handles POST /bids
func (h *AuctionHandler) RecordBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RecordBidHandler", err)
		return
	}

	bid, err := h.service.PlaceBid(c.Request.Context(), req.ProductID, req.BidderEmail, req.Amount)
	if err != nil {
		var tooLow *auctionerrors.BidTooLowError
		if errors.As(err, &tooLow) {
			utils.JSONErrorWithData(c, http.StatusConflict, err, "bid amount too low",
				gin.H{"minimum_amount": tooLow.Minimum})
			utils.Info("RecordBidHandler: bid below minimum", map[string]any{
				"product_id":     req.ProductID,
				"bidder_email":   req.BidderEmail,
				"amount":         req.Amount.String(),
				"minimum_amount": tooLow.Minimum.String(),
			})
			return
		}
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, helpers.ClientSafeError(status, fmt.Errorf("%s: %w", message, err), message), message)
		utils.Error("RecordBidHandler: failed to record bid", map[string]any{
			"handler":      "RecordBidHandler",
			"product_id":   req.ProductID,
			"bidder_email": req.BidderEmail,
			"error":        err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewBidResponse(bid), "bid recorded successfully")
	helpers.LogSuccess("RecordBidHandler", "bid recorded successfully", map[string]any{
		"bid_id":       bid.BidID,
		"product_id":   bid.ProductID,
		"bidder_email": bid.BidderEmail,
		"amount":       bid.Amount.String(),
	})
}

// GetProductsHandler handles GET /products
func (h *AuctionHandler) GetProductsHandler(c *gin.Context) {
	products, err := h.service.ListProducts(c.Request.Context())
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, helpers.ClientSafeError(status, err, message), message)
		utils.Warn("GetProductsHandler: error listing products", map[string]any{"error": err.Error()})
		return
	}

	if products == nil {
		products = []model.Product{}
	}

	utils.JSONResponse(c, http.StatusOK, products, "products retrieved successfully")
	helpers.LogSuccess("GetProductsHandler", "products retrieved successfully", map[string]any{
		"count": len(products),
	})
}

// GetProductHandler handles GET /products/:product_id
func (h *AuctionHandler) GetProductHandler(c *gin.Context) {
	productID := c.Param("product_id")
	ctx := c.Request.Context()

	product, err := h.service.GetProduct(ctx, productID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, helpers.ClientSafeError(status, err, message), message)
		utils.Warn("GetProductHandler: error retrieving product", map[string]any{"product_id": productID, "error": err.Error()})
		return
	}

	minimum, err := h.service.MinimumNextBid(ctx, productID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, helpers.ClientSafeError(status, err, message), message)
		utils.Warn("GetProductHandler: error computing minimum bid", map[string]any{"product_id": productID, "error": err.Error()})
		return
	}

	bids, err := h.service.GetBidsForProduct(ctx, productID, bidding.OrderByTime)
	if err != nil && !errors.Is(err, auctionerrors.ErrNoBids) {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, helpers.ClientSafeError(status, err, message), message)
		utils.Warn("GetProductHandler: error retrieving bids", map[string]any{"product_id": productID, "error": err.Error()})
		return
	}
	if bids == nil {
		bids = []model.Bid{}
	}

	resp := helpers.ProductDetailResponse{
		Product:        product,
		MinimumNextBid: minimum,
		Bids:           bids,
	}

	utils.JSONResponse(c, http.StatusOK, resp, "product retrieved successfully")
	helpers.LogSuccess("GetProductHandler", "product retrieved successfully", map[string]any{
		"product_id": productID,
		"bid_count":  len(bids),
	})
}

// GetBidsByProductHandler handles GET /products/:product_id/bids
// Pass ?order=amount for ranking order; the default is newest first.
func (h *AuctionHandler) GetBidsByProductHandler(c *gin.Context) {
	productID := c.Param("product_id")
	order := bidding.OrderByTime
	if c.Query("order") == string(bidding.OrderByAmount) {
		order = bidding.OrderByAmount
	}

	bids, err := h.service.GetBidsForProduct(c.Request.Context(), productID, order)
	if err != nil && !errors.Is(err, auctionerrors.ErrNoBids) {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, helpers.ClientSafeError(status, fmt.Errorf("%s: %w", message, err), message), message)
		utils.Warn("GetBidsByProductHandler: error retrieving bids", map[string]any{"product_id": productID, "error": err.Error()})
		return
	}

	if bids == nil {
		bids = []model.Bid{}
	}

	utils.JSONResponse(c, http.StatusOK, bids, "bids retrieved successfully")
	helpers.LogSuccess("GetBidsByProductHandler", "bids retrieved successfully", map[string]any{
		"product_id": productID,
		"count":      len(bids),
	})
}

// GetWinningBidHandler handles GET /products/:product_id/winning
func (h *AuctionHandler) GetWinningBidHandler(c *gin.Context) {
	productID := c.Param("product_id")
	bid, err := h.service.GetWinningBid(c.Request.Context(), productID)
	if err != nil {
		// For auction, winning bid not found -> 404
		if errors.Is(err, auctionerrors.ErrNoBids) {
			utils.JSONError(c, http.StatusNotFound, err, "no winning bid found")
			utils.Info("GetWinningBidHandler: no winning bid found", map[string]any{"product_id": productID})
			return
		}
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, helpers.ClientSafeError(status, fmt.Errorf("%s: %w", message, err), message), message)
		utils.Warn("GetWinningBidHandler: winning bid error", map[string]any{"product_id": productID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewBidResponse(bid), "winning bid retrieved successfully")
	helpers.LogSuccess("GetWinningBidHandler", "winning bid retrieved successfully", map[string]any{
		"bid_id":       bid.BidID,
		"product_id":   bid.ProductID,
		"bidder_email": bid.BidderEmail,
		"amount":       bid.Amount.String(),
	})
}

// GetBidsByBidderHandler handles GET /bidders/:email/bids
func (h *AuctionHandler) GetBidsByBidderHandler(c *gin.Context) {
	bidderEmail := c.Param("email")
	bids, err := h.service.GetBidsForBidder(c.Request.Context(), bidderEmail)
	if err != nil && !errors.Is(err, auctionerrors.ErrBidderNoBids) {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, helpers.ClientSafeError(status, fmt.Errorf("%s: %w", message, err), message), message)
		utils.Warn("GetBidsByBidderHandler: error retrieving bids", map[string]any{"bidder_email": bidderEmail, "error": err.Error()})
		return
	}

	if bids == nil {
		bids = []model.BidWithProduct{}
	}

	utils.JSONResponse(c, http.StatusOK, bids, "bids retrieved successfully")
	helpers.LogSuccess("GetBidsByBidderHandler", "bids retrieved successfully", map[string]any{
		"bidder_email": bidderEmail,
		"count":        len(bids),
	})
}

// GetWindowHandler handles GET /auction/window
func (h *AuctionHandler) GetWindowHandler(c *gin.Context) {
	window, phase, remaining, err := h.service.WindowStatus(c.Request.Context())
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, helpers.ClientSafeError(status, err, message), message)
		utils.Warn("GetWindowHandler: error reading window", map[string]any{"error": err.Error()})
		return
	}

	resp := helpers.WindowResponse{
		StartDate:        window.StartDate,
		EndDate:          window.EndDate,
		IsActive:         window.IsActive,
		Phase:            string(phase),
		RemainingSeconds: int64(remaining.Seconds()),
	}

	utils.JSONResponse(c, http.StatusOK, resp, "auction window retrieved successfully")
}

// UpdateWindowHandler handles PUT /auction/window
func (h *AuctionHandler) UpdateWindowHandler(c *gin.Context) {
	var req helpers.UpdateWindowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateWindowHandler", err)
		return
	}

	if err := h.service.UpdateWindow(c.Request.Context(), req.StartDate, req.EndDate, req.IsActive); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, helpers.ClientSafeError(status, fmt.Errorf("%s: %w", message, err), message), message)
		utils.Error("UpdateWindowHandler: failed to update window", map[string]any{
			"start_date": req.StartDate,
			"end_date":   req.EndDate,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "auction window updated successfully")
	helpers.LogSuccess("UpdateWindowHandler", "auction window updated successfully", map[string]any{
		"start_date": req.StartDate,
		"end_date":   req.EndDate,
		"is_active":  req.IsActive,
	})
}

// GetWinnersHandler handles GET /auction/winners
func (h *AuctionHandler) GetWinnersHandler(c *gin.Context) {
	winners, err := h.service.Winners(c.Request.Context())
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, helpers.ClientSafeError(status, err, message), message)
		utils.Warn("GetWinnersHandler: error retrieving winners", map[string]any{"error": err.Error()})
		return
	}

	if winners == nil {
		winners = map[string]model.Bid{}
	}

	utils.JSONResponse(c, http.StatusOK, winners, "winners retrieved successfully")
	helpers.LogSuccess("GetWinnersHandler", "winners retrieved successfully", map[string]any{
		"count": len(winners),
	})
}
