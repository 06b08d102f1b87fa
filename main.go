package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"auction-house/internal/auctionerrors"
	"auction-house/internal/auctionwindow"
	bidding "auction-house/internal/biddingService"
	"auction-house/internal/config"
	model "auction-house/internal/models"
	"auction-house/internal/repository"
	"auction-house/internal/server"
	"auction-house/utils"
)

func main() {
	cfg := config.Parse()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	repo, err := setupRepository(cfg)
	if err != nil {
		utils.Fatal("Failed to set up storage", map[string]any{"backend": cfg.Backend, "error": err.Error()})
	}

	auctionSvc := bidding.NewBiddingService(repo, bidding.Config{
		AllowMultipleBidsPerBidder: cfg.AllowMultipleBidsPerBidder,
	})

	router := server.SetupRouter(auctionSvc)

	utils.Info("Starting auction server", map[string]any{
		"addr":    cfg.ListenAddr,
		"backend": cfg.Backend,
	})
	if err := router.Run(cfg.ListenAddr); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// setupRepository builds the configured AuctionDB and seeds it with
// the sample catalog and an open default window when none is stored.
func setupRepository(cfg config.Config) (repository.AuctionDB, error) {
	ctx := context.Background()

	if cfg.Backend == config.BackendPostgres {
		repo, err := repository.NewPostgresRepo(cfg.DB.DSN())
		if err != nil {
			return nil, err
		}
		if err := repo.SeedProducts(ctx, sampleProducts()); err != nil {
			return nil, err
		}
		// Keep whatever window an administrator already configured.
		if _, err := repo.GetWindow(ctx); errors.Is(err, auctionerrors.ErrNoWindow) {
			if err := repo.ReplaceWindow(ctx, defaultWindow()); err != nil {
				return nil, err
			}
		} else if err != nil {
			return nil, err
		}
		return repo, nil
	}

	repo := repository.NewMemoryRepo()
	for _, product := range sampleProducts() {
		repo.AddProduct(product)
	}
	if err := repo.ReplaceWindow(ctx, defaultWindow()); err != nil {
		return nil, err
	}
	return repo, nil
}

// sampleProducts returns the demo catalog
func sampleProducts() []model.Product {
	return []model.Product{
		{ProductID: "prod-001", Name: "Vintage Armchair", Description: "Mid-century armchair, reupholstered", StartingPrice: decimal.NewFromInt(500), Quantity: 1},
		{ProductID: "prod-002", Name: "Brass Desk Lamp", Description: "Adjustable brass lamp, working condition", StartingPrice: decimal.NewFromInt(120), Quantity: 2},
		{ProductID: "prod-003", Name: "Oil Painting", Description: "Coastal landscape, signed, framed", StartingPrice: decimal.NewFromInt(850), Quantity: 1},
	}
}

// defaultWindow opens bidding immediately for one week
func defaultWindow() auctionwindow.Window {
	now := time.Now().UTC()
	return auctionwindow.Window{
		StartDate: now,
		EndDate:   now.Add(7 * 24 * time.Hour),
		IsActive:  true,
	}
}
