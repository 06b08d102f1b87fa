package server

import (
	handler "auction-house/services/auction/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(auctionService handler.AuctionServiceInterface) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	auctionHandler := handler.NewAuctionHandler(auctionService)

	bids := router.Group("/bids")
	{
		bids.POST("", auctionHandler.RecordBidHandler)
	}

	products := router.Group("/products")
	{
		products.GET("", auctionHandler.GetProductsHandler)
		products.GET("/:product_id", auctionHandler.GetProductHandler)
		products.GET("/:product_id/bids", auctionHandler.GetBidsByProductHandler)
		products.GET("/:product_id/winning", auctionHandler.GetWinningBidHandler)
	}

	bidders := router.Group("/bidders")
	{
		bidders.GET("/:email/bids", auctionHandler.GetBidsByBidderHandler)
	}

	auction := router.Group("/auction")
	{
		auction.GET("/window", auctionHandler.GetWindowHandler)
		auction.PUT("/window", auctionHandler.UpdateWindowHandler)
		auction.GET("/winners", auctionHandler.GetWinnersHandler)
	}

	return router
}
