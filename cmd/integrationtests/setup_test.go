package integrationtests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"auction-house/internal/auctionwindow"
	bidding "auction-house/internal/biddingService"
	model "auction-house/internal/models"
	"auction-house/internal/repository"
	"auction-house/internal/server"
)

// openWindow is the default auction window for integration tests: it
// opened an hour ago and runs for a day.
func openWindow() auctionwindow.Window {
	now := time.Now().UTC()
	return auctionwindow.Window{
		StartDate: now.Add(-time.Hour),
		EndDate:   now.Add(24 * time.Hour),
		IsActive:  true,
	}
}

// SetupTestRouterWithProducts initializes the router over an in-memory
// repository seeded with the given products and an open auction window.
func SetupTestRouterWithProducts(t *testing.T, products ...model.Product) *gin.Engine {
	return SetupTestRouterWithWindow(t, openWindow(), products...)
}

// SetupTestRouterWithWindow is like SetupTestRouterWithProducts but with
// an explicit auction window, for exercising the timing gates.
func SetupTestRouterWithWindow(t *testing.T, window auctionwindow.Window, products ...model.Product) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryRepo()
	for _, product := range products {
		repo.AddProduct(product)
	}
	if err := repo.ReplaceWindow(context.Background(), window); err != nil {
		t.Fatalf("failed to seed auction window: %v", err)
	}

	service := bidding.NewBiddingService(repo, bidding.Config{AllowMultipleBidsPerBidder: true})
	return server.SetupRouter(service)
}

// ExecuteRequest executes an HTTP request and returns the response recorder.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, url string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the response
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	case nil:
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}

	return resp, w
}
