package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

func setupPriceRouter(h *PriceHandler) *gin.Engine {
	r := gin.New()
	r.GET("/api/gold-price", h.GetGoldPrice)
	return r
}

func TestGetGoldPrice(t *testing.T) {
	r := setupPriceRouter(NewPriceHandler(fixedQuoter{price: 10310}))

	rec := doRequest(r, http.MethodGet, "/api/gold-price", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	result := parseJSON(t, rec)
	if result["currentPrice"] != float64(10310) {
		t.Errorf("expected currentPrice 10310, got %v", result["currentPrice"])
	}
	if result["volume"] != "2.4M" {
		t.Errorf("expected volume 2.4M, got %v", result["volume"])
	}
	for _, field := range []string{"change24h", "high24h", "low24h", "lastUpdated"} {
		if _, ok := result[field]; !ok {
			t.Errorf("expected field %q in quote", field)
		}
	}
}
