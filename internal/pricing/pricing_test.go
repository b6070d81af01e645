package pricing

import (
	"math/rand"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestQuoteEnvelope(t *testing.T) {
	sim := NewSimulatorWith(rand.NewSource(1), time.Now)

	for i := 0; i < 1000; i++ {
		q := sim.Quote()

		if q.Low24h > q.CurrentPrice || q.CurrentPrice > q.High24h {
			t.Fatalf("envelope violated: low=%d current=%d high=%d", q.Low24h, q.CurrentPrice, q.High24h)
		}
		if q.CurrentPrice < BasePrice-51 || q.CurrentPrice > BasePrice+51 {
			t.Fatalf("price %d outside jitter band around %d", q.CurrentPrice, BasePrice)
		}
	}
}

func TestQuoteFields(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	sim := NewSimulatorWith(rand.NewSource(42), fixedClock(now))

	q := sim.Quote()

	if q.Volume != "2.4M" {
		t.Errorf("expected placeholder volume 2.4M, got %s", q.Volume)
	}
	if !q.LastUpdated.Equal(now) {
		t.Errorf("expected lastUpdated %v, got %v", now, q.LastUpdated)
	}
	if q.Change24h.Exponent() < -2 {
		t.Errorf("expected change24h rounded to 2 decimals, got %s", q.Change24h)
	}
	// A ±50 swing on 10310 is at most ~0.485 percent.
	if q.Change24h.Abs().GreaterThan(decimal.NewFromFloat(0.49)) {
		t.Errorf("change24h %s outside expected band", q.Change24h)
	}
}

func TestQuotesAreIndependent(t *testing.T) {
	sim := NewSimulatorWith(rand.NewSource(7), time.Now)

	seen := make(map[int64]bool)
	for i := 0; i < 50; i++ {
		seen[sim.Quote().CurrentPrice] = true
	}
	if len(seen) < 2 {
		t.Error("expected successive quotes to vary")
	}
}

func TestPricePerGram(t *testing.T) {
	q := Quote{CurrentPrice: 10310}
	if q.PricePerGram().String() != "10310" {
		t.Errorf("expected 10310, got %s", q.PricePerGram())
	}
}
