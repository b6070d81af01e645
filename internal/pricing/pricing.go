// Package pricing simulates the digital gold market: every quote is an
// independent draw around a fixed base price. There is no persisted state
// and no real market-data feed.
package pricing

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

const (
	// BasePrice is the reference gold price in currency units per gram.
	BasePrice = 10310

	// jitterRange is the full width of the simulated fluctuation band.
	// Draws land in [-jitterRange/2, +jitterRange/2).
	jitterRange = 100.0

	// placeholderVolume is a fixed display value; the simulator has no
	// notion of traded volume.
	placeholderVolume = "2.4M"
)

// Quote is a point-in-time view of the simulated gold market.
type Quote struct {
	CurrentPrice int64           `json:"currentPrice"`
	Change24h    decimal.Decimal `json:"change24h"`
	High24h      int64           `json:"high24h"`
	Low24h       int64           `json:"low24h"`
	Volume       string          `json:"volume"`
	LastUpdated  time.Time       `json:"lastUpdated"`
}

// PricePerGram returns the quoted price as a decimal for purchase math.
func (q Quote) PricePerGram() decimal.Decimal {
	return decimal.NewFromInt(q.CurrentPrice)
}

// Simulator produces gold quotes with bounded random jitter.
type Simulator struct {
	base float64
	now  func() time.Time

	mu  sync.Mutex // rand.Rand is not safe for concurrent use
	rnd *rand.Rand
}

// NewSimulator creates a Simulator around the default base price.
func NewSimulator() *Simulator {
	return NewSimulatorWith(rand.NewSource(time.Now().UnixNano()), time.Now)
}

// NewSimulatorWith creates a Simulator with an explicit random source and
// clock, so tests can make quotes deterministic.
func NewSimulatorWith(src rand.Source, now func() time.Time) *Simulator {
	return &Simulator{
		base: BasePrice,
		now:  now,
		rnd:  rand.New(src),
	}
}

// Quote returns a fresh simulated quote. Calls are independent draws.
// The result always satisfies Low24h <= CurrentPrice <= High24h.
func (s *Simulator) Quote() Quote {
	s.mu.Lock()
	jitter := (s.rnd.Float64() - 0.5) * jitterRange
	s.mu.Unlock()

	current := math.Round(s.base + jitter)
	halfSwing := math.Abs(jitter) * 0.5

	return Quote{
		CurrentPrice: int64(current),
		Change24h:    decimal.NewFromFloat(jitter / s.base * 100).Round(2),
		High24h:      int64(math.Round(current + halfSwing)),
		Low24h:       int64(math.Round(current - halfSwing)),
		Volume:       placeholderVolume,
		LastUpdated:  s.now(),
	}
}
