package storage

import (
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	apperrors "aurum/internal/errors"
	"aurum/internal/models"
	"aurum/internal/uuid"
)

// memoryLedger is a thread-safe in-memory Ledger. It backs tests and
// zero-dependency demo runs; records do not survive a restart.
type memoryLedger struct {
	mu        sync.RWMutex
	users     map[string]*models.User
	purchases map[string]*models.Purchase
	exchanges map[string]*models.ChatExchange
}

// NewMemoryLedger creates an empty in-memory Ledger.
func NewMemoryLedger() Ledger {
	return &memoryLedger{
		users:     make(map[string]*models.User),
		purchases: make(map[string]*models.Purchase),
		exchanges: make(map[string]*models.ChatExchange),
	}
}

func (l *memoryLedger) CreateUser(user *models.User) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	stampBase(&user.Base)
	cp := *user
	l.users[user.ID] = &cp
	return nil
}

func (l *memoryLedger) UserByID(id string) (*models.User, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	user, ok := l.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	cp := *user
	return &cp, nil
}

func (l *memoryLedger) UserByName(username string) (*models.User, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, user := range l.users {
		if user.Username == username {
			cp := *user
			return &cp, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (l *memoryLedger) CreatePurchase(purchase *models.Purchase) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if purchase.ID == "" {
		purchase.ID = uuid.New()
	}
	if purchase.CreatedAt.IsZero() {
		purchase.CreatedAt = time.Now()
	}
	cp := *purchase
	l.purchases[purchase.ID] = &cp
	return nil
}

func (l *memoryLedger) PurchasesByUser(userID string) ([]models.Purchase, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	purchases := make([]models.Purchase, 0)
	for _, p := range l.purchases {
		if p.UserID == userID {
			purchases = append(purchases, *p)
		}
	}
	sort.Slice(purchases, func(i, j int) bool {
		if !purchases[i].CreatedAt.Equal(purchases[j].CreatedAt) {
			return purchases[i].CreatedAt.After(purchases[j].CreatedAt)
		}
		return purchases[i].ID > purchases[j].ID
	})
	return purchases, nil
}

func (l *memoryLedger) CreateExchange(exchange *models.ChatExchange) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if exchange.ID == "" {
		exchange.ID = uuid.New()
	}
	if exchange.CreatedAt.IsZero() {
		exchange.CreatedAt = time.Now()
	}
	cp := *exchange
	l.exchanges[exchange.ID] = &cp
	return nil
}

func (l *memoryLedger) ExchangesByUser(userID string) ([]models.ChatExchange, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	exchanges := make([]models.ChatExchange, 0)
	for _, e := range l.exchanges {
		if e.UserID == userID {
			exchanges = append(exchanges, *e)
		}
	}
	sort.Slice(exchanges, func(i, j int) bool {
		if !exchanges[i].CreatedAt.Equal(exchanges[j].CreatedAt) {
			return exchanges[i].CreatedAt.Before(exchanges[j].CreatedAt)
		}
		return exchanges[i].ID < exchanges[j].ID
	})
	return exchanges, nil
}

func (l *memoryLedger) TotalGoldByUser(userID string) (decimal.Decimal, error) {
	purchases, err := l.PurchasesByUser(userID)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, p := range purchases {
		total = total.Add(p.GoldQuantity)
	}
	return total, nil
}

func stampBase(b *models.Base) {
	if b.ID == "" {
		b.ID = uuid.New()
	}
	now := time.Now()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	b.UpdatedAt = now
}
