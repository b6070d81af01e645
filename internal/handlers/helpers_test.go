package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"aurum/internal/models"
	"aurum/internal/pricing"
	"aurum/internal/services"
	"aurum/internal/validator"
)

// --- mock services ---

type mockChatService struct {
	processMessageFn func(ctx context.Context, userID, message string) (*services.ChatResult, error)
	getHistoryFn     func(userID string) ([]models.ChatExchange, error)
}

func (m *mockChatService) ProcessMessage(ctx context.Context, userID, message string) (*services.ChatResult, error) {
	if m.processMessageFn != nil {
		return m.processMessageFn(ctx, userID, message)
	}
	return &services.ChatResult{}, nil
}

func (m *mockChatService) GetHistory(userID string) ([]models.ChatExchange, error) {
	if m.getHistoryFn != nil {
		return m.getHistoryFn(userID)
	}
	return []models.ChatExchange{}, nil
}

var _ services.ChatServicer = (*mockChatService)(nil)

type mockPurchaseService struct {
	createPurchaseFn func(userID string, amountInvested, pricePerGram decimal.Decimal) (*models.Purchase, error)
	getPortfolioFn   func(userID string) (*services.Portfolio, error)
}

func (m *mockPurchaseService) CreatePurchase(userID string, amountInvested, pricePerGram decimal.Decimal) (*models.Purchase, error) {
	if m.createPurchaseFn != nil {
		return m.createPurchaseFn(userID, amountInvested, pricePerGram)
	}
	return &models.Purchase{}, nil
}

func (m *mockPurchaseService) GetPortfolio(userID string) (*services.Portfolio, error) {
	if m.getPortfolioFn != nil {
		return m.getPortfolioFn(userID)
	}
	return &services.Portfolio{Purchases: []models.Purchase{}}, nil
}

var _ services.PurchaseServicer = (*mockPurchaseService)(nil)

type mockUserService struct {
	createUserFn func(username, password string) (*models.User, error)
}

func (m *mockUserService) CreateUser(username, password string) (*models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(username, password)
	}
	return &models.User{}, nil
}

func (m *mockUserService) GetUserByID(id string) (*models.User, error) {
	return &models.User{}, nil
}

func (m *mockUserService) EnsureSeedUser(username string) (*models.User, error) {
	return &models.User{}, nil
}

var _ services.UserServicer = (*mockUserService)(nil)

// fixedQuoter quotes a constant price.
type fixedQuoter struct {
	price int64
}

func (q fixedQuoter) Quote() pricing.Quote {
	return pricing.Quote{
		CurrentPrice: q.price,
		Change24h:    decimal.Zero,
		High24h:      q.price,
		Low24h:       q.price,
		Volume:       "2.4M",
		LastUpdated:  time.Now(),
	}
}

// --- test helpers ---

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}
