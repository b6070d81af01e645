package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"aurum/internal/ai"
	"aurum/internal/storage"
	"aurum/internal/testutil"
)

// stubCompleter returns scripted completions in call order: the first call
// is the intent classification, the second the reply generation.
type stubCompleter struct {
	responses []string
	errs      []error
	calls     int
}

func (s *stubCompleter) Name() string { return "stub" }

func (s *stubCompleter) Complete(_ context.Context, _ string) (string, error) {
	i := s.calls
	s.calls++
	if i < len(s.errs) && s.errs[i] != nil {
		return "", s.errs[i]
	}
	if i < len(s.responses) {
		return s.responses[i], nil
	}
	return "", nil
}

func newChatService(ledger storage.Ledger, llm ai.Completer) ChatServicer {
	return NewChatService(ledger, ai.NewAssistant(llm), fixedQuoter{price: 10310})
}

func TestProcessMessage(t *testing.T) {
	t.Run("investment_intent", func(t *testing.T) {
		ledger := storage.NewMemoryLedger()
		svc := newChatService(ledger, &stubCompleter{responses: []string{"YES", "Gold is a great pick today."}})
		user := testutil.CreateTestUser(t, ledger)

		result, err := svc.ProcessMessage(context.Background(), user.ID, "I want to buy gold now")
		testutil.AssertNoError(t, err)

		if !result.HasInvestmentIntent {
			t.Error("expected investment intent")
		}
		if !strings.HasPrefix(result.Response, "Gold is a great pick today.") {
			t.Errorf("unexpected response %q", result.Response)
		}
		if !strings.Contains(result.Response, "purchase digital gold now") {
			t.Errorf("expected call to action in %q", result.Response)
		}
		if result.GoldPrice != 10310 {
			t.Errorf("expected gold price 10310, got %d", result.GoldPrice)
		}

		// Exactly one exchange persisted.
		history, err := ledger.ExchangesByUser(user.ID)
		testutil.AssertNoError(t, err)
		if len(history) != 1 {
			t.Fatalf("expected 1 exchange, got %d", len(history))
		}
		if history[0].Message != "I want to buy gold now" {
			t.Errorf("unexpected stored message %q", history[0].Message)
		}
		if !history[0].IsInvestmentIntent {
			t.Error("expected stored intent flag")
		}
		if history[0].Response != result.Response {
			t.Error("stored response differs from returned response")
		}
	})

	t.Run("no_intent", func(t *testing.T) {
		ledger := storage.NewMemoryLedger()
		svc := newChatService(ledger, &stubCompleter{responses: []string{"NO", "Gold has historically hedged inflation."}})
		user := testutil.CreateTestUser(t, ledger)

		result, err := svc.ProcessMessage(context.Background(), user.ID, "why do people like gold?")
		testutil.AssertNoError(t, err)

		if result.HasInvestmentIntent {
			t.Error("expected no investment intent")
		}
		if result.Response != "Gold has historically hedged inflation." {
			t.Errorf("expected raw reply, got %q", result.Response)
		}
	})

	t.Run("classification_failure_persists_nothing", func(t *testing.T) {
		ledger := storage.NewMemoryLedger()
		svc := newChatService(ledger, &stubCompleter{errs: []error{errors.New("provider down")}})
		user := testutil.CreateTestUser(t, ledger)

		_, err := svc.ProcessMessage(context.Background(), user.ID, "hello")
		testutil.AssertAppError(t, err, "CLASSIFICATION_FAILED")

		history, err := ledger.ExchangesByUser(user.ID)
		testutil.AssertNoError(t, err)
		if len(history) != 0 {
			t.Errorf("expected no exchanges after failure, got %d", len(history))
		}
	})

	t.Run("generation_failure_persists_nothing", func(t *testing.T) {
		ledger := storage.NewMemoryLedger()
		svc := newChatService(ledger, &stubCompleter{
			responses: []string{"YES"},
			errs:      []error{nil, errors.New("timeout")},
		})
		user := testutil.CreateTestUser(t, ledger)

		_, err := svc.ProcessMessage(context.Background(), user.ID, "buy gold")
		testutil.AssertAppError(t, err, "GENERATION_FAILED")

		history, err := ledger.ExchangesByUser(user.ID)
		testutil.AssertNoError(t, err)
		if len(history) != 0 {
			t.Errorf("expected no exchanges after failure, got %d", len(history))
		}
	})

	t.Run("unknown_user", func(t *testing.T) {
		svc := newChatService(storage.NewMemoryLedger(), &stubCompleter{})

		_, err := svc.ProcessMessage(context.Background(), "missing", "hello")
		testutil.AssertAppError(t, err, "USER_NOT_FOUND")
	})
}

func TestGetHistory(t *testing.T) {
	t.Run("replays_oldest_first", func(t *testing.T) {
		ledger := storage.NewMemoryLedger()
		svc := newChatService(ledger, &stubCompleter{responses: []string{"NO", "first reply", "NO", "second reply"}})
		user := testutil.CreateTestUser(t, ledger)

		_, err := svc.ProcessMessage(context.Background(), user.ID, "first")
		testutil.AssertNoError(t, err)
		_, err = svc.ProcessMessage(context.Background(), user.ID, "second")
		testutil.AssertNoError(t, err)

		history, err := svc.GetHistory(user.ID)
		testutil.AssertNoError(t, err)

		if len(history) != 2 {
			t.Fatalf("expected 2 exchanges, got %d", len(history))
		}
		if history[0].Message != "first" || history[1].Message != "second" {
			t.Errorf("history out of order: %q then %q", history[0].Message, history[1].Message)
		}
	})

	t.Run("unknown_user", func(t *testing.T) {
		svc := newChatService(storage.NewMemoryLedger(), &stubCompleter{})

		_, err := svc.GetHistory("missing")
		testutil.AssertAppError(t, err, "USER_NOT_FOUND")
	})
}
