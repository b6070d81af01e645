package services

import (
	"context"

	"aurum/internal/ai"
	"aurum/internal/models"
	"aurum/internal/storage"
)

// chatService orchestrates one chat turn: classify intent, generate a
// reply, persist the exchange.
type chatService struct {
	ledger    storage.Ledger
	assistant *ai.Assistant
	prices    Quoter
}

// NewChatService creates a new ChatServicer.
func NewChatService(ledger storage.Ledger, assistant *ai.Assistant, prices Quoter) ChatServicer {
	return &chatService{ledger: ledger, assistant: assistant, prices: prices}
}

// ProcessMessage runs the conversation pipeline for a single message.
// Classification strictly precedes generation because the reply prompt
// depends on the classified intent; the two calls are not parallelizable.
// If either model call or the write fails, the whole turn fails and no
// ChatExchange is persisted.
func (s *chatService) ProcessMessage(ctx context.Context, userID, message string) (*ChatResult, error) {
	if _, err := s.ledger.UserByID(userID); err != nil {
		return nil, err
	}

	quote := s.prices.Quote()

	hasIntent, err := s.assistant.ClassifyIntent(ctx, message)
	if err != nil {
		return nil, err
	}

	response, err := s.assistant.GenerateReply(ctx, message, hasIntent, quote.CurrentPrice)
	if err != nil {
		return nil, err
	}

	exchange := &models.ChatExchange{
		UserID:             userID,
		Message:            message,
		Response:           response,
		IsInvestmentIntent: hasIntent,
	}
	if err := s.ledger.CreateExchange(exchange); err != nil {
		return nil, err
	}

	return &ChatResult{
		Response:            response,
		HasInvestmentIntent: hasIntent,
		GoldPrice:           quote.CurrentPrice,
	}, nil
}

// GetHistory returns the user's exchanges, oldest first, for replay.
func (s *chatService) GetHistory(userID string) ([]models.ChatExchange, error) {
	if _, err := s.ledger.UserByID(userID); err != nil {
		return nil, err
	}
	return s.ledger.ExchangesByUser(userID)
}
