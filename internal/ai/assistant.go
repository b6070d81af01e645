package ai

import (
	"context"
	"fmt"
	"strings"

	apperrors "aurum/internal/errors"
)

// Prompt templates are kept next to the code that interprets their output,
// so the contract between prompt and parser stays in one place.
const intentPrompt = `Analyze the following user message about gold investment and determine if they are expressing investment intent.

User message: "%s"

Respond with only "YES" if they want to buy/invest in gold, or "NO" otherwise.`

const replyPrompt = `You are GoldAI, an intelligent digital gold investment assistant.
Current gold price: %d per gram

User message: "%s"
Investment intent detected: %s

Guidelines:
- If intent detected, encourage buying
- Otherwise give an educational, helpful response`

// callToAction is appended to every reply that follows a positive intent
// classification. %d is the current indicative price per gram.
const callToAction = "\n\nWould you like to purchase digital gold now? Current price: %d/gram"

// Assistant implements the two model-backed operations of the chat
// pipeline: intent classification and reply generation. Classification
// strictly precedes generation because the reply prompt depends on the
// classified intent.
type Assistant struct {
	llm Completer
}

// NewAssistant creates an Assistant on top of the given completion provider.
func NewAssistant(llm Completer) *Assistant {
	return &Assistant{llm: llm}
}

// ClassifyIntent reports whether the message expresses a desire to purchase
// gold. The completion is interpreted as true iff its trimmed, upper-cased
// form contains "YES"; anything else, including malformed output, is false.
// Completion-call errors surface as CLASSIFICATION_FAILED.
func (a *Assistant) ClassifyIntent(ctx context.Context, message string) (bool, error) {
	out, err := a.llm.Complete(ctx, fmt.Sprintf(intentPrompt, message))
	if err != nil {
		return false, apperrors.Wrap(apperrors.ErrClassificationFailed, err)
	}
	return strings.Contains(strings.ToUpper(strings.TrimSpace(out)), "YES"), nil
}

// GenerateReply produces the assistant's reply to the message, conditioned
// on the classified intent. When intent is true the fixed call-to-action
// with the indicative price is appended to the model output. Completion-call
// errors surface as GENERATION_FAILED.
func (a *Assistant) GenerateReply(ctx context.Context, message string, hasIntent bool, pricePerGram int64) (string, error) {
	marker := "NO"
	if hasIntent {
		marker = "YES"
	}

	out, err := a.llm.Complete(ctx, fmt.Sprintf(replyPrompt, pricePerGram, message, marker))
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrGenerationFailed, err)
	}

	if hasIntent {
		return out + fmt.Sprintf(callToAction, pricePerGram), nil
	}
	return out, nil
}
