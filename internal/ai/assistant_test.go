package ai

import (
	"context"
	"errors"
	"strings"
	"testing"

	"aurum/internal/testutil"
)

// stubCompleter returns scripted responses in call order.
type stubCompleter struct {
	responses []string
	errs      []error
	prompts   []string
}

func (s *stubCompleter) Name() string { return "stub" }

func (s *stubCompleter) Complete(_ context.Context, prompt string) (string, error) {
	i := len(s.prompts)
	s.prompts = append(s.prompts, prompt)
	if i < len(s.errs) && s.errs[i] != nil {
		return "", s.errs[i]
	}
	if i < len(s.responses) {
		return s.responses[i], nil
	}
	return "", nil
}

func TestClassifyIntent(t *testing.T) {
	cases := []struct {
		name       string
		completion string
		want       bool
	}{
		{"plain_yes", "YES", true},
		{"lowercase_yes", "yes", true},
		{"yes_with_noise", "  Sure, YES, they want to buy.  ", true},
		{"plain_no", "NO", false},
		{"empty", "", false},
		{"malformed", "the user is asking about storage fees", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assistant := NewAssistant(&stubCompleter{responses: []string{tc.completion}})

			got, err := assistant.ClassifyIntent(context.Background(), "some message")
			testutil.AssertNoError(t, err)
			if got != tc.want {
				t.Errorf("completion %q: expected %v, got %v", tc.completion, tc.want, got)
			}
		})
	}

	t.Run("embeds_message_in_prompt", func(t *testing.T) {
		stub := &stubCompleter{responses: []string{"NO"}}
		assistant := NewAssistant(stub)

		_, err := assistant.ClassifyIntent(context.Background(), "I want to buy gold now")
		testutil.AssertNoError(t, err)
		if !strings.Contains(stub.prompts[0], `"I want to buy gold now"`) {
			t.Errorf("prompt does not embed the message: %s", stub.prompts[0])
		}
	})

	t.Run("completion_error", func(t *testing.T) {
		assistant := NewAssistant(&stubCompleter{errs: []error{errors.New("connection refused")}})

		_, err := assistant.ClassifyIntent(context.Background(), "hello")
		testutil.AssertAppError(t, err, "CLASSIFICATION_FAILED")
	})
}

func TestGenerateReply(t *testing.T) {
	t.Run("no_intent_returns_raw_output", func(t *testing.T) {
		assistant := NewAssistant(&stubCompleter{responses: []string{"Gold is a hedge against inflation."}})

		reply, err := assistant.GenerateReply(context.Background(), "what is gold good for?", false, 10310)
		testutil.AssertNoError(t, err)
		if reply != "Gold is a hedge against inflation." {
			t.Errorf("expected raw output, got %q", reply)
		}
	})

	t.Run("intent_appends_call_to_action", func(t *testing.T) {
		assistant := NewAssistant(&stubCompleter{responses: []string{"Great choice!"}})

		reply, err := assistant.GenerateReply(context.Background(), "buy gold", true, 10345)
		testutil.AssertNoError(t, err)
		if !strings.HasPrefix(reply, "Great choice!") {
			t.Errorf("expected model output first, got %q", reply)
		}
		if !strings.Contains(reply, "purchase digital gold now") {
			t.Errorf("expected call to action, got %q", reply)
		}
		if !strings.Contains(reply, "10345/gram") {
			t.Errorf("expected indicative price in call to action, got %q", reply)
		}
	})

	t.Run("intent_marker_in_prompt", func(t *testing.T) {
		stub := &stubCompleter{responses: []string{"ok"}}
		assistant := NewAssistant(stub)

		_, err := assistant.GenerateReply(context.Background(), "buy gold", true, 10310)
		testutil.AssertNoError(t, err)
		if !strings.Contains(stub.prompts[0], "Investment intent detected: YES") {
			t.Errorf("expected YES marker in prompt: %s", stub.prompts[0])
		}

		_, err = assistant.GenerateReply(context.Background(), "what is gold?", false, 10310)
		testutil.AssertNoError(t, err)
		if !strings.Contains(stub.prompts[1], "Investment intent detected: NO") {
			t.Errorf("expected NO marker in prompt: %s", stub.prompts[1])
		}
	})

	t.Run("completion_error", func(t *testing.T) {
		assistant := NewAssistant(&stubCompleter{errs: []error{errors.New("timeout")}})

		_, err := assistant.GenerateReply(context.Background(), "hello", false, 10310)
		testutil.AssertAppError(t, err, "GENERATION_FAILED")
	})
}
