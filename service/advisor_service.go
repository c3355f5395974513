package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"financing-agent/domain"
	"financing-agent/repository"
)

const (
	defaultChatURL   = "https://api.openai.com/v1/chat/completions"
	defaultChatModel = "gpt-4o-mini"
	summaryMaxTokens = 250
)

// AdvisorService writes a short narrative for a decision. It asks an
// OpenAI-compatible chat endpoint when an API key is configured and falls
// back to a template otherwise. Narratives are cached by decision
// fingerprint. The decision itself is never changed.
type AdvisorService struct {
	apiKey     string
	apiURL     string
	model      string
	httpClient *http.Client
	cache      repository.CacheRepository
	logger     *zap.Logger
}

type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// NewAdvisorService creates an advisor. An empty apiKey disables the remote
// call; apiURL defaults to the OpenAI endpoint.
func NewAdvisorService(apiKey, apiURL string, cache repository.CacheRepository, logger *zap.Logger) *AdvisorService {
	if apiURL == "" {
		apiURL = defaultChatURL
	}
	if cache == nil {
		cache = repository.NewMockCache()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AdvisorService{
		apiKey: apiKey,
		apiURL: apiURL,
		model:  defaultChatModel,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		cache:  cache,
		logger: logger,
	}
}

func (s *AdvisorService) Enabled() bool {
	return s.apiKey != ""
}

// Summarize returns a one-paragraph explanation of decision for c.
func (s *AdvisorService) Summarize(ctx context.Context, c domain.Case, decision domain.Decision) string {
	key := SummaryCacheKey(c, decision)
	if cached, ok := s.cache.Get(ctx, key); ok {
		return cached
	}

	summary := s.FallbackSummary(c, decision)
	if s.Enabled() {
		remote, err := s.callLLM(ctx, s.buildPrompt(c, decision))
		if err != nil {
			s.logger.Warn("advisor call failed, using fallback", zap.Int("caseId", c.ID), zap.Error(err))
		} else {
			summary = remote
		}
	}

	if err := s.cache.Set(ctx, key, summary); err != nil {
		s.logger.Warn("failed to cache summary", zap.String("key", key), zap.Error(err))
	}
	return summary
}

// SummaryCacheKey fingerprints the case and the decision it produced.
func SummaryCacheKey(c domain.Case, decision domain.Decision) string {
	payload, _ := json.Marshal(struct {
		Case     domain.Case     `json:"case"`
		Decision domain.Decision `json:"decision"`
	}{c, decision})
	return fmt.Sprintf("summary:%d:%016x", c.ID, xxhash.Sum64(payload))
}

func (s *AdvisorService) buildPrompt(c domain.Case, decision domain.Decision) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Explain this device financing recommendation to the customer in 3-4 plain sentences.\n\n")
	fmt.Fprintf(&b, "DEVICE: %s %s (%s), price $%.2f\n", c.Device.Brand, c.Device.Model, c.Device.Type, c.Device.BasePrice)
	fmt.Fprintf(&b, "CUSTOMER: credit score %d (%s), monthly income $%.2f, %d existing device loan(s)\n",
		c.Customer.CreditScore, CategorizeCreditScore(c.Customer.CreditScore),
		c.Customer.MonthlyIncome, c.Customer.ExistingDeviceLoans)
	fmt.Fprintf(&b, "RECOMMENDATION: %s (confidence %.0f%%)\n", decision.RecommendedOptionID, decision.Confidence)
	b.WriteString("REASONING:\n")
	for _, r := range decision.Reasoning {
		fmt.Fprintf(&b, "- %s\n", r)
	}
	if len(decision.RiskFactors) > 0 {
		b.WriteString("RISKS:\n")
		for _, r := range decision.RiskFactors {
			fmt.Fprintf(&b, "- %s\n", r)
		}
	}
	if len(decision.Alternatives) > 0 {
		fmt.Fprintf(&b, "ALTERNATIVES: %s\n", strings.Join(decision.Alternatives, ", "))
	}
	return b.String()
}

func (s *AdvisorService) callLLM(ctx context.Context, prompt string) (string, error) {
	reqBody := chatRequest{
		Model: s.model,
		Messages: []chatMessage{
			{
				Role:    "system",
				Content: "You are a device financing advisor. You explain recommendations clearly and honestly, mention the monthly payment and total cost, and point out any risks.",
			},
			{
				Role:    "user",
				Content: prompt,
			},
		},
		MaxTokens: summaryMaxTokens,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", errors.Wrap(err, "marshal chat request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", errors.Wrap(err, "build chat request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "chat request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", errors.Errorf("chat API error (status %d): %s", resp.StatusCode, string(body))
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", errors.Wrap(err, "decode chat response")
	}
	if len(chatResp.Choices) == 0 {
		return "", errors.New("no response from chat API")
	}

	return strings.TrimSpace(chatResp.Choices[0].Message.Content), nil
}

// FallbackSummary builds the narrative without a remote call.
func (s *AdvisorService) FallbackSummary(c domain.Case, decision domain.Decision) string {
	if !decision.Qualified() {
		return fmt.Sprintf(
			"None of the %d offers for the %s %s are available at a credit score of %d. Secured financing or a co-signer could open up options.",
			len(c.Options), c.Device.Brand, c.Device.Model, c.Customer.CreditScore)
	}

	var chosen domain.FinancingOption
	for _, opt := range c.Options {
		if opt.ID == decision.RecommendedOptionID {
			chosen = opt
			break
		}
	}

	summary := fmt.Sprintf(
		"We recommend %s for the %s %s: $%.2f in total",
		chosen.Label, c.Device.Brand, c.Device.Model, chosen.TotalCost)
	if chosen.Months > 0 {
		summary += fmt.Sprintf(" at $%.2f a month over %d months", chosen.MonthlyPayment, chosen.Months)
	}
	summary += fmt.Sprintf(", with %.0f%% confidence.", decision.Confidence)

	if len(decision.RiskFactors) > 0 {
		summary += fmt.Sprintf(" Keep in mind: %s.", strings.Join(decision.RiskFactors, "; "))
	}
	if len(decision.Alternatives) > 0 {
		summary += fmt.Sprintf(" Alternatives worth a look: %s.", strings.Join(decision.Alternatives, ", "))
	}
	return summary
}
