package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"budget-agent/domain"
)

// NarrativeService turns a rule-based advisory analysis into a short prose
// summary. When no API key is configured it falls back to a deterministic
// template, so the engine output never depends on the LLM being reachable.
type NarrativeService struct {
	apiKey     string
	apiURL     string
	enabled    bool
	httpClient *http.Client
	log        *logrus.Logger
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

// NewNarrativeService builds a narrative generator. An empty apiKey disables
// the LLM path entirely.
func NewNarrativeService(apiKey string, log *logrus.Logger) *NarrativeService {
	return &NarrativeService{
		apiKey:  apiKey,
		apiURL:  "https://api.openai.com/v1/chat/completions",
		enabled: apiKey != "",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: log,
	}
}

// GenerateAnalysisNarrative summarizes an advisory analysis in a few
// sentences.
func (s *NarrativeService) GenerateAnalysisNarrative(
	totalIncome float64,
	allocation domain.Allocation,
	analysis domain.AdvisorAnalysis,
) string {
	if !s.enabled {
		return s.fallbackNarrative(analysis)
	}

	prompt := fmt.Sprintf(`Summarize this budget review for the user.

BUDGET:
- Monthly income: %.2f
- Savings: %.2f (%.1f%%)
- Investments: %.2f (%.1f%%)
- Personal: %.2f
- Misc: %.2f

HEALTH: %s (score %d/100)

ISSUES:
%s

RECOMMENDATIONS:
%s

Write 3-4 plain sentences. Be concrete about the numbers, encouraging but
realistic, and do not invent figures that are not listed above.`,
		totalIncome,
		allocation.Savings, analysis.Health.SavingsRatio,
		allocation.Investments, analysis.Health.InvestmentRatio,
		allocation.Personal, allocation.Misc,
		analysis.Health.Rating, analysis.Health.Score,
		bulleted(analysis.IdentifiedLeaks),
		bulleted(analysis.Recommendations),
	)

	narrative, err := s.callLLM(prompt)
	if err != nil {
		s.log.WithError(err).Warn("narrative generation failed, using fallback")
		return s.fallbackNarrative(analysis)
	}
	return narrative
}

func (s *NarrativeService) callLLM(prompt string) (string, error) {
	reqBody := chatRequest{
		Model: "gpt-4o-mini",
		Messages: []chatMessage{
			{
				Role: "system",
				Content: "You are a personal finance advisor. You write short, " +
					"clear, factual summaries of budget reviews. You never " +
					"invent numbers and you never give legal or tax advice.",
			},
			{
				Role:    "user",
				Content: prompt,
			},
		},
		MaxTokens: 300,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest(http.MethodPost, s.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", s.apiKey))

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("no response from model")
	}
	return parsed.Choices[0].Message.Content, nil
}

func (s *NarrativeService) fallbackNarrative(analysis domain.AdvisorAnalysis) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Your allocation health is %s (%d/100).",
		analysis.Health.Rating, analysis.Health.Score)
	if len(analysis.IdentifiedLeaks) > 0 {
		fmt.Fprintf(&b, " Main issue: %s.", analysis.IdentifiedLeaks[0])
	}
	if len(analysis.PriorityActions) > 0 {
		fmt.Fprintf(&b, " Priority action: %s.", analysis.PriorityActions[0])
	}
	return b.String()
}

func bulleted(items []string) string {
	if len(items) == 0 {
		return "- none"
	}
	var b strings.Builder
	for _, item := range items {
		b.WriteString("- ")
		b.WriteString(item)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
