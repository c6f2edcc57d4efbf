// Package llm regenerates provider listing text with an OpenAI-compatible chat API
package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/sashabaranov/go-openai"

	"github.com/umputun/freshness/pkg/config"
	"github.com/umputun/freshness/pkg/domain"
)

// maxAttempts limits retries of empty responses
const maxAttempts = 3

// errEmptyResponse is returned when the model produced nothing usable
var errEmptyResponse = errors.New("empty response from llm")

// Writer uses an LLM to rewrite listing sections
type Writer struct {
	client    *openai.Client
	config    config.LLMConfig
	systemMsg string
	policy    *bluemonday.Policy
}

// NewWriter creates a new LLM writer
func NewWriter(cfg config.LLMConfig) *Writer {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}
	if cfg.Timeout > 0 {
		clientConfig.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}

	// use custom system prompt if provided, otherwise use default
	systemMsg := cfg.SystemPrompt
	if systemMsg == "" {
		systemMsg = defaultSystemPrompt
	}

	return &Writer{
		client:    openai.NewClientWithConfig(clientConfig),
		config:    cfg,
		systemMsg: systemMsg,
		policy:    bluemonday.UGCPolicy(),
	}
}

// default system prompt for listing rewrites
const defaultSystemPrompt = `You are an editor of a healthcare provider directory.
You rewrite listing sections so they are accurate, current and helpful for patients.
Rules:
- Use only the facts given in the listing. Never invent services, prices, staff or opening hours.
- Write in the same language as the existing listing text. If there is no text, write in Japanese.
- Do not give medical advice and do not make claims about treatment outcomes.
- Return only the section text, without headings, quotes or explanations.`

// sectionInstructions tells the model what each rewritable section is
var sectionInstructions = map[string]string{
	domain.SectionDescription: "Write a fresh description of the provider (300-500 characters). " +
		"Cover what the provider does, who it serves and where it is.",
	domain.SectionSpecialtiesSummary: "Write a short summary of the provider's specialties (100-200 characters), " +
		"mentioning each listed specialty once.",
	domain.SectionSEOSummary: "Write a search result meta description (at most 160 characters) " +
		"with the provider name, main specialty and area.",
}

// Rewrite generates a new text for one section of the provider listing
func (w *Writer) Rewrite(ctx context.Context, p domain.Provider, section string) (string, error) {
	instruction, ok := sectionInstructions[section]
	if !ok {
		return "", fmt.Errorf("section %q can't be rewritten", section)
	}
	prompt := w.buildPrompt(p, section, instruction)

	// retry up to maxAttempts times if we get an empty response
	for attempt := 0; attempt < maxAttempts; attempt++ {
		chatReq := openai.ChatCompletionRequest{
			Model:       w.config.Model,
			Temperature: float32(w.config.Temperature),
			MaxTokens:   w.config.MaxTokens,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: w.systemMsg},
				{Role: openai.ChatMessageRoleUser, Content: prompt},
			},
		}

		resp, err := w.client.CreateChatCompletion(ctx, chatReq)
		if err != nil {
			return "", fmt.Errorf("llm request for %s: %w", section, err)
		}
		if len(resp.Choices) == 0 {
			continue
		}

		text := w.clean(resp.Choices[0].Message.Content)
		if text != "" {
			return text, nil
		}
	}

	return "", fmt.Errorf("section %s after %d attempts: %w", section, maxAttempts, errEmptyResponse)
}

// buildPrompt creates the user prompt with the listing facts and the current section text
func (w *Writer) buildPrompt(p domain.Provider, section, instruction string) string {
	var sb strings.Builder
	sb.WriteString("Listing:\n")
	fmt.Fprintf(&sb, "- Name: %s\n", p.Name)
	if p.NameRomaji != "" {
		fmt.Fprintf(&sb, "- Name (romaji): %s\n", p.NameRomaji)
	}
	if p.Address != "" {
		fmt.Fprintf(&sb, "- Address: %s\n", p.Address)
	}
	if len(p.Specialties) > 0 {
		fmt.Fprintf(&sb, "- Specialties: %s\n", strings.Join(p.Specialties, ", "))
	}
	if p.Website != "" {
		fmt.Fprintf(&sb, "- Website: %s\n", p.Website)
	}

	if current := currentText(p, section); current != "" {
		// limit current text to keep the prompt small
		if r := []rune(current); len(r) > 1000 {
			current = string(r[:1000]) + "..."
		}
		fmt.Fprintf(&sb, "\nCurrent %s:\n%s\n", strings.ReplaceAll(section, "_", " "), current)
	}

	sb.WriteString("\nTask: ")
	sb.WriteString(instruction)
	return sb.String()
}

// clean strips wrapping quotes and sanitizes model output, the result is safe html
func (w *Writer) clean(content string) string {
	text := strings.Trim(strings.TrimSpace(content), "\"'`「」")
	return strings.TrimSpace(w.policy.Sanitize(text))
}

func currentText(p domain.Provider, section string) string {
	switch section {
	case domain.SectionDescription:
		return p.Description
	case domain.SectionSpecialtiesSummary:
		return p.SpecialtiesSummary
	case domain.SectionSEOSummary:
		return p.SEOSummary
	}
	return ""
}
