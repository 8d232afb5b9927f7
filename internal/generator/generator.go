// Package generator turns a built prompt into a validated list of pop-up
// facts by calling the language model, with bounded retries and deterministic
// fallbacks when no model is configured.
package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/NotMedic/PopUpVideo/internal/grok"
	"github.com/NotMedic/PopUpVideo/internal/metrics"
	"github.com/NotMedic/PopUpVideo/pkg/models"
)

const (
	maxAttempts      = 3
	defaultRetryWait = 2 * time.Second

	systemPrompt = "You are a Pop Up Video fact generator. Generate accurate, structured trivia and always respond with valid JSON matching the exact structure requested."
)

// factsSchema constrains the model response to the FactsList shape. The
// response is still validated locally; the schema is an external guarantee
// that should not be trusted blindly.
var factsSchema = &grok.Schema{
	Name: "facts_list",
	Schema: json.RawMessage(`{
		"type": "object",
		"properties": {
			"facts": {
				"type": "array",
				"minItems": 1,
				"maxItems": 50,
				"items": {
					"type": "object",
					"properties": {
						"time": {"type": "integer", "minimum": 0, "maximum": 600},
						"text": {"type": "string", "minLength": 10, "maxLength": 250}
					},
					"required": ["time", "text"],
					"additionalProperties": false
				}
			}
		},
		"required": ["facts"],
		"additionalProperties": false
	}`),
}

// ChatClient is the language model dependency. *grok.Client satisfies it; a
// nil client puts the generator in offline fallback mode.
type ChatClient interface {
	Complete(ctx context.Context, messages []grok.Message, schema *grok.Schema) (string, error)
}

// Generator invokes the model and validates its structured output
type Generator struct {
	client    ChatClient
	retryWait time.Duration
}

// New creates a generator. client may be nil when no API credential is
// configured; Generate then returns deterministic placeholder facts without
// any network calls.
func New(client ChatClient) *Generator {
	return &Generator{
		client:    client,
		retryWait: defaultRetryWait,
	}
}

// Generate produces a validated fact list for the prompt. It attempts the
// model call up to 3 times, waiting between attempts, and returns the last
// error once retries are exhausted. Callers substitute FallbackFacts on
// error rather than failing the request.
func (g *Generator) Generate(ctx context.Context, promptText string, parsed models.ParsedTitle) ([]models.Fact, error) {
	if g.client == nil {
		return offlineFacts(parsed), nil
	}

	messages := []grok.Message{
		grok.System(systemPrompt),
		grok.User(promptText),
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		metrics.RecordGenerationAttempt()

		facts, err := g.attempt(ctx, messages)
		if err == nil {
			log.Info().Int("attempt", attempt).Int("facts", len(facts)).Msg("Generated facts")
			return facts, nil
		}
		lastErr = err
		log.Warn().Err(err).Int("attempt", attempt).Msg("Fact generation attempt failed")

		if attempt < maxAttempts {
			select {
			case <-time.After(g.retryWait):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}

	metrics.RecordGenerationFailure()
	return nil, fmt.Errorf("fact generation failed after %d attempts: %w", maxAttempts, lastErr)
}

func (g *Generator) attempt(ctx context.Context, messages []grok.Message) ([]models.Fact, error) {
	content, err := g.client.Complete(ctx, messages, factsSchema)
	if err != nil {
		return nil, err
	}

	content = StripFences(content)

	var list models.FactsList
	if err := json.Unmarshal([]byte(content), &list); err != nil {
		return nil, fmt.Errorf("response is not valid JSON: %w", err)
	}
	if err := list.Validate(); err != nil {
		return nil, fmt.Errorf("response failed validation: %w", err)
	}

	return list.Facts, nil
}

// StripFences removes a surrounding markdown code fence from the model
// output, if present.
func StripFences(content string) string {
	if strings.Contains(content, "```json") {
		parts := strings.SplitN(content, "```json", 2)
		content = strings.SplitN(parts[1], "```", 2)[0]
	} else if strings.Contains(content, "```") {
		parts := strings.SplitN(content, "```", 3)
		if len(parts) >= 2 {
			content = parts[1]
		}
	}
	return strings.TrimSpace(content)
}

// FallbackFacts is the two-fact payload substituted when generation fails on
// every attempt. The request still succeeds with these.
func FallbackFacts() []models.Fact {
	return []models.Fact{
		{Time: 10, Text: "Error generating facts for this video."},
		{Time: 30, Text: "Unable to connect to the fact generator. Please try again later."},
	}
}

// offlineFacts is returned when no API credential is configured.
func offlineFacts(parsed models.ParsedTitle) []models.Fact {
	first := fmt.Sprintf("Now watching: %s!", parsed.FullTitle)
	if parsed.MusicFormat {
		first = fmt.Sprintf("This is %s - %s!", parsed.Artist, parsed.Song)
	}

	return []models.Fact{
		{Time: 10, Text: first},
		{Time: 30, Text: "Pop Up Video facts coming soon!"},
		{Time: 60, Text: "Set your GROK_API_KEY environment variable to generate real facts."},
	}
}
