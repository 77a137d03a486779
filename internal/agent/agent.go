package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/SANK-0311/Multimodal-Airlines-Support-Agent/internal/analytics"
	"github.com/SANK-0311/Multimodal-Airlines-Support-Agent/internal/llm"
	"github.com/rs/zerolog"
)

// FallbackMessage is what the customer sees when every provider fails.
const FallbackMessage = "I apologize, but I'm experiencing technical difficulties. Please try again later or contact ERWIQ Airlines support at 1800-ERWIQ-AIR."

type Agent struct {
	chain        llm.Router
	toolHandler  *ToolHandler
	recorder     *analytics.Recorder
	notifier     *analytics.Notifier
	logger       zerolog.Logger
	maxTurns     int
	systemPrompt string
	tools        []llm.ToolDefinition
}

func New(chain llm.Router, toolHandler *ToolHandler, recorder *analytics.Recorder, notifier *analytics.Notifier, logger zerolog.Logger) *Agent {
	return &Agent{
		chain:        chain,
		toolHandler:  toolHandler,
		recorder:     recorder,
		notifier:     notifier,
		logger:       logger,
		maxTurns:     10,
		systemPrompt: getSystemPrompt(),
		tools:        getToolDefinitions(),
	}
}

// Chat runs one conversational turn. Providers are tried in the chain's
// fixed order; each gets a fresh attempt at the whole turn, and the last
// error is surfaced when every provider fails.
func (a *Agent) Chat(ctx context.Context, userMessage string, history []Message) (*Result, error) {
	clients := a.chain.Clients()
	if len(clients) == 0 {
		return nil, fmt.Errorf("no LLM provider available - set OPENAI_API_KEY, ANTHROPIC_API_KEY, or GEMINI_API_KEY")
	}

	start := time.Now()
	var lastErr error

	for _, client := range clients {
		a.logger.Info().Str("provider", client.Name()).Str("query", truncate(userMessage, 50)).Msg("trying provider")

		response, toolsUsed, err := a.runToolLoop(ctx, client, userMessage, history)
		if err != nil {
			lastErr = err
			a.logger.Warn().Err(err).Str("provider", client.Name()).Msg("provider failed, trying next")
			continue
		}

		duration := time.Since(start)
		a.recorder.Record(analytics.Interaction{
			UserMessage:       userMessage,
			AssistantResponse: response,
			ToolsUsed:         toolsUsed,
			Provider:          client.Name(),
			Duration:          duration,
		})

		a.logger.Info().Str("provider", client.Name()).Dur("duration", duration).Msg("provider responded")
		a.notifier.CheckResponseTime(a.recorder)

		newHistory := append(append([]Message{}, history...),
			Message{Role: "user", Content: userMessage},
			Message{Role: "assistant", Content: response},
		)

		return &Result{
			Response:  response,
			Provider:  client.Name(),
			ToolsUsed: toolsUsed,
			History:   newHistory,
		}, nil
	}

	a.recorder.Record(analytics.Interaction{
		UserMessage:       userMessage,
		AssistantResponse: FallbackMessage,
		Provider:          "none",
		Duration:          time.Since(start),
		Err:               lastErr,
	})
	a.notifier.Send("All Providers Failed", lastErr.Error(), analytics.LevelError)
	a.notifier.CheckErrorRate(a.recorder)

	return &Result{
		Response: FallbackMessage,
		Provider: "none",
		History:  history,
	}, nil
}

// runToolLoop drives a single provider through the tool-calling loop until
// it produces a plain reply or the turn cap is hit.
func (a *Agent) runToolLoop(ctx context.Context, client llm.Client, userMessage string, history []Message) (string, []string, error) {
	messages := buildMessages(history, userMessage)
	var toolsUsed []string

	for turn := 1; turn <= a.maxTurns; turn++ {
		a.logger.Debug().Int("turn", turn).Str("provider", client.Name()).Msg("agent turn")

		resp, err := client.Chat(ctx, messages, a.tools, a.systemPrompt)
		if err != nil {
			return "", nil, err
		}

		if len(resp.ToolCalls) == 0 {
			return resp.Content, toolsUsed, nil
		}

		assistantContent := resp.Content
		toolCallsJSON, _ := json.Marshal(resp.ToolCalls)
		assistantContent += "\n[Tool calls: " + string(toolCallsJSON) + "]"
		messages = append(messages, llm.Message{Role: "assistant", Content: assistantContent})

		var toolResultsContent string
		for _, tc := range resp.ToolCalls {
			a.logger.Info().Str("tool", tc.Name).Msg("executing tool")
			toolsUsed = append(toolsUsed, tc.Name)

			result, err := a.toolHandler.ExecuteTool(ctx, tc.Name, tc.Input)
			if err != nil {
				a.logger.Error().Err(err).Str("tool", tc.Name).Msg("tool execution failed")
				result = fmt.Sprintf("Error: %v", err)
			}

			toolResultsContent += fmt.Sprintf("\n[Tool result for %s (id=%s)]: %s\n", tc.Name, tc.ID, result)
		}

		messages = append(messages, llm.Message{Role: "user", Content: toolResultsContent})
	}

	return "", nil, fmt.Errorf("max turns (%d) exceeded", a.maxTurns)
}

func buildMessages(history []Message, currentMessage string) []llm.Message {
	messages := make([]llm.Message, 0, len(history)+1)

	for _, msg := range history {
		messages = append(messages, llm.Message{
			Role:    msg.Role,
			Content: msg.Content,
		})
	}

	messages = append(messages, llm.Message{
		Role:    "user",
		Content: currentMessage,
	})

	return messages
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
