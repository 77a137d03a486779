package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/SANK-0311/Multimodal-Airlines-Support-Agent/internal/airline"
	"github.com/SANK-0311/Multimodal-Airlines-Support-Agent/internal/analytics"
	"github.com/SANK-0311/Multimodal-Airlines-Support-Agent/internal/llm"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedClient plays back a fixed sequence of responses, one per Chat call.
type scriptedClient struct {
	name      string
	responses []*llm.Response
	err       error
	calls     int
	lastMsgs  []llm.Message
}

func (s *scriptedClient) Chat(ctx context.Context, messages []llm.Message, tools []llm.ToolDefinition, systemPrompt string) (*llm.Response, error) {
	s.calls++
	s.lastMsgs = messages
	if s.err != nil {
		return nil, s.err
	}
	idx := s.calls - 1
	if idx >= len(s.responses) {
		idx = len(s.responses) - 1
	}
	return s.responses[idx], nil
}

func (s *scriptedClient) Name() string {
	return s.name
}

type staticRouter struct {
	clients []llm.Client
}

func (r *staticRouter) Clients() []llm.Client {
	return r.clients
}

func newTestAgent(router llm.Router, recorder *analytics.Recorder) *Agent {
	handler := NewToolHandler(airline.NewRefundLedger(), nil, nil)
	notifier := analytics.NewNotifier(zerolog.Nop())
	return New(router, handler, recorder, notifier, zerolog.Nop())
}

func textResponse(content string) *llm.Response {
	return &llm.Response{Content: content, StopReason: "end_turn"}
}

func toolResponse(name string, input string) *llm.Response {
	return &llm.Response{
		ToolCalls:  []llm.ToolCall{{ID: "call_1", Name: name, Input: []byte(input)}},
		StopReason: "tool_use",
	}
}

func TestChatPlainReply(t *testing.T) {
	client := &scriptedClient{name: "openai", responses: []*llm.Response{textResponse("Hello! How can I help?")}}
	recorder := analytics.NewRecorder()
	ag := newTestAgent(&staticRouter{clients: []llm.Client{client}}, recorder)

	result, err := ag.Chat(context.Background(), "hi", nil)
	require.NoError(t, err)

	assert.Equal(t, "Hello! How can I help?", result.Response)
	assert.Equal(t, "openai", result.Provider)
	assert.Empty(t, result.ToolsUsed)

	require.Len(t, result.History, 2)
	assert.Equal(t, Message{Role: "user", Content: "hi"}, result.History[0])
	assert.Equal(t, "assistant", result.History[1].Role)

	summary := recorder.Summary()
	assert.Equal(t, 1, summary.TotalQueries)
	assert.Equal(t, 1, summary.ProviderUsage["openai"])
}

func TestChatRunsToolLoop(t *testing.T) {
	client := &scriptedClient{
		name: "openai",
		responses: []*llm.Response{
			toolResponse("get_flight_status", `{"flight_number":"EQ101"}`),
			textResponse("Flight EQ101 is on time."),
		},
	}
	recorder := analytics.NewRecorder()
	ag := newTestAgent(&staticRouter{clients: []llm.Client{client}}, recorder)

	result, err := ag.Chat(context.Background(), "is EQ101 on time?", nil)
	require.NoError(t, err)

	assert.Equal(t, "Flight EQ101 is on time.", result.Response)
	assert.Equal(t, []string{"get_flight_status"}, result.ToolsUsed)
	assert.Equal(t, 2, client.calls)

	// The second call carries the tool result back to the model.
	lastMsg := client.lastMsgs[len(client.lastMsgs)-1]
	assert.Equal(t, "user", lastMsg.Role)
	assert.Contains(t, lastMsg.Content, "[Tool result for get_flight_status")
	assert.Contains(t, lastMsg.Content, "EQ101")

	assert.Equal(t, 1, recorder.Summary().ToolUsage["get_flight_status"])
}

func TestChatToolErrorIsFedBack(t *testing.T) {
	client := &scriptedClient{
		name: "openai",
		responses: []*llm.Response{
			toolResponse("get_destination_image", `{"city":"Goa"}`),
			textResponse("Sorry, I couldn't generate an image right now."),
		},
	}
	ag := newTestAgent(&staticRouter{clients: []llm.Client{client}}, analytics.NewRecorder())

	result, err := ag.Chat(context.Background(), "show me Goa", nil)
	require.NoError(t, err)

	// The media service is not configured; the error becomes a tool result
	// instead of aborting the turn.
	lastMsg := client.lastMsgs[len(client.lastMsgs)-1]
	assert.Contains(t, lastMsg.Content, "Error:")
	assert.Equal(t, "Sorry, I couldn't generate an image right now.", result.Response)
}

func TestChatFallsBackToNextProvider(t *testing.T) {
	failing := &scriptedClient{name: "openai", err: fmt.Errorf("rate limited")}
	working := &scriptedClient{name: "claude", responses: []*llm.Response{textResponse("Hello from Claude.")}}
	recorder := analytics.NewRecorder()
	ag := newTestAgent(&staticRouter{clients: []llm.Client{failing, working}}, recorder)

	result, err := ag.Chat(context.Background(), "hi", nil)
	require.NoError(t, err)

	assert.Equal(t, "claude", result.Provider)
	assert.Equal(t, "Hello from Claude.", result.Response)
	assert.Equal(t, 1, failing.calls)
	assert.Equal(t, 1, working.calls)
	assert.Equal(t, 1, recorder.Summary().ProviderUsage["claude"])
}

func TestChatAllProvidersFail(t *testing.T) {
	first := &scriptedClient{name: "openai", err: fmt.Errorf("rate limited")}
	second := &scriptedClient{name: "claude", err: fmt.Errorf("overloaded")}
	recorder := analytics.NewRecorder()
	ag := newTestAgent(&staticRouter{clients: []llm.Client{first, second}}, recorder)

	history := []Message{{Role: "user", Content: "earlier"}}
	result, err := ag.Chat(context.Background(), "hi", history)
	require.NoError(t, err)

	assert.Equal(t, FallbackMessage, result.Response)
	assert.Equal(t, "none", result.Provider)
	assert.Equal(t, history, result.History, "a failed turn must not grow the history")

	summary := recorder.Summary()
	assert.Equal(t, 1, summary.TotalQueries)
	assert.Equal(t, 1, summary.TotalErrors)
	assert.Equal(t, 1, summary.ProviderUsage["none"])
}

func TestChatNoProvidersConfigured(t *testing.T) {
	ag := newTestAgent(&staticRouter{}, analytics.NewRecorder())

	_, err := ag.Chat(context.Background(), "hi", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no LLM provider available")
}

func TestChatMaxTurns(t *testing.T) {
	// A model that calls tools forever trips the turn cap, which counts as
	// a provider failure.
	looping := &scriptedClient{
		name:      "openai",
		responses: []*llm.Response{toolResponse("lookup_booking", `{"pnr":"ABC123"}`)},
	}
	ag := newTestAgent(&staticRouter{clients: []llm.Client{looping}}, analytics.NewRecorder())

	result, err := ag.Chat(context.Background(), "my booking", nil)
	require.NoError(t, err)

	assert.Equal(t, FallbackMessage, result.Response)
	assert.Equal(t, 10, looping.calls)
}

func TestChatCarriesHistory(t *testing.T) {
	client := &scriptedClient{name: "openai", responses: []*llm.Response{textResponse("It departs at 06:00.")}}
	ag := newTestAgent(&staticRouter{clients: []llm.Client{client}}, analytics.NewRecorder())

	history := []Message{
		{Role: "user", Content: "Tell me about EQ101."},
		{Role: "assistant", Content: "It flies Mumbai to Delhi."},
	}

	result, err := ag.Chat(context.Background(), "When does it leave?", history)
	require.NoError(t, err)

	require.Len(t, client.lastMsgs, 3)
	assert.Equal(t, "Tell me about EQ101.", client.lastMsgs[0].Content)
	assert.Equal(t, "When does it leave?", client.lastMsgs[2].Content)

	require.Len(t, result.History, 4)
	assert.Equal(t, "It departs at 06:00.", result.History[3].Content)
}

func TestToolDefinitionsMatchDispatch(t *testing.T) {
	handler := NewToolHandler(airline.NewRefundLedger(), nil, nil)

	for _, def := range getToolDefinitions() {
		input, err := json.Marshal(map[string]string{})
		require.NoError(t, err)

		// Every advertised tool must reach a handler; missing-argument
		// errors are fine, "unknown tool" is not.
		_, err = handler.ExecuteTool(context.Background(), def.Name, input)
		if err != nil {
			assert.NotContains(t, err.Error(), "unknown tool")
		}
	}
}
