package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGeminiClient(serverURL string) *GeminiClient {
	c := NewGeminiClient("test-key", "gemini-2.0-flash")
	c.baseURL = serverURL
	return c
}

func TestGeminiChatText(t *testing.T) {
	var captured geminiRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"candidates": []map[string]interface{}{
				{
					"content": map[string]interface{}{
						"role":  "model",
						"parts": []map[string]interface{}{{"text": "Flight EQ101 departs at 06:00."}},
					},
					"finishReason": "STOP",
				},
			},
		})
	}))
	defer server.Close()

	client := newTestGeminiClient(server.URL)

	messages := []Message{
		{Role: "user", Content: "Is EQ101 on time?"},
		{Role: "assistant", Content: "Let me check."},
		{Role: "user", Content: "Thanks."},
	}

	resp, err := client.Chat(context.Background(), messages, nil, "You are a support agent.")
	require.NoError(t, err)

	assert.Equal(t, "Flight EQ101 departs at 06:00.", resp.Content)
	assert.Empty(t, resp.ToolCalls)
	assert.Equal(t, "end_turn", resp.StopReason)

	// Assistant turns map to the "model" role on the wire.
	require.Len(t, captured.Contents, 3)
	assert.Equal(t, "user", captured.Contents[0].Role)
	assert.Equal(t, "model", captured.Contents[1].Role)
	require.NotNil(t, captured.SystemInstruction)
	assert.Equal(t, "You are a support agent.", captured.SystemInstruction.Parts[0].Text)
}

func TestGeminiChatFunctionCall(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"candidates": []map[string]interface{}{
				{
					"content": map[string]interface{}{
						"role": "model",
						"parts": []map[string]interface{}{
							{
								"functionCall": map[string]interface{}{
									"name": "get_flight_status",
									"args": map[string]interface{}{"flight_number": "EQ101"},
								},
							},
						},
					},
					"finishReason": "STOP",
				},
			},
		})
	}))
	defer server.Close()

	client := newTestGeminiClient(server.URL)

	resp, err := client.Chat(context.Background(), []Message{{Role: "user", Content: "status of EQ101"}}, nil, "")
	require.NoError(t, err)

	require.Len(t, resp.ToolCalls, 1)
	assert.Equal(t, "get_flight_status", resp.ToolCalls[0].Name)
	assert.NotEmpty(t, resp.ToolCalls[0].ID)
	assert.JSONEq(t, `{"flight_number":"EQ101"}`, string(resp.ToolCalls[0].Input))
	assert.Equal(t, "tool_use", resp.StopReason)
}

func TestGeminiChatToolDeclarations(t *testing.T) {
	var captured geminiRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"candidates": []map[string]interface{}{
				{
					"content": map[string]interface{}{
						"role":  "model",
						"parts": []map[string]interface{}{{"text": "ok"}},
					},
				},
			},
		})
	}))
	defer server.Close()

	client := newTestGeminiClient(server.URL)

	tools := []ToolDefinition{
		{
			Name:        "get_ticket_price",
			Description: "Look up fares",
			Parameters: map[string]interface{}{
				"destination_city": map[string]interface{}{"type": "string"},
			},
			Required: []string{"destination_city"},
		},
	}

	_, err := client.Chat(context.Background(), []Message{{Role: "user", Content: "hi"}}, tools, "")
	require.NoError(t, err)

	require.Len(t, captured.Tools, 1)
	require.Len(t, captured.Tools[0].FunctionDeclarations, 1)
	decl := captured.Tools[0].FunctionDeclarations[0]
	assert.Equal(t, "get_ticket_price", decl.Name)
	assert.Equal(t, "object", decl.Parameters["type"])
}

func TestGeminiChatErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{
			name:    "http error status",
			status:  http.StatusTooManyRequests,
			body:    `{"error":{"code":429,"message":"quota exceeded"}}`,
			wantErr: "status 429",
		},
		{
			name:    "error payload with 200",
			status:  http.StatusOK,
			body:    `{"error":{"code":400,"message":"invalid argument"}}`,
			wantErr: "invalid argument",
		},
		{
			name:    "no candidates",
			status:  http.StatusOK,
			body:    `{"candidates":[]}`,
			wantErr: "no candidates",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := newTestGeminiClient(server.URL)

			_, err := client.Chat(context.Background(), []Message{{Role: "user", Content: "hi"}}, nil, "")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
