package agent

import "context"

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Result is the outcome of one successful chat turn.
type Result struct {
	Response  string
	Provider  string
	ToolsUsed []string
	History   []Message
}

type ChatAgent interface {
	Chat(ctx context.Context, userMessage string, history []Message) (*Result, error)
}
