// Package analytics keeps the audit log and usage counters for the support
// agent. Everything lives in memory; Export* writes JSON snapshots.
package analytics

import (
	"encoding/json"
	"os"
	"sync"
	"time"
)

const maxStoredResponse = 500

type LogEntry struct {
	Timestamp         time.Time `json:"timestamp"`
	UserMessage       string    `json:"user_message"`
	AssistantResponse string    `json:"assistant_response"`
	ToolsUsed         []string  `json:"tools_used"`
	Provider          string    `json:"provider"`
	ResponseTimeMs    float64   `json:"response_time_ms"`
	Error             string    `json:"error,omitempty"`
}

type Summary struct {
	TotalQueries      int            `json:"total_queries"`
	TotalErrors       int            `json:"total_errors"`
	AvgResponseTimeMs float64        `json:"avg_response_time_ms"`
	ToolUsage         map[string]int `json:"tool_usage"`
	ProviderUsage     map[string]int `json:"provider_usage"`
}

type Interaction struct {
	UserMessage       string
	AssistantResponse string
	ToolsUsed         []string
	Provider          string
	Duration          time.Duration
	Err               error
}

type Recorder struct {
	mu            sync.Mutex
	entries       []LogEntry
	toolCalls     map[string]int
	providerCalls map[string]int
	errors        int
	totalDuration time.Duration
}

func NewRecorder() *Recorder {
	return &Recorder{
		toolCalls:     make(map[string]int),
		providerCalls: make(map[string]int),
	}
}

func (r *Recorder) Record(in Interaction) LogEntry {
	response := in.AssistantResponse
	if len(response) > maxStoredResponse {
		response = response[:maxStoredResponse] + "..."
	}

	entry := LogEntry{
		Timestamp:         time.Now(),
		UserMessage:       in.UserMessage,
		AssistantResponse: response,
		ToolsUsed:         in.ToolsUsed,
		Provider:          in.Provider,
		ResponseTimeMs:    float64(in.Duration.Microseconds()) / 1000,
	}
	if in.Err != nil {
		entry.Error = in.Err.Error()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.totalDuration += in.Duration

	if in.Provider != "" {
		r.providerCalls[in.Provider]++
	}
	for _, tool := range in.ToolsUsed {
		r.toolCalls[tool]++
	}
	if in.Err != nil {
		r.errors++
	}

	return entry
}

// Recent returns the n most recent log entries, oldest first.
func (r *Recorder) Recent(n int) []LogEntry {
	r.mu.Lock()
	defer r.mu.Unlock()

	if n <= 0 || n > len(r.entries) {
		n = len(r.entries)
	}

	out := make([]LogEntry, n)
	copy(out, r.entries[len(r.entries)-n:])
	return out
}

func (r *Recorder) Summary() Summary {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := Summary{
		TotalQueries:  len(r.entries),
		TotalErrors:   r.errors,
		ToolUsage:     make(map[string]int, len(r.toolCalls)),
		ProviderUsage: make(map[string]int, len(r.providerCalls)),
	}
	for k, v := range r.toolCalls {
		s.ToolUsage[k] = v
	}
	for k, v := range r.providerCalls {
		s.ProviderUsage[k] = v
	}
	if len(r.entries) > 0 {
		avg := r.totalDuration / time.Duration(len(r.entries))
		s.AvgResponseTimeMs = float64(avg.Microseconds()) / 1000
	}
	return s
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.toolCalls = make(map[string]int)
	r.providerCalls = make(map[string]int)
	r.errors = 0
	r.totalDuration = 0
}

func (r *Recorder) ExportLogs(path string) error {
	data, err := json.MarshalIndent(r.Recent(0), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func (r *Recorder) ExportAnalytics(path string) error {
	data, err := json.MarshalIndent(r.Summary(), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
