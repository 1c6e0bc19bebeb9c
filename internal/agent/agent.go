package agent

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/confscout/eventscout/internal/logger"
)

// Request is the loosely-typed request map accepted by every agent. The
// "type" key discriminates the operation.
type Request map[string]interface{}

// Response is the result map. It always contains "success"; on failure it
// carries "error" instead of a payload.
type Response map[string]interface{}

// Processor is implemented by every agent.
type Processor interface {
	ProcessRequest(ctx context.Context, req Request) Response
}

// Fail builds a failure response.
func Fail(format string, args ...interface{}) Response {
	return Response{
		"success": false,
		"error":   fmt.Sprintf(format, args...),
	}
}

func requestType(req Request, fallback string) string {
	if t, ok := req["type"].(string); ok && t != "" {
		return t
	}
	return fallback
}

func stringField(req Request, key string) string {
	s, _ := req[key].(string)
	return s
}

func mapField(req Request, key string) map[string]interface{} {
	m, _ := req[key].(map[string]interface{})
	return m
}

func stringSliceField(req Request, key string) []string {
	raw, ok := req[key].([]interface{})
	if !ok {
		if s, ok := req[key].([]string); ok {
			return s
		}
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// HistoryEntry is one recorded agent activity.
type HistoryEntry struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Base carries the identity and activity history shared by all agents.
type Base struct {
	name        string
	description string

	mu      sync.Mutex
	history []HistoryEntry
	updated time.Time
}

// NewBase creates the shared agent state.
func NewBase(name, description string) Base {
	return Base{
		name:        name,
		description: description,
		updated:     time.Now().UTC(),
	}
}

// Name returns the agent name.
func (b *Base) Name() string { return b.name }

// LogActivity logs an activity line and records it in the history.
func (b *Base) LogActivity(activity string, fields logger.Fields) {
	if fields == nil {
		fields = logger.Fields{}
	}
	fields["agent"] = b.name
	logger.Info(activity, fields)
	b.AddToHistory("system", activity)
}

// AddToHistory appends an entry to the conversation history.
func (b *Base) AddToHistory(role, content string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.history = append(b.history, HistoryEntry{
		Role:      role,
		Content:   content,
		Timestamp: time.Now().UTC(),
	})
	b.updated = time.Now().UTC()
}

// History returns up to max recent history entries, newest last.
func (b *Base) History(max int) []HistoryEntry {
	b.mu.Lock()
	defer b.mu.Unlock()
	if max <= 0 || max >= len(b.history) {
		out := make([]HistoryEntry, len(b.history))
		copy(out, b.history)
		return out
	}
	out := make([]HistoryEntry, max)
	copy(out, b.history[len(b.history)-max:])
	return out
}

// Status reports the agent's identity and activity volume.
func (b *Base) Status() Response {
	b.mu.Lock()
	defer b.mu.Unlock()
	return Response{
		"name":                b.name,
		"description":         b.description,
		"last_updated":        b.updated.Format(time.RFC3339),
		"conversation_length": len(b.history),
		"status":              "active",
	}
}
