// Package llm abstracts the generative-text backend used by the writer
// agents. The pipeline itself never depends on it; agents receive a Client
// and tests substitute a stub.
package llm

import "context"

// Client generates text for a prompt with an optional system message.
type Client interface {
	Generate(ctx context.Context, prompt, system string) (string, error)
}
