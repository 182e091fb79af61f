package llm

import (
	"context"
	"errors"
	"fmt"
)

// Chain is a Client that tries an ordered list of providers until one
// succeeds. It gives the advisory layer free-tier resilience: if the first
// provider is rate limited or down, the next one gets the same prompt.
type Chain struct {
	clients []Client
}

// NewChain creates a Chain over the given providers, tried in order.
func NewChain(clients ...Client) *Chain {
	return &Chain{clients: clients}
}

// GenerateContent tries each provider in order and returns the first
// successful response. All provider errors are joined if every one fails.
func (c *Chain) GenerateContent(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	return c.generate(ctx, prompt, tier, Client.GenerateContent)
}

// GenerateJSON tries each provider in order and returns the first
// successful JSON response.
func (c *Chain) GenerateJSON(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	return c.generate(ctx, prompt, tier, Client.GenerateJSON)
}

func (c *Chain) generate(ctx context.Context, prompt string, tier ModelTier, call func(Client, context.Context, string, ModelTier) (string, error)) (string, error) {
	if len(c.clients) == 0 {
		return "", fmt.Errorf("no providers configured")
	}

	var errs []error
	for _, client := range c.clients {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		text, err := call(client, ctx, prompt, tier)
		if err == nil {
			return text, nil
		}
		errs = append(errs, err)
	}
	return "", fmt.Errorf("all providers failed: %w", errors.Join(errs...))
}

// GetModel returns the first provider's model for a tier.
func (c *Chain) GetModel(tier ModelTier) string {
	if len(c.clients) == 0 {
		return ""
	}
	return c.clients[0].GetModel(tier)
}

// Close closes every provider in the chain.
func (c *Chain) Close() error {
	var errs []error
	for _, client := range c.clients {
		if err := client.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
