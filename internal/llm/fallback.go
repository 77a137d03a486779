package llm

// FallbackChain holds the configured providers in a fixed priority order,
// starting with the preferred one. The agent walks the chain sequentially
// and moves to the next client when a call fails.
type FallbackChain struct {
	clients []Client
}

func NewFallbackChain(preferred string, openaiClient, claudeClient, geminiClient Client) *FallbackChain {
	byName := map[string]Client{
		"openai": openaiClient,
		"claude": claudeClient,
		"gemini": geminiClient,
	}

	order := []string{"openai", "claude", "gemini"}

	chain := &FallbackChain{}
	if c := byName[preferred]; c != nil {
		chain.clients = append(chain.clients, c)
	}
	for _, name := range order {
		if name == preferred {
			continue
		}
		if c := byName[name]; c != nil {
			chain.clients = append(chain.clients, c)
		}
	}

	return chain
}

func (f *FallbackChain) Clients() []Client {
	return f.clients
}

func (f *FallbackChain) Primary() Client {
	if len(f.clients) == 0 {
		return nil
	}
	return f.clients[0]
}

// ForcedChain routes every request to a single client with no fallback.
type ForcedChain struct {
	client Client
}

func ForceClient(c Client) *ForcedChain {
	return &ForcedChain{client: c}
}

func (f *ForcedChain) Clients() []Client {
	if f.client == nil {
		return nil
	}
	return []Client{f.client}
}
