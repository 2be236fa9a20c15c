package gemini

import "context"

// IGemini generates itinerary text through the Gemini API. It sits behind
// llmprovider.GeminiAdapter and is safe for concurrent use.
type IGemini interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	// Model names the configured model; the provider manager uses it as a
	// span attribute and log field.
	Model() string
}

// New validates cfg and returns a client.
func New(cfg Config) (IGemini, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newGeminiImpl(cfg), nil
}
