package embedding

import (
	"context"
	"fmt"

	goopenai "github.com/sashabaranov/go-openai"
)

// OpenAIEmbeddingProvider implements EmbeddingProvider using the OpenAI
// embeddings API. text-embedding-3-small returns unit-length vectors, so
// no extra normalization is needed.
type OpenAIEmbeddingProvider struct {
	client *goopenai.Client
	model  string
}

func NewOpenAIEmbeddingProvider(apiKey string, model string) EmbeddingProvider {
	if model == "" {
		model = "text-embedding-3-small"
	}
	return &OpenAIEmbeddingProvider{
		client: goopenai.NewClient(apiKey),
		model:  model,
	}
}

func (p *OpenAIEmbeddingProvider) Generate(text string, taskType string) (*EmbeddingResponse, error) {
	// taskType is ignored; OpenAI uses the same endpoint for documents and queries

	resp, err := p.client.CreateEmbeddings(context.Background(), goopenai.EmbeddingRequest{
		Input: []string{text},
		Model: goopenai.EmbeddingModel(p.model),
	})
	if err != nil {
		return nil, fmt.Errorf("openai embedding: %w", err)
	}

	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("openai embedding: empty response")
	}

	return &EmbeddingResponse{
		Embedding: EmbeddingResponseEmbedding{
			Values: resp.Data[0].Embedding,
		},
	}, nil
}
